// Package systems provides the update and draw passes over Sprite components
// for donburi-based games.
package systems

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/queuedsprite/components"
)

// UpdateSprites ticks every sprite component by dt seconds.
func UpdateSprites(ecs *ecs.ECS, dt float32) {
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Sprite.Get(e)
		if d.Player != nil {
			d.Player.Tick(dt)
		}
	})
}

// DrawSprites renders every sprite component at its world position.
func DrawSprites(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Sprite.Each(ecs.World, func(e *donburi.Entry) {
		d := components.Sprite.Get(e)
		if d.Player == nil || d.Sheet == nil {
			return
		}
		d.Player.Draw(screen, d.Sheet, float32(d.X), float32(d.Y))
	})
}
