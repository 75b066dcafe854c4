// Package components provides donburi component types for games that drive
// their sprites through an ECS world rather than owning them directly.
package components

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi"

	"github.com/automoto/queuedsprite/sprite"
)

// SpriteData pairs a sprite player with its sheet and world position.
type SpriteData struct {
	Player *sprite.Sprite[string]
	Sheet  *ebiten.Image
	X      float64
	Y      float64
}

var Sprite = donburi.NewComponentType[SpriteData]()
