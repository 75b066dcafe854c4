// Demo game for the queuedsprite library. A procedurally generated
// spritesheet stands in for real art: each animation row is a block of
// colored cells, so frame advances and effects are visible without assets.
//
// Keys:
//
//	A  queue "attack" for 1.5s (fade-out tail)
//	S  queue "spawn" for 1.0s (slide in from the left)
//	G  queue "glitch" for 2.0s
//	N  skip to the next queued animation
//	R  reset the queue
//	P  toggle pause
//	F5 save playback state, F9 restore it
package main

import (
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"golang.org/x/image/colornames"

	"github.com/automoto/queuedsprite/effects"
	"github.com/automoto/queuedsprite/persist"
	"github.com/automoto/queuedsprite/sprite"
)

const (
	screenW = 640
	screenH = 360
	tileW   = 32
	tileH   = 32
)

type Game struct {
	slime   *sprite.Sprite[string]
	sheet   *ebiten.Image
	bob     *gween.Tween
	bobDown bool
	bobY    float32
	saves   *persist.Manager
}

func NewGame() *Game {
	g := &Game{
		sheet: buildSheet(),
		slime: buildSlime(),
	}

	// Idle bobbing: tween up, then back down, swapping at each end.
	g.bob = gween.New(0, -24, 1.2, ease.InOutQuad)

	saves, err := persist.Open("queuedsprite-demo")
	if err != nil {
		log.Printf("Warning: save storage unavailable: %v", err)
	} else {
		g.saves = saves
	}
	return g
}

func buildSlime() *sprite.Sprite[string] {
	s := sprite.New(tileW, tileH, "idle", sprite.NewAnimation(0, 4, 6))
	s.Register("attack",
		sprite.NewAnimation(1, 6, 12).
			WithEndEffect(effects.FadeOut(), 0.5))
	s.Register("spawn",
		sprite.NewAnimation(2, 4, 8).
			WithStartEffect(effects.SlideIn(effects.SlideDirection{Edge: effects.SlideLeft}).
				WithEasing(ease.OutQuad), 0.8))
	s.Register("glitch",
		sprite.NewAnimation(3, 4, 8).
			WithStartEffect(effects.Glitch(1.5), 1.5))
	return s
}

// buildSheet paints a 4-row spritesheet where every frame cell gets its own
// shade, making frame changes obvious.
func buildSheet() *ebiten.Image {
	rows := [][]string{
		{"limegreen", "green", "forestgreen", "darkgreen"},
		{"orangered", "red", "crimson", "firebrick", "darkred", "maroon"},
		{"deepskyblue", "dodgerblue", "royalblue", "mediumblue"},
		{"orchid", "mediumorchid", "darkorchid", "purple"},
	}
	sheet := ebiten.NewImage(6*tileW, len(rows)*tileH)
	for row, names := range rows {
		for col, name := range names {
			cell := sheet.SubImage(image.Rect(
				col*tileW, row*tileH, (col+1)*tileW, (row+1)*tileH,
			)).(*ebiten.Image)
			cell.Fill(colornames.Map[name])
		}
	}
	return sheet
}

func (g *Game) Update() error {
	dt := float32(1.0 / float64(ebiten.TPS()))

	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.slime.Enqueue("attack", sprite.Seconds(1.5))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.slime.Enqueue("spawn", sprite.Seconds(1))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.slime.Enqueue("glitch", sprite.Seconds(2))
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.slime.AdvanceQueue()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.slime.ResetQueue()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		if g.slime.IsPaused() {
			g.slime.Resume()
		} else {
			g.slime.Pause()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && g.saves != nil {
		if err := persist.Save(g.saves, "slot0", g.slime); err != nil {
			log.Printf("Warning: save failed: %v", err)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF9) && g.saves != nil {
		restored := buildSlime()
		if ok, err := persist.Load(g.saves, "slot0", restored); err != nil {
			log.Printf("Warning: load failed: %v", err)
		} else if ok {
			g.slime = restored
		}
	}

	g.slime.Tick(dt)

	y, done := g.bob.Update(dt)
	g.bobY = y
	if done {
		g.bobDown = !g.bobDown
		if g.bobDown {
			g.bob = gween.New(-24, 0, 1.2, ease.InOutQuad)
		} else {
			g.bob = gween.New(0, -24, 1.2, ease.InOutQuad)
		}
	}

	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.slime.DrawScaled(screen, g.sheet,
		screenW/2-tileW, screenH/2-tileH+g.bobY, tileW*2, tileH*2)

	ebitenutil.DebugPrint(screen,
		"A attack  S spawn  G glitch  N skip  R reset  P pause  F5/F9 save/load\n"+
			"playing: "+g.slime.CurrentAnimationKey())
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenW, screenH
}

func main() {
	ebiten.SetWindowSize(screenW*2, screenH*2)
	ebiten.SetWindowTitle("queuedsprite demo")
	if err := ebiten.RunGame(NewGame()); err != nil {
		log.Fatal(err)
	}
}
