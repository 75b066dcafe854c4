package sprite

import (
	"image"
	"math"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/automoto/queuedsprite/effects"
)

var drawOp = &ebiten.DrawImageOptions{}

// EnvFor builds an effect environment from the destination image bounds,
// with math/rand as the uniform source. Tests and deterministic replays
// should construct an effects.Env with a seeded Rand instead.
func EnvFor(dst *ebiten.Image) effects.Env {
	b := dst.Bounds()
	return effects.Env{
		ScreenW: float32(b.Dx()),
		ScreenH: float32(b.Dy()),
		Rand:    rand.Float32,
	}
}

// Draw renders the current frame of sheet at (x, y) with no tint and the
// tile's natural size. Degenerate or unresolvable animations draw nothing.
func (s *Sprite[K]) Draw(dst, sheet *ebiten.Image, x, y float32) {
	s.DrawWithParams(dst, sheet, effects.RenderParams{X: x, Y: y, Color: effects.White}, EnvFor(dst))
}

// DrawScaled renders the current frame stretched to destW x destH.
func (s *Sprite[K]) DrawScaled(dst, sheet *ebiten.Image, x, y, destW, destH float32) {
	p := effects.RenderParams{X: x, Y: y, DestW: destW, DestH: destH, Color: effects.White}
	s.DrawWithParams(dst, sheet, p, EnvFor(dst))
}

// DrawWithParams renders the current frame with explicit render parameters.
// The frame source rectangle is filled in from the playback state, the active
// effect (if any) adjusts the bundle, and the result is composed into a
// single draw call. Zero DestW/DestH default to the tile size; a zero-alpha
// zero color defaults to an opaque white tint.
func (s *Sprite[K]) DrawWithParams(dst, sheet *ebiten.Image, p effects.RenderParams, env effects.Env) {
	a, ok := s.animations[s.currentKey]
	if !ok || !a.drawable() {
		return
	}

	row, col := a.RowFrame(s.currentFrame)
	p.Source = s.frameRect(row, col)
	if p.DestW == 0 {
		p.DestW = s.tileWidth
	}
	if p.DestH == 0 {
		p.DestH = s.tileHeight
	}
	if p.Color == (effects.Color{}) {
		p.Color = effects.White
	}

	if a.Effect != nil && s.fx.Active {
		a.Effect.Effect.Apply(env, s.fx.progress(), &p, s.tileWidth, s.tileHeight)
	}

	src := image.Rect(
		int(p.Source.X), int(p.Source.Y),
		int(p.Source.X+p.Source.W), int(p.Source.Y+p.Source.H),
	)
	frame := sheet.SubImage(src).(*ebiten.Image)
	fw, fh := frame.Bounds().Dx(), frame.Bounds().Dy()
	if fw == 0 || fh == 0 {
		return
	}

	drawOp.GeoM.Reset()
	drawOp.ColorScale.Reset()

	// Scale the frame to the destination size.
	drawOp.GeoM.Scale(float64(p.DestW)/float64(fw), float64(p.DestH)/float64(fh))

	if p.FlipX {
		drawOp.GeoM.Scale(-1, 1)
		drawOp.GeoM.Translate(float64(p.DestW), 0)
	}
	if p.FlipY {
		drawOp.GeoM.Scale(1, -1)
		drawOp.GeoM.Translate(0, float64(p.DestH))
	}

	if p.Rotation != 0 {
		// Rotate about the destination center.
		drawOp.GeoM.Translate(-float64(p.DestW)/2, -float64(p.DestH)/2)
		drawOp.GeoM.Rotate(float64(normalizeAngle(p.Rotation)))
		drawOp.GeoM.Translate(float64(p.DestW)/2, float64(p.DestH)/2)
	}

	drawOp.GeoM.Translate(float64(p.X), float64(p.Y))

	c := p.Color
	drawOp.ColorScale.Scale(c.R*c.A, c.G*c.A, c.B*c.A, c.A)

	dst.DrawImage(frame, drawOp)
}

// TickAndDraw advances the sprite and draws it back to back, for callers that
// have no separate update phase.
func (s *Sprite[K]) TickAndDraw(dt float32, dst, sheet *ebiten.Image, x, y float32) {
	s.Tick(dt)
	s.Draw(dst, sheet, x, y)
}

func normalizeAngle(r float32) float32 {
	return float32(math.Mod(float64(r), 2*math.Pi))
}
