package sprite

import "github.com/automoto/queuedsprite/effects"

// CurrentFrameRect is the pixel rectangle of the current frame on the
// spritesheet. ok is false when no current animation resolves (dangling
// default or deleted key) or the animation is degenerate (zero fps or zero
// frames) and therefore draws nothing.
func (s *Sprite[K]) CurrentFrameRect() (r effects.Rect, ok bool) {
	a, found := s.currentAnimation()
	if !found || !a.drawable() {
		return effects.Rect{}, false
	}
	row, col := a.RowFrame(s.currentFrame)
	return s.frameRect(row, col), true
}

func (s *Sprite[K]) frameRect(row, col int) effects.Rect {
	return effects.Rect{
		X: s.tileWidth * float32(col),
		Y: s.tileHeight * float32(row),
		W: s.tileWidth,
		H: s.tileHeight,
	}
}
