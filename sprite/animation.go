package sprite

import (
	"github.com/automoto/queuedsprite/effects"
)

// Animation describes one named frame sequence on a shared spritesheet: an
// ordered set of sheet rows, the frame count per row and the playback rate.
// FPS 0 means the animation never advances and is never drawn, which is used
// deliberately for blank placeholder entries.
type Animation struct {
	Rows         []int          `json:"rows"`
	FramesPerRow int            `json:"frames_per_row"`
	FPS          int            `json:"fps"`
	Effect       *EffectBinding `json:"effect,omitempty"`
}

// EffectBinding attaches a visual effect to an animation along with the
// window of the animation instance it plays in.
type EffectBinding struct {
	Effect effects.Effect   `json:"effect"`
	Target EffectTimeTarget `json:"target"`
}

// EffectTimeTarget anchors an effect window to the start or the end of the
// hosting animation instance. Duration is in seconds and is capped to the
// instance's play duration when the animation starts.
type EffectTimeTarget struct {
	AtEnd    bool    `json:"at_end"`
	Duration float32 `json:"duration"`
}

// FromStart plays the effect for d seconds measured from animation start.
func FromStart(d float32) EffectTimeTarget {
	if d < 0 {
		d = 0
	}
	return EffectTimeTarget{Duration: d}
}

// FromEnd plays the effect for d seconds ending when the animation's playback
// window ends.
func FromEnd(d float32) EffectTimeTarget {
	if d < 0 {
		d = 0
	}
	return EffectTimeTarget{AtEnd: true, Duration: d}
}

// NewAnimation builds a single-row animation. The frame count is clamped to
// at least one and negative fps saturates to zero.
func NewAnimation(row, frames, fps int) Animation {
	if row < 0 {
		row = 0
	}
	if frames < 1 {
		frames = 1
	}
	if fps < 0 {
		fps = 0
	}
	return Animation{Rows: []int{row}, FramesPerRow: frames, FPS: fps}
}

// NewMultiRowAnimation builds an animation spanning several sheet rows played
// back to back, each holding framesPerRow frames.
func NewMultiRowAnimation(rows []int, framesPerRow, fps int) Animation {
	if len(rows) == 0 {
		rows = []int{0}
	}
	if framesPerRow < 1 {
		framesPerRow = 1
	}
	if fps < 0 {
		fps = 0
	}
	return Animation{Rows: rows, FramesPerRow: framesPerRow, FPS: fps}
}

// EmptyAnimation never advances and draws nothing. Useful as the default
// animation when the sprite should disappear once its queue drains, or as a
// gap between queued animations.
func EmptyAnimation() Animation {
	return NewAnimation(0, 0, 0)
}

// WithStartEffect attaches an effect playing for duration seconds from the
// start of the animation. Registering replaces any previous binding.
func (a Animation) WithStartEffect(e effects.Effect, duration float32) Animation {
	a.Effect = &EffectBinding{Effect: e, Target: FromStart(duration)}
	return a
}

// WithEndEffect attaches an effect playing for duration seconds ending
// exactly when the animation's playback window ends.
func (a Animation) WithEndEffect(e effects.Effect, duration float32) Animation {
	a.Effect = &EffectBinding{Effect: e, Target: FromEnd(duration)}
	return a
}

// TotalFrames is the frame count across all rows.
func (a Animation) TotalFrames() int {
	return len(a.Rows) * a.FramesPerRow
}

// RowFrame maps a frame index in total-frames space to the sheet row and the
// column within that row.
func (a Animation) RowFrame(frame int) (row, col int) {
	total := a.TotalFrames()
	if total == 0 {
		return 0, 0
	}
	if frame < 0 {
		frame = 0
	}
	frame %= total
	return a.Rows[frame/a.FramesPerRow], frame % a.FramesPerRow
}

// drawable reports whether the animation can produce a frame at all.
func (a Animation) drawable() bool {
	return a.FPS > 0 && a.TotalFrames() > 0
}
