// Package effects implements the timed visual transforms a sprite animation
// can carry. Each effect is a pure function of a normalized progress value and
// the tile geometry, mutating a RenderParams bundle; none of them touch the
// sprite state machine that drives them.
package effects

import (
	"github.com/tanema/gween/ease"
)

// TransformFunc is the escape hatch signature for caller-supplied effects.
// It receives the activation progress in [0,1], the mutable render parameters
// and the tile dimensions in pixels.
type TransformFunc func(env Env, progress float32, p *RenderParams, tileW, tileH float32)

// Kind identifies one of the built-in transforms.
type Kind string

const (
	KindFadeIn           Kind = "fade_in"
	KindFadeOut          Kind = "fade_out"
	KindSlideIn          Kind = "slide_in"
	KindSlideOut         Kind = "slide_out"
	KindSpin             Kind = "spin"
	KindPulse            Kind = "pulse"
	KindBlinking         Kind = "blinking"
	KindShake            Kind = "shake"
	KindWobble           Kind = "wobble"
	KindBounce           Kind = "bounce"
	KindFlip             Kind = "flip"
	KindGlitch           Kind = "glitch"
	KindShearLeft        Kind = "shear_left"
	KindShearRight       Kind = "shear_right"
	KindSquashVertical   Kind = "squash_vertical"
	KindSquashHorizontal Kind = "squash_horizontal"
	KindColorCycle       Kind = "color_cycle"
	KindCustom           Kind = "custom"
)

// Effect pairs a Kind with its parameters. Values are built through the
// constructor functions below; the zero value is a no-op.
//
// Fn and Easing carry function identities and are excluded from the persisted
// form: a deserialized KindCustom effect applies nothing until the host
// re-attaches its transform (re-register the animation with Custom(fn)).
type Effect struct {
	Kind      Kind           `json:"kind"`
	Direction SlideDirection `json:"direction,omitempty"`
	Axis      FlipAxis       `json:"axis,omitempty"`
	Color     Color          `json:"color,omitempty"`
	Palette   []Color        `json:"palette,omitempty"`
	Intensity float32        `json:"intensity,omitempty"`
	Scale     float32        `json:"scale,omitempty"`
	Count     int            `json:"count,omitempty"`
	Fn        TransformFunc  `json:"-"`
	Easing    ease.TweenFunc `json:"-"`
}

// FadeIn raises the tint alpha from 0 to 1 over the effect window.
func FadeIn() Effect { return Effect{Kind: KindFadeIn} }

// FadeOut lowers the tint alpha from 1 to 0 over the effect window.
func FadeOut() Effect { return Effect{Kind: KindFadeOut} }

// SlideIn moves the sprite from the given edge to its resting position.
func SlideIn(dir SlideDirection) Effect { return Effect{Kind: KindSlideIn, Direction: dir} }

// SlideOut moves the sprite from its resting position toward the given edge.
func SlideOut(dir SlideDirection) Effect { return Effect{Kind: KindSlideOut, Direction: dir} }

// Spin rotates the sprite through five full turns, settling at zero.
func Spin() Effect { return Effect{Kind: KindSpin} }

// Pulse scales the sprite up to maxScale and back, centered on its origin.
func Pulse(maxScale float32) Effect { return Effect{Kind: KindPulse, Scale: maxScale} }

// Blinking tints the sprite toward color the given number of times.
func Blinking(c Color, blinks int) Effect {
	return Effect{Kind: KindBlinking, Color: c, Count: blinks}
}

// Shake jitters the sprite position; intensity is the offset in pixels.
func Shake(intensity float32) Effect { return Effect{Kind: KindShake, Intensity: intensity} }

// Wobble perturbs the destination size for a jelly-like motion.
func Wobble(intensity float32) Effect { return Effect{Kind: KindWobble, Intensity: intensity} }

// Bounce lifts the sprite in decaying arcs of the given height.
func Bounce(height float32, bounces int) Effect {
	return Effect{Kind: KindBounce, Scale: height, Count: bounces}
}

// Flip mirrors the sprite across the given axis for the whole window.
func Flip(axis FlipAxis) Effect { return Effect{Kind: KindFlip, Axis: axis} }

// Glitch slices and displaces the source rectangle with random channel noise.
func Glitch(intensity float32) Effect { return Effect{Kind: KindGlitch, Intensity: intensity} }

// ShearLeft skews the sprite leftward, relaxing as progress completes.
func ShearLeft(intensity float32) Effect { return Effect{Kind: KindShearLeft, Intensity: intensity} }

// ShearRight skews the sprite rightward, relaxing as progress completes.
func ShearRight(intensity float32) Effect { return Effect{Kind: KindShearRight, Intensity: intensity} }

// SquashVertical compresses the sprite height, keeping it centered.
func SquashVertical(intensity float32) Effect {
	return Effect{Kind: KindSquashVertical, Intensity: intensity}
}

// SquashHorizontal compresses the sprite width, keeping it centered.
func SquashHorizontal(intensity float32) Effect {
	return Effect{Kind: KindSquashHorizontal, Intensity: intensity}
}

// ColorCycle blends the tint through the given palette in order.
func ColorCycle(palette ...Color) Effect {
	return Effect{Kind: KindColorCycle, Palette: palette}
}

// Custom wraps an arbitrary transform function. Not serializable; see Effect.
func Custom(fn TransformFunc) Effect { return Effect{Kind: KindCustom, Fn: fn} }

// WithEasing shapes the progress value through a gween easing curve before it
// reaches the transform. The default is linear.
func (e Effect) WithEasing(fn ease.TweenFunc) Effect {
	e.Easing = fn
	return e
}

// Clone returns a deep copy of the effect. Palette storage is duplicated;
// function references (Fn, Easing) are shared, matching the reference-count
// semantics callers expect from an opaque callable.
func (e Effect) Clone() Effect {
	out := e
	if e.Palette != nil {
		out.Palette = make([]Color, len(e.Palette))
		copy(out.Palette, e.Palette)
	}
	return out
}

// Apply runs the transform over the render parameters. Progress outside [0,1]
// is clamped; unknown kinds and detached custom effects are no-ops.
func (e Effect) Apply(env Env, progress float32, p *RenderParams, tileW, tileH float32) {
	if progress < 0 {
		progress = 0
	} else if progress > 1 {
		progress = 1
	}
	if e.Easing != nil {
		progress = e.Easing(progress, 0, 1, 1)
	}

	switch e.Kind {
	case KindFadeIn:
		applyFadeIn(progress, p)
	case KindFadeOut:
		applyFadeOut(progress, p)
	case KindSlideIn:
		applySlideIn(env, progress, p, tileW, tileH, e.Direction)
	case KindSlideOut:
		applySlideOut(env, progress, p, tileW, tileH, e.Direction)
	case KindSpin:
		applySpin(progress, p)
	case KindPulse:
		applyPulse(progress, p, e.Scale)
	case KindBlinking:
		applyBlinking(progress, p, e.Color, e.Count)
	case KindShake:
		applyShake(progress, p, e.Intensity)
	case KindWobble:
		applyWobble(progress, p, e.Intensity)
	case KindBounce:
		applyBounce(progress, p, e.Scale, e.Count)
	case KindFlip:
		applyFlip(p, e.Axis)
	case KindGlitch:
		applyGlitch(env, progress, p, e.Intensity)
	case KindShearLeft:
		applyShearLeft(progress, p, e.Intensity)
	case KindShearRight:
		applyShearRight(progress, p, e.Intensity)
	case KindSquashVertical:
		applySquashVertical(progress, p, e.Intensity)
	case KindSquashHorizontal:
		applySquashHorizontal(progress, p, e.Intensity)
	case KindColorCycle:
		applyColorCycle(progress, p, e.Palette)
	case KindCustom:
		if e.Fn != nil {
			e.Fn(env, progress, p, tileW, tileH)
		}
	}
}
