// Package spriteconfig builds sprites from declarative YAML catalogs, so a
// game can keep its animation tables next to its other tuning data instead of
// in code.
//
//	tile_width: 32
//	tile_height: 32
//	default: idle
//	animations:
//	  idle: {row: 0, frames: 4, fps: 6}
//	  attack:
//	    row: 1
//	    frames: 6
//	    fps: 12
//	    effect: {kind: fade_out, target: end, duration: 0.5}
package spriteconfig

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/automoto/queuedsprite/effects"
	"github.com/automoto/queuedsprite/sprite"
)

// Catalog is the file-level document.
type Catalog struct {
	TileWidth  float32                  `yaml:"tile_width"`
	TileHeight float32                  `yaml:"tile_height"`
	Default    string                   `yaml:"default"`
	Animations map[string]AnimationSpec `yaml:"animations"`
}

// AnimationSpec is one animation entry. Either row or rows must be given.
type AnimationSpec struct {
	Row    *int        `yaml:"row"`
	Rows   []int       `yaml:"rows"`
	Frames int         `yaml:"frames"`
	FPS    int         `yaml:"fps"`
	Effect *EffectSpec `yaml:"effect"`
}

// EffectSpec configures the attached effect. Color channels are [r, g, b]
// floats in [0,1]; palette is a list of such triples.
type EffectSpec struct {
	Kind      string      `yaml:"kind"`
	Target    string      `yaml:"target"` // "start" or "end"
	Duration  float32     `yaml:"duration"`
	Direction string      `yaml:"direction"`
	X         float32     `yaml:"x"`
	Y         float32     `yaml:"y"`
	Axis      string      `yaml:"axis"`
	Intensity float32     `yaml:"intensity"`
	Scale     float32     `yaml:"scale"`
	Count     int         `yaml:"count"`
	Color     []float32   `yaml:"color"`
	Palette   [][]float32 `yaml:"palette"`
}

// Load reads a YAML catalog and builds a ready-to-tick string-keyed sprite.
func Load(r io.Reader) (*sprite.Sprite[string], error) {
	var cat Catalog
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cat); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return cat.Build()
}

// LoadFile reads a YAML catalog from disk.
func LoadFile(path string) (*sprite.Sprite[string], error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open catalog: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// Build validates the catalog and assembles the sprite.
func (c Catalog) Build() (*sprite.Sprite[string], error) {
	if c.TileWidth <= 0 || c.TileHeight <= 0 {
		return nil, fmt.Errorf("catalog: tile size %gx%g is not positive", c.TileWidth, c.TileHeight)
	}
	if c.Default == "" {
		return nil, fmt.Errorf("catalog: missing default animation key")
	}
	defSpec, ok := c.Animations[c.Default]
	if !ok {
		return nil, fmt.Errorf("catalog: default animation %q not declared", c.Default)
	}

	defAnim, err := defSpec.build()
	if err != nil {
		return nil, fmt.Errorf("catalog: animation %q: %w", c.Default, err)
	}
	s := sprite.New(c.TileWidth, c.TileHeight, c.Default, defAnim)

	for key, spec := range c.Animations {
		if key == c.Default {
			continue
		}
		a, err := spec.build()
		if err != nil {
			return nil, fmt.Errorf("catalog: animation %q: %w", key, err)
		}
		s.Register(key, a)
	}
	return s, nil
}

func (a AnimationSpec) build() (sprite.Animation, error) {
	var anim sprite.Animation
	switch {
	case len(a.Rows) > 0:
		anim = sprite.NewMultiRowAnimation(a.Rows, a.Frames, a.FPS)
	case a.Row != nil:
		anim = sprite.NewAnimation(*a.Row, a.Frames, a.FPS)
	default:
		return sprite.Animation{}, fmt.Errorf("needs row or rows")
	}

	if a.Effect == nil {
		return anim, nil
	}
	eff, err := a.Effect.build()
	if err != nil {
		return sprite.Animation{}, err
	}
	switch a.Effect.Target {
	case "start", "":
		anim = anim.WithStartEffect(eff, a.Effect.Duration)
	case "end":
		anim = anim.WithEndEffect(eff, a.Effect.Duration)
	default:
		return sprite.Animation{}, fmt.Errorf("unknown effect target %q", a.Effect.Target)
	}
	return anim, nil
}

func (e EffectSpec) build() (effects.Effect, error) {
	switch effects.Kind(e.Kind) {
	case effects.KindFadeIn:
		return effects.FadeIn(), nil
	case effects.KindFadeOut:
		return effects.FadeOut(), nil
	case effects.KindSlideIn:
		dir, err := e.direction()
		if err != nil {
			return effects.Effect{}, err
		}
		return effects.SlideIn(dir), nil
	case effects.KindSlideOut:
		dir, err := e.direction()
		if err != nil {
			return effects.Effect{}, err
		}
		return effects.SlideOut(dir), nil
	case effects.KindSpin:
		return effects.Spin(), nil
	case effects.KindPulse:
		return effects.Pulse(e.Scale), nil
	case effects.KindBlinking:
		c, err := toColor(e.Color)
		if err != nil {
			return effects.Effect{}, err
		}
		return effects.Blinking(c, e.Count), nil
	case effects.KindShake:
		return effects.Shake(e.Intensity), nil
	case effects.KindWobble:
		return effects.Wobble(e.Intensity), nil
	case effects.KindBounce:
		return effects.Bounce(e.Scale, e.Count), nil
	case effects.KindFlip:
		switch effects.FlipAxis(e.Axis) {
		case effects.FlipHorizontal, effects.FlipVertical:
			return effects.Flip(effects.FlipAxis(e.Axis)), nil
		}
		return effects.Effect{}, fmt.Errorf("unknown flip axis %q", e.Axis)
	case effects.KindGlitch:
		return effects.Glitch(e.Intensity), nil
	case effects.KindShearLeft:
		return effects.ShearLeft(e.Intensity), nil
	case effects.KindShearRight:
		return effects.ShearRight(e.Intensity), nil
	case effects.KindSquashVertical:
		return effects.SquashVertical(e.Intensity), nil
	case effects.KindSquashHorizontal:
		return effects.SquashHorizontal(e.Intensity), nil
	case effects.KindColorCycle:
		palette := make([]effects.Color, 0, len(e.Palette))
		for _, raw := range e.Palette {
			c, err := toColor(raw)
			if err != nil {
				return effects.Effect{}, err
			}
			palette = append(palette, c)
		}
		return effects.ColorCycle(palette...), nil
	}
	// KindCustom is deliberately unreachable from a file: a transform function
	// cannot be declared in YAML.
	return effects.Effect{}, fmt.Errorf("unknown effect kind %q", e.Kind)
}

func (e EffectSpec) direction() (effects.SlideDirection, error) {
	switch effects.SlideEdge(e.Direction) {
	case effects.SlideLeft, effects.SlideRight, effects.SlideTop, effects.SlideBottom:
		return effects.SlideDirection{Edge: effects.SlideEdge(e.Direction)}, nil
	case effects.SlideCustom:
		return effects.SlideDirection{Edge: effects.SlideCustom, X: e.X, Y: e.Y}, nil
	}
	return effects.SlideDirection{}, fmt.Errorf("unknown slide direction %q", e.Direction)
}

func toColor(raw []float32) (effects.Color, error) {
	if len(raw) != 3 {
		return effects.Color{}, fmt.Errorf("color needs [r, g, b], got %d values", len(raw))
	}
	return effects.RGB(raw[0], raw[1], raw[2]), nil
}
