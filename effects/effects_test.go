package effects

import "testing"

func baseParams() RenderParams {
	return RenderParams{
		X: 100, Y: 50,
		DestW: 32, DestH: 32,
		Source: Rect{X: 0, Y: 0, W: 32, H: 32},
		Color:  White,
	}
}

func TestFade(t *testing.T) {
	cases := []struct {
		name     string
		effect   Effect
		progress float32
		wantA    float32
	}{
		{"fade_in_start", FadeIn(), 0, 0},
		{"fade_in_half", FadeIn(), 0.5, 0.5},
		{"fade_in_done", FadeIn(), 1, 1},
		{"fade_out_start", FadeOut(), 0, 1},
		{"fade_out_done", FadeOut(), 1, 0},
		{"progress_clamped_high", FadeIn(), 2, 1},
		{"progress_clamped_low", FadeIn(), -1, 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			p := baseParams()
			c.effect.Apply(Env{}, c.progress, &p, 32, 32)
			if p.Color.A != c.wantA {
				t.Fatalf("alpha = %g, want %g", p.Color.A, c.wantA)
			}
		})
	}
}

func TestSlide(t *testing.T) {
	env := Env{ScreenW: 640, ScreenH: 360}

	p := baseParams()
	SlideIn(SlideDirection{Edge: SlideLeft}).Apply(env, 0, &p, 32, 32)
	if p.X != -32 || p.Y != 50 {
		t.Fatalf("slide-in at progress 0 starts off the left edge, got (%g, %g)", p.X, p.Y)
	}

	p = baseParams()
	SlideIn(SlideDirection{Edge: SlideLeft}).Apply(env, 1, &p, 32, 32)
	if p.X != 100 || p.Y != 50 {
		t.Fatalf("slide-in at progress 1 rests at the original position, got (%g, %g)", p.X, p.Y)
	}

	p = baseParams()
	SlideOut(SlideDirection{Edge: SlideRight}).Apply(env, 1, &p, 32, 32)
	if p.X != 640 {
		t.Fatalf("slide-out at progress 1 reaches the screen edge, got %g", p.X)
	}

	p = baseParams()
	SlideOut(SlideDirection{Edge: SlideCustom, X: 10, Y: 20}).Apply(env, 1, &p, 32, 32)
	if p.X != 10 || p.Y != 20 {
		t.Fatalf("custom slide target = (%g, %g), want (10, 20)", p.X, p.Y)
	}
}

func TestSpin(t *testing.T) {
	p := baseParams()
	Spin().Apply(Env{}, 0, &p, 32, 32)
	// Same constant expression the transform computes; float32(10 * math.Pi)
	// rounds once and lands one ULP away.
	if want := float32(2 * pi * spinTurns); p.Rotation != want {
		t.Fatalf("spin at progress 0 = %g, want %g", p.Rotation, want)
	}
	p = baseParams()
	Spin().Apply(Env{}, 1, &p, 32, 32)
	if p.Rotation != 0 {
		t.Fatalf("spin settles at zero rotation, got %g", p.Rotation)
	}
}

func TestPulse(t *testing.T) {
	p := baseParams()
	// sin(pi/2) peaks, so progress 0.25 hits the maximum scale.
	Pulse(2).Apply(Env{}, 0.25, &p, 32, 32)
	if p.DestW != 64 || p.DestH != 64 {
		t.Fatalf("pulse peak dest = %gx%g, want 64x64", p.DestW, p.DestH)
	}
	if p.X != 84 || p.Y != 34 {
		t.Fatalf("pulse keeps the sprite centered, got (%g, %g)", p.X, p.Y)
	}
}

func TestBlinkingHoldsColor(t *testing.T) {
	p := baseParams()
	Blinking(Red, 1).Apply(Env{}, 0.3, &p, 32, 32) // inside the hold window
	if p.Color.R != 1 || p.Color.G != 0 || p.Color.B != 0 {
		t.Fatalf("blink hold should reach the blink color, got %+v", p.Color)
	}
}

func TestShakeSettles(t *testing.T) {
	p := baseParams()
	Shake(4).Apply(Env{}, 0, &p, 32, 32)
	if p.X != 100 || p.Y != 54 {
		t.Fatalf("shake at progress 0 offsets by intensity, got (%g, %g)", p.X, p.Y)
	}
	p = baseParams()
	Shake(4).Apply(Env{}, 1, &p, 32, 32)
	if p.X != 100 || p.Y != 50 {
		t.Fatalf("shake settles at the original position, got (%g, %g)", p.X, p.Y)
	}
}

func TestFlipToggles(t *testing.T) {
	p := baseParams()
	Flip(FlipHorizontal).Apply(Env{}, 0.5, &p, 32, 32)
	if !p.FlipX || p.FlipY {
		t.Fatalf("horizontal flip toggles FlipX only, got x=%v y=%v", p.FlipX, p.FlipY)
	}
	Flip(FlipVertical).Apply(Env{}, 0.5, &p, 32, 32)
	if !p.FlipY {
		t.Fatalf("vertical flip toggles FlipY")
	}
}

func TestGlitchDeterministicWithInjectedRand(t *testing.T) {
	env := Env{ScreenW: 640, ScreenH: 360, Rand: func() float32 { return 0.4 }}

	p1, p2 := baseParams(), baseParams()
	Glitch(1.5).Apply(env, 0, &p1, 32, 32)
	Glitch(1.5).Apply(env, 0, &p2, 32, 32)
	if p1 != p2 {
		t.Fatalf("same injected rand must produce identical output")
	}
	if p1.Source == baseParams().Source {
		t.Fatalf("glitch should displace the source rectangle")
	}
	if !p1.FlipX || !p1.FlipY {
		t.Fatalf("full-intensity glitch with rand 0.4 toggles both flips")
	}
}

func TestSquashKeepsCenter(t *testing.T) {
	p := baseParams()
	SquashVertical(0.5).Apply(Env{}, 0, &p, 32, 32)
	if p.DestH != 16 {
		t.Fatalf("dest height = %g, want 16", p.DestH)
	}
	if p.Y != 58 {
		t.Fatalf("squash recenters vertically, got y=%g", p.Y)
	}

	p = baseParams()
	SquashHorizontal(0.5).Apply(Env{}, 1, &p, 32, 32)
	if p.DestW != 32 || p.X != 100 {
		t.Fatalf("squash relaxes fully at progress 1, got w=%g x=%g", p.DestW, p.X)
	}
}

func TestColorCycle(t *testing.T) {
	p := baseParams()
	p.Color.A = 0.5
	ColorCycle(Red, Blue).Apply(Env{}, 0, &p, 32, 32)
	if p.Color.R != 1 || p.Color.B != 0 {
		t.Fatalf("cycle at progress 0 sits on the first palette color, got %+v", p.Color)
	}
	if p.Color.A != 0.5 {
		t.Fatalf("cycle preserves the original alpha, got %g", p.Color.A)
	}

	p = baseParams()
	ColorCycle(Red, Blue).Apply(Env{}, 0.5, &p, 32, 32)
	if p.Color.B != 1 || p.Color.R != 0 {
		t.Fatalf("cycle at progress 0.5 reaches the second color, got %+v", p.Color)
	}

	p = baseParams()
	ColorCycle().Apply(Env{}, 0.5, &p, 32, 32)
	if p.Color != White {
		t.Fatalf("an empty palette is a no-op")
	}
}

func TestCustomAndEasing(t *testing.T) {
	var seen float32 = -1
	fn := func(env Env, progress float32, p *RenderParams, tw, th float32) {
		seen = progress
		p.Rotation = progress
	}

	p := baseParams()
	Custom(fn).Apply(Env{}, 0.25, &p, 32, 32)
	if seen != 0.25 || p.Rotation != 0.25 {
		t.Fatalf("custom transform not applied, saw %g", seen)
	}

	// Easing reshapes the progress before the transform sees it.
	force := func(t, b, c, d float32) float32 { return 1 }
	p = baseParams()
	Custom(fn).WithEasing(force).Apply(Env{}, 0.25, &p, 32, 32)
	if seen != 1 {
		t.Fatalf("easing should reshape progress, saw %g", seen)
	}

	// Detached custom effects (post-deserialization) are no-ops.
	p = baseParams()
	Effect{Kind: KindCustom}.Apply(Env{}, 0.5, &p, 32, 32)
	if p != baseParams() {
		t.Fatalf("a detached custom effect must not mutate anything")
	}
}

func TestCloneCopiesPalette(t *testing.T) {
	orig := ColorCycle(Red, Blue)
	clone := orig.Clone()
	clone.Palette[0] = Green
	if orig.Palette[0] != Red {
		t.Fatalf("clone must not share palette storage")
	}
}
