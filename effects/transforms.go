package effects

import "math"

const (
	pi        = float32(math.Pi)
	spinTurns = 5
)

func sin32(x float32) float32 { return float32(math.Sin(float64(x))) }
func cos32(x float32) float32 { return float32(math.Cos(float64(x))) }
func abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
func pow32(x, y float32) float32 { return float32(math.Pow(float64(x), float64(y))) }

func lerp(a, b, t float32) float32 { return a + (b-a)*t }

func applyFadeIn(progress float32, p *RenderParams) {
	p.Color.A = progress
}

func applyFadeOut(progress float32, p *RenderParams) {
	p.Color.A = 1 - progress
}

func applySlideIn(env Env, progress float32, p *RenderParams, tileW, tileH float32, dir SlideDirection) {
	startX, startY := dir.targetPosition(env, p.X, p.Y, tileW, tileH)
	p.X = startX + (p.X-startX)*progress
	p.Y = startY + (p.Y-startY)*progress
}

func applySlideOut(env Env, progress float32, p *RenderParams, tileW, tileH float32, dir SlideDirection) {
	endX, endY := dir.targetPosition(env, p.X, p.Y, tileW, tileH)
	p.X += (endX - p.X) * progress
	p.Y += (endY - p.Y) * progress
}

func applySpin(progress float32, p *RenderParams) {
	p.Rotation = 2 * pi * spinTurns * (1 - progress)
}

func applyPulse(progress float32, p *RenderParams, maxScale float32) {
	scale := 1 + (maxScale-1)*abs32(sin32(2*pi*progress))

	deltaW := p.DestW * (scale - 1)
	deltaH := p.DestH * (scale - 1)
	p.X -= deltaW / 2
	p.Y -= deltaH / 2
	p.DestW *= scale
	p.DestH *= scale
}

func applyBlinking(progress float32, p *RenderParams, blink Color, blinks int) {
	if blinks <= 0 {
		return
	}
	blinkDuration := 1 / float32(blinks)
	blinkProgress := float32(math.Mod(float64(progress/blinkDuration), 1))

	// Sharp rise to the blink color, hold, then settle back.
	const (
		riseTime = 0.1
		holdTime = 0.6
		fallTime = 0.3
	)
	var intensity float32
	switch {
	case blinkProgress < riseTime:
		intensity = blinkProgress / riseTime
	case blinkProgress < riseTime+holdTime:
		intensity = 1
	case blinkProgress < riseTime+holdTime+fallTime:
		intensity = 1 - (blinkProgress-riseTime-holdTime)/fallTime
	default:
		intensity = 0
	}

	p.Color.R = lerp(p.Color.R, blink.R, intensity)
	p.Color.G = lerp(p.Color.G, blink.G, intensity)
	p.Color.B = lerp(p.Color.B, blink.B, intensity)
}

func applyShake(progress float32, p *RenderParams, intensity float32) {
	amount := intensity * (1 - progress) // settles as the effect finishes
	angle := progress * pi * 10
	p.X += amount * sin32(angle)
	p.Y += amount * cos32(angle)
}

func applyWobble(progress float32, p *RenderParams, intensity float32) {
	amount := intensity * (1 - progress*progress)
	angle := progress * pi * 8
	// Doubled frequency on the vertical axis for a less regular motion.
	p.DestW += amount * sin32(angle)
	p.DestH += amount * sin32(angle*2)
}

func applyBounce(progress float32, p *RenderParams, height float32, bounces int) {
	if bounces <= 0 {
		return
	}
	arc := sin32(progress * pi * float32(bounces))
	p.Y -= height * abs32(arc) * (1 - pow32(progress, 0.5))
}

func applyFlip(p *RenderParams, axis FlipAxis) {
	switch axis {
	case FlipHorizontal:
		p.FlipX = !p.FlipX
	case FlipVertical:
		p.FlipY = !p.FlipY
	}
}

func applyGlitch(env Env, progress float32, p *RenderParams, intensity float32) {
	amount := intensity * (1 - progress)
	src := p.Source
	if src.W <= 0 || src.H <= 0 {
		return
	}

	divisions := int(math.Round(float64(amount * 3)))
	if divisions < 1 {
		divisions = 1
	}
	pieceW := src.W / float32(divisions)
	pieceH := src.H / float32(divisions)

	// Slice the frame into a grid, jitter every piece, then draw one of them.
	pieces := make([]Rect, 0, divisions*divisions)
	for i := 0; i < divisions; i++ {
		for j := 0; j < divisions; j++ {
			piece := Rect{
				X: src.X + float32(i)*pieceW,
				Y: src.Y + float32(j)*pieceH,
				W: pieceW,
				H: pieceH,
			}
			piece.X += env.randRange(-0.5, 0.5) * amount * pieceW
			piece.Y += env.randRange(-0.5, 0.5) * amount * pieceH
			pieces = append(pieces, piece)
		}
	}
	selected := pieces[env.randIndex(len(pieces))]
	p.Source = selected
	p.X += selected.X - src.X
	p.Y += selected.Y - src.Y

	if env.rand() < amount {
		p.FlipX = !p.FlipX
	}
	if env.rand() < amount {
		p.FlipY = !p.FlipY
	}

	if env.rand() < amount*0.5 {
		if env.rand() < 0.5 {
			// Color shift toward a random tint.
			random := Color{env.rand(), env.rand(), env.rand(), 1}
			shift := env.randRange(0.3, 1) * amount
			p.Color.R = lerp(p.Color.R, random.R, shift)
			p.Color.G = lerp(p.Color.G, random.G, shift)
			p.Color.B = lerp(p.Color.B, random.B, shift)
		} else {
			p.Color.R = 1 - p.Color.R
			p.Color.G = 1 - p.Color.G
			p.Color.B = 1 - p.Color.B
		}
	}

	if env.rand() < amount*0.3 {
		shift := env.randRange(-0.2, 0.2) * amount
		switch env.randIndex(3) {
		case 0:
			p.Color.R = clamp01(p.Color.R + shift)
		case 1:
			p.Color.G = clamp01(p.Color.G + shift)
		default:
			p.Color.B = clamp01(p.Color.B + shift)
		}
	}
}

func applyShearLeft(progress float32, p *RenderParams, intensity float32) {
	shear := intensity * (1 - progress) * 0.5
	shearX := p.DestW * shear
	p.Rotation = shear * pi / 4
	p.DestW += shearX
	// Left edge stays fixed.
}

func applyShearRight(progress float32, p *RenderParams, intensity float32) {
	shear := -intensity * (1 - progress) * 0.5
	shearX := p.DestW * abs32(shear)
	p.Rotation = shear * pi / 4
	p.DestW += shearX
	// Keep the right edge fixed.
	p.X -= shearX
}

func applySquashVertical(progress float32, p *RenderParams, intensity float32) {
	squash := intensity * (1 - progress*progress)
	originalH := p.DestH
	p.DestH *= 1 - squash
	p.Y += (originalH - p.DestH) / 2
}

func applySquashHorizontal(progress float32, p *RenderParams, intensity float32) {
	squash := intensity * (1 - progress*progress)
	originalW := p.DestW
	p.DestW *= 1 - squash
	p.X += (originalW - p.DestW) / 2
}

func applyColorCycle(progress float32, p *RenderParams, palette []Color) {
	if len(palette) == 0 {
		return
	}
	scaled := progress * float32(len(palette))
	index := int(scaled) % len(palette)
	next := (index + 1) % len(palette)
	sub := float32(math.Mod(float64(scaled), 1))

	alpha := p.Color.A // preserved through the cycle
	p.Color = Color{
		R: lerp(palette[index].R, palette[next].R, sub),
		G: lerp(palette[index].G, palette[next].G, sub),
		B: lerp(palette[index].B, palette[next].B, sub),
		A: alpha,
	}
}

func clamp01(x float32) float32 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}
