package effects

// Rect is a source rectangle on a spritesheet, in pixels.
type Rect struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
	W float32 `json:"w"`
	H float32 `json:"h"`
}

// Color is an RGBA tint with each channel in [0,1].
type Color struct {
	R float32 `json:"r"`
	G float32 `json:"g"`
	B float32 `json:"b"`
	A float32 `json:"a"`
}

var (
	White   = Color{1, 1, 1, 1}
	Black   = Color{0, 0, 0, 1}
	Red     = Color{1, 0, 0, 1}
	Green   = Color{0, 1, 0, 1}
	Blue    = Color{0, 0, 1, 1}
	Yellow  = Color{1, 1, 0, 1}
	Magenta = Color{1, 0, 1, 1}
	Cyan    = Color{0, 1, 1, 1}
)

// RGB builds an opaque Color from the given channels.
func RGB(r, g, b float32) Color {
	return Color{r, g, b, 1}
}

// RenderParams is the mutable parameter bundle an effect transform adjusts.
// The sprite draw methods fill it in from the current frame, run the active
// effect over it, and only then compose the actual draw call.
type RenderParams struct {
	X        float32
	Y        float32
	DestW    float32
	DestH    float32
	Rotation float32 // radians, about the destination center
	FlipX    bool
	FlipY    bool
	Source   Rect
	Color    Color
}

// Env carries the external collaborators some transforms need: the screen
// dimensions (directional slides) and a uniform random source in [0,1)
// (glitch). Everything else ignores it. Injecting these keeps the transforms
// deterministic under test.
type Env struct {
	ScreenW float32
	ScreenH float32
	Rand    func() float32
}

func (e Env) rand() float32 {
	if e.Rand == nil {
		return 0.5
	}
	return e.Rand()
}

func (e Env) randRange(min, max float32) float32 {
	return min + (max-min)*e.rand()
}

func (e Env) randIndex(n int) int {
	if n <= 0 {
		return 0
	}
	i := int(e.rand() * float32(n))
	if i >= n {
		i = n - 1
	}
	return i
}

// SlideEdge names where a sliding sprite enters from or exits to.
type SlideEdge string

const (
	SlideLeft   SlideEdge = "left"
	SlideRight  SlideEdge = "right"
	SlideTop    SlideEdge = "top"
	SlideBottom SlideEdge = "bottom"
	SlideCustom SlideEdge = "custom"
)

// SlideDirection is the target position descriptor for the slide effects.
// For SlideCustom, X and Y give the off-screen point directly.
type SlideDirection struct {
	Edge SlideEdge `json:"edge"`
	X    float32   `json:"x,omitempty"`
	Y    float32   `json:"y,omitempty"`
}

// targetPosition resolves the off-screen anchor a slide moves from or toward.
func (d SlideDirection) targetPosition(env Env, x, y, tileW, tileH float32) (float32, float32) {
	switch d.Edge {
	case SlideLeft:
		return -tileW, y
	case SlideRight:
		return env.ScreenW, y
	case SlideTop:
		return x, -tileH
	case SlideBottom:
		return x, env.ScreenH
	case SlideCustom:
		return d.X, d.Y
	}
	return x, y
}

// FlipAxis selects the mirror axis for the flip effect.
type FlipAxis string

const (
	FlipHorizontal FlipAxis = "horizontal"
	FlipVertical   FlipAxis = "vertical"
)
