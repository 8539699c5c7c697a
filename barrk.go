package barrk

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Color implements image/color.Color so it can be handed straight to
// Ebitengine's ColorScale.ScaleWithColor.
type Color struct {
	R, G, B, A float64
}

// Button and window palette.
var (
	ColorIdle       = Color{0.15, 0.15, 0.15, 1}
	ColorHovered    = Color{0.25, 0.25, 0.25, 1}
	ColorPressed    = Color{0.35, 0.75, 0.35, 1}
	ColorBackground = Color{0.11, 0.11, 0.11, 1}
	ColorText       = Color{1, 1, 1, 1}
)

// RGBA returns the alpha-premultiplied 16-bit components, satisfying color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	r = uint32(clamp01(c.R)*alpha*0xffff + 0.5)
	g = uint32(clamp01(c.G)*alpha*0xffff + 0.5)
	b = uint32(clamp01(c.B)*alpha*0xffff + 0.5)
	a = uint32(alpha*0xffff + 0.5)
	return r, g, b, a
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Interaction is the pointer state relative to the button.
type Interaction uint8

const (
	InteractionIdle    Interaction = iota // pointer elsewhere, no press captured
	InteractionHovered                    // pointer over the button
	InteractionPressed                    // press began over the button and is held
)

// String returns the state name.
func (i Interaction) String() string {
	switch i {
	case InteractionIdle:
		return "Idle"
	case InteractionHovered:
		return "Hovered"
	case InteractionPressed:
		return "Pressed"
	default:
		return "Unknown"
	}
}

// StyleFor returns the button background color for an interaction state.
func StyleFor(i Interaction) Color {
	switch i {
	case InteractionHovered:
		return ColorHovered
	case InteractionPressed:
		return ColorPressed
	default:
		return ColorIdle
	}
}
