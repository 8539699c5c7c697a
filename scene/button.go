package scene

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/barrk"
	"github.com/tanema/gween/ease"
)

// Button is a fixed-size clickable rectangle with a centered label.
//
// Interaction follows press capture: a press that starts over the button
// keeps it Pressed until release, wherever the pointer goes in between. A
// press that starts elsewhere never presses the button, but hovering over it
// while held still reports Hovered.
type Button struct {
	Name   string
	Width  float64
	Height float64

	// Bounds is the screen-space rectangle, set by Layout.
	Bounds Rect

	// HitShape overrides Bounds for hit testing. Coordinates are relative to
	// the top-left of Bounds.
	HitShape HitShape

	// Fill is the rendered background color. It eases toward the color passed
	// to SetFill over FadeSeconds.
	Fill        barrk.Color
	FadeSeconds float32

	Label Label

	interaction barrk.Interaction
	wasDown     bool
	captured    bool
	target      barrk.Color
	tween       *ColorTween
}

// NewButton creates an idle button of the given size.
func NewButton(name string, width, height float64, label Label) *Button {
	return &Button{
		Name:   name,
		Width:  width,
		Height: height,
		Bounds: Rect{Width: width, Height: height},
		Fill:   barrk.ColorIdle,
		target: barrk.ColorIdle,
		Label:  label,
	}
}

// Layout centers the button in a screen of the given size.
func (b *Button) Layout(screenW, screenH int) {
	b.Bounds = Rect{
		X:      (float64(screenW) - b.Width) / 2,
		Y:      (float64(screenH) - b.Height) / 2,
		Width:  b.Width,
		Height: b.Height,
	}
}

// Contains reports whether the screen point (x, y) hits the button.
func (b *Button) Contains(x, y float64) bool {
	if b.HitShape != nil {
		return b.HitShape.Contains(x-b.Bounds.X, y-b.Bounds.Y)
	}
	return b.Bounds.Contains(x, y)
}

// Interaction returns the current interaction state.
func (b *Button) Interaction() barrk.Interaction {
	return b.interaction
}

// Update runs the interaction state machine for one pointer sample and
// reports the new state and whether it differs from the previous frame.
func (b *Button) Update(p PointerSample) (barrk.Interaction, bool) {
	over := b.Contains(p.X, p.Y)
	justPressed := p.Pressed && !b.wasDown
	b.wasDown = p.Pressed

	var next barrk.Interaction
	switch {
	case !p.Pressed:
		b.captured = false
		if over {
			next = barrk.InteractionHovered
		} else {
			next = barrk.InteractionIdle
		}
	case justPressed && over:
		b.captured = true
		next = barrk.InteractionPressed
	case b.captured:
		next = barrk.InteractionPressed
	case over:
		next = barrk.InteractionHovered
	default:
		next = barrk.InteractionIdle
	}

	changed := next != b.interaction
	b.interaction = next
	return next, changed
}

// SetFill sets the target background color. With FadeSeconds > 0 the
// rendered fill eases toward it; otherwise it snaps.
func (b *Button) SetFill(c barrk.Color) {
	if c == b.target {
		return
	}
	b.target = c
	if b.FadeSeconds <= 0 {
		b.Fill = c
		b.tween = nil
		return
	}
	b.tween = TweenColor(&b.Fill, c, b.FadeSeconds, ease.OutQuad)
}

// Target returns the color the fill is heading toward.
func (b *Button) Target() barrk.Color {
	return b.target
}

// Advance moves the fill tween forward by dt seconds.
func (b *Button) Advance(dt float32) {
	if b.tween == nil {
		return
	}
	b.tween.Update(dt)
	if b.tween.Done {
		// gween runs in float32; land exactly on the target.
		b.Fill = b.target
		b.tween = nil
	}
}

// Draw renders the fill and the label. pixel is a 1x1 white image.
func (b *Button) Draw(dst *ebiten.Image, pixel *ebiten.Image) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(b.Bounds.Width, b.Bounds.Height)
	op.GeoM.Translate(b.Bounds.X, b.Bounds.Y)
	op.ColorScale.ScaleWithColor(b.Fill)
	dst.DrawImage(pixel, op)
	b.Label.Draw(dst, b.Bounds)
}
