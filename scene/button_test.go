package scene

import (
	"testing"

	"github.com/phanxgames/barrk"
)

func newTestButton() *Button {
	b := NewButton("dog", 150, 65, Label{})
	b.Layout(800, 600) // bounds: (325, 267.5) 150x65
	return b
}

const (
	insideX, insideY   = 400, 300
	outsideX, outsideY = 10, 10
)

func TestButtonLayoutCenters(t *testing.T) {
	b := newTestButton()
	want := Rect{X: 325, Y: 267.5, Width: 150, Height: 65}
	if b.Bounds != want {
		t.Errorf("Bounds = %+v, want %+v", b.Bounds, want)
	}
}

func TestButtonTransitions(t *testing.T) {
	type frame struct {
		x, y    float64
		pressed bool
		want    barrk.Interaction
		changed bool
	}
	tests := []struct {
		name   string
		frames []frame
	}{
		{"idle stays idle", []frame{
			{outsideX, outsideY, false, barrk.InteractionIdle, false},
			{outsideX + 1, outsideY, false, barrk.InteractionIdle, false},
		}},
		{"hover then leave", []frame{
			{insideX, insideY, false, barrk.InteractionHovered, true},
			{insideX + 5, insideY, false, barrk.InteractionHovered, false},
			{outsideX, outsideY, false, barrk.InteractionIdle, true},
		}},
		{"hover press release", []frame{
			{insideX, insideY, false, barrk.InteractionHovered, true},
			{insideX, insideY, true, barrk.InteractionPressed, true},
			{insideX, insideY, true, barrk.InteractionPressed, false},
			{insideX, insideY, false, barrk.InteractionHovered, true},
		}},
		{"press captured while leaving", []frame{
			{insideX, insideY, true, barrk.InteractionPressed, true},
			{outsideX, outsideY, true, barrk.InteractionPressed, false},
			{outsideX, outsideY, false, barrk.InteractionIdle, true},
		}},
		{"press outside then drag over", []frame{
			{outsideX, outsideY, true, barrk.InteractionIdle, false},
			{insideX, insideY, true, barrk.InteractionHovered, true},
			{insideX, insideY, false, barrk.InteractionHovered, false},
			{insideX, insideY, true, barrk.InteractionPressed, true},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := newTestButton()
			for i, f := range tt.frames {
				got, changed := b.Update(PointerSample{X: f.x, Y: f.y, Pressed: f.pressed})
				if got != f.want || changed != f.changed {
					t.Fatalf("frame %d: got (%v, %v), want (%v, %v)", i, got, changed, f.want, f.changed)
				}
			}
		})
	}
}

func TestButtonHitShape(t *testing.T) {
	b := newTestButton()
	b.HitShape = HitCircle{CenterX: 75, CenterY: 32.5, Radius: 30}
	if !b.Contains(400, 300) {
		t.Error("center should hit")
	}
	if b.Contains(b.Bounds.X+1, b.Bounds.Y+1) {
		t.Error("corner should miss the circle")
	}
}

func TestButtonSetFillInstant(t *testing.T) {
	b := newTestButton()
	b.SetFill(barrk.ColorPressed)
	if b.Fill != barrk.ColorPressed {
		t.Errorf("Fill = %v, want %v", b.Fill, barrk.ColorPressed)
	}
}

func TestButtonSetFillFades(t *testing.T) {
	b := newTestButton()
	b.FadeSeconds = 0.2
	b.SetFill(barrk.ColorPressed)
	if b.Fill != barrk.ColorIdle {
		t.Fatalf("Fill moved before Advance: %v", b.Fill)
	}
	if b.Target() != barrk.ColorPressed {
		t.Fatalf("Target = %v, want %v", b.Target(), barrk.ColorPressed)
	}
	b.Advance(0.1)
	if b.Fill == barrk.ColorIdle || b.Fill == barrk.ColorPressed {
		t.Errorf("Fill should be between colors mid-fade: %v", b.Fill)
	}
	b.Advance(0.1)
	b.Advance(0.1)
	if b.Fill != barrk.ColorPressed {
		t.Errorf("Fill = %v, want exactly %v after fade", b.Fill, barrk.ColorPressed)
	}
}
