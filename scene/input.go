package scene

import "github.com/hajimehoshi/ebiten/v2"

// --- Geometry ---

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.X + r.Width/2, r.Y + r.Height/2
}

// HitShape is a custom hit region in a widget's local coordinates.
type HitShape interface {
	Contains(x, y float64) bool
}

// HitCircle is a circular hit area in local coordinates.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// --- Pointer sources ---

// PointerSample is one frame's reading of the primary pointer in screen
// coordinates.
type PointerSample struct {
	X, Y    float64
	Pressed bool
}

// PointerSource supplies the primary pointer once per frame.
type PointerSource interface {
	Sample() PointerSample
}

// EbitenPointer reads the first active touch, or the mouse when nothing is
// touching. Only the left mouse button counts as a press.
type EbitenPointer struct {
	touchIDs []ebiten.TouchID
	touching bool
	last     PointerSample
}

// Sample reads the pointer. Must be called from the game's Update.
func (p *EbitenPointer) Sample() PointerSample {
	p.touchIDs = ebiten.AppendTouchIDs(p.touchIDs[:0])
	if len(p.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(p.touchIDs[0])
		p.touching = true
		p.last = PointerSample{X: float64(tx), Y: float64(ty), Pressed: true}
		return p.last
	}
	if p.touching {
		// Finger lifted: release where it was so the button sees a release
		// over itself instead of a jump to the stale mouse position.
		p.touching = false
		p.last.Pressed = false
		return p.last
	}
	mx, my := ebiten.CursorPosition()
	p.last = PointerSample{
		X:       float64(mx),
		Y:       float64(my),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
	}
	return p.last
}

// --- Input ---

// Input samples the pointer once per frame. Injected events take priority
// over the real source and are consumed one per frame.
type Input struct {
	// Sticky holds the last injected sample once the queue drains, so a
	// scripted run is not disturbed by wherever the real cursor happens to be.
	Sticky bool

	source       PointerSource
	queue        []PointerSample
	injectDown   bool
	last         PointerSample
	lastInjected PointerSample
	injected     bool
}

// NewInput creates an Input reading from source. A nil source only ever
// reports injected events.
func NewInput(source PointerSource) *Input {
	return &Input{source: source}
}

// Poll returns this frame's pointer sample.
func (in *Input) Poll() PointerSample {
	if len(in.queue) > 0 {
		evt := in.queue[0]
		copy(in.queue, in.queue[1:])
		in.queue = in.queue[:len(in.queue)-1]
		in.last = evt
		in.lastInjected = evt
		in.injected = true
		return evt
	}
	if in.Sticky && in.injected {
		in.last = in.lastInjected
		return in.last
	}
	if in.source != nil {
		in.last = in.source.Sample()
	}
	return in.last
}

// Last returns the most recent sample returned by Poll.
func (in *Input) Last() PointerSample {
	return in.last
}

// Pending returns the number of injected events not yet consumed.
func (in *Input) Pending() int {
	return len(in.queue)
}
