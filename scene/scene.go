package scene

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/phanxgames/barrk"
	"github.com/rs/zerolog"
)

// Scene is the top-level object that owns the button, pointer input, the
// optional test runner, and the render state for one window.
type Scene struct {
	ClearColor    barrk.Color
	ScreenshotDir string
	Overlay       Overlay

	button *Button
	input  *Input
	runner *TestRunner
	log    zerolog.Logger

	width, height   int
	screenshotQueue []string
	pixel           *ebiten.Image // 1x1 white, created on first Draw
}

// New creates a scene around button, reading pointer input from input.
func New(button *Button, input *Input, log zerolog.Logger) *Scene {
	return &Scene{
		ClearColor:    barrk.ColorBackground,
		ScreenshotDir: "screenshots",
		button:        button,
		input:         input,
		log:           log,
	}
}

// Button returns the scene's button.
func (s *Scene) Button() *Button {
	return s.button
}

// Input returns the scene's pointer input.
func (s *Scene) Input() *Input {
	return s.input
}

// SetTestRunner attaches a TestRunner. Input becomes sticky while a runner is
// attached. Passing nil detaches it.
func (s *Scene) SetTestRunner(runner *TestRunner) {
	s.runner = runner
	s.input.Sticky = runner != nil
}

// TestRunner returns the attached runner, or nil.
func (s *Scene) TestRunner() *TestRunner {
	return s.runner
}

// Layout records the screen size and centers the button.
func (s *Scene) Layout(width, height int) {
	if width == s.width && height == s.height {
		return
	}
	s.width, s.height = width, height
	s.button.Layout(width, height)
}

// Size returns the last screen size passed to Layout.
func (s *Scene) Size() (int, int) {
	return s.width, s.height
}

// StepScript advances the attached test runner by one frame.
func (s *Scene) StepScript() {
	if s.runner != nil {
		s.runner.step(s)
	}
}

// PollInteraction samples the pointer and updates the button. The bool
// reports whether the interaction changed since the previous frame.
func (s *Scene) PollInteraction() (barrk.Interaction, bool) {
	return s.button.Update(s.input.Poll())
}

// Apply hands the display state to the renderer: the label shows the text
// and the fill heads for the color.
func (s *Scene) Apply(d barrk.DisplayState) {
	s.button.Label.Content = d.Text
	s.button.SetFill(d.Color)
}

// Advance steps animations by dt.
func (s *Scene) Advance(dt time.Duration) {
	s.button.Advance(float32(dt.Seconds()))
}

// Draw renders the scene to screen. overlayLines are shown when the overlay
// is visible.
func (s *Scene) Draw(screen *ebiten.Image, overlayLines []string) {
	if s.pixel == nil {
		s.pixel = ebiten.NewImage(1, 1)
		s.pixel.Fill(barrk.ColorText)
	}
	screen.Fill(s.ClearColor)
	s.button.Draw(screen, s.pixel)
	if s.Overlay.Visible {
		s.Overlay.Draw(screen, s.pixel, overlayLines)
	}
	s.flushScreenshots(screen)
}
