// Package app runs barrk as an ebiten.Game.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"

	"github.com/phanxgames/barrk"
	"github.com/phanxgames/barrk/internal/config"
	"github.com/phanxgames/barrk/scene"
)

// Options carries the collaborators that tests replace.
type Options struct {
	// Console receives one line per timer tick. Defaults to os.Stdout.
	Console io.Writer
	// Pointer is the pointer source. Defaults to the mouse and touch screen.
	Pointer scene.PointerSource
	// Now is the frame clock. Defaults to time.Now.
	Now func() time.Time
	// Script, when set, drives input and screenshots.
	Script *scene.TestRunner
	// ExitAfterScript terminates the game once Script is done.
	ExitAfterScript bool
}

// Game owns all process state: the responder, the timer, the display state
// and the scene. Ebitengine calls Update and Draw on a single goroutine.
type Game struct {
	cfg       config.Config
	log       zerolog.Logger
	responder *barrk.Responder
	timer     *barrk.Timer
	display   barrk.DisplayState
	scene     *scene.Scene
	diag      *scene.Diagnostics

	now             func() time.Time
	last            time.Time
	exitAfterScript bool
}

// New builds a game from a validated config.
func New(cfg config.Config, opts Options, log zerolog.Logger) (*Game, error) {
	roster, err := barrk.DogRoster(cfg.Utterances)
	if err != nil {
		return nil, fmt.Errorf("app: speakers: %w", err)
	}
	selector := barrk.NewSelector(nil)
	if cfg.Seed != 0 {
		selector = barrk.NewSeededSelector(cfg.Seed)
	}
	console := opts.Console
	if console == nil {
		console = os.Stdout
	}
	responder, err := barrk.NewResponder(roster, selector, console, log.With().Str("component", "responder").Logger())
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}

	font, err := scene.LoadFont(cfg.FontPath, cfg.FontSize)
	if err != nil {
		return nil, fmt.Errorf("app: %w", err)
	}
	display := barrk.InitialDisplay()
	button := scene.NewButton("dog", cfg.ButtonWidth, cfg.ButtonHeight, scene.Label{
		Content: display.Text,
		Font:    font,
		Color:   barrk.ColorText,
	})
	button.FadeSeconds = float32(cfg.ColorFadeSeconds)

	pointer := opts.Pointer
	if pointer == nil {
		pointer = &scene.EbitenPointer{}
	}
	sc := scene.New(button, scene.NewInput(pointer), log.With().Str("component", "scene").Logger())
	sc.ScreenshotDir = cfg.ScreenshotDir
	sc.Overlay.Visible = cfg.Inspector
	sc.Layout(cfg.Width, cfg.Height)
	if opts.Script != nil {
		sc.SetTestRunner(opts.Script)
	}

	g := &Game{
		cfg:             cfg,
		log:             log,
		responder:       responder,
		timer:           barrk.NewRepeatingTimer(cfg.TickInterval()),
		display:         display,
		scene:           sc,
		now:             opts.Now,
		exitAfterScript: opts.ExitAfterScript && opts.Script != nil,
	}
	if g.now == nil {
		g.now = time.Now
	}
	if cfg.Diagnostics {
		g.diag = scene.NewDiagnostics(log.With().Str("component", "diagnostics").Logger(), cfg.DiagnosticsInterval())
	}
	return g, nil
}

// Display returns the current display state.
func (g *Game) Display() barrk.DisplayState {
	return g.display
}

// Scene returns the game's scene.
func (g *Game) Scene() *scene.Scene {
	return g.scene
}

// Step runs one frame of logic in a fixed order: advance the timer, poll the
// interaction, invoke the responder, then hand the display state to the
// scene.
func (g *Game) Step(dt time.Duration) error {
	if g.timer.Tick(dt) {
		if _, err := g.responder.OnTick(); err != nil {
			return err
		}
	}

	g.scene.StepScript()
	state, changed := g.scene.PollInteraction()
	if changed {
		if err := g.responder.OnInteraction(state, &g.display); err != nil {
			return err
		}
	}

	g.scene.Apply(g.display)
	g.scene.Advance(dt)
	if g.diag != nil {
		g.diag.Record(dt)
	}
	return nil
}

// Update implements ebiten.Game.
func (g *Game) Update() error {
	now := g.now()
	var dt time.Duration
	if !g.last.IsZero() {
		dt = now.Sub(g.last)
	}
	g.last = now

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.scene.Overlay.Toggle()
	}
	if g.exitAfterScript && g.scene.TestRunner().Done() {
		g.log.Info().Msg("test script finished")
		return ebiten.Termination
	}
	return g.Step(dt)
}

// Draw implements ebiten.Game.
func (g *Game) Draw(screen *ebiten.Image) {
	var lines []string
	if g.scene.Overlay.Visible {
		lines = g.inspectorLines()
	}
	g.scene.Draw(screen, lines)
}

// Layout implements ebiten.Game. The logical screen tracks the window size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.scene.Layout(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// inspectorLines describes the live state for the overlay.
func (g *Game) inspectorLines() []string {
	speakers := g.responder.Roster().Speakers()
	lines := make([]string, 0, len(speakers)+6)
	lines = append(lines, "speakers:")
	for i, s := range speakers {
		lines = append(lines, fmt.Sprintf("  %s #%d: %q", s.Kind(), i, s.Utterance()))
	}
	c := g.display.Color
	lines = append(lines,
		fmt.Sprintf("display: %q", g.display.Text),
		fmt.Sprintf("color: (%.2f, %.2f, %.2f)", c.R, c.G, c.B),
		fmt.Sprintf("interaction: %s", g.scene.Button().Interaction()),
		fmt.Sprintf("timer: %.2fs / %.2fs", g.timer.Elapsed().Seconds(), g.timer.Interval().Seconds()),
		fmt.Sprintf("last console: %q", g.responder.LastPrinted()),
	)
	return lines
}

// Run opens the window and blocks until it is closed or the game stops.
func Run(g *Game) error {
	ebiten.SetWindowTitle(g.cfg.Title)
	ebiten.SetWindowSize(g.cfg.Width, g.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	g.log.Info().
		Int("speakers", g.responder.Roster().Len()).
		Dur("tick", g.timer.Interval()).
		Msg("starting")

	err := ebiten.RunGame(g)
	if errors.Is(err, ebiten.Termination) {
		return nil
	}
	return err
}
