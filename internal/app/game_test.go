package app

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/phanxgames/barrk"
	"github.com/phanxgames/barrk/internal/config"
	"github.com/phanxgames/barrk/scene"
)

type stillPointer struct{ sample scene.PointerSample }

func (p *stillPointer) Sample() scene.PointerSample { return p.sample }

func newTestGame(t *testing.T, pointer scene.PointerSource) (*Game, *bytes.Buffer) {
	t.Helper()
	cfg := config.Default()
	cfg.Width, cfg.Height = 800, 600
	cfg.Seed = 1
	cfg.ColorFadeSeconds = 0
	var console bytes.Buffer
	g, err := New(cfg, Options{Console: &console, Pointer: pointer}, zerolog.Nop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return g, &console
}

const frame = 20 * time.Millisecond

func TestStepPrintsOnTimer(t *testing.T) {
	g, console := newTestGame(t, &stillPointer{})
	for i := 0; i < 99; i++ {
		if err := g.Step(frame); err != nil {
			t.Fatal(err)
		}
	}
	if console.Len() != 0 {
		t.Fatalf("printed before 2s: %q", console.String())
	}
	if err := g.Step(frame); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if err := g.Step(frame); err != nil {
			t.Fatal(err)
		}
	}
	lines := strings.Split(strings.TrimSuffix(console.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines after 4s, want 2: %q", len(lines), console.String())
	}
	re := regexp.MustCompile(`^(Bark|Woof|arf)!$`)
	for _, l := range lines {
		if !re.MatchString(l) {
			t.Errorf("line %q does not match %s", l, re)
		}
	}
	if g.Display() != barrk.InitialDisplay() {
		t.Errorf("timer changed the display: %+v", g.Display())
	}
}

func TestStepHoverAndPress(t *testing.T) {
	p := &stillPointer{}
	g, _ := newTestGame(t, p)
	if err := g.Step(frame); err != nil {
		t.Fatal(err)
	}
	if g.Display().Text != "Dog" {
		t.Fatalf("initial text = %q", g.Display().Text)
	}

	p.sample = scene.PointerSample{X: 400, Y: 300}
	if err := g.Step(frame); err != nil {
		t.Fatal(err)
	}
	hovered := g.Display()
	if hovered.Color != barrk.ColorHovered || !strings.HasSuffix(hovered.Text, "!") || strings.HasSuffix(hovered.Text, "!!") {
		t.Fatalf("hover display = %+v", hovered)
	}
	if got := g.Scene().Button().Label.Content; got != hovered.Text {
		t.Errorf("label = %q, want %q", got, hovered.Text)
	}

	// Lingering does not redraw.
	if err := g.Step(frame); err != nil {
		t.Fatal(err)
	}
	if g.Display() != hovered {
		t.Errorf("display changed without a transition: %+v", g.Display())
	}

	p.sample.Pressed = true
	if err := g.Step(frame); err != nil {
		t.Fatal(err)
	}
	pressed := g.Display()
	if pressed.Color != barrk.ColorPressed || !strings.HasSuffix(pressed.Text, "!!") {
		t.Fatalf("press display = %+v", pressed)
	}
	if strings.TrimSuffix(pressed.Text, barrk.EmphasisSuffix) == hovered.Text {
		t.Errorf("press repeated hover bark %q", hovered.Text)
	}
	if g.Scene().Button().Fill != barrk.ColorPressed {
		t.Errorf("fill = %v, want %v", g.Scene().Button().Fill, barrk.ColorPressed)
	}
}

func TestScriptDrivesButton(t *testing.T) {
	runner, err := scene.LoadTestScript([]byte(`{"steps":[{"action":"move","x":400,"y":300}]}`))
	if err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Width, cfg.Height = 800, 600
	g, err := New(cfg, Options{
		Console:         &bytes.Buffer{},
		Pointer:         &stillPointer{sample: scene.PointerSample{X: 1, Y: 1}},
		Script:          runner,
		ExitAfterScript: true,
	}, zerolog.Nop())
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if err := g.Step(frame); err != nil {
			t.Fatal(err)
		}
	}
	if g.Scene().Button().Interaction() != barrk.InteractionHovered {
		t.Errorf("interaction = %v, want Hovered", g.Scene().Button().Interaction())
	}
	if !runner.Done() {
		t.Error("runner should be done")
	}
}

func TestNewRejectsEmptyUtterances(t *testing.T) {
	cfg := config.Default()
	cfg.Utterances = nil
	if _, err := New(cfg, Options{}, zerolog.Nop()); err == nil {
		t.Fatal("expected error")
	}
}

func TestInspectorLines(t *testing.T) {
	g, _ := newTestGame(t, &stillPointer{})
	lines := strings.Join(g.inspectorLines(), "\n")
	for _, want := range []string{`Dog #0: "Bark"`, `Dog #2: "arf"`, `display: "Dog"`, "interaction: Idle", "timer: 0.00s / 2.00s"} {
		if !strings.Contains(lines, want) {
			t.Errorf("inspector missing %q:\n%s", want, lines)
		}
	}
}
