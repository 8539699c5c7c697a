package barrk

import (
	"bytes"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func newTestResponder(t *testing.T, seed uint64) (*Responder, *bytes.Buffer) {
	t.Helper()
	var console bytes.Buffer
	r, err := NewResponder(DefaultRoster(), NewSeededSelector(seed), &console, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewResponder: %v", err)
	}
	return r, &console
}

func TestNewResponderRejectsEmptyRoster(t *testing.T) {
	if _, err := NewResponder(nil, nil, nil, zerolog.Nop()); !errors.Is(err, ErrNoSpeakers) {
		t.Errorf("err = %v, want ErrNoSpeakers", err)
	}
	if _, err := NewResponder(&Roster{}, nil, nil, zerolog.Nop()); !errors.Is(err, ErrNoSpeakers) {
		t.Errorf("empty roster err = %v, want ErrNoSpeakers", err)
	}
}

// --- Interaction transitions ---

func TestOnInteractionSuffixAndColor(t *testing.T) {
	tests := []struct {
		state    Interaction
		emphatic bool
		color    Color
	}{
		{InteractionIdle, false, ColorIdle},
		{InteractionHovered, false, ColorHovered},
		{InteractionPressed, true, ColorPressed},
	}
	r, _ := newTestResponder(t, 7)
	for _, tt := range tests {
		t.Run(tt.state.String(), func(t *testing.T) {
			for i := 0; i < 100; i++ {
				display := InitialDisplay()
				if err := r.OnInteraction(tt.state, &display); err != nil {
					t.Fatal(err)
				}
				if got := strings.HasSuffix(display.Text, "!!"); got != tt.emphatic {
					t.Fatalf("text %q: ends in !! = %v, want %v", display.Text, got, tt.emphatic)
				}
				if display.Color != tt.color {
					t.Fatalf("color = %v, want %v", display.Color, tt.color)
				}
			}
		})
	}
}

func TestPaletteDistinct(t *testing.T) {
	colors := []Color{StyleFor(InteractionIdle), StyleFor(InteractionHovered), StyleFor(InteractionPressed)}
	for i := range colors {
		for j := i + 1; j < len(colors); j++ {
			if colors[i] == colors[j] {
				t.Errorf("colors %d and %d are equal: %v", i, j, colors[i])
			}
		}
	}
}

func TestOnInteractionAlwaysChangesText(t *testing.T) {
	r, _ := newTestResponder(t, 8)
	display := InitialDisplay()
	states := []Interaction{InteractionHovered, InteractionPressed, InteractionHovered, InteractionIdle}
	for i := 0; i < 2000; i++ {
		prev := display.Text
		if err := r.OnInteraction(states[i%len(states)], &display); err != nil {
			t.Fatal(err)
		}
		if display.Text == prev {
			t.Fatalf("text did not change at step %d: %q", i, prev)
		}
	}
}

func TestHoverThenPressScenario(t *testing.T) {
	r, _ := newTestResponder(t, 9)
	display := InitialDisplay()
	if display.Text != "Dog" {
		t.Fatalf("initial text = %q, want Dog", display.Text)
	}

	if err := r.OnInteraction(InteractionHovered, &display); err != nil {
		t.Fatal(err)
	}
	hovered := display.Text
	switch hovered {
	case "Bark!", "Woof!", "arf!":
	default:
		t.Fatalf("hover text = %q, want a bark", hovered)
	}
	if display.Color != ColorHovered {
		t.Errorf("hover color = %v, want %v", display.Color, ColorHovered)
	}

	if err := r.OnInteraction(InteractionPressed, &display); err != nil {
		t.Fatal(err)
	}
	bark := strings.TrimSuffix(display.Text, EmphasisSuffix)
	if bark == display.Text {
		t.Fatalf("press text %q lacks emphasis", display.Text)
	}
	if bark == hovered {
		t.Errorf("press bark %q repeats hover bark", bark)
	}
	if display.Color != ColorPressed {
		t.Errorf("press color = %v, want %v", display.Color, ColorPressed)
	}
}

// --- Timer ticks ---

func TestOnTickConsoleLines(t *testing.T) {
	r, console := newTestResponder(t, 10)
	for i := 0; i < 50; i++ {
		if _, err := r.OnTick(); err != nil {
			t.Fatal(err)
		}
	}
	lines := strings.Split(strings.TrimSuffix(console.String(), "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("got %d lines, want 50", len(lines))
	}
	re := regexp.MustCompile(`^(Bark|Woof|arf)!$`)
	for i, line := range lines {
		if !re.MatchString(line) {
			t.Errorf("line %d = %q does not match %s", i, line, re)
		}
		if i > 0 && line == lines[i-1] {
			t.Errorf("line %d repeats %q", i, line)
		}
	}
	if r.LastPrinted() != lines[len(lines)-1] {
		t.Errorf("LastPrinted = %q, want %q", r.LastPrinted(), lines[len(lines)-1])
	}
}

func TestOnTickLeavesDisplayAlone(t *testing.T) {
	r, _ := newTestResponder(t, 11)
	display := InitialDisplay()
	if err := r.OnInteraction(InteractionHovered, &display); err != nil {
		t.Fatal(err)
	}
	before := display
	if _, err := r.OnTick(); err != nil {
		t.Fatal(err)
	}
	if display != before {
		t.Errorf("display changed on tick: %+v -> %+v", before, display)
	}
}

func TestInteractionLogsAtDebug(t *testing.T) {
	var buf bytes.Buffer
	r, err := NewResponder(DefaultRoster(), NewSeededSelector(12), nil, zerolog.New(&buf).Level(zerolog.DebugLevel))
	if err != nil {
		t.Fatal(err)
	}
	display := InitialDisplay()
	if err := r.OnInteraction(InteractionPressed, &display); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, `"state":"Pressed"`) || !strings.Contains(out, `"from":"Dog"`) {
		t.Errorf("unexpected log output: %s", out)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := ColorPressed.RGBA()
	if a != 0xffff {
		t.Errorf("a = %#x, want 0xffff", a)
	}
	if r >= g || b >= g {
		t.Errorf("pressed should be green dominant: r=%#x g=%#x b=%#x", r, g, b)
	}
	_, _, _, a = Color{1, 1, 1, 2}.RGBA()
	if a != 0xffff {
		t.Errorf("alpha not clamped: %#x", a)
	}
}
