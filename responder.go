package barrk

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
)

// EmphasisSuffix is appended to the bark shown while the button is pressed.
const EmphasisSuffix = "!!"

// DisplayState is the text and background color shown on the button.
type DisplayState struct {
	Text  string
	Color Color
}

// InitialDisplay returns the state shown before any interaction: the speaker
// tag on an idle button.
func InitialDisplay() DisplayState {
	return DisplayState{Text: KindDog, Color: ColorIdle}
}

// Responder turns interaction changes and timer ticks into barks. It is the
// only writer of DisplayState.
type Responder struct {
	roster      *Roster
	selector    *Selector
	console     io.Writer
	log         zerolog.Logger
	lastPrinted string
	printed     bool
}

// NewResponder creates a responder over roster. Console receives one line per
// tick. Returns ErrNoSpeakers if roster is nil or empty.
func NewResponder(roster *Roster, selector *Selector, console io.Writer, log zerolog.Logger) (*Responder, error) {
	if roster == nil || roster.Len() == 0 {
		return nil, ErrNoSpeakers
	}
	if selector == nil {
		selector = NewSelector(nil)
	}
	if console == nil {
		console = io.Discard
	}
	return &Responder{
		roster:   roster,
		selector: selector,
		console:  console,
		log:      log,
	}, nil
}

// Roster returns the speaker set the responder draws from.
func (r *Responder) Roster() *Roster { return r.roster }

// OnInteraction handles a change of the button's interaction state. A new
// bark that differs from the current text is always drawn, then the text
// and color are set for the new state.
func (r *Responder) OnInteraction(state Interaction, display *DisplayState) error {
	bark, err := r.selector.PickDifferent(display.Text, r.roster.Barks())
	if err != nil {
		return fmt.Errorf("barrk: interaction %s: %w", state, err)
	}
	prev := display.Text
	if state == InteractionPressed {
		display.Text = bark + EmphasisSuffix
	} else {
		display.Text = bark
	}
	display.Color = StyleFor(state)
	r.log.Debug().
		Stringer("state", state).
		Str("from", prev).
		Str("to", display.Text).
		Msg("interaction")
	return nil
}

// OnTick draws a bark different from the previously printed one and writes
// it to the console as a single line. The first tick is unconstrained.
func (r *Responder) OnTick() (string, error) {
	var (
		bark string
		err  error
	)
	if r.printed {
		bark, err = r.selector.PickDifferent(r.lastPrinted, r.roster.Barks())
	} else {
		bark, err = r.selector.Pick(r.roster.Barks())
	}
	if err != nil {
		return "", fmt.Errorf("barrk: tick: %w", err)
	}
	if _, err := fmt.Fprintln(r.console, bark); err != nil {
		r.log.Warn().Err(err).Msg("console write failed")
	}
	r.lastPrinted = bark
	r.printed = true
	r.log.Debug().Str("bark", bark).Msg("tick")
	return bark, nil
}

// LastPrinted returns the most recent console bark, or "" before the first tick.
func (r *Responder) LastPrinted() string { return r.lastPrinted }
