package barrk

import "errors"

// ErrNoSpeakers is returned when a roster would be built with no speakers.
var ErrNoSpeakers = errors.New("barrk: roster has no speakers")

// KindDog is the identity tag of every default speaker. It is also the
// initial button label.
const KindDog = "Dog"

// BarkSuffix is appended to an utterance to form a bark.
const BarkSuffix = "!"

// Speaker is a tagged entity that says exactly one utterance. The utterance is
// fixed at construction.
type Speaker struct {
	kind      string
	utterance string
}

// NewSpeaker creates a speaker with the given tag and utterance.
func NewSpeaker(kind, utterance string) Speaker {
	return Speaker{kind: kind, utterance: utterance}
}

// Kind returns the speaker's identity tag.
func (s Speaker) Kind() string { return s.kind }

// Utterance returns what the speaker says.
func (s Speaker) Utterance() string { return s.utterance }

// Bark returns the utterance with BarkSuffix.
func (s Speaker) Bark() string { return s.utterance + BarkSuffix }

// Roster is an immutable, ordered, non-empty list of speakers.
type Roster struct {
	speakers []Speaker
	barks    []string
}

// NewRoster builds a roster. Returns ErrNoSpeakers if speakers is empty.
func NewRoster(speakers ...Speaker) (*Roster, error) {
	if len(speakers) == 0 {
		return nil, ErrNoSpeakers
	}
	r := &Roster{
		speakers: make([]Speaker, len(speakers)),
		barks:    make([]string, len(speakers)),
	}
	copy(r.speakers, speakers)
	for i, s := range r.speakers {
		r.barks[i] = s.Bark()
	}
	return r, nil
}

// DogRoster builds a roster of KindDog speakers, one per utterance.
func DogRoster(utterances []string) (*Roster, error) {
	speakers := make([]Speaker, 0, len(utterances))
	for _, u := range utterances {
		speakers = append(speakers, NewSpeaker(KindDog, u))
	}
	return NewRoster(speakers...)
}

// DefaultUtterances is the startup data: three dogs.
var DefaultUtterances = []string{"Bark", "Woof", "arf"}

// DefaultRoster returns the three default dogs.
func DefaultRoster() *Roster {
	r, err := DogRoster(DefaultUtterances)
	if err != nil {
		panic(err) // DefaultUtterances is non-empty
	}
	return r
}

// Len returns the number of speakers.
func (r *Roster) Len() int { return len(r.speakers) }

// Speakers returns a copy of the speaker list.
func (r *Roster) Speakers() []Speaker {
	out := make([]Speaker, len(r.speakers))
	copy(out, r.speakers)
	return out
}

// Barks returns one bark per speaker, in roster order. Duplicates are kept so
// each speaker weighs the same in a draw. The returned slice MUST NOT be mutated.
func (r *Roster) Barks() []string {
	return r.barks
}
