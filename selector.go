package barrk

import (
	"errors"
	"math/rand/v2"
)

// ErrNoCandidates is returned when a draw is requested from an empty set.
var ErrNoCandidates = errors.New("barrk: no candidates to pick from")

// Selector draws barks at random. It holds no state beyond its random source.
type Selector struct {
	rng *rand.Rand
}

// NewSelector creates a selector drawing from rng. A nil rng uses a randomly
// seeded PCG source.
func NewSelector(rng *rand.Rand) *Selector {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Selector{rng: rng}
}

// NewSeededSelector creates a selector with a deterministic PCG source.
func NewSeededSelector(seed uint64) *Selector {
	return NewSelector(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// Pick returns a uniformly drawn entry of candidates.
func (s *Selector) Pick(candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	return candidates[s.rng.IntN(len(candidates))], nil
}

// PickDifferent returns an entry of candidates that is not equal to current.
// Each entry weighs the same, so a string held by two speakers is twice as
// likely as one held by a single speaker. When every entry equals current
// there is no alternative and current is returned.
//
// The draw is a single index over the entries that differ from current, which
// matches redrawing until the result differs but always terminates.
func (s *Selector) PickDifferent(current string, candidates []string) (string, error) {
	if len(candidates) == 0 {
		return "", ErrNoCandidates
	}
	n := 0
	for _, c := range candidates {
		if c != current {
			n++
		}
	}
	if n == 0 {
		return current, nil
	}
	k := s.rng.IntN(n)
	for _, c := range candidates {
		if c == current {
			continue
		}
		if k == 0 {
			return c, nil
		}
		k--
	}
	panic("barrk: unreachable")
}
