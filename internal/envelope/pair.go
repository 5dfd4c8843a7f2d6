package envelope

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidChoice is returned when a choice does not index one of the
	// two envelopes. It signals a broken internal invariant.
	ErrInvalidChoice = errors.New("invalid envelope choice")

	// ErrMalformedPair is returned for a pair that does not hold exactly one
	// desirable slip.
	ErrMalformedPair = errors.New("malformed envelope pair")
)

// Slip is one item inside an envelope.
type Slip struct {
	Desirable bool `json:"desirable" yaml:"desirable"`
}

// Envelope holds exactly two slips.
type Envelope [2]Slip

// Has reports whether either slip in the envelope is desirable.
func (e Envelope) Has() bool {
	return e[0].Desirable || e[1].Desirable
}

// Choice selects one of the two envelopes.
type Choice int

const (
	FirstEnvelope  Choice = 0
	SecondEnvelope Choice = 1
)

// Valid reports whether c indexes an envelope.
func (c Choice) Valid() bool {
	return c == FirstEnvelope || c == SecondEnvelope
}

// Switch returns the other envelope. Switch(Switch(c)) == c.
func Switch(c Choice) Choice {
	if c == FirstEnvelope {
		return SecondEnvelope
	}
	return FirstEnvelope
}

// Pair is the puzzle state for one trial. Once generated it is never mutated.
type Pair struct {
	First  Envelope `json:"first" yaml:"first"`
	Second Envelope `json:"second" yaml:"second"`
}

// Envelope returns the envelope selected by c.
func (p Pair) Envelope(c Choice) (Envelope, error) {
	switch c {
	case FirstEnvelope:
		return p.First, nil
	case SecondEnvelope:
		return p.Second, nil
	default:
		return Envelope{}, fmt.Errorf("%w: %d", ErrInvalidChoice, c)
	}
}

// Count returns the number of desirable slips across both envelopes.
func (p Pair) Count() int {
	n := 0
	for _, env := range [2]Envelope{p.First, p.Second} {
		for _, s := range env {
			if s.Desirable {
				n++
			}
		}
	}
	return n
}

// Validate checks the single-desirable-slip invariant.
func (p Pair) Validate() error {
	if n := p.Count(); n != 1 {
		return fmt.Errorf("%w: %d desirable slips, want 1", ErrMalformedPair, n)
	}
	return nil
}

// PrizeIndex returns the envelope holding the desirable slip.
// The result is only meaningful for a pair that passes Validate.
func (p Pair) PrizeIndex() Choice {
	if p.First.Has() {
		return FirstEnvelope
	}
	return SecondEnvelope
}

// CheckWon reports whether the desirable slip is in the chosen envelope.
// Both slips are checked, not only the one that was peeked at.
func CheckWon(p Pair, c Choice) (bool, error) {
	env, err := p.Envelope(c)
	if err != nil {
		return false, err
	}
	return env.Has(), nil
}
