package envelope

import (
	"fmt"
	"math/rand/v2"
)

// Round records every step of a single play.
type Round struct {
	Strategy Strategy `json:"strategy"`
	Initial  Choice   `json:"initial"`
	Peeked   bool     `json:"peeked"`
	Final    Choice   `json:"final"`
	Won      bool     `json:"won"`
}

// Pick chooses an envelope uniformly at random.
func Pick(rng *rand.Rand) Choice {
	return Choice(rng.IntN(2))
}

// Peek draws one slip from the chosen envelope and reports whether it is
// desirable. The other slip stays hidden.
func Peek(rng *rand.Rand, p Pair, c Choice) (bool, error) {
	env, err := p.Envelope(c)
	if err != nil {
		return false, err
	}
	return env[rng.IntN(2)].Desirable, nil
}

// Play runs one round of the puzzle against pair using strategy.
func Play(rng *rand.Rand, strategy Strategy, p Pair) (Round, error) {
	r := Round{Strategy: strategy, Initial: Pick(rng)}

	peeked, err := Peek(rng, p, r.Initial)
	if err != nil {
		return Round{}, fmt.Errorf("peeking: %w", err)
	}
	r.Peeked = peeked

	r.Final = strategy.Decide(p, r.Initial, r.Peeked)
	if !r.Final.Valid() {
		return Round{}, fmt.Errorf("%s strategy: %w: %d", strategy, ErrInvalidChoice, r.Final)
	}

	r.Won, err = CheckWon(p, r.Final)
	if err != nil {
		return Round{}, fmt.Errorf("checking outcome: %w", err)
	}
	return r, nil
}
