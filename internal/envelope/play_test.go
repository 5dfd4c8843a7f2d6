package envelope

import (
	"math/rand/v2"
	"testing"
)

func TestPeek_InvalidChoice(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 1))
	if _, err := Peek(rng, prizeFirst, -1); err == nil {
		t.Error("expected error peeking at envelope -1")
	}
}

func TestPeek_EmptyEnvelopeNeverDesirable(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 3))
	for i := 0; i < 100; i++ {
		peeked, err := Peek(rng, prizeFirst, SecondEnvelope)
		if err != nil {
			t.Fatalf("Peek error: %v", err)
		}
		if peeked {
			t.Fatal("peeked a desirable slip from an envelope without one")
		}
	}
}

func TestPlay_RoundConsistency(t *testing.T) {
	rng := rand.New(rand.NewPCG(11, 5))
	for i := 0; i < 2000; i++ {
		p := Prepare(rng)
		for _, s := range Strategies() {
			r, err := Play(rng, s, p)
			if err != nil {
				t.Fatalf("Play(%v) error: %v", s, err)
			}
			if r.Final != s.Decide(p, r.Initial, r.Peeked) {
				t.Fatalf("round %+v: final choice does not match strategy decision", r)
			}
			if r.Won != (p.PrizeIndex() == r.Final) {
				t.Fatalf("round %+v: Won disagrees with PrizeIndex %d", r, p.PrizeIndex())
			}
			if r.Peeked && p.PrizeIndex() != r.Initial {
				t.Fatalf("round %+v: peeked the prize from the wrong envelope", r)
			}
		}
	}
}

func TestPlay_ReactiveWinsAfterSeeingPrize(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 9))
	for i := 0; i < 500; i++ {
		r, err := Play(rng, Reactive, prizeFirst)
		if err != nil {
			t.Fatalf("Play error: %v", err)
		}
		// Reactive only loses when it sees an ordinary slip in the prize envelope.
		if !r.Won && !(r.Initial == FirstEnvelope && !r.Peeked) {
			t.Fatalf("unexpected loss: %+v", r)
		}
	}
}
