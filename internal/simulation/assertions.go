package simulation

import (
	"math"
	"testing"

	"github.com/nvandessel/envelopes/internal/envelope"
)

// AssertConserved asserts that every outcome accounts for exactly trials rounds.
func AssertConserved(t *testing.T, result SimulationResult) {
	t.Helper()
	for _, o := range result.Outcomes {
		if o.Wins+o.Losses != result.Trials {
			t.Errorf("AssertConserved: %s: wins %d + losses %d != trials %d", o.Strategy, o.Wins, o.Losses, result.Trials)
		}
		if o.Wins < 0 || o.Losses < 0 {
			t.Errorf("AssertConserved: %s: negative tally %+v", o.Strategy, o)
		}
	}
}

// AssertWinRate asserts that the strategy's win percentage is within
// tolerance percentage points of want.
func AssertWinRate(t *testing.T, result SimulationResult, s envelope.Strategy, want, tolerance float64) {
	t.Helper()
	o, ok := result.Outcome(s)
	if !ok {
		t.Errorf("AssertWinRate: strategy %s not in result", s)
		return
	}
	if got := o.WinPercent(); math.Abs(got-want) > tolerance {
		t.Errorf("AssertWinRate: %s: win rate %.2f%% not within %.2f of %.2f%%", s, got, tolerance, want)
	}
}

// AssertSameResult asserts that two runs produced identical tallies.
func AssertSameResult(t *testing.T, a, b SimulationResult) {
	t.Helper()
	if len(a.Outcomes) != len(b.Outcomes) {
		t.Fatalf("AssertSameResult: %d outcomes vs %d", len(a.Outcomes), len(b.Outcomes))
	}
	for i := range a.Outcomes {
		if a.Outcomes[i] != b.Outcomes[i] {
			t.Errorf("AssertSameResult: outcome %d: %+v != %+v", i, a.Outcomes[i], b.Outcomes[i])
		}
	}
}
