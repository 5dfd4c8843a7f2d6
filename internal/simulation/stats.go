package simulation

import (
	"math"

	"github.com/nvandessel/envelopes/internal/envelope"
)

// Interval returns the Wilson score interval for the win rate, in percent,
// at normal quantile z. Zero trials yields (0, 0).
func (o Outcome) Interval(z float64) (lo, hi float64) {
	n := float64(o.Trials())
	if n == 0 {
		return 0, 0
	}
	p := float64(o.Wins) / n
	z2 := z * z

	denom := 1 + z2/n
	center := (p + z2/(2*n)) / denom
	half := z * math.Sqrt(p*(1-p)/n+z2/(4*n*n)) / denom

	return math.Max(0, center-half) * 100, math.Min(1, center+half) * 100
}

// ExpectedWinPercent returns the analytic long-run win rate of s.
//
// The prize sits in the chosen envelope half the time. A stubborn player wins
// exactly then. A reactive player also wins whenever the prize is in the other
// envelope (the peek must then show an ordinary slip, so it switches), and
// loses only when it holds the prize but peeks the ordinary slip: 1/2 * 1/2.
func ExpectedWinPercent(s envelope.Strategy) float64 {
	switch s {
	case envelope.Reactive:
		return 75
	default:
		return 50
	}
}
