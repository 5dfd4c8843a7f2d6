package simulation

import (
	"github.com/nvandessel/envelopes/internal/envelope"
)

// Scenario defines a complete simulation experiment.
type Scenario struct {
	Name       string
	Trials     int
	Seed       uint64
	Workers    int // 0 or 1 = single goroutine
	Strategies []envelope.Strategy
}

// Outcome is the tally for one strategy. Wins + Losses equals the number of
// trials played.
type Outcome struct {
	Strategy envelope.Strategy `json:"strategy" yaml:"strategy"`
	Wins     int               `json:"wins" yaml:"wins"`
	Losses   int               `json:"losses" yaml:"losses"`
}

// Trials returns the number of rounds behind the outcome.
func (o Outcome) Trials() int {
	return o.Wins + o.Losses
}

// WinPercent returns 100 * wins / trials, or 0 when nothing was played.
func (o Outcome) WinPercent() float64 {
	n := o.Trials()
	if n == 0 {
		return 0
	}
	return float64(o.Wins) * 100 / float64(n)
}

// SimulationResult collects the outcome of every strategy in a scenario.
type SimulationResult struct {
	Name     string    `json:"name,omitempty" yaml:"name,omitempty"`
	Seed     uint64    `json:"seed" yaml:"seed"`
	Trials   int       `json:"trials" yaml:"trials"`
	Workers  int       `json:"workers" yaml:"workers"`
	Outcomes []Outcome `json:"outcomes" yaml:"outcomes"`
}

// Outcome returns the tally for s, if s was part of the scenario.
func (r SimulationResult) Outcome(s envelope.Strategy) (Outcome, bool) {
	for _, o := range r.Outcomes {
		if o.Strategy == s {
			return o, true
		}
	}
	return Outcome{}, false
}
