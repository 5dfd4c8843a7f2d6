// Package simulation runs Monte Carlo experiments over the envelope puzzle.
//
// A Scenario fixes the trial count, seed, worker count and the strategies to
// compare. The Runner generates one shared set of puzzles from the seed and
// plays every strategy against the same set, each time with an identically
// seeded pick/peek stream, so differences in win rate come from the strategy
// alone and not from sampling.
//
// Usage:
//
//	r := simulation.NewRunner(logger, decisions)
//	result, err := r.Run(ctx, simulation.Scenario{
//	    Trials:     100000,
//	    Seed:       42,
//	    Workers:    4,
//	    Strategies: envelope.Strategies(),
//	})
//
// With more than one worker the trials are split into contiguous chunks and
// each chunk draws from its own stream, so a given (seed, workers) pair always
// yields the same result.
package simulation
