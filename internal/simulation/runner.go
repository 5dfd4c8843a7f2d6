package simulation

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"github.com/nvandessel/envelopes/internal/constants"
	"github.com/nvandessel/envelopes/internal/envelope"
	"github.com/nvandessel/envelopes/internal/logging"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrInvalidTrialCount is returned when fewer than one trial is requested.
	ErrInvalidTrialCount = errors.New("trial count must be positive")

	// ErrNoStrategies is returned for a scenario without strategies.
	ErrNoStrategies = errors.New("no strategies to simulate")
)

// roundFunc observes a single played round. trial is the index into the
// shared trial set.
type roundFunc func(trial int, round envelope.Round)

// PrepareTrials generates n puzzles from rng.
func PrepareTrials(rng *rand.Rand, n int) ([]envelope.Pair, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTrialCount, n)
	}
	trials := make([]envelope.Pair, n)
	for i := range trials {
		trials[i] = envelope.Prepare(rng)
	}
	return trials, nil
}

// CheckStrategy plays every trial with strategy and tallies the result.
// An empty trial set yields a zero Outcome.
func CheckStrategy(ctx context.Context, rng *rand.Rand, trials []envelope.Pair, strategy envelope.Strategy) (Outcome, error) {
	wins, err := playSpan(ctx, rng, trials, 0, strategy, nil)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Strategy: strategy, Wins: wins, Losses: len(trials) - wins}, nil
}

// playSpan plays trials in order and returns the number of wins. offset is
// the index of trials[0] in the shared set and is only used for tracing.
func playSpan(ctx context.Context, rng *rand.Rand, trials []envelope.Pair, offset int, strategy envelope.Strategy, observe roundFunc) (int, error) {
	wins := 0
	for i, pair := range trials {
		if i%constants.CancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return 0, err
			}
		}

		round, err := envelope.Play(rng, strategy, pair)
		if err != nil {
			return 0, fmt.Errorf("trial %d: %w", offset+i, err)
		}
		if round.Won {
			wins++
		}
		if observe != nil {
			observe(offset+i, round)
		}
	}
	return wins, nil
}

// Runner orchestrates scenarios, logging progress and optionally tracing
// decisions.
type Runner struct {
	logger    *slog.Logger
	decisions *logging.DecisionLogger
}

// NewRunner creates a runner. A nil logger discards operational output;
// a nil decision logger disables tracing.
func NewRunner(logger *slog.Logger, decisions *logging.DecisionLogger) *Runner {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Runner{logger: logger, decisions: decisions}
}

// Run executes the scenario and returns one outcome per strategy.
func (r *Runner) Run(ctx context.Context, sc Scenario) (SimulationResult, error) {
	if sc.Trials <= 0 {
		return SimulationResult{}, fmt.Errorf("%w: %d", ErrInvalidTrialCount, sc.Trials)
	}
	if len(sc.Strategies) == 0 {
		return SimulationResult{}, ErrNoStrategies
	}
	workers := clampWorkers(sc.Workers, sc.Trials)

	r.logger.Debug("starting simulation",
		"scenario", sc.Name, "trials", sc.Trials, "seed", sc.Seed, "workers", workers)
	r.decisions.Log(map[string]any{
		"event":      "run_start",
		"scenario":   sc.Name,
		"seed":       sc.Seed,
		"trials":     sc.Trials,
		"workers":    workers,
		"strategies": sc.Strategies,
	})

	// Phase 1: one shared trial set for every strategy.
	trials, err := PrepareTrials(NewSource(sc.Seed, constants.TrialStream), sc.Trials)
	if err != nil {
		return SimulationResult{}, err
	}

	// Phase 2: evaluate each strategy against the same trials.
	result := SimulationResult{
		Name:     sc.Name,
		Seed:     sc.Seed,
		Trials:   sc.Trials,
		Workers:  workers,
		Outcomes: make([]Outcome, 0, len(sc.Strategies)),
	}
	for _, s := range sc.Strategies {
		out, err := r.evaluate(ctx, sc.Seed, workers, trials, s)
		if err != nil {
			return SimulationResult{}, fmt.Errorf("simulating %s strategy: %w", s, err)
		}

		r.logger.Debug("strategy simulated",
			"strategy", s.String(), "wins", out.Wins, "losses", out.Losses,
			"win_percent", out.WinPercent())
		r.decisions.Log(map[string]any{
			"event":       "outcome",
			"strategy":    s.String(),
			"wins":        out.Wins,
			"losses":      out.Losses,
			"win_percent": out.WinPercent(),
		})
		result.Outcomes = append(result.Outcomes, out)
	}

	return result, nil
}

// evaluate fans the trials out across workers. Worker i draws picks and
// peeks from stream PlayStream+i, which makes the tally depend only on
// (seed, workers).
func (r *Runner) evaluate(ctx context.Context, seed uint64, workers int, trials []envelope.Pair, s envelope.Strategy) (Outcome, error) {
	spans := split(len(trials), workers)
	wins := make([]int, len(spans))
	observe := r.roundObserver(s)

	g, gctx := errgroup.WithContext(ctx)
	for i, sp := range spans {
		g.Go(func() error {
			rng := NewSource(seed, constants.PlayStream+uint64(i))
			w, err := playSpan(gctx, rng, trials[sp.start:sp.end], sp.start, s, observe)
			if err != nil {
				return fmt.Errorf("worker %d: %w", i, err)
			}
			wins[i] = w
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Outcome{}, err
	}

	total := 0
	for _, w := range wins {
		total += w
	}
	return Outcome{Strategy: s, Wins: total, Losses: len(trials) - total}, nil
}

// roundObserver returns a tracer for individual rounds, or nil when the
// decision logger does not record them.
func (r *Runner) roundObserver(s envelope.Strategy) roundFunc {
	if !r.decisions.RoundsEnabled() {
		return nil
	}
	name := s.String()
	return func(trial int, round envelope.Round) {
		r.decisions.Log(map[string]any{
			"event":    "round",
			"strategy": name,
			"trial":    trial,
			"initial":  int(round.Initial),
			"peeked":   round.Peeked,
			"final":    int(round.Final),
			"won":      round.Won,
		})
	}
}

func clampWorkers(workers, trials int) int {
	if workers < 1 {
		workers = 1
	}
	if workers > constants.MaxWorkers {
		workers = constants.MaxWorkers
	}
	if workers > trials {
		workers = trials
	}
	return workers
}
