package main

import (
	"fmt"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/nvandessel/envelopes/internal/config"
	"github.com/nvandessel/envelopes/internal/constants"
	"github.com/nvandessel/envelopes/internal/logging"
	"github.com/nvandessel/envelopes/internal/report"
	"github.com/nvandessel/envelopes/internal/simulation"
	"github.com/spf13/cobra"
)

func newSimulateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "simulate",
		Short: "Run the envelope simulation and compare strategies",
		Long: `Generate a set of random envelope puzzles and play every strategy
against the same set, then print each strategy's wins, losses and winning
percentage.

Examples:
  envelopes simulate                          # 100000 trials, both strategies
  envelopes simulate --trials 1000 --seed 42  # reproducible run
  envelopes simulate --strategy stubborn --format yaml
  envelopes simulate --workers 8 --interval`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := applySimulateFlags(cmd, cfg); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}
			strategies, err := cfg.ParsedStrategies()
			if err != nil {
				return err
			}

			logger := logging.NewLogger(cfg.Logging.Level, cmd.ErrOrStderr())

			var seed uint64
			if cfg.Simulation.Seed != nil {
				seed = *cfg.Simulation.Seed
			} else {
				seed = simulation.NewSeed()
				logger.Debug("generated seed", "seed", seed)
			}

			traceDir, err := resolveTraceDir(cfg)
			if err != nil {
				return err
			}
			runID := uuid.NewString()
			decisions := logging.NewDecisionLogger(traceDir, cfg.Logging.Level)
			defer decisions.Close()
			decisions.SetRunID(runID)
			if decisions != nil {
				logger.Debug("tracing decisions", "path", filepath.Join(traceDir, logging.DecisionFile), "run_id", runID)
			}

			runner := simulation.NewRunner(logger, decisions)
			result, err := runner.Run(cmd.Context(), simulation.Scenario{
				Name:       "envelopes",
				Trials:     cfg.Simulation.Trials,
				Seed:       seed,
				Workers:    cfg.Simulation.Workers,
				Strategies: strategies,
			})
			if err != nil {
				return fmt.Errorf("simulation failed: %w", err)
			}

			return report.Write(cmd.OutOrStdout(), cfg.Output.Format, result, report.Options{
				RunID:    runID,
				Interval: cfg.Output.Interval,
			})
		},
	}

	cmd.Flags().Int("trials", constants.DefaultTrials, "Number of puzzles every strategy plays")
	cmd.Flags().Uint64("seed", 0, "Random seed (default: fresh seed per run)")
	cmd.Flags().Int("workers", constants.DefaultWorkers, "Goroutines evaluating trials")
	cmd.Flags().StringSlice("strategy", nil, "Strategies to compare: reactive, stubborn (repeatable)")
	cmd.Flags().String("format", "", "Output format: text, json, or yaml")
	cmd.Flags().Bool("interval", false, "Include a 95% confidence interval per strategy")
	cmd.Flags().String("trace-dir", "", "Directory for decisions.jsonl at debug/trace level")

	return cmd
}

// loadConfig reads the --config file, falling back to ~/.envelopes/config.yaml,
// and applies the global --log-level flag.
func loadConfig(cmd *cobra.Command) (*config.EnvelopesConfig, error) {
	path, _ := cmd.Flags().GetString("config")

	var cfg *config.EnvelopesConfig
	var err error
	if path != "" {
		cfg, err = config.LoadPath(path)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if level, _ := cmd.Flags().GetString("log-level"); level != "" {
		cfg.Logging.Level = level
	}
	return cfg, nil
}

// applySimulateFlags overrides config values with explicitly set flags.
func applySimulateFlags(cmd *cobra.Command, cfg *config.EnvelopesConfig) error {
	flags := cmd.Flags()

	if flags.Changed("trials") {
		cfg.Simulation.Trials, _ = flags.GetInt("trials")
	}
	if flags.Changed("seed") {
		seed, _ := flags.GetUint64("seed")
		cfg.Simulation.Seed = &seed
	}
	if flags.Changed("workers") {
		cfg.Simulation.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("strategy") {
		cfg.Simulation.Strategies, _ = flags.GetStringSlice("strategy")
	}
	if flags.Changed("interval") {
		cfg.Output.Interval, _ = flags.GetBool("interval")
	}
	if flags.Changed("trace-dir") {
		cfg.Logging.TraceDir, _ = flags.GetString("trace-dir")
	}

	format, _ := flags.GetString("format")
	jsonOut, _ := flags.GetBool("json")
	switch {
	case format != "" && jsonOut && format != string(constants.FormatJSON):
		return fmt.Errorf("cannot combine --json with --format %s", format)
	case format != "":
		cfg.Output.Format = constants.Format(format)
	case jsonOut:
		cfg.Output.Format = constants.FormatJSON
	}
	return nil
}

// resolveTraceDir returns the configured trace directory or ~/.envelopes.
func resolveTraceDir(cfg *config.EnvelopesConfig) (string, error) {
	if cfg.Logging.TraceDir != "" {
		return cfg.Logging.TraceDir, nil
	}
	path, err := config.DefaultPath()
	if err != nil {
		return "", err
	}
	return filepath.Dir(path), nil
}
