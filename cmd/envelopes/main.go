package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	ctx, stop := signalContext(context.Background())
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "envelopes",
		Short: "Two-envelope puzzle simulator",
		Long: `envelopes simulates a two-envelope variant of the Monty Hall problem.

Two envelopes hold two slips each and exactly one slip is desirable. The
player picks an envelope, peeks at one slip from it, and then either keeps
the envelope (stubborn) or switches whenever the peeked slip was ordinary
(reactive). Both strategies play the same pre-generated puzzles.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("json", false, "Output as JSON (shorthand for --format json)")
	rootCmd.PersistentFlags().String("config", "", "Config file (default ~/.envelopes/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "", "Log level: info, debug, or trace")

	rootCmd.AddCommand(
		newSimulateCmd(),
		newStrategiesCmd(),
		newConfigCmd(),
		newVersionCmd(),
	)

	return rootCmd
}

// signalContext returns a context cancelled on the first interrupt.
func signalContext(parent context.Context) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)
	ch := make(chan os.Signal, 1)
	notifySignals(ch)
	go func() {
		select {
		case <-ch:
			cancel()
		case <-ctx.Done():
		}
	}()
	return ctx, cancel
}
