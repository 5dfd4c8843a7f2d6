// Package constants provides named constants used throughout the envelopes
// codebase. This centralizes magic numbers for better maintainability.
package constants

// Simulation defaults
const (
	// DefaultTrials is the number of puzzles generated when none is configured.
	DefaultTrials = 100000

	// DefaultWorkers evaluates trials on a single goroutine.
	DefaultWorkers = 1

	// MaxWorkers caps the worker pool regardless of configuration.
	MaxWorkers = 256

	// CancelCheckInterval is how many rounds a worker plays between checks
	// of its context.
	CancelCheckInterval = 1024
)

// Seed derivation
const (
	// TrialStream is the PCG stream used to generate the shared trial set.
	TrialStream uint64 = 0x747269616c73

	// PlayStream is the base PCG stream for pick/peek draws. Worker i uses
	// PlayStream + i so each worker owns an independent source.
	PlayStream uint64 = 0x706c6179
)

// Reporting constants
const (
	// ConfidenceZ is the normal quantile for a 95% interval.
	ConfidenceZ = 1.959963984540054

	// PercentDecimals is the precision of printed win percentages.
	PercentDecimals = 2
)

// ConfigDirName is the per-user configuration directory under $HOME.
const ConfigDirName = ".envelopes"
