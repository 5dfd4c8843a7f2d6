// Package report renders simulation results as text, JSON or YAML.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/nvandessel/envelopes/internal/constants"
	"github.com/nvandessel/envelopes/internal/simulation"
	"gopkg.in/yaml.v3"
)

// ErrUnknownFormat is returned by Write for formats outside constants.Formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Options tunes what a report includes.
type Options struct {
	// RunID ties the report to its decision trace. Omitted when empty.
	RunID string

	// Interval adds a 95% Wilson interval to every outcome.
	Interval bool
}

// Document is the structured form of a report used by JSON and YAML output.
type Document struct {
	RunID    string            `json:"run_id,omitempty" yaml:"run_id,omitempty"`
	Name     string            `json:"name,omitempty" yaml:"name,omitempty"`
	Seed     uint64            `json:"seed" yaml:"seed"`
	Trials   int               `json:"trials" yaml:"trials"`
	Workers  int               `json:"workers" yaml:"workers"`
	Outcomes []OutcomeDocument `json:"outcomes" yaml:"outcomes"`
}

// OutcomeDocument is one strategy's tally.
type OutcomeDocument struct {
	Strategy   string    `json:"strategy" yaml:"strategy"`
	Wins       int       `json:"wins" yaml:"wins"`
	Losses     int       `json:"losses" yaml:"losses"`
	WinPercent float64   `json:"win_percent" yaml:"win_percent"`
	Interval   *Interval `json:"interval,omitempty" yaml:"interval,omitempty"`
}

// Interval is a confidence interval in percent.
type Interval struct {
	Level float64 `json:"level" yaml:"level"`
	Low   float64 `json:"low" yaml:"low"`
	High  float64 `json:"high" yaml:"high"`
}

// NewDocument converts a result into its structured form. Percentages are
// rounded to the printed precision.
func NewDocument(result simulation.SimulationResult, opts Options) Document {
	doc := Document{
		RunID:    opts.RunID,
		Name:     result.Name,
		Seed:     result.Seed,
		Trials:   result.Trials,
		Workers:  result.Workers,
		Outcomes: make([]OutcomeDocument, 0, len(result.Outcomes)),
	}
	for _, o := range result.Outcomes {
		od := OutcomeDocument{
			Strategy:   o.Strategy.String(),
			Wins:       o.Wins,
			Losses:     o.Losses,
			WinPercent: round(o.WinPercent()),
		}
		if opts.Interval {
			lo, hi := o.Interval(constants.ConfidenceZ)
			od.Interval = &Interval{Level: 95, Low: round(lo), High: round(hi)}
		}
		doc.Outcomes = append(doc.Outcomes, od)
	}
	return doc
}

// Write renders result to w in the given format.
func Write(w io.Writer, format constants.Format, result simulation.SimulationResult, opts Options) error {
	switch format {
	case constants.FormatText:
		return WriteText(w, result, opts)
	case constants.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(NewDocument(result, opts)); err != nil {
			return fmt.Errorf("encoding json report: %w", err)
		}
		return nil
	case constants.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(NewDocument(result, opts)); err != nil {
			return fmt.Errorf("encoding yaml report: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteText prints two lines per strategy, separated by a blank line:
//
//	The outcome for a reactive playstyle was 74961 wins and 25039 losses.
//	This comes to a winning percentage of 74.96%.
func WriteText(w io.Writer, result simulation.SimulationResult, opts Options) error {
	for i, o := range result.Outcomes {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, "The outcome for a %s playstyle was %d wins and %d losses.\n",
			o.Strategy, o.Wins, o.Losses); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "This comes to a winning percentage of %.*f%%.\n",
			constants.PercentDecimals, o.WinPercent()); err != nil {
			return err
		}
		if opts.Interval {
			lo, hi := o.Interval(constants.ConfidenceZ)
			if _, err := fmt.Fprintf(w, "The 95%% confidence interval is %.*f%% to %.*f%%.\n",
				constants.PercentDecimals, lo, constants.PercentDecimals, hi); err != nil {
				return err
			}
		}
	}
	return nil
}

func round(v float64) float64 {
	p := math.Pow(10, constants.PercentDecimals)
	return math.Round(v*p) / p
}
