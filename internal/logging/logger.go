// Package logging provides leveled logging and a decision trace for the
// simulator. It offers two complementary outputs:
//   - A leveled slog.Logger for stderr (operational output)
//   - A DecisionLogger writing JSONL round traces to decisions.jsonl
package logging

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// LevelTrace is a custom slog level below Debug. At this level every
// simulated round is written to the decision trace.
const LevelTrace = slog.LevelDebug - 4

// DecisionFile is the name of the trace file inside the trace directory.
const DecisionFile = "decisions.jsonl"

// ParseLevel maps a string level name to a slog.Level.
// Supported values: "info", "debug", "trace" (case-insensitive).
// Unknown values default to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "trace":
		return LevelTrace
	default:
		return slog.LevelInfo
	}
}

// NewLogger creates a leveled slog.Logger writing to w.
func NewLogger(level string, w io.Writer) *slog.Logger {
	lvl := ParseLevel(level)
	opts := &slog.HandlerOptions{
		Level: lvl,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.LevelKey {
				if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelTrace {
					a.Value = slog.StringValue("TRACE")
				}
			}
			return a
		},
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// DecisionLogger writes structured simulation events to a JSONL file.
// It is safe for concurrent use. A nil DecisionLogger is safe to use;
// all methods are no-ops on nil receiver.
type DecisionLogger struct {
	mu     sync.Mutex
	file   *os.File
	runID  string
	rounds bool
}

// NewDecisionLogger creates a decision logger writing to dir/decisions.jsonl.
// At "info" level it returns nil and no file is created. At "debug" only
// run-level events are kept; "trace" also records every round.
// Returns nil if the file cannot be opened.
func NewDecisionLogger(dir string, level string) *DecisionLogger {
	lvl := ParseLevel(level)
	if lvl == slog.LevelInfo {
		return nil
	}

	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil
	}

	path := filepath.Join(dir, DecisionFile)
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return nil
	}

	return &DecisionLogger{
		file:   f,
		runID:  uuid.NewString(),
		rounds: lvl <= LevelTrace,
	}
}

// RunID returns the identifier stamped on every event, or "" for nil.
func (dl *DecisionLogger) RunID() string {
	if dl == nil {
		return ""
	}
	return dl.runID
}

// SetRunID overrides the generated run identifier so the trace can be
// joined with a report.
func (dl *DecisionLogger) SetRunID(id string) {
	if dl == nil || id == "" {
		return
	}
	dl.mu.Lock()
	dl.runID = id
	dl.mu.Unlock()
}

// RoundsEnabled reports whether per-round events are recorded.
func (dl *DecisionLogger) RoundsEnabled() bool {
	return dl != nil && dl.rounds
}

// Log writes an event as a single JSONL line. "time" and "run_id" fields
// are added automatically; the caller's map is not mutated.
func (dl *DecisionLogger) Log(event map[string]any) {
	if dl == nil {
		return
	}

	dl.mu.Lock()
	defer dl.mu.Unlock()
	if dl.file == nil {
		return
	}

	entry := make(map[string]any, len(event)+2)
	for k, v := range event {
		entry[k] = v
	}
	entry["time"] = time.Now().UTC().Format(time.RFC3339Nano)
	entry["run_id"] = dl.runID

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	data = append(data, '\n')
	_, _ = dl.file.Write(data)
}

// Close closes the underlying file. Safe to call on nil receiver.
func (dl *DecisionLogger) Close() {
	if dl == nil {
		return
	}

	dl.mu.Lock()
	defer dl.mu.Unlock()

	if dl.file != nil {
		dl.file.Close()
		dl.file = nil
	}
}
