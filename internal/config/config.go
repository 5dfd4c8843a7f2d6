// Package config provides unified configuration loading for the simulator.
// It supports loading from YAML files and environment variables.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/nvandessel/envelopes/internal/constants"
	"github.com/nvandessel/envelopes/internal/envelope"
	"gopkg.in/yaml.v3"
)

// EnvelopesConfig contains all simulator configuration settings.
type EnvelopesConfig struct {
	// Simulation controls how many trials run and how they are seeded.
	Simulation SimulationConfig `json:"simulation" yaml:"simulation"`

	// Output controls report rendering.
	Output OutputConfig `json:"output" yaml:"output"`

	// Logging contains settings for operational and decision logging.
	Logging LoggingConfig `json:"logging" yaml:"logging"`
}

// SimulationConfig configures the Monte Carlo driver.
type SimulationConfig struct {
	// Trials is the number of pre-generated puzzles every strategy plays.
	Trials int `json:"trials" yaml:"trials"`

	// Seed fixes the random source. Nil means a fresh seed per run.
	Seed *uint64 `json:"seed,omitempty" yaml:"seed,omitempty"`

	// Workers is the number of goroutines evaluating trials.
	Workers int `json:"workers" yaml:"workers"`

	// Strategies lists the playstyles to compare, in report order.
	Strategies []string `json:"strategies" yaml:"strategies"`
}

// OutputConfig configures report rendering.
type OutputConfig struct {
	// Format is one of "text", "json" or "yaml".
	Format constants.Format `json:"format" yaml:"format"`

	// Interval adds a 95% confidence interval to each outcome.
	Interval bool `json:"interval" yaml:"interval"`
}

// LoggingConfig configures logging behavior.
type LoggingConfig struct {
	// Level sets the log verbosity: "info" (default), "debug", or "trace".
	// "debug" enables the decision trace; "trace" adds every round to it.
	Level string `json:"level" yaml:"level"`

	// TraceDir is where decisions.jsonl is written. Supports ${VAR} syntax.
	TraceDir string `json:"trace_dir,omitempty" yaml:"trace_dir,omitempty"`
}

// Default returns an EnvelopesConfig with sensible defaults.
func Default() *EnvelopesConfig {
	strategies := make([]string, 0, 2)
	for _, s := range envelope.Strategies() {
		strategies = append(strategies, s.String())
	}
	return &EnvelopesConfig{
		Simulation: SimulationConfig{
			Trials:     constants.DefaultTrials,
			Workers:    constants.DefaultWorkers,
			Strategies: strategies,
		},
		Output: OutputConfig{
			Format: constants.FormatText,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// DefaultPath returns ~/.envelopes/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("getting home directory: %w", err)
	}
	return filepath.Join(homeDir, constants.ConfigDirName, "config.yaml"), nil
}

// Load loads configuration from the default location and environment variables.
// Order: defaults -> ~/.envelopes/config.yaml -> environment variables
func Load() (*EnvelopesConfig, error) {
	path, err := DefaultPath()
	if err != nil {
		config := Default()
		applyEnvOverrides(config)
		return config, nil
	}
	return LoadPath(path)
}

// LoadPath is Load with an explicit config file. A missing file is not an
// error; defaults and environment overrides still apply.
func LoadPath(path string) (*EnvelopesConfig, error) {
	config := Default()

	if _, statErr := os.Stat(path); statErr == nil {
		fileConfig, loadErr := LoadFromFile(path)
		if loadErr != nil {
			return nil, fmt.Errorf("loading config file: %w", loadErr)
		}
		config = fileConfig
	}

	applyEnvOverrides(config)

	return config, nil
}

// LoadFromFile loads configuration from a specific YAML file.
func LoadFromFile(path string) (*EnvelopesConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	config := Default()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	config.Logging.TraceDir = expandEnvVars(config.Logging.TraceDir)

	return config, nil
}

// Save writes the configuration as YAML to path, creating parent directories.
func Save(config *EnvelopesConfig, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks that the configuration is valid.
func (c *EnvelopesConfig) Validate() error {
	if c.Simulation.Trials <= 0 {
		return fmt.Errorf("trials must be positive, got %d", c.Simulation.Trials)
	}

	if c.Simulation.Workers < 1 || c.Simulation.Workers > constants.MaxWorkers {
		return fmt.Errorf("workers must be between 1 and %d, got %d", constants.MaxWorkers, c.Simulation.Workers)
	}

	if len(c.Simulation.Strategies) == 0 {
		return fmt.Errorf("at least one strategy is required")
	}
	if _, err := c.ParsedStrategies(); err != nil {
		return err
	}

	if !c.Output.Format.Valid() {
		return fmt.Errorf("invalid format: %s (valid: text, json, yaml)", c.Output.Format)
	}

	validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s (valid: info, debug, trace, or empty for default)", c.Logging.Level)
	}

	return nil
}

// ParsedStrategies resolves the configured strategy names, dropping duplicates.
func (c *EnvelopesConfig) ParsedStrategies() ([]envelope.Strategy, error) {
	seen := make(map[envelope.Strategy]bool, len(c.Simulation.Strategies))
	out := make([]envelope.Strategy, 0, len(c.Simulation.Strategies))
	for _, name := range c.Simulation.Strategies {
		s, err := envelope.ParseStrategy(name)
		if err != nil {
			return nil, err
		}
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out, nil
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(config *EnvelopesConfig) {
	if v := os.Getenv("ENVELOPES_TRIALS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.Trials = n
		}
	}

	if v := os.Getenv("ENVELOPES_SEED"); v != "" {
		if n, err := strconv.ParseUint(v, 10, 64); err == nil {
			config.Simulation.Seed = &n
		}
	}

	if v := os.Getenv("ENVELOPES_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			config.Simulation.Workers = n
		}
	}

	if v := os.Getenv("ENVELOPES_STRATEGIES"); v != "" {
		config.Simulation.Strategies = splitList(v)
	}

	if v := os.Getenv("ENVELOPES_FORMAT"); v != "" {
		config.Output.Format = constants.Format(strings.ToLower(v))
	}

	if v := os.Getenv("ENVELOPES_LOG_LEVEL"); v != "" {
		config.Logging.Level = v
	}

	if v := os.Getenv("ENVELOPES_TRACE_DIR"); v != "" {
		config.Logging.TraceDir = v
	}
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// expandEnvVars expands ${VAR} patterns in a string with environment variable values.
func expandEnvVars(s string) string {
	if !strings.Contains(s, "${") {
		return s
	}
	return os.Expand(s, os.Getenv)
}
