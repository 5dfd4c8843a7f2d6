package main

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nvandessel/envelopes/internal/config"
	"github.com/nvandessel/envelopes/internal/constants"
	"github.com/nvandessel/envelopes/internal/envelope"
	"github.com/spf13/cobra"
)

func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage simulator configuration",
		Long: `View and modify simulator configuration settings.

Configuration is stored in ~/.envelopes/config.yaml unless --config is given.

Examples:
  envelopes config list                          # Show all settings
  envelopes config get simulation.trials         # Get a specific setting
  envelopes config set simulation.seed 42        # Fix the seed
  envelopes config set simulation.seed random    # Back to a fresh seed per run`,
	}

	cmd.AddCommand(
		newConfigListCmd(),
		newConfigGetCmd(),
		newConfigSetCmd(),
	)

	return cmd
}

func newConfigListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all configuration settings",
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			out := cmd.OutOrStdout()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if jsonOut {
				return json.NewEncoder(out).Encode(cfg)
			}

			fmt.Fprintln(out, "Simulation Settings:")
			for _, key := range []string{"simulation.trials", "simulation.seed", "simulation.workers", "simulation.strategies"} {
				v, _ := getConfigValue(cfg, key)
				fmt.Fprintf(out, "  %-22s %v\n", key+":", v)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Output Settings:")
			for _, key := range []string{"output.format", "output.interval"} {
				v, _ := getConfigValue(cfg, key)
				fmt.Fprintf(out, "  %-22s %v\n", key+":", v)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Logging Settings:")
			fmt.Fprintf(out, "  %-22s %s\n", "logging.level:", cfg.Logging.Level)
			fmt.Fprintf(out, "  %-22s %s\n", "logging.trace_dir:", valueOrDefault(cfg.Logging.TraceDir, "(default)"))

			return nil
		},
	}
}

func newConfigGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Get a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			key := args[0]
			out := cmd.OutOrStdout()

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			value, found := getConfigValue(cfg, key)
			if !found {
				return fmt.Errorf("unknown configuration key: %s", key)
			}

			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"key":   key,
					"value": value,
				})
			}
			fmt.Fprintf(out, "%s = %v\n", key, value)
			return nil
		},
	}
}

func newConfigSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <value>",
		Short: "Set a configuration value",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			jsonOut, _ := cmd.Flags().GetBool("json")
			key, value := args[0], args[1]
			out := cmd.OutOrStdout()

			path, err := configPath(cmd)
			if err != nil {
				return err
			}
			cfg, err := config.LoadPath(path)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if err := setConfigValue(cfg, key, value); err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			if err := config.Save(cfg, path); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			if jsonOut {
				return json.NewEncoder(out).Encode(map[string]interface{}{
					"status": "updated",
					"key":    key,
					"value":  value,
				})
			}
			fmt.Fprintf(out, "Set %s = %s\n", key, value)
			return nil
		},
	}
}

// configPath returns --config or the default location.
func configPath(cmd *cobra.Command) (string, error) {
	if path, _ := cmd.Flags().GetString("config"); path != "" {
		return path, nil
	}
	return config.DefaultPath()
}

// getConfigValue retrieves a configuration value by dot-notation key.
func getConfigValue(cfg *config.EnvelopesConfig, key string) (interface{}, bool) {
	switch key {
	case "simulation.trials":
		return cfg.Simulation.Trials, true
	case "simulation.seed":
		if cfg.Simulation.Seed == nil {
			return "random", true
		}
		return *cfg.Simulation.Seed, true
	case "simulation.workers":
		return cfg.Simulation.Workers, true
	case "simulation.strategies":
		return strings.Join(cfg.Simulation.Strategies, ","), true
	case "output.format":
		return cfg.Output.Format.String(), true
	case "output.interval":
		return cfg.Output.Interval, true
	case "logging.level":
		return cfg.Logging.Level, true
	case "logging.trace_dir":
		return cfg.Logging.TraceDir, true
	default:
		return nil, false
	}
}

// setConfigValue sets a configuration value by dot-notation key.
func setConfigValue(cfg *config.EnvelopesConfig, key, value string) error {
	switch key {
	case "simulation.trials":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("invalid trials: %s (must be a positive integer)", value)
		}
		cfg.Simulation.Trials = n
	case "simulation.seed":
		if value == "" || value == "random" {
			cfg.Simulation.Seed = nil
			return nil
		}
		n, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid seed: %s (must be an unsigned integer or 'random')", value)
		}
		cfg.Simulation.Seed = &n
	case "simulation.workers":
		n, err := strconv.Atoi(value)
		if err != nil || n < 1 || n > constants.MaxWorkers {
			return fmt.Errorf("invalid workers: %s (must be between 1 and %d)", value, constants.MaxWorkers)
		}
		cfg.Simulation.Workers = n
	case "simulation.strategies":
		var names []string
		for _, part := range strings.Split(value, ",") {
			s, err := envelope.ParseStrategy(part)
			if err != nil {
				return err
			}
			names = append(names, s.String())
		}
		cfg.Simulation.Strategies = names
	case "output.format":
		f := constants.Format(strings.ToLower(value))
		if !f.Valid() {
			return fmt.Errorf("invalid format: %s (valid: text, json, yaml)", value)
		}
		cfg.Output.Format = f
	case "output.interval":
		cfg.Output.Interval = value == "true" || value == "1"
	case "logging.level":
		validLevels := map[string]bool{"info": true, "debug": true, "trace": true}
		if !validLevels[value] {
			return fmt.Errorf("invalid log level: %s (valid: info, debug, trace)", value)
		}
		cfg.Logging.Level = value
	case "logging.trace_dir":
		cfg.Logging.TraceDir = value
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// valueOrDefault returns the value if non-empty, otherwise the default.
func valueOrDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}
