package main

import (
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nvandessel/envelopes/internal/config"
)

func TestConfigSetGet(t *testing.T) {
	isolateHome(t)
	path := filepath.Join(t.TempDir(), "config.yaml")

	if _, _, err := run(t, "config", "set", "simulation.trials", "2500", "--config", path); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	if _, _, err := run(t, "config", "set", "simulation.seed", "11", "--config", path); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	out, _, err := run(t, "config", "get", "simulation.trials", "--config", path)
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	if strings.TrimSpace(out) != "simulation.trials = 2500" {
		t.Errorf("unexpected get output %q", out)
	}

	cfg, err := config.LoadFromFile(path)
	if err != nil {
		t.Fatalf("saved config unreadable: %v", err)
	}
	if cfg.Simulation.Trials != 2500 || cfg.Simulation.Seed == nil || *cfg.Simulation.Seed != 11 {
		t.Errorf("saved config = %+v", cfg.Simulation)
	}

	if _, _, err := run(t, "config", "set", "simulation.seed", "random", "--config", path); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	out, _, err = run(t, "config", "get", "simulation.seed", "--config", path, "--json")
	if err != nil {
		t.Fatalf("config get failed: %v", err)
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(out), &payload); err != nil {
		t.Fatalf("invalid JSON %q: %v", out, err)
	}
	if payload["value"] != "random" {
		t.Errorf("seed = %v, want random", payload["value"])
	}
}

func TestConfigSet_DefaultPath(t *testing.T) {
	home := isolateHome(t)

	if _, _, err := run(t, "config", "set", "output.format", "yaml"); err != nil {
		t.Fatalf("config set failed: %v", err)
	}
	cfg, err := config.LoadFromFile(filepath.Join(home, ".envelopes", "config.yaml"))
	if err != nil {
		t.Fatalf("expected config under HOME: %v", err)
	}
	if cfg.Output.Format != "yaml" {
		t.Errorf("format = %s, want yaml", cfg.Output.Format)
	}
}

func TestSetConfigValue_Invalid(t *testing.T) {
	tests := []struct {
		key, value string
	}{
		{"simulation.trials", "0"},
		{"simulation.trials", "many"},
		{"simulation.seed", "-4"},
		{"simulation.workers", "0"},
		{"simulation.strategies", "reactive,greedy"},
		{"output.format", "xml"},
		{"logging.level", "loud"},
		{"no.such.key", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			if err := setConfigValue(config.Default(), tt.key, tt.value); err == nil {
				t.Errorf("setConfigValue(%q, %q) should fail", tt.key, tt.value)
			}
		})
	}
}

func TestGetConfigValue_Unknown(t *testing.T) {
	if _, found := getConfigValue(config.Default(), "llm.provider"); found {
		t.Error("expected unknown key")
	}
}

func TestConfigList(t *testing.T) {
	isolateHome(t)
	out, _, err := run(t, "config", "list")
	if err != nil {
		t.Fatalf("config list failed: %v", err)
	}
	for _, want := range []string{"simulation.trials:", "100000", "reactive,stubborn", "output.format:", "logging.level:"} {
		if !strings.Contains(out, want) {
			t.Errorf("config list output missing %q:\n%s", want, out)
		}
	}
}
