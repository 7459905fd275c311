package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDivergenceThresholds_Classify(t *testing.T) {
	thresholds := DivergenceThresholds{High: 0.7, Medium: 0.4}

	tests := []struct {
		name     string
		nkl      float64
		expected DivergenceLevel
	}{
		{name: "High divergence", nkl: 0.8, expected: DivergenceLevelHigh},
		{name: "High boundary", nkl: 0.7, expected: DivergenceLevelHigh},
		{name: "Just below high", nkl: 0.69, expected: DivergenceLevelMedium},
		{name: "Medium boundary", nkl: 0.4, expected: DivergenceLevelMedium},
		{name: "Just below medium", nkl: 0.39, expected: DivergenceLevelLow},
		{name: "Identical", nkl: 0.0, expected: DivergenceLevelLow},
		{name: "Maximal", nkl: 1.0, expected: DivergenceLevelHigh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := thresholds.Classify(tt.nkl)
			if result != tt.expected {
				t.Errorf("Classify(%f) = %q, expected %q", tt.nkl, result, tt.expected)
			}
		})
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Demo.Trials != 10 {
		t.Errorf("Demo.Trials = %d, expected 10", cfg.Demo.Trials)
	}
	if cfg.Demo.MinLength != 2 {
		t.Errorf("Demo.MinLength = %d, expected 2", cfg.Demo.MinLength)
	}
	if cfg.Demo.MaxLength != 10 {
		t.Errorf("Demo.MaxLength = %d, expected 10", cfg.Demo.MaxLength)
	}
	if cfg.Demo.MaxValue != 10 {
		t.Errorf("Demo.MaxValue = %d, expected 10", cfg.Demo.MaxValue)
	}
	if cfg.Bound.Trials != 10000 {
		t.Errorf("Bound.Trials = %d, expected 10000", cfg.Bound.Trials)
	}
	if cfg.Output.Format != "console" {
		t.Errorf("Output.Format = %q, expected %q", cfg.Output.Format, "console")
	}
	if cfg.Thresholds.High != 0.7 {
		t.Errorf("Thresholds.High = %f, expected 0.7", cfg.Thresholds.High)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v, expected nil", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "NegativeTrials", mutate: func(c *Config) { c.Demo.Trials = -1 }, wantErr: "demo.trials"},
		{name: "ZeroMinLength", mutate: func(c *Config) { c.Demo.MinLength = 0 }, wantErr: "demo.minLength"},
		{name: "InvertedLengths", mutate: func(c *Config) { c.Demo.MaxLength = 1 }, wantErr: "demo.maxLength"},
		{name: "ZeroMaxValue", mutate: func(c *Config) { c.Demo.MaxValue = 0 }, wantErr: "demo.maxValue"},
		{name: "NegativeTolerance", mutate: func(c *Config) { c.Bound.Tolerance = -1 }, wantErr: "bound.tolerance"},
		{name: "InvertedThresholds", mutate: func(c *Config) { c.Thresholds.Medium = 0.9 }, wantErr: "thresholds.medium"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("Validate() = %v, expected mention of %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_MergesOverDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "klmax.json")
	data := `{"demo": {"trials": 3, "seed": 42}, "output": {"format": "json"}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Demo.Trials != 3 {
		t.Errorf("Demo.Trials = %d, expected 3", cfg.Demo.Trials)
	}
	if cfg.Demo.Seed != 42 {
		t.Errorf("Demo.Seed = %d, expected 42", cfg.Demo.Seed)
	}
	if cfg.Demo.MaxLength != 10 {
		t.Errorf("Demo.MaxLength = %d, expected default 10", cfg.Demo.MaxLength)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("Output.Format = %q, expected %q", cfg.Output.Format, "json")
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Demo.Trials != 10 {
		t.Errorf("Demo.Trials = %d, expected default 10", cfg.Demo.Trials)
	}
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "klmax.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	if _, err := LoadConfig(path); err == nil {
		t.Fatalf("expected error, got nil")
	}
}
