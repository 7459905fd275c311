package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// FileName is the configuration file looked up when no path is given.
const FileName = ".klmax.json"

// Config is the root configuration structure.
type Config struct {
	Demo       DemoConfig           `json:"demo"`
	Bound      BoundConfig          `json:"bound"`
	Output     OutputConfig         `json:"output"`
	Thresholds DivergenceThresholds `json:"thresholds"`
}

// DemoConfig controls the random distributions drawn by the demonstration.
type DemoConfig struct {
	Trials    int    `json:"trials"`    // Default: 10
	Seed      uint64 `json:"seed"`      // 0 draws a seed from the clock
	MinLength int    `json:"minLength"` // Default: 2
	MaxLength int    `json:"maxLength"` // Default: 10
	MaxValue  int    `json:"maxValue"`  // Default: 10
}

// BoundConfig controls the check of the normalized divergence range.
type BoundConfig struct {
	Trials    int     `json:"trials"`
	Tolerance float64 `json:"tolerance"`
}

// OutputConfig holds printout defaults.
type OutputConfig struct {
	Format string `json:"format"`
	Top    int    `json:"top"`
}

// DivergenceThresholds classify a normalized divergence.
type DivergenceThresholds struct {
	High   float64 `json:"high"`
	Medium float64 `json:"medium"`
}

func DefaultDivergenceThresholds() DivergenceThresholds {
	return DivergenceThresholds{
		High:   0.7,
		Medium: 0.4,
	}
}

// Classify returns the divergence level for a normalized divergence.
func (t DivergenceThresholds) Classify(nkl float64) DivergenceLevel {
	if nkl >= t.High {
		return DivergenceLevelHigh
	}
	if nkl >= t.Medium {
		return DivergenceLevelMedium
	}
	return DivergenceLevelLow
}

// DivergenceLevel represents the divergence classification.
type DivergenceLevel string

const (
	DivergenceLevelHigh   DivergenceLevel = "high"
	DivergenceLevelMedium DivergenceLevel = "medium"
	DivergenceLevelLow    DivergenceLevel = "low"
)

// DefaultConfig returns a configuration with default values.
func DefaultConfig() *Config {
	return &Config{
		Demo: DemoConfig{
			Trials:    10,
			Seed:      0,
			MinLength: 2,
			MaxLength: 10,
			MaxValue:  10,
		},
		Bound: BoundConfig{
			Trials:    10000,
			Tolerance: 1e-9,
		},
		Output: OutputConfig{
			Format: "console",
			Top:    0,
		},
		Thresholds: DefaultDivergenceThresholds(),
	}
}

// Validate reports settings the demonstration cannot run with.
func (c *Config) Validate() error {
	d := c.Demo
	if d.Trials < 0 {
		return fmt.Errorf("demo.trials must not be negative, got %d", d.Trials)
	}
	if d.MinLength < 1 {
		return fmt.Errorf("demo.minLength must be at least 1, got %d", d.MinLength)
	}
	if d.MaxLength < d.MinLength {
		return fmt.Errorf("demo.maxLength (%d) is below demo.minLength (%d)", d.MaxLength, d.MinLength)
	}
	if d.MaxValue < 1 {
		return fmt.Errorf("demo.maxValue must be at least 1, got %d", d.MaxValue)
	}
	if c.Bound.Trials < 0 {
		return fmt.Errorf("bound.trials must not be negative, got %d", c.Bound.Trials)
	}
	if c.Bound.Tolerance < 0 {
		return fmt.Errorf("bound.tolerance must not be negative, got %g", c.Bound.Tolerance)
	}
	if c.Thresholds.Medium > c.Thresholds.High {
		return fmt.Errorf("thresholds.medium (%g) is above thresholds.high (%g)", c.Thresholds.Medium, c.Thresholds.High)
	}
	return nil
}

// LoadConfig loads configuration from a file, merging with defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path == "" {
		// Try default locations
		candidates := []string{FileName}
		if home, err := os.UserHomeDir(); err == nil && home != "" {
			candidates = append(candidates, filepath.Join(home, FileName))
		} else if envHome := os.Getenv("HOME"); envHome != "" {
			candidates = append(candidates, filepath.Join(envHome, FileName))
		}
		for _, p := range candidates {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
