package utils

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ScenarioConfig describes one benchmark trial in a suite file.
type ScenarioConfig struct {
	Name  string  `yaml:"name"`
	Rows  int     `yaml:"rows"`
	Cols  int     `yaml:"cols"`
	Rank  int     `yaml:"rank"`
	Noise float64 `yaml:"noise"`
	Seed  uint64  `yaml:"seed"`
}

// SuiteConfig is the root of a benchmark suite file.
type SuiteConfig struct {
	Scenarios []ScenarioConfig `yaml:"scenarios"`
}

// LoadSuite reads and validates a YAML benchmark suite file.
func LoadSuite(path string) (*SuiteConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}
	var cfg SuiteConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal suite file: %w", err)
	}
	if err := ValidateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ValidateConfig validates a benchmark suite configuration.
func ValidateConfig(cfg *SuiteConfig) error {
	if len(cfg.Scenarios) == 0 {
		return fmt.Errorf("suite must define at least one scenario")
	}

	for i, s := range cfg.Scenarios {
		if s.Name == "" {
			return fmt.Errorf("scenario %d: name must not be empty", i)
		}
		if s.Rows <= 0 || s.Cols <= 0 {
			return fmt.Errorf("scenario %q: dimensions must be positive", s.Name)
		}
		if s.Rank < 1 || s.Rank > s.Rows || s.Rank > s.Cols {
			return fmt.Errorf("scenario %q: rank must be in 1..min(rows, cols)", s.Name)
		}
		if s.Noise < 0 {
			return fmt.Errorf("scenario %q: noise must be non-negative", s.Name)
		}
	}

	return nil
}
