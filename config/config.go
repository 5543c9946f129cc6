// Package config handles the crystalsql.yaml conversion configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CurrentConfigVersion is the current version of the config file format.
const CurrentConfigVersion = 1

// Config is the on-disk conversion configuration.
type Config struct {
	Version int `yaml:"version"`
	// FormulaPrefix precedes generated formula function names
	FormulaPrefix string `yaml:"formula_prefix"`
	// TriggerPrefix precedes generated format-trigger names
	TriggerPrefix string `yaml:"trigger_prefix"`
	// ParameterPrefix precedes parameter bind names
	ParameterPrefix string `yaml:"parameter_prefix"`
	// OnUnsupported is one of placeholder, skip, fail
	OnUnsupported string `yaml:"on_unsupported"`
	// LogLevel is one of debug, info, warn, error, off
	LogLevel string `yaml:"log_level,omitempty"`
	// Workers sets batch translation parallelism; 0 or 1 is sequential
	Workers int `yaml:"workers,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version:         CurrentConfigVersion,
		FormulaPrefix:   "CF_",
		TriggerPrefix:   "FT_",
		ParameterPrefix: "P_",
		OnUnsupported:   "placeholder",
	}
}

// Load reads a Config from a file path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close() //nolint:errcheck

	cfg := Default()
	if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the Config to a file path.
func (c *Config) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close() //nolint:errcheck

	enc := yaml.NewEncoder(f)
	enc.SetIndent(2)
	return enc.Encode(c)
}

// Validate checks the configuration for required fields and valid values.
func (c *Config) Validate() error {
	if c.Version != CurrentConfigVersion {
		return fmt.Errorf("config: unsupported version %d", c.Version)
	}
	switch c.OnUnsupported {
	case "", "placeholder", "skip", "fail":
	default:
		return fmt.Errorf("config: unknown on_unsupported policy %q", c.OnUnsupported)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers must not be negative")
	}
	return nil
}
