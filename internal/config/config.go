// Package config loads CLI configuration for the docx2tex tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/canxin121/Introduction-to-Quantum-Information/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
	ErrInvalidTimeout = errors.New("invalid timeout")
)

// Config holds defaults that flags may override.
type Config struct {
	Tools   ToolsConfig  `yaml:"tools"`
	Output  OutputConfig `yaml:"output"`
	Timeout string       `yaml:"timeout"` // Go duration string, empty = no timeout
}

// ToolsConfig names the external tool executables.
type ToolsConfig struct {
	Pandoc string `yaml:"pandoc"` // default: "pandoc"
	Ruby   string `yaml:"ruby"`   // default: "ruby"
}

// OutputConfig defines output defaults.
type OutputConfig struct {
	Backup bool `yaml:"backup"` // write .bak of a prior output (default: true)
}

// Default returns the configuration used when no config file is given.
func Default() *Config {
	return &Config{
		Tools:  ToolsConfig{Pandoc: "pandoc", Ruby: "ruby"},
		Output: OutputConfig{Backup: true},
	}
}

// Load reads a YAML config file, layering it over defaults.
// Unknown fields are rejected to catch typos early.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- path supplied by the user running the CLI
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := Default()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrConfigParse, path, err)
	}

	if _, err := cfg.ParseTimeout(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// ParseTimeout converts the timeout string to a duration.
// Empty means no timeout.
func (c *Config) ParseTimeout() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(c.Timeout)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeout, c.Timeout)
	}
	return d, nil
}
