// Package system provides infrastructure for system-level configuration.
// This covers the optional ~/.ketchlist/config.yaml file, which holds
// per-machine generation limits rather than per-run inputs.
package system

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
)

// Config represents the global configuration file (~/.ketchlist/config.yaml).
type Config struct {
	// MaxLines rejects runs that would write more lines than this (0 = no limit)
	MaxLines uint64 `yaml:"max_lines"`

	// Format is the summary format used when --format is not given
	Format string `yaml:"format"`

	// OutputDir is prepended to relative output paths
	OutputDir string `yaml:"output_dir"`
}

// DefaultFormat is the summary format when neither flag nor config set one.
const DefaultFormat = "table"

// DefaultConfig returns a Config with defaults for all fields.
// This is used when no system config file exists.
func DefaultConfig() *Config {
	return &Config{
		MaxLines: 0,
		Format:   DefaultFormat,
	}
}

// DefaultPath returns ~/.ketchlist/config.yaml.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ketchlist", "config.yaml"), nil
}

// ResolveOutput joins a relative output path onto OutputDir.
func (c *Config) ResolveOutput(path string) string {
	if c.OutputDir == "" || path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.OutputDir, path)
}

// ConfigLoader loads system configuration from disk.
type ConfigLoader struct{}

// NewConfigLoader creates a new system config loader.
func NewConfigLoader() *ConfigLoader {
	return &ConfigLoader{}
}

// Load loads the system configuration from the specified path.
// If the file does not exist, returns DefaultConfig().
func (l *ConfigLoader) Load(path string) (*Config, error) {
	//nolint:gosec // G304: path is the user's own config file
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read system config: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse system config: %w", err)
	}
	if config.Format == "" {
		config.Format = DefaultFormat
	}

	return config, nil
}
