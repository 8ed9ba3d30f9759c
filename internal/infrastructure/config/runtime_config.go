package config

import (
	"github.com/reglet-dev/ketchlist/internal/infrastructure/system"
)

// RuntimeConfig aggregates the settings that shape a run but are not part
// of the recipe. This is a value object that flows through the system.
type RuntimeConfig struct {
	// Limits
	MaxLines uint64

	// Presentation
	Format string

	// Output placement
	OutputDir string
}

// FromSystemConfig creates RuntimeConfig from system config.
func FromSystemConfig(sys *system.Config) *RuntimeConfig {
	return &RuntimeConfig{
		MaxLines:  sys.MaxLines,
		Format:    sys.Format,
		OutputDir: sys.OutputDir,
	}
}

// Override replaces values with the ones given on the command line.
// Zero values leave the system setting in place.
func (r *RuntimeConfig) Override(maxLines uint64, format string) {
	if maxLines > 0 {
		r.MaxLines = maxLines
	}
	if format != "" {
		r.Format = format
	}
}

// ApplyDefaults applies defaults for zero values.
func (r *RuntimeConfig) ApplyDefaults() {
	if r.Format == "" {
		r.Format = system.DefaultFormat
	}
	// MaxLines defaults to 0 (unlimited), which is fine.
}
