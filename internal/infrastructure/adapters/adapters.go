// Package adapters provides infrastructure adapters that implement application ports.
// These adapters wrap existing infrastructure components to satisfy port interfaces.
package adapters

import (
	"context"
	"log/slog"

	"github.com/reglet-dev/ketchlist/internal/application/ports"
	"github.com/reglet-dev/ketchlist/internal/domain"
	infraconfig "github.com/reglet-dev/ketchlist/internal/infrastructure/config"
	"github.com/reglet-dev/ketchlist/internal/infrastructure/output"
	"github.com/reglet-dev/ketchlist/internal/infrastructure/sink"
	"github.com/reglet-dev/ketchlist/internal/infrastructure/system"
)

// Ensure adapters implement ports at compile time
var (
	_ ports.RecipeLoader           = (*infraconfig.RecipeLoader)(nil)
	_ ports.RecipeWriter           = (*infraconfig.RecipeWriter)(nil)
	_ ports.SystemConfigProvider   = (*SystemConfigAdapter)(nil)
	_ ports.SinkFactory            = (*sink.FileSinkFactory)(nil)
	_ ports.SinkFactory            = (*sink.MemorySinkFactory)(nil)
	_ ports.ProgressReporter       = (*LogProgressReporter)(nil)
	_ ports.OutputFormatterFactory = (*output.FormatterFactory)(nil)
)

// SystemConfigAdapter adapts system config loader to port interface.
type SystemConfigAdapter struct {
	loader *system.ConfigLoader
}

// NewSystemConfigAdapter creates a new system config adapter.
func NewSystemConfigAdapter() *SystemConfigAdapter {
	return &SystemConfigAdapter{
		loader: system.NewConfigLoader(),
	}
}

// LoadConfig loads system configuration from path, or from the default
// location when path is empty.
func (a *SystemConfigAdapter) LoadConfig(_ context.Context, path string) (*system.Config, error) {
	if path == "" {
		defaultPath, err := system.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = defaultPath
	}

	return a.loader.Load(path)
}

// LogProgressReporter turns run progress into debug log records, so it
// shows only with --verbose.
type LogProgressReporter struct {
	logger *slog.Logger
}

// NewLogProgressReporter creates a progress reporter writing to logger.
func NewLogProgressReporter(logger *slog.Logger) *LogProgressReporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogProgressReporter{logger: logger}
}

// YearExpanded logs the number of variants buffered for year.
func (r *LogProgressReporter) YearExpanded(year, variants int) {
	r.logger.Debug("year processed", "year", year, "variations", variants)
}

// StageCompleted logs a stage's counts.
func (r *LogProgressReporter) StageCompleted(stage domain.Stage, written, filtered uint64) {
	r.logger.Debug("stage completed", "stage", stage, "written", written, "filtered", filtered)
}
