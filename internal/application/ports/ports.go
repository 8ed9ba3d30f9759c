// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"
	"io"

	"github.com/reglet-dev/ketchlist/internal/application/dto"
	"github.com/reglet-dev/ketchlist/internal/domain"
	"github.com/reglet-dev/ketchlist/internal/domain/entities"
	"github.com/reglet-dev/ketchlist/internal/infrastructure/system"
)

// WordlistSink receives generated lines. A sink has a single owner for
// the duration of a run.
type WordlistSink interface {
	// WriteLine writes line followed by a newline.
	WriteLine(line string) error

	// BytesWritten returns the number of bytes accepted so far.
	BytesWritten() int64

	// Close flushes buffered lines and releases the sink.
	Close() error
}

// SinkFactory opens sinks for output paths.
type SinkFactory interface {
	// Create opens a sink at path, truncating existing content.
	Create(path string) (WordlistSink, error)
}

// ProgressReporter receives progress from a run. Implementations decide
// whether and how to display it.
type ProgressReporter interface {
	// YearExpanded is called after each year's variants are buffered.
	YearExpanded(year int, variants int)

	// StageCompleted is called after each stage finishes writing.
	StageCompleted(stage domain.Stage, written, filtered uint64)
}

// RecipeLoader loads recipes from storage.
type RecipeLoader interface {
	LoadRecipe(path string) (*entities.Recipe, error)
}

// RecipeWriter persists recipes.
type RecipeWriter interface {
	SaveRecipe(recipe *entities.Recipe, path string) error
}

// SystemConfigProvider provides system configuration.
type SystemConfigProvider interface {
	LoadConfig(ctx context.Context, path string) (*system.Config, error)
}

// FormatterOptions tunes summary formatting.
type FormatterOptions struct {
	Indent bool
	Color  bool
}

// OutputFormatter renders a run summary.
type OutputFormatter interface {
	Format(resp *dto.GenerateResponse) error
	FormatEstimate(resp *dto.EstimateResponse) error
}

// OutputFormatterFactory creates formatters by name.
type OutputFormatterFactory interface {
	Create(format string, writer io.Writer, options FormatterOptions) (OutputFormatter, error)
	SupportedFormats() []string
}
