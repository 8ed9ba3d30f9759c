// Package container provides dependency injection for the application.
package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/ketchlist/internal/application/ports"
	"github.com/reglet-dev/ketchlist/internal/application/services"
	domainservices "github.com/reglet-dev/ketchlist/internal/domain/services"
	"github.com/reglet-dev/ketchlist/internal/infrastructure/adapters"
	infraconfig "github.com/reglet-dev/ketchlist/internal/infrastructure/config"
	"github.com/reglet-dev/ketchlist/internal/infrastructure/output"
	"github.com/reglet-dev/ketchlist/internal/infrastructure/sink"
	"github.com/reglet-dev/ketchlist/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	recipeLoader    ports.RecipeLoader
	recipeWriter    ports.RecipeWriter
	formatters      ports.OutputFormatterFactory
	generateUseCase *services.GenerateWordlistUseCase
	systemCfg       *system.Config
	runtimeCfg      *infraconfig.RuntimeConfig
	logger          *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger           *slog.Logger
	SystemConfigPath string

	// Sinks replaces the file sink factory, mainly for tests
	Sinks ports.SinkFactory
}

// New creates a new dependency injection container.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Sinks == nil {
		opts.Sinks = sink.NewFileSinkFactory()
	}

	// Load system config
	systemConfigAdapter := adapters.NewSystemConfigAdapter()
	systemCfg, err := systemConfigAdapter.LoadConfig(context.TODO(), opts.SystemConfigPath)
	if err != nil {
		opts.Logger.Debug("failed to load system config, using defaults", "error", err)
		systemCfg = system.DefaultConfig()
	}

	runtimeCfg := infraconfig.FromSystemConfig(systemCfg)
	runtimeCfg.ApplyDefaults()

	recipeLoader, err := infraconfig.NewRecipeLoader()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize recipe loader: %w", err)
	}

	// Wire up use case
	generateUseCase := services.NewGenerateWordlistUseCase(
		domainservices.NewExpander(nil),
		opts.Sinks,
		adapters.NewLogProgressReporter(opts.Logger),
		opts.Logger,
	)

	return &Container{
		recipeLoader:    recipeLoader,
		recipeWriter:    infraconfig.NewRecipeWriter(),
		formatters:      output.NewFormatterFactory(),
		generateUseCase: generateUseCase,
		systemCfg:       systemCfg,
		runtimeCfg:      runtimeCfg,
		logger:          opts.Logger,
	}, nil
}

// GenerateWordlistUseCase returns the generate wordlist use case.
func (c *Container) GenerateWordlistUseCase() *services.GenerateWordlistUseCase {
	return c.generateUseCase
}

// RecipeLoader returns the recipe loader port.
func (c *Container) RecipeLoader() ports.RecipeLoader {
	return c.recipeLoader
}

// RecipeWriter returns the recipe writer port.
func (c *Container) RecipeWriter() ports.RecipeWriter {
	return c.recipeWriter
}

// Formatters returns the output formatter factory.
func (c *Container) Formatters() ports.OutputFormatterFactory {
	return c.formatters
}

// SystemConfig returns the system configuration.
func (c *Container) SystemConfig() *system.Config {
	return c.systemCfg
}

// RuntimeConfig returns the runtime configuration derived from the
// system configuration. Callers may override it with flag values.
func (c *Container) RuntimeConfig() *infraconfig.RuntimeConfig {
	return c.runtimeCfg
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
