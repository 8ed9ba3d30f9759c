package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/reglet-dev/ketchlist/internal/application/ports"
	"github.com/reglet-dev/ketchlist/internal/infrastructure/container"
	"github.com/spf13/cobra"
)

// CommandContext provides common command dependencies.
type CommandContext struct {
	Container *container.Container
	Logger    *slog.Logger
	Context   context.Context
}

// CommandHandler is a function that executes with initialized dependencies.
type CommandHandler func(*CommandContext, *cobra.Command, []string) error

// sinkOverride replaces the file sink in tests.
var sinkOverride ports.SinkFactory

// withContainer wraps a command handler with container initialization.
// Handles common setup: system config loading, logger, dependency injection.
func withContainer(handler CommandHandler) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		systemConfigPath, _ := cmd.Flags().GetString("system-config")

		c, err := container.New(container.Options{
			SystemConfigPath: systemConfigPath,
			Logger:           slog.Default(),
			Sinks:            sinkOverride,
		})
		if err != nil {
			return fmt.Errorf("failed to initialize application: %w", err)
		}

		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}

		return handler(&CommandContext{
			Container: c,
			Logger:    c.Logger(),
			Context:   ctx,
		}, cmd, args)
	}
}

// addSystemConfigFlag adds the system config path flag to a command.
func addSystemConfigFlag(cmd *cobra.Command) {
	cmd.Flags().String("system-config", "", "Path to system config (default is $HOME/.ketchlist/config.yaml)")
}
