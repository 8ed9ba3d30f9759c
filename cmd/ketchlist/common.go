package main

import (
	"fmt"
	"os"
	"slices"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// CommonOptions contains flags shared across commands that print a summary.
type CommonOptions struct {
	// Output
	Format string

	// Limits
	MaxLines uint64

	// Flags (bools grouped for alignment)
	NoColor bool
	Quiet   bool
}

// RegisterFlags adds common flags to a cobra command.
func (opts *CommonOptions) RegisterFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&opts.Format, "format", opts.Format,
		"Summary format: table, json, yaml (default from system config, else table)")
	cmd.Flags().Uint64Var(&opts.MaxLines, "max-lines", opts.MaxLines,
		"Refuse runs that would write more lines than this (0 uses the system config limit)")
	cmd.Flags().BoolVar(&opts.NoColor, "no-color", false,
		"Disable colored output")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false,
		"Quiet output (errors only)")
}

// ValidateFlags validates common options.
func (opts *CommonOptions) ValidateFlags(verbose bool, formats []string) error {
	if verbose && opts.Quiet {
		return fmt.Errorf("--verbose and --quiet are mutually exclusive")
	}

	if opts.Format != "" && !slices.Contains(formats, opts.Format) {
		return fmt.Errorf("invalid format: %s (valid: %v)", opts.Format, formats)
	}

	return nil
}

// UseColor reports whether summaries written to f should be colored.
func (opts *CommonOptions) UseColor(f *os.File) bool {
	if opts.NoColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
