// Package output renders run summaries for the terminal and for tools.
package output

import (
	"fmt"
	"io"
	"math"
	"math/big"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/reglet-dev/ketchlist/internal/application/dto"
)

const (
	colorReset  = "\033[0m"
	colorGreen  = "\033[32m"
	colorYellow = "\033[33m"
	colorGray   = "\033[90m"
	colorCyan   = "\033[36m"
	colorBold   = "\033[1m"
)

const ruleWidth = 60

// TableFormatter formats run summaries as human-readable text.
type TableFormatter struct {
	writer      io.Writer
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

func (f *TableFormatter) rule() string {
	return f.colorize(strings.Repeat("─", ruleWidth), colorGray)
}

// Format writes the run summary.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) Format(resp *dto.GenerateResponse) error {
	fmt.Fprintln(f.writer, f.rule())
	fmt.Fprintln(f.writer, f.colorize("✓ Wordlist generated successfully", colorGreen))
	fmt.Fprintf(f.writer, "Run:       %s\n", resp.RunID)
	fmt.Fprintf(f.writer, "Output:    %s\n", f.colorize(resp.OutputPath, colorBold))
	fmt.Fprintf(f.writer, "Years:     %s (%d)\n", resp.Years, resp.Years.Len())
	fmt.Fprintf(f.writer, "Seeds:     %s\n", strings.Join(resp.Seeds, ", "))
	if resp.Policy != "" {
		fmt.Fprintf(f.writer, "Policy:    %s\n", resp.Policy)
	}
	if resp.Filter != "" {
		fmt.Fprintf(f.writer, "Filter:    %s\n", f.colorize(resp.Filter, colorCyan))
	}
	fmt.Fprintf(f.writer, "Duration:  %s\n", resp.Metadata.Duration.Round(time.Millisecond))
	fmt.Fprintln(f.writer)

	if len(resp.Stages) > 0 {
		fmt.Fprintln(f.writer, f.colorize("Stages:", colorBold))
		for _, stage := range resp.Stages {
			line := fmt.Sprintf("  %-18s %15s written", stage.Stage, formatCount(stage.Written))
			if resp.Filtering() {
				line += fmt.Sprintf("  %15s filtered", formatCount(stage.Filtered))
			}
			fmt.Fprintln(f.writer, line)
		}
		fmt.Fprintln(f.writer)
	}

	fmt.Fprintf(f.writer, "Total:     %s lines\n", f.colorize(formatCount(resp.Written), colorBold))
	if resp.Filtering() {
		fmt.Fprintf(f.writer, "Filtered:  %s\n", f.colorize(formatCount(resp.Filtered), colorYellow))
	}
	fmt.Fprintf(f.writer, "File size: %s (%s bytes)\n",
		humanize.Bytes(uint64(max(resp.BytesWritten, 0))),
		humanize.Comma(resp.BytesWritten))
	fmt.Fprintln(f.writer, f.rule())

	return nil
}

// FormatEstimate writes the estimate breakdown.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatEstimate(resp *dto.EstimateResponse) error {
	est := resp.Estimate

	fmt.Fprintln(f.writer, f.rule())
	fmt.Fprintf(f.writer, "Seeds:            %s\n", strings.Join(resp.Seeds, ", "))
	fmt.Fprintf(f.writer, "Years:            %s (%d)\n", resp.Years, resp.Years.Len())
	fmt.Fprintf(f.writer, "Variants:         %s\n", formatCount(est.Variants))
	fmt.Fprintf(f.writer, "Base lines:       %s\n", formatCount(est.Base))
	if resp.IncludeSpecials {
		fmt.Fprintf(f.writer, "Special affixes:  %s\n", formatCount(est.Specials))
		fmt.Fprintf(f.writer, "Relation numbers: %s\n", formatCount(est.RelationNumbers))
	} else {
		fmt.Fprintln(f.writer, f.colorize("Special affixes:  skipped", colorGray))
	}
	fmt.Fprintf(f.writer, "Total:            %s lines\n", f.colorize(formatCount(est.Total), colorBold))
	fmt.Fprintln(f.writer, f.rule())

	return nil
}

// formatCount renders n with thousands separators.
func formatCount(n uint64) string {
	if n > math.MaxInt64 {
		return humanize.BigComma(new(big.Int).SetUint64(n))
	}
	return humanize.Comma(int64(n))
}
