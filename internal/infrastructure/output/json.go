package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/ketchlist/internal/application/dto"
)

// JSONFormatter formats run summaries as JSON.
type JSONFormatter struct {
	writer io.Writer
	indent bool
}

// NewJSONFormatter creates a new JSON formatter.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{writer: w, indent: indent}
}

// Format writes the run summary as JSON.
func (f *JSONFormatter) Format(resp *dto.GenerateResponse) error {
	return f.encode(resp)
}

// FormatEstimate writes the estimate as JSON.
func (f *JSONFormatter) FormatEstimate(resp *dto.EstimateResponse) error {
	return f.encode(resp)
}

func (f *JSONFormatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	if f.indent {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(v)
}
