package output

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/ketchlist/internal/application/dto"
)

// YAMLFormatter formats run summaries as YAML.
type YAMLFormatter struct {
	writer io.Writer
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the run summary as YAML.
func (f *YAMLFormatter) Format(resp *dto.GenerateResponse) error {
	return f.encode(resp)
}

// FormatEstimate writes the estimate as YAML.
func (f *YAMLFormatter) FormatEstimate(resp *dto.EstimateResponse) error {
	return f.encode(resp)
}

func (f *YAMLFormatter) encode(v any) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(v); err != nil {
		return err
	}

	return encoder.Close()
}
