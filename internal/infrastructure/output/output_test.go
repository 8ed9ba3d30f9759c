package output

import (
	"bytes"
	"encoding/json"
	"math"
	"testing"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/ketchlist/internal/application/dto"
	"github.com/reglet-dev/ketchlist/internal/domain"
	"github.com/reglet-dev/ketchlist/internal/domain/services"
	"github.com/reglet-dev/ketchlist/internal/domain/values"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createTestResponse creates a sample run summary for testing.
func createTestResponse() *dto.GenerateResponse {
	return &dto.GenerateResponse{
		RunID:      values.MustParseRunID("3f2c1a9e-8b4d-4c6e-9f10-2a3b4c5d6e7f"),
		OutputPath: "acme.txt",
		Years:      values.YearRange{Start: 2017, End: 2016},
		Seeds:      []string{"Acme", "Spring"},
		Stages: []dto.StageCount{
			{Stage: domain.StageBase, Written: 1800},
			{Stage: domain.StageSpecials, Written: 115200},
			{Stage: domain.StageRelationNumbers, Written: 128},
		},
		Written:      117128,
		BytesWritten: 1234567,
		Estimate:     services.Estimate{Variants: 300, Base: 1800, Specials: 115200, RelationNumbers: 128, Total: 117128},
		Metadata: dto.ResponseMetadata{
			ProcessedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
			Duration:    1500 * time.Millisecond,
		},
	}
}

func TestTableFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)
	formatter.EnableColor = false

	require.NoError(t, formatter.Format(createTestResponse()))

	out := buf.String()
	assert.Contains(t, out, "Wordlist generated successfully")
	assert.Contains(t, out, "Run:       3f2c1a9e-8b4d-4c6e-9f10-2a3b4c5d6e7f")
	assert.Contains(t, out, "Output:    acme.txt")
	assert.Contains(t, out, "Seeds:     Acme, Spring")
	assert.Contains(t, out, "Duration:  1.5s")
	assert.Contains(t, out, "specials")
	assert.Contains(t, out, "115,200 written")
	assert.Contains(t, out, "Total:     117,128 lines")
	assert.Contains(t, out, "File size: 1.2 MB (1,234,567 bytes)")
	assert.NotContains(t, out, "filtered")
	assert.NotContains(t, out, "Policy:")
	assert.NotContains(t, out, "\033[")
}

func TestTableFormatter_FormatFiltered(t *testing.T) {
	resp := createTestResponse()
	resp.Policy = "len >= 8, digit"
	resp.Filter = "hasUpper"
	resp.Filtered = 42
	resp.Stages[0].Filtered = 42

	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)
	formatter.EnableColor = false
	require.NoError(t, formatter.Format(resp))

	out := buf.String()
	assert.Contains(t, out, "Policy:    len >= 8, digit")
	assert.Contains(t, out, "Filter:    hasUpper")
	assert.Contains(t, out, "42 filtered")
	assert.Contains(t, out, "Filtered:  42")
}

func TestTableFormatter_Color(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewTableFormatter(&buf).Format(createTestResponse()))

	assert.Contains(t, buf.String(), colorGreen)
	assert.Contains(t, buf.String(), colorReset)
}

func TestTableFormatter_FormatEstimate(t *testing.T) {
	resp := &dto.EstimateResponse{
		Seeds:           []string{"Acme"},
		Years:           values.YearRange{Start: 2017, End: 2016},
		RelationNumbers: []int{123, 1},
		IncludeSpecials: true,
		Estimate:        services.Estimate{Variants: 300, Base: 1800, Specials: 115200, RelationNumbers: 128, Total: 117128},
	}

	var buf bytes.Buffer
	formatter := NewTableFormatter(&buf)
	formatter.EnableColor = false
	require.NoError(t, formatter.FormatEstimate(resp))

	out := buf.String()
	assert.Contains(t, out, "Variants:         300")
	assert.Contains(t, out, "Special affixes:  115,200")
	assert.Contains(t, out, "Relation numbers: 128")
	assert.Contains(t, out, "Total:            117,128 lines")

	resp.IncludeSpecials = false
	buf.Reset()
	require.NoError(t, formatter.FormatEstimate(resp))
	assert.Contains(t, buf.String(), "Special affixes:  skipped")
	assert.NotContains(t, buf.String(), "Relation numbers:")
}

func TestFormatCount(t *testing.T) {
	tests := []struct {
		in   uint64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{math.MaxInt64, "9,223,372,036,854,775,807"},
		{math.MaxUint64, "18,446,744,073,709,551,615"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, formatCount(tt.in))
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, true).Format(createTestResponse()))

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "3f2c1a9e-8b4d-4c6e-9f10-2a3b4c5d6e7f", decoded["run_id"])
	assert.Equal(t, "acme.txt", decoded["output"])
	assert.InDelta(t, 117128, decoded["written"], 0)
	assert.NotContains(t, decoded, "policy")

	stages, ok := decoded["stages"].([]any)
	require.True(t, ok)
	require.Len(t, stages, 3)
	assert.Equal(t, "relation_numbers", stages[2].(map[string]any)["stage"])
	assert.Contains(t, buf.String(), "\n  \"run_id\"")
}

func TestJSONFormatter_Compact(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewJSONFormatter(&buf, false).FormatEstimate(&dto.EstimateResponse{Seeds: []string{"Acme"}}))

	assert.Equal(t, 1, bytes.Count(buf.Bytes(), []byte("\n")))
	assert.Contains(t, buf.String(), `"seeds":["Acme"]`)
}

func TestYAMLFormatter_Format(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewYAMLFormatter(&buf).Format(createTestResponse()))

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, "3f2c1a9e-8b4d-4c6e-9f10-2a3b4c5d6e7f", decoded["run_id"])
	assert.Equal(t, "acme.txt", decoded["output"])
	assert.Contains(t, buf.String(), "stage: specials")
}

func TestYAMLFormatter_FormatEstimate(t *testing.T) {
	var buf bytes.Buffer
	resp := &dto.EstimateResponse{
		Seeds:    []string{"Acme"},
		Estimate: services.Estimate{Total: 42},
	}
	require.NoError(t, NewYAMLFormatter(&buf).FormatEstimate(resp))

	assert.Contains(t, buf.String(), "total: 42")
}
