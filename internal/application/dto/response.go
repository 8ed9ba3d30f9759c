package dto

import (
	"time"

	"github.com/reglet-dev/ketchlist/internal/domain"
	"github.com/reglet-dev/ketchlist/internal/domain/services"
	"github.com/reglet-dev/ketchlist/internal/domain/values"
)

// GenerateResponse summarizes a completed generation run.
type GenerateResponse struct {
	RunID        values.RunID      `json:"run_id" yaml:"run_id"`
	OutputPath   string            `json:"output" yaml:"output"`
	Years        values.YearRange  `json:"years" yaml:"years"`
	Seeds        []string          `json:"seeds" yaml:"seeds"`
	Policy       string            `json:"policy,omitempty" yaml:"policy,omitempty"`
	Filter       string            `json:"filter,omitempty" yaml:"filter,omitempty"`
	Stages       []StageCount      `json:"stages" yaml:"stages"`
	Written      uint64            `json:"written" yaml:"written"`
	Filtered     uint64            `json:"filtered" yaml:"filtered"`
	BytesWritten int64             `json:"bytes_written" yaml:"bytes_written"`
	Estimate     services.Estimate `json:"estimate" yaml:"estimate"`
	Metadata     ResponseMetadata  `json:"metadata" yaml:"metadata"`
}

// Filtering reports whether a policy or filter expression was active.
func (r *GenerateResponse) Filtering() bool {
	return r.Policy != "" || r.Filter != ""
}

// StageCount records the lines a pipeline stage wrote and rejected.
type StageCount struct {
	Stage    domain.Stage `json:"stage" yaml:"stage"`
	Written  uint64       `json:"written" yaml:"written"`
	Filtered uint64       `json:"filtered" yaml:"filtered"`
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	// RequestID from the original request
	RequestID string `json:"request_id,omitempty" yaml:"request_id,omitempty"`

	// ProcessedAt is when the request was processed
	ProcessedAt time.Time `json:"processed_at" yaml:"processed_at"`

	// Duration is how long the request took
	Duration time.Duration `json:"duration" yaml:"duration"`
}

// EstimateResponse reports the size of a run without generating it.
type EstimateResponse struct {
	Seeds           []string          `json:"seeds" yaml:"seeds"`
	Years           values.YearRange  `json:"years" yaml:"years"`
	RelationNumbers []int             `json:"relation_numbers" yaml:"relation_numbers"`
	IncludeSpecials bool              `json:"include_specials" yaml:"include_specials"`
	Estimate        services.Estimate `json:"estimate" yaml:"estimate"`
}
