// Package dto contains data transfer objects for application layer use cases.
package dto

import (
	"github.com/reglet-dev/ketchlist/internal/domain/entities"
)

// GenerateRequest encapsulates all inputs needed to generate a wordlist.
type GenerateRequest struct {
	Recipe   entities.Recipe
	Options  GenerateOptions
	Metadata RequestMetadata
}

// GenerateOptions controls limits around a run.
type GenerateOptions struct {
	// MaxLines rejects runs whose unfiltered line count exceeds it (0 = no limit)
	MaxLines uint64
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string
}

// EstimateRequest encapsulates inputs for a size estimate.
type EstimateRequest struct {
	Recipe entities.Recipe
}
