// Package apperrors defines application-level error types.
package apperrors

import (
	"fmt"
)

// ValidationError indicates recipe or input validation failed.
type ValidationError struct {
	Field   string   // Field that failed validation
	Message string   // Error message
	Details []string // Additional details
}

func (e *ValidationError) Error() string {
	if len(e.Details) == 0 {
		return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s: %s (%d issues)", e.Field, e.Message, len(e.Details))
}

// NewValidationError creates a new validation error.
func NewValidationError(field, message string, details ...string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Details: details,
	}
}

// ConfigurationError indicates generation settings that cannot run,
// detected before any output is produced.
type ConfigurationError struct {
	Cause   error
	Aspect  string
	Message string
}

func (e *ConfigurationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("configuration error (%s): %s: %v", e.Aspect, e.Message, e.Cause)
	}
	return fmt.Sprintf("configuration error (%s): %s", e.Aspect, e.Message)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Cause
}

// NewConfigurationError creates a new configuration error.
func NewConfigurationError(aspect, message string, cause error) *ConfigurationError {
	return &ConfigurationError{
		Aspect:  aspect,
		Message: message,
		Cause:   cause,
	}
}

// OutputError indicates the wordlist could not be created or written.
// Lines written before the failure remain on disk.
type OutputError struct {
	Cause error
	Path  string
	Op    string // create, write or close
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("output error: %s %s: %v", e.Op, e.Path, e.Cause)
}

func (e *OutputError) Unwrap() error {
	return e.Cause
}

// NewOutputError creates a new output error.
func NewOutputError(path, op string, cause error) *OutputError {
	return &OutputError{
		Path:  path,
		Op:    op,
		Cause: cause,
	}
}
