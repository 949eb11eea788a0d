package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for validation and pipeline invariant failures.
var (
	ErrMissingID              = errors.New("restaurant id is required")
	ErrEmptyMessage           = errors.New("message is required")
	ErrEmbeddingCountMismatch = errors.New("embedding count does not match record count")
)

// ValidationError wraps a sentinel with the offending field and value.
type ValidationError struct {
	Field   string
	Value   string
	Wrapped error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation: %s: %s (value=%q)", e.Wrapped, e.Field, e.Value)
}

func (e *ValidationError) Unwrap() error { return e.Wrapped }

// NewValidationError creates a ValidationError.
func NewValidationError(field, value string, wrapped error) *ValidationError {
	return &ValidationError{Field: field, Value: value, Wrapped: wrapped}
}

// IsClientError reports whether err stems from bad caller input rather than
// an upstream provider. The HTTP boundary maps these to 4xx responses.
func IsClientError(err error) bool {
	return errors.Is(err, ErrMissingID) || errors.Is(err, ErrEmptyMessage)
}
