package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound          = errors.New("not found")
	ErrValidation        = errors.New("validation error")
	ErrSourceUnavailable = errors.New("data source unavailable")
	ErrNoData            = errors.New("no data available")
	ErrSessionActive     = errors.New("voice session already active")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// SourceError is a failure at the data source boundary: either the transport
// failed or the payload could not be decoded. Both are handled the same way.
type SourceError struct {
	Op        string
	Malformed bool
	Err       error
}

func (e *SourceError) Error() string {
	kind := "transport"
	if e.Malformed {
		kind = "malformed response"
	}
	if e.Err == nil {
		return fmt.Sprintf("source %s: %s", e.Op, kind)
	}
	return fmt.Sprintf("source %s: %s: %v", e.Op, kind, e.Err)
}

// Is reports ErrSourceUnavailable so callers can match on the sentinel.
func (e *SourceError) Is(target error) bool { return target == ErrSourceUnavailable }

func (e *SourceError) Unwrap() error { return e.Err }

// NewTransportError wraps a network or HTTP status failure.
func NewTransportError(op string, err error) *SourceError {
	return &SourceError{Op: op, Err: err}
}

// NewMalformedError wraps a payload decoding failure.
func NewMalformedError(op string, err error) *SourceError {
	return &SourceError{Op: op, Malformed: true, Err: err}
}
