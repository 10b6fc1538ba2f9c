package errors

import (
	"errors"
	"fmt"
)

// Common error types used across the gotick library

var (
	// ErrStopped indicates that an operation was attempted on a stopped timer
	ErrStopped = errors.New("timer is stopped")

	// ErrInvalidConfiguration indicates invalid configuration or arguments
	ErrInvalidConfiguration = errors.New("invalid configuration")
)

// IsMisuse returns true if the error signals incorrect API usage, such as
// an operation on a stopped timer or a rejected argument, rather than a
// runtime fault
func IsMisuse(err error) bool {
	return errors.Is(err, ErrStopped) || errors.Is(err, ErrInvalidConfiguration)
}

// ValidationError reports a rejected argument or configuration field.
type ValidationError struct {
	Module string
	Field  string
	Value  interface{}
	Reason string
	Hint   string
}

// NewValidationError creates a ValidationError for the given module and field.
func NewValidationError(module, field string, value interface{}, reason string) *ValidationError {
	return &ValidationError{
		Module: module,
		Field:  field,
		Value:  value,
		Reason: reason,
	}
}

// WithHint attaches a usage hint and returns the same error for chaining.
func (e *ValidationError) WithHint(hint string) *ValidationError {
	e.Hint = hint
	return e
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	msg := fmt.Sprintf("%s: invalid %s=%v (%s)", e.Module, e.Field, e.Value, e.Reason)
	if e.Hint != "" {
		msg += " - " + e.Hint
	}
	return msg
}

// Unwrap makes errors.Is match ErrInvalidConfiguration.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidConfiguration
}

// IsValidationError returns true if the error is, or wraps, a ValidationError.
func IsValidationError(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
