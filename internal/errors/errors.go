// Package errors provides error handling utilities.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind identifies the category of error
type Kind string

const (
	// KindMissingField indicates one of the form fields was left empty
	KindMissingField Kind = "MISSING_FIELD"

	// KindNotANumber indicates a field could not be parsed as a decimal number
	KindNotANumber Kind = "NOT_A_NUMBER"

	// KindNonPositiveValue indicates a parsed value was zero or negative
	KindNonPositiveValue Kind = "NON_POSITIVE_VALUE"

	// KindRateOutOfRange indicates the rate exceeded 100 percent
	KindRateOutOfRange Kind = "RATE_OUT_OF_RANGE"

	// KindConfig indicates a configuration error
	KindConfig Kind = "CONFIG_ERROR"

	// KindInternal indicates an internal error
	KindInternal Kind = "INTERNAL_ERROR"
)

// Error represents a domain error with context.
// Message is user-facing display text; Error() is meant for logs.
type Error struct {
	Kind    Kind   `json:"kind"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Cause   error  `json:"-"`
}

// Error implements the error interface
func (e *Error) Error() string {
	prefix := fmt.Sprintf("[%s]", e.Kind)
	if e.Field != "" {
		prefix = fmt.Sprintf("[%s %s]", e.Kind, e.Field)
	}
	if e.Cause != nil {
		return fmt.Sprintf("%s %s: %v", prefix, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s %s", prefix, e.Message)
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same kind
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// WithField records which input the error refers to
func (e *Error) WithField(field string) *Error {
	e.Field = field
	return e
}

// New creates a new error
func New(kind Kind, message string) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Wrap wraps an error with context
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		Cause:   cause,
	}
}

// Wrapf wraps an error with formatted context
func Wrapf(kind Kind, cause error, format string, args ...interface{}) *Error {
	return &Error{
		Kind:    kind,
		Message: fmt.Sprintf(format, args...),
		Cause:   cause,
	}
}

// KindOf returns the kind of the first *Error in err's chain, or "" if none
func KindOf(err error) Kind {
	var e *Error
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Message returns the display text of err. Plain errors fall back to err.Error().
func Message(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	if stderrors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// IsInput reports whether err is a user-recoverable input error
func IsInput(err error) bool {
	switch KindOf(err) {
	case KindMissingField, KindNotANumber, KindNonPositiveValue, KindRateOutOfRange:
		return true
	}
	return false
}

// Config creates a configuration error
func Config(message string, cause error) *Error {
	return Wrap(KindConfig, message, cause)
}

// Internal creates an internal error
func Internal(message string, cause error) *Error {
	return Wrap(KindInternal, message, cause)
}
