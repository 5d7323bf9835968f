package format

import (
	"errors"
	"fmt"
)

// Error is a coded confmerge error.
// Two errors match under errors.Is when their codes are equal, so the
// sentinels below can be compared against any enriched copy.
type Error struct {
	Code    string // Error code (e.g., "CM-FMT-4040")
	Message string // Human-readable message
	Details string // Failing source or identifier
	Cause   error  // Underlying error (if any)
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("[%s] %s", e.Code, e.Message)
	if e.Details != "" {
		msg += ": " + e.Details
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying error for errors.Unwrap() support.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is implements errors.Is() support for error comparison.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// NewError creates a new Error with the given code and message.
func NewError(code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithDetails returns a copy of the error with additional details.
func (e *Error) WithDetails(details string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   e.Cause,
	}
}

// WithCause returns a copy of the error wrapping the given cause.
func (e *Error) WithCause(cause error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: e.Details,
		Cause:   cause,
	}
}

// Wrap is shorthand for WithDetails(details).WithCause(cause).
func (e *Error) Wrap(details string, cause error) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message,
		Details: details,
		Cause:   cause,
	}
}

// Code extracts the error code from err, "" when err carries none.
func Code(err error) string {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Code
	}
	return ""
}

var (
	// ErrUnknownFormat indicates the format identifier has no registry entry.
	ErrUnknownFormat = NewError("CM-FMT-4040", "unknown config format")

	// ErrPluginNotFound indicates the parser provider has no such plugin.
	ErrPluginNotFound = NewError("CM-FMT-4041", "parser plugin not found")

	// ErrParse indicates a parser rejected its input.
	ErrParse = NewError("CM-FMT-4220", "malformed config data")

	// ErrRead indicates a configuration source could not be read.
	ErrRead = NewError("CM-SRC-5000", "config source unreadable")
)
