package verifier

import (
	"errors"
	"fmt"
)

// ErrorKind categorizes verifier errors
type ErrorKind int

const (
	// KindPrecondition indicates the caller violated a construction requirement
	KindPrecondition ErrorKind = iota
	// KindConfig indicates an invalid layout or style value
	KindConfig
)

// String returns a human-readable name for the error kind
func (k ErrorKind) String() string {
	switch k {
	case KindPrecondition:
		return "Precondition Violation"
	case KindConfig:
		return "Invalid Configuration"
	default:
		return fmt.Sprintf("ErrorKind(%d)", k)
	}
}

// Error is returned when a Code, Session or Layout cannot be constructed.
// Edits never produce errors; malformed input is accepted literally.
type Error struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface
func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// ErrEmptyCode is returned when the expected code has no characters.
var ErrEmptyCode = &Error{Kind: KindPrecondition, Message: "code must contain at least one character"}

func newConfigError(format string, args ...interface{}) *Error {
	return &Error{Kind: KindConfig, Message: fmt.Sprintf(format, args...)}
}

// IsPreconditionError checks if an error is a construction precondition violation
func IsPreconditionError(err error) bool {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Kind == KindPrecondition
	}
	return false
}

// IsConfigError checks if an error is an invalid layout/style error
func IsConfigError(err error) bool {
	var vErr *Error
	if errors.As(err, &vErr) {
		return vErr.Kind == KindConfig
	}
	return false
}
