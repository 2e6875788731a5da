// Package apperr defines the closed set of error kinds the API reports.
// Callers branch on Kind, never on message text or driver error codes.
package apperr

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the HTTP layer.
type Kind int

const (
	// Internal is the catch-all for unexpected failures.
	Internal Kind = iota
	// NotConfigured means no database connection string was provided.
	// Read paths treat this as degraded mode, not an error.
	NotConfigured
	// InvalidInput is a caller-correctable validation failure.
	InvalidInput
	// Unavailable means the operation requires the database and it is absent.
	Unavailable
	// SchemaMismatch means the database is reachable but missing expected
	// tables or columns.
	SchemaMismatch
)

// Error tags an error with a Kind and a message safe to render to callers.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// New creates a tagged error with no underlying cause.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap tags an underlying error, keeping it in the chain for errors.As checks.
func Wrap(kind Kind, message string, err error) *Error {
	return &Error{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind carried by err, or Internal if err is untagged.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Internal
}

// UserMessage returns the caller-safe message for err. Untagged errors get a
// generic message so driver internals never leak by accident.
func UserMessage(err error) string {
	var e *Error
	if errors.As(err, &e) {
		return e.Message
	}
	return "Internal server error"
}
