// Package taskerr defines the typed errors returned by the repository
// and its callers.
package taskerr

import (
	"errors"
	"fmt"
)

// Kind classifies an error so callers can branch on it.
type Kind string

const (
	// Storage covers connection, schema and statement failures.
	Storage Kind = "storage"
	// NotFound means the referenced task id does not exist.
	NotFound Kind = "not_found"
	// InvalidPriority means a priority code outside 1..3.
	InvalidPriority Kind = "invalid_priority"
	// InvalidDate means a due-date string that matches neither accepted layout.
	InvalidDate Kind = "invalid_date"
	// InvalidArgument means a missing or malformed required input.
	InvalidArgument Kind = "invalid_argument"
	// Corrupt means a persisted row failed to decode.
	Corrupt Kind = "corrupt_record"
)

// Error carries a kind, a message and an optional wrapped cause.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	return e.Msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// New creates an error of the given kind.
func New(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// Wrap creates an error of the given kind around a cause.
func Wrap(kind Kind, err error, format string, args ...any) *Error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...), Err: err}
}

// IsKind reports whether any error in the chain has the given kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == kind
}

// KindOf returns the kind of the first typed error in the chain, or
// Storage when the chain carries no typed error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return Storage
}
