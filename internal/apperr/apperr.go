// Package apperr defines the error type used across calmind.
package apperr

import "fmt"

// Error is a domain error with an optional wrapped cause.
type Error struct {
	Cause   error
	Message string

	// template is the unformatted message of the error this one was
	// derived from, so Fmt copies still compare equal to the original.
	template string
}

func (e *Error) key() string {
	if e.template != "" {
		return e.template
	}

	return e.Message
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}

	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is the same domain error, ignoring the
// cause and any Fmt arguments.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return e.key() == t.key()
}

// Wrap returns a copy of the error with the given cause attached.
func (e *Error) Wrap(cause error) *Error {
	return &Error{
		Message:  e.Message,
		Cause:    cause,
		template: e.key(),
	}
}

// Fmt returns a copy of the error with its message formatted with args.
func (e *Error) Fmt(args ...any) *Error {
	return &Error{
		Message:  fmt.Sprintf(e.Message, args...),
		Cause:    e.Cause,
		template: e.key(),
	}
}
