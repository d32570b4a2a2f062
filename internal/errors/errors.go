package errors

import "fmt"

// Kind classifies an application error so callers can react without
// string matching.
type Kind int

const (
	ErrInternal Kind = iota
	// ErrNotFound covers both "row does not exist" and "row exists but
	// belongs to another user". The two cases are deliberately
	// indistinguishable so the API never leaks whether a foreign id exists.
	ErrNotFound
	ErrValidation
	ErrUnauthorized
	// ErrUnavailable marks a failure of the underlying store. It is
	// surfaced as-is; retry policy belongs to the caller.
	ErrUnavailable
)

// Error is an application-level error with a kind for classification.
type Error struct {
	Kind    Kind
	Message string
	Err     error // underlying error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Constructor functions for common error types

func NotFound(msg string) *Error {
	return &Error{Kind: ErrNotFound, Message: msg}
}

func NotFoundf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrNotFound, Message: fmt.Sprintf(format, args...)}
}

func Validation(msg string) *Error {
	return &Error{Kind: ErrValidation, Message: msg}
}

func Validationf(format string, args ...interface{}) *Error {
	return &Error{Kind: ErrValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(msg string) *Error {
	return &Error{Kind: ErrUnauthorized, Message: msg}
}

func Unavailable(err error) *Error {
	return &Error{Kind: ErrUnavailable, Message: "store unavailable", Err: err}
}

func Internal(err error) *Error {
	return &Error{Kind: ErrInternal, Message: "internal error", Err: err}
}

// Wrap wraps an error with additional context
func Wrap(err error, kind Kind, msg string) *Error {
	return &Error{Kind: kind, Message: msg, Err: err}
}
