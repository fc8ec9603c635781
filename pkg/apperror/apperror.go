// Package apperror provides the error taxonomy shared by services and handlers.
package apperror

import (
	"errors"
	"net/http"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// KindUnknown represents an unclassified failure.
	KindUnknown Kind = "UNKNOWN"
	// KindValidation marks malformed input rejected before any write.
	KindValidation Kind = "VALIDATION"
	// KindPrecondition marks an operation attempted from a forbidden state.
	KindPrecondition Kind = "PRECONDITION_FAILED"
	// KindNotFound marks a missing record.
	KindNotFound Kind = "NOT_FOUND"
	// KindTransient marks a failed or dropped store write/read.
	KindTransient Kind = "TRANSIENT"
	// KindDataShape marks a malformed or legacy-shaped record.
	KindDataShape Kind = "DATA_SHAPE"
)

// HTTPStatus maps kinds to HTTP status codes.
func (k Kind) HTTPStatus() int {
	switch k {
	case KindValidation:
		return http.StatusBadRequest
	case KindPrecondition:
		return http.StatusConflict
	case KindNotFound:
		return http.StatusNotFound
	case KindTransient:
		return http.StatusServiceUnavailable
	case KindDataShape:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// Error is the domain error type with structured metadata.
type Error struct {
	Kind     Kind
	Message  string
	Metadata map[string]string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// New creates a simple domain error with a kind and message.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// WithMetadata creates a domain error carrying extra context.
func WithMetadata(kind Kind, message string, metadata map[string]string) *Error {
	return &Error{Kind: kind, Message: message, Metadata: metadata}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Cause: cause}
}

// KindOf returns the kind of the first *Error in the chain, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// IsKind reports whether err carries the given kind.
func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}
