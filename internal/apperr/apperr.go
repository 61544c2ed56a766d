package apperr

import (
	"errors"
	"fmt"
)

// Kind partitions every failure the client can observe into a small,
// fixed taxonomy. Views branch on Kind, never on raw status codes.
type Kind string

const (
	// KindNetwork indicates a transport-level failure with no HTTP response.
	KindNetwork Kind = "network"

	// KindValidation indicates the server rejected the request payload
	// (4xx other than authorization and not-found).
	KindValidation Kind = "validation"

	// KindAuthorization indicates a 401 or 403 response.
	KindAuthorization Kind = "authorization"

	// KindNotFound indicates a 404 response.
	KindNotFound Kind = "not_found"

	// KindServer indicates a 5xx response.
	KindServer Kind = "server"

	// KindClient indicates anything else, including local programming
	// errors caught at a boundary.
	KindClient Kind = "client"
)

// FieldError represents a single field-level validation failure
// reported by the server.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the canonical failure value for the resource-access core.
// It is constructed once at the client boundary and propagates unchanged
// through every higher layer. Treat it as immutable after construction.
type Error struct {
	// Kind is the taxonomy bucket this failure falls into.
	Kind Kind

	// Message is a short human-readable description safe to render.
	Message string

	// Code is the machine-readable error code supplied by the server,
	// empty when the server sent none.
	Code string

	// Status is the original HTTP status, 0 for transport-level failures.
	Status int

	// Method and Path identify the request that failed, when known.
	Method string
	Path   string

	// Fields holds per-field validation errors, if the server reported any.
	Fields []FieldError

	cause error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Method != "" && e.Path != "" {
		return fmt.Sprintf("%s %s: %s: %s", e.Method, e.Path, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying cause to support errors.Is/errors.As.
func (e *Error) Unwrap() error {
	return e.cause
}

// WithRequest returns a copy of the error carrying request context.
// The receiver is left unchanged.
func (e *Error) WithRequest(method, path string) *Error {
	clone := *e
	clone.Method = method
	clone.Path = path
	return &clone
}

// New constructs an Error of the given kind wrapping an optional cause.
func New(kind Kind, message string, cause error) *Error {
	return &Error{
		Kind:    kind,
		Message: message,
		cause:   cause,
	}
}

// IsKind reports whether err is a classified error of the given kind.
func IsKind(err error, kind Kind) bool {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.Kind == kind
	}
	return false
}

// IsNotFound reports whether err is a classified not-found error.
// Domain services use it to implement expected-empty policies.
func IsNotFound(err error) bool {
	return IsKind(err, KindNotFound)
}

// UserMessage returns a single short string suitable for rendering to
// the user for any error, classified or not.
func UserMessage(err error) string {
	if err == nil {
		return genericFallback
	}
	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return genericFallback
}
