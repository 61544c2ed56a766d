package apperr

import (
	"context"
	"errors"
	"net/http"
	"net/url"
)

// genericFallback is shown when neither the message table nor the server
// supplied anything renderable.
const genericFallback = "Something went wrong. Please try again."

// Messages maps machine-readable server error codes to localized
// user-facing strings. The table itself is maintained outside the core
// and injected at client construction.
type Messages map[string]string

// Resolve picks the user-facing message for a server failure: the
// localized string for the code when the table has one, else the
// server-supplied message, else a generic fallback.
func (m Messages) Resolve(code, serverMessage string) string {
	if code != "" {
		if msg, ok := m[code]; ok {
			return msg
		}
	}
	if serverMessage != "" {
		return serverMessage
	}
	return genericFallback
}

// KindForStatus maps an HTTP status code to an error kind. It is a pure
// function: the same status always yields the same kind.
func KindForStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized, status == http.StatusForbidden:
		return KindAuthorization
	case status == http.StatusNotFound:
		return KindNotFound
	case status >= 400 && status < 500:
		return KindValidation
	case status >= 500:
		return KindServer
	default:
		return KindClient
	}
}

// FromResponse builds a classified error from a non-2xx HTTP response.
// code and serverMessage come from the optional JSON error body; either
// may be empty.
func FromResponse(status int, code, serverMessage string, fields []FieldError, messages Messages) *Error {
	return &Error{
		Kind:    KindForStatus(status),
		Message: messages.Resolve(code, serverMessage),
		Code:    code,
		Status:  status,
		Fields:  fields,
	}
}

// Classify converts any raised failure into exactly one classified error.
// A transport failure with no response classifies as network; an already
// classified error passes through unchanged (errors are classified once,
// at the client boundary, and never re-wrapped).
func Classify(err error) *Error {
	if err == nil {
		return nil
	}

	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}

	if isTransport(err) {
		return &Error{
			Kind:    KindNetwork,
			Message: "Could not reach the server. Check your connection.",
			cause:   err,
		}
	}

	return &Error{
		Kind:    KindClient,
		Message: genericFallback,
		cause:   err,
	}
}

// isTransport reports whether err represents a request that never got a
// response: dial/DNS failures, timeouts, cancelled contexts.
func isTransport(err error) bool {
	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return true
	}
	var urlErr *url.Error
	return errors.As(err, &urlErr)
}
