// Package apperr defines the normalized error taxonomy for the
// resource-access core.
//
// Every failure the client can observe — transport failures, non-2xx
// responses, payload-shape mismatches, local programming errors caught at
// a boundary — is converted into exactly one *Error at the resource
// client boundary. Higher layers propagate the classified value unchanged
// and branch on its Kind with errors.As/IsKind; they never raise ad hoc
// errors of their own for request failures.
//
// The Handler owns the side effects: structured logging for every error
// and debounced user notifications through an injected Notifier.
package apperr
