// Package redact strips credentials from strings before they are
// logged. Transport errors can echo request details back verbatim, so
// anything derived from an error or a URL goes through here first.
package redact

import "regexp"

// Placeholder substituted for each recognized credential.
const (
	TokenPlaceholder = "[REDACTED_TOKEN]"
	KeyPlaceholder   = "[REDACTED_KEY]"
	EmailPlaceholder = "[REDACTED_EMAIL]"
)

var (
	// Bearer credentials as they appear in echoed Authorization headers.
	bearerRegex = regexp.MustCompile(`(?i)bearer\s+[A-Za-z0-9_\-.~+/]+=*`)

	// Three-part base64url JWTs, wherever they surface.
	jwtRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	// API keys and tokens passed as query parameters or key=value pairs.
	keyParamRegex = regexp.MustCompile(`(?i)(api[_-]?key|token|secret|access[_-]?key)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`)

	// Email addresses in query strings and server messages.
	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
)

// String returns input with recognized credentials replaced by
// placeholders.
func String(input string) string {
	if input == "" {
		return input
	}

	result := bearerRegex.ReplaceAllString(input, TokenPlaceholder)
	result = jwtRegex.ReplaceAllString(result, TokenPlaceholder)
	result = keyParamRegex.ReplaceAllString(result, "${1}${2}"+KeyPlaceholder)
	result = emailRegex.ReplaceAllString(result, EmailPlaceholder)
	return result
}

// Error returns the redacted Error() text, or "" for a nil error.
func Error(err error) string {
	if err == nil {
		return ""
	}
	return String(err.Error())
}
