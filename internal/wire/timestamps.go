package wire

import "time"

// The backend emits RFC 3339 timestamps as strings.
const timeLayout = time.RFC3339

// parseTime converts a wire timestamp, returning the zero time for
// missing or malformed values. Every mapper funnels timestamps through
// here so the default is identical everywhere.
func parseTime(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(timeLayout, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// formatTime converts an internal timestamp to the wire form; the zero
// time serializes as an empty string, which the backend treats as unset.
func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(timeLayout)
}
