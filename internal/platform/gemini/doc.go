// Package gemini implements the schedule.Suggester boundary using
// Google's Gemini API. It owns prompt construction, response parsing,
// and the re-validation of the model's answer against the caller's
// constraints.
package gemini
