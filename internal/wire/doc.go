// Package wire holds the backend's payload shapes and the mappers that
// reconcile them with the internal entities in package domain.
//
// The backend carries several legacy irregularities: PascalCase question
// fields with a 1-based correct-answer number, a misspelled craetedAt
// timestamp on audit entries, and 0/1 integer booleans. Each mapper is
// the single point of truth for a field's default, so a missing field
// behaves identically everywhere it is read. Mappers are pure and total:
// no I/O, no errors — malformed or missing fields fall back to defaults.
package wire
