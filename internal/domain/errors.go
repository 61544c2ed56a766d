package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrEmptyID is returned when a required identifier is empty.
	ErrEmptyID = errors.New("identifier cannot be empty")

	// ErrInvalidID is returned when a numeric identifier is not positive.
	ErrInvalidID = errors.New("identifier must be positive")

	// ErrEmptyTitle is returned when a required title is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrNoQuestionOptions is returned when a question carries no answer options.
	ErrNoQuestionOptions = errors.New("question must have answer options")

	// ErrAnswerOutOfRange is returned when the correct-answer index does not
	// address one of the question's options.
	ErrAnswerOutOfRange = errors.New("correct answer index out of range")

	// ErrInvalidPage is returned when pagination parameters are malformed.
	ErrInvalidPage = errors.New("page must be >= 1")

	// ErrNoAvailability is returned when schedule constraints carry no
	// availability windows.
	ErrNoAvailability = errors.New("availability cannot be empty")

	// ErrInvalidDuration is returned when a schedule duration is not positive.
	ErrInvalidDuration = errors.New("duration must be positive")
)
