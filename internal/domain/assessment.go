package domain

import "time"

// Test is a knowledge check attached to a course.
type Test struct {
	ID            string    `json:"id"`
	CourseID      string    `json:"courseId"`
	Title         string    `json:"title"`
	PassingScore  int       `json:"passingScore"`
	TimeLimit     int       `json:"timeLimitMinutes"`
	QuestionCount int       `json:"questionCount"`
	CreatedAt     time.Time `json:"createdAt"`
}

// Validate checks the test invariants.
func (t Test) Validate() error {
	if t.ID == "" || t.CourseID == "" {
		return ErrEmptyID
	}
	if t.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Question is a single multiple-choice question. The UI always works
// with four options; CorrectIndex addresses Options.
type Question struct {
	ID           string   `json:"id"`
	TestID       string   `json:"testId"`
	Text         string   `json:"text"`
	Options      []string `json:"options"`
	CorrectIndex int      `json:"correctIndex"`
	Explanation  string   `json:"explanation"`
}

// Validate checks the question invariants.
func (q Question) Validate() error {
	if q.ID == "" || q.TestID == "" {
		return ErrEmptyID
	}
	if len(q.Options) == 0 {
		return ErrNoQuestionOptions
	}
	if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Options) {
		return ErrAnswerOutOfRange
	}
	return nil
}

// TestDraftInput is the payload for creating or updating a test.
type TestDraftInput struct {
	Title        string `json:"title"            validate:"required,max=200"`
	PassingScore int    `json:"passingScore"     validate:"gte=0,lte=100"`
	TimeLimit    int    `json:"timeLimitMinutes" validate:"gte=0"`
}

// QuestionDraftInput is the payload for creating or updating a question.
type QuestionDraftInput struct {
	Text         string   `json:"text"         validate:"required"`
	Options      []string `json:"options"      validate:"required,min=2,max=4"`
	CorrectIndex int      `json:"correctIndex" validate:"gte=0"`
	Explanation  string   `json:"explanation"`
}
