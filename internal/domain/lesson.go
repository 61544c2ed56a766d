package domain

import (
	"io"
	"time"
)

// Lesson is a single unit of course content. Lessons are numbered by the
// backend; Position is the 1-based order within the course.
type Lesson struct {
	ID        int64      `json:"id"`
	CourseID  string     `json:"courseId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Position  int        `json:"position"`
	Materials []Material `json:"materials"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Validate checks the lesson invariants.
func (l Lesson) Validate() error {
	if l.ID <= 0 {
		return ErrInvalidID
	}
	if l.CourseID == "" {
		return ErrEmptyID
	}
	if l.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// Material is a file attached to a lesson.
type Material struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// LessonUpload describes one lesson in a batch upload. File may be nil
// for lessons without an attachment.
type LessonUpload struct {
	Title    string    `validate:"required,max=200"`
	Content  string    `validate:"max=10000"`
	FileName string
	File     io.Reader
}
