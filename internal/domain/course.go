package domain

import "time"

// CourseStatus enumerates the lifecycle states of a course.
type CourseStatus string

const (
	CourseDraft     CourseStatus = "draft"
	CoursePublished CourseStatus = "published"
	CourseArchived  CourseStatus = "archived"
)

// Course is a training course as the UI consumes it.
type Course struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	Description  string       `json:"description"`
	Status       CourseStatus `json:"status"`
	DepartmentID string       `json:"departmentId"`
	AuthorID     string       `json:"authorId"`
	LessonCount  int          `json:"lessonCount"`
	CreatedAt    time.Time    `json:"createdAt"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// Validate checks the course invariants.
func (c Course) Validate() error {
	if c.ID == "" {
		return ErrEmptyID
	}
	if c.Title == "" {
		return ErrEmptyTitle
	}
	return nil
}

// CourseDraftInput is the payload for creating or updating a course.
type CourseDraftInput struct {
	Title        string `json:"title"        validate:"required,max=200"`
	Description  string `json:"description"  validate:"max=2000"`
	DepartmentID string `json:"departmentId"`
}

// CourseFilter narrows course listings.
type CourseFilter struct {
	Status       CourseStatus
	DepartmentID string
	Search       string
}
