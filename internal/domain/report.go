package domain

import "time"

// CourseProgressRow is one row of the course-progress report.
type CourseProgressRow struct {
	CourseID       string  `json:"courseId"`
	CourseTitle    string  `json:"courseTitle"`
	Enrolled       int     `json:"enrolled"`
	Completed      int     `json:"completed"`
	AverageScore   float64 `json:"averageScore"`
	CompletionRate float64 `json:"completionRate"`
}

// UserActivityRow is one row of the user-activity report.
type UserActivityRow struct {
	UserID         string    `json:"userId"`
	FullName       string    `json:"fullName"`
	CoursesStarted int       `json:"coursesStarted"`
	CoursesDone    int       `json:"coursesDone"`
	LastActiveAt   time.Time `json:"lastActiveAt"`
}

// ReportFilter narrows report queries.
type ReportFilter struct {
	DepartmentID string
	From         time.Time
	To           time.Time
}

// AuditEntry is one row of the administrative audit log.
type AuditEntry struct {
	ID        string    `json:"id"`
	ActorID   string    `json:"actorId"`
	Action    string    `json:"action"`
	Entity    string    `json:"entity"`
	EntityID  string    `json:"entityId"`
	CreatedAt time.Time `json:"createdAt"`
}

// FeedbackStatus enumerates the states of a feedback item.
type FeedbackStatus string

const (
	FeedbackOpen     FeedbackStatus = "open"
	FeedbackResolved FeedbackStatus = "resolved"
)

// Feedback is a user-submitted feedback item.
type Feedback struct {
	ID        string         `json:"id"`
	AuthorID  string         `json:"authorId"`
	CourseID  string         `json:"courseId"`
	Text      string         `json:"text"`
	Rating    int            `json:"rating"`
	Status    FeedbackStatus `json:"status"`
	CreatedAt time.Time      `json:"createdAt"`
}

// FeedbackInput is the payload for submitting feedback.
type FeedbackInput struct {
	CourseID string `json:"courseId" validate:"required"`
	Text     string `json:"text"     validate:"required,max=4000"`
	Rating   int    `json:"rating"   validate:"gte=1,lte=5"`
}
