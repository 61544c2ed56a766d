package wire

import "github.com/edtrack/edtrack-go/internal/domain"

// Page is the backend's pagination wrapper.
type Page[T any] struct {
	Items      []T `json:"items"`
	TotalCount int `json:"totalCount"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
}

// PageFromWire maps a backend page, converting each item. A missing page
// number defaults to 1 so the internal invariant (page >= 1) holds even
// for endpoints that omit it on the first page.
func PageFromWire[W, T any](w Page[W], convert func(W) T) domain.Page[T] {
	items := make([]T, 0, len(w.Items))
	for _, item := range w.Items {
		items = append(items, convert(item))
	}

	page := w.Page
	if page < 1 {
		page = 1
	}

	return domain.Page[T]{
		Items:      items,
		TotalCount: w.TotalCount,
		Page:       page,
		PageSize:   w.PageSize,
	}
}

// CourseProgressRow is the backend's course-progress report row.
type CourseProgressRow struct {
	CourseID       string  `json:"courseId"`
	CourseTitle    string  `json:"courseTitle"`
	Enrolled       int     `json:"enrolled"`
	Completed      int     `json:"completed"`
	AverageScore   float64 `json:"averageScore"`
	CompletionRate float64 `json:"completionRate"`
}

// CourseProgressFromWire maps a report row to the internal shape.
func CourseProgressFromWire(w CourseProgressRow) domain.CourseProgressRow {
	return domain.CourseProgressRow(w)
}

// UserActivityRow is the backend's user-activity report row.
type UserActivityRow struct {
	UserID         string `json:"userId"`
	FullName       string `json:"fullName"`
	CoursesStarted int    `json:"coursesStarted"`
	CoursesDone    int    `json:"coursesDone"`
	LastActiveAt   string `json:"lastActiveAt"`
}

// UserActivityFromWire maps a report row to the internal shape.
func UserActivityFromWire(w UserActivityRow) domain.UserActivityRow {
	return domain.UserActivityRow{
		UserID:         w.UserID,
		FullName:       w.FullName,
		CoursesStarted: w.CoursesStarted,
		CoursesDone:    w.CoursesDone,
		LastActiveAt:   parseTime(w.LastActiveAt),
	}
}

// AuditEntry is the backend's audit-log row. The timestamp field name
// carries a documented backend typo ("craetedAt") that is part of the
// wire contract; this mapper is the only place that spelling exists.
type AuditEntry struct {
	ID        string `json:"id"`
	ActorID   string `json:"actorId"`
	Action    string `json:"action"`
	Entity    string `json:"entity"`
	EntityID  string `json:"entityId"`
	CraetedAt string `json:"craetedAt"`
}

// AuditEntryFromWire maps an audit row to the internal shape.
func AuditEntryFromWire(w AuditEntry) domain.AuditEntry {
	return domain.AuditEntry{
		ID:        w.ID,
		ActorID:   w.ActorID,
		Action:    w.Action,
		Entity:    w.Entity,
		EntityID:  w.EntityID,
		CreatedAt: parseTime(w.CraetedAt),
	}
}

// Feedback is the backend's feedback shape.
type Feedback struct {
	ID        string `json:"id"`
	AuthorID  string `json:"authorId"`
	CourseID  string `json:"courseId"`
	Text      string `json:"text"`
	Rating    int    `json:"rating"`
	Status    string `json:"status"`
	CreatedAt string `json:"createdAt"`
}

// feedbackStatusFromWire defaults unknown states to open so unresolved
// items are never hidden by a bad row.
func feedbackStatusFromWire(s string) domain.FeedbackStatus {
	if s == "resolved" {
		return domain.FeedbackResolved
	}
	return domain.FeedbackOpen
}

// FeedbackFromWire maps a feedback item to the internal shape.
func FeedbackFromWire(w Feedback) domain.Feedback {
	return domain.Feedback{
		ID:        w.ID,
		AuthorID:  w.AuthorID,
		CourseID:  w.CourseID,
		Text:      w.Text,
		Rating:    w.Rating,
		Status:    feedbackStatusFromWire(w.Status),
		CreatedAt: parseTime(w.CreatedAt),
	}
}

// FeedbackInputToWire maps a submission payload to the backend shape.
func FeedbackInputToWire(in domain.FeedbackInput) map[string]any {
	return map[string]any{
		"courseId": in.CourseID,
		"text":     in.Text,
		"rating":   in.Rating,
	}
}
