package wire

import "github.com/edtrack/edtrack-go/internal/domain"

// Course is the backend's course shape. The backend still calls the
// title "name" and the status values are capitalized legacy strings.
type Course struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	Status       string `json:"status"`
	DepartmentID string `json:"departmentId"`
	AuthorID     string `json:"authorId"`
	LessonCount  int    `json:"lessonCount"`
	CreatedAt    string `json:"createdAt"`
	UpdatedAt    string `json:"updatedAt"`
}

// courseStatusFromWire maps the backend's capitalized status strings to
// the internal enumeration; unknown or missing values default to draft.
func courseStatusFromWire(s string) domain.CourseStatus {
	switch s {
	case "Published":
		return domain.CoursePublished
	case "Archived":
		return domain.CourseArchived
	default:
		return domain.CourseDraft
	}
}

func courseStatusToWire(s domain.CourseStatus) string {
	switch s {
	case domain.CoursePublished:
		return "Published"
	case domain.CourseArchived:
		return "Archived"
	default:
		return "Draft"
	}
}

// CourseFromWire maps a backend course to the internal shape.
func CourseFromWire(w Course) domain.Course {
	return domain.Course{
		ID:           w.ID,
		Title:        w.Name,
		Description:  w.Description,
		Status:       courseStatusFromWire(w.Status),
		DepartmentID: w.DepartmentID,
		AuthorID:     w.AuthorID,
		LessonCount:  w.LessonCount,
		CreatedAt:    parseTime(w.CreatedAt),
		UpdatedAt:    parseTime(w.UpdatedAt),
	}
}

// CourseToWire maps an internal course back to the backend shape.
func CourseToWire(c domain.Course) Course {
	return Course{
		ID:           c.ID,
		Name:         c.Title,
		Description:  c.Description,
		Status:       courseStatusToWire(c.Status),
		DepartmentID: c.DepartmentID,
		AuthorID:     c.AuthorID,
		LessonCount:  c.LessonCount,
		CreatedAt:    formatTime(c.CreatedAt),
		UpdatedAt:    formatTime(c.UpdatedAt),
	}
}

// CourseDraft is the create/update payload shape.
type CourseDraft struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	DepartmentID string `json:"departmentId,omitempty"`
}

// CourseDraftToWire maps a draft input to the backend payload.
func CourseDraftToWire(in domain.CourseDraftInput) CourseDraft {
	return CourseDraft{
		Name:         in.Title,
		Description:  in.Description,
		DepartmentID: in.DepartmentID,
	}
}
