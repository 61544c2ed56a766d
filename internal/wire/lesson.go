package wire

import "github.com/edtrack/edtrack-go/internal/domain"

// Lesson is the backend's lesson shape. Position travels as "order".
type Lesson struct {
	ID        int64      `json:"id"`
	CourseID  string     `json:"courseId"`
	Title     string     `json:"title"`
	Content   string     `json:"content"`
	Order     int        `json:"order"`
	Materials []Material `json:"materials"`
	CreatedAt string     `json:"createdAt"`
	UpdatedAt string     `json:"updatedAt"`
}

// Material is the backend's attachment shape.
type Material struct {
	ID       int64  `json:"id"`
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}

// LessonFromWire maps a backend lesson to the internal shape. A missing
// order defaults to 0 (the backend renumbers on reorder anyway).
func LessonFromWire(w Lesson) domain.Lesson {
	materials := make([]domain.Material, 0, len(w.Materials))
	for _, m := range w.Materials {
		materials = append(materials, domain.Material{
			ID:       m.ID,
			Name:     m.FileName,
			URL:      m.URL,
			MimeType: m.MimeType,
			Size:     m.Size,
		})
	}

	return domain.Lesson{
		ID:        w.ID,
		CourseID:  w.CourseID,
		Title:     w.Title,
		Content:   w.Content,
		Position:  w.Order,
		Materials: materials,
		CreatedAt: parseTime(w.CreatedAt),
		UpdatedAt: parseTime(w.UpdatedAt),
	}
}

// LessonsFromWire maps a backend lesson list, preserving order.
func LessonsFromWire(ws []Lesson) []domain.Lesson {
	lessons := make([]domain.Lesson, 0, len(ws))
	for _, w := range ws {
		lessons = append(lessons, LessonFromWire(w))
	}
	return lessons
}
