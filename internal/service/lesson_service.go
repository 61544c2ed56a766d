package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/edtrack/edtrack-go/internal/apperr"
	"github.com/edtrack/edtrack-go/internal/domain"
	"github.com/edtrack/edtrack-go/internal/restclient"
	"github.com/edtrack/edtrack-go/internal/wire"
)

// LessonService provides lesson operations nested under a course.
type LessonService struct {
	client *restclient.Client
	logger *slog.Logger
}

// NewLessonService creates a LessonService. It returns an error if the
// client is nil.
func NewLessonService(client *restclient.Client, log *slog.Logger) (*LessonService, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &LessonService{
		client: client,
		logger: log.With(slog.String("component", "lesson_service")),
	}, nil
}

// ListByCourse returns the lessons of a course in position order.
//
// A 404 on this nested collection means the course has no lessons yet
// and returns an empty slice. The policy is keyed on the status code,
// not on message text. Contrast Get, where a 404 is a real not-found.
func (s *LessonService) ListByCourse(ctx context.Context, courseID string) ([]domain.Lesson, error) {
	if err := requireID("course id", courseID); err != nil {
		return nil, err
	}

	ws, err := restclient.Get[[]wire.Lesson](ctx, s.client, "/courses/"+courseID+"/lessons")
	if err != nil {
		if apperr.IsNotFound(err) {
			return []domain.Lesson{}, nil
		}
		return nil, err
	}
	return wire.LessonsFromWire(ws), nil
}

// Get returns a single lesson. A 404 propagates as not-found.
func (s *LessonService) Get(ctx context.Context, courseID string, lessonID int64) (domain.Lesson, error) {
	if err := requireID("course id", courseID); err != nil {
		return domain.Lesson{}, err
	}
	if err := requireNumericID("lesson id", lessonID); err != nil {
		return domain.Lesson{}, err
	}

	path := "/courses/" + courseID + "/lessons/" + strconv.FormatInt(lessonID, 10)
	w, err := restclient.Get[wire.Lesson](ctx, s.client, path)
	if err != nil {
		return domain.Lesson{}, err
	}
	return wire.LessonFromWire(w), nil
}

// Upload creates lessons in one multipart batch using the backend's
// field-indexed array convention (request[0].Title, request[0].File, …).
func (s *LessonService) Upload(ctx context.Context, courseID string, uploads []domain.LessonUpload) ([]domain.Lesson, error) {
	if err := requireID("course id", courseID); err != nil {
		return nil, err
	}
	if len(uploads) == 0 {
		return nil, apperr.New(apperr.KindValidation, "nothing to upload", nil)
	}

	form := restclient.NewUploadForm()
	for i, u := range uploads {
		if err := checkInput(u); err != nil {
			return nil, err
		}
		form.AddIndexedField(i, "Title", u.Title)
		form.AddIndexedField(i, "Content", u.Content)
		if u.File != nil {
			form.AddIndexedFile(i, "File", u.FileName, u.File)
		}
	}

	ws, err := restclient.Post[[]wire.Lesson](ctx, s.client, "/courses/"+courseID+"/lessons", form)
	if err != nil {
		return nil, err
	}

	s.logger.InfoContext(ctx, "lessons uploaded",
		slog.String("course_id", courseID),
		slog.Int("count", len(ws)))
	return wire.LessonsFromWire(ws), nil
}

// Reorder persists a new lesson order for the course. ids must list
// every lesson exactly once in its new position.
func (s *LessonService) Reorder(ctx context.Context, courseID string, ids []int64) error {
	if err := requireID("course id", courseID); err != nil {
		return err
	}
	if len(ids) == 0 {
		return apperr.New(apperr.KindValidation, "order cannot be empty", nil)
	}
	for _, id := range ids {
		if err := requireNumericID("lesson id", id); err != nil {
			return err
		}
	}

	_, err := restclient.Put[struct{}](ctx, s.client, "/courses/"+courseID+"/lessons/order",
		map[string][]int64{"ids": ids})
	return err
}

// BulkDelete removes the given lessons in one request, carrying the ids
// in the request body per the backend contract.
func (s *LessonService) BulkDelete(ctx context.Context, courseID string, ids []int64) error {
	if err := requireID("course id", courseID); err != nil {
		return err
	}
	if len(ids) == 0 {
		return apperr.New(apperr.KindValidation, "no lesson ids given", nil)
	}
	for _, id := range ids {
		if err := requireNumericID("lesson id", id); err != nil {
			return err
		}
	}

	_, err := restclient.Delete[struct{}](ctx, s.client, "/courses/"+courseID+"/lessons",
		map[string][]int64{"ids": ids})
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "lessons deleted",
		slog.String("course_id", courseID),
		slog.Int("count", len(ids)))
	return nil
}
