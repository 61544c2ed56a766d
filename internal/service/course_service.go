package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edtrack/edtrack-go/internal/domain"
	"github.com/edtrack/edtrack-go/internal/restclient"
	"github.com/edtrack/edtrack-go/internal/wire"
)

// CourseService provides course operations against /courses.
type CourseService struct {
	client *restclient.Client
	logger *slog.Logger
}

// NewCourseService creates a CourseService. It returns an error if the
// client is nil.
func NewCourseService(client *restclient.Client, log *slog.Logger) (*CourseService, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &CourseService{
		client: client,
		logger: log.With(slog.String("component", "course_service")),
	}, nil
}

// List returns one page of courses matching the filter.
func (s *CourseService) List(ctx context.Context, filter domain.CourseFilter, page, pageSize int) (domain.Page[domain.Course], error) {
	params := restclient.PageParams(page, pageSize).Merge(restclient.Params{
		"status":       string(filter.Status),
		"departmentId": filter.DepartmentID,
		"search":       filter.Search,
	})

	wirePage, err := restclient.Get[wire.Page[wire.Course]](ctx, s.client, "/courses", restclient.WithQuery(params))
	if err != nil {
		return domain.Page[domain.Course]{}, err
	}
	return wire.PageFromWire(wirePage, wire.CourseFromWire), nil
}

// Get returns a single course. A 404 here is a real not-found and
// propagates as such.
func (s *CourseService) Get(ctx context.Context, id string) (domain.Course, error) {
	if err := requireID("course id", id); err != nil {
		return domain.Course{}, err
	}

	w, err := restclient.Get[wire.Course](ctx, s.client, "/courses/"+id)
	if err != nil {
		return domain.Course{}, err
	}
	return wire.CourseFromWire(w), nil
}

// Create creates a course and returns the server's copy.
func (s *CourseService) Create(ctx context.Context, in domain.CourseDraftInput) (domain.Course, error) {
	if err := checkInput(in); err != nil {
		return domain.Course{}, err
	}

	w, err := restclient.Post[wire.Course](ctx, s.client, "/courses", wire.CourseDraftToWire(in))
	if err != nil {
		return domain.Course{}, err
	}

	s.logger.InfoContext(ctx, "course created", slog.String("course_id", w.ID))
	return wire.CourseFromWire(w), nil
}

// Update replaces a course's editable fields.
func (s *CourseService) Update(ctx context.Context, id string, in domain.CourseDraftInput) (domain.Course, error) {
	if err := requireID("course id", id); err != nil {
		return domain.Course{}, err
	}
	if err := checkInput(in); err != nil {
		return domain.Course{}, err
	}

	w, err := restclient.Put[wire.Course](ctx, s.client, "/courses/"+id, wire.CourseDraftToWire(in))
	if err != nil {
		return domain.Course{}, err
	}
	return wire.CourseFromWire(w), nil
}

// Delete removes a course. Deleting an already deleted course fails
// not-found; that outcome is reported, not swallowed.
func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := requireID("course id", id); err != nil {
		return err
	}

	_, err := restclient.Delete[struct{}](ctx, s.client, "/courses/"+id, nil)
	return err
}
