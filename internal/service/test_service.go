package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/edtrack/edtrack-go/internal/apperr"
	"github.com/edtrack/edtrack-go/internal/domain"
	"github.com/edtrack/edtrack-go/internal/restclient"
	"github.com/edtrack/edtrack-go/internal/wire"
)

// TestService provides knowledge-check operations.
type TestService struct {
	client *restclient.Client
	logger *slog.Logger
}

// NewTestService creates a TestService. It returns an error if the
// client is nil.
func NewTestService(client *restclient.Client, log *slog.Logger) (*TestService, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &TestService{
		client: client,
		logger: log.With(slog.String("component", "test_service")),
	}, nil
}

// ListByCourse returns the tests of a course. Like lessons, a 404 on
// this nested collection means the course has no tests yet.
func (s *TestService) ListByCourse(ctx context.Context, courseID string) ([]domain.Test, error) {
	if err := requireID("course id", courseID); err != nil {
		return nil, err
	}

	ws, err := restclient.Get[[]wire.Test](ctx, s.client, "/courses/"+courseID+"/tests")
	if err != nil {
		if apperr.IsNotFound(err) {
			return []domain.Test{}, nil
		}
		return nil, err
	}

	tests := make([]domain.Test, 0, len(ws))
	for _, w := range ws {
		tests = append(tests, wire.TestFromWire(w))
	}
	return tests, nil
}

// Get returns a single test. A 404 propagates as not-found.
func (s *TestService) Get(ctx context.Context, id string) (domain.Test, error) {
	if err := requireID("test id", id); err != nil {
		return domain.Test{}, err
	}

	w, err := restclient.Get[wire.Test](ctx, s.client, "/tests/"+id)
	if err != nil {
		return domain.Test{}, err
	}
	return wire.TestFromWire(w), nil
}

// Create attaches a new test to a course.
func (s *TestService) Create(ctx context.Context, courseID string, in domain.TestDraftInput) (domain.Test, error) {
	if err := requireID("course id", courseID); err != nil {
		return domain.Test{}, err
	}
	if err := checkInput(in); err != nil {
		return domain.Test{}, err
	}

	w, err := restclient.Post[wire.Test](ctx, s.client, "/courses/"+courseID+"/tests", wire.TestDraftToWire(in))
	if err != nil {
		return domain.Test{}, err
	}

	s.logger.InfoContext(ctx, "test created",
		slog.String("course_id", courseID),
		slog.String("test_id", w.ID))
	return wire.TestFromWire(w), nil
}

// Update replaces a test's editable fields.
func (s *TestService) Update(ctx context.Context, id string, in domain.TestDraftInput) (domain.Test, error) {
	if err := requireID("test id", id); err != nil {
		return domain.Test{}, err
	}
	if err := checkInput(in); err != nil {
		return domain.Test{}, err
	}

	w, err := restclient.Put[wire.Test](ctx, s.client, "/tests/"+id, wire.TestDraftToWire(in))
	if err != nil {
		return domain.Test{}, err
	}
	return wire.TestFromWire(w), nil
}

// Delete removes a test and its questions.
func (s *TestService) Delete(ctx context.Context, id string) error {
	if err := requireID("test id", id); err != nil {
		return err
	}

	_, err := restclient.Delete[struct{}](ctx, s.client, "/tests/"+id, nil)
	return err
}
