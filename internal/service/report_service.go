package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/edtrack/edtrack-go/internal/domain"
	"github.com/edtrack/edtrack-go/internal/restclient"
	"github.com/edtrack/edtrack-go/internal/wire"
)

// ReportService provides read-only reporting queries.
type ReportService struct {
	client *restclient.Client
	logger *slog.Logger
}

// NewReportService creates a ReportService. It returns an error if the
// client is nil.
func NewReportService(client *restclient.Client, log *slog.Logger) (*ReportService, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ReportService{
		client: client,
		logger: log.With(slog.String("component", "report_service")),
	}, nil
}

// reportParams serializes a report filter; zero times are omitted.
func reportParams(filter domain.ReportFilter) restclient.Params {
	params := restclient.Params{
		"departmentId": filter.DepartmentID,
	}
	if !filter.From.IsZero() {
		params["from"] = filter.From.Format(time.RFC3339)
	}
	if !filter.To.IsZero() {
		params["to"] = filter.To.Format(time.RFC3339)
	}
	return params
}

// CourseProgress returns the course-progress report.
func (s *ReportService) CourseProgress(ctx context.Context, filter domain.ReportFilter) ([]domain.CourseProgressRow, error) {
	ws, err := restclient.Get[[]wire.CourseProgressRow](ctx, s.client, "/reports/course-progress",
		restclient.WithQuery(reportParams(filter)))
	if err != nil {
		return nil, err
	}

	rows := make([]domain.CourseProgressRow, 0, len(ws))
	for _, w := range ws {
		rows = append(rows, wire.CourseProgressFromWire(w))
	}
	return rows, nil
}

// UserActivity returns one page of the user-activity report.
func (s *ReportService) UserActivity(ctx context.Context, filter domain.ReportFilter, page, pageSize int) (domain.Page[domain.UserActivityRow], error) {
	params := restclient.PageParams(page, pageSize).Merge(reportParams(filter))

	wirePage, err := restclient.Get[wire.Page[wire.UserActivityRow]](ctx, s.client, "/reports/user-activity",
		restclient.WithQuery(params))
	if err != nil {
		return domain.Page[domain.UserActivityRow]{}, err
	}
	return wire.PageFromWire(wirePage, wire.UserActivityFromWire), nil
}

// AuditService provides read access to the administrative audit log.
type AuditService struct {
	client *restclient.Client
}

// NewAuditService creates an AuditService. It returns an error if the
// client is nil.
func NewAuditService(client *restclient.Client) (*AuditService, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	return &AuditService{client: client}, nil
}

// List returns one page of audit entries, newest first.
func (s *AuditService) List(ctx context.Context, page, pageSize int) (domain.Page[domain.AuditEntry], error) {
	wirePage, err := restclient.Get[wire.Page[wire.AuditEntry]](ctx, s.client, "/audit",
		restclient.WithQuery(restclient.PageParams(page, pageSize)))
	if err != nil {
		return domain.Page[domain.AuditEntry]{}, err
	}
	return wire.PageFromWire(wirePage, wire.AuditEntryFromWire), nil
}

// FeedbackService provides feedback operations.
type FeedbackService struct {
	client *restclient.Client
	logger *slog.Logger
}

// NewFeedbackService creates a FeedbackService. It returns an error if
// the client is nil.
func NewFeedbackService(client *restclient.Client, log *slog.Logger) (*FeedbackService, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &FeedbackService{
		client: client,
		logger: log.With(slog.String("component", "feedback_service")),
	}, nil
}

// List returns feedback items, optionally filtered to one course.
func (s *FeedbackService) List(ctx context.Context, courseID string) ([]domain.Feedback, error) {
	ws, err := restclient.Get[[]wire.Feedback](ctx, s.client, "/feedback",
		restclient.WithQuery(restclient.Params{"courseId": courseID}))
	if err != nil {
		return nil, err
	}

	items := make([]domain.Feedback, 0, len(ws))
	for _, w := range ws {
		items = append(items, wire.FeedbackFromWire(w))
	}
	return items, nil
}

// Submit records a new feedback item.
func (s *FeedbackService) Submit(ctx context.Context, in domain.FeedbackInput) (domain.Feedback, error) {
	if err := checkInput(in); err != nil {
		return domain.Feedback{}, err
	}

	w, err := restclient.Post[wire.Feedback](ctx, s.client, "/feedback", wire.FeedbackInputToWire(in))
	if err != nil {
		return domain.Feedback{}, err
	}

	s.logger.InfoContext(ctx, "feedback submitted", slog.String("course_id", in.CourseID))
	return wire.FeedbackFromWire(w), nil
}

// Resolve marks a feedback item as handled.
func (s *FeedbackService) Resolve(ctx context.Context, id string) (domain.Feedback, error) {
	if err := requireID("feedback id", id); err != nil {
		return domain.Feedback{}, err
	}

	w, err := restclient.Put[wire.Feedback](ctx, s.client, "/feedback/"+id+"/resolve", nil)
	if err != nil {
		return domain.Feedback{}, err
	}
	return wire.FeedbackFromWire(w), nil
}
