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

// QuestionService provides question operations nested under a test.
type QuestionService struct {
	client *restclient.Client
	logger *slog.Logger
}

// NewQuestionService creates a QuestionService. It returns an error if
// the client is nil.
func NewQuestionService(client *restclient.Client, log *slog.Logger) (*QuestionService, error) {
	if client == nil {
		return nil, fmt.Errorf("client cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &QuestionService{
		client: client,
		logger: log.With(slog.String("component", "question_service")),
	}, nil
}

// ListByTest returns the questions of a test. A 404 on the nested
// collection means the test has no questions yet.
func (s *QuestionService) ListByTest(ctx context.Context, testID string) ([]domain.Question, error) {
	if err := requireID("test id", testID); err != nil {
		return nil, err
	}

	ws, err := restclient.Get[[]wire.Question](ctx, s.client, "/tests/"+testID+"/questions")
	if err != nil {
		if apperr.IsNotFound(err) {
			return []domain.Question{}, nil
		}
		return nil, err
	}
	return wire.QuestionsFromWire(ws), nil
}

// Create adds a question to a test.
func (s *QuestionService) Create(ctx context.Context, testID string, in domain.QuestionDraftInput) (domain.Question, error) {
	if err := requireID("test id", testID); err != nil {
		return domain.Question{}, err
	}
	if err := checkQuestionInput(in); err != nil {
		return domain.Question{}, err
	}

	payload := wire.QuestionToWire(domain.Question{
		TestID:       testID,
		Text:         in.Text,
		Options:      in.Options,
		CorrectIndex: in.CorrectIndex,
		Explanation:  in.Explanation,
	})

	w, err := restclient.Post[wire.Question](ctx, s.client, "/tests/"+testID+"/questions", payload)
	if err != nil {
		return domain.Question{}, err
	}
	return wire.QuestionFromWire(w), nil
}

// Update replaces a question.
func (s *QuestionService) Update(ctx context.Context, testID, questionID string, in domain.QuestionDraftInput) (domain.Question, error) {
	if err := requireID("test id", testID); err != nil {
		return domain.Question{}, err
	}
	if err := requireID("question id", questionID); err != nil {
		return domain.Question{}, err
	}
	if err := checkQuestionInput(in); err != nil {
		return domain.Question{}, err
	}

	payload := wire.QuestionToWire(domain.Question{
		ID:           questionID,
		TestID:       testID,
		Text:         in.Text,
		Options:      in.Options,
		CorrectIndex: in.CorrectIndex,
		Explanation:  in.Explanation,
	})

	w, err := restclient.Put[wire.Question](ctx, s.client, "/tests/"+testID+"/questions/"+questionID, payload)
	if err != nil {
		return domain.Question{}, err
	}
	return wire.QuestionFromWire(w), nil
}

// Delete removes a question.
func (s *QuestionService) Delete(ctx context.Context, testID, questionID string) error {
	if err := requireID("test id", testID); err != nil {
		return err
	}
	if err := requireID("question id", questionID); err != nil {
		return err
	}

	_, err := restclient.Delete[struct{}](ctx, s.client, "/tests/"+testID+"/questions/"+questionID, nil)
	return err
}

// checkQuestionInput validates a question draft, including the
// cross-field rule the struct tags cannot express.
func checkQuestionInput(in domain.QuestionDraftInput) error {
	if err := checkInput(in); err != nil {
		return err
	}
	if in.CorrectIndex >= len(in.Options) {
		return apperr.New(apperr.KindValidation, "correct answer must address an option",
			domain.ErrAnswerOutOfRange)
	}
	return nil
}
