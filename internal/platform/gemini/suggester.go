package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"text/template"
	"time"

	"github.com/edtrack/edtrack-go/internal/apperr"
	"github.com/edtrack/edtrack-go/internal/config"
	"github.com/edtrack/edtrack-go/internal/domain"
	"github.com/edtrack/edtrack-go/internal/schedule"
	"google.golang.org/genai"
)

// promptTemplate is the instruction sent to the model. The response is
// constrained to a single JSON object so parsing stays mechanical.
const promptTemplate = `You are scheduling one training session.

Pick a start and end time that satisfy ALL of these rules:
- The session lasts exactly {{.DurationMinutes}} minutes.
- It lies entirely inside one of these availability windows:
{{range .Availability}}  - {{.Start}} to {{.End}}
{{end -}}
{{if .Bookings}}- It must not overlap any of these existing bookings:
{{range .Bookings}}  - "{{.Title}}" from {{.Start}} to {{.End}}
{{end}}{{end}}
Respond with a single JSON object and nothing else:
{"start":"<RFC3339>","end":"<RFC3339>","rationale":"<one sentence>"}`

// slotResponse is the JSON shape the model is instructed to return.
type slotResponse struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Rationale string `json:"rationale"`
}

// promptData carries pre-formatted constraint values into the template.
type promptData struct {
	DurationMinutes int
	Availability    []struct{ Start, End string }
	Bookings        []struct{ Title, Start, End string }
}

// modelCaller is the seam between the suggester and the genai client,
// so tests can exercise parsing and validation without a live model.
type modelCaller interface {
	generateText(ctx context.Context, prompt string) (string, error)
}

// genaiCaller calls the Gemini API for real.
type genaiCaller struct {
	client *genai.Client
	model  string
}

func (c *genaiCaller) generateText(ctx context.Context, prompt string) (string, error) {
	resp, err := c.client.Models.GenerateContent(ctx, c.model, genai.Text(prompt),
		&genai.GenerateContentConfig{ResponseMIMEType: "application/json"})
	if err != nil {
		return "", err
	}
	return resp.Text(), nil
}

// SlotSuggester implements schedule.Suggester using Google's Gemini
// API. Each Suggest makes exactly one model call; failures are reported
// to the caller rather than retried, since a human is waiting on the
// answer and can simply ask again.
type SlotSuggester struct {
	logger *slog.Logger
	tmpl   *template.Template
	caller modelCaller
}

var _ schedule.Suggester = (*SlotSuggester)(nil)

// NewSlotSuggester creates a SlotSuggester from the AI configuration.
// It returns an error if the API key or model name is missing.
func NewSlotSuggester(ctx context.Context, log *slog.Logger, cfg config.AIConfig) (*SlotSuggester, error) {
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if cfg.ModelName == "" {
		return nil, errors.New("model name cannot be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return newSlotSuggester(log, &genaiCaller{client: client, model: cfg.ModelName}), nil
}

func newSlotSuggester(log *slog.Logger, caller modelCaller) *SlotSuggester {
	if log == nil {
		log = slog.Default()
	}
	return &SlotSuggester{
		logger: log.With(slog.String("component", "slot_suggester")),
		tmpl:   template.Must(template.New("slot").Parse(promptTemplate)),
		caller: caller,
	}
}

// Suggest asks the model for one slot and validates the answer against
// the constraints before returning it. Model failures and malformed or
// rule-breaking answers all surface as server-kind errors.
func (s *SlotSuggester) Suggest(ctx context.Context, constraints domain.ScheduleConstraints) (*domain.ScheduleSlot, error) {
	if err := constraints.Validate(); err != nil {
		return nil, apperr.New(apperr.KindValidation, "schedule constraints are invalid", err)
	}

	prompt, err := s.buildPrompt(constraints)
	if err != nil {
		return nil, apperr.New(apperr.KindServer, "could not build scheduling prompt", err)
	}

	s.logger.DebugContext(ctx, "requesting slot suggestion",
		slog.Int("availability_windows", len(constraints.Availability)),
		slog.Int("bookings", len(constraints.Bookings)),
		slog.Duration("duration", constraints.Duration))

	text, err := s.caller.generateText(ctx, prompt)
	if err != nil {
		return nil, apperr.New(apperr.KindServer, "schedule suggestion failed", err)
	}

	slot, err := parseSlot(text)
	if err != nil {
		return nil, apperr.New(apperr.KindServer, "schedule suggestion was malformed", err)
	}
	if err := checkSlot(slot, constraints); err != nil {
		return nil, apperr.New(apperr.KindServer, "schedule suggestion broke the constraints", err)
	}

	s.logger.InfoContext(ctx, "slot suggested",
		slog.Time("start", slot.Start),
		slog.Time("end", slot.End))
	return slot, nil
}

func (s *SlotSuggester) buildPrompt(constraints domain.ScheduleConstraints) (string, error) {
	data := promptData{
		DurationMinutes: int(constraints.Duration.Minutes()),
	}
	for _, w := range constraints.Availability {
		data.Availability = append(data.Availability, struct{ Start, End string }{
			Start: w.Start.Format(time.RFC3339),
			End:   w.End.Format(time.RFC3339),
		})
	}
	for _, b := range constraints.Bookings {
		data.Bookings = append(data.Bookings, struct{ Title, Start, End string }{
			Title: b.Title,
			Start: b.Start.Format(time.RFC3339),
			End:   b.End.Format(time.RFC3339),
		})
	}

	var buf bytes.Buffer
	if err := s.tmpl.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// parseSlot decodes the model's JSON answer into a domain slot.
func parseSlot(text string) (*domain.ScheduleSlot, error) {
	var raw slotResponse
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("response is not the requested JSON object: %w", err)
	}

	start, err := time.Parse(time.RFC3339, raw.Start)
	if err != nil {
		return nil, fmt.Errorf("bad start time %q: %w", raw.Start, err)
	}
	end, err := time.Parse(time.RFC3339, raw.End)
	if err != nil {
		return nil, fmt.Errorf("bad end time %q: %w", raw.End, err)
	}

	return &domain.ScheduleSlot{Start: start, End: end, Rationale: raw.Rationale}, nil
}

// checkSlot verifies that the model's answer actually satisfies the
// constraints. The model is probabilistic; its output is untrusted
// input like any other.
func checkSlot(slot *domain.ScheduleSlot, constraints domain.ScheduleConstraints) error {
	if !slot.End.After(slot.Start) {
		return fmt.Errorf("slot ends before it starts")
	}
	if got := slot.End.Sub(slot.Start); got != constraints.Duration {
		return fmt.Errorf("slot lasts %s, want %s", got, constraints.Duration)
	}

	inWindow := false
	for _, w := range constraints.Availability {
		if !slot.Start.Before(w.Start) && !slot.End.After(w.End) {
			inWindow = true
			break
		}
	}
	if !inWindow {
		return fmt.Errorf("slot lies outside every availability window")
	}

	for _, b := range constraints.Bookings {
		if slot.Start.Before(b.End) && b.Start.Before(slot.End) {
			return fmt.Errorf("slot overlaps booking %q", b.Title)
		}
	}
	return nil
}
