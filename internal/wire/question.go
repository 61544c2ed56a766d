package wire

import "github.com/edtrack/edtrack-go/internal/domain"

// Test is the backend's test shape.
type Test struct {
	ID            string `json:"id"`
	CourseID      string `json:"courseId"`
	Title         string `json:"title"`
	PassingScore  int    `json:"passingScore"`
	TimeLimit     int    `json:"timeLimit"`
	QuestionCount int    `json:"questionCount"`
	CreatedAt     string `json:"createdAt"`
}

// TestFromWire maps a backend test to the internal shape.
func TestFromWire(w Test) domain.Test {
	return domain.Test{
		ID:            w.ID,
		CourseID:      w.CourseID,
		Title:         w.Title,
		PassingScore:  w.PassingScore,
		TimeLimit:     w.TimeLimit,
		QuestionCount: w.QuestionCount,
		CreatedAt:     parseTime(w.CreatedAt),
	}
}

// TestDraft is the create/update payload shape.
type TestDraft struct {
	Title        string `json:"title"`
	PassingScore int    `json:"passingScore"`
	TimeLimit    int    `json:"timeLimit"`
}

// TestDraftToWire maps a draft input to the backend payload.
func TestDraftToWire(in domain.TestDraftInput) TestDraft {
	return TestDraft{
		Title:        in.Title,
		PassingScore: in.PassingScore,
		TimeLimit:    in.TimeLimit,
	}
}

// Question is the backend's question shape: four flattened PascalCase
// option fields and a 1-based CorrectAnswer number, both legacy.
type Question struct {
	ID            string `json:"Id"`
	TestID        string `json:"TestId"`
	Text          string `json:"Text"`
	Option1       string `json:"Option1"`
	Option2       string `json:"Option2"`
	Option3       string `json:"Option3"`
	Option4       string `json:"Option4"`
	CorrectAnswer int    `json:"CorrectAnswer"`
	Explanation   string `json:"Explanation"`
}

// wireOptionCount is the number of option slots the backend stores.
const wireOptionCount = 4

// QuestionFromWire maps a backend question to the internal shape:
// options collapse into a slice (trailing empty slots dropped) and the
// 1-based CorrectAnswer becomes a 0-based index, clamped into range for
// malformed rows.
func QuestionFromWire(w Question) domain.Question {
	options := []string{w.Option1, w.Option2, w.Option3, w.Option4}
	for len(options) > 0 && options[len(options)-1] == "" {
		options = options[:len(options)-1]
	}

	correct := w.CorrectAnswer - 1
	if correct < 0 {
		correct = 0
	}
	if len(options) > 0 && correct >= len(options) {
		correct = len(options) - 1
	}

	return domain.Question{
		ID:           w.ID,
		TestID:       w.TestID,
		Text:         w.Text,
		Options:      options,
		CorrectIndex: correct,
		Explanation:  w.Explanation,
	}
}

// QuestionToWire maps an internal question back to the backend payload.
// Options beyond the backend's four slots are dropped; missing trailing
// options serialize as empty strings.
func QuestionToWire(q domain.Question) Question {
	var slots [wireOptionCount]string
	for i := 0; i < len(q.Options) && i < wireOptionCount; i++ {
		slots[i] = q.Options[i]
	}

	return Question{
		ID:            q.ID,
		TestID:        q.TestID,
		Text:          q.Text,
		Option1:       slots[0],
		Option2:       slots[1],
		Option3:       slots[2],
		Option4:       slots[3],
		CorrectAnswer: q.CorrectIndex + 1,
		Explanation:   q.Explanation,
	}
}

// QuestionsFromWire maps a backend question list, preserving order.
func QuestionsFromWire(ws []Question) []domain.Question {
	questions := make([]domain.Question, 0, len(ws))
	for _, w := range ws {
		questions = append(questions, QuestionFromWire(w))
	}
	return questions
}
