package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCourseValidate(t *testing.T) {
	t.Parallel()

	valid := Course{ID: "c-1", Title: "Go Basics"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, Course{Title: "Go Basics"}.Validate(), ErrEmptyID)
	assert.ErrorIs(t, Course{ID: "c-1"}.Validate(), ErrEmptyTitle)
}

func TestLessonValidate(t *testing.T) {
	t.Parallel()

	valid := Lesson{ID: 5, CourseID: "c-1", Title: "Intro"}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, Lesson{ID: 0, CourseID: "c-1", Title: "Intro"}.Validate(), ErrInvalidID)
	assert.ErrorIs(t, Lesson{ID: -3, CourseID: "c-1", Title: "Intro"}.Validate(), ErrInvalidID)
	assert.ErrorIs(t, Lesson{ID: 5, Title: "Intro"}.Validate(), ErrEmptyID)
	assert.ErrorIs(t, Lesson{ID: 5, CourseID: "c-1"}.Validate(), ErrEmptyTitle)
}

func TestQuestionValidate(t *testing.T) {
	t.Parallel()

	valid := Question{
		ID:           "q-1",
		TestID:       "t-1",
		Text:         "What is a goroutine?",
		Options:      []string{"a thread", "a lightweight routine", "a process", "a channel"},
		CorrectIndex: 1,
	}
	assert.NoError(t, valid.Validate())

	noOptions := valid
	noOptions.Options = nil
	assert.ErrorIs(t, noOptions.Validate(), ErrNoQuestionOptions)

	outOfRange := valid
	outOfRange.CorrectIndex = 4
	assert.ErrorIs(t, outOfRange.Validate(), ErrAnswerOutOfRange)

	negative := valid
	negative.CorrectIndex = -1
	assert.ErrorIs(t, negative.Validate(), ErrAnswerOutOfRange)
}

func TestPageValidate(t *testing.T) {
	t.Parallel()

	ok := Page[string]{Items: []string{"a", "b"}, TotalCount: 2, Page: 1, PageSize: 25}
	assert.NoError(t, ok.Validate())

	zeroPage := Page[string]{Page: 0, PageSize: 25}
	assert.ErrorIs(t, zeroPage.Validate(), ErrInvalidPage)

	overflow := Page[string]{Items: []string{"a", "b", "c"}, Page: 1, PageSize: 2}
	assert.ErrorIs(t, overflow.Validate(), ErrInvalidPage)
}

func TestScheduleConstraintsValidate(t *testing.T) {
	t.Parallel()

	now := time.Now()
	valid := ScheduleConstraints{
		Availability: []AvailabilityWindow{{Start: now, End: now.Add(2 * time.Hour)}},
		Duration:     time.Hour,
	}
	assert.NoError(t, valid.Validate())

	assert.ErrorIs(t, ScheduleConstraints{Duration: time.Hour}.Validate(), ErrNoAvailability)
	assert.ErrorIs(t, ScheduleConstraints{
		Availability: valid.Availability,
	}.Validate(), ErrInvalidDuration)
}
