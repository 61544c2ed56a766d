package apperr

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindForStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		status int
		want   Kind
	}{
		{http.StatusBadRequest, KindValidation},
		{http.StatusUnprocessableEntity, KindValidation},
		{http.StatusConflict, KindValidation},
		{http.StatusUnauthorized, KindAuthorization},
		{http.StatusForbidden, KindAuthorization},
		{http.StatusNotFound, KindNotFound},
		{http.StatusInternalServerError, KindServer},
		{http.StatusBadGateway, KindServer},
		{http.StatusServiceUnavailable, KindServer},
		{http.StatusOK, KindClient},
		{0, KindClient},
	}

	for _, tc := range tests {
		t.Run(fmt.Sprintf("status %d", tc.status), func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, KindForStatus(tc.status))
			// Classification is deterministic.
			assert.Equal(t, KindForStatus(tc.status), KindForStatus(tc.status))
		})
	}
}

func TestClassifyTransportFailure(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{name: "url error", err: &url.Error{Op: "Get", URL: "https://api.example", Err: errors.New("connection refused")}},
		{name: "deadline exceeded", err: context.DeadlineExceeded},
		{name: "cancelled", err: context.Canceled},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			appErr := Classify(tc.err)
			require.NotNil(t, appErr)
			assert.Equal(t, KindNetwork, appErr.Kind)
		})
	}
}

func TestClassifyPassesThroughClassifiedErrors(t *testing.T) {
	t.Parallel()

	original := FromResponse(http.StatusNotFound, "COURSE_NOT_FOUND", "course not found", nil, nil)
	wrapped := fmt.Errorf("fetching course: %w", original)

	assert.Same(t, original, Classify(original))
	assert.Same(t, original, Classify(wrapped))
}

func TestClassifyLocalError(t *testing.T) {
	t.Parallel()

	appErr := Classify(errors.New("boom"))
	assert.Equal(t, KindClient, appErr.Kind)
	assert.NotEmpty(t, appErr.Message)
}

func TestMessagesResolve(t *testing.T) {
	t.Parallel()

	messages := Messages{"COURSE_NOT_FOUND": "The course no longer exists."}

	tests := []struct {
		name      string
		code      string
		serverMsg string
		want      string
	}{
		{name: "code lookup wins", code: "COURSE_NOT_FOUND", serverMsg: "raw backend text", want: "The course no longer exists."},
		{name: "unknown code falls back to server message", code: "UNMAPPED", serverMsg: "raw backend text", want: "raw backend text"},
		{name: "no code uses server message", serverMsg: "raw backend text", want: "raw backend text"},
		{name: "nothing present uses generic fallback", want: genericFallback},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tc.want, messages.Resolve(tc.code, tc.serverMsg))
		})
	}
}

func TestErrorWithRequestLeavesReceiverUnchanged(t *testing.T) {
	t.Parallel()

	original := FromResponse(http.StatusBadRequest, "", "invalid title", nil, nil)
	withReq := original.WithRequest(http.MethodPost, "/courses")

	assert.Empty(t, original.Method)
	assert.Equal(t, http.MethodPost, withReq.Method)
	assert.Equal(t, "/courses", withReq.Path)
	assert.Equal(t, original.Kind, withReq.Kind)
	assert.Contains(t, withReq.Error(), "POST /courses")
}

func TestUserMessage(t *testing.T) {
	t.Parallel()

	appErr := FromResponse(http.StatusForbidden, "", "You do not have access to this report.", nil, nil)
	assert.Equal(t, "You do not have access to this report.", UserMessage(appErr))
	assert.Equal(t, genericFallback, UserMessage(errors.New("raw")))
	assert.Equal(t, genericFallback, UserMessage(nil))
}

func TestIsNotFound(t *testing.T) {
	t.Parallel()

	notFound := FromResponse(http.StatusNotFound, "", "", nil, nil)
	server := FromResponse(http.StatusInternalServerError, "", "", nil, nil)

	assert.True(t, IsNotFound(notFound))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", notFound)))
	assert.False(t, IsNotFound(server))
	assert.False(t, IsNotFound(errors.New("plain")))
}
