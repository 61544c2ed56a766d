package apperr

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// recordingNotifier captures notifications for assertions.
type recordingNotifier struct {
	mu    sync.Mutex
	calls []string
}

func (n *recordingNotifier) Notify(kind Kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.calls = append(n.calls, string(kind)+": "+message)
}

func (n *recordingNotifier) count() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.calls)
}

type panickingNotifier struct{}

func (panickingNotifier) Notify(Kind, string) { panic("notifier exploded") }

func TestHandlerDebouncesDuplicateNotifications(t *testing.T) {
	notifier := &recordingNotifier{}
	handler := NewHandler(nil, notifier, 2*time.Second)

	now := time.Unix(1000, 0)
	handler.now = func() time.Time { return now }

	err := FromResponse(http.StatusInternalServerError, "", "server blew up", nil, nil)

	// Parallel failures within the window: exactly one notification.
	handler.Handle(context.Background(), err, true)
	handler.Handle(context.Background(), err, true)
	handler.Handle(context.Background(), err, true)
	assert.Equal(t, 1, notifier.count())

	// A different message is its own notification.
	other := FromResponse(http.StatusInternalServerError, "", "different failure", nil, nil)
	handler.Handle(context.Background(), other, true)
	assert.Equal(t, 2, notifier.count())

	// After the window expires the same failure notifies again.
	now = now.Add(3 * time.Second)
	handler.Handle(context.Background(), err, true)
	assert.Equal(t, 3, notifier.count())
}

func TestHandlerNotifyFalseOnlyLogs(t *testing.T) {
	notifier := &recordingNotifier{}
	handler := NewHandler(nil, notifier, time.Second)

	err := FromResponse(http.StatusBadRequest, "", "invalid", nil, nil)
	handler.Handle(context.Background(), err, false)

	assert.Zero(t, notifier.count())
}

func TestHandlerSurvivesPanickingNotifier(t *testing.T) {
	handler := NewHandler(nil, panickingNotifier{}, 0)

	err := FromResponse(http.StatusInternalServerError, "", "server blew up", nil, nil)
	assert.NotPanics(t, func() {
		handler.Handle(context.Background(), err, true)
	})
}

func TestHandlerIgnoresNil(t *testing.T) {
	notifier := &recordingNotifier{}
	handler := NewHandler(nil, notifier, time.Second)

	assert.NotPanics(t, func() {
		handler.Handle(context.Background(), nil, true)
	})
	assert.Zero(t, notifier.count())
}

func TestHandlerNilNotifier(t *testing.T) {
	handler := NewHandler(nil, nil, time.Second)

	err := FromResponse(http.StatusInternalServerError, "", "server blew up", nil, nil)
	assert.NotPanics(t, func() {
		handler.Handle(context.Background(), err, true)
	})
}
