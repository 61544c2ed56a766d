package apperr

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/edtrack/edtrack-go/internal/platform/logger"
)

// Notifier delivers a user-visible notification. Implementations live in
// the UI layer; the core only decides when one fires.
type Notifier interface {
	Notify(kind Kind, message string)
}

// Handler owns the logging and user-notification side effects for
// classified errors. Notifications for the same (kind, message) pair are
// deduplicated within the debounce window so parallel failed requests do
// not produce a notification storm.
type Handler struct {
	logger   *slog.Logger
	notifier Notifier
	debounce time.Duration

	mu       sync.Mutex
	lastSent map[string]time.Time

	// now is replaceable in tests.
	now func() time.Time
}

// NewHandler creates a Handler. notifier may be nil, in which case
// notifications are silently skipped. A non-positive debounce disables
// deduplication.
func NewHandler(log *slog.Logger, notifier Notifier, debounce time.Duration) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		logger:   log.With(slog.String("component", "error_handler")),
		notifier: notifier,
		debounce: debounce,
		lastSent: make(map[string]time.Time),
		now:      time.Now,
	}
}

// Handle logs the error and, when notify is true, triggers at most one
// user notification per (kind, message) within the debounce window.
// Handle never panics; a failure to notify must not mask the original
// error.
func (h *Handler) Handle(ctx context.Context, err error, notify bool) {
	if err == nil {
		return
	}

	appErr := Classify(err)
	log := logger.FromContextOrDefault(ctx, h.logger)

	attrs := []slog.Attr{
		slog.String("kind", string(appErr.Kind)),
		slog.String("message", appErr.Message),
	}
	if appErr.Status != 0 {
		attrs = append(attrs, slog.Int("status", appErr.Status))
	}
	if appErr.Code != "" {
		attrs = append(attrs, slog.String("code", appErr.Code))
	}
	if appErr.Method != "" {
		attrs = append(attrs,
			slog.String("method", appErr.Method),
			slog.String("path", appErr.Path))
	}
	if cause := appErr.Unwrap(); cause != nil {
		attrs = append(attrs, slog.String("cause", cause.Error()))
	}

	level := slog.LevelWarn
	if appErr.Kind == KindServer || appErr.Kind == KindNetwork || appErr.Kind == KindClient {
		level = slog.LevelError
	}
	log.LogAttrs(ctx, level, "request failed", attrs...)

	if notify && h.notifier != nil && h.shouldNotify(appErr) {
		h.safeNotify(appErr)
	}
}

// shouldNotify applies the debounce window to the (kind, message) pair.
func (h *Handler) shouldNotify(appErr *Error) bool {
	if h.debounce <= 0 {
		return true
	}

	key := string(appErr.Kind) + "\x1f" + appErr.Message
	now := h.now()

	h.mu.Lock()
	defer h.mu.Unlock()

	if sent, ok := h.lastSent[key]; ok && now.Sub(sent) < h.debounce {
		return false
	}
	h.lastSent[key] = now
	return true
}

func (h *Handler) safeNotify(appErr *Error) {
	defer func() {
		if r := recover(); r != nil {
			h.logger.Error("notifier panicked", "panic", r)
		}
	}()
	h.notifier.Notify(appErr.Kind, appErr.Message)
}
