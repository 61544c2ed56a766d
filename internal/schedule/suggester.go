// Package schedule defines the boundary between the application core
// and external AI services that propose training session slots. The
// interface keeps callers decoupled from any particular model provider.
package schedule

import (
	"context"

	"github.com/edtrack/edtrack-go/internal/domain"
)

// Suggester proposes a single session slot satisfying the given
// constraints.
//
// Implementations make at most one model call per invocation; the
// suggestion is advisory and the user retries explicitly, so there is
// no retry loop to hide latency behind.
type Suggester interface {
	// Suggest returns a slot inside one of the availability windows,
	// long enough for the requested duration and clear of existing
	// bookings, together with the model's rationale.
	Suggest(ctx context.Context, constraints domain.ScheduleConstraints) (*domain.ScheduleSlot, error)
}
