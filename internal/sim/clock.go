package sim

import (
	"context"
	"time"
)

// Clock schedules throttled playback against absolute deadlines. Tests
// substitute a fake that advances instantly while preserving ordering and
// cancellation behavior.
type Clock interface {
	Now() time.Time
	// WaitUntil blocks until the deadline passes or ctx is cancelled,
	// returning ctx.Err() in the latter case.
	WaitUntil(ctx context.Context, deadline time.Time) error
}

// WallClock implements Clock with real time.
type WallClock struct{}

// Now implements Clock.
func (WallClock) Now() time.Time {
	return time.Now()
}

// WaitUntil implements Clock.
func (WallClock) WaitUntil(ctx context.Context, deadline time.Time) error {
	remaining := time.Until(deadline)
	if remaining <= 0 {
		// Deadline already passed; still honor a pending cancellation.
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
			return nil
		}
	}
	timer := time.NewTimer(remaining)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
