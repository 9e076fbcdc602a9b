package engine

import (
	"context"
	"time"

	"github.com/oshokin/clockeroo/internal/ui/view"
)

// Clock provides the current instant.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the system clock, monotonic reading included.
type SystemClock struct{}

// Now implements Clock.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// Screen shows frames.
type Screen interface {
	Render(frame view.Frame) error
}

// Input delivers key presses.
type Input interface {
	// Poll waits at most timeout for a key and returns KeyNone when none arrived.
	// It returns ctx.Err() once ctx is done.
	Poll(ctx context.Context, timeout time.Duration) (Key, error)
}

// Terminal is an interactive device that must be restored when the session ends.
type Terminal interface {
	Screen
	Input
	Close() error
}
