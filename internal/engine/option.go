package engine

import (
	"time"

	"github.com/oshokin/clockeroo/internal/notify"
)

// Default intervals of the loop.
const (
	DefaultPollInterval          = 100 * time.Millisecond
	DefaultYield                 = 100 * time.Millisecond
	DefaultStopwatchPollInterval = 10 * time.Millisecond
	DefaultStopwatchYield        = 10 * time.Millisecond
)

// Option configures a Loop.
type Option func(*Loop)

// WithClock sets the clock.
func WithClock(clock Clock) Option {
	return func(l *Loop) {
		if clock != nil {
			l.clock = clock
		}
	}
}

// WithNotifier sets the completion notifier.
func WithNotifier(n notify.Notifier) Option {
	return func(l *Loop) {
		if n != nil {
			l.notifier = n
		}
	}
}

// WithPollInterval sets how long a countdown or alarm waits for a key per tick.
func WithPollInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.pollInterval = d
		}
	}
}

// WithYield sets the pause between countdown or alarm ticks. Zero disables it.
func WithYield(d time.Duration) Option {
	return func(l *Loop) {
		if d >= 0 {
			l.yield = d
		}
	}
}

// WithStopwatchPollInterval sets how long a stopwatch waits for a key per tick.
func WithStopwatchPollInterval(d time.Duration) Option {
	return func(l *Loop) {
		if d > 0 {
			l.stopwatchPollInterval = d
		}
	}
}

// WithStopwatchYield sets the pause between stopwatch ticks. Zero disables it.
func WithStopwatchYield(d time.Duration) Option {
	return func(l *Loop) {
		if d >= 0 {
			l.stopwatchYield = d
		}
	}
}
