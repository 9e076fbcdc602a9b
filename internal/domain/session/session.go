package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/clockeroo/internal/timespec"
)

// Kind identifies the session variant.
type Kind int

const (
	// KindCountdown is a countdown timer.
	KindCountdown Kind = iota + 1
	// KindStopwatch is an open-ended stopwatch.
	KindStopwatch
	// KindAlarm rings at a time of day.
	KindAlarm
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindCountdown:
		return "timer"
	case KindStopwatch:
		return "stopwatch"
	case KindAlarm:
		return "alarm"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ErrNonPositiveDuration is returned when a countdown target is zero or negative.
var ErrNonPositiveDuration = errors.New("countdown duration must be positive")

// Session is implemented by *Countdown, *Stopwatch and *Alarm only.
type Session interface {
	// Kind reports the variant.
	Kind() Kind
	// Baseline returns the reference instant of the session.
	Baseline() Baseline

	sealed()
}

// Trigger is the capability shared by the variants that complete on their own.
type Trigger interface {
	Session

	// Remaining returns the time left before the trigger condition holds, never negative.
	Remaining(now time.Time) time.Duration
	// Triggered reports whether the trigger condition holds at now.
	Triggered(now time.Time) bool
}

// Countdown completes once target has elapsed since its baseline.
type Countdown struct {
	baseline Baseline
	target   time.Duration
}

// NewCountdown creates a countdown of target length starting at baseline.
func NewCountdown(baseline Baseline, target time.Duration) (*Countdown, error) {
	if target <= 0 {
		return nil, fmt.Errorf("%w: %s", ErrNonPositiveDuration, target)
	}

	return &Countdown{baseline: baseline, target: target}, nil
}

// Kind implements Session.
func (*Countdown) Kind() Kind { return KindCountdown }

// Baseline implements Session.
func (c *Countdown) Baseline() Baseline { return c.baseline }

// Target returns the configured countdown length.
func (c *Countdown) Target() time.Duration { return c.target }

// Remaining implements Trigger.
func (c *Countdown) Remaining(now time.Time) time.Duration {
	return max(0, c.target-c.baseline.Since(now))
}

// Triggered implements Trigger.
func (c *Countdown) Triggered(now time.Time) bool {
	return c.baseline.Since(now) >= c.target
}

func (*Countdown) sealed() {}

// Stopwatch accumulates elapsed time until it is stopped from outside.
type Stopwatch struct {
	baseline Baseline
}

// NewStopwatch starts a stopwatch at baseline.
func NewStopwatch(baseline Baseline) *Stopwatch {
	return &Stopwatch{baseline: baseline}
}

// ResumeStopwatch rebuilds a stopwatch that was started at the wall-clock instant startedAt,
// possibly by another process.
func ResumeStopwatch(startedAt time.Time) *Stopwatch {
	return &Stopwatch{baseline: BaselineAt(startedAt)}
}

// Kind implements Session.
func (*Stopwatch) Kind() Kind { return KindStopwatch }

// Baseline implements Session.
func (s *Stopwatch) Baseline() Baseline { return s.baseline }

// Elapsed returns the time since the stopwatch started. A wall clock set back
// before the start yields zero.
func (s *Stopwatch) Elapsed(now time.Time) time.Duration {
	return max(0, s.baseline.Since(now))
}

func (*Stopwatch) sealed() {}

// Alarm completes when the wall clock reaches its resolved target instant.
type Alarm struct {
	baseline Baseline
	at       timespec.TimeOfDay
	target   time.Time
}

// NewAlarm arms an alarm for the next occurrence of at after the baseline.
func NewAlarm(baseline Baseline, at timespec.TimeOfDay) *Alarm {
	return &Alarm{
		baseline: baseline,
		at:       at,
		target:   ResolveAlarmTarget(at, baseline.Start()),
	}
}

// ResolveAlarmTarget returns at on the calendar day of now, or on the following
// day when that instant is not after now. The result is always after now.
func ResolveAlarmTarget(at timespec.TimeOfDay, now time.Time) time.Time {
	candidate := at.On(now)
	for days := 1; !candidate.After(now); days++ {
		candidate = at.On(now.AddDate(0, 0, days))
	}

	return candidate
}

// Kind implements Session.
func (*Alarm) Kind() Kind { return KindAlarm }

// Baseline implements Session.
func (a *Alarm) Baseline() Baseline { return a.baseline }

// At returns the requested time of day.
func (a *Alarm) At() timespec.TimeOfDay { return a.at }

// Target returns the resolved instant the alarm rings at.
func (a *Alarm) Target() time.Time { return a.target }

// Remaining implements Trigger.
func (a *Alarm) Remaining(now time.Time) time.Duration {
	return max(0, a.target.Sub(now))
}

// Triggered implements Trigger.
func (a *Alarm) Triggered(now time.Time) bool {
	return !now.Before(a.target)
}

func (*Alarm) sealed() {}
