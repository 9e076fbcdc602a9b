package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/oshokin/clockeroo/internal/domain/session"
	"github.com/oshokin/clockeroo/internal/logger"
	"github.com/oshokin/clockeroo/internal/notify"
	"github.com/oshokin/clockeroo/internal/ui/view"
)

// ErrUnsupportedSession is returned for a session variant the loop cannot drive.
var ErrUnsupportedSession = errors.New("unsupported session")

// Phase is the lifecycle position of a session.
type Phase int

const (
	// PhaseRunning is the initial phase.
	PhaseRunning Phase = iota
	// PhaseTriggered means completion was detected and announced.
	PhaseTriggered
	// PhaseExited means the display ended; the session is over.
	PhaseExited
	// PhaseStopped means a stopwatch was stopped by the user.
	PhaseStopped
	// PhaseBackgrounded means the stopwatch display ended while the stopwatch keeps counting.
	PhaseBackgrounded
)

// String implements fmt.Stringer.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhaseTriggered:
		return "triggered"
	case PhaseExited:
		return "exited"
	case PhaseStopped:
		return "stopped"
	case PhaseBackgrounded:
		return "backgrounded"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Outcome describes how a session ended.
type Outcome struct {
	// Phase is the terminal phase.
	Phase Phase
	// Triggered reports whether the completion side effects fired.
	Triggered bool
	// Elapsed is the time since the baseline when the session ended.
	Elapsed time.Duration
	// TriggeredAt is the instant completion was detected; zero if it never was.
	TriggeredAt time.Time
}

// Loop drives one session against a screen and an input.
type Loop struct {
	screen   Screen
	input    Input
	clock    Clock
	notifier notify.Notifier

	pollInterval          time.Duration
	yield                 time.Duration
	stopwatchPollInterval time.Duration
	stopwatchYield        time.Duration
}

// New creates a Loop with default intervals, the system clock and no notifier.
func New(screen Screen, input Input, opts ...Option) *Loop {
	l := &Loop{
		screen:                screen,
		input:                 input,
		clock:                 SystemClock{},
		notifier:              notify.Nop{},
		pollInterval:          DefaultPollInterval,
		yield:                 DefaultYield,
		stopwatchPollInterval: DefaultStopwatchPollInterval,
		stopwatchYield:        DefaultStopwatchYield,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// Run drives s until it ends. Cancellation of ctx ends the session cleanly
// without side effects; render and input failures are returned.
func (l *Loop) Run(ctx context.Context, s session.Session) (Outcome, error) {
	ctx = logger.WithKV(ctx, "session", s.Kind().String())

	switch sess := s.(type) {
	case *session.Stopwatch:
		return l.runStopwatch(ctx, sess)
	case session.Trigger:
		return l.runTrigger(ctx, s)
	default:
		return Outcome{}, fmt.Errorf("%w: %s", ErrUnsupportedSession, s.Kind())
	}
}

func (l *Loop) runTrigger(ctx context.Context, s session.Session) (Outcome, error) {
	for {
		now := l.clock.Now()
		state := session.StateAt(s, now)

		if ctx.Err() != nil {
			logger.Debug(ctx, "Context canceled, exiting")

			return Outcome{Phase: PhaseExited, Elapsed: state.Elapsed}, nil
		}

		if state.Status == session.StatusTriggered {
			return l.fire(ctx, s, now, state)
		}

		if err := l.render(view.Running(s, state)); err != nil {
			return Outcome{}, err
		}

		key, err := l.poll(ctx, l.pollInterval)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}

			return Outcome{}, err
		}

		if Classify(key) == SignalCancel {
			logger.DebugKV(ctx, "Session canceled", "remaining", state.Remaining.String())

			return Outcome{Phase: PhaseExited, Elapsed: state.Elapsed}, nil
		}

		pause(ctx, l.yield)
	}
}

// fire announces completion once and waits for the user to dismiss the display.
func (l *Loop) fire(ctx context.Context, s session.Session, now time.Time, state session.State) (Outcome, error) {
	outcome := Outcome{
		Phase:       PhaseTriggered,
		Triggered:   true,
		Elapsed:     state.Elapsed,
		TriggeredAt: now,
	}

	logger.DebugKV(ctx, "Session triggered", "at", now.Format(time.RFC3339Nano))

	frame, announcement := view.Triggered(s)
	if err := l.render(frame); err != nil {
		return Outcome{}, err
	}

	l.notifier.PlayAlert(ctx)
	l.notifier.SendNotification(ctx, announcement.Title, announcement.Body)

	for {
		key, err := l.poll(ctx, l.pollInterval)
		if err != nil {
			if ctx.Err() != nil {
				outcome.Phase = PhaseExited

				return outcome, nil
			}

			return Outcome{}, err
		}

		if Classify(key) == SignalCancel {
			outcome.Phase = PhaseExited

			return outcome, nil
		}
	}
}

func (l *Loop) runStopwatch(ctx context.Context, sw *session.Stopwatch) (Outcome, error) {
	for {
		if ctx.Err() != nil {
			logger.Debug(ctx, "Context canceled, leaving stopwatch in background")

			return Outcome{Phase: PhaseBackgrounded, Elapsed: sw.Elapsed(l.clock.Now())}, nil
		}

		if err := l.render(view.Stopwatch(sw.Elapsed(l.clock.Now()))); err != nil {
			return Outcome{}, err
		}

		key, err := l.poll(ctx, l.stopwatchPollInterval)
		if err != nil {
			if ctx.Err() != nil {
				continue
			}

			return Outcome{}, err
		}

		switch Classify(key) {
		case SignalStop:
			return Outcome{Phase: PhaseStopped, Elapsed: sw.Elapsed(l.clock.Now())}, nil
		case SignalCancel:
			return Outcome{Phase: PhaseBackgrounded, Elapsed: sw.Elapsed(l.clock.Now())}, nil
		case SignalContinue:
		}

		pause(ctx, l.stopwatchYield)
	}
}

func (l *Loop) render(frame view.Frame) error {
	if err := l.screen.Render(frame); err != nil {
		return fmt.Errorf("render frame: %w", err)
	}

	return nil
}

func (l *Loop) poll(ctx context.Context, timeout time.Duration) (Key, error) {
	key, err := l.input.Poll(ctx, timeout)
	if err != nil {
		return KeyNone, fmt.Errorf("read input: %w", err)
	}

	return key, nil
}

// pause sleeps for d or until ctx is done.
func pause(ctx context.Context, d time.Duration) {
	if d <= 0 {
		return
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}
