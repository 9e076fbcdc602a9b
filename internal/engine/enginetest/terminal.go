package enginetest

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/oshokin/clockeroo/internal/engine"
	"github.com/oshokin/clockeroo/internal/ui/view"
)

// DefaultMaxPolls stops runaway loops in tests.
const DefaultMaxPolls = 100_000

// ErrScriptExhausted is returned by Poll once MaxPolls is exceeded.
var ErrScriptExhausted = errors.New("scripted terminal: poll limit exceeded")

// KeyAt is a key pressed After the terminal was created.
type KeyAt struct {
	After time.Duration
	Key   engine.Key
}

// ScriptedTerminal is an engine.Terminal driven by a FakeClock: every Poll
// advances the clock by its timeout, or up to the next scripted key.
type ScriptedTerminal struct {
	mu    sync.Mutex
	clock *FakeClock
	start time.Time
	keys  []KeyAt

	// MaxPolls bounds the number of polls; zero means DefaultMaxPolls.
	MaxPolls int
	// RenderErr is returned by every Render when set.
	RenderErr error
	// PollErr is returned by every Poll when set.
	PollErr error
	// CloseErr is returned by Close.
	CloseErr error

	frames   []view.Frame
	timeouts []time.Duration
	closed   bool
}

// NewScriptedTerminal returns a terminal that delivers keys in order.
func NewScriptedTerminal(clock *FakeClock, keys ...KeyAt) *ScriptedTerminal {
	return &ScriptedTerminal{
		clock: clock,
		start: clock.Now(),
		keys:  keys,
	}
}

// Render implements engine.Screen.
func (t *ScriptedTerminal) Render(frame view.Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.RenderErr != nil {
		return t.RenderErr
	}

	t.frames = append(t.frames, frame)

	return nil
}

// Poll implements engine.Input.
func (t *ScriptedTerminal) Poll(ctx context.Context, timeout time.Duration) (engine.Key, error) {
	if err := ctx.Err(); err != nil {
		return engine.KeyNone, err
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	t.timeouts = append(t.timeouts, timeout)

	maxPolls := t.MaxPolls
	if maxPolls <= 0 {
		maxPolls = DefaultMaxPolls
	}

	if len(t.timeouts) > maxPolls {
		return engine.KeyNone, ErrScriptExhausted
	}

	if t.PollErr != nil {
		return engine.KeyNone, t.PollErr
	}

	now := t.clock.Now()
	deadline := now.Add(timeout)

	if len(t.keys) > 0 {
		next := t.keys[0]

		at := t.start.Add(next.After)
		if !at.After(deadline) {
			if at.After(now) {
				t.clock.Set(at)
			}

			t.keys = t.keys[1:]

			return next.Key, nil
		}
	}

	t.clock.Set(deadline)

	return engine.KeyNone, nil
}

// Close implements engine.Terminal.
func (t *ScriptedTerminal) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.closed = true

	return t.CloseErr
}

// Frames returns the rendered frames.
func (t *ScriptedTerminal) Frames() []view.Frame {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]view.Frame(nil), t.frames...)
}

// Timeouts returns the timeout passed to every Poll.
func (t *ScriptedTerminal) Timeouts() []time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()

	return append([]time.Duration(nil), t.timeouts...)
}

// Closed reports whether Close was called.
func (t *ScriptedTerminal) Closed() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.closed
}
