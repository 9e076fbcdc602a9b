//nolint:revive,nolintlint // Package name "common" is intentional for shared helpers.
package common

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/clockeroo/internal/config"
	"github.com/oshokin/clockeroo/internal/domain/session"
	"github.com/oshokin/clockeroo/internal/engine"
	"github.com/oshokin/clockeroo/internal/engine/enginetest"
	"github.com/oshokin/clockeroo/internal/notify"
)

var errTestTerminal = errors.New("test terminal error")

func newTestRuntime(term *enginetest.ScriptedTerminal, clock *enginetest.FakeClock) (*Runtime, *bytes.Buffer) {
	out := new(bytes.Buffer)

	return &Runtime{
		Config:   config.Default(),
		Out:      out,
		Clock:    clock,
		Notifier: enginetest.NewRecordingNotifier(clock),
		OpenTerminal: func() (engine.Terminal, error) {
			return term, nil
		},
		LoopOptions: []engine.Option{engine.WithYield(0), engine.WithStopwatchYield(0)},
	}, out
}

// TestRunSession_RestoresTerminal verifies the terminal is closed after a session.
func TestRunSession_RestoresTerminal(t *testing.T) {
	t.Parallel()

	clock := enginetest.NewFakeClock(time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC))
	term := enginetest.NewScriptedTerminal(clock, enginetest.KeyAt{After: time.Second, Key: 's'})
	rt, _ := newTestRuntime(term, clock)

	outcome, err := rt.RunSession(context.Background(), session.NewStopwatch(session.NewBaseline(clock.Now())))
	require.NoError(t, err)
	require.Equal(t, engine.PhaseStopped, outcome.Phase)
	require.True(t, term.Closed())

	for _, timeout := range term.Timeouts() {
		require.Equal(t, config.DefaultStopwatchPoll, timeout)
	}
}

// TestRunSession_JoinsRestoreError verifies a failed restore is reported alongside the session
// error.
func TestRunSession_JoinsRestoreError(t *testing.T) {
	t.Parallel()

	clock := enginetest.NewFakeClock(time.Date(2026, time.March, 2, 9, 0, 0, 0, time.UTC))
	term := enginetest.NewScriptedTerminal(clock)
	term.RenderErr = errTestTerminal
	term.CloseErr = errTestTerminal
	rt, _ := newTestRuntime(term, clock)

	countdown, err := session.NewCountdown(session.NewBaseline(clock.Now()), time.Minute)
	require.NoError(t, err)

	_, err = rt.RunSession(context.Background(), countdown)
	require.ErrorIs(t, err, errTestTerminal)
	require.ErrorContains(t, err, "render frame")
	require.ErrorContains(t, err, "restore terminal")
	require.True(t, term.Closed())
}

// TestRunSession_OpenFailure verifies a terminal that cannot open fails the session.
func TestRunSession_OpenFailure(t *testing.T) {
	t.Parallel()

	clock := enginetest.NewFakeClock(time.Now())
	rt, _ := newTestRuntime(nil, clock)
	rt.OpenTerminal = func() (engine.Terminal, error) {
		return nil, errTestTerminal
	}

	_, err := rt.RunSession(context.Background(), session.NewStopwatch(session.NewBaseline(clock.Now())))
	require.ErrorIs(t, err, errTestTerminal)
}

// TestPrintBanner verifies the banner is written to the output.
func TestPrintBanner(t *testing.T) {
	t.Parallel()

	rt, out := newTestRuntime(nil, enginetest.NewFakeClock(time.Now()))
	rt.PrintBanner()
	rt.Printf("[TIMER] Starting timer for %s...", "05:00")

	require.Contains(t, out.String(), `\___|_|\___/`)
	require.Contains(t, out.String(), "[TIMER] Starting timer for 05:00...\n")
}

// TestValidate verifies a runtime missing its dependencies is rejected.
func TestValidate(t *testing.T) {
	t.Parallel()

	var rt *Runtime
	require.ErrorIs(t, rt.Validate(), errRuntimeIsNotSet)

	rt, _ = newTestRuntime(nil, enginetest.NewFakeClock(time.Now()))
	require.NoError(t, rt.Validate())

	rt.Clock = nil
	require.ErrorIs(t, rt.Validate(), errRuntimeIsNotSet)
}

// TestNewNotifier_FromConfig verifies a muted configuration gets a desktop-only notifier.
func TestNewNotifier_FromConfig(t *testing.T) {
	t.Parallel()

	cfg := config.Default()
	cfg.Mute = true

	_, ok := NewNotifier(cfg).(*notify.Desktop)
	require.True(t, ok)
}
