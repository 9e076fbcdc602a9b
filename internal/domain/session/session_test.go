package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/clockeroo/internal/timespec"
)

// TestNewCountdown_RejectsNonPositive verifies the positive-target invariant.
func TestNewCountdown_RejectsNonPositive(t *testing.T) {
	t.Parallel()

	base := NewBaseline(time.Now())

	_, err := NewCountdown(base, 0)
	require.ErrorIs(t, err, ErrNonPositiveDuration)

	_, err = NewCountdown(base, -time.Second)
	require.ErrorIs(t, err, ErrNonPositiveDuration)
}

// TestCountdown_RemainingIsMonotonicAndClamped walks the clock past the target.
func TestCountdown_RemainingIsMonotonicAndClamped(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)
	c, err := NewCountdown(NewBaseline(start), 3*time.Second)
	require.NoError(t, err)

	previous := c.Remaining(start)
	require.Equal(t, 3*time.Second, previous)

	for step := 0; step <= 50; step++ {
		now := start.Add(time.Duration(step) * 137 * time.Millisecond)
		remaining := c.Remaining(now)

		require.LessOrEqual(t, remaining, previous)
		require.GreaterOrEqual(t, remaining, time.Duration(0))
		require.Equal(t, now.Sub(start) >= 3*time.Second, c.Triggered(now))

		previous = remaining
	}

	target := start.Add(3 * time.Second)
	require.Zero(t, c.Remaining(target))
	require.True(t, c.Triggered(target))
	require.False(t, c.Triggered(target.Add(-time.Nanosecond)))
	require.Zero(t, c.Remaining(target.Add(time.Hour)))
}

// TestResolveAlarmTarget covers the today/tomorrow rollover rule.
func TestResolveAlarmTarget(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.October, 19, 14, 30, 0, 0, time.UTC)
	today := func(h, m int) time.Time {
		return time.Date(2026, time.October, 19, h, m, 0, 0, time.UTC)
	}

	later := ResolveAlarmTarget(timespec.TimeOfDay{Hour: 14, Minute: 31}, now)
	require.Equal(t, today(14, 31), later)

	same := ResolveAlarmTarget(timespec.TimeOfDay{Hour: 14, Minute: 30}, now)
	require.Equal(t, today(14, 30).Add(24*time.Hour), same)

	earlier := ResolveAlarmTarget(timespec.TimeOfDay{Hour: 7, Minute: 20}, now)
	require.Equal(t, today(7, 20).Add(24*time.Hour), earlier)

	// A few seconds past the minute still counts as passed.
	late := now.Add(5 * time.Second)
	require.Equal(t, today(14, 30).Add(24*time.Hour), ResolveAlarmTarget(timespec.TimeOfDay{Hour: 14, Minute: 30}, late))
}

// TestResolveAlarmTarget_AlwaysInFuture checks the invariant across every minute of a day.
func TestResolveAlarmTarget_AlwaysInFuture(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.December, 31, 23, 59, 30, 0, time.UTC)

	for minute := 0; minute < 24*60; minute++ {
		at := timespec.TimeOfDay{Hour: minute / 60, Minute: minute % 60}
		target := ResolveAlarmTarget(at, now)

		require.True(t, target.After(now))
		require.LessOrEqual(t, target.Sub(now), 24*time.Hour)
		require.Equal(t, at.Hour, target.Hour())
		require.Equal(t, at.Minute, target.Minute())
	}
}

// TestAlarm_RemainingAndTrigger follows an alarm up to and past its target.
func TestAlarm_RemainingAndTrigger(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.October, 19, 7, 19, 0, 0, time.UTC)
	a := NewAlarm(NewBaseline(start), timespec.TimeOfDay{Hour: 7, Minute: 20})

	require.Equal(t, start.Add(time.Minute), a.Target())
	require.Equal(t, time.Minute, a.Remaining(start))
	require.False(t, a.Triggered(start.Add(59*time.Second)))
	require.True(t, a.Triggered(a.Target()))
	require.Zero(t, a.Remaining(a.Target().Add(time.Second)))
}

// TestStopwatch_ElapsedAndResume checks in-process and resumed baselines agree.
func TestStopwatch_ElapsedAndResume(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	sw := NewStopwatch(NewBaseline(start))

	require.Zero(t, sw.Elapsed(start))
	require.Equal(t, 90*time.Second, sw.Elapsed(start.Add(90*time.Second)))
	require.Zero(t, sw.Elapsed(start.Add(-time.Second)))

	resumed := ResumeStopwatch(sw.Baseline().WallClock())
	later := start.Add(2*time.Hour + 15*time.Millisecond)
	require.Equal(t, sw.Elapsed(later), resumed.Elapsed(later))
}

// TestStopwatch_ResumeWithMonotonicBaseline uses a real clock reading, which carries a monotonic part.
func TestStopwatch_ResumeWithMonotonicBaseline(t *testing.T) {
	t.Parallel()

	sw := NewStopwatch(NewBaseline(time.Now()))
	record := NewRecord(sw, 42, nil)
	resumed := record.Stopwatch()

	now := time.Now()
	require.InDelta(t, float64(sw.Elapsed(now)), float64(resumed.Elapsed(now)), float64(time.Millisecond))
}

// TestStateAt derives pending and triggered states for every variant.
func TestStateAt(t *testing.T) {
	t.Parallel()

	start := time.Date(2026, time.October, 19, 8, 0, 0, 0, time.UTC)
	c, err := NewCountdown(NewBaseline(start), 10*time.Second)
	require.NoError(t, err)

	state := StateAt(c, start.Add(4*time.Second))
	require.Equal(t, StatusPending, state.Status)
	require.Equal(t, 6*time.Second, state.Remaining)
	require.Equal(t, 4*time.Second, state.Elapsed)

	state = StateAt(c, start.Add(10*time.Second))
	require.Equal(t, StatusTriggered, state.Status)
	require.Zero(t, state.Remaining)

	sw := NewStopwatch(NewBaseline(start))
	state = StateAt(sw, start.Add(time.Hour))
	require.Equal(t, StatusPending, state.Status)
	require.Equal(t, time.Hour, state.Elapsed)

	require.Equal(t, "stopwatch", sw.Kind().String())
	require.Equal(t, "triggered", StatusTriggered.String())
}
