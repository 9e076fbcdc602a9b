package alarm_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/oshokin/clockeroo/internal/engine"
	"github.com/oshokin/clockeroo/internal/engine/enginetest"
	"github.com/oshokin/clockeroo/internal/service/alarm"
	"github.com/oshokin/clockeroo/internal/service/common/commontest"
	"github.com/oshokin/clockeroo/internal/timespec"
)

// TestRun_RingsOnce verifies the alarm rings a single time at its target.
func TestRun_RingsOnce(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 2, 7, 19, 30, 0, time.UTC)
	h := commontest.New(now, enginetest.KeyAt{After: time.Minute, Key: engine.KeyCtrlC})

	err := alarm.Run(context.Background(), &alarm.Options{Runtime: h.Runtime, Time: "7:20am"})
	require.NoError(t, err)

	require.Contains(t, h.Out.String(), "[ALARM] Setting alarm for 07:20 AM...")

	notifications := h.Notifier.Notifications()
	require.Len(t, notifications, 1)
	require.Equal(t, "Alarm!", notifications[0].Title)
	require.Equal(t, "It's 07:20 AM!", notifications[0].Body)
	require.Equal(t, now.Add(30*time.Second), notifications[0].At)
}

// TestRun_PastTimeRollsToTomorrow verifies a time already passed today is scheduled for tomorrow.
func TestRun_PastTimeRollsToTomorrow(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, time.March, 2, 19, 21, 0, 0, time.UTC)
	h := commontest.New(now, enginetest.KeyAt{After: time.Second, Key: 'q'})

	err := alarm.Run(context.Background(), &alarm.Options{Runtime: h.Runtime, Time: "19:20"})
	require.NoError(t, err)

	require.Contains(t, h.Out.String(), "[ALARM] Alarm for 07:20 PM canceled.")
	require.Empty(t, h.Notifier.Alerts())
	require.Contains(t, h.Terminal.Frames()[0].PlainText(), "23:59:00 remaining")
}

// TestRun_InvalidTime verifies malformed times are rejected before the display opens.
func TestRun_InvalidTime(t *testing.T) {
	t.Parallel()

	h := commontest.New(time.Now())

	err := alarm.Run(context.Background(), &alarm.Options{Runtime: h.Runtime, Time: "25:00"})
	require.ErrorIs(t, err, timespec.ErrInvalidTime)

	err = alarm.Run(context.Background(), &alarm.Options{Runtime: h.Runtime, Time: "13:00pm"})
	require.ErrorIs(t, err, timespec.ErrHourOutOfRange)
	require.Empty(t, h.Terminal.Frames())
}
