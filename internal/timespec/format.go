package timespec

import (
	"fmt"
	"time"
)

// FormatDuration renders d truncated to whole seconds as HH:MM:SS when it spans at
// least an hour and as MM:SS otherwise. Negative durations render as zero.
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	if hours > 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}

	return fmt.Sprintf("%02d:%02d", minutes, seconds)
}

// FormatPrecise renders d like FormatDuration with a millisecond suffix, e.g. "01:05.042".
func FormatPrecise(d time.Duration) string {
	if d < 0 {
		d = 0
	}

	millis := (d % time.Second) / time.Millisecond

	return fmt.Sprintf("%s.%03d", FormatDuration(d), millis)
}
