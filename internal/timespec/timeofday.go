package timespec

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrInvalidTime is returned for time-of-day strings that match neither accepted form.
	ErrInvalidTime = errors.New("invalid time: use formats like 7:20am, 7:20pm or 19:20")
	// ErrHourOutOfRange is returned when the 12-hour form carries an hour outside 1..12.
	ErrHourOutOfRange = errors.New("invalid hour for am/pm format: use 1 to 12")
)

// TimeOfDay is a wall-clock time without a date, at minute precision.
type TimeOfDay struct {
	// Hour in 24-hour form, 0..23.
	Hour int
	// Minute, 0..59.
	Minute int
}

// ParseTimeOfDay accepts "H:MMam", "H:MMpm" (hour 1..12, optional space before the
// suffix, any case) or "HH:MM" (hour 0..23).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))

	var (
		meridiem string
		clock    = normalized
	)

	if rest, ok := strings.CutSuffix(normalized, "am"); ok {
		meridiem, clock = "am", strings.TrimSpace(rest)
	} else if rest, ok = strings.CutSuffix(normalized, "pm"); ok {
		meridiem, clock = "pm", strings.TrimSpace(rest)
	}

	hourPart, minutePart, ok := strings.Cut(clock, ":")
	if !ok {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	hour, hourOK := parseDigits(hourPart, 2)
	minute, minuteOK := parseDigits(minutePart, 2)

	if !hourOK || !minuteOK || len(minutePart) != 2 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}

	if meridiem == "" {
		if hour > 23 {
			return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
		}

		return TimeOfDay{Hour: hour, Minute: minute}, nil
	}

	if hour < 1 || hour > 12 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrHourOutOfRange, s)
	}

	return TimeOfDay{Hour: to24Hour(hour, meridiem == "pm"), Minute: minute}, nil
}

// to24Hour converts a 12-hour clock hour to the 24-hour form.
func to24Hour(hour int, pm bool) int {
	switch {
	case pm && hour != 12:
		return hour + 12
	case !pm && hour == 12:
		return 0
	default:
		return hour
	}
}

// parseDigits parses 1..maxLen ASCII digits.
func parseDigits(s string, maxLen int) (int, bool) {
	if s == "" || len(s) > maxLen {
		return 0, false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}

	value, err := strconv.Atoi(s)

	return value, err == nil
}

// On returns the instant at which this time of day falls on the calendar day of date,
// in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), t.Hour, t.Minute, 0, 0, date.Location())
}

// String renders the time in 12-hour form, e.g. "07:20 AM".
func (t TimeOfDay) String() string {
	return time.Date(0, time.January, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format("03:04 PM")
}

// Format24 renders the time in 24-hour form, e.g. "19:20".
func (t TimeOfDay) Format24() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}
