package timespec

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// maxSeconds caps the accepted total so that the result fits in time.Duration.
const maxSeconds = int64(time.Duration(1<<63-1) / time.Second)

// ErrInvalidDuration is returned for malformed or zero-length durations.
var ErrInvalidDuration = errors.New(
	"invalid duration: use formats like 120s, 5m, 2h, 1h30m or a bare number of seconds",
)

var (
	// durationPattern accepts unit groups followed by an optional bare number of seconds.
	durationPattern = regexp.MustCompile(`^(?:\d+[hms])*\d*$`)
	// durationGroup splits the input into number/unit pairs.
	durationGroup = regexp.MustCompile(`(\d+)([hms]?)`)
)

// unitFactors maps a unit suffix to its length in seconds. The empty suffix is a bare number.
//
//nolint:gochecknoglobals // Read-only lookup table.
var unitFactors = map[string]int64{
	"h": 3600,
	"m": 60,
	"s": 1,
	"":  1,
}

// ParseDuration converts a duration string such as "1h30m45s" or "90" into a time.Duration.
// The total must be positive.
func ParseDuration(s string) (time.Duration, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	if normalized == "" || !durationPattern.MatchString(normalized) {
		return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
	}

	var total int64

	for _, group := range durationGroup.FindAllStringSubmatch(normalized, -1) {
		value, err := strconv.ParseInt(group[1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q", ErrInvalidDuration, s)
		}

		factor := unitFactors[group[2]]
		if value > (maxSeconds-total)/factor {
			return 0, fmt.Errorf("%w: %q is too long", ErrInvalidDuration, s)
		}

		total += value * factor
	}

	if total == 0 {
		return 0, fmt.Errorf("%w: %q adds up to zero", ErrInvalidDuration, s)
	}

	return time.Duration(total) * time.Second, nil
}
