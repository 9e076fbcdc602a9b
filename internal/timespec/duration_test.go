package timespec

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestParseDuration_Valid checks that each unit group contributes value times its factor.
func TestParseDuration_Valid(t *testing.T) {
	t.Parallel()

	cases := map[string]time.Duration{
		"120s":     120 * time.Second,
		"5m":       5 * time.Minute,
		"2h":       2 * time.Hour,
		"1h30m":    90 * time.Minute,
		"1h30m45s": 5445 * time.Second,
		"45s1h":    time.Hour + 45*time.Second,
		"90":       90 * time.Second,
		"1m30":     90 * time.Second,
		" 10S ":    10 * time.Second,
		"0h1s":     time.Second,
	}

	for input, want := range cases {
		got, err := ParseDuration(input)
		require.NoError(t, err, input)
		require.Equal(t, want, got, input)
	}
}

// TestParseDuration_Invalid verifies malformed and zero-length inputs are user errors.
func TestParseDuration_Invalid(t *testing.T) {
	t.Parallel()

	for _, input := range []string{"", "0", "0s", "0h0m0s", "abc", "h", "5x", "1.5h", "-5m", "5 m", "99999999999999999999s"} {
		_, err := ParseDuration(input)
		require.ErrorIs(t, err, ErrInvalidDuration, input)
	}
}

// TestParseDuration_ErrorRestatesGrammar ensures the message tells the user what is accepted.
func TestParseDuration_ErrorRestatesGrammar(t *testing.T) {
	t.Parallel()

	_, err := ParseDuration("soon")
	require.ErrorContains(t, err, "1h30m")
}
