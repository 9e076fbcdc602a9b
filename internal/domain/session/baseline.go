package session

import "time"

// Baseline is the instant a session measures itself against.
// A Baseline created in this process keeps Go's monotonic clock reading; one
// rebuilt from persisted data only carries wall-clock time, so durations computed
// from it follow wall-clock adjustments.
type Baseline struct {
	// start is the captured instant.
	start time.Time
}

// NewBaseline captures now as the session start.
func NewBaseline(now time.Time) Baseline {
	return Baseline{start: now}
}

// BaselineAt rebuilds a baseline from a persisted wall-clock timestamp.
func BaselineAt(wall time.Time) Baseline {
	return Baseline{start: wall.Round(0)}
}

// Start returns the captured instant.
func (b Baseline) Start() time.Time {
	return b.start
}

// WallClock returns the start without its monotonic reading, suitable for persistence.
func (b Baseline) WallClock() time.Time {
	return b.start.Round(0)
}

// Since returns the time elapsed between the baseline and now.
func (b Baseline) Since(now time.Time) time.Duration {
	return now.Sub(b.start)
}
