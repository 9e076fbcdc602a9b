package session

import (
	"time"

	"github.com/google/uuid"
)

// Owner identifies who started a persisted stopwatch.
type Owner struct {
	// Hostname is the machine the stopwatch was started on.
	Hostname string
	// Username is the system user who started it.
	Username string
}

// Clone returns a deep copy of the owner.
func (o *Owner) Clone() *Owner {
	if o == nil {
		return nil
	}

	cloned := *o

	return &cloned
}

// String renders the owner as user@host.
func (o *Owner) String() string {
	if o == nil {
		return "<unknown>"
	}

	return o.Username + "@" + o.Hostname
}

// Record is the persisted form of a stopwatch. Only the wall-clock start crosses
// process boundaries; elapsed time is recomputed from it on every query.
type Record struct {
	// ID distinguishes one stopwatch start from the next.
	ID uuid.UUID
	// StartedAt is the wall-clock instant the stopwatch started.
	StartedAt time.Time
	// PID is the process showing the stopwatch display.
	PID int
	// Owner is who started the stopwatch, if known.
	Owner *Owner
}

// NewRecord captures the persisted form of sw.
func NewRecord(sw *Stopwatch, pid int, owner *Owner) *Record {
	return &Record{
		ID:        uuid.New(),
		StartedAt: sw.Baseline().WallClock(),
		PID:       pid,
		Owner:     owner.Clone(),
	}
}

// Stopwatch rebuilds the stopwatch session described by the record.
func (r *Record) Stopwatch() *Stopwatch {
	return ResumeStopwatch(r.StartedAt)
}

// Clone returns a copy of the record to avoid leaking internal references.
func (r *Record) Clone() *Record {
	if r == nil {
		return nil
	}

	return &Record{
		ID:        r.ID,
		StartedAt: r.StartedAt,
		PID:       r.PID,
		Owner:     r.Owner.Clone(),
	}
}
