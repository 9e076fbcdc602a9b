package session

import "time"

// Status is the completion status of a session at a given instant.
type Status int

const (
	// StatusPending means the trigger condition does not hold yet, or never will (stopwatch).
	StatusPending Status = iota
	// StatusTriggered means the trigger condition holds.
	StatusTriggered
)

// String implements fmt.Stringer.
func (s Status) String() string {
	if s == StatusTriggered {
		return "triggered"
	}

	return "pending"
}

// State is derived from a session and an instant; it is never stored.
type State struct {
	// Status is the completion status.
	Status Status
	// Remaining is the time left for a countdown or alarm, zero for a stopwatch.
	Remaining time.Duration
	// Elapsed is the time since the baseline.
	Elapsed time.Duration
}

// StateAt derives the state of s at now.
func StateAt(s Session, now time.Time) State {
	switch sess := s.(type) {
	case *Stopwatch:
		return State{Status: StatusPending, Elapsed: sess.Elapsed(now)}
	case Trigger:
		state := State{
			Status:    StatusPending,
			Remaining: sess.Remaining(now),
			Elapsed:   max(0, sess.Baseline().Since(now)),
		}

		if sess.Triggered(now) {
			state.Status = StatusTriggered
		}

		return state
	default:
		return State{}
	}
}
