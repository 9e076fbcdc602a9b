package stopwatch

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/oshokin/clockeroo/internal/domain/session"
)

// Repository defines persistence operations for the stopwatch record.
type Repository interface {
	// Load returns the current record or ErrNotFound.
	Load(ctx context.Context) (*session.Record, error)
	// Save replaces any existing record.
	Save(ctx context.Context, record *session.Record) error
	// Delete removes the record if its ID is id. uuid.Nil removes any record.
	// It returns ErrNotFound when there is nothing to remove and ErrSuperseded
	// when the stored record belongs to a different stopwatch.
	Delete(ctx context.Context, id uuid.UUID) error
}

var (
	// ErrNotFound is returned when no stopwatch record exists.
	ErrNotFound = errors.New("stopwatch record not found")
	// ErrSuperseded is returned when the stored record was replaced by a newer stopwatch.
	ErrSuperseded = errors.New("stopwatch record superseded by a newer start")
	// errRecordIsNotSet is returned when a nil record is saved.
	errRecordIsNotSet = errors.New("stopwatch record is not set")
)
