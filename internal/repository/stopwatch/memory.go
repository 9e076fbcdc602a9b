package stopwatch

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/oshokin/clockeroo/internal/domain/session"
)

// MemoryRepository keeps the record in memory. It shares FileRepository's
// semantics and exists so that callers can run without touching the filesystem.
type MemoryRepository struct {
	// record is the stored record, nil when empty.
	record *session.Record
	// mu protects record.
	mu sync.Mutex
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return new(MemoryRepository)
}

// Load implements Repository.
func (m *MemoryRepository) Load(context.Context) (*session.Record, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.record == nil {
		return nil, ErrNotFound
	}

	return m.record.Clone(), nil
}

// Save implements Repository.
func (m *MemoryRepository) Save(_ context.Context, record *session.Record) error {
	if record == nil {
		return errRecordIsNotSet
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.record = record.Clone()

	return nil
}

// Delete implements Repository.
func (m *MemoryRepository) Delete(_ context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	switch {
	case m.record == nil:
		return ErrNotFound
	case id != uuid.Nil && m.record.ID != id:
		return ErrSuperseded
	}

	m.record = nil

	return nil
}
