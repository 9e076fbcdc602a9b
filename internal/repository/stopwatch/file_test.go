package stopwatch

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/clockeroo/internal/domain/session"
)

// newRecord builds a record started at the given instant.
func newRecord(startedAt time.Time) *session.Record {
	return session.NewRecord(
		session.NewStopwatch(session.NewBaseline(startedAt)),
		4242,
		&session.Owner{
			Hostname: "workstation",
			Username: "o.shokin",
		},
	)
}

// TestFileRepository_NotFound verifies Load returns ErrNotFound for missing file.
func TestFileRepository_NotFound(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "missing.stopwatch"))
	r, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrNotFound)
	require.Nil(t, r)

	require.ErrorIs(t, repo.Delete(context.Background(), uuid.Nil), ErrNotFound)
}

// TestFileRepository_SaveLoad_Roundtrip ensures Save followed by Load returns an equal record.
func TestFileRepository_SaveLoad_Roundtrip(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "clockeroo.stopwatch")
	repo := NewFileRepository(file)
	want := newRecord(time.Now())

	require.NoError(t, repo.Save(context.Background(), want))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Equal(t, want.ID, got.ID)
	require.Equal(t, want.PID, got.PID)
	require.Equal(t, want.Owner, got.Owner)
	require.True(t, want.StartedAt.Equal(got.StartedAt))

	info, err := os.Stat(file)
	require.NoError(t, err)
	require.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	// No temporary files are left behind.
	entries, err := os.ReadDir(filepath.Dir(file))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

// TestFileRepository_ResumedElapsedMatches checks that elapsed time computed from a
// reloaded record agrees with the original session.
func TestFileRepository_ResumedElapsedMatches(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "clockeroo.stopwatch"))
	start := time.Date(2026, time.October, 19, 9, 15, 0, 123456789, time.UTC)
	original := session.NewStopwatch(session.NewBaseline(start))

	require.NoError(t, repo.Save(context.Background(), session.NewRecord(original, 1, nil)))

	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Nil(t, loaded.Owner)

	now := start.Add(3*time.Hour + 7*time.Second)
	require.Equal(t, original.Elapsed(now), loaded.Stopwatch().Elapsed(now))
}

// TestFileRepository_LastStartWins overwrites the record and refuses to delete the newer one
// on behalf of the older stopwatch.
func TestFileRepository_LastStartWins(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "clockeroo.stopwatch"))
	ctx := context.Background()

	first := newRecord(time.Now().Add(-time.Minute))
	second := newRecord(time.Now())

	require.NoError(t, repo.Save(ctx, first))
	require.NoError(t, repo.Save(ctx, second))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, second.ID, got.ID)

	require.ErrorIs(t, repo.Delete(ctx, first.ID), ErrSuperseded)
	require.NoError(t, repo.Delete(ctx, second.ID))

	_, err = repo.Load(ctx)
	require.ErrorIs(t, err, ErrNotFound)
}

// TestFileRepository_Corrupt reports unreadable content and still allows removal.
func TestFileRepository_Corrupt(t *testing.T) {
	t.Parallel()

	file := filepath.Join(t.TempDir(), "clockeroo.stopwatch")
	require.NoError(t, os.WriteFile(file, []byte(`Instant { tv_sec: 1 }`), 0o600))

	repo := NewFileRepository(file)

	_, err := repo.Load(context.Background())
	require.ErrorIs(t, err, ErrCorrupt)

	require.NoError(t, os.WriteFile(file, []byte(`{"id": "nope", "started_at": "x"}`), 0o600))

	_, err = repo.Load(context.Background())
	require.ErrorIs(t, err, ErrCorrupt)

	require.NoError(t, repo.Delete(context.Background(), uuid.New()))

	_, err = os.Stat(file)
	require.ErrorIs(t, err, os.ErrNotExist)
}

// TestFileRepository_SaveNil rejects a nil record.
func TestFileRepository_SaveNil(t *testing.T) {
	t.Parallel()

	repo := NewFileRepository(filepath.Join(t.TempDir(), "clockeroo.stopwatch"))
	require.Error(t, repo.Save(context.Background(), nil))
}
