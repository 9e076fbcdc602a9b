package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// TestOwnerClone verifies that Clone returns a deep copy and handles nil safely.
func TestOwnerClone(t *testing.T) {
	t.Parallel()
	require.Nil(t, (*Owner)(nil).Clone())

	o := &Owner{
		Hostname: "workstation",
		Username: "o.shokin",
	}

	c := o.Clone()

	require.Equal(t, o, c)
	require.NotSame(t, o, c)
	require.Equal(t, "o.shokin@workstation", o.String())
	require.Equal(t, "<unknown>", (*Owner)(nil).String())
}

// TestNewRecord captures the wall-clock start and deep-copies the owner.
func TestNewRecord(t *testing.T) {
	t.Parallel()

	start := time.Now()
	owner := &Owner{Hostname: "workstation", Username: "o.shokin"}
	sw := NewStopwatch(NewBaseline(start))

	r := NewRecord(sw, 1234, owner)

	require.NotEmpty(t, r.ID)
	require.Equal(t, 1234, r.PID)
	require.True(t, r.StartedAt.Equal(start))
	require.Equal(t, start.Round(0), r.StartedAt)
	require.NotSame(t, owner, r.Owner)

	c := r.Clone()
	require.Equal(t, r, c)
	require.NotSame(t, r.Owner, c.Owner)
	require.NotEqual(t, r.ID, NewRecord(sw, 1234, owner).ID)
}
