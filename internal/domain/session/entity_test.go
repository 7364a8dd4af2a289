package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationActiveGrowsWithNow(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	s := Session{StartTime: start}

	d1, ok := Duration(s, start.Add(1*time.Hour))
	require.True(t, ok, "expected ok for active session")
	d2, ok := Duration(s, start.Add(3*time.Hour))
	require.True(t, ok, "expected ok for active session")

	assert.Equal(t, 1*time.Hour, d1)
	assert.Equal(t, 3*time.Hour, d2)
	assert.Greater(t, d2, d1, "active duration must grow as now advances")
}

func TestDurationClosedIgnoresNow(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Hour)
	s := Session{StartTime: start, EndTime: &end, Status: StatusClosed}

	for _, now := range []time.Time{end, end.Add(time.Hour), end.Add(240 * time.Hour)} {
		d, ok := Duration(s, now)
		require.True(t, ok, "expected ok for closed session at now=%v", now)
		assert.Equal(t, 4*time.Hour, d, "closed duration at now=%v", now)
	}
}

func TestDurationNeverNegative(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	s := Session{StartTime: start}

	d, ok := Duration(s, start.Add(-time.Minute))
	assert.False(t, ok, "expected ok=false when start is after now")
	assert.Equal(t, time.Duration(0), d)

	// A closed session with a corrupted end before start is the same case.
	badEnd := start.Add(-2 * time.Hour)
	closed := Session{StartTime: start, EndTime: &badEnd}
	d, ok = Duration(closed, start.Add(8*time.Hour))
	assert.False(t, ok)
	assert.Equal(t, time.Duration(0), d)
}

func TestDurationZeroLengthSession(t *testing.T) {
	start := time.Date(2026, 3, 10, 8, 0, 0, 0, time.UTC)
	s := Session{StartTime: start, EndTime: &start}

	d, ok := Duration(s, start.Add(time.Hour))
	require.True(t, ok, "expected ok for zero-length session")
	assert.Equal(t, time.Duration(0), d)
}
