//go:build unit

package stay_test

import (
	"testing"
	"time"

	"innkeeper/internal/domain/stay"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(d int) time.Time {
	return time.Date(2026, time.March, d, 0, 0, 0, 0, time.UTC)
}

func mustInterval(t *testing.T, start, end time.Time) stay.Interval {
	t.Helper()
	iv, err := stay.NewInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestNewInterval(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		iv, err := stay.NewInterval(day(1), day(3))
		require.NoError(t, err)
		assert.Equal(t, day(1), iv.Start())
		assert.Equal(t, day(3), iv.End())
		assert.False(t, iv.IsZero())
	})

	t.Run("degenerate range", func(t *testing.T) {
		_, err := stay.NewInterval(day(5), day(5))
		assert.ErrorIs(t, err, stay.ErrInvalidInterval)
	})

	t.Run("inverted range", func(t *testing.T) {
		_, err := stay.NewInterval(day(5), day(3))
		assert.ErrorIs(t, err, stay.ErrInvalidInterval)
	})
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name     string
		a, b     stay.Interval
		overlaps bool
	}{
		{
			name:     "back to back stays do not overlap",
			a:        mustInterval(t, day(1), day(3)),
			b:        mustInterval(t, day(3), day(5)),
			overlaps: false,
		},
		{
			name:     "one night shared",
			a:        mustInterval(t, day(1), day(3)),
			b:        mustInterval(t, day(2), day(4)),
			overlaps: true,
		},
		{
			name:     "disjoint",
			a:        mustInterval(t, day(1), day(2)),
			b:        mustInterval(t, day(10), day(12)),
			overlaps: false,
		},
		{
			name:     "contained",
			a:        mustInterval(t, day(1), day(10)),
			b:        mustInterval(t, day(4), day(5)),
			overlaps: true,
		},
		{
			name:     "identical",
			a:        mustInterval(t, day(2), day(6)),
			b:        mustInterval(t, day(2), day(6)),
			overlaps: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, tc.a.Overlaps(tc.b))
			// Overlap is symmetric.
			assert.Equal(t, tc.overlaps, tc.b.Overlaps(tc.a))
		})
	}
}

func TestContains(t *testing.T) {
	iv := mustInterval(t, day(10), day(13))

	assert.True(t, iv.Contains(day(10)), "start is included")
	assert.True(t, iv.Contains(day(12)))
	assert.False(t, iv.Contains(day(13)), "checkout day is excluded")
	assert.False(t, iv.Contains(day(9)))
}

func TestNights(t *testing.T) {
	t.Run("whole days", func(t *testing.T) {
		assert.Equal(t, 3, stay.Nights(day(1), day(4)))
	})

	t.Run("partial day rounds up", func(t *testing.T) {
		checkIn := day(1).Add(15 * time.Hour)
		checkOut := day(3).Add(11 * time.Hour)
		assert.Equal(t, 2, stay.Nights(checkIn, checkOut))
	})

	t.Run("same day clamps to one night", func(t *testing.T) {
		assert.Equal(t, 1, stay.Nights(day(1), day(1)))
	})

	t.Run("inverted clamps to one night", func(t *testing.T) {
		assert.Equal(t, 1, stay.Nights(day(4), day(1)))
	})
}

func TestDayOf(t *testing.T) {
	at := time.Date(2026, time.March, 7, 14, 30, 0, 0, time.UTC)
	iv := stay.DayOf(at)

	assert.Equal(t, time.Date(2026, time.March, 7, 0, 0, 0, 0, time.UTC), iv.Start())
	assert.Equal(t, time.Date(2026, time.March, 8, 0, 0, 0, 0, time.UTC), iv.End())
	assert.True(t, iv.Contains(at))
	assert.True(t, iv.Contains(time.Date(2026, time.March, 7, 23, 59, 59, 0, time.UTC)))
	assert.False(t, iv.Contains(iv.End()))
}
