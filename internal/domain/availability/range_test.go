//go:build unit

package availability_test

import (
	"testing"
	"time"

	"hoteltrack/internal/domain/availability"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func mustRange(t *testing.T, checkIn, checkOut time.Time) availability.DateRange {
	t.Helper()
	now := day(2026, 1, 1)
	r, err := availability.NewDateRange(checkIn, checkOut, now)
	require.NoError(t, err)
	return r
}

func TestNewDateRange(t *testing.T) {
	now := day(2026, 3, 10)

	t.Run("valid range", func(t *testing.T) {
		r, err := availability.NewDateRange(day(2026, 3, 10), day(2026, 3, 13), now)
		require.NoError(t, err)
		assert.Equal(t, 3, r.Nights())
	})

	t.Run("normalizes times to midnight UTC", func(t *testing.T) {
		in := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
		out := time.Date(2026, 3, 12, 9, 0, 0, 0, time.UTC)
		r, err := availability.NewDateRange(in, out, now)
		require.NoError(t, err)
		assert.Equal(t, day(2026, 3, 10), r.CheckIn())
		assert.Equal(t, day(2026, 3, 12), r.CheckOut())
		assert.Equal(t, 2, r.Nights())
	})

	t.Run("same-day check-in and check-out", func(t *testing.T) {
		_, err := availability.NewDateRange(day(2026, 3, 10), day(2026, 3, 10), now)
		assert.ErrorIs(t, err, availability.ErrInvalidDateRange)
	})

	t.Run("check-out before check-in", func(t *testing.T) {
		_, err := availability.NewDateRange(day(2026, 3, 13), day(2026, 3, 10), now)
		assert.ErrorIs(t, err, availability.ErrInvalidDateRange)
	})

	t.Run("check-in in the past", func(t *testing.T) {
		_, err := availability.NewDateRange(day(2026, 3, 9), day(2026, 3, 12), now)
		assert.ErrorIs(t, err, availability.ErrDateRangeInPast)
	})

	t.Run("check-in today is allowed", func(t *testing.T) {
		lateToday := time.Date(2026, 3, 10, 23, 59, 0, 0, time.UTC)
		_, err := availability.NewDateRange(day(2026, 3, 10), day(2026, 3, 11), lateToday)
		assert.NoError(t, err)
	})
}

func TestDateRangeOverlaps(t *testing.T) {
	base := mustRange(t, day(2026, 5, 10), day(2026, 5, 15))

	cases := []struct {
		name     string
		other    availability.DateRange
		overlaps bool
	}{
		{"identical", mustRange(t, day(2026, 5, 10), day(2026, 5, 15)), true},
		{"contained", mustRange(t, day(2026, 5, 11), day(2026, 5, 13)), true},
		{"containing", mustRange(t, day(2026, 5, 8), day(2026, 5, 20)), true},
		{"partial left", mustRange(t, day(2026, 5, 8), day(2026, 5, 11)), true},
		{"partial right", mustRange(t, day(2026, 5, 14), day(2026, 5, 18)), true},
		{"touching at check-out", mustRange(t, day(2026, 5, 15), day(2026, 5, 18)), false},
		{"touching at check-in", mustRange(t, day(2026, 5, 8), day(2026, 5, 10)), false},
		{"disjoint before", mustRange(t, day(2026, 5, 1), day(2026, 5, 5)), false},
		{"disjoint after", mustRange(t, day(2026, 5, 20), day(2026, 5, 25)), false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.overlaps, base.Overlaps(tc.other))
			assert.Equal(t, tc.overlaps, tc.other.Overlaps(base))
		})
	}
}

func TestBlockMatches(t *testing.T) {
	dates := mustRange(t, day(2026, 6, 1), day(2026, 6, 4))
	b := availability.ReconstructBlock(7, 42, dates)

	assert.True(t, b.Matches(42, dates))
	assert.False(t, b.Matches(43, dates))
	assert.False(t, b.Matches(42, mustRange(t, day(2026, 6, 1), day(2026, 6, 5))))
}
