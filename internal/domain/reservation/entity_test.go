//go:build unit

package reservation_test

import (
	"testing"
	"time"

	"hoteltrack/internal/domain/availability"
	"hoteltrack/internal/domain/reservation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 2, 1, 14, 0, 0, 0, time.UTC)

func testDates(t *testing.T) availability.DateRange {
	t.Helper()
	r, err := availability.NewDateRange(
		time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC),
		now,
	)
	require.NoError(t, err)
	return r
}

func newTestReservation(t *testing.T) *reservation.Reservation {
	t.Helper()
	r, err := reservation.NewReservation(1, 2, testDates(t), 2, "  late arrival ", now)
	require.NoError(t, err)
	return r
}

func TestNewReservation(t *testing.T) {
	t.Run("starts reserved", func(t *testing.T) {
		r := newTestReservation(t)
		assert.Equal(t, reservation.StatusReserved, r.Status())
		assert.Nil(t, r.AssignedRoomID())
		assert.Equal(t, "late arrival", r.SpecialRequests())
		assert.Equal(t, 3, r.Dates().Nights())
	})

	t.Run("rejects non-positive occupancy", func(t *testing.T) {
		_, err := reservation.NewReservation(1, 2, testDates(t), 0, "", now)
		assert.ErrorIs(t, err, reservation.ErrNonPositiveOccupancy)
	})
}

func TestReservationTransitions(t *testing.T) {
	t.Run("reserved to confirmed", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Confirm(now))
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("confirm is idempotent", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Confirm(now))
		require.NoError(t, r.Confirm(now))
		assert.Equal(t, reservation.StatusConfirmed, r.Status())
	})

	t.Run("cancel from reserved and confirmed", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Cancel(now))
		assert.Equal(t, reservation.StatusCancelled, r.Status())

		r = newTestReservation(t)
		require.NoError(t, r.Confirm(now))
		require.NoError(t, r.Cancel(now))
		assert.Equal(t, reservation.StatusCancelled, r.Status())
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Cancel(now))
		require.NoError(t, r.Cancel(now))
	})

	t.Run("no-show requires confirmed", func(t *testing.T) {
		r := newTestReservation(t)
		assert.ErrorIs(t, r.MarkNoShow(now), reservation.ErrInvalidTransition)

		require.NoError(t, r.Confirm(now))
		require.NoError(t, r.MarkNoShow(now))
		assert.Equal(t, reservation.StatusNoShow, r.Status())
	})

	t.Run("terminal states admit nothing", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Cancel(now))

		assert.ErrorIs(t, r.Confirm(now), reservation.ErrInvalidTransition)
		assert.ErrorIs(t, r.CheckIn(now), reservation.ErrInvalidTransition)
		assert.ErrorIs(t, r.MarkNoShow(now), reservation.ErrInvalidTransition)
	})

	t.Run("check-out requires checked-in", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Confirm(now))
		assert.ErrorIs(t, r.CheckOut(now), reservation.ErrInvalidTransition)

		require.NoError(t, r.CheckIn(now))
		require.NoError(t, r.CheckOut(now))
		assert.Equal(t, reservation.StatusCheckedOut, r.Status())
		assert.True(t, r.Status().IsTerminal())
	})
}

func TestReservationRoomAssignment(t *testing.T) {
	t.Run("assign and release", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.AssignRoom(7, now))
		require.NotNil(t, r.AssignedRoomID())
		assert.Equal(t, int64(7), *r.AssignedRoomID())

		r.ReleaseRoom(now)
		assert.Nil(t, r.AssignedRoomID())
	})

	t.Run("no assignment once checked in or terminal", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Confirm(now))
		require.NoError(t, r.CheckIn(now))
		assert.ErrorIs(t, r.AssignRoom(7, now), reservation.ErrInvalidTransition)

		r = newTestReservation(t)
		require.NoError(t, r.Cancel(now))
		assert.ErrorIs(t, r.AssignRoom(7, now), reservation.ErrInvalidTransition)
	})
}

func TestReservationModify(t *testing.T) {
	newDates, err := availability.NewDateRange(
		time.Date(2026, 2, 11, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 16, 0, 0, 0, 0, time.UTC),
		now,
	)
	require.NoError(t, err)

	t.Run("while pending", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Modify(newDates, 3, now))
		assert.Equal(t, 5, r.Dates().Nights())
		assert.Equal(t, 3, r.Occupancy())
	})

	t.Run("rejected after check-in", func(t *testing.T) {
		r := newTestReservation(t)
		require.NoError(t, r.Confirm(now))
		require.NoError(t, r.CheckIn(now))
		assert.ErrorIs(t, r.Modify(newDates, 3, now), reservation.ErrNotModifiable)
	})

	t.Run("rejects non-positive occupancy", func(t *testing.T) {
		r := newTestReservation(t)
		assert.ErrorIs(t, r.Modify(newDates, 0, now), reservation.ErrNonPositiveOccupancy)
	})
}
