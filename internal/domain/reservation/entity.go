package reservation

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"hoteltrack/internal/domain/availability"
)

var (
	ErrNonPositiveOccupancy = errors.New("occupancy must be greater than zero")
	ErrInvalidTransition    = errors.New("invalid reservation status transition")
	ErrNoRoomAssigned       = errors.New("reservation has no assigned room")
	ErrNotModifiable        = errors.New("reservation can no longer be modified")
)

// Reservation is a guest's claim on a room type for a date range, prior to
// occupancy. The status machine:
//
//	Reserved   --confirm-->    Confirmed
//	Reserved   --cancel-->     Cancelled
//	Confirmed  --cancel-->     Cancelled
//	Confirmed  --markNoShow--> No-Show
//	Confirmed  --checkIn-->    Checked-In
//	Checked-In --checkOut-->   Checked-Out
//
// Confirm, Cancel, and MarkNoShow are idempotent: applying them to a
// reservation already in the target state is a no-op.
type Reservation struct {
	id              int64
	guestID         int64
	roomTypeID      int64
	assignedRoomID  *int64
	dates           availability.DateRange
	occupancy       int
	status          Status
	specialRequests string
	createdAt       time.Time
	updatedAt       time.Time
}

func NewReservation(guestID, roomTypeID int64, dates availability.DateRange, occupancy int, specialRequests string, now time.Time) (*Reservation, error) {
	if occupancy <= 0 {
		return nil, ErrNonPositiveOccupancy
	}

	return &Reservation{
		guestID:         guestID,
		roomTypeID:      roomTypeID,
		dates:           dates,
		occupancy:       occupancy,
		status:          StatusReserved,
		specialRequests: strings.TrimSpace(specialRequests),
		createdAt:       now,
		updatedAt:       now,
	}, nil
}

func ReconstructReservation(
	id, guestID, roomTypeID int64,
	assignedRoomID *int64,
	dates availability.DateRange,
	occupancy int,
	status Status,
	specialRequests string,
	createdAt, updatedAt time.Time,
) *Reservation {
	return &Reservation{
		id:              id,
		guestID:         guestID,
		roomTypeID:      roomTypeID,
		assignedRoomID:  assignedRoomID,
		dates:           dates,
		occupancy:       occupancy,
		status:          status,
		specialRequests: specialRequests,
		createdAt:       createdAt,
		updatedAt:       updatedAt,
	}
}

func (r *Reservation) ID() int64                     { return r.id }
func (r *Reservation) GuestID() int64                { return r.guestID }
func (r *Reservation) RoomTypeID() int64             { return r.roomTypeID }
func (r *Reservation) AssignedRoomID() *int64        { return r.assignedRoomID }
func (r *Reservation) Dates() availability.DateRange { return r.dates }
func (r *Reservation) Occupancy() int                { return r.occupancy }
func (r *Reservation) Status() Status                { return r.status }
func (r *Reservation) SpecialRequests() string       { return r.specialRequests }
func (r *Reservation) CreatedAt() time.Time          { return r.createdAt }
func (r *Reservation) UpdatedAt() time.Time          { return r.updatedAt }

// Confirm moves Reserved to Confirmed. Already Confirmed is a no-op.
func (r *Reservation) Confirm(now time.Time) error {
	if r.status == StatusConfirmed {
		return nil
	}
	if r.status != StatusReserved {
		return transitionError(r.status, StatusConfirmed)
	}
	r.setStatus(StatusConfirmed, now)
	return nil
}

// Cancel moves Reserved or Confirmed to Cancelled. Already Cancelled is a
// no-op.
func (r *Reservation) Cancel(now time.Time) error {
	if r.status == StatusCancelled {
		return nil
	}
	if r.status != StatusReserved && r.status != StatusConfirmed {
		return transitionError(r.status, StatusCancelled)
	}
	r.setStatus(StatusCancelled, now)
	return nil
}

// MarkNoShow moves Confirmed to No-Show. Already No-Show is a no-op.
func (r *Reservation) MarkNoShow(now time.Time) error {
	if r.status == StatusNoShow {
		return nil
	}
	if r.status != StatusConfirmed {
		return transitionError(r.status, StatusNoShow)
	}
	r.setStatus(StatusNoShow, now)
	return nil
}

// AssignRoom binds a concrete room without changing the reservation status.
func (r *Reservation) AssignRoom(roomID int64, now time.Time) error {
	if r.status.IsTerminal() || r.status == StatusCheckedIn {
		return transitionError(r.status, r.status)
	}
	r.assignedRoomID = &roomID
	r.updatedAt = now
	return nil
}

// ReleaseRoom drops the room binding; used mid-reassignment.
func (r *Reservation) ReleaseRoom(now time.Time) {
	r.assignedRoomID = nil
	r.updatedAt = now
}

// CheckIn is performed by the stay lifecycle when an active stay is opened.
// Confirmed status is deliberately not required here: callers are expected
// to have confirmed and assigned a room first.
func (r *Reservation) CheckIn(now time.Time) error {
	if r.status == StatusCheckedIn {
		return nil
	}
	if r.status.IsTerminal() {
		return transitionError(r.status, StatusCheckedIn)
	}
	r.setStatus(StatusCheckedIn, now)
	return nil
}

// CheckOut is performed by the stay lifecycle at checkout.
func (r *Reservation) CheckOut(now time.Time) error {
	if r.status == StatusCheckedOut {
		return nil
	}
	if r.status != StatusCheckedIn {
		return transitionError(r.status, StatusCheckedOut)
	}
	r.setStatus(StatusCheckedOut, now)
	return nil
}

// Modify updates dates and occupancy while the reservation is still pending
// (Reserved or Confirmed).
func (r *Reservation) Modify(dates availability.DateRange, occupancy int, now time.Time) error {
	if r.status != StatusReserved && r.status != StatusConfirmed {
		return ErrNotModifiable
	}
	if occupancy <= 0 {
		return ErrNonPositiveOccupancy
	}
	r.dates = dates
	r.occupancy = occupancy
	r.updatedAt = now
	return nil
}

func (r *Reservation) setStatus(status Status, now time.Time) {
	r.status = status
	r.updatedAt = now
}

func transitionError(from, to Status) error {
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, from, to)
}
