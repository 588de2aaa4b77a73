package stay

import (
	"errors"
	"time"
)

var (
	ErrAlreadyCheckedOut = errors.New("stay is already checked out")
)

type Status string

const (
	StatusActive     Status = "Active"
	StatusCheckedOut Status = "Checked-Out"
)

func (s Status) String() string {
	return string(s)
}

// Stay records actual physical occupancy of a room by a guest. It is opened
// at check-in (from a confirmed reservation or as a walk-in) and closed
// exactly once at check-out; closed stays are immutable.
type Stay struct {
	id            int64
	reservationID *int64
	guestID       int64
	roomID        int64
	checkInTime   time.Time
	checkOutTime  *time.Time
	status        Status
	keyCardToken  string
}

// NewStay opens an active stay. reservationID is nil for walk-ins.
func NewStay(reservationID *int64, guestID, roomID int64, keyCardToken string, now time.Time) *Stay {
	return &Stay{
		reservationID: reservationID,
		guestID:       guestID,
		roomID:        roomID,
		checkInTime:   now,
		status:        StatusActive,
		keyCardToken:  keyCardToken,
	}
}

func ReconstructStay(
	id int64,
	reservationID *int64,
	guestID, roomID int64,
	checkInTime time.Time,
	checkOutTime *time.Time,
	status Status,
	keyCardToken string,
) *Stay {
	return &Stay{
		id:            id,
		reservationID: reservationID,
		guestID:       guestID,
		roomID:        roomID,
		checkInTime:   checkInTime,
		checkOutTime:  checkOutTime,
		status:        status,
		keyCardToken:  keyCardToken,
	}
}

func (s *Stay) ID() int64                { return s.id }
func (s *Stay) ReservationID() *int64    { return s.reservationID }
func (s *Stay) GuestID() int64           { return s.guestID }
func (s *Stay) RoomID() int64            { return s.roomID }
func (s *Stay) CheckInTime() time.Time   { return s.checkInTime }
func (s *Stay) CheckOutTime() *time.Time { return s.checkOutTime }
func (s *Stay) Status() Status           { return s.status }
func (s *Stay) KeyCardToken() string     { return s.keyCardToken }

func (s *Stay) IsActive() bool {
	return s.status == StatusActive
}

// Close flips the stay to Checked-Out. Closing an already closed stay
// returns ErrAlreadyCheckedOut so the caller can treat it as a no-op
// without regenerating any billing state.
func (s *Stay) Close(now time.Time) error {
	if s.status == StatusCheckedOut {
		return ErrAlreadyCheckedOut
	}
	s.status = StatusCheckedOut
	s.checkOutTime = &now
	return nil
}

// Nights is the number of chargeable nights between check-in and the given
// checkout instant, charged per started night with a one-night minimum.
func (s *Stay) Nights(checkout time.Time) int {
	nights := int(checkout.Sub(s.checkInTime).Hours() / 24)
	if checkout.Sub(s.checkInTime)%(24*time.Hour) > 0 {
		nights++
	}
	if nights < 1 {
		nights = 1
	}
	return nights
}
