package room

import (
	"errors"
	"strings"
)

var (
	ErrEmptyRoomNumber = errors.New("room number cannot be empty")
	ErrInvalidFloor    = errors.New("floor number must be at least 1")
	ErrInvalidStatus   = errors.New("invalid room status")
	ErrRoomOccupied    = errors.New("room is occupied")
)

type Status string

const (
	StatusAvailable     Status = "Available"
	StatusOccupied      Status = "Occupied"
	StatusUnderCleaning Status = "UnderCleaning"
	StatusOutOfService  Status = "OutOfService"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusAvailable, StatusOccupied, StatusUnderCleaning, StatusOutOfService:
		return true
	default:
		return false
	}
}

// Room is a concrete, numbered room of some RoomType. Created once; only
// its status changes afterwards, driven by reservation and stay transitions.
type Room struct {
	id         int64
	number     string
	floor      int
	roomTypeID int64
	status     Status
}

func NewRoom(number string, floor int, roomTypeID int64) (*Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, ErrEmptyRoomNumber
	}
	if floor < 1 {
		return nil, ErrInvalidFloor
	}

	return &Room{
		number:     number,
		floor:      floor,
		roomTypeID: roomTypeID,
		status:     StatusAvailable,
	}, nil
}

func ReconstructRoom(id int64, number string, floor int, roomTypeID int64, status Status) *Room {
	return &Room{
		id:         id,
		number:     number,
		floor:      floor,
		roomTypeID: roomTypeID,
		status:     status,
	}
}

func (r *Room) ID() int64         { return r.id }
func (r *Room) Number() string    { return r.number }
func (r *Room) Floor() int        { return r.floor }
func (r *Room) RoomTypeID() int64 { return r.roomTypeID }
func (r *Room) Status() Status    { return r.status }

func (r *Room) IsOccupied() bool {
	return r.status == StatusOccupied
}

func (r *Room) SetStatus(status Status) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	r.status = status
	return nil
}

// CanDelete guards room deletion: an occupied room cannot be removed.
func (r *Room) CanDelete() error {
	if r.IsOccupied() {
		return ErrRoomOccupied
	}
	return nil
}
