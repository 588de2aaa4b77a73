package queries

import (
	"context"
	"time"

	"hoteltrack/internal/domain/reservation"
	"hoteltrack/internal/infra"
	"hoteltrack/internal/pkg/errs"
)

var (
	ErrReservationNotFound = errs.New("reservation not found")
	ErrInvalidStatusFilter = errs.New("invalid reservation status filter")
)

type ReservationView struct {
	ID                 int64     `json:"id"`
	GuestID            int64     `json:"guest_id"`
	GuestName          string    `json:"guest_name"`
	RoomTypeID         int64     `json:"room_type_id"`
	RoomTypeName       string    `json:"room_type_name"`
	AssignedRoomID     *int64    `json:"assigned_room_id,omitempty"`
	AssignedRoomNumber *string   `json:"assigned_room_number,omitempty"`
	CheckIn            time.Time `json:"check_in"`
	CheckOut           time.Time `json:"check_out"`
	Nights             int       `json:"nights"`
	Occupancy          int       `json:"occupancy"`
	Status             string    `json:"status"`
	CreatedAt          time.Time `json:"created_at"`
}

type ReservationQueries interface {
	GetByID(ctx context.Context, id int64) (*ReservationView, error)
	// ListByStatus returns all reservations when status is empty.
	ListByStatus(ctx context.Context, status string) ([]*ReservationView, error)
	ListByGuest(ctx context.Context, guestID int64) ([]*ReservationView, error)
}

type ReservationReadStore interface {
	FindByID(ctx context.Context, id int64) (*ReservationView, error)
	FindByStatus(ctx context.Context, status string) ([]*ReservationView, error)
	FindByGuestID(ctx context.Context, guestID int64) ([]*ReservationView, error)
}

type reservationQueriesImpl struct {
	readStore ReservationReadStore
}

func NewReservationQueries(readStore ReservationReadStore) ReservationQueries {
	return &reservationQueriesImpl{readStore: readStore}
}

func (q *reservationQueriesImpl) GetByID(ctx context.Context, id int64) (*ReservationView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *reservationQueriesImpl) ListByStatus(ctx context.Context, status string) ([]*ReservationView, error) {
	if status != "" && !reservation.Status(status).IsValid() {
		return nil, ErrInvalidStatusFilter
	}
	return q.readStore.FindByStatus(ctx, status)
}

func (q *reservationQueriesImpl) ListByGuest(ctx context.Context, guestID int64) ([]*ReservationView, error) {
	return q.readStore.FindByGuestID(ctx, guestID)
}
