package queries

import (
	"context"
	"time"

	"hoteltrack/internal/infra"
	"hoteltrack/internal/pkg/errs"
)

var (
	ErrStayNotFound = errs.New("stay not found")
	ErrNoActiveStay = errs.New("no active stay for room")
)

type StayView struct {
	ID            int64      `json:"id"`
	ReservationID *int64     `json:"reservation_id,omitempty"`
	GuestID       int64      `json:"guest_id"`
	GuestName     string     `json:"guest_name"`
	RoomID        int64      `json:"room_id"`
	RoomNumber    string     `json:"room_number"`
	CheckInTime   time.Time  `json:"check_in_time"`
	CheckOutTime  *time.Time `json:"check_out_time,omitempty"`
	Status        string     `json:"status"`
	KeyCardToken  string     `json:"key_card_token"`
}

type ChargeView struct {
	ID          int64     `json:"id"`
	StayID      int64     `json:"stay_id"`
	ServiceType string    `json:"service_type"`
	Description string    `json:"description,omitempty"`
	AmountCents int64     `json:"amount_cents"`
	RecordedAt  time.Time `json:"recorded_at"`
}

type StayQueries interface {
	GetStay(ctx context.Context, id int64) (*StayView, error)
	// ActiveStayByRoom resolves the in-house stay for a room number, the
	// front-desk lookup path.
	ActiveStayByRoom(ctx context.Context, roomNumber string) (*StayView, error)
	ListActiveStays(ctx context.Context) ([]*StayView, error)
	ListStaysByGuest(ctx context.Context, guestID int64) ([]*StayView, error)
	ListCharges(ctx context.Context, stayID int64) ([]*ChargeView, error)
	// OutstandingBalance is zero until the stay's invoice has been issued.
	OutstandingBalance(ctx context.Context, stayID int64) (int64, error)
}

type StayReadStore interface {
	FindByID(ctx context.Context, id int64) (*StayView, error)
	FindActiveByRoomNumber(ctx context.Context, roomNumber string) (*StayView, error)
	ListActive(ctx context.Context) ([]*StayView, error)
	FindByGuestID(ctx context.Context, guestID int64) ([]*StayView, error)
	ListChargesByStay(ctx context.Context, stayID int64) ([]*ChargeView, error)
}

type stayQueriesImpl struct {
	readStore StayReadStore
	invoices  InvoiceReadStore
}

func NewStayQueries(readStore StayReadStore, invoices InvoiceReadStore) StayQueries {
	return &stayQueriesImpl{readStore: readStore, invoices: invoices}
}

func (q *stayQueriesImpl) GetStay(ctx context.Context, id int64) (*StayView, error) {
	st, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStayNotFound
		}
		return nil, err
	}
	return st, nil
}

func (q *stayQueriesImpl) ActiveStayByRoom(ctx context.Context, roomNumber string) (*StayView, error) {
	st, err := q.readStore.FindActiveByRoomNumber(ctx, roomNumber)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrNoActiveStay
		}
		return nil, err
	}
	return st, nil
}

func (q *stayQueriesImpl) ListActiveStays(ctx context.Context) ([]*StayView, error) {
	return q.readStore.ListActive(ctx)
}

func (q *stayQueriesImpl) ListStaysByGuest(ctx context.Context, guestID int64) ([]*StayView, error) {
	return q.readStore.FindByGuestID(ctx, guestID)
}

func (q *stayQueriesImpl) ListCharges(ctx context.Context, stayID int64) ([]*ChargeView, error) {
	if _, err := q.readStore.FindByID(ctx, stayID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrStayNotFound
		}
		return nil, err
	}
	return q.readStore.ListChargesByStay(ctx, stayID)
}

func (q *stayQueriesImpl) OutstandingBalance(ctx context.Context, stayID int64) (int64, error) {
	if _, err := q.readStore.FindByID(ctx, stayID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, ErrStayNotFound
		}
		return 0, err
	}

	inv, err := q.invoices.FindByStayID(ctx, stayID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return inv.OutstandingCents, nil
}
