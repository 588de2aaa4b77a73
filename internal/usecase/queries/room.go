package queries

import (
	"context"

	"hoteltrack/internal/infra"
	"hoteltrack/internal/pkg/errs"
)

var (
	ErrRoomTypeNotFound = errs.New("room type not found")
	ErrRoomNotFound     = errs.New("room not found")
)

// Read models (DTO for read side)
type RoomTypeView struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	MaxOccupancy   int     `json:"max_occupancy"`
	BasePriceCents int64   `json:"base_price_cents"`
	TaxRate        float64 `json:"tax_rate"`
}

type RoomView struct {
	ID           int64  `json:"id"`
	Number       string `json:"number"`
	Floor        int    `json:"floor"`
	RoomTypeID   int64  `json:"room_type_id"`
	RoomTypeName string `json:"room_type_name"`
	Status       string `json:"status"`
}

type RoomQueries interface {
	GetRoomType(ctx context.Context, id int64) (*RoomTypeView, error)
	ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error)
	GetRoom(ctx context.Context, id int64) (*RoomView, error)
	GetRoomByNumber(ctx context.Context, number string) (*RoomView, error)
	ListRooms(ctx context.Context, status string) ([]*RoomView, error)
}

type RoomReadStore interface {
	FindTypeByID(ctx context.Context, id int64) (*RoomTypeView, error)
	ListTypes(ctx context.Context) ([]*RoomTypeView, error)
	FindRoomByID(ctx context.Context, id int64) (*RoomView, error)
	FindRoomByNumber(ctx context.Context, number string) (*RoomView, error)
	// ListRooms filters by status when status is non-empty.
	ListRooms(ctx context.Context, status string) ([]*RoomView, error)
}

type roomQueriesImpl struct {
	readStore RoomReadStore
}

func NewRoomQueries(readStore RoomReadStore) RoomQueries {
	return &roomQueriesImpl{readStore: readStore}
}

func (q *roomQueriesImpl) GetRoomType(ctx context.Context, id int64) (*RoomTypeView, error) {
	roomType, err := q.readStore.FindTypeByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomTypeNotFound
		}
		return nil, err
	}
	return roomType, nil
}

func (q *roomQueriesImpl) ListRoomTypes(ctx context.Context) ([]*RoomTypeView, error) {
	return q.readStore.ListTypes(ctx)
}

func (q *roomQueriesImpl) GetRoom(ctx context.Context, id int64) (*RoomView, error) {
	rm, err := q.readStore.FindRoomByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (q *roomQueriesImpl) GetRoomByNumber(ctx context.Context, number string) (*RoomView, error) {
	rm, err := q.readStore.FindRoomByNumber(ctx, number)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return rm, nil
}

func (q *roomQueriesImpl) ListRooms(ctx context.Context, status string) ([]*RoomView, error) {
	return q.readStore.ListRooms(ctx, status)
}
