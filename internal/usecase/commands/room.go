package commands

import (
	"context"
	"errors"
	"log/slog"

	"hoteltrack/internal/domain/room"
	"hoteltrack/internal/infra"
	"hoteltrack/internal/pkg/errs"
)

type CreateRoomTypeParams struct {
	Name           string
	Description    string
	MaxOccupancy   int
	BasePriceCents int64
	TaxRate        float64
}

type CreateRoomParams struct {
	Number     string
	Floor      int
	RoomTypeID int64
}

type RoomCommands interface {
	CreateRoomType(ctx context.Context, params CreateRoomTypeParams) (*room.RoomType, error)
	UpdateRoomPricing(ctx context.Context, roomTypeID, basePriceCents int64, taxRate float64) (*room.RoomType, error)
	CreateRoom(ctx context.Context, params CreateRoomParams) (*room.Room, error)
	SetRoomStatus(ctx context.Context, roomID int64, status room.Status) (*room.Room, error)
	DeleteRoom(ctx context.Context, roomID int64) error
}

type roomCommands struct {
	roomTypes RoomTypeRepository
	rooms     RoomRepository
	logger    *slog.Logger
}

func NewRoomCommands(roomTypes RoomTypeRepository, rooms RoomRepository, logger *slog.Logger) RoomCommands {
	return &roomCommands{roomTypes: roomTypes, rooms: rooms, logger: logger}
}

func (c *roomCommands) CreateRoomType(ctx context.Context, params CreateRoomTypeParams) (*room.RoomType, error) {
	roomType, err := room.NewRoomType(params.Name, params.Description, params.MaxOccupancy, params.BasePriceCents, params.TaxRate)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	// Type names are unique case-insensitively, which the store's unique
	// index cannot express on its own.
	if _, err := c.roomTypes.FindByName(ctx, params.Name); err == nil {
		return nil, errs.Mark(errs.Newf("room type %q already exists", params.Name), ErrDuplicateRoomType)
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	id, err := c.roomTypes.Create(ctx, roomType)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateRoomType)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	c.logger.Info("created room type", "room_type_id", id, "name", roomType.Name())
	return c.roomTypes.FindByID(ctx, id)
}

func (c *roomCommands) UpdateRoomPricing(ctx context.Context, roomTypeID, basePriceCents int64, taxRate float64) (*room.RoomType, error) {
	roomType, err := c.roomTypes.Mutate(ctx, roomTypeID, func(t *room.RoomType) error {
		return t.UpdatePricing(basePriceCents, taxRate)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrRoomTypeNotFound)
		case errors.Is(err, room.ErrNonPositivePrice) || errors.Is(err, room.ErrInvalidTaxRate):
			return nil, errs.Mark(err, ErrDomainValidation)
		default:
			return nil, errs.Mark(err, ErrStoreFailure)
		}
	}

	c.logger.Info("updated room pricing", "room_type_id", roomTypeID, "base_price_cents", basePriceCents, "tax_rate", taxRate)
	return roomType, nil
}

func (c *roomCommands) CreateRoom(ctx context.Context, params CreateRoomParams) (*room.Room, error) {
	rm, err := room.NewRoom(params.Number, params.Floor, params.RoomTypeID)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := c.roomTypes.FindByID(ctx, params.RoomTypeID); err != nil {
		return nil, markLookupErr(err, ErrRoomTypeNotFound)
	}

	if _, err := c.rooms.FindByNumber(ctx, params.Number); err == nil {
		return nil, errs.Mark(errs.Newf("room %q already exists", params.Number), ErrDuplicateRoom)
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	id, err := c.rooms.Create(ctx, rm)
	if err != nil {
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return nil, errs.Mark(err, ErrDuplicateRoom)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	c.logger.Info("created room", "room_id", id, "number", rm.Number(), "room_type_id", rm.RoomTypeID())
	return c.rooms.FindByID(ctx, id)
}

func (c *roomCommands) SetRoomStatus(ctx context.Context, roomID int64, status room.Status) (*room.Room, error) {
	rm, err := c.rooms.Mutate(ctx, roomID, func(r *room.Room) error {
		return r.SetStatus(status)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrRoomNotFound)
		case errors.Is(err, room.ErrInvalidStatus):
			return nil, errs.Mark(err, ErrDomainValidation)
		default:
			return nil, errs.Mark(err, ErrStoreFailure)
		}
	}

	c.logger.Info("set room status", "room_id", roomID, "status", status.String())
	return rm, nil
}

func (c *roomCommands) DeleteRoom(ctx context.Context, roomID int64) error {
	rm, err := c.rooms.FindByID(ctx, roomID)
	if err != nil {
		return markLookupErr(err, ErrRoomNotFound)
	}
	if err := rm.CanDelete(); err != nil {
		return errs.Mark(err, ErrStateConflict)
	}

	if err := c.rooms.Delete(ctx, roomID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return errs.Mark(err, ErrRoomNotFound)
		}
		return errs.Mark(err, ErrStoreFailure)
	}

	c.logger.Info("deleted room", "room_id", roomID, "number", rm.Number())
	return nil
}
