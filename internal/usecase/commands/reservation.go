package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"hoteltrack/internal/domain/availability"
	"hoteltrack/internal/domain/reservation"
	"hoteltrack/internal/domain/room"
	"hoteltrack/internal/infra"
	"hoteltrack/internal/pkg/clock"
	"hoteltrack/internal/pkg/errs"
)

type CreateReservationParams struct {
	GuestID         int64
	RoomTypeID      int64
	CheckIn         time.Time
	CheckOut        time.Time
	Occupancy       int
	SpecialRequests string
}

type ModifyReservationParams struct {
	CheckIn   time.Time
	CheckOut  time.Time
	Occupancy int
}

type ReservationCommands interface {
	Create(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error)
	Modify(ctx context.Context, id int64, params ModifyReservationParams) (*reservation.Reservation, error)
	Confirm(ctx context.Context, id int64) error
	Cancel(ctx context.Context, id int64) error
	MarkNoShow(ctx context.Context, id int64) error
	AssignRoom(ctx context.Context, id, roomID int64) error
	ReassignRoom(ctx context.Context, id, newRoomID int64) error
	SearchAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, roomTypeID int64, occupancy int) ([]int64, error)
}

type reservationCommands struct {
	reservations ReservationRepository
	guests       GuestRepository
	roomTypes    RoomTypeRepository
	rooms        RoomRepository
	engine       *AvailabilityEngine
	clock        clock.Clock
	logger       *slog.Logger
}

func NewReservationCommands(
	reservations ReservationRepository,
	guests GuestRepository,
	roomTypes RoomTypeRepository,
	rooms RoomRepository,
	engine *AvailabilityEngine,
	clk clock.Clock,
	logger *slog.Logger,
) ReservationCommands {
	return &reservationCommands{
		reservations: reservations,
		guests:       guests,
		roomTypes:    roomTypes,
		rooms:        rooms,
		engine:       engine,
		clock:        clk,
		logger:       logger,
	}
}

// Create validates the date range and occupancy, then resolves the guest and
// room-type references. Unknown references fail the call: a reservation
// pointing at a missing guest or room type could never be billed.
func (c *reservationCommands) Create(ctx context.Context, params CreateReservationParams) (*reservation.Reservation, error) {
	now := c.clock.Now()

	dates, err := availability.NewDateRange(params.CheckIn, params.CheckOut, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := c.guests.FindByID(ctx, params.GuestID); err != nil {
		return nil, markLookupErr(err, ErrGuestNotFound)
	}
	if _, err := c.roomTypes.FindByID(ctx, params.RoomTypeID); err != nil {
		return nil, markLookupErr(err, ErrRoomTypeNotFound)
	}

	res, err := reservation.NewReservation(params.GuestID, params.RoomTypeID, dates, params.Occupancy, params.SpecialRequests, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	id, err := c.reservations.Create(ctx, res)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	c.logger.Info("created reservation",
		"reservation_id", id,
		"guest_id", params.GuestID,
		"room_type_id", params.RoomTypeID,
		"dates", dates.String(),
	)
	return c.reservations.FindByID(ctx, id)
}

func (c *reservationCommands) Modify(ctx context.Context, id int64, params ModifyReservationParams) (*reservation.Reservation, error) {
	now := c.clock.Now()

	dates, err := availability.NewDateRange(params.CheckIn, params.CheckOut, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	res, err := c.reservations.Mutate(ctx, id, func(r *reservation.Reservation) error {
		return r.Modify(dates, params.Occupancy, now)
	})
	if err != nil {
		return nil, c.mapMutateErr(err)
	}
	return res, nil
}

// Confirm, Cancel, and MarkNoShow are idempotent: a reservation already in
// the target state is left untouched.

func (c *reservationCommands) Confirm(ctx context.Context, id int64) error {
	return c.transition(ctx, id, "confirm", func(r *reservation.Reservation) error {
		return r.Confirm(c.clock.Now())
	})
}

func (c *reservationCommands) Cancel(ctx context.Context, id int64) error {
	return c.transition(ctx, id, "cancel", func(r *reservation.Reservation) error {
		return r.Cancel(c.clock.Now())
	})
}

func (c *reservationCommands) MarkNoShow(ctx context.Context, id int64) error {
	return c.transition(ctx, id, "no-show", func(r *reservation.Reservation) error {
		return r.MarkNoShow(c.clock.Now())
	})
}

// AssignRoom binds the room, marks it Occupied, and blocks its dates for the
// reservation's interval. Availability is not re-validated here: callers are
// expected to have selected the room via SearchAvailableRooms.
func (c *reservationCommands) AssignRoom(ctx context.Context, id, roomID int64) error {
	if _, err := c.rooms.FindByID(ctx, roomID); err != nil {
		return markLookupErr(err, ErrRoomNotFound)
	}

	res, err := c.reservations.Mutate(ctx, id, func(r *reservation.Reservation) error {
		return r.AssignRoom(roomID, c.clock.Now())
	})
	if err != nil {
		return c.mapMutateErr(err)
	}

	if _, err := c.rooms.Mutate(ctx, roomID, func(rm *room.Room) error {
		return rm.SetStatus(room.StatusOccupied)
	}); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}

	if err := c.engine.BlockRoomDates(ctx, roomID, res.Dates()); err != nil {
		return err
	}

	c.logger.Info("assigned room", "reservation_id", id, "room_id", roomID)
	return nil
}

// ReassignRoom moves a reservation onto a new room as one logical unit: the
// new room's availability is verified first, the new assignment is bound and
// blocked, and only then is the old room released. A failure part-way never
// leaves the reservation released with no replacement bound.
func (c *reservationCommands) ReassignRoom(ctx context.Context, id, newRoomID int64) error {
	res, err := c.reservations.FindByID(ctx, id)
	if err != nil {
		return markLookupErr(err, ErrReservationNotFound)
	}
	if _, err := c.rooms.FindByID(ctx, newRoomID); err != nil {
		return markLookupErr(err, ErrRoomNotFound)
	}

	free, err := c.engine.IsRoomAvailable(ctx, newRoomID, res.Dates())
	if err != nil {
		return err
	}
	if !free {
		return ErrRoomUnavailable
	}

	oldRoomID := res.AssignedRoomID()

	if err := c.AssignRoom(ctx, id, newRoomID); err != nil {
		return err
	}

	if oldRoomID != nil && *oldRoomID != newRoomID {
		if err := c.engine.ReleaseRoomDates(ctx, *oldRoomID, res.Dates()); err != nil {
			return err
		}
		if _, err := c.rooms.Mutate(ctx, *oldRoomID, func(rm *room.Room) error {
			return rm.SetStatus(room.StatusAvailable)
		}); err != nil {
			return errs.Mark(err, ErrStoreFailure)
		}
		c.logger.Info("released previous room", "reservation_id", id, "room_id", *oldRoomID)
	}
	return nil
}

// SearchAvailableRooms returns ids of rooms of the requested type that can
// sleep the party and that the availability engine reports free for the
// interval. Out-of-service rooms are never offered.
func (c *reservationCommands) SearchAvailableRooms(ctx context.Context, checkIn, checkOut time.Time, roomTypeID int64, occupancy int) ([]int64, error) {
	now := c.clock.Now()

	dates, err := availability.NewDateRange(checkIn, checkOut, now)
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	roomType, err := c.roomTypes.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, markLookupErr(err, ErrRoomTypeNotFound)
	}
	if !roomType.Fits(occupancy) {
		return []int64{}, nil
	}

	rooms, err := c.rooms.FindByTypeID(ctx, roomTypeID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	available := make([]int64, 0, len(rooms))
	for _, rm := range rooms {
		if rm.Status() == room.StatusOutOfService {
			continue
		}
		free, err := c.engine.IsRoomAvailable(ctx, rm.ID(), dates)
		if err != nil {
			return nil, err
		}
		if free {
			available = append(available, rm.ID())
		}
	}
	return available, nil
}

func (c *reservationCommands) transition(ctx context.Context, id int64, op string, fn func(*reservation.Reservation) error) error {
	res, err := c.reservations.Mutate(ctx, id, fn)
	if err != nil {
		return c.mapMutateErr(err)
	}
	c.logger.Info("reservation transition", "reservation_id", id, "operation", op, "status", res.Status().String())
	return nil
}

func (c *reservationCommands) mapMutateErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrReservationNotFound)
	case errors.Is(err, reservation.ErrNonPositiveOccupancy):
		return errs.Mark(err, ErrDomainValidation)
	case errors.Is(err, reservation.ErrInvalidTransition) || errors.Is(err, reservation.ErrNotModifiable):
		return errs.Mark(err, ErrStateConflict)
	default:
		return errs.Mark(err, ErrStoreFailure)
	}
}
