package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"hoteltrack/internal/domain/billing"
	"hoteltrack/internal/domain/reservation"
	"hoteltrack/internal/domain/room"
	"hoteltrack/internal/domain/stay"
	"hoteltrack/internal/infra"
	"hoteltrack/internal/pkg/clock"
	"hoteltrack/internal/pkg/errs"
)

type StayCommands interface {
	CheckInGuest(ctx context.Context, reservationID int64) (*stay.Stay, error)
	CheckInWalkIn(ctx context.Context, guestID, roomID int64) (*stay.Stay, error)
	RecordCharge(ctx context.Context, stayID int64, serviceType, description string, amountCents int64) (*stay.IncidentalCharge, error)
	CheckOutGuest(ctx context.Context, stayID int64) (*billing.Invoice, error)
}

type stayCommands struct {
	stays        StayRepository
	charges      ChargeRepository
	reservations ReservationRepository
	rooms        RoomRepository
	guests       GuestRepository
	billing      BillingCommands
	clock        clock.Clock
	logger       *slog.Logger
}

func NewStayCommands(
	stays StayRepository,
	charges ChargeRepository,
	reservations ReservationRepository,
	rooms RoomRepository,
	guests GuestRepository,
	billingCommands BillingCommands,
	clk clock.Clock,
	logger *slog.Logger,
) StayCommands {
	return &stayCommands{
		stays:        stays,
		charges:      charges,
		reservations: reservations,
		rooms:        rooms,
		guests:       guests,
		billing:      billingCommands,
		clock:        clk,
		logger:       logger,
	}
}

// CheckInGuest opens an active stay from a reservation with an assigned
// room. The reservation's status is flipped to Checked-In and the room to
// Occupied (a no-op if the assignment already occupied it). Confirmed status
// is deliberately not required: callers are expected to have confirmed and
// assigned a room before check-in.
func (c *stayCommands) CheckInGuest(ctx context.Context, reservationID int64) (*stay.Stay, error) {
	res, err := c.reservations.FindByID(ctx, reservationID)
	if err != nil {
		return nil, markLookupErr(err, ErrReservationNotFound)
	}
	if res.AssignedRoomID() == nil {
		return nil, ErrNoRoomAssigned
	}
	roomID := *res.AssignedRoomID()

	now := c.clock.Now()

	// Transition the reservation before persisting the stay, so a refused
	// transition (cancelled, already checked in) leaves no orphan stay.
	if _, err := c.reservations.Mutate(ctx, reservationID, func(r *reservation.Reservation) error {
		return r.CheckIn(now)
	}); err != nil {
		if errors.Is(err, reservation.ErrInvalidTransition) {
			return nil, errs.Mark(err, ErrStateConflict)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	resID := reservationID
	st := stay.NewStay(&resID, res.GuestID(), roomID, newKeyCardToken(), now)

	stayID, err := c.stays.Create(ctx, st)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if err := c.occupyRoom(ctx, roomID); err != nil {
		return nil, err
	}

	c.logger.Info("checked in guest",
		"stay_id", stayID,
		"reservation_id", reservationID,
		"guest_id", res.GuestID(),
		"room_id", roomID,
	)
	return c.stays.FindByID(ctx, stayID)
}

// CheckInWalkIn opens a stay with no reservation link. Unknown guests or
// rooms fail the call rather than producing a stay with dangling references.
func (c *stayCommands) CheckInWalkIn(ctx context.Context, guestID, roomID int64) (*stay.Stay, error) {
	if _, err := c.guests.FindByID(ctx, guestID); err != nil {
		return nil, markLookupErr(err, ErrGuestNotFound)
	}
	if _, err := c.rooms.FindByID(ctx, roomID); err != nil {
		return nil, markLookupErr(err, ErrRoomNotFound)
	}

	st := stay.NewStay(nil, guestID, roomID, newKeyCardToken(), c.clock.Now())
	stayID, err := c.stays.Create(ctx, st)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if err := c.occupyRoom(ctx, roomID); err != nil {
		return nil, err
	}

	c.logger.Info("walk-in check-in", "stay_id", stayID, "guest_id", guestID, "room_id", roomID)
	return c.stays.FindByID(ctx, stayID)
}

// RecordCharge appends an incidental charge to an active stay.
func (c *stayCommands) RecordCharge(ctx context.Context, stayID int64, serviceType, description string, amountCents int64) (*stay.IncidentalCharge, error) {
	st, err := c.stays.FindByID(ctx, stayID)
	if err != nil {
		return nil, markLookupErr(err, ErrStayNotFound)
	}
	if !st.IsActive() {
		return nil, ErrStayNotActive
	}

	charge, err := stay.NewIncidentalCharge(stayID, serviceType, description, amountCents, c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	chargeID, err := c.charges.Create(ctx, charge)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	c.logger.Info("recorded charge",
		"stay_id", stayID,
		"charge_id", chargeID,
		"service_type", charge.ServiceType(),
		"amount_cents", amountCents,
	)
	return stay.ReconstructIncidentalCharge(chargeID, stayID, charge.ServiceType(), charge.Description(), amountCents, charge.ChargedAt()), nil
}

// CheckOutGuest closes the stay, sends the room to cleaning, closes the
// originating reservation, and hands off to billing. This is the single
// point where a stay becomes an invoice. Checking out an already
// checked-out stay is a no-op that returns the existing invoice; a second
// invoice is never generated.
func (c *stayCommands) CheckOutGuest(ctx context.Context, stayID int64) (*billing.Invoice, error) {
	now := c.clock.Now()

	st, err := c.stays.Mutate(ctx, stayID, func(s *stay.Stay) error {
		return s.Close(now)
	})
	if err != nil {
		switch {
		case infra.IsKind(err, infra.KindNotFound):
			return nil, errs.Mark(err, ErrStayNotFound)
		case errors.Is(err, stay.ErrAlreadyCheckedOut):
			return c.billing.GenerateInvoice(ctx, stayID)
		default:
			return nil, errs.Mark(err, ErrStoreFailure)
		}
	}

	if _, err := c.rooms.Mutate(ctx, st.RoomID(), func(rm *room.Room) error {
		return rm.SetStatus(room.StatusUnderCleaning)
	}); err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	if st.ReservationID() != nil {
		if _, err := c.reservations.Mutate(ctx, *st.ReservationID(), func(r *reservation.Reservation) error {
			return r.CheckOut(now)
		}); err != nil {
			return nil, errs.Mark(err, ErrStoreFailure)
		}
	}

	invoice, err := c.billing.GenerateInvoice(ctx, stayID)
	if err != nil {
		return nil, err
	}

	c.logger.Info("checked out guest",
		"stay_id", stayID,
		"room_id", st.RoomID(),
		"invoice_id", invoice.ID(),
		"total_cents", invoice.TotalAmount().Cents(),
	)
	return invoice, nil
}

func (c *stayCommands) occupyRoom(ctx context.Context, roomID int64) error {
	if _, err := c.rooms.Mutate(ctx, roomID, func(rm *room.Room) error {
		return rm.SetStatus(room.StatusOccupied)
	}); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	return nil
}

func newKeyCardToken() string {
	return uuid.NewString()
}
