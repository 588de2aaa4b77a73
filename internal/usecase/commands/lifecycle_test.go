//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"hoteltrack/internal/domain/billing"
	"hoteltrack/internal/domain/guest"
	"hoteltrack/internal/domain/reservation"
	"hoteltrack/internal/domain/room"
	"hoteltrack/internal/infra/memstore"
	"hoteltrack/internal/pkg/clock"
	"hoteltrack/internal/usecase/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

type fixture struct {
	store        *memstore.Store
	clock        *clock.FakeClock
	rooms        commands.RoomCommands
	guests       commands.GuestCommands
	reservations commands.ReservationCommands
	stays        commands.StayCommands
	billing      commands.BillingCommands
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memstore.New()
	clk := clock.NewFakeClock(testNow)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	engine := commands.NewAvailabilityEngine(memstore.NewBlockRepo(store), logger)
	billingCommands := commands.NewBillingCommands(
		memstore.NewInvoiceRepo(store),
		memstore.NewPaymentRepo(store),
		memstore.NewStayRepo(store),
		memstore.NewChargeRepo(store),
		memstore.NewReservationRepo(store),
		memstore.NewRoomRepo(store),
		memstore.NewRoomTypeRepo(store),
		clk,
		logger,
	)

	return &fixture{
		store: store,
		clock: clk,
		rooms: commands.NewRoomCommands(
			memstore.NewRoomTypeRepo(store),
			memstore.NewRoomRepo(store),
			logger,
		),
		guests: commands.NewGuestCommands(memstore.NewGuestRepo(store), logger),
		reservations: commands.NewReservationCommands(
			memstore.NewReservationRepo(store),
			memstore.NewGuestRepo(store),
			memstore.NewRoomTypeRepo(store),
			memstore.NewRoomRepo(store),
			engine,
			clk,
			logger,
		),
		stays: commands.NewStayCommands(
			memstore.NewStayRepo(store),
			memstore.NewChargeRepo(store),
			memstore.NewReservationRepo(store),
			memstore.NewRoomRepo(store),
			memstore.NewGuestRepo(store),
			billingCommands,
			clk,
			logger,
		),
		billing: billingCommands,
	}
}

// seed creates one room type at $100/night with 10% tax, two rooms of that
// type, and one guest; returns (roomTypeID, roomIDs, guestID).
func (f *fixture) seed(t *testing.T, ctx context.Context) (int64, []int64, int64) {
	t.Helper()

	rt, err := f.rooms.CreateRoomType(ctx, commands.CreateRoomTypeParams{
		Name:           "Standard",
		Description:    "Queen bed",
		MaxOccupancy:   2,
		BasePriceCents: 10000,
		TaxRate:        0.10,
	})
	require.NoError(t, err)

	roomIDs := make([]int64, 0, 2)
	for _, number := range []string{"101", "102"} {
		rm, err := f.rooms.CreateRoom(ctx, commands.CreateRoomParams{
			Number:     number,
			Floor:      1,
			RoomTypeID: rt.ID(),
		})
		require.NoError(t, err)
		roomIDs = append(roomIDs, rm.ID())
	}

	g, err := f.guests.RegisterGuest(ctx, commands.GuestProfileParams{
		Name:  "Alice Smith",
		Email: "alice@example.com",
	})
	require.NoError(t, err)

	return rt.ID(), roomIDs, g.ID()
}

func (f *fixture) reserve(t *testing.T, ctx context.Context, guestID, roomTypeID int64, checkIn, checkOut time.Time) *reservation.Reservation {
	t.Helper()
	res, err := f.reservations.Create(ctx, commands.CreateReservationParams{
		GuestID:    guestID,
		RoomTypeID: roomTypeID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Occupancy:  2,
	})
	require.NoError(t, err)
	return res
}

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestFullStayLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	typeID, roomIDs, guestID := f.seed(t, ctx)

	res := f.reserve(t, ctx, guestID, typeID, day(10), day(13))
	require.NoError(t, f.reservations.Confirm(ctx, res.ID()))
	require.NoError(t, f.reservations.AssignRoom(ctx, res.ID(), roomIDs[0]))

	st, err := f.stays.CheckInGuest(ctx, res.ID())
	require.NoError(t, err)
	assert.True(t, st.IsActive())
	assert.NotEmpty(t, st.KeyCardToken())

	updated, err := memstore.NewReservationRepo(f.store).FindByID(ctx, res.ID())
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCheckedIn, updated.Status())

	occupied, err := memstore.NewRoomRepo(f.store).FindByID(ctx, roomIDs[0])
	require.NoError(t, err)
	assert.Equal(t, room.StatusOccupied, occupied.Status())

	_, err = f.stays.RecordCharge(ctx, st.ID(), "Room Service", "club sandwich", 2500)
	require.NoError(t, err)

	inv, err := f.stays.CheckOutGuest(ctx, st.ID())
	require.NoError(t, err)

	// 3 nights x $100 = $300 rooms, $25 incidentals, 10% tax on $325.
	assert.Equal(t, int64(30000), inv.RoomCharges().Cents())
	assert.Equal(t, int64(2500), inv.IncidentalCharges().Cents())
	assert.Equal(t, int64(3250), inv.Taxes().Cents())
	assert.Equal(t, int64(35750), inv.TotalAmount().Cents())
	assert.Equal(t, billing.InvoiceStatusIssued, inv.Status())

	cleaned, err := memstore.NewRoomRepo(f.store).FindByID(ctx, roomIDs[0])
	require.NoError(t, err)
	assert.Equal(t, room.StatusUnderCleaning, cleaned.Status())

	closed, err := memstore.NewReservationRepo(f.store).FindByID(ctx, res.ID())
	require.NoError(t, err)
	assert.Equal(t, reservation.StatusCheckedOut, closed.Status())

	payment, err := f.billing.ProcessPayment(ctx, inv.ID(), 35750, "card")
	require.NoError(t, err)
	assert.Equal(t, billing.PaymentStatusCompleted, payment.Status())
	assert.NotEmpty(t, payment.TransactionReference())

	paid, err := memstore.NewInvoiceRepo(f.store).FindByID(ctx, inv.ID())
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusPaid, paid.Status())
	assert.Equal(t, int64(0), paid.Outstanding().Cents())
	assert.Len(t, paid.PaymentIDs(), 1)
}

func TestCheckOutIsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	typeID, roomIDs, guestID := f.seed(t, ctx)

	res := f.reserve(t, ctx, guestID, typeID, day(10), day(12))
	require.NoError(t, f.reservations.Confirm(ctx, res.ID()))
	require.NoError(t, f.reservations.AssignRoom(ctx, res.ID(), roomIDs[0]))

	st, err := f.stays.CheckInGuest(ctx, res.ID())
	require.NoError(t, err)

	first, err := f.stays.CheckOutGuest(ctx, st.ID())
	require.NoError(t, err)

	second, err := f.stays.CheckOutGuest(ctx, st.ID())
	require.NoError(t, err)
	assert.Equal(t, first.ID(), second.ID())
	assert.Equal(t, first.TotalAmount().Cents(), second.TotalAmount().Cents())
}

func TestDiscountReducesTotal(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	typeID, roomIDs, guestID := f.seed(t, ctx)

	res := f.reserve(t, ctx, guestID, typeID, day(10), day(13))
	require.NoError(t, f.reservations.Confirm(ctx, res.ID()))
	require.NoError(t, f.reservations.AssignRoom(ctx, res.ID(), roomIDs[0]))

	st, err := f.stays.CheckInGuest(ctx, res.ID())
	require.NoError(t, err)
	_, err = f.stays.RecordCharge(ctx, st.ID(), "Room Service", "", 2500)
	require.NoError(t, err)

	inv, err := f.stays.CheckOutGuest(ctx, st.ID())
	require.NoError(t, err)
	require.Equal(t, int64(35750), inv.TotalAmount().Cents())

	discounted, err := f.billing.ApplyDiscount(ctx, inv.ID(), 5000, "loyalty")
	require.NoError(t, err)
	assert.Equal(t, int64(30750), discounted.TotalAmount().Cents())
	assert.Equal(t, int64(30750), discounted.Outstanding().Cents())
	assert.Equal(t, billing.InvoiceStatusIssued, discounted.Status())
}

func TestPaymentAccumulation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	typeID, roomIDs, guestID := f.seed(t, ctx)

	res := f.reserve(t, ctx, guestID, typeID, day(10), day(12))
	require.NoError(t, f.reservations.Confirm(ctx, res.ID()))
	require.NoError(t, f.reservations.AssignRoom(ctx, res.ID(), roomIDs[0]))
	st, err := f.stays.CheckInGuest(ctx, res.ID())
	require.NoError(t, err)
	inv, err := f.stays.CheckOutGuest(ctx, st.ID())
	require.NoError(t, err)

	total := inv.TotalAmount().Cents()

	_, err = f.billing.ProcessPayment(ctx, inv.ID(), total/2, "card")
	require.NoError(t, err)

	partiallyPaid, err := memstore.NewInvoiceRepo(f.store).FindByID(ctx, inv.ID())
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusPartiallyPaid, partiallyPaid.Status())

	_, err = f.billing.ProcessPayment(ctx, inv.ID(), total-total/2, "cash")
	require.NoError(t, err)

	paid, err := memstore.NewInvoiceRepo(f.store).FindByID(ctx, inv.ID())
	require.NoError(t, err)
	assert.Equal(t, billing.InvoiceStatusPaid, paid.Status())
	assert.Len(t, paid.PaymentIDs(), 2)

	_, err = f.billing.ProcessPayment(ctx, inv.ID(), 0, "card")
	assert.ErrorIs(t, err, commands.ErrDomainValidation)
}

func TestWalkInBilledPerStartedNight(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, roomIDs, guestID := f.seed(t, ctx)

	st, err := f.stays.CheckInWalkIn(ctx, guestID, roomIDs[0])
	require.NoError(t, err)
	assert.Nil(t, st.ReservationID())

	// Checkout four hours later still bills the one-night minimum.
	f.clock.Advance(4 * time.Hour)
	inv, err := f.stays.CheckOutGuest(ctx, st.ID())
	require.NoError(t, err)
	assert.Equal(t, int64(10000), inv.RoomCharges().Cents())
}

func TestNoDoubleBooking(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	typeID, roomIDs, guestID := f.seed(t, ctx)

	res1 := f.reserve(t, ctx, guestID, typeID, day(10), day(13))
	require.NoError(t, f.reservations.AssignRoom(ctx, res1.ID(), roomIDs[0]))

	t.Run("assigned room disappears from search", func(t *testing.T) {
		available, err := f.reservations.SearchAvailableRooms(ctx, day(11), day(12), typeID, 2)
		require.NoError(t, err)
		assert.NotContains(t, available, roomIDs[0])
		assert.Contains(t, available, roomIDs[1])
	})

	t.Run("boundary-touching range is free", func(t *testing.T) {
		available, err := f.reservations.SearchAvailableRooms(ctx, day(13), day(15), typeID, 2)
		require.NoError(t, err)
		assert.Contains(t, available, roomIDs[0])
	})

	t.Run("reassignment onto a blocked room is refused", func(t *testing.T) {
		res2 := f.reserve(t, ctx, guestID, typeID, day(11), day(14))
		require.NoError(t, f.reservations.AssignRoom(ctx, res2.ID(), roomIDs[1]))

		err := f.reservations.ReassignRoom(ctx, res2.ID(), roomIDs[0])
		assert.ErrorIs(t, err, commands.ErrRoomUnavailable)

		// The failed reassignment left the old assignment bound.
		unchanged, err := memstore.NewReservationRepo(f.store).FindByID(ctx, res2.ID())
		require.NoError(t, err)
		require.NotNil(t, unchanged.AssignedRoomID())
		assert.Equal(t, roomIDs[1], *unchanged.AssignedRoomID())
	})
}

func TestReassignRoomReleasesOld(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	typeID, roomIDs, guestID := f.seed(t, ctx)

	res := f.reserve(t, ctx, guestID, typeID, day(10), day(13))
	require.NoError(t, f.reservations.AssignRoom(ctx, res.ID(), roomIDs[0]))
	require.NoError(t, f.reservations.ReassignRoom(ctx, res.ID(), roomIDs[1]))

	moved, err := memstore.NewReservationRepo(f.store).FindByID(ctx, res.ID())
	require.NoError(t, err)
	require.NotNil(t, moved.AssignedRoomID())
	assert.Equal(t, roomIDs[1], *moved.AssignedRoomID())

	released, err := memstore.NewRoomRepo(f.store).FindByID(ctx, roomIDs[0])
	require.NoError(t, err)
	assert.Equal(t, room.StatusAvailable, released.Status())

	// The old room's dates are free again.
	available, err := f.reservations.SearchAvailableRooms(ctx, day(10), day(13), typeID, 2)
	require.NoError(t, err)
	assert.Contains(t, available, roomIDs[0])
	assert.NotContains(t, available, roomIDs[1])
}

func TestCheckInRequiresAssignedRoom(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	typeID, _, guestID := f.seed(t, ctx)

	res := f.reserve(t, ctx, guestID, typeID, day(10), day(12))
	require.NoError(t, f.reservations.Confirm(ctx, res.ID()))

	_, err := f.stays.CheckInGuest(ctx, res.ID())
	assert.ErrorIs(t, err, commands.ErrNoRoomAssigned)
}

func TestFailedCheckInLeavesNoStay(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	typeID, roomIDs, guestID := f.seed(t, ctx)

	res := f.reserve(t, ctx, guestID, typeID, day(10), day(13))
	require.NoError(t, f.reservations.Confirm(ctx, res.ID()))
	require.NoError(t, f.reservations.AssignRoom(ctx, res.ID(), roomIDs[0]))
	require.NoError(t, f.reservations.Cancel(ctx, res.ID()))

	_, err := f.stays.CheckInGuest(ctx, res.ID())
	assert.ErrorIs(t, err, commands.ErrStateConflict)

	// The refused check-in must not have persisted anything.
	active, err := memstore.NewStayReads(f.store).ListActive(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)
}

func TestChargeOnClosedStayRefused(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	typeID, roomIDs, guestID := f.seed(t, ctx)

	res := f.reserve(t, ctx, guestID, typeID, day(10), day(12))
	require.NoError(t, f.reservations.AssignRoom(ctx, res.ID(), roomIDs[0]))
	st, err := f.stays.CheckInGuest(ctx, res.ID())
	require.NoError(t, err)
	_, err = f.stays.CheckOutGuest(ctx, st.ID())
	require.NoError(t, err)

	_, err = f.stays.RecordCharge(ctx, st.ID(), "Minibar", "", 800)
	assert.ErrorIs(t, err, commands.ErrStayNotActive)
}

func TestReservationValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	typeID, _, guestID := f.seed(t, ctx)

	t.Run("unknown guest", func(t *testing.T) {
		_, err := f.reservations.Create(ctx, commands.CreateReservationParams{
			GuestID:    999,
			RoomTypeID: typeID,
			CheckIn:    day(10),
			CheckOut:   day(12),
			Occupancy:  1,
		})
		assert.ErrorIs(t, err, commands.ErrGuestNotFound)
	})

	t.Run("unknown room type", func(t *testing.T) {
		_, err := f.reservations.Create(ctx, commands.CreateReservationParams{
			GuestID:    guestID,
			RoomTypeID: 999,
			CheckIn:    day(10),
			CheckOut:   day(12),
			Occupancy:  1,
		})
		assert.ErrorIs(t, err, commands.ErrRoomTypeNotFound)
	})

	t.Run("inverted dates", func(t *testing.T) {
		_, err := f.reservations.Create(ctx, commands.CreateReservationParams{
			GuestID:    guestID,
			RoomTypeID: typeID,
			CheckIn:    day(12),
			CheckOut:   day(10),
			Occupancy:  1,
		})
		assert.ErrorIs(t, err, commands.ErrDomainValidation)
	})
}

func TestGuestLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	g, err := f.guests.RegisterGuest(ctx, commands.GuestProfileParams{
		Name:  "Bob Jones",
		Email: "bob@example.com",
	})
	require.NoError(t, err)

	updated, err := f.guests.UpdateGuestProfile(ctx, g.ID(), commands.GuestProfileParams{
		Name:  "Robert Jones",
		Email: "bob@example.com",
		Phone: "+1-555-0101",
	})
	require.NoError(t, err)
	assert.Equal(t, "Robert Jones", updated.Name())

	deactivated, err := f.guests.DeactivateGuest(ctx, g.ID(), "left the country")
	require.NoError(t, err)
	assert.Equal(t, guest.StatusInactive, deactivated.Status())
	assert.Equal(t, "left the country", deactivated.StatusJustification())

	_, err = f.guests.UpdateGuestProfile(ctx, 999, commands.GuestProfileParams{Name: "x", Email: "y"})
	assert.ErrorIs(t, err, commands.ErrGuestNotFound)
}

func TestRoomManagement(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	_, roomIDs, _ := f.seed(t, ctx)

	t.Run("duplicate room type name", func(t *testing.T) {
		_, err := f.rooms.CreateRoomType(ctx, commands.CreateRoomTypeParams{
			Name:           "Standard",
			Description:    "again",
			MaxOccupancy:   2,
			BasePriceCents: 9000,
			TaxRate:        0.05,
		})
		assert.ErrorIs(t, err, commands.ErrDuplicateRoomType)
	})

	t.Run("duplicate room number", func(t *testing.T) {
		rt, err := f.rooms.CreateRoomType(ctx, commands.CreateRoomTypeParams{
			Name:           "Suite",
			Description:    "big",
			MaxOccupancy:   4,
			BasePriceCents: 30000,
			TaxRate:        0.10,
		})
		require.NoError(t, err)

		_, err = f.rooms.CreateRoom(ctx, commands.CreateRoomParams{
			Number:     "101",
			Floor:      1,
			RoomTypeID: rt.ID(),
		})
		assert.ErrorIs(t, err, commands.ErrDuplicateRoom)
	})

	t.Run("occupied room cannot be deleted", func(t *testing.T) {
		_, err := f.rooms.SetRoomStatus(ctx, roomIDs[0], room.StatusOccupied)
		require.NoError(t, err)

		assert.ErrorIs(t, f.rooms.DeleteRoom(ctx, roomIDs[0]), commands.ErrStateConflict)

		_, err = f.rooms.SetRoomStatus(ctx, roomIDs[0], room.StatusAvailable)
		require.NoError(t, err)
		assert.NoError(t, f.rooms.DeleteRoom(ctx, roomIDs[0]))
	})
}
