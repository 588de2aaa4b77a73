//go:build unit

package gormstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"hoteltrack/internal/domain/availability"
	"hoteltrack/internal/domain/billing"
	"hoteltrack/internal/domain/guest"
	"hoteltrack/internal/domain/reservation"
	"hoteltrack/internal/domain/room"
	"hoteltrack/internal/domain/stay"
	"hoteltrack/internal/infra"
	"hoteltrack/internal/infra/db"
	"hoteltrack/internal/infra/gormstore"
	"hoteltrack/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

func newStore(t *testing.T) *gormstore.Store {
	t.Helper()

	gdb, err := db.Connect(config.NewTestConfig().DB)
	require.NoError(t, err)

	store := gormstore.New(gdb)
	require.NoError(t, store.Migrate())
	return store
}

func TestRoomTypeRepo(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	repo := gormstore.NewRoomTypeRepo(store)

	rt, err := room.NewRoomType("Standard", "Queen bed", 2, 10000, 0.10)
	require.NoError(t, err)
	id, err := repo.Create(ctx, rt)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		got, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Standard", got.Name())
		assert.Equal(t, int64(10000), got.BasePriceCents())
		assert.Equal(t, 0.10, got.TaxRate())
	})

	t.Run("unique name", func(t *testing.T) {
		dup, err := room.NewRoomType("Standard", "again", 2, 9000, 0.05)
		require.NoError(t, err)
		_, err = repo.Create(ctx, dup)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.FindByID(ctx, 999)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})

	t.Run("mutate persists", func(t *testing.T) {
		_, err := repo.Mutate(ctx, id, func(rt *room.RoomType) error {
			return rt.UpdatePricing(12000, 0.12)
		})
		require.NoError(t, err)

		got, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(12000), got.BasePriceCents())
	})

	t.Run("mutate fn error aborts unchanged", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := repo.Mutate(ctx, id, func(*room.RoomType) error { return boom })
		assert.ErrorIs(t, err, boom)

		got, err := repo.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, int64(12000), got.BasePriceCents())
	})
}

func TestReservationViewJoins(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	rt, err := room.NewRoomType("Standard", "Queen bed", 2, 10000, 0.10)
	require.NoError(t, err)
	typeID, err := gormstore.NewRoomTypeRepo(store).Create(ctx, rt)
	require.NoError(t, err)

	rm, err := room.NewRoom("101", 1, typeID)
	require.NoError(t, err)
	roomID, err := gormstore.NewRoomRepo(store).Create(ctx, rm)
	require.NoError(t, err)

	g, err := guest.NewGuest("Alice Smith", "alice@example.com", "", "")
	require.NoError(t, err)
	guestID, err := gormstore.NewGuestRepo(store).Create(ctx, g)
	require.NoError(t, err)

	dates, err := availability.NewDateRange(now.AddDate(0, 0, 9), now.AddDate(0, 0, 12), now)
	require.NoError(t, err)
	res, err := reservation.NewReservation(guestID, typeID, dates, 2, "", now)
	require.NoError(t, err)
	resID, err := gormstore.NewReservationRepo(store).Create(ctx, res)
	require.NoError(t, err)

	t.Run("unassigned view has no room number", func(t *testing.T) {
		view, err := gormstore.NewReservationReads(store).FindByID(ctx, resID)
		require.NoError(t, err)
		assert.Equal(t, "Alice Smith", view.GuestName)
		assert.Equal(t, "Standard", view.RoomTypeName)
		assert.Nil(t, view.AssignedRoomNumber)
		assert.Equal(t, 3, view.Nights)
	})

	t.Run("assignment appears in the view", func(t *testing.T) {
		_, err := gormstore.NewReservationRepo(store).Mutate(ctx, resID, func(r *reservation.Reservation) error {
			return r.AssignRoom(roomID, now)
		})
		require.NoError(t, err)

		view, err := gormstore.NewReservationReads(store).FindByID(ctx, resID)
		require.NoError(t, err)
		require.NotNil(t, view.AssignedRoomNumber)
		assert.Equal(t, "101", *view.AssignedRoomNumber)
	})

	t.Run("status filter", func(t *testing.T) {
		views, err := gormstore.NewReservationReads(store).FindByStatus(ctx, reservation.StatusReserved.String())
		require.NoError(t, err)
		assert.Len(t, views, 1)

		views, err = gormstore.NewReservationReads(store).FindByStatus(ctx, reservation.StatusCancelled.String())
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestStayAndCharges(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)

	rt, err := room.NewRoomType("Standard", "Queen bed", 2, 10000, 0.10)
	require.NoError(t, err)
	typeID, err := gormstore.NewRoomTypeRepo(store).Create(ctx, rt)
	require.NoError(t, err)
	rm, err := room.NewRoom("101", 1, typeID)
	require.NoError(t, err)
	roomID, err := gormstore.NewRoomRepo(store).Create(ctx, rm)
	require.NoError(t, err)
	g, err := guest.NewGuest("Alice Smith", "alice@example.com", "", "")
	require.NoError(t, err)
	guestID, err := gormstore.NewGuestRepo(store).Create(ctx, g)
	require.NoError(t, err)

	st := stay.NewStay(nil, guestID, roomID, "KEY-1234", now)
	stayID, err := gormstore.NewStayRepo(store).Create(ctx, st)
	require.NoError(t, err)

	charges := gormstore.NewChargeRepo(store)
	for _, cents := range []int64{1500, 1000} {
		charge, err := stay.NewIncidentalCharge(stayID, "Room Service", "", cents, now)
		require.NoError(t, err)
		_, err = charges.Create(ctx, charge)
		require.NoError(t, err)
	}

	t.Run("sum of charges", func(t *testing.T) {
		total, err := charges.SumByStay(ctx, stayID)
		require.NoError(t, err)
		assert.Equal(t, int64(2500), total)
	})

	t.Run("sum is zero for chargeless stay", func(t *testing.T) {
		total, err := charges.SumByStay(ctx, 999)
		require.NoError(t, err)
		assert.Equal(t, int64(0), total)
	})

	t.Run("active stay view by room number", func(t *testing.T) {
		view, err := gormstore.NewStayReads(store).FindActiveByRoomNumber(ctx, "101")
		require.NoError(t, err)
		assert.Equal(t, stayID, view.ID)
		assert.Equal(t, "Alice Smith", view.GuestName)
		assert.Equal(t, "101", view.RoomNumber)
	})

	t.Run("closing removes it from the active listing", func(t *testing.T) {
		_, err := gormstore.NewStayRepo(store).Mutate(ctx, stayID, func(s *stay.Stay) error {
			return s.Close(now.Add(24 * time.Hour))
		})
		require.NoError(t, err)

		views, err := gormstore.NewStayReads(store).ListActive(ctx)
		require.NoError(t, err)
		assert.Empty(t, views)
	})
}

func TestInvoicePersistence(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	invoices := gormstore.NewInvoiceRepo(store)

	inv := billing.NewInvoice(1, 2, billing.NewMoney(30000), billing.NewMoney(2500), billing.NewMoney(3250), now)
	id, err := invoices.Create(ctx, inv)
	require.NoError(t, err)

	t.Run("one invoice per stay", func(t *testing.T) {
		dup := billing.NewInvoice(1, 2, billing.NewMoney(100), billing.NewMoney(0), billing.NewMoney(10), now)
		_, err := invoices.Create(ctx, dup)
		assert.True(t, infra.IsKind(err, infra.KindDuplicateKey))
	})

	t.Run("payment ids survive the round trip", func(t *testing.T) {
		p, err := billing.NewPayment(billing.NewMoney(10000), "card", "TXREF123", now)
		require.NoError(t, err)
		paymentID, err := gormstore.NewPaymentRepo(store).Create(ctx, p)
		require.NoError(t, err)

		_, err = invoices.Mutate(ctx, id, func(i *billing.Invoice) error {
			return i.RecordPayment(paymentID, billing.NewMoney(10000))
		})
		require.NoError(t, err)

		got, err := invoices.FindByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, []int64{paymentID}, got.PaymentIDs())
		assert.Equal(t, billing.InvoiceStatusPartiallyPaid, got.Status())
		assert.Equal(t, int64(25750), got.Outstanding().Cents())
	})

	t.Run("unpaid listing", func(t *testing.T) {
		views, err := gormstore.NewInvoiceReads(store).ListUnpaid(ctx)
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.Equal(t, id, views[0].ID)
	})

	t.Run("fully discounted invoice is not unpaid", func(t *testing.T) {
		discounted := billing.NewInvoice(7, 2, billing.NewMoney(10000), billing.NewMoney(0), billing.NewMoney(1000), now)
		require.NoError(t, discounted.ApplyDiscount(billing.NewMoney(11000)))
		discountedID, err := invoices.Create(ctx, discounted)
		require.NoError(t, err)

		views, err := gormstore.NewInvoiceReads(store).ListUnpaid(ctx)
		require.NoError(t, err)
		for _, v := range views {
			assert.NotEqual(t, discountedID, v.ID, "invoice with zero outstanding listed as unpaid")
		}
	})

	t.Run("find by stay", func(t *testing.T) {
		got, err := invoices.FindByStay(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, id, got.ID())

		_, err = invoices.FindByStay(ctx, 999)
		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestGuestSearch(t *testing.T) {
	ctx := context.Background()
	store := newStore(t)
	repo := gormstore.NewGuestRepo(store)

	for _, g := range []struct{ name, email string }{
		{"Alice Smith", "alice@example.com"},
		{"Bob Jones", "bob@example.com"},
	} {
		created, err := guest.NewGuest(g.name, g.email, "", "")
		require.NoError(t, err)
		_, err = repo.Create(ctx, created)
		require.NoError(t, err)
	}

	reads := gormstore.NewGuestReads(store)

	views, err := reads.Search(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, "Alice Smith", views[0].Name)

	views, err = reads.Search(ctx, "example.com")
	require.NoError(t, err)
	assert.Len(t, views, 2)
}
