package commands

import (
	"context"

	"hoteltrack/internal/domain/availability"
	"hoteltrack/internal/domain/billing"
	"hoteltrack/internal/domain/guest"
	"hoteltrack/internal/domain/reservation"
	"hoteltrack/internal/domain/room"
	"hoteltrack/internal/domain/stay"
)

// Write-side store ports. Every mutable collection exposes Mutate, which
// loads the entity, applies fn, and persists the result as one atomic unit
// (a lock in the in-memory store, a transaction in the durable one). An
// error returned by fn aborts the mutation without persisting anything and
// is returned to the caller unchanged.
//
// Lookup misses come back as infra.KindNotFound repository errors; unique
// constraint violations as infra.KindDuplicateKey.

type RoomTypeRepository interface {
	Create(ctx context.Context, t *room.RoomType) (int64, error)
	FindByID(ctx context.Context, id int64) (*room.RoomType, error)
	FindByName(ctx context.Context, name string) (*room.RoomType, error)
	Mutate(ctx context.Context, id int64, fn func(*room.RoomType) error) (*room.RoomType, error)
}

type RoomRepository interface {
	Create(ctx context.Context, r *room.Room) (int64, error)
	FindByID(ctx context.Context, id int64) (*room.Room, error)
	FindByNumber(ctx context.Context, number string) (*room.Room, error)
	FindByTypeID(ctx context.Context, roomTypeID int64) ([]*room.Room, error)
	Mutate(ctx context.Context, id int64, fn func(*room.Room) error) (*room.Room, error)
	Delete(ctx context.Context, id int64) error
}

type GuestRepository interface {
	Create(ctx context.Context, g *guest.Guest) (int64, error)
	FindByID(ctx context.Context, id int64) (*guest.Guest, error)
	Mutate(ctx context.Context, id int64, fn func(*guest.Guest) error) (*guest.Guest, error)
}

type BlockRepository interface {
	Add(ctx context.Context, b *availability.Block) (int64, error)
	ListByRoom(ctx context.Context, roomID int64) ([]*availability.Block, error)
	// Remove deletes the block matching the exact room and range; removing
	// an absent block is a no-op, not an error.
	Remove(ctx context.Context, roomID int64, dates availability.DateRange) error
}

type ReservationRepository interface {
	Create(ctx context.Context, r *reservation.Reservation) (int64, error)
	FindByID(ctx context.Context, id int64) (*reservation.Reservation, error)
	Mutate(ctx context.Context, id int64, fn func(*reservation.Reservation) error) (*reservation.Reservation, error)
}

type StayRepository interface {
	Create(ctx context.Context, s *stay.Stay) (int64, error)
	FindByID(ctx context.Context, id int64) (*stay.Stay, error)
	Mutate(ctx context.Context, id int64, fn func(*stay.Stay) error) (*stay.Stay, error)
}

type ChargeRepository interface {
	Create(ctx context.Context, c *stay.IncidentalCharge) (int64, error)
	ListByStay(ctx context.Context, stayID int64) ([]*stay.IncidentalCharge, error)
	SumByStay(ctx context.Context, stayID int64) (int64, error)
}

type InvoiceRepository interface {
	// Create enforces one invoice per stay; a second insert for the same
	// stay fails with infra.KindDuplicateKey.
	Create(ctx context.Context, inv *billing.Invoice) (int64, error)
	FindByID(ctx context.Context, id int64) (*billing.Invoice, error)
	FindByStay(ctx context.Context, stayID int64) (*billing.Invoice, error)
	Mutate(ctx context.Context, id int64, fn func(*billing.Invoice) error) (*billing.Invoice, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, p *billing.Payment) (int64, error)
}
