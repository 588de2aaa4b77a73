// Package memstore is an in-process store keeping every collection in maps
// behind a single RWMutex. It backs tests and the seed command, and matches
// the repository port semantics of gormstore: KindNotFound on lookup misses,
// KindDuplicateKey on unique violations, and Mutate as an atomic
// read-modify-write under the store lock.
package memstore

import (
	"fmt"
	"sync"

	"hoteltrack/internal/domain/availability"
	"hoteltrack/internal/domain/billing"
	"hoteltrack/internal/domain/guest"
	"hoteltrack/internal/domain/reservation"
	"hoteltrack/internal/domain/room"
	"hoteltrack/internal/domain/stay"
	"hoteltrack/internal/infra"
)

type Store struct {
	mu sync.RWMutex

	roomTypes    map[int64]*room.RoomType
	rooms        map[int64]*room.Room
	guests       map[int64]*guest.Guest
	blocks       map[int64]*availability.Block
	reservations map[int64]*reservation.Reservation
	stays        map[int64]*stay.Stay
	charges      map[int64]*stay.IncidentalCharge
	invoices     map[int64]*billing.Invoice
	payments     map[int64]*billing.Payment

	// unique index: one invoice per stay
	invoiceByStay map[int64]int64

	nextID int64
}

func New() *Store {
	return &Store{
		roomTypes:     make(map[int64]*room.RoomType),
		rooms:         make(map[int64]*room.Room),
		guests:        make(map[int64]*guest.Guest),
		blocks:        make(map[int64]*availability.Block),
		reservations:  make(map[int64]*reservation.Reservation),
		stays:         make(map[int64]*stay.Stay),
		charges:       make(map[int64]*stay.IncidentalCharge),
		invoices:      make(map[int64]*billing.Invoice),
		payments:      make(map[int64]*billing.Payment),
		invoiceByStay: make(map[int64]int64),
	}
}

// allocID must be called with s.mu held for writing.
func (s *Store) allocID() int64 {
	s.nextID++
	return s.nextID
}

func notFoundErr(collection string, id int64) error {
	return infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("%s %d not found", collection, id))
}

func cloneInt64Ptr(p *int64) *int64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
