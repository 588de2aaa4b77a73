package memstore

import (
	"context"
	"sort"

	"hoteltrack/internal/domain/reservation"
	"hoteltrack/internal/usecase/queries"
)

func cloneReservation(r *reservation.Reservation) *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID(), r.GuestID(), r.RoomTypeID(),
		cloneInt64Ptr(r.AssignedRoomID()),
		r.Dates(),
		r.Occupancy(),
		r.Status(),
		r.SpecialRequests(),
		r.CreatedAt(), r.UpdatedAt(),
	)
}

func (s *Store) CreateReservation(_ context.Context, r *reservation.Reservation) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.allocID()
	s.reservations[id] = reservation.ReconstructReservation(
		id, r.GuestID(), r.RoomTypeID(),
		cloneInt64Ptr(r.AssignedRoomID()),
		r.Dates(), r.Occupancy(), r.Status(), r.SpecialRequests(),
		r.CreatedAt(), r.UpdatedAt(),
	)
	return id, nil
}

func (s *Store) FindReservationByID(_ context.Context, id int64) (*reservation.Reservation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, notFoundErr("reservation", id)
	}
	return cloneReservation(r), nil
}

func (s *Store) MutateReservation(_ context.Context, id int64, fn func(*reservation.Reservation) error) (*reservation.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, notFoundErr("reservation", id)
	}
	next := cloneReservation(r)
	if err := fn(next); err != nil {
		return nil, err
	}
	s.reservations[id] = next
	return cloneReservation(next), nil
}

// Read side.

// reservationView must be called with s.mu held.
func (s *Store) reservationView(r *reservation.Reservation) *queries.ReservationView {
	view := &queries.ReservationView{
		ID:         r.ID(),
		GuestID:    r.GuestID(),
		RoomTypeID: r.RoomTypeID(),
		CheckIn:    r.Dates().CheckIn(),
		CheckOut:   r.Dates().CheckOut(),
		Nights:     r.Dates().Nights(),
		Occupancy:  r.Occupancy(),
		Status:     r.Status().String(),
		CreatedAt:  r.CreatedAt(),
	}
	if g, ok := s.guests[r.GuestID()]; ok {
		view.GuestName = g.Name()
	}
	if t, ok := s.roomTypes[r.RoomTypeID()]; ok {
		view.RoomTypeName = t.Name()
	}
	if roomID := r.AssignedRoomID(); roomID != nil {
		view.AssignedRoomID = cloneInt64Ptr(roomID)
		if rm, ok := s.rooms[*roomID]; ok {
			number := rm.Number()
			view.AssignedRoomNumber = &number
		}
	}
	return view
}

func (s *Store) FindReservationViewByID(_ context.Context, id int64) (*queries.ReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.reservations[id]
	if !ok {
		return nil, notFoundErr("reservation", id)
	}
	return s.reservationView(r), nil
}

func (s *Store) FindReservationsByStatus(_ context.Context, status string) ([]*queries.ReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*queries.ReservationView
	for _, r := range s.reservations {
		if status != "" && r.Status().String() != status {
			continue
		}
		out = append(out, s.reservationView(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindReservationsByGuestID(_ context.Context, guestID int64) ([]*queries.ReservationView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*queries.ReservationView
	for _, r := range s.reservations {
		if r.GuestID() == guestID {
			out = append(out, s.reservationView(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type ReservationRepo struct{ s *Store }

func NewReservationRepo(s *Store) *ReservationRepo { return &ReservationRepo{s: s} }

func (r *ReservationRepo) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	return r.s.CreateReservation(ctx, res)
}

func (r *ReservationRepo) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	return r.s.FindReservationByID(ctx, id)
}

func (r *ReservationRepo) Mutate(ctx context.Context, id int64, fn func(*reservation.Reservation) error) (*reservation.Reservation, error) {
	return r.s.MutateReservation(ctx, id, fn)
}

// ReservationReads implements queries.ReservationReadStore.
type ReservationReads struct{ s *Store }

func NewReservationReads(s *Store) *ReservationReads { return &ReservationReads{s: s} }

func (r *ReservationReads) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	return r.s.FindReservationViewByID(ctx, id)
}

func (r *ReservationReads) FindByStatus(ctx context.Context, status string) ([]*queries.ReservationView, error) {
	return r.s.FindReservationsByStatus(ctx, status)
}

func (r *ReservationReads) FindByGuestID(ctx context.Context, guestID int64) ([]*queries.ReservationView, error) {
	return r.s.FindReservationsByGuestID(ctx, guestID)
}
