package memstore

import (
	"context"
	"fmt"
	"sort"
	"time"

	"hoteltrack/internal/domain/stay"
	"hoteltrack/internal/infra"
	"hoteltrack/internal/usecase/queries"
)

func cloneTimePtr(p *time.Time) *time.Time {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

func cloneStay(st *stay.Stay) *stay.Stay {
	return stay.ReconstructStay(
		st.ID(),
		cloneInt64Ptr(st.ReservationID()),
		st.GuestID(), st.RoomID(),
		st.CheckInTime(),
		cloneTimePtr(st.CheckOutTime()),
		st.Status(),
		st.KeyCardToken(),
	)
}

func (s *Store) CreateStay(_ context.Context, st *stay.Stay) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.allocID()
	s.stays[id] = stay.ReconstructStay(
		id,
		cloneInt64Ptr(st.ReservationID()),
		st.GuestID(), st.RoomID(),
		st.CheckInTime(),
		cloneTimePtr(st.CheckOutTime()),
		st.Status(),
		st.KeyCardToken(),
	)
	return id, nil
}

func (s *Store) FindStayByID(_ context.Context, id int64) (*stay.Stay, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.stays[id]
	if !ok {
		return nil, notFoundErr("stay", id)
	}
	return cloneStay(st), nil
}

func (s *Store) MutateStay(_ context.Context, id int64, fn func(*stay.Stay) error) (*stay.Stay, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	st, ok := s.stays[id]
	if !ok {
		return nil, notFoundErr("stay", id)
	}
	next := cloneStay(st)
	if err := fn(next); err != nil {
		return nil, err
	}
	s.stays[id] = next
	return cloneStay(next), nil
}

func (s *Store) CreateCharge(_ context.Context, c *stay.IncidentalCharge) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.allocID()
	s.charges[id] = stay.ReconstructIncidentalCharge(id, c.StayID(), c.ServiceType(), c.Description(), c.AmountCents(), c.ChargedAt())
	return id, nil
}

func (s *Store) ListChargesByStay(_ context.Context, stayID int64) ([]*stay.IncidentalCharge, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*stay.IncidentalCharge
	for _, c := range s.charges {
		if c.StayID() == stayID {
			out = append(out, stay.ReconstructIncidentalCharge(c.ID(), c.StayID(), c.ServiceType(), c.Description(), c.AmountCents(), c.ChargedAt()))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (s *Store) SumChargesByStay(_ context.Context, stayID int64) (int64, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var sum int64
	for _, c := range s.charges {
		if c.StayID() == stayID {
			sum += c.AmountCents()
		}
	}
	return sum, nil
}

// Read side.

// stayView must be called with s.mu held.
func (s *Store) stayView(st *stay.Stay) *queries.StayView {
	view := &queries.StayView{
		ID:            st.ID(),
		ReservationID: cloneInt64Ptr(st.ReservationID()),
		GuestID:       st.GuestID(),
		RoomID:        st.RoomID(),
		CheckInTime:   st.CheckInTime(),
		CheckOutTime:  cloneTimePtr(st.CheckOutTime()),
		Status:        st.Status().String(),
		KeyCardToken:  st.KeyCardToken(),
	}
	if g, ok := s.guests[st.GuestID()]; ok {
		view.GuestName = g.Name()
	}
	if rm, ok := s.rooms[st.RoomID()]; ok {
		view.RoomNumber = rm.Number()
	}
	return view
}

func (s *Store) FindStayViewByID(_ context.Context, id int64) (*queries.StayView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.stays[id]
	if !ok {
		return nil, notFoundErr("stay", id)
	}
	return s.stayView(st), nil
}

func (s *Store) FindActiveStayByRoomNumber(_ context.Context, roomNumber string) (*queries.StayView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, st := range s.stays {
		if !st.IsActive() {
			continue
		}
		rm, ok := s.rooms[st.RoomID()]
		if ok && rm.Number() == roomNumber {
			return s.stayView(st), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("no active stay for room %q", roomNumber))
}

func (s *Store) ListActiveStays(_ context.Context) ([]*queries.StayView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*queries.StayView
	for _, st := range s.stays {
		if st.IsActive() {
			out = append(out, s.stayView(st))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindStaysByGuestID(_ context.Context, guestID int64) ([]*queries.StayView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*queries.StayView
	for _, st := range s.stays {
		if st.GuestID() == guestID {
			out = append(out, s.stayView(st))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListChargeViewsByStay(_ context.Context, stayID int64) ([]*queries.ChargeView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*queries.ChargeView
	for _, c := range s.charges {
		if c.StayID() == stayID {
			out = append(out, &queries.ChargeView{
				ID:          c.ID(),
				StayID:      c.StayID(),
				ServiceType: c.ServiceType(),
				Description: c.Description(),
				AmountCents: c.AmountCents(),
				RecordedAt:  c.ChargedAt(),
			})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type StayRepo struct{ s *Store }

func NewStayRepo(s *Store) *StayRepo { return &StayRepo{s: s} }

func (r *StayRepo) Create(ctx context.Context, st *stay.Stay) (int64, error) {
	return r.s.CreateStay(ctx, st)
}

func (r *StayRepo) FindByID(ctx context.Context, id int64) (*stay.Stay, error) {
	return r.s.FindStayByID(ctx, id)
}

func (r *StayRepo) Mutate(ctx context.Context, id int64, fn func(*stay.Stay) error) (*stay.Stay, error) {
	return r.s.MutateStay(ctx, id, fn)
}

type ChargeRepo struct{ s *Store }

func NewChargeRepo(s *Store) *ChargeRepo { return &ChargeRepo{s: s} }

func (r *ChargeRepo) Create(ctx context.Context, c *stay.IncidentalCharge) (int64, error) {
	return r.s.CreateCharge(ctx, c)
}

func (r *ChargeRepo) ListByStay(ctx context.Context, stayID int64) ([]*stay.IncidentalCharge, error) {
	return r.s.ListChargesByStay(ctx, stayID)
}

func (r *ChargeRepo) SumByStay(ctx context.Context, stayID int64) (int64, error) {
	return r.s.SumChargesByStay(ctx, stayID)
}

// StayReads implements queries.StayReadStore.
type StayReads struct{ s *Store }

func NewStayReads(s *Store) *StayReads { return &StayReads{s: s} }

func (r *StayReads) FindByID(ctx context.Context, id int64) (*queries.StayView, error) {
	return r.s.FindStayViewByID(ctx, id)
}

func (r *StayReads) FindActiveByRoomNumber(ctx context.Context, roomNumber string) (*queries.StayView, error) {
	return r.s.FindActiveStayByRoomNumber(ctx, roomNumber)
}

func (r *StayReads) ListActive(ctx context.Context) ([]*queries.StayView, error) {
	return r.s.ListActiveStays(ctx)
}

func (r *StayReads) FindByGuestID(ctx context.Context, guestID int64) ([]*queries.StayView, error) {
	return r.s.FindStaysByGuestID(ctx, guestID)
}

func (r *StayReads) ListChargesByStay(ctx context.Context, stayID int64) ([]*queries.ChargeView, error) {
	return r.s.ListChargeViewsByStay(ctx, stayID)
}
