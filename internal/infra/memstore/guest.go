package memstore

import (
	"context"
	"sort"

	"hoteltrack/internal/domain/guest"
	"hoteltrack/internal/usecase/queries"
)

func cloneGuest(g *guest.Guest) *guest.Guest {
	return guest.ReconstructGuest(g.ID(), g.Name(), g.Email(), g.Phone(), g.IdentificationNumber(), g.Status(), g.StatusJustification())
}

func (s *Store) CreateGuest(_ context.Context, g *guest.Guest) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.allocID()
	s.guests[id] = guest.ReconstructGuest(id, g.Name(), g.Email(), g.Phone(), g.IdentificationNumber(), g.Status(), g.StatusJustification())
	return id, nil
}

func (s *Store) FindGuestByID(_ context.Context, id int64) (*guest.Guest, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.guests[id]
	if !ok {
		return nil, notFoundErr("guest", id)
	}
	return cloneGuest(g), nil
}

func (s *Store) MutateGuest(_ context.Context, id int64, fn func(*guest.Guest) error) (*guest.Guest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.guests[id]
	if !ok {
		return nil, notFoundErr("guest", id)
	}
	next := cloneGuest(g)
	if err := fn(next); err != nil {
		return nil, err
	}
	s.guests[id] = next
	return cloneGuest(next), nil
}

// Read side.

func guestView(g *guest.Guest) *queries.GuestView {
	return &queries.GuestView{
		ID:                   g.ID(),
		Name:                 g.Name(),
		Email:                g.Email(),
		Phone:                g.Phone(),
		IdentificationNumber: g.IdentificationNumber(),
		Status:               g.Status().String(),
		StatusJustification:  g.StatusJustification(),
	}
}

func (s *Store) FindGuestViewByID(_ context.Context, id int64) (*queries.GuestView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.guests[id]
	if !ok {
		return nil, notFoundErr("guest", id)
	}
	return guestView(g), nil
}

func (s *Store) SearchGuests(_ context.Context, term string) ([]*queries.GuestView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*queries.GuestView
	for _, g := range s.guests {
		if g.MatchesSearch(term) {
			out = append(out, guestView(g))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) ListActiveGuests(_ context.Context) ([]*queries.GuestView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*queries.GuestView
	for _, g := range s.guests {
		if g.Status() == guest.StatusActive {
			out = append(out, guestView(g))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type GuestRepo struct{ s *Store }

func NewGuestRepo(s *Store) *GuestRepo { return &GuestRepo{s: s} }

func (r *GuestRepo) Create(ctx context.Context, g *guest.Guest) (int64, error) {
	return r.s.CreateGuest(ctx, g)
}

func (r *GuestRepo) FindByID(ctx context.Context, id int64) (*guest.Guest, error) {
	return r.s.FindGuestByID(ctx, id)
}

func (r *GuestRepo) Mutate(ctx context.Context, id int64, fn func(*guest.Guest) error) (*guest.Guest, error) {
	return r.s.MutateGuest(ctx, id, fn)
}

// GuestReads implements queries.GuestReadStore.
type GuestReads struct{ s *Store }

func NewGuestReads(s *Store) *GuestReads { return &GuestReads{s: s} }

func (r *GuestReads) FindByID(ctx context.Context, id int64) (*queries.GuestView, error) {
	return r.s.FindGuestViewByID(ctx, id)
}

func (r *GuestReads) Search(ctx context.Context, term string) ([]*queries.GuestView, error) {
	return r.s.SearchGuests(ctx, term)
}

func (r *GuestReads) ListActive(ctx context.Context) ([]*queries.GuestView, error) {
	return r.s.ListActiveGuests(ctx)
}
