package memstore

import (
	"context"
	"fmt"
	"sort"

	"hoteltrack/internal/domain/room"
	"hoteltrack/internal/infra"
	"hoteltrack/internal/usecase/queries"
)

func cloneRoomType(t *room.RoomType) *room.RoomType {
	return room.ReconstructRoomType(t.ID(), t.Name(), t.Description(), t.MaxOccupancy(), t.BasePriceCents(), t.TaxRate())
}

func cloneRoom(r *room.Room) *room.Room {
	return room.ReconstructRoom(r.ID(), r.Number(), r.Floor(), r.RoomTypeID(), r.Status())
}

func (s *Store) CreateRoomType(_ context.Context, t *room.RoomType) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.roomTypes {
		if existing.NameEquals(t.Name()) {
			return 0, infra.NewRepoErr(infra.KindDuplicateKey, fmt.Sprintf("room type %q already exists", t.Name()))
		}
	}

	id := s.allocID()
	s.roomTypes[id] = room.ReconstructRoomType(id, t.Name(), t.Description(), t.MaxOccupancy(), t.BasePriceCents(), t.TaxRate())
	return id, nil
}

func (s *Store) FindRoomTypeByID(_ context.Context, id int64) (*room.RoomType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.roomTypes[id]
	if !ok {
		return nil, notFoundErr("room type", id)
	}
	return cloneRoomType(t), nil
}

func (s *Store) FindRoomTypeByName(_ context.Context, name string) (*room.RoomType, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, t := range s.roomTypes {
		if t.NameEquals(name) {
			return cloneRoomType(t), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("room type %q not found", name))
}

func (s *Store) MutateRoomType(_ context.Context, id int64, fn func(*room.RoomType) error) (*room.RoomType, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.roomTypes[id]
	if !ok {
		return nil, notFoundErr("room type", id)
	}
	next := cloneRoomType(t)
	if err := fn(next); err != nil {
		return nil, err
	}
	s.roomTypes[id] = next
	return cloneRoomType(next), nil
}

func (s *Store) CreateRoom(_ context.Context, r *room.Room) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, existing := range s.rooms {
		if existing.Number() == r.Number() {
			return 0, infra.NewRepoErr(infra.KindDuplicateKey, fmt.Sprintf("room %q already exists", r.Number()))
		}
	}

	id := s.allocID()
	s.rooms[id] = room.ReconstructRoom(id, r.Number(), r.Floor(), r.RoomTypeID(), r.Status())
	return id, nil
}

func (s *Store) FindRoomByID(_ context.Context, id int64) (*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, notFoundErr("room", id)
	}
	return cloneRoom(r), nil
}

func (s *Store) FindRoomByNumber(_ context.Context, number string) (*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rooms {
		if r.Number() == number {
			return cloneRoom(r), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("room %q not found", number))
}

func (s *Store) FindRoomsByTypeID(_ context.Context, roomTypeID int64) ([]*room.Room, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*room.Room
	for _, r := range s.rooms {
		if r.RoomTypeID() == roomTypeID {
			out = append(out, cloneRoom(r))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (s *Store) MutateRoom(_ context.Context, id int64, fn func(*room.Room) error) (*room.Room, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, notFoundErr("room", id)
	}
	next := cloneRoom(r)
	if err := fn(next); err != nil {
		return nil, err
	}
	s.rooms[id] = next
	return cloneRoom(next), nil
}

func (s *Store) DeleteRoom(_ context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.rooms[id]; !ok {
		return notFoundErr("room", id)
	}
	delete(s.rooms, id)
	return nil
}

// Read side.

func (s *Store) roomTypeView(t *room.RoomType) *queries.RoomTypeView {
	return &queries.RoomTypeView{
		ID:             t.ID(),
		Name:           t.Name(),
		Description:    t.Description(),
		MaxOccupancy:   t.MaxOccupancy(),
		BasePriceCents: t.BasePriceCents(),
		TaxRate:        t.TaxRate(),
	}
}

// roomView must be called with s.mu held.
func (s *Store) roomView(r *room.Room) *queries.RoomView {
	view := &queries.RoomView{
		ID:         r.ID(),
		Number:     r.Number(),
		Floor:      r.Floor(),
		RoomTypeID: r.RoomTypeID(),
		Status:     r.Status().String(),
	}
	if t, ok := s.roomTypes[r.RoomTypeID()]; ok {
		view.RoomTypeName = t.Name()
	}
	return view
}

func (s *Store) FindTypeByID(_ context.Context, id int64) (*queries.RoomTypeView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.roomTypes[id]
	if !ok {
		return nil, notFoundErr("room type", id)
	}
	return s.roomTypeView(t), nil
}

func (s *Store) ListTypes(_ context.Context) ([]*queries.RoomTypeView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*queries.RoomTypeView, 0, len(s.roomTypes))
	for _, t := range s.roomTypes {
		out = append(out, s.roomTypeView(t))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindRoomViewByID(_ context.Context, id int64) (*queries.RoomView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	r, ok := s.rooms[id]
	if !ok {
		return nil, notFoundErr("room", id)
	}
	return s.roomView(r), nil
}

func (s *Store) FindRoomViewByNumber(_ context.Context, number string) (*queries.RoomView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.rooms {
		if r.Number() == number {
			return s.roomView(r), nil
		}
	}
	return nil, infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("room %q not found", number))
}

func (s *Store) ListRoomViews(_ context.Context, status string) ([]*queries.RoomView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*queries.RoomView
	for _, r := range s.rooms {
		if status != "" && r.Status().String() != status {
			continue
		}
		out = append(out, s.roomView(r))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Port adapters. The Store carries every collection behind one lock, so the
// repository interfaces are satisfied by thin per-aggregate wrappers.

type RoomTypeRepo struct{ s *Store }

func NewRoomTypeRepo(s *Store) *RoomTypeRepo { return &RoomTypeRepo{s: s} }

func (r *RoomTypeRepo) Create(ctx context.Context, t *room.RoomType) (int64, error) {
	return r.s.CreateRoomType(ctx, t)
}

func (r *RoomTypeRepo) FindByID(ctx context.Context, id int64) (*room.RoomType, error) {
	return r.s.FindRoomTypeByID(ctx, id)
}

func (r *RoomTypeRepo) FindByName(ctx context.Context, name string) (*room.RoomType, error) {
	return r.s.FindRoomTypeByName(ctx, name)
}

func (r *RoomTypeRepo) Mutate(ctx context.Context, id int64, fn func(*room.RoomType) error) (*room.RoomType, error) {
	return r.s.MutateRoomType(ctx, id, fn)
}

type RoomRepo struct{ s *Store }

func NewRoomRepo(s *Store) *RoomRepo { return &RoomRepo{s: s} }

func (r *RoomRepo) Create(ctx context.Context, rm *room.Room) (int64, error) {
	return r.s.CreateRoom(ctx, rm)
}

func (r *RoomRepo) FindByID(ctx context.Context, id int64) (*room.Room, error) {
	return r.s.FindRoomByID(ctx, id)
}

func (r *RoomRepo) FindByNumber(ctx context.Context, number string) (*room.Room, error) {
	return r.s.FindRoomByNumber(ctx, number)
}

func (r *RoomRepo) FindByTypeID(ctx context.Context, roomTypeID int64) ([]*room.Room, error) {
	return r.s.FindRoomsByTypeID(ctx, roomTypeID)
}

func (r *RoomRepo) Mutate(ctx context.Context, id int64, fn func(*room.Room) error) (*room.Room, error) {
	return r.s.MutateRoom(ctx, id, fn)
}

func (r *RoomRepo) Delete(ctx context.Context, id int64) error {
	return r.s.DeleteRoom(ctx, id)
}

// RoomReads implements queries.RoomReadStore.
type RoomReads struct{ s *Store }

func NewRoomReads(s *Store) *RoomReads { return &RoomReads{s: s} }

func (r *RoomReads) FindTypeByID(ctx context.Context, id int64) (*queries.RoomTypeView, error) {
	return r.s.FindTypeByID(ctx, id)
}

func (r *RoomReads) ListTypes(ctx context.Context) ([]*queries.RoomTypeView, error) {
	return r.s.ListTypes(ctx)
}

func (r *RoomReads) FindRoomByID(ctx context.Context, id int64) (*queries.RoomView, error) {
	return r.s.FindRoomViewByID(ctx, id)
}

func (r *RoomReads) FindRoomByNumber(ctx context.Context, number string) (*queries.RoomView, error) {
	return r.s.FindRoomViewByNumber(ctx, number)
}

func (r *RoomReads) ListRooms(ctx context.Context, status string) ([]*queries.RoomView, error) {
	return r.s.ListRoomViews(ctx, status)
}
