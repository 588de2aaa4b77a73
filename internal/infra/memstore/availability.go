package memstore

import (
	"context"
	"sort"

	"hoteltrack/internal/domain/availability"
)

func (s *Store) AddBlock(_ context.Context, b *availability.Block) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.allocID()
	s.blocks[id] = availability.ReconstructBlock(id, b.RoomID(), b.Dates())
	return id, nil
}

func (s *Store) ListBlocksByRoom(_ context.Context, roomID int64) ([]*availability.Block, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*availability.Block
	for _, b := range s.blocks {
		if b.RoomID() == roomID {
			out = append(out, availability.ReconstructBlock(b.ID(), b.RoomID(), b.Dates()))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out, nil
}

func (s *Store) RemoveBlock(_ context.Context, roomID int64, dates availability.DateRange) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, b := range s.blocks {
		if b.Matches(roomID, dates) {
			delete(s.blocks, id)
			return nil
		}
	}
	return nil
}

// BlockRepo implements commands.BlockRepository.
type BlockRepo struct{ s *Store }

func NewBlockRepo(s *Store) *BlockRepo { return &BlockRepo{s: s} }

func (r *BlockRepo) Add(ctx context.Context, b *availability.Block) (int64, error) {
	return r.s.AddBlock(ctx, b)
}

func (r *BlockRepo) ListByRoom(ctx context.Context, roomID int64) ([]*availability.Block, error) {
	return r.s.ListBlocksByRoom(ctx, roomID)
}

func (r *BlockRepo) Remove(ctx context.Context, roomID int64, dates availability.DateRange) error {
	return r.s.RemoveBlock(ctx, roomID, dates)
}
