package commands

import (
	"context"
	"log/slog"

	"hoteltrack/internal/domain/availability"
	"hoteltrack/internal/pkg/errs"
)

// AvailabilityEngine is the source of truth for "is room R free for
// [checkIn, checkOut)". It reasons only over already-validated ranges;
// date validation belongs to the reservation engine.
type AvailabilityEngine struct {
	blocks BlockRepository
	logger *slog.Logger
}

func NewAvailabilityEngine(blocks BlockRepository, logger *slog.Logger) *AvailabilityEngine {
	return &AvailabilityEngine{blocks: blocks, logger: logger}
}

// IsRoomAvailable reports whether no recorded block for the room overlaps
// the requested half-open range.
func (e *AvailabilityEngine) IsRoomAvailable(ctx context.Context, roomID int64, dates availability.DateRange) (bool, error) {
	blocks, err := e.blocks.ListByRoom(ctx, roomID)
	if err != nil {
		return false, errs.Mark(err, ErrStoreFailure)
	}
	for _, b := range blocks {
		if b.Dates().Overlaps(dates) {
			return false, nil
		}
	}
	return true, nil
}

// BlockRoomDates records an opaque blocked interval; used both as the side
// effect of room assignment and for manual holds (maintenance, cleaning
// windows). Blocks are never coalesced.
func (e *AvailabilityEngine) BlockRoomDates(ctx context.Context, roomID int64, dates availability.DateRange) error {
	if _, err := e.blocks.Add(ctx, availability.NewBlock(roomID, dates)); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	e.logger.Debug("blocked room dates", "room_id", roomID, "dates", dates.String())
	return nil
}

// ReleaseRoomDates removes the block matching the exact interval; releasing
// an interval that was never blocked is a no-op.
func (e *AvailabilityEngine) ReleaseRoomDates(ctx context.Context, roomID int64, dates availability.DateRange) error {
	if err := e.blocks.Remove(ctx, roomID, dates); err != nil {
		return errs.Mark(err, ErrStoreFailure)
	}
	e.logger.Debug("released room dates", "room_id", roomID, "dates", dates.String())
	return nil
}
