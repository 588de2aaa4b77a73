package gormstore

import (
	"context"

	"gorm.io/gorm"

	"hoteltrack/internal/domain/availability"
)

// BlockRepo implements commands.BlockRepository.
type BlockRepo struct{ db *gorm.DB }

func NewBlockRepo(s *Store) *BlockRepo { return &BlockRepo{db: s.db} }

func (r *BlockRepo) Add(ctx context.Context, b *availability.Block) (int64, error) {
	row := RoomBlockRow{
		RoomID:   b.RoomID(),
		CheckIn:  b.Dates().CheckIn(),
		CheckOut: b.Dates().CheckOut(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, mapWriteErr(err, "room block")
	}
	return row.ID, nil
}

func (r *BlockRepo) ListByRoom(ctx context.Context, roomID int64) ([]*availability.Block, error) {
	var rows []RoomBlockRow
	err := r.db.WithContext(ctx).Where("room_id = ?", roomID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, mapReadErr(err, "room block")
	}
	out := make([]*availability.Block, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *BlockRepo) Remove(ctx context.Context, roomID int64, dates availability.DateRange) error {
	err := r.db.WithContext(ctx).
		Where("room_id = ? and check_in = ? and check_out = ?", roomID, dates.CheckIn(), dates.CheckOut()).
		Delete(&RoomBlockRow{}).Error
	if err != nil {
		return mapWriteErr(err, "room block")
	}
	return nil
}
