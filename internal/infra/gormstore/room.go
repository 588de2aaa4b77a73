package gormstore

import (
	"context"

	"gorm.io/gorm"

	"hoteltrack/internal/domain/room"
	"hoteltrack/internal/usecase/queries"
)

type RoomTypeRepo struct{ db *gorm.DB }

func NewRoomTypeRepo(s *Store) *RoomTypeRepo { return &RoomTypeRepo{db: s.db} }

func (r *RoomTypeRepo) Create(ctx context.Context, t *room.RoomType) (int64, error) {
	row := roomTypeRow(t)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, mapWriteErr(err, "room type")
	}
	return row.ID, nil
}

func (r *RoomTypeRepo) FindByID(ctx context.Context, id int64) (*room.RoomType, error) {
	var row RoomTypeRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapFindErr(err, "room type", id)
	}
	return row.toDomain(), nil
}

func (r *RoomTypeRepo) FindByName(ctx context.Context, name string) (*room.RoomType, error) {
	var row RoomTypeRow
	err := r.db.WithContext(ctx).Where("lower(name) = lower(?)", name).First(&row).Error
	if err != nil {
		return nil, mapLookupErr(err, "room type", name)
	}
	return row.toDomain(), nil
}

func (r *RoomTypeRepo) Mutate(ctx context.Context, id int64, fn func(*room.RoomType) error) (*room.RoomType, error) {
	var out *room.RoomType
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row RoomTypeRow
		if err := tx.First(&row, id).Error; err != nil {
			return mapFindErr(err, "room type", id)
		}
		entity := row.toDomain()
		if err := fn(entity); err != nil {
			return err
		}
		updated := roomTypeRow(entity)
		if err := tx.Save(&updated).Error; err != nil {
			return mapWriteErr(err, "room type")
		}
		out = entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type RoomRepo struct{ db *gorm.DB }

func NewRoomRepo(s *Store) *RoomRepo { return &RoomRepo{db: s.db} }

func (r *RoomRepo) Create(ctx context.Context, rm *room.Room) (int64, error) {
	row := roomRow(rm)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, mapWriteErr(err, "room")
	}
	return row.ID, nil
}

func (r *RoomRepo) FindByID(ctx context.Context, id int64) (*room.Room, error) {
	var row RoomRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapFindErr(err, "room", id)
	}
	return row.toDomain(), nil
}

func (r *RoomRepo) FindByNumber(ctx context.Context, number string) (*room.Room, error) {
	var row RoomRow
	if err := r.db.WithContext(ctx).Where("number = ?", number).First(&row).Error; err != nil {
		return nil, mapLookupErr(err, "room", number)
	}
	return row.toDomain(), nil
}

func (r *RoomRepo) FindByTypeID(ctx context.Context, roomTypeID int64) ([]*room.Room, error) {
	var rows []RoomRow
	err := r.db.WithContext(ctx).Where("room_type_id = ?", roomTypeID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, mapReadErr(err, "room")
	}
	out := make([]*room.Room, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *RoomRepo) Mutate(ctx context.Context, id int64, fn func(*room.Room) error) (*room.Room, error) {
	var out *room.Room
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row RoomRow
		if err := tx.First(&row, id).Error; err != nil {
			return mapFindErr(err, "room", id)
		}
		entity := row.toDomain()
		if err := fn(entity); err != nil {
			return err
		}
		updated := roomRow(entity)
		if err := tx.Save(&updated).Error; err != nil {
			return mapWriteErr(err, "room")
		}
		out = entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *RoomRepo) Delete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Delete(&RoomRow{}, id)
	if res.Error != nil {
		return mapWriteErr(res.Error, "room")
	}
	if res.RowsAffected == 0 {
		return mapFindErr(gorm.ErrRecordNotFound, "room", id)
	}
	return nil
}

// RoomReads implements queries.RoomReadStore.
type RoomReads struct{ db *gorm.DB }

func NewRoomReads(s *Store) *RoomReads { return &RoomReads{db: s.db} }

func (r *RoomReads) FindTypeByID(ctx context.Context, id int64) (*queries.RoomTypeView, error) {
	var view queries.RoomTypeView
	err := r.db.WithContext(ctx).Model(&RoomTypeRow{}).Where("id = ?", id).Take(&view).Error
	if err != nil {
		return nil, mapFindErr(err, "room type", id)
	}
	return &view, nil
}

func (r *RoomReads) ListTypes(ctx context.Context) ([]*queries.RoomTypeView, error) {
	var views []*queries.RoomTypeView
	err := r.db.WithContext(ctx).Model(&RoomTypeRow{}).Order("id").Find(&views).Error
	if err != nil {
		return nil, mapReadErr(err, "room type")
	}
	return views, nil
}

const roomViewSelect = "rooms.id, rooms.number, rooms.floor, rooms.room_type_id, room_types.name as room_type_name, rooms.status"

func (r *RoomReads) FindRoomByID(ctx context.Context, id int64) (*queries.RoomView, error) {
	var view queries.RoomView
	err := r.db.WithContext(ctx).Model(&RoomRow{}).
		Select(roomViewSelect).
		Joins("left join room_types on room_types.id = rooms.room_type_id").
		Where("rooms.id = ?", id).
		Take(&view).Error
	if err != nil {
		return nil, mapFindErr(err, "room", id)
	}
	return &view, nil
}

func (r *RoomReads) FindRoomByNumber(ctx context.Context, number string) (*queries.RoomView, error) {
	var view queries.RoomView
	err := r.db.WithContext(ctx).Model(&RoomRow{}).
		Select(roomViewSelect).
		Joins("left join room_types on room_types.id = rooms.room_type_id").
		Where("rooms.number = ?", number).
		Take(&view).Error
	if err != nil {
		return nil, mapLookupErr(err, "room", number)
	}
	return &view, nil
}

func (r *RoomReads) ListRooms(ctx context.Context, status string) ([]*queries.RoomView, error) {
	q := r.db.WithContext(ctx).Model(&RoomRow{}).
		Select(roomViewSelect).
		Joins("left join room_types on room_types.id = rooms.room_type_id").
		Order("rooms.id")
	if status != "" {
		q = q.Where("rooms.status = ?", status)
	}
	var views []*queries.RoomView
	if err := q.Find(&views).Error; err != nil {
		return nil, mapReadErr(err, "room")
	}
	return views, nil
}
