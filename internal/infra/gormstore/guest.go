package gormstore

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"hoteltrack/internal/domain/guest"
	"hoteltrack/internal/usecase/queries"
)

type GuestRepo struct{ db *gorm.DB }

func NewGuestRepo(s *Store) *GuestRepo { return &GuestRepo{db: s.db} }

func (r *GuestRepo) Create(ctx context.Context, g *guest.Guest) (int64, error) {
	row := guestRow(g)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, mapWriteErr(err, "guest")
	}
	return row.ID, nil
}

func (r *GuestRepo) FindByID(ctx context.Context, id int64) (*guest.Guest, error) {
	var row GuestRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapFindErr(err, "guest", id)
	}
	return row.toDomain(), nil
}

func (r *GuestRepo) Mutate(ctx context.Context, id int64, fn func(*guest.Guest) error) (*guest.Guest, error) {
	var out *guest.Guest
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row GuestRow
		if err := tx.First(&row, id).Error; err != nil {
			return mapFindErr(err, "guest", id)
		}
		entity := row.toDomain()
		if err := fn(entity); err != nil {
			return err
		}
		updated := guestRow(entity)
		if err := tx.Save(&updated).Error; err != nil {
			return mapWriteErr(err, "guest")
		}
		out = entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GuestReads implements queries.GuestReadStore.
type GuestReads struct{ db *gorm.DB }

func NewGuestReads(s *Store) *GuestReads { return &GuestReads{db: s.db} }

func (r *GuestReads) FindByID(ctx context.Context, id int64) (*queries.GuestView, error) {
	var view queries.GuestView
	err := r.db.WithContext(ctx).Model(&GuestRow{}).Where("id = ?", id).Take(&view).Error
	if err != nil {
		return nil, mapFindErr(err, "guest", id)
	}
	return &view, nil
}

func (r *GuestReads) Search(ctx context.Context, term string) ([]*queries.GuestView, error) {
	pattern := "%" + strings.ToLower(term) + "%"
	var views []*queries.GuestView
	err := r.db.WithContext(ctx).Model(&GuestRow{}).
		Where("lower(name) like ? or lower(email) like ? or lower(phone) like ? or lower(identification_number) like ?",
			pattern, pattern, pattern, pattern).
		Order("id").
		Find(&views).Error
	if err != nil {
		return nil, mapReadErr(err, "guest")
	}
	return views, nil
}

func (r *GuestReads) ListActive(ctx context.Context) ([]*queries.GuestView, error) {
	var views []*queries.GuestView
	err := r.db.WithContext(ctx).Model(&GuestRow{}).
		Where("status = ?", guest.StatusActive.String()).
		Order("id").
		Find(&views).Error
	if err != nil {
		return nil, mapReadErr(err, "guest")
	}
	return views, nil
}
