package gormstore

import (
	"context"

	"gorm.io/gorm"

	"hoteltrack/internal/domain/stay"
	"hoteltrack/internal/usecase/queries"
)

type StayRepo struct{ db *gorm.DB }

func NewStayRepo(s *Store) *StayRepo { return &StayRepo{db: s.db} }

func (r *StayRepo) Create(ctx context.Context, st *stay.Stay) (int64, error) {
	row := stayRow(st)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, mapWriteErr(err, "stay")
	}
	return row.ID, nil
}

func (r *StayRepo) FindByID(ctx context.Context, id int64) (*stay.Stay, error) {
	var row StayRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapFindErr(err, "stay", id)
	}
	return row.toDomain(), nil
}

func (r *StayRepo) Mutate(ctx context.Context, id int64, fn func(*stay.Stay) error) (*stay.Stay, error) {
	var out *stay.Stay
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row StayRow
		if err := tx.First(&row, id).Error; err != nil {
			return mapFindErr(err, "stay", id)
		}
		entity := row.toDomain()
		if err := fn(entity); err != nil {
			return err
		}
		updated := stayRow(entity)
		if err := tx.Save(&updated).Error; err != nil {
			return mapWriteErr(err, "stay")
		}
		out = entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type ChargeRepo struct{ db *gorm.DB }

func NewChargeRepo(s *Store) *ChargeRepo { return &ChargeRepo{db: s.db} }

func (r *ChargeRepo) Create(ctx context.Context, c *stay.IncidentalCharge) (int64, error) {
	row := IncidentalChargeRow{
		StayID:      c.StayID(),
		ServiceType: c.ServiceType(),
		Description: c.Description(),
		AmountCents: c.AmountCents(),
		ChargedAt:   c.ChargedAt(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, mapWriteErr(err, "incidental charge")
	}
	return row.ID, nil
}

func (r *ChargeRepo) ListByStay(ctx context.Context, stayID int64) ([]*stay.IncidentalCharge, error) {
	var rows []IncidentalChargeRow
	err := r.db.WithContext(ctx).Where("stay_id = ?", stayID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, mapReadErr(err, "incidental charge")
	}
	out := make([]*stay.IncidentalCharge, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (r *ChargeRepo) SumByStay(ctx context.Context, stayID int64) (int64, error) {
	var sum struct{ Total int64 }
	err := r.db.WithContext(ctx).Model(&IncidentalChargeRow{}).
		Select("coalesce(sum(amount_cents), 0) as total").
		Where("stay_id = ?", stayID).
		Take(&sum).Error
	if err != nil {
		return 0, mapReadErr(err, "incidental charge")
	}
	return sum.Total, nil
}

// StayReads implements queries.StayReadStore.
type StayReads struct{ db *gorm.DB }

func NewStayReads(s *Store) *StayReads { return &StayReads{db: s.db} }

func (r *StayReads) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&StayRow{}).
		Select("stays.*, guests.name as guest_name, rooms.number as room_number").
		Joins("left join guests on guests.id = stays.guest_id").
		Joins("left join rooms on rooms.id = stays.room_id")
}

type stayViewRow struct {
	StayRow
	GuestName  string
	RoomNumber string
}

func (r stayViewRow) toView() *queries.StayView {
	return &queries.StayView{
		ID:            r.ID,
		ReservationID: r.ReservationID,
		GuestID:       r.GuestID,
		GuestName:     r.GuestName,
		RoomID:        r.RoomID,
		RoomNumber:    r.RoomNumber,
		CheckInTime:   r.CheckInTime,
		CheckOutTime:  r.CheckOutTime,
		Status:        r.Status,
		KeyCardToken:  r.KeyCardToken,
	}
}

func (r *StayReads) FindByID(ctx context.Context, id int64) (*queries.StayView, error) {
	var row stayViewRow
	if err := r.base(ctx).Where("stays.id = ?", id).Take(&row).Error; err != nil {
		return nil, mapFindErr(err, "stay", id)
	}
	return row.toView(), nil
}

func (r *StayReads) FindActiveByRoomNumber(ctx context.Context, roomNumber string) (*queries.StayView, error) {
	var row stayViewRow
	err := r.base(ctx).
		Where("rooms.number = ? and stays.status = ?", roomNumber, stay.StatusActive.String()).
		Take(&row).Error
	if err != nil {
		return nil, mapLookupErr(err, "active stay for room", roomNumber)
	}
	return row.toView(), nil
}

func (r *StayReads) ListActive(ctx context.Context) ([]*queries.StayView, error) {
	var rows []stayViewRow
	err := r.base(ctx).Where("stays.status = ?", stay.StatusActive.String()).Order("stays.id").Find(&rows).Error
	if err != nil {
		return nil, mapReadErr(err, "stay")
	}
	out := make([]*queries.StayView, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toView())
	}
	return out, nil
}

func (r *StayReads) FindByGuestID(ctx context.Context, guestID int64) ([]*queries.StayView, error) {
	var rows []stayViewRow
	err := r.base(ctx).Where("stays.guest_id = ?", guestID).Order("stays.id").Find(&rows).Error
	if err != nil {
		return nil, mapReadErr(err, "stay")
	}
	out := make([]*queries.StayView, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toView())
	}
	return out, nil
}

func (r *StayReads) ListChargesByStay(ctx context.Context, stayID int64) ([]*queries.ChargeView, error) {
	var views []*queries.ChargeView
	err := r.db.WithContext(ctx).Model(&IncidentalChargeRow{}).
		Select("id, stay_id, service_type, description, amount_cents, charged_at as recorded_at").
		Where("stay_id = ?", stayID).
		Order("id").
		Find(&views).Error
	if err != nil {
		return nil, mapReadErr(err, "incidental charge")
	}
	return views, nil
}
