package gormstore

import (
	"context"

	"gorm.io/gorm"

	"hoteltrack/internal/domain/reservation"
	"hoteltrack/internal/usecase/queries"
)

type ReservationRepo struct{ db *gorm.DB }

func NewReservationRepo(s *Store) *ReservationRepo { return &ReservationRepo{db: s.db} }

func (r *ReservationRepo) Create(ctx context.Context, res *reservation.Reservation) (int64, error) {
	row := reservationRow(res)
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, mapWriteErr(err, "reservation")
	}
	return row.ID, nil
}

func (r *ReservationRepo) FindByID(ctx context.Context, id int64) (*reservation.Reservation, error) {
	var row ReservationRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapFindErr(err, "reservation", id)
	}
	return row.toDomain(), nil
}

func (r *ReservationRepo) Mutate(ctx context.Context, id int64, fn func(*reservation.Reservation) error) (*reservation.Reservation, error) {
	var out *reservation.Reservation
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row ReservationRow
		if err := tx.First(&row, id).Error; err != nil {
			return mapFindErr(err, "reservation", id)
		}
		entity := row.toDomain()
		if err := fn(entity); err != nil {
			return err
		}
		updated := reservationRow(entity)
		if err := tx.Save(&updated).Error; err != nil {
			return mapWriteErr(err, "reservation")
		}
		out = entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ReservationReads implements queries.ReservationReadStore.
type ReservationReads struct{ db *gorm.DB }

func NewReservationReads(s *Store) *ReservationReads { return &ReservationReads{db: s.db} }

type reservationViewRow struct {
	ReservationRow
	GuestName          string
	RoomTypeName       string
	AssignedRoomNumber *string
}

func (r reservationViewRow) toView() *queries.ReservationView {
	dates := r.ReservationRow.toDomain().Dates()
	return &queries.ReservationView{
		ID:                 r.ID,
		GuestID:            r.GuestID,
		GuestName:          r.GuestName,
		RoomTypeID:         r.RoomTypeID,
		RoomTypeName:       r.RoomTypeName,
		AssignedRoomID:     r.AssignedRoomID,
		AssignedRoomNumber: r.AssignedRoomNumber,
		CheckIn:            dates.CheckIn(),
		CheckOut:           dates.CheckOut(),
		Nights:             dates.Nights(),
		Occupancy:          r.Occupancy,
		Status:             r.Status,
		CreatedAt:          r.CreatedAt,
	}
}

func (r *ReservationReads) base(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(&ReservationRow{}).
		Select("reservations.*, guests.name as guest_name, room_types.name as room_type_name, rooms.number as assigned_room_number").
		Joins("left join guests on guests.id = reservations.guest_id").
		Joins("left join room_types on room_types.id = reservations.room_type_id").
		Joins("left join rooms on rooms.id = reservations.assigned_room_id")
}

func (r *ReservationReads) FindByID(ctx context.Context, id int64) (*queries.ReservationView, error) {
	var row reservationViewRow
	if err := r.base(ctx).Where("reservations.id = ?", id).Take(&row).Error; err != nil {
		return nil, mapFindErr(err, "reservation", id)
	}
	return row.toView(), nil
}

func (r *ReservationReads) FindByStatus(ctx context.Context, status string) ([]*queries.ReservationView, error) {
	q := r.base(ctx).Order("reservations.id")
	if status != "" {
		q = q.Where("reservations.status = ?", status)
	}
	var rows []reservationViewRow
	if err := q.Find(&rows).Error; err != nil {
		return nil, mapReadErr(err, "reservation")
	}
	out := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toView())
	}
	return out, nil
}

func (r *ReservationReads) FindByGuestID(ctx context.Context, guestID int64) ([]*queries.ReservationView, error) {
	var rows []reservationViewRow
	err := r.base(ctx).Where("reservations.guest_id = ?", guestID).Order("reservations.id").Find(&rows).Error
	if err != nil {
		return nil, mapReadErr(err, "reservation")
	}
	out := make([]*queries.ReservationView, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toView())
	}
	return out, nil
}
