package gormstore

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"

	"hoteltrack/internal/domain/availability"
	"hoteltrack/internal/domain/billing"
	"hoteltrack/internal/domain/guest"
	"hoteltrack/internal/domain/reservation"
	"hoteltrack/internal/domain/room"
	"hoteltrack/internal/domain/stay"
)

// Row types mirror the tables; mapping to and from domain entities happens
// here so the store methods stay small.

type RoomTypeRow struct {
	ID             int64   `gorm:"primaryKey;autoIncrement"`
	Name           string  `gorm:"not null;uniqueIndex:uniq_room_types_name"`
	Description    string  `gorm:"not null"`
	MaxOccupancy   int     `gorm:"not null"`
	BasePriceCents int64   `gorm:"not null"`
	TaxRate        float64 `gorm:"not null"`
}

func (RoomTypeRow) TableName() string { return "room_types" }

func (r RoomTypeRow) toDomain() *room.RoomType {
	return room.ReconstructRoomType(r.ID, r.Name, r.Description, r.MaxOccupancy, r.BasePriceCents, r.TaxRate)
}

func roomTypeRow(t *room.RoomType) RoomTypeRow {
	return RoomTypeRow{
		ID:             t.ID(),
		Name:           t.Name(),
		Description:    t.Description(),
		MaxOccupancy:   t.MaxOccupancy(),
		BasePriceCents: t.BasePriceCents(),
		TaxRate:        t.TaxRate(),
	}
}

type RoomRow struct {
	ID         int64  `gorm:"primaryKey;autoIncrement"`
	Number     string `gorm:"not null;uniqueIndex:uniq_rooms_number"`
	Floor      int    `gorm:"not null"`
	RoomTypeID int64  `gorm:"not null;index"`
	Status     string `gorm:"not null"`
}

func (RoomRow) TableName() string { return "rooms" }

func (r RoomRow) toDomain() *room.Room {
	return room.ReconstructRoom(r.ID, r.Number, r.Floor, r.RoomTypeID, room.Status(r.Status))
}

func roomRow(rm *room.Room) RoomRow {
	return RoomRow{
		ID:         rm.ID(),
		Number:     rm.Number(),
		Floor:      rm.Floor(),
		RoomTypeID: rm.RoomTypeID(),
		Status:     rm.Status().String(),
	}
}

type GuestRow struct {
	ID                   int64  `gorm:"primaryKey;autoIncrement"`
	Name                 string `gorm:"not null;index"`
	Email                string `gorm:"not null;index"`
	Phone                string `gorm:"not null"`
	IdentificationNumber string `gorm:"not null"`
	Status               string `gorm:"not null;index"`
	StatusJustification  string `gorm:"not null"`
}

func (GuestRow) TableName() string { return "guests" }

func (r GuestRow) toDomain() *guest.Guest {
	return guest.ReconstructGuest(r.ID, r.Name, r.Email, r.Phone, r.IdentificationNumber, guest.Status(r.Status), r.StatusJustification)
}

func guestRow(g *guest.Guest) GuestRow {
	return GuestRow{
		ID:                   g.ID(),
		Name:                 g.Name(),
		Email:                g.Email(),
		Phone:                g.Phone(),
		IdentificationNumber: g.IdentificationNumber(),
		Status:               g.Status().String(),
		StatusJustification:  g.StatusJustification(),
	}
}

type RoomBlockRow struct {
	ID       int64     `gorm:"primaryKey;autoIncrement"`
	RoomID   int64     `gorm:"not null;index:idx_room_blocks_room"`
	CheckIn  time.Time `gorm:"not null"`
	CheckOut time.Time `gorm:"not null"`
}

func (RoomBlockRow) TableName() string { return "room_blocks" }

func (r RoomBlockRow) toDomain() *availability.Block {
	return availability.ReconstructBlock(r.ID, r.RoomID, availability.ReconstructDateRange(r.CheckIn, r.CheckOut))
}

type ReservationRow struct {
	ID              int64     `gorm:"primaryKey;autoIncrement"`
	GuestID         int64     `gorm:"not null;index"`
	RoomTypeID      int64     `gorm:"not null;index"`
	AssignedRoomID  *int64    `gorm:"index"`
	CheckIn         time.Time `gorm:"not null"`
	CheckOut        time.Time `gorm:"not null"`
	Occupancy       int       `gorm:"not null"`
	Status          string    `gorm:"not null;index"`
	SpecialRequests string    `gorm:"not null"`
	CreatedAt       time.Time `gorm:"not null"`
	UpdatedAt       time.Time `gorm:"not null"`
}

func (ReservationRow) TableName() string { return "reservations" }

func (r ReservationRow) toDomain() *reservation.Reservation {
	return reservation.ReconstructReservation(
		r.ID, r.GuestID, r.RoomTypeID,
		r.AssignedRoomID,
		availability.ReconstructDateRange(r.CheckIn, r.CheckOut),
		r.Occupancy,
		reservation.Status(r.Status),
		r.SpecialRequests,
		r.CreatedAt, r.UpdatedAt,
	)
}

func reservationRow(res *reservation.Reservation) ReservationRow {
	return ReservationRow{
		ID:              res.ID(),
		GuestID:         res.GuestID(),
		RoomTypeID:      res.RoomTypeID(),
		AssignedRoomID:  res.AssignedRoomID(),
		CheckIn:         res.Dates().CheckIn(),
		CheckOut:        res.Dates().CheckOut(),
		Occupancy:       res.Occupancy(),
		Status:          res.Status().String(),
		SpecialRequests: res.SpecialRequests(),
		CreatedAt:       res.CreatedAt(),
		UpdatedAt:       res.UpdatedAt(),
	}
}

type StayRow struct {
	ID            int64      `gorm:"primaryKey;autoIncrement"`
	ReservationID *int64     `gorm:"index"`
	GuestID       int64      `gorm:"not null;index"`
	RoomID        int64      `gorm:"not null;index"`
	CheckInTime   time.Time  `gorm:"not null"`
	CheckOutTime  *time.Time `gorm:""`
	Status        string     `gorm:"not null;index"`
	KeyCardToken  string     `gorm:"not null"`
}

func (StayRow) TableName() string { return "stays" }

func (r StayRow) toDomain() *stay.Stay {
	return stay.ReconstructStay(r.ID, r.ReservationID, r.GuestID, r.RoomID, r.CheckInTime, r.CheckOutTime, stay.Status(r.Status), r.KeyCardToken)
}

func stayRow(st *stay.Stay) StayRow {
	return StayRow{
		ID:            st.ID(),
		ReservationID: st.ReservationID(),
		GuestID:       st.GuestID(),
		RoomID:        st.RoomID(),
		CheckInTime:   st.CheckInTime(),
		CheckOutTime:  st.CheckOutTime(),
		Status:        st.Status().String(),
		KeyCardToken:  st.KeyCardToken(),
	}
}

type IncidentalChargeRow struct {
	ID          int64     `gorm:"primaryKey;autoIncrement"`
	StayID      int64     `gorm:"not null;index:idx_charges_stay"`
	ServiceType string    `gorm:"not null"`
	Description string    `gorm:"not null"`
	AmountCents int64     `gorm:"not null"`
	ChargedAt   time.Time `gorm:"not null"`
}

func (IncidentalChargeRow) TableName() string { return "incidental_charges" }

func (r IncidentalChargeRow) toDomain() *stay.IncidentalCharge {
	return stay.ReconstructIncidentalCharge(r.ID, r.StayID, r.ServiceType, r.Description, r.AmountCents, r.ChargedAt)
}

type InvoiceRow struct {
	ID                     int64          `gorm:"primaryKey;autoIncrement"`
	StayID                 int64          `gorm:"not null;uniqueIndex:uniq_invoices_stay"`
	GuestID                int64          `gorm:"not null;index"`
	RoomChargesCents       int64          `gorm:"not null"`
	IncidentalChargesCents int64          `gorm:"not null"`
	TaxesCents             int64          `gorm:"not null"`
	DiscountsCents         int64          `gorm:"not null"`
	TotalAmountCents       int64          `gorm:"not null"`
	AmountPaidCents        int64          `gorm:"not null"`
	OutstandingCents       int64          `gorm:"not null"`
	PaymentIDs             datatypes.JSON `gorm:"not null"`
	Status                 string         `gorm:"not null;index"`
	IssuedAt               time.Time      `gorm:"not null"`
	Overridden             bool           `gorm:"not null"`
}

func (InvoiceRow) TableName() string { return "invoices" }

func (r InvoiceRow) toDomain() (*billing.Invoice, error) {
	var paymentIDs []int64
	if len(r.PaymentIDs) > 0 {
		if err := json.Unmarshal(r.PaymentIDs, &paymentIDs); err != nil {
			return nil, err
		}
	}
	return billing.ReconstructInvoice(
		r.ID, r.StayID, r.GuestID,
		billing.NewMoney(r.RoomChargesCents),
		billing.NewMoney(r.IncidentalChargesCents),
		billing.NewMoney(r.TaxesCents),
		billing.NewMoney(r.DiscountsCents),
		billing.NewMoney(r.TotalAmountCents),
		billing.NewMoney(r.AmountPaidCents),
		billing.NewMoney(r.OutstandingCents),
		paymentIDs,
		billing.InvoiceStatus(r.Status),
		r.IssuedAt,
		r.Overridden,
	), nil
}

func invoiceRow(inv *billing.Invoice) (InvoiceRow, error) {
	ids := inv.PaymentIDs()
	if ids == nil {
		ids = []int64{}
	}
	raw, err := json.Marshal(ids)
	if err != nil {
		return InvoiceRow{}, err
	}
	return InvoiceRow{
		ID:                     inv.ID(),
		StayID:                 inv.StayID(),
		GuestID:                inv.GuestID(),
		RoomChargesCents:       inv.RoomCharges().Cents(),
		IncidentalChargesCents: inv.IncidentalCharges().Cents(),
		TaxesCents:             inv.Taxes().Cents(),
		DiscountsCents:         inv.Discounts().Cents(),
		TotalAmountCents:       inv.TotalAmount().Cents(),
		AmountPaidCents:        inv.AmountPaid().Cents(),
		OutstandingCents:       inv.Outstanding().Cents(),
		PaymentIDs:             datatypes.JSON(raw),
		Status:                 inv.Status().String(),
		IssuedAt:               inv.IssuedAt(),
		Overridden:             inv.IsOverridden(),
	}, nil
}

type PaymentRow struct {
	ID                   int64     `gorm:"primaryKey;autoIncrement"`
	AmountCents          int64     `gorm:"not null"`
	Method               string    `gorm:"not null"`
	Status               string    `gorm:"not null"`
	TransactionReference string    `gorm:"not null;uniqueIndex:uniq_payments_txref"`
	PaidAt               time.Time `gorm:"not null"`
}

func (PaymentRow) TableName() string { return "payments" }

func (r PaymentRow) toDomain() *billing.Payment {
	return billing.ReconstructPayment(r.ID, billing.NewMoney(r.AmountCents), r.Method, billing.PaymentStatus(r.Status), r.TransactionReference, r.PaidAt)
}

// AllModels is the migration set, ordered parents before children.
func AllModels() []any {
	return []any{
		&RoomTypeRow{},
		&RoomRow{},
		&GuestRow{},
		&RoomBlockRow{},
		&ReservationRow{},
		&StayRow{},
		&IncidentalChargeRow{},
		&InvoiceRow{},
		&PaymentRow{},
	}
}
