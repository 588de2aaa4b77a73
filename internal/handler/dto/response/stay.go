package response

import (
	"time"

	"hoteltrack/internal/domain/stay"
	"hoteltrack/internal/usecase/queries"
)

type StayResponse struct {
	ID            int64      `json:"id"`
	ReservationID *int64     `json:"reservationId,omitempty"`
	GuestID       int64      `json:"guestId"`
	GuestName     string     `json:"guestName,omitempty"`
	RoomID        int64      `json:"roomId"`
	RoomNumber    string     `json:"roomNumber,omitempty"`
	CheckInTime   time.Time  `json:"checkInTime"`
	CheckOutTime  *time.Time `json:"checkOutTime,omitempty"`
	Status        string     `json:"status"`
	KeyCardToken  string     `json:"keyCardToken"`
}

func FromStay(s *stay.Stay) *StayResponse {
	return &StayResponse{
		ID:            s.ID(),
		ReservationID: s.ReservationID(),
		GuestID:       s.GuestID(),
		RoomID:        s.RoomID(),
		CheckInTime:   s.CheckInTime(),
		CheckOutTime:  s.CheckOutTime(),
		Status:        s.Status().String(),
		KeyCardToken:  s.KeyCardToken(),
	}
}

func FromStayView(v *queries.StayView) *StayResponse {
	return &StayResponse{
		ID:            v.ID,
		ReservationID: v.ReservationID,
		GuestID:       v.GuestID,
		GuestName:     v.GuestName,
		RoomID:        v.RoomID,
		RoomNumber:    v.RoomNumber,
		CheckInTime:   v.CheckInTime,
		CheckOutTime:  v.CheckOutTime,
		Status:        v.Status,
		KeyCardToken:  v.KeyCardToken,
	}
}

type ChargeResponse struct {
	ID          int64     `json:"id"`
	StayID      int64     `json:"stayId"`
	ServiceType string    `json:"serviceType"`
	Description string    `json:"description,omitempty"`
	AmountCents int64     `json:"amountCents"`
	RecordedAt  time.Time `json:"recordedAt"`
}

func FromCharge(c *stay.IncidentalCharge) *ChargeResponse {
	return &ChargeResponse{
		ID:          c.ID(),
		StayID:      c.StayID(),
		ServiceType: c.ServiceType(),
		Description: c.Description(),
		AmountCents: c.AmountCents(),
		RecordedAt:  c.ChargedAt(),
	}
}

func FromChargeView(v *queries.ChargeView) *ChargeResponse {
	return &ChargeResponse{
		ID:          v.ID,
		StayID:      v.StayID,
		ServiceType: v.ServiceType,
		Description: v.Description,
		AmountCents: v.AmountCents,
		RecordedAt:  v.RecordedAt,
	}
}

type BalanceResponse struct {
	StayID           int64 `json:"stayId"`
	OutstandingCents int64 `json:"outstandingCents"`
}

type TotalChargesResponse struct {
	StayID           int64 `json:"stayId"`
	TotalAmountCents int64 `json:"totalAmountCents"`
}
