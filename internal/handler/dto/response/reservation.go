package response

import (
	"time"

	"hoteltrack/internal/domain/reservation"
	"hoteltrack/internal/usecase/queries"
)

type ReservationResponse struct {
	ID                 int64     `json:"id"`
	GuestID            int64     `json:"guestId"`
	GuestName          string    `json:"guestName,omitempty"`
	RoomTypeID         int64     `json:"roomTypeId"`
	RoomTypeName       string    `json:"roomTypeName,omitempty"`
	AssignedRoomID     *int64    `json:"assignedRoomId,omitempty"`
	AssignedRoomNumber *string   `json:"assignedRoomNumber,omitempty"`
	CheckIn            time.Time `json:"checkIn"`
	CheckOut           time.Time `json:"checkOut"`
	Nights             int       `json:"nights"`
	Occupancy          int       `json:"occupancy"`
	Status             string    `json:"status"`
	SpecialRequests    string    `json:"specialRequests,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

func FromReservation(r *reservation.Reservation) *ReservationResponse {
	return &ReservationResponse{
		ID:              r.ID(),
		GuestID:         r.GuestID(),
		RoomTypeID:      r.RoomTypeID(),
		AssignedRoomID:  r.AssignedRoomID(),
		CheckIn:         r.Dates().CheckIn(),
		CheckOut:        r.Dates().CheckOut(),
		Nights:          r.Dates().Nights(),
		Occupancy:       r.Occupancy(),
		Status:          r.Status().String(),
		SpecialRequests: r.SpecialRequests(),
		CreatedAt:       r.CreatedAt(),
	}
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:                 v.ID,
		GuestID:            v.GuestID,
		GuestName:          v.GuestName,
		RoomTypeID:         v.RoomTypeID,
		RoomTypeName:       v.RoomTypeName,
		AssignedRoomID:     v.AssignedRoomID,
		AssignedRoomNumber: v.AssignedRoomNumber,
		CheckIn:            v.CheckIn,
		CheckOut:           v.CheckOut,
		Nights:             v.Nights,
		Occupancy:          v.Occupancy,
		Status:             v.Status,
		CreatedAt:          v.CreatedAt,
	}
}

type AvailableRoomsResponse struct {
	RoomIDs []int64 `json:"roomIds"`
}
