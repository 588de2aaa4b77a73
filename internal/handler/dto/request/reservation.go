package request

import "time"

type CreateReservationRequest struct {
	GuestID         int64     `json:"guest_id" binding:"required"`
	RoomTypeID      int64     `json:"room_type_id" binding:"required"`
	CheckIn         time.Time `json:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut        time.Time `json:"check_out" binding:"required" time_format:"2006-01-02"`
	Occupancy       int       `json:"occupancy" binding:"required"`
	SpecialRequests string    `json:"special_requests"`
}

type ModifyReservationRequest struct {
	CheckIn   time.Time `json:"check_in" binding:"required" time_format:"2006-01-02"`
	CheckOut  time.Time `json:"check_out" binding:"required" time_format:"2006-01-02"`
	Occupancy int       `json:"occupancy" binding:"required"`
}

type AssignRoomRequest struct {
	RoomID int64 `json:"room_id" binding:"required"`
}
