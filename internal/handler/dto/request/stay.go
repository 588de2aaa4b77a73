package request

type CheckInRequest struct {
	ReservationID int64 `json:"reservation_id" binding:"required"`
}

type WalkInRequest struct {
	GuestID int64 `json:"guest_id" binding:"required"`
	RoomID  int64 `json:"room_id" binding:"required"`
}

type RecordChargeRequest struct {
	ServiceType string `json:"service_type" binding:"required"`
	Description string `json:"description"`
	AmountCents int64  `json:"amount_cents" binding:"required"`
}
