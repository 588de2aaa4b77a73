package request

type CreateRoomTypeRequest struct {
	Name           string  `json:"name" binding:"required"`
	Description    string  `json:"description" binding:"required"`
	MaxOccupancy   int     `json:"max_occupancy" binding:"required"`
	BasePriceCents int64   `json:"base_price_cents" binding:"required"`
	TaxRate        float64 `json:"tax_rate"`
}

type UpdatePricingRequest struct {
	BasePriceCents int64   `json:"base_price_cents" binding:"required"`
	TaxRate        float64 `json:"tax_rate"`
}

type CreateRoomRequest struct {
	Number     string `json:"number" binding:"required"`
	Floor      int    `json:"floor" binding:"required"`
	RoomTypeID int64  `json:"room_type_id" binding:"required"`
}

type SetRoomStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
