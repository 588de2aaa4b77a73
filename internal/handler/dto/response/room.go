package response

import (
	"hoteltrack/internal/domain/room"
	"hoteltrack/internal/usecase/queries"
)

type RoomTypeResponse struct {
	ID             int64   `json:"id"`
	Name           string  `json:"name"`
	Description    string  `json:"description"`
	MaxOccupancy   int     `json:"maxOccupancy"`
	BasePriceCents int64   `json:"basePriceCents"`
	TaxRate        float64 `json:"taxRate"`
}

func FromRoomType(t *room.RoomType) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:             t.ID(),
		Name:           t.Name(),
		Description:    t.Description(),
		MaxOccupancy:   t.MaxOccupancy(),
		BasePriceCents: t.BasePriceCents(),
		TaxRate:        t.TaxRate(),
	}
}

func FromRoomTypeView(v *queries.RoomTypeView) *RoomTypeResponse {
	return &RoomTypeResponse{
		ID:             v.ID,
		Name:           v.Name,
		Description:    v.Description,
		MaxOccupancy:   v.MaxOccupancy,
		BasePriceCents: v.BasePriceCents,
		TaxRate:        v.TaxRate,
	}
}

type RoomResponse struct {
	ID           int64  `json:"id"`
	Number       string `json:"number"`
	Floor        int    `json:"floor"`
	RoomTypeID   int64  `json:"roomTypeId"`
	RoomTypeName string `json:"roomTypeName,omitempty"`
	Status       string `json:"status"`
}

func FromRoom(r *room.Room) *RoomResponse {
	return &RoomResponse{
		ID:         r.ID(),
		Number:     r.Number(),
		Floor:      r.Floor(),
		RoomTypeID: r.RoomTypeID(),
		Status:     r.Status().String(),
	}
}

func FromRoomView(v *queries.RoomView) *RoomResponse {
	return &RoomResponse{
		ID:           v.ID,
		Number:       v.Number,
		Floor:        v.Floor,
		RoomTypeID:   v.RoomTypeID,
		RoomTypeName: v.RoomTypeName,
		Status:       v.Status,
	}
}
