package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hoteltrack/internal/domain/room"
	reqdto "hoteltrack/internal/handler/dto/request"
	resdto "hoteltrack/internal/handler/dto/response"
	"hoteltrack/internal/usecase/commands"
	"hoteltrack/internal/usecase/queries"
)

type RoomHandler struct {
	roomCommands commands.RoomCommands
	roomQueries  queries.RoomQueries
}

func NewRoomHandler(roomCommands commands.RoomCommands, roomQueries queries.RoomQueries) *RoomHandler {
	return &RoomHandler{roomCommands: roomCommands, roomQueries: roomQueries}
}

func (h *RoomHandler) CreateRoomType(c *gin.Context) {
	var req reqdto.CreateRoomTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	roomType, err := h.roomCommands.CreateRoomType(c.Request.Context(), commands.CreateRoomTypeParams{
		Name:           req.Name,
		Description:    req.Description,
		MaxOccupancy:   req.MaxOccupancy,
		BasePriceCents: req.BasePriceCents,
		TaxRate:        req.TaxRate,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoomType(roomType))
}

func (h *RoomHandler) ListRoomTypes(c *gin.Context) {
	views, err := h.roomQueries.ListRoomTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]*resdto.RoomTypeResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromRoomTypeView(v))
	}
	c.JSON(http.StatusOK, out)
}

func (h *RoomHandler) UpdatePricing(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req reqdto.UpdatePricingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	roomType, err := h.roomCommands.UpdateRoomPricing(c.Request.Context(), id, req.BasePriceCents, req.TaxRate)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomType(roomType))
}

func (h *RoomHandler) CreateRoom(c *gin.Context) {
	var req reqdto.CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.roomCommands.CreateRoom(c.Request.Context(), commands.CreateRoomParams{
		Number:     req.Number,
		Floor:      req.Floor,
		RoomTypeID: req.RoomTypeID,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRoom(rm))
}

func (h *RoomHandler) ListRooms(c *gin.Context) {
	views, err := h.roomQueries.ListRooms(c.Request.Context(), c.Query("status"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]*resdto.RoomResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromRoomView(v))
	}
	c.JSON(http.StatusOK, out)
}

func (h *RoomHandler) GetRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.roomQueries.GetRoom(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoomView(view))
}

func (h *RoomHandler) SetStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req reqdto.SetRoomStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rm, err := h.roomCommands.SetRoomStatus(c.Request.Context(), id, room.Status(req.Status))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRoom(rm))
}

func (h *RoomHandler) DeleteRoom(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.roomCommands.DeleteRoom(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
