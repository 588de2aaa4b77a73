package api

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	reqdto "hoteltrack/internal/handler/dto/request"
	resdto "hoteltrack/internal/handler/dto/response"
	"hoteltrack/internal/usecase/commands"
	"hoteltrack/internal/usecase/queries"
)

type ReservationHandler struct {
	reservationCommands commands.ReservationCommands
	reservationQueries  queries.ReservationQueries
}

func NewReservationHandler(reservationCommands commands.ReservationCommands, reservationQueries queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{
		reservationCommands: reservationCommands,
		reservationQueries:  reservationQueries,
	}
}

func (h *ReservationHandler) Create(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	res, err := h.reservationCommands.Create(c.Request.Context(), commands.CreateReservationParams{
		GuestID:         req.GuestID,
		RoomTypeID:      req.RoomTypeID,
		CheckIn:         req.CheckIn,
		CheckOut:        req.CheckOut,
		Occupancy:       req.Occupancy,
		SpecialRequests: req.SpecialRequests,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromReservation(res))
}

func (h *ReservationHandler) List(c *gin.Context) {
	var (
		views []*queries.ReservationView
		err   error
	)
	if guestIDStr := c.Query("guest_id"); guestIDStr != "" {
		guestID, parseErr := strconv.ParseInt(guestIDStr, 10, 64)
		if parseErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest_id format"})
			return
		}
		views, err = h.reservationQueries.ListByGuest(c.Request.Context(), guestID)
	} else {
		views, err = h.reservationQueries.ListByStatus(c.Request.Context(), c.Query("status"))
	}
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]*resdto.ReservationResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromReservationView(v))
	}
	c.JSON(http.StatusOK, out)
}

func (h *ReservationHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) Modify(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req reqdto.ModifyReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	res, err := h.reservationCommands.Modify(c.Request.Context(), id, commands.ModifyReservationParams{
		CheckIn:   req.CheckIn,
		CheckOut:  req.CheckOut,
		Occupancy: req.Occupancy,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

func (h *ReservationHandler) Confirm(c *gin.Context) {
	h.transition(c, h.reservationCommands.Confirm)
}

func (h *ReservationHandler) Cancel(c *gin.Context) {
	h.transition(c, h.reservationCommands.Cancel)
}

func (h *ReservationHandler) MarkNoShow(c *gin.Context) {
	h.transition(c, h.reservationCommands.MarkNoShow)
}

func (h *ReservationHandler) AssignRoom(c *gin.Context) {
	h.assign(c, h.reservationCommands.AssignRoom)
}

func (h *ReservationHandler) ReassignRoom(c *gin.Context) {
	h.assign(c, h.reservationCommands.ReassignRoom)
}

func (h *ReservationHandler) SearchAvailableRooms(c *gin.Context) {
	checkIn, err := time.Parse("2006-01-02", c.Query("check_in"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check_in format"})
		return
	}
	checkOut, err := time.Parse("2006-01-02", c.Query("check_out"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid check_out format"})
		return
	}
	roomTypeID, err := strconv.ParseInt(c.Query("room_type_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid room_type_id format"})
		return
	}
	occupancy, err := strconv.Atoi(c.DefaultQuery("occupancy", "1"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid occupancy format"})
		return
	}

	roomIDs, err := h.reservationCommands.SearchAvailableRooms(c.Request.Context(), checkIn, checkOut, roomTypeID, occupancy)
	if err != nil {
		respondError(c, err)
		return
	}
	if roomIDs == nil {
		roomIDs = []int64{}
	}
	c.JSON(http.StatusOK, resdto.AvailableRoomsResponse{RoomIDs: roomIDs})
}

func (h *ReservationHandler) transition(c *gin.Context, op func(ctx context.Context, id int64) error) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := op(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

func (h *ReservationHandler) assign(c *gin.Context, op func(ctx context.Context, id, roomID int64) error) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req reqdto.AssignRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := op(c.Request.Context(), id, req.RoomID); err != nil {
		respondError(c, err)
		return
	}
	view, err := h.reservationQueries.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}
