package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	reqdto "hoteltrack/internal/handler/dto/request"
	resdto "hoteltrack/internal/handler/dto/response"
	"hoteltrack/internal/usecase/commands"
	"hoteltrack/internal/usecase/queries"
)

type StayHandler struct {
	stayCommands commands.StayCommands
	stayQueries  queries.StayQueries
}

func NewStayHandler(stayCommands commands.StayCommands, stayQueries queries.StayQueries) *StayHandler {
	return &StayHandler{stayCommands: stayCommands, stayQueries: stayQueries}
}

func (h *StayHandler) CheckIn(c *gin.Context) {
	var req reqdto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	st, err := h.stayCommands.CheckInGuest(c.Request.Context(), req.ReservationID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStay(st))
}

func (h *StayHandler) WalkIn(c *gin.Context) {
	var req reqdto.WalkInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	st, err := h.stayCommands.CheckInWalkIn(c.Request.Context(), req.GuestID, req.RoomID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromStay(st))
}

// List returns the stay history for a guest. Active stays across all
// rooms are served by ListActive instead.
func (h *StayHandler) List(c *gin.Context) {
	guestID, err := strconv.ParseInt(c.Query("guest_id"), 10, 64)
	if err != nil || guestID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest_id format"})
		return
	}
	views, err := h.stayQueries.ListStaysByGuest(c.Request.Context(), guestID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]*resdto.StayResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromStayView(v))
	}
	c.JSON(http.StatusOK, out)
}

func (h *StayHandler) ListActive(c *gin.Context) {
	views, err := h.stayQueries.ListActiveStays(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]*resdto.StayResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromStayView(v))
	}
	c.JSON(http.StatusOK, out)
}

func (h *StayHandler) ActiveByRoom(c *gin.Context) {
	view, err := h.stayQueries.ActiveStayByRoom(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStayView(view))
}

func (h *StayHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.stayQueries.GetStay(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromStayView(view))
}

func (h *StayHandler) RecordCharge(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req reqdto.RecordChargeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	charge, err := h.stayCommands.RecordCharge(c.Request.Context(), id, req.ServiceType, req.Description, req.AmountCents)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCharge(charge))
}

func (h *StayHandler) ListCharges(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	views, err := h.stayQueries.ListCharges(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]*resdto.ChargeResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromChargeView(v))
	}
	c.JSON(http.StatusOK, out)
}

func (h *StayHandler) CheckOut(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	invoice, err := h.stayCommands.CheckOutGuest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoice(invoice))
}

func (h *StayHandler) Balance(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	outstanding, err := h.stayQueries.OutstandingBalance(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.BalanceResponse{StayID: id, OutstandingCents: outstanding})
}
