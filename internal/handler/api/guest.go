package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	reqdto "hoteltrack/internal/handler/dto/request"
	resdto "hoteltrack/internal/handler/dto/response"
	"hoteltrack/internal/usecase/commands"
	"hoteltrack/internal/usecase/queries"
)

type GuestHandler struct {
	guestCommands commands.GuestCommands
	guestQueries  queries.GuestQueries
}

func NewGuestHandler(guestCommands commands.GuestCommands, guestQueries queries.GuestQueries) *GuestHandler {
	return &GuestHandler{guestCommands: guestCommands, guestQueries: guestQueries}
}

func (h *GuestHandler) Register(c *gin.Context) {
	var req reqdto.GuestProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	g, err := h.guestCommands.RegisterGuest(c.Request.Context(), commands.GuestProfileParams{
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		IdentificationNumber: req.IdentificationNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromGuest(g))
}

func (h *GuestHandler) Search(c *gin.Context) {
	views, err := h.guestQueries.SearchGuests(c.Request.Context(), c.Query("search"))
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]*resdto.GuestResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromGuestView(v))
	}
	c.JSON(http.StatusOK, out)
}

func (h *GuestHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.guestQueries.GetGuest(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuestView(view))
}

func (h *GuestHandler) UpdateProfile(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req reqdto.GuestProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	g, err := h.guestCommands.UpdateGuestProfile(c.Request.Context(), id, commands.GuestProfileParams{
		Name:                 req.Name,
		Email:                req.Email,
		Phone:                req.Phone,
		IdentificationNumber: req.IdentificationNumber,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuest(g))
}

func (h *GuestHandler) Deactivate(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req reqdto.DeactivateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	g, err := h.guestCommands.DeactivateGuest(c.Request.Context(), id, req.Justification)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromGuest(g))
}
