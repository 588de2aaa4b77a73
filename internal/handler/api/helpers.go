package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hoteltrack/internal/handler/httperr"
	"hoteltrack/internal/usecase/commands"
	"hoteltrack/internal/usecase/queries"
)

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name + " format"})
		return 0, false
	}
	return id, true
}

// respondError maps usecase sentinels onto HTTP statuses: validation 400,
// missing entities 404, state machine conflicts 409, everything else 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Domain validation failed: " + rootMessage(err)})
	case errors.Is(err, commands.ErrGuestNotFound) || errors.Is(err, queries.ErrGuestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Guest not found"})
	case errors.Is(err, commands.ErrRoomTypeNotFound) || errors.Is(err, queries.ErrRoomTypeNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room type not found"})
	case errors.Is(err, commands.ErrRoomNotFound) || errors.Is(err, queries.ErrRoomNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Room not found"})
	case errors.Is(err, commands.ErrReservationNotFound) || errors.Is(err, queries.ErrReservationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Reservation not found"})
	case errors.Is(err, commands.ErrStayNotFound) || errors.Is(err, queries.ErrStayNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Stay not found"})
	case errors.Is(err, commands.ErrInvoiceNotFound) || errors.Is(err, queries.ErrInvoiceNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Invoice not found"})
	case errors.Is(err, queries.ErrNoActiveStay):
		c.JSON(http.StatusNotFound, gin.H{"error": "No active stay for room"})
	case errors.Is(err, commands.ErrDuplicateRoomType):
		c.JSON(http.StatusConflict, gin.H{"error": "Room type already exists"})
	case errors.Is(err, commands.ErrDuplicateRoom):
		c.JSON(http.StatusConflict, gin.H{"error": "Room already exists"})
	case errors.Is(err, commands.ErrRoomUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": "Room is not available for the requested dates"})
	case errors.Is(err, commands.ErrNoRoomAssigned):
		c.JSON(http.StatusConflict, gin.H{"error": "Reservation has no room assigned"})
	case errors.Is(err, commands.ErrStayNotActive):
		c.JSON(http.StatusConflict, gin.H{"error": "Stay is not active"})
	case errors.Is(err, commands.ErrStateConflict):
		c.JSON(http.StatusConflict, gin.H{"error": "Operation conflicts with current state"})
	case errors.Is(err, queries.ErrInvalidStatusFilter):
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status filter"})
	default:
		// Keep the original error on the context for the logging middleware.
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// rootMessage digs out the innermost cause so validation responses carry the
// domain message, not the wrap chain.
func rootMessage(err error) string {
	for {
		unwrapped := errors.Unwrap(err)
		if unwrapped == nil {
			return err.Error()
		}
		err = unwrapped
	}
}
