package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"hoteltrack/internal/domain/billing"
	reqdto "hoteltrack/internal/handler/dto/request"
	resdto "hoteltrack/internal/handler/dto/response"
	"hoteltrack/internal/usecase/commands"
	"hoteltrack/internal/usecase/queries"
)

type BillingHandler struct {
	billingCommands commands.BillingCommands
	billingQueries  queries.BillingQueries
}

func NewBillingHandler(billingCommands commands.BillingCommands, billingQueries queries.BillingQueries) *BillingHandler {
	return &BillingHandler{billingCommands: billingCommands, billingQueries: billingQueries}
}

func (h *BillingHandler) GetInvoice(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.billingQueries.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// TotalChargesByStay reports the invoiced total for a stay, zero when no
// invoice has been generated yet.
func (h *BillingHandler) TotalChargesByStay(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	total, err := h.billingQueries.TotalChargesByStay(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.TotalChargesResponse{StayID: id, TotalAmountCents: total})
}

func (h *BillingHandler) GetInvoiceByStay(c *gin.Context) {
	id, ok := parseID(c, "stayId")
	if !ok {
		return
	}
	view, err := h.billingQueries.GetInvoiceByStay(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}

// ListInvoices lists by guest when guest_id is given, otherwise
// returns the unpaid backlog.
func (h *BillingHandler) ListInvoices(c *gin.Context) {
	ctx := c.Request.Context()

	if guestIDStr := c.Query("guest_id"); guestIDStr != "" {
		guestID, parseErr := strconv.ParseInt(guestIDStr, 10, 64)
		if parseErr != nil || guestID <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid guest_id format"})
			return
		}
		views, err := h.billingQueries.ListInvoicesByGuest(ctx, guestID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, invoiceResponses(views))
		return
	}

	views, err := h.billingQueries.ListUnpaidInvoices(ctx)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, invoiceResponses(views))
}

func invoiceResponses(views []*queries.InvoiceView) []*resdto.InvoiceResponse {
	out := make([]*resdto.InvoiceResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromInvoiceView(v))
	}
	return out
}

func (h *BillingHandler) ProcessPayment(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req reqdto.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	payment, err := h.billingCommands.ProcessPayment(c.Request.Context(), id, req.AmountCents, req.Method)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromPayment(payment))
}

func (h *BillingHandler) ListPayments(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	views, err := h.billingQueries.ListPayments(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]*resdto.PaymentResponse, 0, len(views))
	for _, v := range views {
		out = append(out, resdto.FromPaymentView(v))
	}
	c.JSON(http.StatusOK, out)
}

func (h *BillingHandler) ApplyDiscount(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req reqdto.DiscountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	invoice, err := h.billingCommands.ApplyDiscount(c.Request.Context(), id, req.AmountCents, req.Reason)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoice(invoice))
}

func (h *BillingHandler) OverrideStatus(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req reqdto.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	status := billing.InvoiceStatus(req.Status)
	if !status.IsValid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown invoice status"})
		return
	}

	if err := h.billingCommands.OverrideInvoiceStatus(c.Request.Context(), id, status); err != nil {
		respondError(c, err)
		return
	}

	view, err := h.billingQueries.GetInvoice(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromInvoiceView(view))
}
