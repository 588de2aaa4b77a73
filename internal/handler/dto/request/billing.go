package request

type PaymentRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required"`
	Method      string `json:"method" binding:"required"`
}

type DiscountRequest struct {
	AmountCents int64  `json:"amount_cents" binding:"required"`
	Reason      string `json:"reason"`
}

type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
