package response

import (
	"time"

	"hoteltrack/internal/domain/billing"
	"hoteltrack/internal/usecase/queries"
)

type InvoiceResponse struct {
	ID                     int64     `json:"id"`
	StayID                 int64     `json:"stayId"`
	GuestID                int64     `json:"guestId"`
	RoomChargesCents       int64     `json:"roomChargesCents"`
	IncidentalChargesCents int64     `json:"incidentalChargesCents"`
	TaxesCents             int64     `json:"taxesCents"`
	DiscountsCents         int64     `json:"discountsCents"`
	TotalAmountCents       int64     `json:"totalAmountCents"`
	AmountPaidCents        int64     `json:"amountPaidCents"`
	OutstandingCents       int64     `json:"outstandingCents"`
	Status                 string    `json:"status"`
	IssuedAt               time.Time `json:"issuedAt"`
	PaymentIDs             []int64   `json:"paymentIds"`
}

func FromInvoice(inv *billing.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:                     inv.ID(),
		StayID:                 inv.StayID(),
		GuestID:                inv.GuestID(),
		RoomChargesCents:       inv.RoomCharges().Cents(),
		IncidentalChargesCents: inv.IncidentalCharges().Cents(),
		TaxesCents:             inv.Taxes().Cents(),
		DiscountsCents:         inv.Discounts().Cents(),
		TotalAmountCents:       inv.TotalAmount().Cents(),
		AmountPaidCents:        inv.AmountPaid().Cents(),
		OutstandingCents:       inv.Outstanding().Cents(),
		Status:                 inv.Status().String(),
		IssuedAt:               inv.IssuedAt(),
		PaymentIDs:             inv.PaymentIDs(),
	}
}

func FromInvoiceView(v *queries.InvoiceView) *InvoiceResponse {
	return &InvoiceResponse{
		ID:                     v.ID,
		StayID:                 v.StayID,
		GuestID:                v.GuestID,
		RoomChargesCents:       v.RoomChargesCents,
		IncidentalChargesCents: v.IncidentalChargesCents,
		TaxesCents:             v.TaxesCents,
		DiscountsCents:         v.DiscountsCents,
		TotalAmountCents:       v.TotalAmountCents,
		AmountPaidCents:        v.AmountPaidCents,
		OutstandingCents:       v.OutstandingCents,
		Status:                 v.Status,
		IssuedAt:               v.IssuedAt,
		PaymentIDs:             v.PaymentIDs,
	}
}

type PaymentResponse struct {
	ID                   int64     `json:"id"`
	AmountCents          int64     `json:"amountCents"`
	Method               string    `json:"method"`
	Status               string    `json:"status"`
	TransactionReference string    `json:"transactionReference"`
	PaidAt               time.Time `json:"paidAt"`
}

func FromPayment(p *billing.Payment) *PaymentResponse {
	return &PaymentResponse{
		ID:                   p.ID(),
		AmountCents:          p.Amount().Cents(),
		Method:               p.Method(),
		Status:               p.Status().String(),
		TransactionReference: p.TransactionReference(),
		PaidAt:               p.PaidAt(),
	}
}

func FromPaymentView(v *queries.PaymentView) *PaymentResponse {
	return &PaymentResponse{
		ID:                   v.ID,
		AmountCents:          v.AmountCents,
		Method:               v.Method,
		Status:               v.Status,
		TransactionReference: v.TransactionReference,
		PaidAt:               v.PaidAt,
	}
}
