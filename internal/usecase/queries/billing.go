package queries

import (
	"context"
	"time"

	"hoteltrack/internal/infra"
	"hoteltrack/internal/pkg/errs"
)

var ErrInvoiceNotFound = errs.New("invoice not found")

type InvoiceView struct {
	ID                     int64     `json:"id"`
	StayID                 int64     `json:"stay_id"`
	GuestID                int64     `json:"guest_id"`
	RoomChargesCents       int64     `json:"room_charges_cents"`
	IncidentalChargesCents int64     `json:"incidental_charges_cents"`
	TaxesCents             int64     `json:"taxes_cents"`
	DiscountsCents         int64     `json:"discounts_cents"`
	TotalAmountCents       int64     `json:"total_amount_cents"`
	AmountPaidCents        int64     `json:"amount_paid_cents"`
	OutstandingCents       int64     `json:"outstanding_cents"`
	Status                 string    `json:"status"`
	IssuedAt               time.Time `json:"issued_at"`
	PaymentIDs             []int64   `json:"payment_ids"`
}

type PaymentView struct {
	ID                   int64     `json:"id"`
	AmountCents          int64     `json:"amount_cents"`
	Method               string    `json:"method"`
	Status               string    `json:"status"`
	TransactionReference string    `json:"transaction_reference"`
	PaidAt               time.Time `json:"paid_at"`
}

type BillingQueries interface {
	GetInvoice(ctx context.Context, id int64) (*InvoiceView, error)
	GetInvoiceByStay(ctx context.Context, stayID int64) (*InvoiceView, error)
	ListUnpaidInvoices(ctx context.Context) ([]*InvoiceView, error)
	ListInvoicesByGuest(ctx context.Context, guestID int64) ([]*InvoiceView, error)
	ListPayments(ctx context.Context, invoiceID int64) ([]*PaymentView, error)
	// TotalChargesByStay is zero for a stay that has not been invoiced yet.
	TotalChargesByStay(ctx context.Context, stayID int64) (int64, error)
}

type InvoiceReadStore interface {
	FindByID(ctx context.Context, id int64) (*InvoiceView, error)
	FindByStayID(ctx context.Context, stayID int64) (*InvoiceView, error)
	ListUnpaid(ctx context.Context) ([]*InvoiceView, error)
	FindByGuestID(ctx context.Context, guestID int64) ([]*InvoiceView, error)
}

type PaymentReadStore interface {
	FindByIDs(ctx context.Context, ids []int64) ([]*PaymentView, error)
}

type billingQueriesImpl struct {
	invoices InvoiceReadStore
	payments PaymentReadStore
}

func NewBillingQueries(invoices InvoiceReadStore, payments PaymentReadStore) BillingQueries {
	return &billingQueriesImpl{invoices: invoices, payments: payments}
}

func (q *billingQueriesImpl) GetInvoice(ctx context.Context, id int64) (*InvoiceView, error) {
	inv, err := q.invoices.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (q *billingQueriesImpl) GetInvoiceByStay(ctx context.Context, stayID int64) (*InvoiceView, error) {
	inv, err := q.invoices.FindByStayID(ctx, stayID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	return inv, nil
}

func (q *billingQueriesImpl) ListUnpaidInvoices(ctx context.Context) ([]*InvoiceView, error) {
	return q.invoices.ListUnpaid(ctx)
}

func (q *billingQueriesImpl) ListInvoicesByGuest(ctx context.Context, guestID int64) ([]*InvoiceView, error) {
	return q.invoices.FindByGuestID(ctx, guestID)
}

func (q *billingQueriesImpl) TotalChargesByStay(ctx context.Context, stayID int64) (int64, error) {
	inv, err := q.invoices.FindByStayID(ctx, stayID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return inv.TotalAmountCents, nil
}

func (q *billingQueriesImpl) ListPayments(ctx context.Context, invoiceID int64) ([]*PaymentView, error) {
	inv, err := q.invoices.FindByID(ctx, invoiceID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrInvoiceNotFound
		}
		return nil, err
	}
	if len(inv.PaymentIDs) == 0 {
		return []*PaymentView{}, nil
	}
	return q.payments.FindByIDs(ctx, inv.PaymentIDs)
}
