package memstore

import (
	"context"
	"fmt"
	"sort"

	"hoteltrack/internal/domain/billing"
	"hoteltrack/internal/infra"
	"hoteltrack/internal/usecase/queries"
)

func cloneInvoice(inv *billing.Invoice) *billing.Invoice {
	return billing.ReconstructInvoice(
		inv.ID(), inv.StayID(), inv.GuestID(),
		inv.RoomCharges(), inv.IncidentalCharges(), inv.Taxes(), inv.Discounts(),
		inv.TotalAmount(), inv.AmountPaid(), inv.Outstanding(),
		inv.PaymentIDs(),
		inv.Status(),
		inv.IssuedAt(),
		inv.IsOverridden(),
	)
}

func (s *Store) CreateInvoice(_ context.Context, inv *billing.Invoice) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.invoiceByStay[inv.StayID()]; exists {
		return 0, infra.NewRepoErr(infra.KindDuplicateKey, fmt.Sprintf("invoice for stay %d already exists", inv.StayID()))
	}

	id := s.allocID()
	s.invoices[id] = billing.ReconstructInvoice(
		id, inv.StayID(), inv.GuestID(),
		inv.RoomCharges(), inv.IncidentalCharges(), inv.Taxes(), inv.Discounts(),
		inv.TotalAmount(), inv.AmountPaid(), inv.Outstanding(),
		inv.PaymentIDs(),
		inv.Status(),
		inv.IssuedAt(),
		inv.IsOverridden(),
	)
	s.invoiceByStay[inv.StayID()] = id
	return id, nil
}

func (s *Store) FindInvoiceByID(_ context.Context, id int64) (*billing.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, notFoundErr("invoice", id)
	}
	return cloneInvoice(inv), nil
}

func (s *Store) FindInvoiceByStay(_ context.Context, stayID int64) (*billing.Invoice, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.invoiceByStay[stayID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("no invoice for stay %d", stayID))
	}
	return cloneInvoice(s.invoices[id]), nil
}

func (s *Store) MutateInvoice(_ context.Context, id int64, fn func(*billing.Invoice) error) (*billing.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, notFoundErr("invoice", id)
	}
	next := cloneInvoice(inv)
	if err := fn(next); err != nil {
		return nil, err
	}
	s.invoices[id] = next
	return cloneInvoice(next), nil
}

func (s *Store) CreatePayment(_ context.Context, p *billing.Payment) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := s.allocID()
	s.payments[id] = billing.ReconstructPayment(id, p.Amount(), p.Method(), p.Status(), p.TransactionReference(), p.PaidAt())
	return id, nil
}

// Read side.

func invoiceView(inv *billing.Invoice) *queries.InvoiceView {
	return &queries.InvoiceView{
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

func (s *Store) FindInvoiceViewByID(_ context.Context, id int64) (*queries.InvoiceView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	inv, ok := s.invoices[id]
	if !ok {
		return nil, notFoundErr("invoice", id)
	}
	return invoiceView(inv), nil
}

func (s *Store) FindInvoiceViewByStay(_ context.Context, stayID int64) (*queries.InvoiceView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.invoiceByStay[stayID]
	if !ok {
		return nil, infra.NewRepoErr(infra.KindNotFound, fmt.Sprintf("no invoice for stay %d", stayID))
	}
	return invoiceView(s.invoices[id]), nil
}

func (s *Store) ListUnpaidInvoices(_ context.Context) ([]*queries.InvoiceView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*queries.InvoiceView
	for _, inv := range s.invoices {
		if inv.IsUnpaid() {
			out = append(out, invoiceView(inv))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindInvoicesByGuestID(_ context.Context, guestID int64) ([]*queries.InvoiceView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*queries.InvoiceView
	for _, inv := range s.invoices {
		if inv.GuestID() == guestID {
			out = append(out, invoiceView(inv))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *Store) FindPaymentsByIDs(_ context.Context, ids []int64) ([]*queries.PaymentView, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*queries.PaymentView, 0, len(ids))
	for _, id := range ids {
		p, ok := s.payments[id]
		if !ok {
			continue
		}
		out = append(out, &queries.PaymentView{
			ID:                   p.ID(),
			AmountCents:          p.Amount().Cents(),
			Method:               p.Method(),
			Status:               p.Status().String(),
			TransactionReference: p.TransactionReference(),
			PaidAt:               p.PaidAt(),
		})
	}
	return out, nil
}

type InvoiceRepo struct{ s *Store }

func NewInvoiceRepo(s *Store) *InvoiceRepo { return &InvoiceRepo{s: s} }

func (r *InvoiceRepo) Create(ctx context.Context, inv *billing.Invoice) (int64, error) {
	return r.s.CreateInvoice(ctx, inv)
}

func (r *InvoiceRepo) FindByID(ctx context.Context, id int64) (*billing.Invoice, error) {
	return r.s.FindInvoiceByID(ctx, id)
}

func (r *InvoiceRepo) FindByStay(ctx context.Context, stayID int64) (*billing.Invoice, error) {
	return r.s.FindInvoiceByStay(ctx, stayID)
}

func (r *InvoiceRepo) Mutate(ctx context.Context, id int64, fn func(*billing.Invoice) error) (*billing.Invoice, error) {
	return r.s.MutateInvoice(ctx, id, fn)
}

type PaymentRepo struct{ s *Store }

func NewPaymentRepo(s *Store) *PaymentRepo { return &PaymentRepo{s: s} }

func (r *PaymentRepo) Create(ctx context.Context, p *billing.Payment) (int64, error) {
	return r.s.CreatePayment(ctx, p)
}

// InvoiceReads implements queries.InvoiceReadStore.
type InvoiceReads struct{ s *Store }

func NewInvoiceReads(s *Store) *InvoiceReads { return &InvoiceReads{s: s} }

func (r *InvoiceReads) FindByID(ctx context.Context, id int64) (*queries.InvoiceView, error) {
	return r.s.FindInvoiceViewByID(ctx, id)
}

func (r *InvoiceReads) FindByStayID(ctx context.Context, stayID int64) (*queries.InvoiceView, error) {
	return r.s.FindInvoiceViewByStay(ctx, stayID)
}

func (r *InvoiceReads) ListUnpaid(ctx context.Context) ([]*queries.InvoiceView, error) {
	return r.s.ListUnpaidInvoices(ctx)
}

func (r *InvoiceReads) FindByGuestID(ctx context.Context, guestID int64) ([]*queries.InvoiceView, error) {
	return r.s.FindInvoicesByGuestID(ctx, guestID)
}

// PaymentReads implements queries.PaymentReadStore.
type PaymentReads struct{ s *Store }

func NewPaymentReads(s *Store) *PaymentReads { return &PaymentReads{s: s} }

func (r *PaymentReads) FindByIDs(ctx context.Context, ids []int64) ([]*queries.PaymentView, error) {
	return r.s.FindPaymentsByIDs(ctx, ids)
}
