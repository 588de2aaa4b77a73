package gormstore

import (
	"context"

	"gorm.io/gorm"

	"hoteltrack/internal/domain/billing"
	"hoteltrack/internal/infra"
	"hoteltrack/internal/usecase/queries"
)

type InvoiceRepo struct{ db *gorm.DB }

func NewInvoiceRepo(s *Store) *InvoiceRepo { return &InvoiceRepo{db: s.db} }

func (r *InvoiceRepo) Create(ctx context.Context, inv *billing.Invoice) (int64, error) {
	row, err := invoiceRow(inv)
	if err != nil {
		return 0, infra.WrapRepoErr(infra.KindDBFailure, "encode invoice", err)
	}
	row.ID = 0
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, mapWriteErr(err, "invoice")
	}
	return row.ID, nil
}

func (r *InvoiceRepo) FindByID(ctx context.Context, id int64) (*billing.Invoice, error) {
	var row InvoiceRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapFindErr(err, "invoice", id)
	}
	inv, err := row.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "decode invoice", err)
	}
	return inv, nil
}

func (r *InvoiceRepo) FindByStay(ctx context.Context, stayID int64) (*billing.Invoice, error) {
	var row InvoiceRow
	if err := r.db.WithContext(ctx).Where("stay_id = ?", stayID).First(&row).Error; err != nil {
		return nil, mapFindErr(err, "invoice for stay", stayID)
	}
	inv, err := row.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "decode invoice", err)
	}
	return inv, nil
}

func (r *InvoiceRepo) Mutate(ctx context.Context, id int64, fn func(*billing.Invoice) error) (*billing.Invoice, error) {
	var out *billing.Invoice
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row InvoiceRow
		if err := tx.First(&row, id).Error; err != nil {
			return mapFindErr(err, "invoice", id)
		}
		entity, err := row.toDomain()
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "decode invoice", err)
		}
		if err := fn(entity); err != nil {
			return err
		}
		updated, err := invoiceRow(entity)
		if err != nil {
			return infra.WrapRepoErr(infra.KindDBFailure, "encode invoice", err)
		}
		if err := tx.Save(&updated).Error; err != nil {
			return mapWriteErr(err, "invoice")
		}
		out = entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

type PaymentRepo struct{ db *gorm.DB }

func NewPaymentRepo(s *Store) *PaymentRepo { return &PaymentRepo{db: s.db} }

func (r *PaymentRepo) Create(ctx context.Context, p *billing.Payment) (int64, error) {
	row := PaymentRow{
		AmountCents:          p.Amount().Cents(),
		Method:               p.Method(),
		Status:               p.Status().String(),
		TransactionReference: p.TransactionReference(),
		PaidAt:               p.PaidAt(),
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return 0, mapWriteErr(err, "payment")
	}
	return row.ID, nil
}

// InvoiceReads implements queries.InvoiceReadStore.
type InvoiceReads struct{ db *gorm.DB }

func NewInvoiceReads(s *Store) *InvoiceReads { return &InvoiceReads{db: s.db} }

func invoiceViewFromRow(row InvoiceRow) (*queries.InvoiceView, error) {
	inv, err := row.toDomain()
	if err != nil {
		return nil, infra.WrapRepoErr(infra.KindDBFailure, "decode invoice", err)
	}
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
	}, nil
}

func (r *InvoiceReads) FindByID(ctx context.Context, id int64) (*queries.InvoiceView, error) {
	var row InvoiceRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		return nil, mapFindErr(err, "invoice", id)
	}
	return invoiceViewFromRow(row)
}

func (r *InvoiceReads) FindByStayID(ctx context.Context, stayID int64) (*queries.InvoiceView, error) {
	var row InvoiceRow
	if err := r.db.WithContext(ctx).Where("stay_id = ?", stayID).First(&row).Error; err != nil {
		return nil, mapFindErr(err, "invoice for stay", stayID)
	}
	return invoiceViewFromRow(row)
}

// ListUnpaid selects on the stored outstanding balance, not on status:
// a fully discounted or overridden invoice with nothing left to collect
// is not unpaid regardless of what its status says.
func (r *InvoiceReads) ListUnpaid(ctx context.Context) ([]*queries.InvoiceView, error) {
	var rows []InvoiceRow
	err := r.db.WithContext(ctx).
		Where("outstanding_cents > 0").
		Order("id").
		Find(&rows).Error
	if err != nil {
		return nil, mapReadErr(err, "invoice")
	}
	out := make([]*queries.InvoiceView, 0, len(rows))
	for _, row := range rows {
		view, err := invoiceViewFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

func (r *InvoiceReads) FindByGuestID(ctx context.Context, guestID int64) ([]*queries.InvoiceView, error) {
	var rows []InvoiceRow
	err := r.db.WithContext(ctx).Where("guest_id = ?", guestID).Order("id").Find(&rows).Error
	if err != nil {
		return nil, mapReadErr(err, "invoice")
	}
	out := make([]*queries.InvoiceView, 0, len(rows))
	for _, row := range rows {
		view, err := invoiceViewFromRow(row)
		if err != nil {
			return nil, err
		}
		out = append(out, view)
	}
	return out, nil
}

// PaymentReads implements queries.PaymentReadStore.
type PaymentReads struct{ db *gorm.DB }

func NewPaymentReads(s *Store) *PaymentReads { return &PaymentReads{db: s.db} }

func (r *PaymentReads) FindByIDs(ctx context.Context, ids []int64) ([]*queries.PaymentView, error) {
	if len(ids) == 0 {
		return []*queries.PaymentView{}, nil
	}
	var views []*queries.PaymentView
	err := r.db.WithContext(ctx).Model(&PaymentRow{}).
		Select("id, amount_cents, method, status, transaction_reference, paid_at").
		Where("id in ?", ids).
		Order("id").
		Find(&views).Error
	if err != nil {
		return nil, mapReadErr(err, "payment")
	}
	return views, nil
}
