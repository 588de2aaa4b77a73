package billing

import (
	"errors"
	"time"
)

var (
	ErrNonPositivePayment  = errors.New("payment amount must be greater than zero")
	ErrNonPositiveDiscount = errors.New("discount amount must be greater than zero")
	ErrInvalidStatus       = errors.New("invalid invoice status")
)

type InvoiceStatus string

const (
	InvoiceStatusDraft         InvoiceStatus = "Draft"
	InvoiceStatusIssued        InvoiceStatus = "Issued"
	InvoiceStatusPaid          InvoiceStatus = "Paid"
	InvoiceStatusPartiallyPaid InvoiceStatus = "PartiallyPaid"
	InvoiceStatusOverdue       InvoiceStatus = "Overdue"
)

func (s InvoiceStatus) String() string {
	return string(s)
}

func (s InvoiceStatus) IsValid() bool {
	switch s {
	case InvoiceStatusDraft, InvoiceStatusIssued, InvoiceStatusPaid, InvoiceStatusPartiallyPaid, InvoiceStatusOverdue:
		return true
	default:
		return false
	}
}

// DeriveStatus is the pure function of (totalAmount, amountPaid) that invoice
// status must follow at all times:
//
//	outstanding <= 0            -> Paid
//	amountPaid == 0             -> Issued
//	otherwise                   -> PartiallyPaid
//
// Outstanding is checked first so an invoice whose balance was wiped out by
// discounts counts as Paid even before any payment arrives. The only way
// around the derivation is the explicit manual override operation.
func DeriveStatus(total, amountPaid Money) InvoiceStatus {
	if total.Sub(amountPaid).IsZeroOrNegative() {
		return InvoiceStatusPaid
	}
	if amountPaid.Cents() == 0 {
		return InvoiceStatusIssued
	}
	return InvoiceStatusPartiallyPaid
}

// Invoice is the financial summary of a stay. Invariants, maintained by
// every mutation:
//
//	totalAmount        == roomCharges + incidentalCharges + taxes - discounts
//	outstandingBalance == totalAmount - amountPaid
type Invoice struct {
	id                int64
	stayID            int64
	guestID           int64
	roomCharges       Money
	incidentalCharges Money
	taxes             Money
	discounts         Money
	totalAmount       Money
	amountPaid        Money
	outstanding       Money
	paymentIDs        []int64
	status            InvoiceStatus
	issuedAt          time.Time
	overridden        bool
}

// NewInvoice issues an invoice from computed charge components; discounts
// start at zero and nothing is paid.
func NewInvoice(stayID, guestID int64, roomCharges, incidentalCharges, taxes Money, now time.Time) *Invoice {
	total := roomCharges.Add(incidentalCharges).Add(taxes)
	return &Invoice{
		stayID:            stayID,
		guestID:           guestID,
		roomCharges:       roomCharges,
		incidentalCharges: incidentalCharges,
		taxes:             taxes,
		discounts:         NewMoney(0),
		totalAmount:       total,
		amountPaid:        NewMoney(0),
		outstanding:       total,
		status:            InvoiceStatusIssued,
		issuedAt:          now,
	}
}

func ReconstructInvoice(
	id, stayID, guestID int64,
	roomCharges, incidentalCharges, taxes, discounts, totalAmount, amountPaid, outstanding Money,
	paymentIDs []int64,
	status InvoiceStatus,
	issuedAt time.Time,
	overridden bool,
) *Invoice {
	return &Invoice{
		id:                id,
		stayID:            stayID,
		guestID:           guestID,
		roomCharges:       roomCharges,
		incidentalCharges: incidentalCharges,
		taxes:             taxes,
		discounts:         discounts,
		totalAmount:       totalAmount,
		amountPaid:        amountPaid,
		outstanding:       outstanding,
		paymentIDs:        paymentIDs,
		status:            status,
		issuedAt:          issuedAt,
		overridden:        overridden,
	}
}

func (i *Invoice) ID() int64                { return i.id }
func (i *Invoice) StayID() int64            { return i.stayID }
func (i *Invoice) GuestID() int64           { return i.guestID }
func (i *Invoice) RoomCharges() Money       { return i.roomCharges }
func (i *Invoice) IncidentalCharges() Money { return i.incidentalCharges }
func (i *Invoice) Taxes() Money             { return i.taxes }
func (i *Invoice) Discounts() Money         { return i.discounts }
func (i *Invoice) TotalAmount() Money       { return i.totalAmount }
func (i *Invoice) AmountPaid() Money        { return i.amountPaid }
func (i *Invoice) Outstanding() Money       { return i.outstanding }
func (i *Invoice) Status() InvoiceStatus    { return i.status }
func (i *Invoice) IssuedAt() time.Time      { return i.issuedAt }
func (i *Invoice) IsOverridden() bool       { return i.overridden }

// PaymentIDs returns the ordered payment references; the slice is a copy.
func (i *Invoice) PaymentIDs() []int64 {
	out := make([]int64, len(i.paymentIDs))
	copy(out, i.paymentIDs)
	return out
}

func (i *Invoice) IsUnpaid() bool {
	return i.outstanding.IsPositive()
}

// RecordPayment appends a completed payment and recomputes the paid and
// outstanding amounts. Overpayment is accepted and recorded as-is; the
// resulting negative outstanding still derives to Paid.
func (i *Invoice) RecordPayment(paymentID int64, amount Money) error {
	if !amount.IsPositive() {
		return ErrNonPositivePayment
	}
	i.paymentIDs = append(i.paymentIDs, paymentID)
	i.amountPaid = i.amountPaid.Add(amount)
	i.recompute()
	return nil
}

// ApplyDiscount accumulates into discounts and recomputes totals. Status is
// re-derived like any other mutation, so a discount covering the whole
// outstanding balance flips the invoice to Paid.
func (i *Invoice) ApplyDiscount(amount Money) error {
	if !amount.IsPositive() {
		return ErrNonPositiveDiscount
	}
	i.discounts = i.discounts.Add(amount)
	i.recompute()
	return nil
}

// OverrideStatus is the manual correction path (e.g. marking Overdue). It
// bypasses the derived-status rule until the next recomputing mutation.
func (i *Invoice) OverrideStatus(status InvoiceStatus) error {
	if !status.IsValid() {
		return ErrInvalidStatus
	}
	i.status = status
	i.overridden = true
	return nil
}

func (i *Invoice) recompute() {
	i.totalAmount = i.roomCharges.Add(i.incidentalCharges).Add(i.taxes).Sub(i.discounts)
	i.outstanding = i.totalAmount.Sub(i.amountPaid)
	i.status = DeriveStatus(i.totalAmount, i.amountPaid)
	i.overridden = false
}
