package commands

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"hoteltrack/internal/domain/billing"
	"hoteltrack/internal/domain/stay"
	"hoteltrack/internal/infra"
	"hoteltrack/internal/pkg/clock"
	"hoteltrack/internal/pkg/errs"
)

type BillingCommands interface {
	GenerateInvoice(ctx context.Context, stayID int64) (*billing.Invoice, error)
	ProcessPayment(ctx context.Context, invoiceID, amountCents int64, method string) (*billing.Payment, error)
	ApplyDiscount(ctx context.Context, invoiceID, amountCents int64, reason string) (*billing.Invoice, error)
	OverrideInvoiceStatus(ctx context.Context, invoiceID int64, status billing.InvoiceStatus) error
}

type billingCommands struct {
	invoices     InvoiceRepository
	payments     PaymentRepository
	stays        StayRepository
	charges      ChargeRepository
	reservations ReservationRepository
	rooms        RoomRepository
	roomTypes    RoomTypeRepository
	clock        clock.Clock
	logger       *slog.Logger
}

func NewBillingCommands(
	invoices InvoiceRepository,
	payments PaymentRepository,
	stays StayRepository,
	charges ChargeRepository,
	reservations ReservationRepository,
	rooms RoomRepository,
	roomTypes RoomTypeRepository,
	clk clock.Clock,
	logger *slog.Logger,
) BillingCommands {
	return &billingCommands{
		invoices:     invoices,
		payments:     payments,
		stays:        stays,
		charges:      charges,
		reservations: reservations,
		rooms:        rooms,
		roomTypes:    roomTypes,
		clock:        clk,
		logger:       logger,
	}
}

// GenerateInvoice computes the stay's charges and issues its invoice:
//
//	roomCharges       = nights x room-type base price, at the rates in
//	                    effect at checkout
//	incidentalCharges = sum of the stay's recorded charges
//	taxes             = (roomCharges + incidentalCharges) x taxRate
//	totalAmount       = roomCharges + incidentalCharges + taxes - discounts
//
// Nights come from the originating reservation's date range; walk-ins are
// charged per started night with a one-night minimum. Exactly one invoice
// exists per stay: repeat calls return the already-issued invoice.
func (c *billingCommands) GenerateInvoice(ctx context.Context, stayID int64) (*billing.Invoice, error) {
	if existing, err := c.invoices.FindByStay(ctx, stayID); err == nil {
		return existing, nil
	} else if !infra.IsKind(err, infra.KindNotFound) {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	st, err := c.stays.FindByID(ctx, stayID)
	if err != nil {
		return nil, markLookupErr(err, ErrStayNotFound)
	}

	rm, err := c.rooms.FindByID(ctx, st.RoomID())
	if err != nil {
		return nil, markLookupErr(err, ErrRoomNotFound)
	}
	roomType, err := c.roomTypes.FindByID(ctx, rm.RoomTypeID())
	if err != nil {
		return nil, markLookupErr(err, ErrRoomTypeNotFound)
	}

	now := c.clock.Now()
	checkout := now
	if st.CheckOutTime() != nil {
		checkout = *st.CheckOutTime()
	}

	nights, err := c.chargeableNights(ctx, st, checkout)
	if err != nil {
		return nil, err
	}

	incidentalCents, err := c.charges.SumByStay(ctx, stayID)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	roomCharges := billing.NewMoney(roomType.BasePriceCents()).Mul(int64(nights))
	incidentals := billing.NewMoney(incidentalCents)
	taxes := roomCharges.Add(incidentals).ApplyRate(roomType.TaxRate())

	invoice := billing.NewInvoice(stayID, st.GuestID(), roomCharges, incidentals, taxes, now)

	invoiceID, err := c.invoices.Create(ctx, invoice)
	if err != nil {
		// Lost the race against a concurrent checkout; the winner's
		// invoice is the invoice.
		if infra.IsKind(err, infra.KindDuplicateKey) {
			return c.invoices.FindByStay(ctx, stayID)
		}
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	c.logger.Info("generated invoice",
		"invoice_id", invoiceID,
		"stay_id", stayID,
		"nights", nights,
		"room_cents", roomCharges.Cents(),
		"incidental_cents", incidentals.Cents(),
		"tax_cents", taxes.Cents(),
		"total_cents", invoice.TotalAmount().Cents(),
	)
	return c.invoices.FindByID(ctx, invoiceID)
}

// ProcessPayment records a completed payment against the invoice and
// re-derives its status. Overpayment is accepted and recorded as-is.
func (c *billingCommands) ProcessPayment(ctx context.Context, invoiceID, amountCents int64, method string) (*billing.Payment, error) {
	amount := billing.NewMoney(amountCents)

	payment, err := billing.NewPayment(amount, method, newTransactionRef(), c.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, ErrDomainValidation)
	}

	if _, err := c.invoices.FindByID(ctx, invoiceID); err != nil {
		return nil, markLookupErr(err, ErrInvoiceNotFound)
	}

	paymentID, err := c.payments.Create(ctx, payment)
	if err != nil {
		return nil, errs.Mark(err, ErrStoreFailure)
	}

	inv, err := c.invoices.Mutate(ctx, invoiceID, func(i *billing.Invoice) error {
		return i.RecordPayment(paymentID, amount)
	})
	if err != nil {
		return nil, c.mapMutateErr(err)
	}

	c.logger.Info("processed payment",
		"invoice_id", invoiceID,
		"payment_id", paymentID,
		"amount_cents", amountCents,
		"method", payment.Method(),
		"transaction_ref", payment.TransactionReference(),
		"outstanding_cents", inv.Outstanding().Cents(),
		"status", inv.Status().String(),
	)
	return billing.ReconstructPayment(paymentID, amount, payment.Method(), payment.Status(), payment.TransactionReference(), payment.PaidAt()), nil
}

// ApplyDiscount accumulates the discount and recomputes the invoice. The
// status is re-derived like any other mutation, so a discount that covers
// the whole balance marks the invoice Paid.
func (c *billingCommands) ApplyDiscount(ctx context.Context, invoiceID, amountCents int64, reason string) (*billing.Invoice, error) {
	inv, err := c.invoices.Mutate(ctx, invoiceID, func(i *billing.Invoice) error {
		return i.ApplyDiscount(billing.NewMoney(amountCents))
	})
	if err != nil {
		return nil, c.mapMutateErr(err)
	}

	c.logger.Info("applied discount",
		"invoice_id", invoiceID,
		"amount_cents", amountCents,
		"reason", strings.TrimSpace(reason),
		"total_cents", inv.TotalAmount().Cents(),
	)
	return inv, nil
}

// OverrideInvoiceStatus is the explicit manual correction path (marking an
// invoice Overdue, voiding a derivation). It is the only operation allowed
// to bypass the derived-status rule.
func (c *billingCommands) OverrideInvoiceStatus(ctx context.Context, invoiceID int64, status billing.InvoiceStatus) error {
	if _, err := c.invoices.Mutate(ctx, invoiceID, func(i *billing.Invoice) error {
		return i.OverrideStatus(status)
	}); err != nil {
		return c.mapMutateErr(err)
	}

	c.logger.Warn("manually overrode invoice status", "invoice_id", invoiceID, "status", status.String())
	return nil
}

// chargeableNights is the reservation's booked span when the stay came from
// one; walk-ins pay per started night with a one-night floor.
func (c *billingCommands) chargeableNights(ctx context.Context, st *stay.Stay, checkout time.Time) (int, error) {
	if resID := st.ReservationID(); resID != nil {
		res, err := c.reservations.FindByID(ctx, *resID)
		if err != nil {
			return 0, markLookupErr(err, ErrReservationNotFound)
		}
		return res.Dates().Nights(), nil
	}
	return st.Nights(checkout), nil
}

func (c *billingCommands) mapMutateErr(err error) error {
	switch {
	case infra.IsKind(err, infra.KindNotFound):
		return errs.Mark(err, ErrInvoiceNotFound)
	case errors.Is(err, billing.ErrNonPositivePayment) ||
		errors.Is(err, billing.ErrNonPositiveDiscount) ||
		errors.Is(err, billing.ErrInvalidStatus):
		return errs.Mark(err, ErrDomainValidation)
	default:
		return errs.Mark(err, ErrStoreFailure)
	}
}

func newTransactionRef() string {
	return strings.ToUpper(uuid.NewString()[:8])
}
