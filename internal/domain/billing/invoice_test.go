//go:build unit

package billing_test

import (
	"testing"
	"time"

	"hoteltrack/internal/domain/billing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var issuedAt = time.Date(2026, 4, 1, 11, 0, 0, 0, time.UTC)

func newTestInvoice() *billing.Invoice {
	// 3 nights x $100 + $25 incidentals, 10% tax on the sum.
	return billing.NewInvoice(1, 2, billing.NewMoney(30000), billing.NewMoney(2500), billing.NewMoney(3250), issuedAt)
}

func TestDeriveStatus(t *testing.T) {
	total := billing.NewMoney(35750)

	assert.Equal(t, billing.InvoiceStatusIssued, billing.DeriveStatus(total, billing.NewMoney(0)))
	assert.Equal(t, billing.InvoiceStatusPartiallyPaid, billing.DeriveStatus(total, billing.NewMoney(10000)))
	assert.Equal(t, billing.InvoiceStatusPaid, billing.DeriveStatus(total, total))
	assert.Equal(t, billing.InvoiceStatusPaid, billing.DeriveStatus(total, billing.NewMoney(40000)))

	// A zero total (balance wiped out by discounts) is paid even with no
	// payments recorded.
	assert.Equal(t, billing.InvoiceStatusPaid, billing.DeriveStatus(billing.NewMoney(0), billing.NewMoney(0)))
}

func TestNewInvoice(t *testing.T) {
	inv := newTestInvoice()

	assert.Equal(t, int64(35750), inv.TotalAmount().Cents())
	assert.Equal(t, int64(35750), inv.Outstanding().Cents())
	assert.Equal(t, int64(0), inv.AmountPaid().Cents())
	assert.Equal(t, billing.InvoiceStatusIssued, inv.Status())
	assert.True(t, inv.IsUnpaid())
	assert.Empty(t, inv.PaymentIDs())
}

func TestInvoiceRecordPayment(t *testing.T) {
	t.Run("partial then full", func(t *testing.T) {
		inv := newTestInvoice()

		require.NoError(t, inv.RecordPayment(10, billing.NewMoney(10000)))
		assert.Equal(t, billing.InvoiceStatusPartiallyPaid, inv.Status())
		assert.Equal(t, int64(25750), inv.Outstanding().Cents())

		require.NoError(t, inv.RecordPayment(11, billing.NewMoney(25750)))
		assert.Equal(t, billing.InvoiceStatusPaid, inv.Status())
		assert.Equal(t, int64(0), inv.Outstanding().Cents())
		assert.False(t, inv.IsUnpaid())
		assert.Equal(t, []int64{10, 11}, inv.PaymentIDs())
	})

	t.Run("overpayment still derives to paid", func(t *testing.T) {
		inv := newTestInvoice()

		require.NoError(t, inv.RecordPayment(10, billing.NewMoney(40000)))
		assert.Equal(t, billing.InvoiceStatusPaid, inv.Status())
		assert.Equal(t, int64(-4250), inv.Outstanding().Cents())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		inv := newTestInvoice()

		assert.ErrorIs(t, inv.RecordPayment(10, billing.NewMoney(0)), billing.ErrNonPositivePayment)
		assert.ErrorIs(t, inv.RecordPayment(10, billing.NewMoney(-100)), billing.ErrNonPositivePayment)
		assert.Empty(t, inv.PaymentIDs())
	})
}

func TestInvoiceApplyDiscount(t *testing.T) {
	t.Run("reduces total and outstanding", func(t *testing.T) {
		inv := newTestInvoice()

		require.NoError(t, inv.ApplyDiscount(billing.NewMoney(5000)))
		assert.Equal(t, int64(5000), inv.Discounts().Cents())
		assert.Equal(t, int64(30750), inv.TotalAmount().Cents())
		assert.Equal(t, int64(30750), inv.Outstanding().Cents())
	})

	t.Run("discount covering the balance flips to paid", func(t *testing.T) {
		inv := newTestInvoice()

		require.NoError(t, inv.RecordPayment(10, billing.NewMoney(30000)))
		require.NoError(t, inv.ApplyDiscount(billing.NewMoney(5750)))
		assert.Equal(t, billing.InvoiceStatusPaid, inv.Status())
		assert.Equal(t, int64(0), inv.Outstanding().Cents())
	})

	t.Run("full discount before any payment flips to paid", func(t *testing.T) {
		inv := newTestInvoice()

		require.NoError(t, inv.ApplyDiscount(billing.NewMoney(35750)))
		assert.Equal(t, billing.InvoiceStatusPaid, inv.Status())
		assert.Equal(t, int64(0), inv.Outstanding().Cents())
		assert.False(t, inv.IsUnpaid())
	})

	t.Run("rejects non-positive amounts", func(t *testing.T) {
		inv := newTestInvoice()

		assert.ErrorIs(t, inv.ApplyDiscount(billing.NewMoney(0)), billing.ErrNonPositiveDiscount)
	})
}

func TestInvoiceOverrideStatus(t *testing.T) {
	inv := newTestInvoice()

	require.NoError(t, inv.OverrideStatus(billing.InvoiceStatusOverdue))
	assert.Equal(t, billing.InvoiceStatusOverdue, inv.Status())
	assert.True(t, inv.IsOverridden())

	assert.ErrorIs(t, inv.OverrideStatus(billing.InvoiceStatus("Bogus")), billing.ErrInvalidStatus)

	// The next recomputing mutation re-derives the status.
	require.NoError(t, inv.RecordPayment(10, billing.NewMoney(1000)))
	assert.Equal(t, billing.InvoiceStatusPartiallyPaid, inv.Status())
	assert.False(t, inv.IsOverridden())
}
