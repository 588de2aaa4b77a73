package billing

import (
	"errors"
	"strings"
	"time"
)

var (
	ErrEmptyPaymentMethod = errors.New("payment method cannot be empty")
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCompleted PaymentStatus = "Completed"
	PaymentStatusFailed    PaymentStatus = "Failed"
	PaymentStatusRefunded  PaymentStatus = "Refunded"
)

func (s PaymentStatus) String() string {
	return string(s)
}

// Payment is a single settlement against an invoice. It is appended to
// exactly one invoice's payment list at creation and never removed.
type Payment struct {
	id          int64
	amount      Money
	method      string
	status      PaymentStatus
	transaction string
	paidAt      time.Time
}

// NewPayment creates a Completed payment with the given unique transaction
// reference.
func NewPayment(amount Money, method, transactionRef string, now time.Time) (*Payment, error) {
	if !amount.IsPositive() {
		return nil, ErrNonPositivePayment
	}
	method = strings.TrimSpace(method)
	if method == "" {
		return nil, ErrEmptyPaymentMethod
	}

	return &Payment{
		amount:      amount,
		method:      method,
		status:      PaymentStatusCompleted,
		transaction: transactionRef,
		paidAt:      now,
	}, nil
}

func ReconstructPayment(id int64, amount Money, method string, status PaymentStatus, transactionRef string, paidAt time.Time) *Payment {
	return &Payment{
		id:          id,
		amount:      amount,
		method:      method,
		status:      status,
		transaction: transactionRef,
		paidAt:      paidAt,
	}
}

func (p *Payment) ID() int64                    { return p.id }
func (p *Payment) Amount() Money                { return p.amount }
func (p *Payment) Method() string               { return p.method }
func (p *Payment) Status() PaymentStatus        { return p.status }
func (p *Payment) TransactionReference() string { return p.transaction }
func (p *Payment) PaidAt() time.Time            { return p.paidAt }
