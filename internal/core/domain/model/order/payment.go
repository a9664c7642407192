package order

import (
	"fmt"
	"time"

	"b2better/internal/pkg/errs"
)

// PaymentMethod is how the customer pays for an order.
type PaymentMethod string

const (
	CreditCard   PaymentMethod = "credit_card"
	BankTransfer PaymentMethod = "bank_transfer"
	Check        PaymentMethod = "check"
	PayPal       PaymentMethod = "paypal"
	Stripe       PaymentMethod = "stripe"
)

// ParsePaymentMethod validates raw input.
func ParsePaymentMethod(s string) (PaymentMethod, error) {
	switch m := PaymentMethod(s); m {
	case CreditCard, BankTransfer, Check, PayPal, Stripe:
		return m, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("paymentMethod", fmt.Errorf("%q is not a valid payment method", s))
	}
}

func (m PaymentMethod) String() string { return string(m) }

// PaymentStatus tracks settlement of an order's payment.
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPaid     PaymentStatus = "paid"
	PaymentFailed   PaymentStatus = "failed"
	PaymentRefunded PaymentStatus = "refunded"
)

// ParsePaymentStatus validates a persisted payment status.
func ParsePaymentStatus(s string) (PaymentStatus, error) {
	switch ps := PaymentStatus(s); ps {
	case PaymentPending, PaymentPaid, PaymentFailed, PaymentRefunded:
		return ps, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("payment.status", fmt.Errorf("%q is not a valid payment status", s))
	}
}

func (s PaymentStatus) String() string { return string(s) }

// Payment is the payment record of an order.
type Payment struct {
	method        PaymentMethod
	status        PaymentStatus
	transactionID string
	paidAt        *time.Time
}

// NewPayment starts a payment in PaymentPending.
func NewPayment(method PaymentMethod) (Payment, error) {
	if _, err := ParsePaymentMethod(string(method)); err != nil {
		return Payment{}, err
	}
	return Payment{method: method, status: PaymentPending}, nil
}

// RestorePayment rebuilds a persisted payment record.
func RestorePayment(method PaymentMethod, status PaymentStatus, transactionID string, paidAt *time.Time) Payment {
	return Payment{method: method, status: status, transactionID: transactionID, paidAt: paidAt}
}

func (p Payment) Method() PaymentMethod { return p.method }
func (p Payment) Status() PaymentStatus { return p.status }
func (p Payment) TransactionID() string { return p.transactionID }
func (p Payment) PaidAt() *time.Time { return p.paidAt }

// Notes are free-text remarks: customer notes come from checkout, internal
// notes are reserved for staff.
type Notes struct {
	customer string
	internal string
}

func NewNotes(customer, internal string) Notes {
	return Notes{customer: customer, internal: internal}
}

func (n Notes) Customer() string { return n.customer }
func (n Notes) Internal() string { return n.internal }
