package kernel

import (
	"fmt"

	"b2better/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative decimal amount in the marketplace currency.
//
// Arithmetic never goes through float64, so repeated additions of prices such
// as 0.1 stay exact. The zero value is a valid amount of 0.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps amount, rejecting negative values.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, "unbounded")
	}
	return Money{amount: amount}, nil
}

// MoneyFromFloat converts an amount decoded from JSON. The float is read through
// its shortest decimal representation, so 59.99 becomes exactly 59.99.
func MoneyFromFloat(amount float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(amount))
}

// MoneyFromString parses amounts such as "129.6".
func MoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

// ZeroMoney returns an amount of 0.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the decimal value, used by storage adapters.
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other, or an error if the result would be negative.
func (m Money) Sub(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, errs.NewValueIsOutOfRangeErrorWithCause(
			"amount", result.String(), 0, "unbounded",
			fmt.Errorf("%s is greater than %s", other, m),
		)
	}
	return Money{amount: result}, nil
}

// Multiply returns m × quantity. Negative quantities are rejected.
func (m Money) Multiply(quantity int) (Money, error) {
	if quantity < 0 {
		return Money{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 0, "unbounded")
	}
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}, nil
}

// ApplyRate returns m × rate, e.g. a tax rate of 0.08. The result is not rounded.
func (m Money) ApplyRate(rate decimal.Decimal) Money {
	return Money{amount: m.amount.Mul(rate)}
}

// Divide splits m into n equal parts rounded to cents. Dividing by zero yields zero.
func (m Money) Divide(n int) Money {
	if n <= 0 {
		return ZeroMoney()
	}
	return Money{amount: m.amount.Div(decimal.NewFromInt(int64(n))).Round(2)}
}

func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// Float64 returns the nearest float64, for JSON responses only.
func (m Money) Float64() float64 {
	return m.amount.InexactFloat64()
}

func (m Money) String() string {
	return m.amount.String()
}
