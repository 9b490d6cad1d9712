package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Currency represents a currency code (ISO 4217)
type Currency string

// BRL is the only currency this deployment operates in.
// Amounts are plain decimals everywhere; Money exists to validate and
// normalize values crossing the API boundary.
const BRL Currency = "BRL"

// Money is a value object representing a monetary amount in BRL.
// It is immutable - all operations return new Money instances.
type Money struct {
	amount decimal.Decimal
}

// NewMoney creates Money from a decimal amount
func NewMoney(amount decimal.Decimal) Money {
	return Money{amount: amount}
}

// NewMoneyFromFloat creates Money from a float64 value
func NewMoneyFromFloat(amount float64) Money {
	return Money{amount: decimal.NewFromFloat(amount)}
}

// NewMoneyFromString creates Money from a string representation
func NewMoneyFromString(amount string) (Money, error) {
	d, err := decimal.NewFromString(amount)
	if err != nil {
		return Money{}, fmt.Errorf("invalid amount string: %w", err)
	}
	return Money{amount: d}, nil
}

// Zero returns a zero-value Money
func Zero() Money {
	return Money{amount: decimal.Zero}
}

// Amount returns the decimal amount
func (m Money) Amount() decimal.Decimal {
	return m.amount
}

// Currency returns the currency code
func (m Money) Currency() Currency {
	return BRL
}

// IsZero returns true if the amount is zero
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive returns true if the amount is positive
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsNegative returns true if the amount is negative
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// HasCentPrecision reports whether the amount has at most two decimal places.
// Payment amounts are constrained to cent precision at the boundary.
func (m Money) HasCentPrecision() bool {
	return m.amount.Equal(m.amount.Round(2))
}

// Add returns a new Money with the sum of both amounts
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns a new Money with the difference of both amounts
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// RoundCents returns a new Money rounded to two decimal places
func (m Money) RoundCents() Money {
	return Money{amount: m.amount.Round(2)}
}

// Equal returns true if both amounts are equal
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns a human readable representation, e.g. "R$ 1234.50"
func (m Money) String() string {
	return "R$ " + m.amount.StringFixed(2)
}

// RoundCents rounds a raw decimal to two decimal places.
// Helper for domain code that works on decimals directly.
func RoundCents(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
