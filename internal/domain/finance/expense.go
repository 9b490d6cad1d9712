package finance

import (
	"strings"
	"time"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Expense is a money outflow of the shop (rent, suppliers, utilities).
// Expenses are simple records: created once, listed by period.
type Expense struct {
	shared.BaseEntity
	Date          time.Time
	Description   string
	Category      string
	Value         decimal.Decimal
	PaymentMethod string
}

// NewExpense creates an expense record
func NewExpense(date time.Time, description, category string, value decimal.Decimal, paymentMethod string) (*Expense, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Expense description cannot be empty")
	}
	if !value.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}
	if date.IsZero() {
		date = time.Now()
	}

	return &Expense{
		BaseEntity:    shared.NewBaseEntity(),
		Date:          date,
		Description:   description,
		Category:      strings.TrimSpace(category),
		Value:         value,
		PaymentMethod: strings.TrimSpace(paymentMethod),
	}, nil
}
