package partner

import (
	"strings"
	"time"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Customer represents a shop customer in the partner context.
// It is the aggregate root for customer-related operations.
//
// TotalBought and TotalPaid are cumulative, monotonically increasing
// counters. They are informational: the authoritative debt of a customer is
// the sum of its pending installment values. TotalBought is written only by
// sale creation and TotalPaid only by the payment allocator, never by
// customer CRUD.
type Customer struct {
	shared.BaseAggregateRoot
	Name        string
	Phone       string
	BirthDate   *time.Time
	TotalBought decimal.Decimal
	TotalPaid   decimal.Decimal
}

// NewCustomer creates a new customer with required fields
func NewCustomer(name, phone string) (*Customer, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	if len(name) > 200 {
		return nil, shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot exceed 200 characters")
	}

	return &Customer{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Phone:             strings.TrimSpace(phone),
		TotalBought:       decimal.Zero,
		TotalPaid:         decimal.Zero,
	}, nil
}

// UpdateContact updates the customer's mutable contact data
func (c *Customer) UpdateContact(name, phone string, birthDate *time.Time) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_CUSTOMER_NAME", "Customer name cannot be empty")
	}
	c.Name = name
	c.Phone = strings.TrimSpace(phone)
	c.BirthDate = birthDate
	c.Touch()
	c.IncrementVersion()
	return nil
}

// IncrementBought adds a sale total to the cumulative bought counter.
// Called exclusively by sale creation.
func (c *Customer) IncrementBought(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	c.TotalBought = c.TotalBought.Add(amount)
	c.Touch()
	c.IncrementVersion()
	return nil
}

// IncrementPaid adds a received payment to the cumulative paid counter.
// Called exclusively by the payment allocator, unconditionally for the full
// amount received, even when the payment exceeds all outstanding debt.
func (c *Customer) IncrementPaid(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	c.TotalPaid = c.TotalPaid.Add(amount)
	c.Touch()
	c.IncrementVersion()
	return nil
}

// Debt returns the informational debt derived from the cumulative counters.
func (c *Customer) Debt() decimal.Decimal {
	return c.TotalBought.Sub(c.TotalPaid)
}
