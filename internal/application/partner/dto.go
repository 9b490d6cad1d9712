package partner

import (
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// CreateCustomerRequest represents a request to create a new customer
type CreateCustomerRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	Phone     string     `json:"phone" binding:"max=50"`
	BirthDate *time.Time `json:"birth_date"`
}

// UpdateCustomerRequest represents a request to update a customer's contact
// data. The cumulative purchase counters are never writable through this
// request.
type UpdateCustomerRequest struct {
	Name      string     `json:"name" binding:"required,min=1,max=200"`
	Phone     string     `json:"phone" binding:"max=50"`
	BirthDate *time.Time `json:"birth_date"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID          uuid.UUID       `json:"id"`
	Name        string          `json:"name"`
	Phone       string          `json:"phone"`
	BirthDate   *time.Time      `json:"birth_date,omitempty"`
	TotalBought decimal.Decimal `json:"total_bought"`
	TotalPaid   decimal.Decimal `json:"total_paid"`
	Debt        decimal.Decimal `json:"debt"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ToCustomerResponse converts a domain customer to a response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          c.ID,
		Name:        c.Name,
		Phone:       c.Phone,
		BirthDate:   c.BirthDate,
		TotalBought: c.TotalBought,
		TotalPaid:   c.TotalPaid,
		Debt:        c.Debt(),
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}
