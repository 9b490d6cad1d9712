package finance

import (
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest represents a request to record an expense
type CreateExpenseRequest struct {
	Date          *time.Time      `json:"date"`
	Description   string          `json:"description" binding:"required,min=1,max=500"`
	Category      string          `json:"category" binding:"max=100"`
	Value         decimal.Decimal `json:"value" binding:"required,dgt0"`
	PaymentMethod string          `json:"payment_method" binding:"max=50"`
}

// ExpenseResponse represents an expense in API responses
type ExpenseResponse struct {
	ID            uuid.UUID       `json:"id"`
	Date          time.Time       `json:"date"`
	Description   string          `json:"description"`
	Category      string          `json:"category"`
	Value         decimal.Decimal `json:"value"`
	PaymentMethod string          `json:"payment_method"`
	CreatedAt     time.Time       `json:"created_at"`
}

// ToExpenseResponse converts a domain expense to a response DTO
func ToExpenseResponse(e *finance.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:            e.ID,
		Date:          e.Date,
		Description:   e.Description,
		Category:      e.Category,
		Value:         e.Value,
		PaymentMethod: e.PaymentMethod,
		CreatedAt:     e.CreatedAt,
	}
}
