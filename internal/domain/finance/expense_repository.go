package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/shared"
)

// ExpenseRepository defines persistence operations for expense records
type ExpenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Expense, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]Expense, int64, error)
	FindByPeriod(ctx context.Context, from, to time.Time) ([]Expense, error)
	Create(ctx context.Context, expense *Expense) error
	Delete(ctx context.Context, id uuid.UUID) error
}
