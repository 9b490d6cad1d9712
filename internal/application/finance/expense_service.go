package finance

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/finance"
	"github.com/shop/backend/internal/domain/shared"
)

// ExpenseService handles expense recording and queries
type ExpenseService struct {
	expenseRepo finance.ExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo finance.ExpenseRepository) *ExpenseService {
	return &ExpenseService{
		expenseRepo: expenseRepo,
	}
}

// Create records a new expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	date := time.Time{}
	if req.Date != nil {
		date = *req.Date
	}

	expense, err := finance.NewExpense(date, req.Description, req.Category, req.Value, req.PaymentMethod)
	if err != nil {
		return nil, err
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// GetByID retrieves an expense by ID
func (s *ExpenseService) GetByID(ctx context.Context, expenseID uuid.UUID) (*ExpenseResponse, error) {
	expense, err := s.expenseRepo.FindByID(ctx, expenseID)
	if err != nil {
		return nil, err
	}

	response := ToExpenseResponse(expense)
	return &response, nil
}

// List retrieves expenses matching the filter
func (s *ExpenseService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[ExpenseResponse], error) {
	expenses, total, err := s.expenseRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.Limit())
	return &result, nil
}

// ListByPeriod retrieves expenses within [from, to)
func (s *ExpenseService) ListByPeriod(ctx context.Context, from, to time.Time) ([]ExpenseResponse, error) {
	expenses, err := s.expenseRepo.FindByPeriod(ctx, from, to)
	if err != nil {
		return nil, err
	}

	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i])
	}
	return responses, nil
}

// Delete removes an expense record
func (s *ExpenseService) Delete(ctx context.Context, expenseID uuid.UUID) error {
	if _, err := s.expenseRepo.FindByID(ctx, expenseID); err != nil {
		return err
	}
	return s.expenseRepo.Delete(ctx, expenseID)
}
