package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/finance"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormExpenseRepository implements ExpenseRepository using GORM
type GormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GormExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) *GormExpenseRepository {
	return &GormExpenseRepository{db: db}
}

// FindByID finds an expense by its ID
func (r *GormExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*finance.Expense, error) {
	var model models.ExpenseModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds expenses matching the filter with a total count
func (r *GormExpenseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]finance.Expense, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ExpenseModel{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("LOWER(description) LIKE LOWER(?) OR LOWER(category) LIKE LOWER(?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, expenseSortFields, "date")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var expenseModels []models.ExpenseModel
	if err := query.
		Order(fmt.Sprintf("%s %s", orderBy, orderDir)).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&expenseModels).Error; err != nil {
		return nil, 0, err
	}

	expenses := make([]finance.Expense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, total, nil
}

// FindByPeriod finds expenses with date inside [from, to)
func (r *GormExpenseRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]finance.Expense, error) {
	var expenseModels []models.ExpenseModel
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&expenseModels).Error; err != nil {
		return nil, err
	}

	expenses := make([]finance.Expense, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, nil
}

// Create inserts an expense record
func (r *GormExpenseRepository) Create(ctx context.Context, expense *finance.Expense) error {
	model := models.ExpenseModelFromDomain(expense)
	return r.db.WithContext(ctx).Create(model).Error
}

// Delete deletes an expense record
func (r *GormExpenseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ExpenseModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ finance.ExpenseRepository = (*GormExpenseRepository)(nil)
