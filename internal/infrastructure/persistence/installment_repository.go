package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormInstallmentRepository implements InstallmentRepository using GORM
type GormInstallmentRepository struct {
	db *gorm.DB
}

// NewGormInstallmentRepository creates a new GormInstallmentRepository
func NewGormInstallmentRepository(db *gorm.DB) *GormInstallmentRepository {
	return &GormInstallmentRepository{db: db}
}

// FindByID finds an installment by its ID
func (r *GormInstallmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*credit.Installment, error) {
	var model models.InstallmentModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListPending returns the customer's pending installments in allocation
// order: due date ascending, ties broken by installment number.
func (r *GormInstallmentRepository) ListPending(ctx context.Context, customerID uuid.UUID) ([]*credit.Installment, error) {
	var installmentModels []models.InstallmentModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ? AND status = ?", customerID, credit.InstallmentStatusPending.String()).
		Order("due_date ASC, number ASC").
		Find(&installmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainInstallments(installmentModels), nil
}

// ListByCustomer returns all installments of a customer, newest schedule first
func (r *GormInstallmentRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*credit.Installment, error) {
	var installmentModels []models.InstallmentModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("due_date ASC, number ASC").
		Find(&installmentModels).Error; err != nil {
		return nil, err
	}
	return toDomainInstallments(installmentModels), nil
}

// ListAll finds installments matching the filter with a total count
func (r *GormInstallmentRepository) ListAll(ctx context.Context, filter shared.Filter) ([]*credit.Installment, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.InstallmentModel{})

	if filter.Search != "" {
		query = query.Where("status = ?", filter.Search)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, installmentSortFields, "due_date")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var installmentModels []models.InstallmentModel
	if err := query.
		Order(fmt.Sprintf("%s %s", orderBy, orderDir)).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&installmentModels).Error; err != nil {
		return nil, 0, err
	}
	return toDomainInstallments(installmentModels), total, nil
}

// Save updates an installment
func (r *GormInstallmentRepository) Save(ctx context.Context, installment *credit.Installment) error {
	model := models.InstallmentModelFromDomain(installment)
	return r.db.WithContext(ctx).Save(model).Error
}

// CreateBatch inserts a generated schedule in one statement
func (r *GormInstallmentRepository) CreateBatch(ctx context.Context, installments []*credit.Installment) error {
	if len(installments) == 0 {
		return nil
	}
	installmentModels := make([]*models.InstallmentModel, len(installments))
	for i, inst := range installments {
		installmentModels[i] = models.InstallmentModelFromDomain(inst)
	}
	return r.db.WithContext(ctx).Create(installmentModels).Error
}

func toDomainInstallments(installmentModels []models.InstallmentModel) []*credit.Installment {
	installments := make([]*credit.Installment, len(installmentModels))
	for i := range installmentModels {
		installments[i] = installmentModels[i].ToDomain()
	}
	return installments
}

var _ credit.InstallmentRepository = (*GormInstallmentRepository)(nil)
