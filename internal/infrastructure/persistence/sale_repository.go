package persistence

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/trade"
	"github.com/shop/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormSaleRepository implements SaleRepository using GORM.
// Sales are append-only; there is no update path.
type GormSaleRepository struct {
	db *gorm.DB
}

// NewGormSaleRepository creates a new GormSaleRepository
func NewGormSaleRepository(db *gorm.DB) *GormSaleRepository {
	return &GormSaleRepository{db: db}
}

// FindByID finds a sale with its items by ID
func (r *GormSaleRepository) FindByID(ctx context.Context, id uuid.UUID) (*trade.Sale, error) {
	var model models.SaleModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll finds sales matching the filter with a total count
func (r *GormSaleRepository) FindAll(ctx context.Context, filter shared.Filter) ([]trade.Sale, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SaleModel{})

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	orderBy := ValidateSortField(filter.OrderBy, saleSortFields, "date")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var saleModels []models.SaleModel
	if err := query.
		Preload("Items").
		Order(fmt.Sprintf("%s %s", orderBy, orderDir)).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&saleModels).Error; err != nil {
		return nil, 0, err
	}

	sales := make([]trade.Sale, len(saleModels))
	for i, model := range saleModels {
		sales[i] = *model.ToDomain()
	}
	return sales, total, nil
}

// FindByPeriod finds sales with date inside [from, to)
func (r *GormSaleRepository) FindByPeriod(ctx context.Context, from, to time.Time) ([]trade.Sale, error) {
	var saleModels []models.SaleModel
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Where("date >= ? AND date < ?", from, to).
		Order("date ASC").
		Find(&saleModels).Error; err != nil {
		return nil, err
	}

	sales := make([]trade.Sale, len(saleModels))
	for i, model := range saleModels {
		sales[i] = *model.ToDomain()
	}
	return sales, nil
}

// Create inserts a sale with its items
func (r *GormSaleRepository) Create(ctx context.Context, sale *trade.Sale) error {
	model := models.SaleModelFromDomain(sale)
	return r.db.WithContext(ctx).Create(model).Error
}

var _ trade.SaleRepository = (*GormSaleRepository)(nil)
