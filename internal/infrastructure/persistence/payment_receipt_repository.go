package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

// GormPaymentReceiptRepository implements PaymentReceiptRepository using GORM
type GormPaymentReceiptRepository struct {
	db *gorm.DB
}

// NewGormPaymentReceiptRepository creates a new GormPaymentReceiptRepository
func NewGormPaymentReceiptRepository(db *gorm.DB) *GormPaymentReceiptRepository {
	return &GormPaymentReceiptRepository{db: db}
}

// Create inserts a receipt. A violated idempotency-key unique index surfaces
// as a duplicate payment, failing the surrounding transaction before it can
// re-apply the payment.
func (r *GormPaymentReceiptRepository) Create(ctx context.Context, receipt *credit.PaymentReceipt) error {
	model := models.PaymentReceiptModelFromDomain(receipt)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrDuplicatePayment
		}
		return err
	}
	return nil
}

// FindByIdempotencyKey finds the receipt committed under the given key
func (r *GormPaymentReceiptRepository) FindByIdempotencyKey(ctx context.Context, key string) (*credit.PaymentReceipt, error) {
	var model models.PaymentReceiptModel
	if err := r.db.WithContext(ctx).
		First(&model, "idempotency_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListByCustomer returns the customer's receipts, newest first
func (r *GormPaymentReceiptRepository) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*credit.PaymentReceipt, error) {
	var receiptModels []models.PaymentReceiptModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at DESC").
		Find(&receiptModels).Error; err != nil {
		return nil, err
	}

	receipts := make([]*credit.PaymentReceipt, len(receiptModels))
	for i := range receiptModels {
		receipts[i] = receiptModels[i].ToDomain()
	}
	return receipts, nil
}

var _ credit.PaymentReceiptRepository = (*GormPaymentReceiptRepository)(nil)
