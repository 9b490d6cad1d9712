package persistence

import (
	"context"
	"time"

	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/report"
	"github.com/shop/backend/internal/domain/trade"
	"github.com/shop/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormReportRepository implements report.Repository with SQL aggregations.
// Read-only; sums run directly in the database.
type GormReportRepository struct {
	db *gorm.DB
}

// NewGormReportRepository creates a new GormReportRepository
func NewGormReportRepository(db *gorm.DB) *GormReportRepository {
	return &GormReportRepository{db: db}
}

// SumPaymentsReceived sums payment receipts inside [from, to)
func (r *GormReportRepository) SumPaymentsReceived(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.PaymentReceiptModel{}).
		Where("created_at >= ? AND created_at < ?", from, to).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&total).Error
	return total, err
}

// SumImmediateSales sums non-credit sales inside [from, to)
func (r *GormReportRepository) SumImmediateSales(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.SaleModel{}).
		Where("date >= ? AND date < ? AND payment_method <> ?", from, to, trade.PaymentMethodInstallment.String()).
		Select("COALESCE(SUM(total_value), 0)").
		Scan(&total).Error
	return total, err
}

// SumExpenses sums expenses inside [from, to)
func (r *GormReportRepository) SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.ExpenseModel{}).
		Where("date >= ? AND date < ?", from, to).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error
	return total, err
}

// SumPendingInstallments sums the remaining value of all pending installments
func (r *GormReportRepository) SumPendingInstallments(ctx context.Context) (decimal.Decimal, error) {
	var total decimal.Decimal
	err := r.db.WithContext(ctx).
		Model(&models.InstallmentModel{}).
		Where("status = ?", credit.InstallmentStatusPending.String()).
		Select("COALESCE(SUM(value), 0)").
		Scan(&total).Error
	return total, err
}

var _ report.Repository = (*GormReportRepository)(nil)
