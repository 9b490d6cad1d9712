package persistence

import (
	"context"

	apptrade "github.com/shop/backend/internal/application/trade"
	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/partner"
	"github.com/shop/backend/internal/domain/trade"
	"gorm.io/gorm"
)

// GormTradeTransactionScope implements the sale service's TransactionScope
// using GORM transactions.
type GormTradeTransactionScope struct {
	db *gorm.DB
}

// NewGormTradeTransactionScope creates a new GormTradeTransactionScope.
func NewGormTradeTransactionScope(db *gorm.DB) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTradeRepositories{tx: tx})
	})
}

type gormTradeRepositories struct {
	tx *gorm.DB
}

// Sales returns the sale repository scoped to the current transaction.
func (r *gormTradeRepositories) Sales() trade.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// Products returns the product repository scoped to the current transaction.
func (r *gormTradeRepositories) Products() catalog.ProductRepository {
	return NewGormProductRepository(r.tx)
}

// Customers returns the customer repository scoped to the current transaction.
func (r *gormTradeRepositories) Customers() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

// Installments returns the installment repository scoped to the current transaction.
func (r *gormTradeRepositories) Installments() credit.InstallmentRepository {
	return NewGormInstallmentRepository(r.tx)
}

var _ apptrade.TransactionScope = (*GormTradeTransactionScope)(nil)
var _ apptrade.TransactionalRepositories = (*gormTradeRepositories)(nil)
