package persistence

import (
	"context"

	appcredit "github.com/shop/backend/internal/application/credit"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/partner"
	"gorm.io/gorm"
)

// GormCreditTransactionScope implements the allocator's TransactionScope
// using GORM transactions. Every repository handed out inside Execute runs
// on the same transaction, so an allocation's writes commit or roll back as
// one unit.
type GormCreditTransactionScope struct {
	db *gorm.DB
}

// NewGormCreditTransactionScope creates a new GormCreditTransactionScope.
func NewGormCreditTransactionScope(db *gorm.DB) *GormCreditTransactionScope {
	return &GormCreditTransactionScope{db: db}
}

// Execute runs the given function within a database transaction.
func (s *GormCreditTransactionScope) Execute(ctx context.Context, fn func(repos appcredit.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormCreditRepositories{tx: tx})
	})
}

type gormCreditRepositories struct {
	tx *gorm.DB
}

// Installments returns the installment repository scoped to the current transaction.
func (r *gormCreditRepositories) Installments() credit.InstallmentRepository {
	return NewGormInstallmentRepository(r.tx)
}

// Customers returns the customer repository scoped to the current transaction.
func (r *gormCreditRepositories) Customers() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

// Receipts returns the payment receipt repository scoped to the current transaction.
func (r *gormCreditRepositories) Receipts() credit.PaymentReceiptRepository {
	return NewGormPaymentReceiptRepository(r.tx)
}

var _ appcredit.TransactionScope = (*GormCreditTransactionScope)(nil)
var _ appcredit.TransactionalRepositories = (*gormCreditRepositories)(nil)
