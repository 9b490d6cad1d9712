package trade

import (
	"context"

	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/partner"
	"github.com/shop/backend/internal/domain/trade"
)

// TransactionScope provides transactional access to the repositories a sale
// creation touches. The sale record, stock decrements, the installment
// schedule and the customer's bought counter commit or roll back together.
type TransactionScope interface {
	// Execute runs fn within a database transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories scoped to the current
// transaction.
type TransactionalRepositories interface {
	Sales() trade.SaleRepository
	Products() catalog.ProductRepository
	Customers() partner.CustomerRepository
	Installments() credit.InstallmentRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	sales        trade.SaleRepository
	products     catalog.ProductRepository
	customers    partner.CustomerRepository
	installments credit.InstallmentRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	sales trade.SaleRepository,
	products catalog.ProductRepository,
	customers partner.CustomerRepository,
	installments credit.InstallmentRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		sales:        sales,
		products:     products,
		customers:    customers,
		installments: installments,
	}
}

// Execute runs the function directly, outside any transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Sales returns the sale repository.
func (s *NoOpTransactionScope) Sales() trade.SaleRepository {
	return s.sales
}

// Products returns the product repository.
func (s *NoOpTransactionScope) Products() catalog.ProductRepository {
	return s.products
}

// Customers returns the customer repository.
func (s *NoOpTransactionScope) Customers() partner.CustomerRepository {
	return s.customers
}

// Installments returns the installment repository.
func (s *NoOpTransactionScope) Installments() credit.InstallmentRepository {
	return s.installments
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
