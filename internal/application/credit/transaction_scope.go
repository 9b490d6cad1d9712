package credit

import (
	"context"

	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/partner"
)

// TransactionScope provides transactional access to the repositories an
// allocation touches. Every repository operation inside Execute is part of
// one database transaction: either all of an allocation's writes land or
// none do.
type TransactionScope interface {
	// Execute runs fn within a database transaction. If fn returns an
	// error the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories scoped to the current
// transaction. The customer repository's FindByIDForUpdate is the
// per-customer serialization point for concurrent allocations.
type TransactionalRepositories interface {
	Installments() credit.InstallmentRepository
	Customers() partner.CustomerRepository
	Receipts() credit.PaymentReceiptRepository
}

// NoOpTransactionScope runs the function without a real transaction.
// Useful for testing or when transaction support is not required.
type NoOpTransactionScope struct {
	installments credit.InstallmentRepository
	customers    partner.CustomerRepository
	receipts     credit.PaymentReceiptRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	installments credit.InstallmentRepository,
	customers partner.CustomerRepository,
	receipts credit.PaymentReceiptRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		installments: installments,
		customers:    customers,
		receipts:     receipts,
	}
}

// Execute runs the function directly, outside any transaction.
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// Installments returns the installment repository.
func (s *NoOpTransactionScope) Installments() credit.InstallmentRepository {
	return s.installments
}

// Customers returns the customer repository.
func (s *NoOpTransactionScope) Customers() partner.CustomerRepository {
	return s.customers
}

// Receipts returns the payment receipt repository.
func (s *NoOpTransactionScope) Receipts() credit.PaymentReceiptRepository {
	return s.receipts
}

var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
