package credit

import (
	"context"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/shared"
)

// InstallmentRepository defines persistence operations for installments
type InstallmentRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Installment, error)

	// ListPending returns every pending installment of the customer ordered
	// by due date ascending, ties broken by installment number ascending.
	ListPending(ctx context.Context, customerID uuid.UUID) ([]*Installment, error)

	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*Installment, error)
	ListAll(ctx context.Context, filter shared.Filter) ([]*Installment, int64, error)

	// CreateBatch inserts a generated schedule atomically with its sale
	Save(ctx context.Context, installment *Installment) error
	CreateBatch(ctx context.Context, installments []*Installment) error
}

// PaymentReceiptRepository stores allocation audit records.
// Create must fail with a duplicate-key error when a receipt with the same
// idempotency key already exists.
type PaymentReceiptRepository interface {
	Create(ctx context.Context, receipt *PaymentReceipt) error
	FindByIdempotencyKey(ctx context.Context, key string) (*PaymentReceipt, error)
	ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]*PaymentReceipt, error)
}
