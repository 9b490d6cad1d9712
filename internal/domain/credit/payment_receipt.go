package credit

import (
	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentReceipt is the audit record of one allocation call: who paid, how
// much, which installment triggered the cascade and what the cascade did.
// Receipts are append-only.
//
// IdempotencyKey is optional. When the caller supplies one, a unique index
// on the key makes a retried call fail inside the same transaction that
// would re-apply the payment, so a retry can never double-credit the
// customer. Without a key, a repeated identical call is applied again;
// deduplication is the caller's responsibility.
type PaymentReceipt struct {
	shared.BaseEntity
	CustomerID           uuid.UUID
	TriggerInstallmentID uuid.UUID
	Amount               decimal.Decimal
	InstallmentsSettled  int
	RemainingCredit      decimal.Decimal
	IdempotencyKey       *string
}

// NewPaymentReceipt creates a receipt for a completed allocation
func NewPaymentReceipt(customerID, triggerInstallmentID uuid.UUID, amount decimal.Decimal, alloc *Allocation, idempotencyKey string) *PaymentReceipt {
	r := &PaymentReceipt{
		BaseEntity:           shared.NewBaseEntity(),
		CustomerID:           customerID,
		TriggerInstallmentID: triggerInstallmentID,
		Amount:               amount,
		InstallmentsSettled:  alloc.Processed,
		RemainingCredit:      alloc.RemainingCredit,
	}
	if idempotencyKey != "" {
		r.IdempotencyKey = &idempotencyKey
	}
	return r
}
