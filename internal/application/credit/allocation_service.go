package credit

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AllocationService distributes customer payments across pending
// installments. It is the only component that mutates installments after
// creation and the only writer of the customer's total_paid counter.
type AllocationService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewAllocationService creates a new AllocationService
func NewAllocationService(txScope TransactionScope, logger *zap.Logger) *AllocationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AllocationService{
		txScope: txScope,
		logger:  logger,
	}
}

// PaymentRequest is one payment collected against a customer's ledger.
// TriggerInstallmentID identifies the installment the operator acted on; it
// only resolves which customer's ledger to cascade against and gets no
// special treatment in the cascade order.
type PaymentRequest struct {
	TriggerInstallmentID uuid.UUID
	Amount               decimal.Decimal

	// IdempotencyKey, when non-empty, makes a retried call with the same
	// key fail with DUPLICATE_PAYMENT instead of applying the payment
	// twice. Without a key, retries re-apply the payment.
	IdempotencyKey string
}

// AllocationResult summarizes what one payment did
type AllocationResult struct {
	// InstallmentsProcessed counts installments settled IN FULL
	InstallmentsProcessed int `json:"installments_processed"`

	// RemainingCredit is the amount left over after all pending debt was
	// settled. Reported only; it is not stored as a customer credit.
	RemainingCredit decimal.Decimal `json:"remaining_credit"`
}

// PayInstallment applies one payment to the ledger of the customer owning
// the trigger installment, cascading across that customer's pending
// installments in due-date order. All writes commit atomically; concurrent
// calls against the same customer serialize on the customer row lock.
func (s *AllocationService) PayInstallment(ctx context.Context, req PaymentRequest) (*AllocationResult, error) {
	money := valueobject.NewMoney(req.Amount)
	if !money.IsPositive() || !money.HasCentPrecision() {
		return nil, shared.ErrInvalidAmount
	}

	var result *AllocationResult

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		trigger, err := repos.Installments().FindByID(ctx, req.TriggerInstallmentID)
		if err != nil {
			return err
		}

		// The row lock on the customer serializes concurrent allocations
		// against the same ledger; the pending snapshot below is stable
		// until commit.
		customer, err := repos.Customers().FindByIDForUpdate(ctx, trigger.CustomerID)
		if err != nil {
			return err
		}

		pending, err := repos.Installments().ListPending(ctx, customer.ID)
		if err != nil {
			return err
		}

		alloc, err := credit.Cascade(pending, req.Amount)
		if err != nil {
			return err
		}

		for _, inst := range alloc.Touched {
			if err := repos.Installments().Save(ctx, inst); err != nil {
				return err
			}
		}

		if err := customer.IncrementPaid(req.Amount); err != nil {
			return err
		}
		if err := repos.Customers().SaveWithLock(ctx, customer); err != nil {
			return err
		}

		receipt := credit.NewPaymentReceipt(customer.ID, trigger.ID, req.Amount, alloc, req.IdempotencyKey)
		if err := repos.Receipts().Create(ctx, receipt); err != nil {
			return err
		}

		result = &AllocationResult{
			InstallmentsProcessed: alloc.Processed,
			RemainingCredit:       alloc.RemainingCredit,
		}
		return nil
	})

	if err != nil {
		return nil, s.classify(ctx, err, req)
	}

	s.logger.Info("payment allocated",
		zap.String("trigger_installment_id", req.TriggerInstallmentID.String()),
		zap.String("amount", req.Amount.StringFixed(2)),
		zap.Int("installments_processed", result.InstallmentsProcessed),
		zap.String("remaining_credit", result.RemainingCredit.StringFixed(2)),
	)
	return result, nil
}

// classify maps a failed allocation to the error taxonomy. Validation and
// business errors pass through; a store failure under a live context is a
// clean rollback the caller may retry, while a failure with the context
// expired is indeterminate: the commit may or may not have landed and the
// caller must re-read state before retrying.
func (s *AllocationService) classify(ctx context.Context, err error, req PaymentRequest) error {
	var domainErr *shared.DomainError
	if errors.As(err, &domainErr) {
		return err
	}

	if ctx.Err() != nil {
		s.logger.Warn("allocation outcome unknown",
			zap.String("trigger_installment_id", req.TriggerInstallmentID.String()),
			zap.Error(err),
		)
		return shared.ErrUnknownOutcome
	}

	s.logger.Error("allocation failed, transaction rolled back",
		zap.String("trigger_installment_id", req.TriggerInstallmentID.String()),
		zap.Error(err),
	)
	return shared.ErrPersistenceFailure
}
