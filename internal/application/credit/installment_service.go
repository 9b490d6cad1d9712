package credit

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shop/backend/internal/domain/shared"
)

// InstallmentService serves read-side installment queries. Mutation goes
// through the allocator (payments) and the sale service (schedule creation).
type InstallmentService struct {
	installmentRepo credit.InstallmentRepository
	receiptRepo     credit.PaymentReceiptRepository
	now             func() time.Time
}

// NewInstallmentService creates a new InstallmentService
func NewInstallmentService(installmentRepo credit.InstallmentRepository, receiptRepo credit.PaymentReceiptRepository) *InstallmentService {
	return &InstallmentService{
		installmentRepo: installmentRepo,
		receiptRepo:     receiptRepo,
		now:             time.Now,
	}
}

// GetByID retrieves an installment by ID
func (s *InstallmentService) GetByID(ctx context.Context, installmentID uuid.UUID) (*InstallmentResponse, error) {
	inst, err := s.installmentRepo.FindByID(ctx, installmentID)
	if err != nil {
		return nil, err
	}

	response := ToInstallmentResponse(inst, s.now())
	return &response, nil
}

// List retrieves installments matching the filter
func (s *InstallmentService) List(ctx context.Context, filter shared.Filter) (*shared.Paginated[InstallmentResponse], error) {
	installments, total, err := s.installmentRepo.ListAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]InstallmentResponse, len(installments))
	for i, inst := range installments {
		responses[i] = ToInstallmentResponse(inst, now)
	}

	result := shared.NewPaginated(responses, total, filter.Page, filter.Limit())
	return &result, nil
}

// ListByCustomer retrieves all installments of one customer
func (s *InstallmentService) ListByCustomer(ctx context.Context, customerID uuid.UUID) ([]InstallmentResponse, error) {
	installments, err := s.installmentRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(installments), nil
}

// ListPendingByCustomer retrieves the customer's pending installments in
// allocation order (due date ascending, ties by number).
func (s *InstallmentService) ListPendingByCustomer(ctx context.Context, customerID uuid.UUID) ([]InstallmentResponse, error) {
	installments, err := s.installmentRepo.ListPending(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(installments), nil
}

// ListOverdueByCustomer retrieves the customer's pending installments past
// their due date. Overdue is derived here, not stored.
func (s *InstallmentService) ListOverdueByCustomer(ctx context.Context, customerID uuid.UUID) ([]InstallmentResponse, error) {
	installments, err := s.installmentRepo.ListPending(ctx, customerID)
	if err != nil {
		return nil, err
	}

	now := s.now()
	responses := make([]InstallmentResponse, 0, len(installments))
	for _, inst := range installments {
		if inst.IsOverdue(now) {
			responses = append(responses, ToInstallmentResponse(inst, now))
		}
	}
	return responses, nil
}

// ListReceiptsByCustomer retrieves the customer's payment receipts
func (s *InstallmentService) ListReceiptsByCustomer(ctx context.Context, customerID uuid.UUID) ([]ReceiptResponse, error) {
	receipts, err := s.receiptRepo.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}

	responses := make([]ReceiptResponse, len(receipts))
	for i, r := range receipts {
		responses[i] = ToReceiptResponse(r)
	}
	return responses, nil
}

func (s *InstallmentService) toResponses(installments []*credit.Installment) []InstallmentResponse {
	now := s.now()
	responses := make([]InstallmentResponse, len(installments))
	for i, inst := range installments {
		responses[i] = ToInstallmentResponse(inst, now)
	}
	return responses
}
