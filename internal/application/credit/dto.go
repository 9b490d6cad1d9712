package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shopspring/decimal"
)

// InstallmentResponse represents an installment in API responses.
// Overdue is derived at read time from the due date; it is never stored.
type InstallmentResponse struct {
	ID         uuid.UUID       `json:"id"`
	SaleID     uuid.UUID       `json:"sale_id"`
	CustomerID uuid.UUID       `json:"customer_id"`
	Number     int             `json:"number"`
	Value      decimal.Decimal `json:"value"`
	DueDate    time.Time       `json:"due_date"`
	Status     string          `json:"status"`
	Overdue    bool            `json:"overdue"`
	PaidAt     *time.Time      `json:"paid_at,omitempty"`
}

// ToInstallmentResponse converts a domain installment to a response DTO
func ToInstallmentResponse(inst *credit.Installment, now time.Time) InstallmentResponse {
	return InstallmentResponse{
		ID:         inst.ID,
		SaleID:     inst.SaleID,
		CustomerID: inst.CustomerID,
		Number:     inst.Number,
		Value:      inst.Value,
		DueDate:    inst.DueDate,
		Status:     inst.Status.String(),
		Overdue:    inst.IsOverdue(now),
		PaidAt:     inst.PaidAt,
	}
}

// ReceiptResponse represents a payment receipt in API responses
type ReceiptResponse struct {
	ID                   uuid.UUID       `json:"id"`
	CustomerID           uuid.UUID       `json:"customer_id"`
	TriggerInstallmentID uuid.UUID       `json:"trigger_installment_id"`
	Amount               decimal.Decimal `json:"amount"`
	InstallmentsSettled  int             `json:"installments_settled"`
	RemainingCredit      decimal.Decimal `json:"remaining_credit"`
	CreatedAt            time.Time       `json:"created_at"`
}

// ToReceiptResponse converts a domain receipt to a response DTO
func ToReceiptResponse(r *credit.PaymentReceipt) ReceiptResponse {
	return ReceiptResponse{
		ID:                   r.ID,
		CustomerID:           r.CustomerID,
		TriggerInstallmentID: r.TriggerInstallmentID,
		Amount:               r.Amount,
		InstallmentsSettled:  r.InstallmentsSettled,
		RemainingCredit:      r.RemainingCredit,
		CreatedAt:            r.CreatedAt,
	}
}
