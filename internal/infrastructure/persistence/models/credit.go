package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/credit"
	"github.com/shopspring/decimal"
)

// InstallmentModel is the persistence model for the Installment aggregate.
// The composite index backs the allocator's pending scan in due-date order.
type InstallmentModel struct {
	AggregateModel
	SaleID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID uuid.UUID       `gorm:"type:uuid;not null;index:idx_installments_customer_due,priority:1"`
	Number     int             `gorm:"not null"`
	Value      decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	DueDate    time.Time       `gorm:"not null;index:idx_installments_customer_due,priority:2"`
	Status     string          `gorm:"type:varchar(20);not null;index"`
	PaidAt     *time.Time
}

// TableName returns the table name for GORM
func (InstallmentModel) TableName() string {
	return "installments"
}

// ToDomain converts the persistence model to a domain Installment.
func (m *InstallmentModel) ToDomain() *credit.Installment {
	return &credit.Installment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		SaleID:            m.SaleID,
		CustomerID:        m.CustomerID,
		Number:            m.Number,
		Value:             m.Value,
		DueDate:           m.DueDate,
		Status:            credit.InstallmentStatus(m.Status),
		PaidAt:            m.PaidAt,
	}
}

// InstallmentModelFromDomain creates a persistence model from a domain Installment.
func InstallmentModelFromDomain(i *credit.Installment) *InstallmentModel {
	m := &InstallmentModel{
		SaleID:     i.SaleID,
		CustomerID: i.CustomerID,
		Number:     i.Number,
		Value:      i.Value,
		DueDate:    i.DueDate,
		Status:     i.Status.String(),
		PaidAt:     i.PaidAt,
	}
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	return m
}

// PaymentReceiptModel is the persistence model for payment receipts.
// The unique index on IdempotencyKey rejects a retried payment inside the
// same transaction that would re-apply it.
type PaymentReceiptModel struct {
	BaseModel
	CustomerID           uuid.UUID       `gorm:"type:uuid;not null;index"`
	TriggerInstallmentID uuid.UUID       `gorm:"type:uuid;not null"`
	Amount               decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	InstallmentsSettled  int             `gorm:"not null"`
	RemainingCredit      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	IdempotencyKey       *string         `gorm:"type:varchar(100);uniqueIndex"`
}

// TableName returns the table name for GORM
func (PaymentReceiptModel) TableName() string {
	return "payment_receipts"
}

// ToDomain converts the persistence model to a domain PaymentReceipt.
func (m *PaymentReceiptModel) ToDomain() *credit.PaymentReceipt {
	return &credit.PaymentReceipt{
		BaseEntity:           m.BaseModel.ToDomain(),
		CustomerID:           m.CustomerID,
		TriggerInstallmentID: m.TriggerInstallmentID,
		Amount:               m.Amount,
		InstallmentsSettled:  m.InstallmentsSettled,
		RemainingCredit:      m.RemainingCredit,
		IdempotencyKey:       m.IdempotencyKey,
	}
}

// PaymentReceiptModelFromDomain creates a persistence model from a domain PaymentReceipt.
func PaymentReceiptModelFromDomain(r *credit.PaymentReceipt) *PaymentReceiptModel {
	m := &PaymentReceiptModel{
		CustomerID:           r.CustomerID,
		TriggerInstallmentID: r.TriggerInstallmentID,
		Amount:               r.Amount,
		InstallmentsSettled:  r.InstallmentsSettled,
		RemainingCredit:      r.RemainingCredit,
		IdempotencyKey:       r.IdempotencyKey,
	}
	m.FromDomainBaseEntity(r.BaseEntity)
	return m
}
