package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// InstallmentStatus represents the lifecycle state of an installment
type InstallmentStatus string

const (
	InstallmentStatusPending InstallmentStatus = "pending" // value > 0 owed
	InstallmentStatusPaid    InstallmentStatus = "paid"    // fully settled, value == 0
)

// IsValid checks if the status is a valid InstallmentStatus
func (s InstallmentStatus) IsValid() bool {
	return s == InstallmentStatusPending || s == InstallmentStatusPaid
}

// String returns the string representation of InstallmentStatus
func (s InstallmentStatus) String() string {
	return string(s)
}

// SettleTolerance is the monetary epsilon under which a remaining payment
// balance is treated as covering an installment in full. It absorbs
// floating-point residue at the cent level: a payment of 100.00 settles an
// installment whose stored value drifted to 99.9999....
var SettleTolerance = decimal.NewFromFloat(0.009)

// Installment is one scheduled partial payment owed by a customer against a
// specific credit sale. Value is the REMAINING amount owed and decreases
// toward zero as payments are applied; it never goes negative. Installments
// are created as a set when a credit sale is created and are mutated only by
// the payment allocator until they reach paid.
//
// Overdue is a derived, display-level concept (pending past due date), never
// a stored state.
type Installment struct {
	shared.BaseAggregateRoot
	SaleID     uuid.UUID
	CustomerID uuid.UUID
	Number     int
	Value      decimal.Decimal
	DueDate    time.Time
	Status     InstallmentStatus
	PaidAt     *time.Time
}

// NewInstallment creates a pending installment
func NewInstallment(saleID, customerID uuid.UUID, number int, value decimal.Decimal, dueDate time.Time) (*Installment, error) {
	if saleID == uuid.Nil || customerID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REFERENCE", "Installment requires a sale and a customer")
	}
	if number < 1 {
		return nil, shared.NewDomainError("INVALID_NUMBER", "Installment number is 1-based")
	}
	if !value.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}

	return &Installment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		SaleID:            saleID,
		CustomerID:        customerID,
		Number:            number,
		Value:             value,
		DueDate:           dueDate,
		Status:            InstallmentStatusPending,
	}, nil
}

// SettleFull marks the installment fully paid: value drops to zero
// regardless of any sub-cent residue.
func (i *Installment) SettleFull() error {
	if i.Status != InstallmentStatusPending {
		return shared.ErrInvalidState
	}
	now := time.Now()
	i.Value = decimal.Zero
	i.Status = InstallmentStatusPaid
	i.PaidAt = &now
	i.UpdatedAt = now
	i.IncrementVersion()
	return nil
}

// ApplyPartial reduces the remaining value by amount, rounded to cents.
// The installment stays pending; amount must be positive and strictly less
// than the remaining value.
func (i *Installment) ApplyPartial(amount decimal.Decimal) error {
	if i.Status != InstallmentStatusPending {
		return shared.ErrInvalidState
	}
	if !amount.IsPositive() {
		return shared.ErrInvalidAmount
	}
	if amount.GreaterThanOrEqual(i.Value) {
		return shared.NewDomainError("EXCEEDS_VALUE", "Partial payment must be less than the remaining value")
	}
	i.Value = valueobject.RoundCents(i.Value.Sub(amount))
	i.Touch()
	i.IncrementVersion()
	return nil
}

// IsPending returns true while any value remains owed
func (i *Installment) IsPending() bool {
	return i.Status == InstallmentStatusPending
}

// IsPaid returns true once fully settled
func (i *Installment) IsPaid() bool {
	return i.Status == InstallmentStatusPaid
}

// IsOverdue reports whether the installment is pending past its due date.
// Derived for display; the stored status stays pending.
func (i *Installment) IsOverdue(now time.Time) bool {
	return i.Status == InstallmentStatusPending && now.After(i.DueDate)
}
