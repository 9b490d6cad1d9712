package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentMethodPix         PaymentMethod = "pix"
	PaymentMethodCash        PaymentMethod = "cash"
	PaymentMethodCard        PaymentMethod = "card"
	PaymentMethodInstallment PaymentMethod = "installment"
)

// IsValid checks if the payment method is valid
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodPix, PaymentMethodCash, PaymentMethodCard, PaymentMethodInstallment:
		return true
	}
	return false
}

// String returns the string representation of PaymentMethod
func (m PaymentMethod) String() string {
	return string(m)
}

// SaleItem is a line of a sale. It is a child entity of the Sale aggregate
// and never changes after the sale is created.
type SaleItem struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
}

// Subtotal returns quantity times unit price
func (i SaleItem) Subtotal() decimal.Decimal {
	return i.UnitPrice.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Sale represents a completed sales transaction. Sales are immutable once
// created: there are no update operations on this aggregate. A credit sale
// (installment payment method) records the installment count used to
// generate its payment schedule at creation time.
type Sale struct {
	shared.BaseAggregateRoot
	CustomerID        *uuid.UUID
	Date              time.Time
	TotalValue        decimal.Decimal
	PaymentMethod     PaymentMethod
	InstallmentsCount int
	Items             []SaleItem
}

// NewSale creates a sale from its line items. The total is derived from the
// items. Credit sales require a customer and a positive installment count.
func NewSale(customerID *uuid.UUID, items []SaleItem, method PaymentMethod, installmentsCount int) (*Sale, error) {
	if !method.IsValid() {
		return nil, shared.NewDomainError("INVALID_PAYMENT_METHOD", "Payment method is not valid")
	}
	if len(items) == 0 {
		return nil, shared.NewDomainError("EMPTY_SALE", "A sale requires at least one item")
	}

	total := decimal.Zero
	for i := range items {
		if items[i].Quantity <= 0 {
			return nil, shared.NewDomainError("INVALID_QUANTITY", "Item quantity must be positive")
		}
		if items[i].UnitPrice.IsNegative() {
			return nil, shared.NewDomainError("INVALID_PRICE", "Item price cannot be negative")
		}
		if items[i].ID == uuid.Nil {
			items[i].ID = uuid.New()
		}
		total = total.Add(items[i].Subtotal())
	}

	if method == PaymentMethodInstallment {
		if customerID == nil || *customerID == uuid.Nil {
			return nil, shared.NewDomainError("CUSTOMER_REQUIRED", "Credit sales require a customer")
		}
		if installmentsCount < 1 {
			return nil, shared.NewDomainError("INVALID_INSTALLMENTS_COUNT", "Installment count must be at least 1")
		}
	} else {
		installmentsCount = 0
	}

	return &Sale{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		CustomerID:        customerID,
		Date:              time.Now(),
		TotalValue:        total,
		PaymentMethod:     method,
		InstallmentsCount: installmentsCount,
		Items:             items,
	}, nil
}

// IsCredit returns true for installment sales
func (s *Sale) IsCredit() bool {
	return s.PaymentMethod == PaymentMethodInstallment
}
