package trade

import (
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// SaleItemRequest is one line of a sale creation request
type SaleItemRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
}

// CreateSaleRequest represents a request to create a sale. Unit prices come
// from the catalog, not from the request. An installment sale requires
// customer_id and installments_count.
type CreateSaleRequest struct {
	CustomerID        *uuid.UUID        `json:"customer_id"`
	PaymentMethod     string            `json:"payment_method" binding:"required,oneof=pix cash card installment"`
	InstallmentsCount int               `json:"installments_count" binding:"min=0,max=48"`
	Items             []SaleItemRequest `json:"items" binding:"required,min=1,dive"`
}

// SaleItemResponse represents a sale line in API responses
type SaleItemResponse struct {
	ID        uuid.UUID       `json:"id"`
	ProductID uuid.UUID       `json:"product_id"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Subtotal  decimal.Decimal `json:"subtotal"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID                uuid.UUID          `json:"id"`
	CustomerID        *uuid.UUID         `json:"customer_id,omitempty"`
	Date              time.Time          `json:"date"`
	TotalValue        decimal.Decimal    `json:"total_value"`
	PaymentMethod     string             `json:"payment_method"`
	InstallmentsCount int                `json:"installments_count"`
	Items             []SaleItemResponse `json:"items"`
	CreatedAt         time.Time          `json:"created_at"`
}

// ToSaleResponse converts a domain sale to a response DTO
func ToSaleResponse(s *trade.Sale) SaleResponse {
	items := make([]SaleItemResponse, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
			Subtotal:  item.Subtotal(),
		}
	}
	return SaleResponse{
		ID:                s.ID,
		CustomerID:        s.CustomerID,
		Date:              s.Date,
		TotalValue:        s.TotalValue,
		PaymentMethod:     s.PaymentMethod.String(),
		InstallmentsCount: s.InstallmentsCount,
		Items:             items,
		CreatedAt:         s.CreatedAt,
	}
}
