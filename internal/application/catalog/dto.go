package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// CreateProductRequest represents a request to create a new product
type CreateProductRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=200"`
	Model     string          `json:"model" binding:"max=100"`
	Size      string          `json:"size" binding:"max=50"`
	Category  string          `json:"category" binding:"max=100"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Stock     int             `json:"stock" binding:"min=0"`
}

// UpdateProductRequest represents a request to update a product's details
type UpdateProductRequest struct {
	Name      string          `json:"name" binding:"required,min=1,max=200"`
	Model     string          `json:"model" binding:"max=100"`
	Size      string          `json:"size" binding:"max=50"`
	Category  string          `json:"category" binding:"max=100"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
}

// RestockRequest represents a request to add units to a product's stock
type RestockRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Model     string          `json:"model"`
	Size      string          `json:"size"`
	Category  string          `json:"category"`
	CostPrice decimal.Decimal `json:"cost_price"`
	SalePrice decimal.Decimal `json:"sale_price"`
	Stock     int             `json:"stock"`
	InStock   bool            `json:"in_stock"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// ToProductResponse converts a domain product to a response DTO
func ToProductResponse(p *catalog.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		Model:     p.Model,
		Size:      p.Size,
		Category:  p.Category,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
		Stock:     p.Stock,
		InStock:   p.InStock(),
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
