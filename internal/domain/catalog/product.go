package catalog

import (
	"strings"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Product represents an item of the shop's stock.
// It is the aggregate root for catalog operations.
type Product struct {
	shared.BaseAggregateRoot
	Name      string
	Model     string
	Size      string
	Category  string
	CostPrice decimal.Decimal
	SalePrice decimal.Decimal
	Stock     int
}

// NewProduct creates a new product with required fields
func NewProduct(name, model, size, category string, costPrice, salePrice decimal.Decimal, stock int) (*Product, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if costPrice.IsNegative() || salePrice.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	return &Product{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Model:             strings.TrimSpace(model),
		Size:              strings.TrimSpace(size),
		Category:          strings.TrimSpace(category),
		CostPrice:         costPrice,
		SalePrice:         salePrice,
		Stock:             stock,
	}, nil
}

// DecrementStock removes quantity units from stock.
// Refuses to oversell: stock never goes below zero.
func (p *Product) DecrementStock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if p.Stock < quantity {
		return shared.ErrInsufficientStock
	}
	p.Stock -= quantity
	p.Touch()
	p.IncrementVersion()
	return nil
}

// Restock adds quantity units to stock
func (p *Product) Restock(quantity int) error {
	if quantity <= 0 {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	p.Stock += quantity
	p.Touch()
	p.IncrementVersion()
	return nil
}

// UpdateDetails updates the product's descriptive fields and prices
func (p *Product) UpdateDetails(name, model, size, category string, costPrice, salePrice decimal.Decimal) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if costPrice.IsNegative() || salePrice.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Prices cannot be negative")
	}
	p.Name = name
	p.Model = strings.TrimSpace(model)
	p.Size = strings.TrimSpace(size)
	p.Category = strings.TrimSpace(category)
	p.CostPrice = costPrice
	p.SalePrice = salePrice
	p.Touch()
	p.IncrementVersion()
	return nil
}

// InStock returns true if at least one unit is available
func (p *Product) InStock() bool {
	return p.Stock > 0
}
