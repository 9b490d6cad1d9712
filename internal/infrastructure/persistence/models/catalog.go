package models

import (
	"github.com/shop/backend/internal/domain/catalog"
	"github.com/shopspring/decimal"
)

// ProductModel is the persistence model for the Product domain entity.
type ProductModel struct {
	AggregateModel
	Name      string          `gorm:"type:varchar(200);not null;index"`
	Model     string          `gorm:"type:varchar(100)"`
	Size      string          `gorm:"type:varchar(50)"`
	Category  string          `gorm:"type:varchar(100);index"`
	CostPrice decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	SalePrice decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	Stock     int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (ProductModel) TableName() string {
	return "products"
}

// ToDomain converts the persistence model to a domain Product entity.
func (m *ProductModel) ToDomain() *catalog.Product {
	return &catalog.Product{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Model:             m.Model,
		Size:              m.Size,
		Category:          m.Category,
		CostPrice:         m.CostPrice,
		SalePrice:         m.SalePrice,
		Stock:             m.Stock,
	}
}

// ProductModelFromDomain creates a persistence model from a domain Product.
func ProductModelFromDomain(p *catalog.Product) *ProductModel {
	m := &ProductModel{
		Name:      p.Name,
		Model:     p.Model,
		Size:      p.Size,
		Category:  p.Category,
		CostPrice: p.CostPrice,
		SalePrice: p.SalePrice,
		Stock:     p.Stock,
	}
	m.FromDomainAggregateRoot(p.BaseAggregateRoot)
	return m
}
