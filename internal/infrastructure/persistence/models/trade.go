package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/trade"
	"github.com/shopspring/decimal"
)

// SaleModel is the persistence model for the Sale aggregate.
type SaleModel struct {
	AggregateModel
	CustomerID        *uuid.UUID      `gorm:"type:uuid;index"`
	Date              time.Time       `gorm:"not null;index"`
	TotalValue        decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PaymentMethod     string          `gorm:"type:varchar(20);not null;index"`
	InstallmentsCount int             `gorm:"not null;default:0"`
	Items             []SaleItemModel `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (SaleModel) TableName() string {
	return "sales"
}

// SaleItemModel is the persistence model for a sale line.
type SaleItemModel struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key"`
	SaleID    uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(14,2);not null"`
}

// TableName returns the table name for GORM
func (SaleItemModel) TableName() string {
	return "sale_items"
}

// ToDomain converts the persistence model to a domain Sale aggregate.
func (m *SaleModel) ToDomain() *trade.Sale {
	items := make([]trade.SaleItem, len(m.Items))
	for i, item := range m.Items {
		items[i] = trade.SaleItem{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	return &trade.Sale{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		CustomerID:        m.CustomerID,
		Date:              m.Date,
		TotalValue:        m.TotalValue,
		PaymentMethod:     trade.PaymentMethod(m.PaymentMethod),
		InstallmentsCount: m.InstallmentsCount,
		Items:             items,
	}
}

// SaleModelFromDomain creates a persistence model from a domain Sale.
func SaleModelFromDomain(s *trade.Sale) *SaleModel {
	items := make([]SaleItemModel, len(s.Items))
	for i, item := range s.Items {
		items[i] = SaleItemModel{
			ID:        item.ID,
			SaleID:    s.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			UnitPrice: item.UnitPrice,
		}
	}
	m := &SaleModel{
		CustomerID:        s.CustomerID,
		Date:              s.Date,
		TotalValue:        s.TotalValue,
		PaymentMethod:     s.PaymentMethod.String(),
		InstallmentsCount: s.InstallmentsCount,
		Items:             items,
	}
	m.FromDomainAggregateRoot(s.BaseAggregateRoot)
	return m
}
