package models

import (
	"time"

	"github.com/shop/backend/internal/domain/partner"
	"github.com/shopspring/decimal"
)

// CustomerModel is the persistence model for the Customer domain entity.
type CustomerModel struct {
	AggregateModel
	Name        string          `gorm:"type:varchar(200);not null;index"`
	Phone       string          `gorm:"type:varchar(50);index"`
	BirthDate   *time.Time      `gorm:"type:date"`
	TotalBought decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
	TotalPaid   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0"`
}

// TableName returns the table name for GORM
func (CustomerModel) TableName() string {
	return "customers"
}

// ToDomain converts the persistence model to a domain Customer entity.
func (m *CustomerModel) ToDomain() *partner.Customer {
	return &partner.Customer{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Phone:             m.Phone,
		BirthDate:         m.BirthDate,
		TotalBought:       m.TotalBought,
		TotalPaid:         m.TotalPaid,
	}
}

// CustomerModelFromDomain creates a persistence model from a domain Customer.
func CustomerModelFromDomain(c *partner.Customer) *CustomerModel {
	m := &CustomerModel{
		Name:        c.Name,
		Phone:       c.Phone,
		BirthDate:   c.BirthDate,
		TotalBought: c.TotalBought,
		TotalPaid:   c.TotalPaid,
	}
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	return m
}
