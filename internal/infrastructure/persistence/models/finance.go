package models

import (
	"time"

	"github.com/shop/backend/internal/domain/finance"
	"github.com/shopspring/decimal"
)

// ExpenseModel is the persistence model for expense records.
type ExpenseModel struct {
	BaseModel
	Date          time.Time       `gorm:"not null;index"`
	Description   string          `gorm:"type:varchar(500);not null"`
	Category      string          `gorm:"type:varchar(100);index"`
	Value         decimal.Decimal `gorm:"type:decimal(14,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(50)"`
}

// TableName returns the table name for GORM
func (ExpenseModel) TableName() string {
	return "expenses"
}

// ToDomain converts the persistence model to a domain Expense.
func (m *ExpenseModel) ToDomain() *finance.Expense {
	return &finance.Expense{
		BaseEntity:    m.BaseModel.ToDomain(),
		Date:          m.Date,
		Description:   m.Description,
		Category:      m.Category,
		Value:         m.Value,
		PaymentMethod: m.PaymentMethod,
	}
}

// ExpenseModelFromDomain creates a persistence model from a domain Expense.
func ExpenseModelFromDomain(e *finance.Expense) *ExpenseModel {
	m := &ExpenseModel{
		Date:          e.Date,
		Description:   e.Description,
		Category:      e.Category,
		Value:         e.Value,
		PaymentMethod: e.PaymentMethod,
	}
	m.FromDomainBaseEntity(e.BaseEntity)
	return m
}
