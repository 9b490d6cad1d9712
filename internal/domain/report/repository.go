package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// DashboardStats are the aggregate figures shown on the shop dashboard
type DashboardStats struct {
	TodayIncome    decimal.Decimal `json:"today_income"`
	TodayExpenses  decimal.Decimal `json:"today_expenses"`
	MonthlyBalance decimal.Decimal `json:"monthly_balance"`
	CreditPending  decimal.Decimal `json:"credit_pending"`
}

// Repository is the read side for reporting aggregations. Implementations
// run SQL sums directly; nothing here mutates state.
type Repository interface {
	// SumPaymentsReceived sums payment receipts inside [from, to)
	SumPaymentsReceived(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumImmediateSales sums non-credit sales inside [from, to)
	SumImmediateSales(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumExpenses sums expenses inside [from, to)
	SumExpenses(ctx context.Context, from, to time.Time) (decimal.Decimal, error)

	// SumPendingInstallments sums the remaining value of all pending
	// installments (the authoritative outstanding credit)
	SumPendingInstallments(ctx context.Context) (decimal.Decimal, error)
}
