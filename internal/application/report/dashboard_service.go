package report

import (
	"context"
	"time"

	"github.com/shop/backend/internal/domain/report"
)

// DashboardService aggregates the shop's headline figures.
//
// Today's income counts money that actually came in today: payments
// received against installments plus immediate (non-credit) sales. Credit
// sales contribute to income only as their installments get paid.
type DashboardService struct {
	reportRepo report.Repository
	now        func() time.Time
}

// NewDashboardService creates a new DashboardService
func NewDashboardService(reportRepo report.Repository) *DashboardService {
	return &DashboardService{
		reportRepo: reportRepo,
		now:        time.Now,
	}
}

// GetStats computes the dashboard figures
func (s *DashboardService) GetStats(ctx context.Context) (*report.DashboardStats, error) {
	now := s.now()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	dayEnd := dayStart.AddDate(0, 0, 1)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	monthEnd := monthStart.AddDate(0, 1, 0)

	todayPayments, err := s.reportRepo.SumPaymentsReceived(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	todaySales, err := s.reportRepo.SumImmediateSales(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}
	todayExpenses, err := s.reportRepo.SumExpenses(ctx, dayStart, dayEnd)
	if err != nil {
		return nil, err
	}

	monthPayments, err := s.reportRepo.SumPaymentsReceived(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	monthSales, err := s.reportRepo.SumImmediateSales(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}
	monthExpenses, err := s.reportRepo.SumExpenses(ctx, monthStart, monthEnd)
	if err != nil {
		return nil, err
	}

	creditPending, err := s.reportRepo.SumPendingInstallments(ctx)
	if err != nil {
		return nil, err
	}

	return &report.DashboardStats{
		TodayIncome:    todayPayments.Add(todaySales),
		TodayExpenses:  todayExpenses,
		MonthlyBalance: monthPayments.Add(monthSales).Sub(monthExpenses),
		CreditPending:  creditPending,
	}, nil
}
