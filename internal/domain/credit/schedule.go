package credit

import (
	"time"

	"github.com/google/uuid"
	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// GenerateSchedule creates the installment set for a credit sale: count
// installments numbered 1..count, due one month apart starting one month
// after issuedAt, all pending.
//
// The total is split evenly at cent precision; the LAST installment absorbs
// the rounding remainder so the schedule always sums exactly to the sale
// total. Splitting 100.00 in 3 yields 33.33, 33.33, 33.34.
func GenerateSchedule(saleID, customerID uuid.UUID, total decimal.Decimal, count int, issuedAt time.Time) ([]*Installment, error) {
	if count < 1 {
		return nil, shared.NewDomainError("INVALID_INSTALLMENTS_COUNT", "Installment count must be at least 1")
	}
	if !total.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}

	per := valueobject.RoundCents(total.Div(decimal.NewFromInt(int64(count))))
	last := total.Sub(per.Mul(decimal.NewFromInt(int64(count - 1))))
	if !per.IsPositive() || !last.IsPositive() {
		// Degenerate split (tiny total, many installments): the per-cent
		// share rounds to zero. Fall back to a single installment holding
		// the whole total.
		return generateSingle(saleID, customerID, total, issuedAt)
	}

	installments := make([]*Installment, 0, count)
	for i := 1; i <= count; i++ {
		value := per
		if i == count {
			value = last
		}
		inst, err := NewInstallment(saleID, customerID, i, value, issuedAt.AddDate(0, i, 0))
		if err != nil {
			return nil, err
		}
		installments = append(installments, inst)
	}
	return installments, nil
}

func generateSingle(saleID, customerID uuid.UUID, total decimal.Decimal, issuedAt time.Time) ([]*Installment, error) {
	inst, err := NewInstallment(saleID, customerID, 1, total, issuedAt.AddDate(0, 1, 0))
	if err != nil {
		return nil, err
	}
	return []*Installment{inst}, nil
}
