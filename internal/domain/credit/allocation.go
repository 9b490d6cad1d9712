package credit

import (
	"sort"

	"github.com/shop/backend/internal/domain/shared"
	"github.com/shop/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// Allocation is the outcome of cascading one payment across a customer's
// pending installments.
type Allocation struct {
	// Processed counts FULL settlements only. A trailing partial payment
	// does not increment it; this matches the "N installments settled"
	// summary shown to the operator.
	Processed int

	// RemainingCredit is the portion of the payment left after every
	// pending installment was fully settled, rounded to cents. It is
	// reported to the caller and not stored as a customer credit balance.
	RemainingCredit decimal.Decimal

	// Touched holds the installments mutated by the cascade, in the order
	// they were applied. Callers persist exactly these.
	Touched []*Installment
}

// Cascade applies a single payment across the given pending installments in
// earliest-obligation-first order (due date ascending, ties broken by
// installment number). It mutates the installments in place and is
// deterministic.
//
// For each installment while any amount remains: if the remainder covers the
// installment's value within SettleTolerance it is settled in full and the
// installment's original value is consumed from the remainder; otherwise the
// remainder is absorbed as a partial payment and the cascade stops.
// Installments past the stopping point are untouched.
func Cascade(installments []*Installment, amount decimal.Decimal) (*Allocation, error) {
	if !amount.IsPositive() {
		return nil, shared.ErrInvalidAmount
	}

	ordered := make([]*Installment, len(installments))
	copy(ordered, installments)
	sort.SliceStable(ordered, func(a, b int) bool {
		if !ordered[a].DueDate.Equal(ordered[b].DueDate) {
			return ordered[a].DueDate.Before(ordered[b].DueDate)
		}
		return ordered[a].Number < ordered[b].Number
	})

	alloc := &Allocation{RemainingCredit: amount}

	for _, inst := range ordered {
		if !alloc.RemainingCredit.IsPositive() {
			break
		}
		if !inst.IsPending() {
			continue
		}

		original := inst.Value
		if alloc.RemainingCredit.GreaterThanOrEqual(original.Sub(SettleTolerance)) {
			if err := inst.SettleFull(); err != nil {
				return nil, err
			}
			alloc.RemainingCredit = alloc.RemainingCredit.Sub(original)
			alloc.Processed++
		} else {
			if err := inst.ApplyPartial(alloc.RemainingCredit); err != nil {
				return nil, err
			}
			alloc.RemainingCredit = decimal.Zero
		}
		alloc.Touched = append(alloc.Touched, inst)
	}

	// Sub-cent tolerance slack can leave a negative residue; the reported
	// credit is never below zero.
	alloc.RemainingCredit = valueobject.RoundCents(alloc.RemainingCredit)
	if alloc.RemainingCredit.IsNegative() {
		alloc.RemainingCredit = decimal.Zero
	}

	return alloc, nil
}
