package credit

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchedule(t *testing.T) {
	saleID := uuid.New()
	customerID := uuid.New()
	issuedAt := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("even split", func(t *testing.T) {
		installments, err := GenerateSchedule(saleID, customerID, decimal.NewFromFloat(300), 3, issuedAt)
		require.NoError(t, err)
		require.Len(t, installments, 3)

		for i, inst := range installments {
			assert.Equal(t, i+1, inst.Number)
			assert.Equal(t, "100.00", inst.Value.StringFixed(2))
			assert.Equal(t, issuedAt.AddDate(0, i+1, 0), inst.DueDate)
			assert.True(t, inst.IsPending())
			assert.Equal(t, saleID, inst.SaleID)
			assert.Equal(t, customerID, inst.CustomerID)
		}
	})

	t.Run("last installment absorbs rounding remainder", func(t *testing.T) {
		installments, err := GenerateSchedule(saleID, customerID, decimal.NewFromFloat(100), 3, issuedAt)
		require.NoError(t, err)
		require.Len(t, installments, 3)

		assert.Equal(t, "33.33", installments[0].Value.StringFixed(2))
		assert.Equal(t, "33.33", installments[1].Value.StringFixed(2))
		assert.Equal(t, "33.34", installments[2].Value.StringFixed(2))

		sum := decimal.Zero
		for _, inst := range installments {
			sum = sum.Add(inst.Value)
		}
		assert.Equal(t, "100.00", sum.StringFixed(2))
	})

	t.Run("schedule always sums to the sale total", func(t *testing.T) {
		totals := []string{"99.99", "1000.00", "7.77", "250.01"}
		for _, raw := range totals {
			total := decimal.RequireFromString(raw)
			for count := 1; count <= 12; count++ {
				installments, err := GenerateSchedule(saleID, customerID, total, count, issuedAt)
				require.NoError(t, err)

				sum := decimal.Zero
				for _, inst := range installments {
					sum = sum.Add(inst.Value)
				}
				assert.True(t, sum.Equal(total), "total %s split %d: got %s", raw, count, sum)
			}
		}
	})

	t.Run("single installment carries the whole total", func(t *testing.T) {
		installments, err := GenerateSchedule(saleID, customerID, decimal.NewFromFloat(149.90), 1, issuedAt)
		require.NoError(t, err)
		require.Len(t, installments, 1)
		assert.Equal(t, "149.90", installments[0].Value.StringFixed(2))
		assert.Equal(t, issuedAt.AddDate(0, 1, 0), installments[0].DueDate)
	})

	t.Run("tiny total collapses to a single installment", func(t *testing.T) {
		// 0.02 across 5 rounds the per-installment share to zero; the whole
		// total lands on one installment instead of failing mid-generation.
		installments, err := GenerateSchedule(saleID, customerID, decimal.RequireFromString("0.02"), 5, issuedAt)
		require.NoError(t, err)
		require.Len(t, installments, 1)
		assert.Equal(t, "0.02", installments[0].Value.StringFixed(2))
		assert.Equal(t, issuedAt.AddDate(0, 1, 0), installments[0].DueDate)
	})

	t.Run("rejects non-positive total", func(t *testing.T) {
		_, err := GenerateSchedule(saleID, customerID, decimal.Zero, 3, issuedAt)
		assert.Error(t, err)
	})

	t.Run("rejects zero count", func(t *testing.T) {
		_, err := GenerateSchedule(saleID, customerID, decimal.NewFromInt(100), 0, issuedAt)
		assert.Error(t, err)
	})
}
