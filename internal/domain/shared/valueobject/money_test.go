package valueobject

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromString(t *testing.T) {
	t.Run("parses valid amount", func(t *testing.T) {
		m, err := NewMoneyFromString("123.45")
		require.NoError(t, err)
		assert.True(t, m.Amount().Equal(decimal.NewFromFloat(123.45)))
	})

	t.Run("rejects malformed amount", func(t *testing.T) {
		_, err := NewMoneyFromString("12,34")
		assert.Error(t, err)
	})
}

func TestMoney_HasCentPrecision(t *testing.T) {
	tests := []struct {
		amount string
		ok     bool
	}{
		{"100", true},
		{"100.5", true},
		{"100.50", true},
		{"100.505", false},
		{"0.009", false},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			m, err := NewMoneyFromString(tt.amount)
			require.NoError(t, err)
			assert.Equal(t, tt.ok, m.HasCentPrecision())
		})
	}
}

func TestMoney_Arithmetic(t *testing.T) {
	a := NewMoneyFromFloat(100.00)
	b := NewMoneyFromFloat(40.25)

	assert.True(t, a.Sub(b).Amount().Equal(decimal.NewFromFloat(59.75)))
	assert.True(t, a.Add(b).Amount().Equal(decimal.NewFromFloat(140.25)))
	assert.True(t, b.IsPositive())
	assert.False(t, b.IsZero())
	assert.True(t, Zero().IsZero())
}

func TestMoney_RoundCents(t *testing.T) {
	m := NewMoneyFromFloat(33.333333)
	assert.Equal(t, "33.33", m.RoundCents().Amount().StringFixed(2))
}

func TestMoney_String(t *testing.T) {
	assert.Equal(t, "R$ 1234.50", NewMoneyFromFloat(1234.5).String())
}
