package partner

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("creates customer with zeroed counters", func(t *testing.T) {
		c, err := NewCustomer("Maria Souza", "11 99999-0001")
		require.NoError(t, err)

		assert.Equal(t, "Maria Souza", c.Name)
		assert.True(t, c.TotalBought.IsZero())
		assert.True(t, c.TotalPaid.IsZero())
		assert.Equal(t, 1, c.Version)
	})

	t.Run("rejects empty name", func(t *testing.T) {
		_, err := NewCustomer("   ", "")
		assert.Error(t, err)
	})
}

func TestCustomer_IncrementCounters(t *testing.T) {
	c, err := NewCustomer("Maria Souza", "")
	require.NoError(t, err)

	require.NoError(t, c.IncrementBought(decimal.NewFromFloat(300)))
	require.NoError(t, c.IncrementPaid(decimal.NewFromFloat(120.50)))

	assert.Equal(t, "300.00", c.TotalBought.StringFixed(2))
	assert.Equal(t, "120.50", c.TotalPaid.StringFixed(2))
	assert.Equal(t, "179.50", c.Debt().StringFixed(2))
	assert.Equal(t, 3, c.Version)
}

func TestCustomer_IncrementRejectsNonPositive(t *testing.T) {
	c, err := NewCustomer("Maria Souza", "")
	require.NoError(t, err)

	assert.Error(t, c.IncrementBought(decimal.Zero))
	assert.Error(t, c.IncrementPaid(decimal.NewFromFloat(-5)))
	assert.True(t, c.TotalBought.IsZero())
	assert.True(t, c.TotalPaid.IsZero())
}

func TestCustomer_UpdateContact(t *testing.T) {
	c, err := NewCustomer("Maria Souza", "11 99999-0001")
	require.NoError(t, err)

	require.NoError(t, c.UpdateContact("Maria S. Lima", "11 98888-0002", nil))
	assert.Equal(t, "Maria S. Lima", c.Name)
	assert.Equal(t, "11 98888-0002", c.Phone)

	assert.Error(t, c.UpdateContact("", "", nil))
}
