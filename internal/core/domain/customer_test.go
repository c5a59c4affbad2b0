package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestNewCustomer(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		c, err := NewCustomer("John Doe", usd(2000))
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, c.CustomerID)
		assert.Equal(t, "John Doe", c.Name)
	})

	t.Run("EmptyName", func(t *testing.T) {
		_, err := NewCustomer("", usd(100))
		require.Error(t, err)
	})

	t.Run("NegativeBalance", func(t *testing.T) {
		balance := NewMoney(decimal.NewFromInt(-1), currency.USD)
		_, err := NewCustomer("John Doe", balance)
		require.Error(t, err)
	})
}

func TestCustomerDebit(t *testing.T) {
	t.Run("Regular", func(t *testing.T) {
		c, err := NewCustomer("John Doe", usd(2000))
		require.NoError(t, err)

		require.NoError(t, c.Debit(usd(386)))
		assert.True(t, c.Balance.Amount.Equal(decimal.NewFromInt(1614)))
	})

	t.Run("FullBalance", func(t *testing.T) {
		c, err := NewCustomer("Jane Smith", usd(100))
		require.NoError(t, err)

		require.NoError(t, c.Debit(usd(100)))
		assert.True(t, c.Balance.Amount.IsZero())
	})

	t.Run("Insufficient", func(t *testing.T) {
		c, err := NewCustomer("Jane Smith", usd(100))
		require.NoError(t, err)

		err = c.Debit(usd(101))
		require.ErrorIs(t, err, ErrInvalidOperation)
		assert.EqualError(t, err, "Insufficient balance")
		assert.True(t, c.Balance.Amount.Equal(decimal.NewFromInt(100)),
			"balance unchanged on failure")
	})

	t.Run("CurrencyMismatch", func(t *testing.T) {
		c, err := NewCustomer("Jane Smith", usd(100))
		require.NoError(t, err)

		err = c.Debit(eur(10))
		require.ErrorIs(t, err, ErrCurrencyMismatch)
	})
}
