package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func usd(v int64) Money {
	return NewMoney(decimal.NewFromInt(v), currency.USD)
}

func eur(v int64) Money {
	return NewMoney(decimal.NewFromInt(v), currency.EUR)
}

func TestMoneyAdd(t *testing.T) {
	t.Run("SameCurrency", func(t *testing.T) {
		got, err := usd(100).Add(usd(25))
		require.NoError(t, err)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(125)))
		assert.Equal(t, currency.USD, got.Currency)
	})

	t.Run("CurrencyMismatch", func(t *testing.T) {
		_, err := usd(100).Add(eur(25))
		require.ErrorIs(t, err, ErrCurrencyMismatch)
	})
}

func TestMoneySub(t *testing.T) {
	t.Run("SameCurrency", func(t *testing.T) {
		got, err := usd(100).Sub(usd(30))
		require.NoError(t, err)
		assert.True(t, got.Amount.Equal(decimal.NewFromInt(70)))
	})

	t.Run("CurrencyMismatch", func(t *testing.T) {
		_, err := usd(100).Sub(eur(30))
		require.ErrorIs(t, err, ErrCurrencyMismatch)
	})
}

func TestMoneyMul(t *testing.T) {
	assert.True(t, usd(25).MulInt(5).Amount.Equal(decimal.NewFromInt(125)))
	assert.True(t, usd(10).MulFloat64(1.1).Amount.Equal(decimal.NewFromInt(11)))
	assert.True(t, usd(10).MulFloat64(0).Amount.Equal(decimal.Zero))
}

func TestMoneyCmp(t *testing.T) {
	t.Run("Orders", func(t *testing.T) {
		res, err := usd(1).Cmp(usd(2))
		require.NoError(t, err)
		assert.Equal(t, -1, res)

		res, err = usd(2).Cmp(usd(2))
		require.NoError(t, err)
		assert.Equal(t, 0, res)

		res, err = usd(3).Cmp(usd(2))
		require.NoError(t, err)
		assert.Equal(t, 1, res)
	})

	t.Run("CurrencyMismatch", func(t *testing.T) {
		_, err := usd(1).Cmp(eur(1))
		require.ErrorIs(t, err, ErrCurrencyMismatch)
	})
}

func TestMoneyStringFixed(t *testing.T) {
	assert.Equal(t, "375", usd(375).StringFixed(0))
	assert.Equal(t, "0", ZeroMoney(currency.USD).StringFixed(0))

	m := NewMoney(decimal.NewFromFloat(155.9999999999), currency.USD)
	assert.Equal(t, "156", m.StringFixed(0))
}

func TestMoneyIsNegative(t *testing.T) {
	assert.False(t, usd(0).IsNegative())
	assert.False(t, usd(5).IsNegative())
	assert.True(t, NewMoney(decimal.NewFromInt(-5), currency.USD).IsNegative())
}
