package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

var ErrCurrencyMismatch = errors.New("currency mismatch")

type Money struct {
	Amount   decimal.Decimal
	Currency currency.Unit
}

func NewMoney(amount decimal.Decimal, unit currency.Unit) Money {
	return Money{Amount: amount, Currency: unit}
}

func ZeroMoney(unit currency.Unit) Money {
	return Money{Amount: decimal.Zero, Currency: unit}
}

func (m Money) Add(v Money) (Money, error) {
	if err := m.sameCurrency(v); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Add(v.Amount), Currency: m.Currency}, nil
}

func (m Money) Sub(v Money) (Money, error) {
	if err := m.sameCurrency(v); err != nil {
		return Money{}, err
	}
	return Money{Amount: m.Amount.Sub(v.Amount), Currency: m.Currency}, nil
}

func (m Money) MulInt(n int) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromInt(int64(n))), Currency: m.Currency}
}

func (m Money) MulFloat64(f float64) Money {
	return Money{Amount: m.Amount.Mul(decimal.NewFromFloat(f)), Currency: m.Currency}
}

// Cmp returns -1, 0 or 1 comparing m against v.
func (m Money) Cmp(v Money) (int, error) {
	if err := m.sameCurrency(v); err != nil {
		return 0, err
	}
	return m.Amount.Cmp(v.Amount), nil
}

func (m Money) IsNegative() bool {
	return m.Amount.IsNegative()
}

// StringFixed renders the amount with the given number of decimal places.
func (m Money) StringFixed(places int32) string {
	return m.Amount.StringFixed(places)
}

func (m Money) String() string {
	return fmt.Sprintf("%s %s", m.Amount.String(), m.Currency)
}

func (m Money) sameCurrency(v Money) error {
	if m.Currency != v.Currency {
		return fmt.Errorf("%w: %s and %s", ErrCurrencyMismatch, m.Currency, v.Currency)
	}
	return nil
}
