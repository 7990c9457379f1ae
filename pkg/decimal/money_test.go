package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoneyFromCents(t *testing.T) {
	tests := []struct {
		cents    int64
		expected string
	}{
		{0, "0.00"},
		{1, "0.01"},
		{99, "0.99"},
		{123456, "1234.56"},
		{25000000, "250000.00"},
		{-500, "-5.00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, NewMoneyFromCents(tt.cents).String())
	}
}

func TestNewMoneyFromString(t *testing.T) {
	m, err := NewMoneyFromString("1234.56")
	require.NoError(t, err)
	assert.Equal(t, "1234.56", m.String())

	_, err = NewMoneyFromString("not-money")
	assert.Error(t, err)
}

func TestMoneyArithmetic(t *testing.T) {
	a := NewMoney(100.50)
	b := NewMoney(49.50)

	assert.Equal(t, "150.00", a.Add(b).String())
	assert.Equal(t, "51.00", a.Sub(b).String())
	assert.Equal(t, "201.00", a.Mul(decimal.NewFromInt(2)).String())
	assert.Equal(t, "50.25", a.Div(decimal.NewFromInt(2)).String())
}

func TestMoneyComparisons(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	assert.True(t, b.GreaterThan(a))
	assert.True(t, a.LessThan(b))
	assert.True(t, a.Equal(NewMoney(10)))
	assert.True(t, Zero().IsZero())
	assert.True(t, a.IsPositive())
	assert.True(t, NewMoney(-1).IsNegative())
}

func TestMoneyMinMax(t *testing.T) {
	a := NewMoney(10)
	b := NewMoney(20)

	assert.True(t, Min(a, b).Equal(a))
	assert.True(t, Max(a, b).Equal(b))
}

func TestMoneyRoundAndFormat(t *testing.T) {
	m := NewMoneyFromDecimal(decimal.RequireFromString("1234.567"))
	assert.Equal(t, "1234.57", m.Round().String())
	assert.Equal(t, "$1234.57", m.Round().Format())
}
