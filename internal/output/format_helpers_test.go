package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		rate     string
		expected string
	}{
		{"0", "0.00%"},
		{"0.06", "6.00%"},
		{"0.0625", "6.25%"},
		{"0.5", "50.00%"},
		{"1", "100.00%"},
		// Display rounding happens here, not in the engine.
		{"0.0433333333", "4.33%"},
		{"0.043350", "4.34%"},
	}

	for _, tt := range tests {
		t.Run(tt.rate, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatPercent(decimal.RequireFromString(tt.rate)))
		})
	}
}

func TestFormatMarginPP(t *testing.T) {
	assert.Equal(t, "0.50 pp", FormatMarginPP(decimal.RequireFromString("0.005")))
	assert.Equal(t, "-1.25 pp", FormatMarginPP(decimal.RequireFromString("-0.0125")))
	assert.Equal(t, "0.00 pp", FormatMarginPP(decimal.Zero))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$27600.00", FormatCurrency(decimal.RequireFromString("27600")))
	assert.Equal(t, "$0.50", FormatCurrency(decimal.RequireFromString("0.5")))
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "$1234.56", FormatCents(123456))
	assert.Equal(t, "$0.00", FormatCents(0))
}
