package output

import (
	"github.com/shopspring/decimal"

	moneydec "github.com/crzyc98/mega-backdoor-acp-sub000/pkg/decimal"
)

var hundred = decimal.NewFromInt(100)

// FormatPercent renders a fractional rate as a percentage with 2 decimals,
// e.g. 0.0625 -> "6.25%". Kept here so it can be reused by multiple
// formatters and unit tested in isolation.
func FormatPercent(rate decimal.Decimal) string {
	return rate.Mul(hundred).StringFixed(2) + "%"
}

// FormatMarginPP renders a fractional margin in percentage points,
// e.g. -0.0015 -> "-0.15 pp".
func FormatMarginPP(margin decimal.Decimal) string {
	return margin.Mul(hundred).StringFixed(2) + " pp"
}

// FormatCurrency formats a dollar amount as USD currency with 2 decimals.
func FormatCurrency(amount decimal.Decimal) string {
	return moneydec.NewMoneyFromDecimal(amount).Format()
}

// FormatCents formats a cents amount as USD currency.
func FormatCents(cents int64) string {
	return moneydec.NewMoneyFromCents(cents).Format()
}
