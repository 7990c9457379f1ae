package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

// RiskThreshold is the margin below which a passing scenario is flagged RISK:
// 0.50 percentage points, expressed as a fraction. It is fixed policy, not
// user-configurable.
var RiskThreshold = decimal.New(5, -3) // 0.0050

// ClassifyMargin maps a margin to PASS, RISK, or FAIL. A margin of exactly
// zero fails (no headroom), and a margin of exactly the risk threshold
// passes. ERROR is never produced here; the scenario executor short-circuits
// to ERROR before classification when calculation is impossible.
func ClassifyMargin(margin decimal.Decimal) domain.Status {
	switch {
	case margin.LessThanOrEqual(decimal.Zero):
		return domain.StatusFail
	case margin.LessThan(RiskThreshold):
		return domain.StatusRisk
	default:
		return domain.StatusPass
	}
}
