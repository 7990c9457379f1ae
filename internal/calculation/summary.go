package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

// Summarize reduces a completed list of grid cells into aggregate counts and
// the three derived metrics:
//
//   - FirstFailurePoint: among FAIL cells, the one at the highest adoption
//     rate; ties broken by the lowest contribution rate. Nil when nothing
//     fails.
//   - MaxSafeContribution: among cells at the highest adoption rate present
//     anywhere in the grid, the highest contribution rate that is PASS or
//     RISK. Nil when no such cell exists.
//   - WorstMargin: the minimum margin across non-ERROR cells. ERROR cells
//     are excluded, not treated as the worst case; nil when every cell
//     errored.
func Summarize(results []domain.ScenarioResult) domain.GridSummary {
	summary := domain.GridSummary{TotalCount: len(results)}

	var maxAdoption *decimal.Decimal
	for i := range results {
		r := &results[i]

		switch r.Status {
		case domain.StatusPass:
			summary.PassCount++
		case domain.StatusRisk:
			summary.RiskCount++
		case domain.StatusFail:
			summary.FailCount++
		case domain.StatusError:
			summary.ErrorCount++
		}

		if maxAdoption == nil || r.AdoptionRate.GreaterThan(*maxAdoption) {
			rate := r.AdoptionRate
			maxAdoption = &rate
		}

		if r.Status == domain.StatusFail {
			if summary.FirstFailurePoint == nil ||
				r.AdoptionRate.GreaterThan(summary.FirstFailurePoint.AdoptionRate) ||
				(r.AdoptionRate.Equal(summary.FirstFailurePoint.AdoptionRate) &&
					r.ContributionRate.LessThan(summary.FirstFailurePoint.ContributionRate)) {
				summary.FirstFailurePoint = &domain.FailurePoint{
					AdoptionRate:     r.AdoptionRate,
					ContributionRate: r.ContributionRate,
				}
			}
		}

		if r.Margin != nil {
			if summary.WorstMargin == nil || r.Margin.LessThan(*summary.WorstMargin) {
				m := *r.Margin
				summary.WorstMargin = &m
			}
		}
	}

	if maxAdoption != nil {
		for i := range results {
			r := &results[i]
			if !r.AdoptionRate.Equal(*maxAdoption) {
				continue
			}
			if r.Status != domain.StatusPass && r.Status != domain.StatusRisk {
				continue
			}
			if summary.MaxSafeContribution == nil || r.ContributionRate.GreaterThan(*summary.MaxSafeContribution) {
				c := r.ContributionRate
				summary.MaxSafeContribution = &c
			}
		}
	}

	return summary
}
