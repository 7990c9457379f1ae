package calculation

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

var (
	two            = decimal.NewFromInt(2)
	multipleFactor = decimal.NewFromFloat(1.25) // IRS multiple test: 1.25x NHCE ACP
	additiveSpread = decimal.New(2, -2)         // IRS additive test: +2 percentage points
)

// ACPFigures carries everything the dual-threshold test produces for one
// scenario, including the per-participant breakdowns the debug payload is
// assembled from. All rate values are fractions with decimal precision;
// nothing here is rounded for display.
type ACPFigures struct {
	NHCEACP           decimal.Decimal
	HCEACP            decimal.Decimal
	ThresholdMultiple decimal.Decimal
	ThresholdAdditive decimal.Decimal
	MaxAllowedACP     decimal.Decimal
	LimitingBound     domain.LimitingBound
	Margin            decimal.Decimal

	HCEContributorCount  int
	NHCEContributorCount int
	TotalMegaBackdoor    decimal.Decimal // dollars

	HCEACPSum  decimal.Decimal
	HCECount   int
	NHCEACPSum decimal.Decimal
	NHCECount  int

	HCEContributions  []domain.ParticipantContribution
	NHCEContributions []domain.ParticipantContribution
}

// ComputeACP runs the ACP calculation for one scenario: individual ACPs with
// simulated contributions for adopting HCEs, group means, the IRS dual
// threshold, limiting bound, and margin.
//
// The census contract guarantees positive compensation; a violation is
// reported as an error rather than allowed to produce a non-finite ACP.
// Callers are expected to have rejected censuses without HCEs or without
// NHCEs before calling.
func ComputeACP(census []domain.Participant, adopters map[string]bool, contributionRate decimal.Decimal) (*ACPFigures, error) {
	f := &ACPFigures{}

	for _, p := range census {
		if p.Compensation <= 0 {
			return nil, fmt.Errorf("participant %s has non-positive compensation (%d); census contract violated", p.ID, p.Compensation)
		}

		comp := decimal.NewFromInt(p.Compensation)
		existing := decimal.NewFromInt(p.ExistingContribution)

		if p.IsHCE {
			simulated := decimal.Zero
			if adopters[p.ID] {
				simulated = comp.Mul(contributionRate)
				f.HCEContributorCount++
			}
			acp := existing.Add(simulated).Div(comp)
			f.HCEACPSum = f.HCEACPSum.Add(acp)
			f.HCECount++
			f.TotalMegaBackdoor = f.TotalMegaBackdoor.Add(simulated)
			f.HCEContributions = append(f.HCEContributions, domain.ParticipantContribution{
				ID:                    p.ID,
				Compensation:          p.Compensation,
				ExistingContribution:  p.ExistingContribution,
				SimulatedContribution: centsToDollars(simulated),
				IndividualACP:         acp,
			})
		} else {
			acp := existing.Div(comp)
			f.NHCEACPSum = f.NHCEACPSum.Add(acp)
			f.NHCECount++
			if p.ExistingContribution > 0 {
				f.NHCEContributorCount++
			}
			f.NHCEContributions = append(f.NHCEContributions, domain.ParticipantContribution{
				ID:                   p.ID,
				Compensation:         p.Compensation,
				ExistingContribution: p.ExistingContribution,
				IndividualACP:        acp,
			})
		}
	}

	if f.HCECount == 0 || f.NHCECount == 0 {
		return nil, fmt.Errorf("ACP groups incomplete: %d HCE, %d NHCE participants", f.HCECount, f.NHCECount)
	}

	f.NHCEACP = f.NHCEACPSum.Div(decimal.NewFromInt(int64(f.NHCECount)))
	f.HCEACP = f.HCEACPSum.Div(decimal.NewFromInt(int64(f.HCECount)))
	f.TotalMegaBackdoor = centsToDollars(f.TotalMegaBackdoor)

	f.ThresholdMultiple = f.NHCEACP.Mul(multipleFactor)
	f.ThresholdAdditive = decimal.Min(f.NHCEACP.Add(additiveSpread), f.NHCEACP.Mul(two))

	// The plan may satisfy either test, so the more permissive bound governs.
	// A tie reports MULTIPLE.
	if f.ThresholdMultiple.GreaterThanOrEqual(f.ThresholdAdditive) {
		f.MaxAllowedACP = f.ThresholdMultiple
		f.LimitingBound = domain.BoundMultiple
	} else {
		f.MaxAllowedACP = f.ThresholdAdditive
		f.LimitingBound = domain.BoundAdditive
	}

	f.Margin = f.MaxAllowedACP.Sub(f.HCEACP)
	return f, nil
}

func centsToDollars(cents decimal.Decimal) decimal.Decimal {
	return cents.Shift(-2)
}
