package output

import (
	"fmt"
	"strings"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

// ConsoleFormatter renders results as plain text for terminal display.
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

const labelWidth = 24

func writeField(b *strings.Builder, label, value string) {
	fmt.Fprintf(b, "%-*s%s\n", labelWidth, label+":", value)
}

// FormatScenario renders one scenario result.
func (cf ConsoleFormatter) FormatScenario(result *domain.ScenarioResult) ([]byte, error) {
	var b strings.Builder
	b.WriteString("ACP NONDISCRIMINATION TEST\n")
	b.WriteString("==========================\n")
	writeField(&b, "Status", string(result.Status))
	writeField(&b, "Adoption Rate", FormatPercent(result.AdoptionRate))
	writeField(&b, "Contribution Rate", FormatPercent(result.ContributionRate))
	writeField(&b, "Seed Used", fmt.Sprintf("%d", result.SeedUsed))

	if result.IsError() {
		writeField(&b, "Error", result.ErrorMessage)
		return []byte(b.String()), nil
	}

	b.WriteString("\n")
	writeField(&b, "NHCE ACP", FormatPercent(*result.NHCEACP))
	writeField(&b, "HCE ACP", FormatPercent(*result.HCEACP))
	writeField(&b, "Max Allowed ACP", FormatPercent(*result.MaxAllowedACP))
	writeField(&b, "Margin", FormatMarginPP(*result.Margin))
	writeField(&b, "Limiting Bound", string(*result.LimitingBound))
	writeField(&b, "HCE Contributors", fmt.Sprintf("%d", *result.HCEContributorCount))
	writeField(&b, "NHCE Contributors", fmt.Sprintf("%d", *result.NHCEContributorCount))
	writeField(&b, "Mega-Backdoor Total", FormatCurrency(*result.TotalMegaBackdoorAmount))

	if result.DebugDetails != nil {
		cf.writeDebug(&b, result.DebugDetails)
	}
	return []byte(b.String()), nil
}

func (cf ConsoleFormatter) writeDebug(b *strings.Builder, d *domain.DebugDetails) {
	b.WriteString("\nDEBUG DETAIL\n")
	b.WriteString("------------\n")
	writeField(b, fmt.Sprintf("Selected HCEs (%d)", len(d.SelectedHCEIDs)), strings.Join(d.SelectedHCEIDs, ", "))
	iv := d.IntermediateValues
	writeField(b, "HCE ACP Sum", fmt.Sprintf("%s over %d participants", iv.HCEACPSum.StringFixed(6), iv.HCECount))
	writeField(b, "NHCE ACP Sum", fmt.Sprintf("%s over %d participants", iv.NHCEACPSum.StringFixed(6), iv.NHCECount))
	writeField(b, "Threshold Multiple", FormatPercent(iv.ThresholdMultiple))
	writeField(b, "Threshold Additive", FormatPercent(iv.ThresholdAdditive))
}

// FormatGrid renders the grid summary followed by one row per cell.
func (cf ConsoleFormatter) FormatGrid(result *domain.GridResult) ([]byte, error) {
	var b strings.Builder
	s := result.Summary

	b.WriteString("ACP GRID ANALYSIS\n")
	b.WriteString("=================\n")
	writeField(&b, "Total Cells", fmt.Sprintf("%d", s.TotalCount))
	writeField(&b, "Pass / Risk / Fail", fmt.Sprintf("%d / %d / %d", s.PassCount, s.RiskCount, s.FailCount))
	writeField(&b, "Errors", fmt.Sprintf("%d", s.ErrorCount))

	if s.WorstMargin != nil {
		writeField(&b, "Worst Margin", FormatMarginPP(*s.WorstMargin))
	} else {
		writeField(&b, "Worst Margin", "none")
	}
	if s.FirstFailurePoint != nil {
		writeField(&b, "First Failure", fmt.Sprintf("adoption %s, contribution %s",
			FormatPercent(s.FirstFailurePoint.AdoptionRate), FormatPercent(s.FirstFailurePoint.ContributionRate)))
	} else {
		writeField(&b, "First Failure", "none")
	}
	if s.MaxSafeContribution != nil {
		writeField(&b, "Max Safe Contribution", FormatPercent(*s.MaxSafeContribution))
	} else {
		writeField(&b, "Max Safe Contribution", "none")
	}
	writeField(&b, "Seed Used", fmt.Sprintf("%d", result.SeedUsed))

	b.WriteString("\n")
	fmt.Fprintf(&b, "%-12s%-14s%-8s%s\n", "ADOPTION", "CONTRIBUTION", "STATUS", "MARGIN")
	for i := range result.Scenarios {
		cell := &result.Scenarios[i]
		margin := "-"
		if cell.Margin != nil {
			margin = FormatMarginPP(*cell.Margin)
		}
		fmt.Fprintf(&b, "%-12s%-14s%-8s%s\n",
			FormatPercent(cell.AdoptionRate), FormatPercent(cell.ContributionRate), cell.Status, margin)
	}
	return []byte(b.String()), nil
}
