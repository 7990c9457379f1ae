package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

// cell builds a synthetic grid cell. An empty margin means an ERROR cell
// with no calculation fields.
func cell(status domain.Status, adoption, contribution, margin string) domain.ScenarioResult {
	r := domain.ScenarioResult{
		Status:           status,
		AdoptionRate:     decimal.RequireFromString(adoption),
		ContributionRate: decimal.RequireFromString(contribution),
		SeedUsed:         42,
	}
	if margin != "" {
		m := decimal.RequireFromString(margin)
		r.Margin = &m
	}
	return r
}

func TestSummarize_Counts(t *testing.T) {
	var results []domain.ScenarioResult
	for i := 0; i < 5; i++ {
		results = append(results, cell(domain.StatusPass, "0.25", "0.02", "0.02"))
	}
	for i := 0; i < 3; i++ {
		results = append(results, cell(domain.StatusRisk, "0.25", "0.04", "0.003"))
	}
	for i := 0; i < 2; i++ {
		results = append(results, cell(domain.StatusFail, "0.25", "0.06", "-0.01"))
	}

	s := Summarize(results)
	assert.Equal(t, 5, s.PassCount)
	assert.Equal(t, 3, s.RiskCount)
	assert.Equal(t, 2, s.FailCount)
	assert.Equal(t, 0, s.ErrorCount)
	assert.Equal(t, 10, s.TotalCount)
	assert.Equal(t, s.TotalCount, s.PassCount+s.RiskCount+s.FailCount+s.ErrorCount)
}

func TestSummarize_AllPass(t *testing.T) {
	results := []domain.ScenarioResult{
		cell(domain.StatusPass, "0.25", "0.04", "0.02"),
		cell(domain.StatusPass, "0.50", "0.04", "0.015"),
	}

	s := Summarize(results)
	assert.Nil(t, s.FirstFailurePoint)
	require.NotNil(t, s.MaxSafeContribution)
	assertDecimal(t, "0.04", *s.MaxSafeContribution)
	require.NotNil(t, s.WorstMargin)
	assertDecimal(t, "0.015", *s.WorstMargin, "smallest positive margin is the worst")
}

func TestSummarize_FirstFailurePoint(t *testing.T) {
	results := []domain.ScenarioResult{
		cell(domain.StatusFail, "0.50", "0.02", "-0.001"),
		cell(domain.StatusFail, "0.75", "0.06", "-0.01"),
		cell(domain.StatusFail, "0.75", "0.04", "-0.005"),
		cell(domain.StatusPass, "0.75", "0.02", "0.01"),
	}

	s := Summarize(results)
	require.NotNil(t, s.FirstFailurePoint)
	// Highest adoption rate with any failure is 0.75; among those, the
	// lowest failing contribution rate is 0.04.
	assertDecimal(t, "0.75", s.FirstFailurePoint.AdoptionRate)
	assertDecimal(t, "0.04", s.FirstFailurePoint.ContributionRate)
}

func TestSummarize_MaxSafeContribution(t *testing.T) {
	results := []domain.ScenarioResult{
		cell(domain.StatusPass, "0.50", "0.08", "0.02"),
		cell(domain.StatusPass, "0.75", "0.04", "0.01"),
		cell(domain.StatusRisk, "0.75", "0.06", "0.002"),
		cell(domain.StatusFail, "0.75", "0.08", "-0.004"),
	}

	s := Summarize(results)
	require.NotNil(t, s.MaxSafeContribution)
	// Only cells at the grid's maximum adoption rate (0.75) qualify; the
	// RISK cell at 6% beats the PASS cell at 4%, and the higher PASS cell
	// at the lower 0.50 adoption rate is ignored.
	assertDecimal(t, "0.06", *s.MaxSafeContribution)
}

func TestSummarize_NoSafeContributionAtMaxAdoption(t *testing.T) {
	results := []domain.ScenarioResult{
		cell(domain.StatusPass, "0.25", "0.04", "0.02"),
		cell(domain.StatusFail, "0.50", "0.04", "-0.01"),
	}

	s := Summarize(results)
	assert.Nil(t, s.MaxSafeContribution)
}

func TestSummarize_WorstMarginExcludesErrors(t *testing.T) {
	results := []domain.ScenarioResult{
		cell(domain.StatusError, "0.25", "0.04", ""),
		cell(domain.StatusFail, "0.50", "0.04", "-0.02"),
		cell(domain.StatusPass, "0.50", "0.02", "0.01"),
	}

	s := Summarize(results)
	assert.Equal(t, 1, s.ErrorCount)
	require.NotNil(t, s.WorstMargin)
	assertDecimal(t, "-0.02", *s.WorstMargin)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Equal(t, 0, s.TotalCount)
	assert.Nil(t, s.FirstFailurePoint)
	assert.Nil(t, s.MaxSafeContribution)
	assert.Nil(t, s.WorstMargin)
}
