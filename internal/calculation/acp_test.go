package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

// assertDecimal compares a decimal against an exact expected string value.
func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual),
		"expected %s, got %s (%v)", expected, actual, msgAndArgs)
}

func hce(id string, compCents, existingCents int64) domain.Participant {
	return domain.Participant{ID: id, IsHCE: true, Compensation: compCents, ExistingContribution: existingCents}
}

func nhce(id string, compCents, existingCents int64) domain.Participant {
	return domain.Participant{ID: id, IsHCE: false, Compensation: compCents, ExistingContribution: existingCents}
}

func TestComputeACP_NoAdopters(t *testing.T) {
	// Two NHCEs at exactly 3.5% each, two HCEs at exactly 4.5% each.
	census := []domain.Participant{
		nhce("N1", 100000, 3500),
		nhce("N2", 100000, 3500),
		hce("H1", 200000, 9000),
		hce("H2", 200000, 9000),
	}

	figures, err := ComputeACP(census, map[string]bool{}, decimal.RequireFromString("0.06"))
	require.NoError(t, err)

	assertDecimal(t, "0.035", figures.NHCEACP)
	assertDecimal(t, "0.045", figures.HCEACP)

	// Multiple test: 1.25 x 3.5% = 4.375%.
	// Additive test: min(3.5% + 2pp, 2 x 3.5%) = 5.5%, cap not binding.
	assertDecimal(t, "0.04375", figures.ThresholdMultiple)
	assertDecimal(t, "0.055", figures.ThresholdAdditive)
	assertDecimal(t, "0.055", figures.MaxAllowedACP)
	assert.Equal(t, domain.BoundAdditive, figures.LimitingBound)
	assertDecimal(t, "0.01", figures.Margin)

	assert.Equal(t, 0, figures.HCEContributorCount)
	assert.Equal(t, 2, figures.NHCEContributorCount)
	assertDecimal(t, "0", figures.TotalMegaBackdoor)
}

func TestComputeACP_AdditiveCapBinds(t *testing.T) {
	// NHCE ACP 1%: additive test is min(3%, 2%) = 2%, so the 2x cap governs
	// and still beats the 1.25% multiple test.
	census := []domain.Participant{
		nhce("N1", 100000, 1000),
		hce("H1", 100000, 1500),
	}

	figures, err := ComputeACP(census, map[string]bool{}, decimal.Zero)
	require.NoError(t, err)

	assertDecimal(t, "0.0125", figures.ThresholdMultiple)
	assertDecimal(t, "0.02", figures.ThresholdAdditive)
	assertDecimal(t, "0.02", figures.MaxAllowedACP)
	assert.Equal(t, domain.BoundAdditive, figures.LimitingBound)
}

func TestComputeACP_ThresholdTieFavorsMultiple(t *testing.T) {
	// At NHCE ACP 8% both formulas give 10%: multiple 1.25 x 8%, additive
	// min(10%, 16%). Ties report MULTIPLE.
	census := []domain.Participant{
		nhce("N1", 100000, 8000),
		hce("H1", 100000, 9000),
	}

	figures, err := ComputeACP(census, map[string]bool{}, decimal.Zero)
	require.NoError(t, err)

	assertDecimal(t, "0.10", figures.ThresholdMultiple)
	assertDecimal(t, "0.10", figures.ThresholdAdditive)
	assert.Equal(t, domain.BoundMultiple, figures.LimitingBound)
}

func TestComputeACP_SimulatedContributions(t *testing.T) {
	census := []domain.Participant{
		nhce("N1", 100000, 3000),
		nhce("N2", 100000, 0),
		hce("H1", 200000, 9000), // adopter
		hce("H2", 200000, 9000), // non-adopter
	}
	adopters := map[string]bool{"H1": true}

	figures, err := ComputeACP(census, adopters, decimal.RequireFromString("0.06"))
	require.NoError(t, err)

	// H1: (9000 + 200000 x 0.06) / 200000 = 21000/200000 = 10.5%
	// H2: 9000/200000 = 4.5%; group mean 7.5%.
	assertDecimal(t, "0.075", figures.HCEACP)
	assert.Equal(t, 1, figures.HCEContributorCount)
	assert.Equal(t, 1, figures.NHCEContributorCount, "NHCE with zero contribution is not a contributor")

	// 12000 cents of simulated contribution, reported in dollars.
	assertDecimal(t, "120", figures.TotalMegaBackdoor)

	require.Len(t, figures.HCEContributions, 2)
	assertDecimal(t, "120", figures.HCEContributions[0].SimulatedContribution)
	assertDecimal(t, "0.105", figures.HCEContributions[0].IndividualACP)
	assertDecimal(t, "0", figures.HCEContributions[1].SimulatedContribution)
}

func TestComputeACP_IntermediateSums(t *testing.T) {
	census := []domain.Participant{
		nhce("N1", 100000, 2000),
		nhce("N2", 100000, 4000),
		hce("H1", 100000, 5000),
	}

	figures, err := ComputeACP(census, map[string]bool{}, decimal.Zero)
	require.NoError(t, err)

	assertDecimal(t, "0.06", figures.NHCEACPSum)
	assert.Equal(t, 2, figures.NHCECount)
	assertDecimal(t, "0.05", figures.HCEACPSum)
	assert.Equal(t, 1, figures.HCECount)
	assertDecimal(t, "0.03", figures.NHCEACP)
}

func TestComputeACP_NonPositiveCompensation(t *testing.T) {
	census := []domain.Participant{
		nhce("N1", 100000, 2000),
		hce("H1", 0, 5000),
	}

	_, err := ComputeACP(census, map[string]bool{}, decimal.Zero)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "non-positive compensation")
	assert.Contains(t, err.Error(), "H1")
}
