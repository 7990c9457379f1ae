package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

// exampleAnalysis builds a small worked example: 4 HCEs, 12 NHCEs, a single
// scenario, and a 3x3 grid. Written out by `acptest example` as a starting
// point for a real census.
func (ip *InputParser) exampleAnalysis() *analysisYAML {
	seed := int64(42)

	census := []domain.Participant{
		{ID: "HCE001", IsHCE: true, Compensation: 25000000, ExistingContribution: 1250000},
		{ID: "HCE002", IsHCE: true, Compensation: 21000000, ExistingContribution: 840000},
		{ID: "HCE003", IsHCE: true, Compensation: 18500000, ExistingContribution: 555000},
		{ID: "HCE004", IsHCE: true, Compensation: 16000000, ExistingContribution: 480000},
	}
	for i := 1; i <= 12; i++ {
		comp := int64(6000000 + i*250000)
		census = append(census, domain.Participant{
			ID:                   fmt.Sprintf("NHCE%03d", i),
			IsHCE:                false,
			Compensation:         comp,
			ExistingContribution: comp * 3 / 100, // 3% existing contribution rate
		})
	}

	return &analysisYAML{
		Census: census,
		Scenario: &scenarioYAML{
			AdoptionRate:     "0.50",
			ContributionRate: "0.06",
			Seed:             &seed,
			IncludeDebug:     false,
		},
		Grid: &gridYAML{
			AdoptionRates:     []string{"0.25", "0.50", "0.75"},
			ContributionRates: []string{"0.04", "0.06", "0.08"},
			Seed:              &seed,
		},
	}
}

// WriteExampleFile writes the example analysis as YAML to the given path.
func (ip *InputParser) WriteExampleFile(path string) error {
	data, err := yaml.Marshal(ip.exampleAnalysis())
	if err != nil {
		return fmt.Errorf("failed to marshal example analysis: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
