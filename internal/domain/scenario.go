package domain

import (
	"github.com/shopspring/decimal"
)

// Status classifies the outcome of an ACP scenario. It is derived from the
// margin (plus an explicit ERROR short-circuit), never set independently.
type Status string

const (
	StatusPass  Status = "PASS"
	StatusRisk  Status = "RISK"
	StatusFail  Status = "FAIL"
	StatusError Status = "ERROR"
)

// LimitingBound identifies which of the two IRS threshold formulas governs
// the maximum allowed HCE ACP.
type LimitingBound string

const (
	// BoundMultiple is the 1.25x multiple test.
	BoundMultiple LimitingBound = "MULTIPLE"
	// BoundAdditive is the +2 percentage point test, itself capped at twice
	// the NHCE ACP.
	BoundAdditive LimitingBound = "ADDITIVE"
)

// ScenarioRequest describes a single (adoption rate, contribution rate)
// scenario. Rates are fractions in [0, 1]. A nil Seed means the engine
// supplies its deterministic default.
type ScenarioRequest struct {
	AdoptionRate     decimal.Decimal `json:"adoption_rate"`
	ContributionRate decimal.Decimal `json:"contribution_rate"`
	Seed             *int64          `json:"seed,omitempty"`
	IncludeDebug     bool            `json:"include_debug,omitempty"`
}

// ScenarioResult is the full outcome of one scenario. Exactly one of two
// shapes holds: all calculation fields populated with Status PASS/RISK/FAIL,
// or Status ERROR with every calculation field nil and ErrorMessage set.
// SeedUsed and the echoed rates are always present.
type ScenarioResult struct {
	Status                  Status           `json:"status"`
	NHCEACP                 *decimal.Decimal `json:"nhce_acp,omitempty"`
	HCEACP                  *decimal.Decimal `json:"hce_acp,omitempty"`
	MaxAllowedACP           *decimal.Decimal `json:"max_allowed_acp,omitempty"`
	Margin                  *decimal.Decimal `json:"margin,omitempty"`
	LimitingBound           *LimitingBound   `json:"limiting_bound,omitempty"`
	HCEContributorCount     *int             `json:"hce_contributor_count,omitempty"`
	NHCEContributorCount    *int             `json:"nhce_contributor_count,omitempty"`
	TotalMegaBackdoorAmount *decimal.Decimal `json:"total_mega_backdoor_amount,omitempty"`
	SeedUsed                int64            `json:"seed_used"`
	AdoptionRate            decimal.Decimal  `json:"adoption_rate"`
	ContributionRate        decimal.Decimal  `json:"contribution_rate"`
	ErrorMessage            string           `json:"error_message,omitempty"`
	DebugDetails            *DebugDetails    `json:"debug_details,omitempty"`
}

// IsError reports whether the scenario could not be calculated.
func (r *ScenarioResult) IsError() bool {
	return r.Status == StatusError
}

// ParticipantContribution is the per-participant breakdown captured in the
// debug payload. Compensation and ExistingContribution echo the census in
// cents; SimulatedContribution is in dollars.
type ParticipantContribution struct {
	ID                    string          `json:"id"`
	Compensation          int64           `json:"compensation_cents"`
	ExistingContribution  int64           `json:"existing_contribution_cents"`
	SimulatedContribution decimal.Decimal `json:"simulated_contribution"`
	IndividualACP         decimal.Decimal `json:"individual_acp"`
}

// IntermediateValues holds the raw sums and thresholds behind the group ACP
// figures, for audit of a single scenario.
type IntermediateValues struct {
	HCEACPSum         decimal.Decimal `json:"hce_acp_sum"`
	HCECount          int             `json:"hce_count"`
	NHCEACPSum        decimal.Decimal `json:"nhce_acp_sum"`
	NHCECount         int             `json:"nhce_count"`
	ThresholdMultiple decimal.Decimal `json:"threshold_multiple"`
	ThresholdAdditive decimal.Decimal `json:"threshold_additive"`
}

// DebugDetails is the opt-in per-participant side channel. It is owned by the
// ScenarioResult that produced it and never shared between results.
type DebugDetails struct {
	SelectedHCEIDs     []string                  `json:"selected_hce_ids"`
	HCEContributions   []ParticipantContribution `json:"hce_contributions"`
	NHCEContributions  []ParticipantContribution `json:"nhce_contributions"`
	IntermediateValues IntermediateValues        `json:"intermediate_values"`
}

// GridRequest describes a sweep over the Cartesian product of adoption rates
// and contribution rates. Every cell shares the same seed.
type GridRequest struct {
	AdoptionRates     []decimal.Decimal `json:"adoption_rates"`
	ContributionRates []decimal.Decimal `json:"contribution_rates"`
	Seed              *int64            `json:"seed,omitempty"`
	IncludeDebug      bool              `json:"include_debug,omitempty"`
}

// FailurePoint locates one cell of a grid by its input rates.
type FailurePoint struct {
	AdoptionRate     decimal.Decimal `json:"adoption_rate"`
	ContributionRate decimal.Decimal `json:"contribution_rate"`
}

// GridSummary aggregates a completed grid. The four status counts always sum
// to TotalCount. WorstMargin covers non-ERROR cells only and is nil when the
// whole grid errored.
type GridSummary struct {
	PassCount           int              `json:"pass_count"`
	RiskCount           int              `json:"risk_count"`
	FailCount           int              `json:"fail_count"`
	ErrorCount          int              `json:"error_count"`
	TotalCount          int              `json:"total_count"`
	FirstFailurePoint   *FailurePoint    `json:"first_failure_point,omitempty"`
	MaxSafeContribution *decimal.Decimal `json:"max_safe_contribution,omitempty"`
	WorstMargin         *decimal.Decimal `json:"worst_margin,omitempty"`
}

// GridResult holds one ScenarioResult per (adoption rate, contribution rate)
// pair, in row-major request order, plus the reduced summary.
type GridResult struct {
	Scenarios []ScenarioResult `json:"scenarios"`
	Summary   GridSummary      `json:"summary"`
	SeedUsed  int64            `json:"seed_used"`
}
