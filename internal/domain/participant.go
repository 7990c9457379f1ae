package domain

// Participant represents one plan participant as delivered by the census
// pipeline. Amounts are integers in the smallest currency unit (cents) and
// arrive already validated: compensation is positive, the HCE flag is
// pre-computed, and PII has been stripped upstream.
type Participant struct {
	ID                   string `yaml:"id" json:"id"`
	IsHCE                bool   `yaml:"hce" json:"is_hce"`
	Compensation         int64  `yaml:"compensation_cents" json:"compensation_cents"`
	ExistingContribution int64  `yaml:"existing_contribution_cents" json:"existing_contribution_cents"`
}

// HCEIDs returns the ids of all HCE participants in census order.
// Census order is part of the sampling contract: the adopter selection is
// deterministic only with respect to this ordering.
func HCEIDs(census []Participant) []string {
	var ids []string
	for _, p := range census {
		if p.IsHCE {
			ids = append(ids, p.ID)
		}
	}
	return ids
}

// CountByGroup returns the number of HCE and NHCE participants in the census.
func CountByGroup(census []Participant) (hce, nhce int) {
	for _, p := range census {
		if p.IsHCE {
			hce++
		} else {
			nhce++
		}
	}
	return hce, nhce
}
