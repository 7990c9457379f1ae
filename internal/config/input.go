package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

// Grid axis bounds owned by the request layer. The engine itself does not
// re-check these.
const (
	MinGridAxis = 2
	MaxGridAxis = 20
)

// Analysis is a fully validated input to the engine: a clean census plus a
// scenario request, a grid request, or both.
type Analysis struct {
	Census   []domain.Participant
	Scenario *domain.ScenarioRequest
	Grid     *domain.GridRequest
}

// Rate fields are parsed from YAML strings so values like "0.50" stay exact
// decimals instead of round-tripping through float64.
type analysisYAML struct {
	Census   []domain.Participant `yaml:"census"`
	Scenario *scenarioYAML        `yaml:"scenario,omitempty"`
	Grid     *gridYAML            `yaml:"grid,omitempty"`
}

type scenarioYAML struct {
	AdoptionRate     string `yaml:"adoption_rate"`
	ContributionRate string `yaml:"contribution_rate"`
	Seed             *int64 `yaml:"seed,omitempty"`
	IncludeDebug     bool   `yaml:"include_debug,omitempty"`
}

type gridYAML struct {
	AdoptionRates     []string `yaml:"adoption_rates"`
	ContributionRates []string `yaml:"contribution_rates"`
	Seed              *int64   `yaml:"seed,omitempty"`
	IncludeDebug      bool     `yaml:"include_debug,omitempty"`
}

// InputParser handles parsing of analysis input files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads an analysis definition from a YAML file
func (ip *InputParser) LoadFromFile(filename string) (*Analysis, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse parses and validates a YAML analysis document
func (ip *InputParser) Parse(data []byte) (*Analysis, error) {
	var raw analysisYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	analysis := &Analysis{Census: raw.Census}

	if raw.Scenario != nil {
		req, err := ip.buildScenarioRequest(raw.Scenario)
		if err != nil {
			return nil, fmt.Errorf("scenario validation failed: %w", err)
		}
		analysis.Scenario = req
	}
	if raw.Grid != nil {
		req, err := ip.buildGridRequest(raw.Grid)
		if err != nil {
			return nil, fmt.Errorf("grid validation failed: %w", err)
		}
		analysis.Grid = req
	}

	if err := ip.validateAnalysis(analysis); err != nil {
		return nil, fmt.Errorf("analysis validation failed: %w", err)
	}
	return analysis, nil
}

func (ip *InputParser) buildScenarioRequest(raw *scenarioYAML) (*domain.ScenarioRequest, error) {
	adoption, err := parseRate("adoption_rate", raw.AdoptionRate)
	if err != nil {
		return nil, err
	}
	contribution, err := parseRate("contribution_rate", raw.ContributionRate)
	if err != nil {
		return nil, err
	}
	if err := validateSeed(raw.Seed); err != nil {
		return nil, err
	}
	return &domain.ScenarioRequest{
		AdoptionRate:     adoption,
		ContributionRate: contribution,
		Seed:             raw.Seed,
		IncludeDebug:     raw.IncludeDebug,
	}, nil
}

func (ip *InputParser) buildGridRequest(raw *gridYAML) (*domain.GridRequest, error) {
	adoptions, err := parseRateList("adoption_rates", raw.AdoptionRates)
	if err != nil {
		return nil, err
	}
	contributions, err := parseRateList("contribution_rates", raw.ContributionRates)
	if err != nil {
		return nil, err
	}
	if err := validateSeed(raw.Seed); err != nil {
		return nil, err
	}
	return &domain.GridRequest{
		AdoptionRates:     adoptions,
		ContributionRates: contributions,
		Seed:              raw.Seed,
		IncludeDebug:      raw.IncludeDebug,
	}, nil
}

// validateAnalysis validates the census and requires at least one request.
func (ip *InputParser) validateAnalysis(analysis *Analysis) error {
	if len(analysis.Census) == 0 {
		return fmt.Errorf("census must contain at least one participant")
	}

	seen := make(map[string]bool, len(analysis.Census))
	for i, p := range analysis.Census {
		if p.ID == "" {
			return fmt.Errorf("participant %d: id is required", i)
		}
		if seen[p.ID] {
			return fmt.Errorf("participant %d: duplicate id %q", i, p.ID)
		}
		seen[p.ID] = true
		if p.Compensation <= 0 {
			return fmt.Errorf("participant %s: compensation must be positive", p.ID)
		}
		if p.ExistingContribution < 0 {
			return fmt.Errorf("participant %s: existing contribution cannot be negative", p.ID)
		}
	}

	if analysis.Scenario == nil && analysis.Grid == nil {
		return fmt.Errorf("analysis must define a scenario or a grid")
	}
	return nil
}

func parseRate(field, value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Decimal{}, fmt.Errorf("%s is required", field)
	}
	rate, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("%s: invalid rate %q: %w", field, value, err)
	}
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.Decimal{}, fmt.Errorf("%s must be between 0 and 1, got %s", field, rate)
	}
	return rate, nil
}

func parseRateList(field string, values []string) ([]decimal.Decimal, error) {
	if len(values) < MinGridAxis || len(values) > MaxGridAxis {
		return nil, fmt.Errorf("%s must contain between %d and %d entries, got %d",
			field, MinGridAxis, MaxGridAxis, len(values))
	}
	rates := make([]decimal.Decimal, len(values))
	for i, v := range values {
		rate, err := parseRate(fmt.Sprintf("%s[%d]", field, i), v)
		if err != nil {
			return nil, err
		}
		rates[i] = rate
	}
	return rates, nil
}

func validateSeed(seed *int64) error {
	if seed != nil && *seed <= 0 {
		return fmt.Errorf("seed must be positive, got %d", *seed)
	}
	return nil
}
