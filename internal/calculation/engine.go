package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

// DefaultSeed is used when a request does not carry a seed. It is a fixed
// constant so that seedless runs are still reproducible across processes.
const DefaultSeed int64 = 42

// Exact messages for the three domain-impossible conditions. Callers and
// tests match on these.
const (
	ErrMsgEmptyCensus = "census is empty"
	ErrMsgNoHCE       = "ACP test not applicable: no HCE participants"
	ErrMsgNoNHCE      = "NHCE ACP undefined: no NHCE participants"
)

// Engine runs ACP scenarios and grids. It holds no mutable state between
// invocations; the census is read-only for the duration of one call.
type Engine struct {
	Logger Logger

	// MaxConcurrentCells bounds grid parallelism. Values below 1 fall back
	// to the default.
	MaxConcurrentCells int
}

const defaultMaxConcurrentCells = 10

// NewEngine creates a scenario engine with a no-op logger.
func NewEngine() *Engine {
	return &Engine{
		Logger:             NopLogger{},
		MaxConcurrentCells: defaultMaxConcurrentCells,
	}
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op
// logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// RunScenario executes one scenario: select adopting HCEs, compute the ACP
// figures, classify the margin, and assemble the result. The three
// domain-impossible conditions (empty census, no HCEs, no NHCEs) short-
// circuit to an ERROR result with every calculation field nil; no partial
// computation leaks out. Identical inputs always produce identical results.
func (e *Engine) RunScenario(census []domain.Participant, req domain.ScenarioRequest) domain.ScenarioResult {
	seed := DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	if len(census) == 0 {
		return e.errorResult(req, seed, ErrMsgEmptyCensus)
	}
	hceCount, nhceCount := domain.CountByGroup(census)
	if hceCount == 0 {
		return e.errorResult(req, seed, ErrMsgNoHCE)
	}
	if nhceCount == 0 {
		return e.errorResult(req, seed, ErrMsgNoNHCE)
	}

	selected := SelectAdopters(domain.HCEIDs(census), req.AdoptionRate, seed)
	adopters := make(map[string]bool, len(selected))
	for _, id := range selected {
		adopters[id] = true
	}

	figures, err := ComputeACP(census, adopters, req.ContributionRate)
	if err != nil {
		e.Logger.Errorf("ACP calculation failed: %v", err)
		return e.errorResult(req, seed, err.Error())
	}

	status := ClassifyMargin(figures.Margin)
	e.Logger.Debugf("scenario adoption=%s contribution=%s seed=%d: hce_acp=%s max_allowed=%s margin=%s status=%s",
		req.AdoptionRate, req.ContributionRate, seed,
		figures.HCEACP, figures.MaxAllowedACP, figures.Margin, status)

	result := domain.ScenarioResult{
		Status:                  status,
		NHCEACP:                 decimalPtr(figures.NHCEACP),
		HCEACP:                  decimalPtr(figures.HCEACP),
		MaxAllowedACP:           decimalPtr(figures.MaxAllowedACP),
		Margin:                  decimalPtr(figures.Margin),
		LimitingBound:           boundPtr(figures.LimitingBound),
		HCEContributorCount:     intPtr(figures.HCEContributorCount),
		NHCEContributorCount:    intPtr(figures.NHCEContributorCount),
		TotalMegaBackdoorAmount: decimalPtr(figures.TotalMegaBackdoor),
		SeedUsed:                seed,
		AdoptionRate:            req.AdoptionRate,
		ContributionRate:        req.ContributionRate,
	}

	if req.IncludeDebug {
		result.DebugDetails = &domain.DebugDetails{
			SelectedHCEIDs:    selected,
			HCEContributions:  figures.HCEContributions,
			NHCEContributions: figures.NHCEContributions,
			IntermediateValues: domain.IntermediateValues{
				HCEACPSum:         figures.HCEACPSum,
				HCECount:          figures.HCECount,
				NHCEACPSum:        figures.NHCEACPSum,
				NHCECount:         figures.NHCECount,
				ThresholdMultiple: figures.ThresholdMultiple,
				ThresholdAdditive: figures.ThresholdAdditive,
			},
		}
	}

	return result
}

func (e *Engine) errorResult(req domain.ScenarioRequest, seed int64, msg string) domain.ScenarioResult {
	e.Logger.Warnf("scenario not calculable: %s", msg)
	return domain.ScenarioResult{
		Status:           domain.StatusError,
		SeedUsed:         seed,
		AdoptionRate:     req.AdoptionRate,
		ContributionRate: req.ContributionRate,
		ErrorMessage:     msg,
	}
}

func decimalPtr(d decimal.Decimal) *decimal.Decimal { return &d }

func boundPtr(b domain.LimitingBound) *domain.LimitingBound { return &b }

func intPtr(n int) *int { return &n }
