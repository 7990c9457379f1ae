package calculation

import (
	"sync"

	"github.com/crzyc98/mega-backdoor-acp-sub000/internal/domain"
)

// RunGrid executes one scenario per (adoption rate, contribution rate) pair
// in the Cartesian product. Every cell receives the same seed, so comparable
// combinations sample from consistent HCE adopter sets. Cells are independent
// and run concurrently under a bounded worker pool; an ERROR in one cell
// never prevents the others from computing. Results are returned in
// row-major request order (adoption rates outer, contribution rates inner).
func (e *Engine) RunGrid(census []domain.Participant, req domain.GridRequest) domain.GridResult {
	seed := DefaultSeed
	if req.Seed != nil {
		seed = *req.Seed
	}

	total := len(req.AdoptionRates) * len(req.ContributionRates)
	results := make([]domain.ScenarioResult, total)

	workers := e.MaxConcurrentCells
	if workers < 1 {
		workers = defaultMaxConcurrentCells
	}

	var wg sync.WaitGroup
	semaphore := make(chan struct{}, workers)

	for i, adoption := range req.AdoptionRates {
		for j, contribution := range req.ContributionRates {
			idx := i*len(req.ContributionRates) + j
			cellReq := domain.ScenarioRequest{
				AdoptionRate:     adoption,
				ContributionRate: contribution,
				Seed:             &seed,
				IncludeDebug:     req.IncludeDebug,
			}

			wg.Add(1)
			go func(idx int, cellReq domain.ScenarioRequest) {
				defer wg.Done()
				semaphore <- struct{}{}
				defer func() { <-semaphore }()

				results[idx] = e.RunScenario(census, cellReq)
			}(idx, cellReq)
		}
	}

	wg.Wait()

	summary := Summarize(results)
	e.Logger.Infof("grid complete: %d cells (%d pass, %d risk, %d fail, %d error)",
		summary.TotalCount, summary.PassCount, summary.RiskCount, summary.FailCount, summary.ErrorCount)

	return domain.GridResult{
		Scenarios: results,
		Summary:   summary,
		SeedUsed:  seed,
	}
}
