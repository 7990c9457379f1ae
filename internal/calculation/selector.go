package calculation

import (
	"math/rand"

	"github.com/shopspring/decimal"
)

// AdopterCount returns how many HCEs adopt at the given adoption rate.
// Rounding is half-up (2.5 rounds to 3), via decimal's round-half-away-from-
// zero on a non-negative product.
func AdopterCount(hceCount int, adoptionRate decimal.Decimal) int {
	n := adoptionRate.Mul(decimal.NewFromInt(int64(hceCount))).Round(0).IntPart()
	return int(n)
}

// SelectAdopters chooses which HCEs adopt the mega-backdoor contribution.
// The sample is fully determined by (ordered HCE id list, adoptionRate, seed):
// a fresh rand.Source is built from the seed on every call, so concurrent
// grid cells never share generator state. The returned ids preserve census
// order. 0% and 100% adoption short-circuit without touching the RNG.
func SelectAdopters(hceIDs []string, adoptionRate decimal.Decimal, seed int64) []string {
	if adoptionRate.IsZero() {
		return []string{}
	}
	if adoptionRate.Equal(decimal.NewFromInt(1)) {
		all := make([]string, len(hceIDs))
		copy(all, hceIDs)
		return all
	}

	count := AdopterCount(len(hceIDs), adoptionRate)
	if count <= 0 {
		return []string{}
	}
	if count >= len(hceIDs) {
		all := make([]string, len(hceIDs))
		copy(all, hceIDs)
		return all
	}

	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(len(hceIDs))

	chosen := make(map[int]bool, count)
	for _, idx := range perm[:count] {
		chosen[idx] = true
	}

	selected := make([]string, 0, count)
	for i, id := range hceIDs {
		if chosen[i] {
			selected = append(selected, id)
		}
	}
	return selected
}
