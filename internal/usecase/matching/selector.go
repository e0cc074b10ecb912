package matching

import (
	"sort"

	"github.com/wingmateapp/wingmate-backend/internal/domain"
)

// selectBest picks the nearest candidate, breaking distance ties by ascending
// user id so identical inputs always produce the identical choice. Returns
// nil for an empty slate, which is a normal outcome.
func selectBest(candidates []domain.Candidate) *domain.Candidate {
	if len(candidates) == 0 {
		return nil
	}

	sorted := make([]domain.Candidate, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		if sorted[i].DistanceMiles != sorted[j].DistanceMiles {
			return sorted[i].DistanceMiles < sorted[j].DistanceMiles
		}
		return sorted[i].UserID < sorted[j].UserID
	})

	best := sorted[0]
	return &best
}
