package matching

import (
	"github.com/wingmateapp/wingmate-backend/internal/domain"
)

// filterCandidates removes ineligible candidates from a raw geo result. A
// candidate survives only if it has a known experience level within one step
// of the requester's and was not partnered with the requester inside the
// recency window. Pure function: the levels and recency set are fetched by
// the caller in batched queries.
func filterCandidates(
	requesterID string,
	requesterLevel domain.ExperienceLevel,
	raw []domain.CandidateRaw,
	levels map[string]domain.ExperienceLevel,
	recentPartners map[string]struct{},
) []domain.Candidate {
	eligible := make([]domain.Candidate, 0, len(raw))
	for _, c := range raw {
		if c.UserID == requesterID {
			continue
		}
		if _, recent := recentPartners[c.UserID]; recent {
			continue
		}
		level, ok := levels[c.UserID]
		if !ok {
			// No profile yet: excluded rather than defaulted.
			continue
		}
		if !requesterLevel.CompatibleWith(level) {
			continue
		}
		eligible = append(eligible, domain.Candidate{
			UserID:          c.UserID,
			DistanceMiles:   c.DistanceMiles,
			ExperienceLevel: level,
		})
	}
	return eligible
}
