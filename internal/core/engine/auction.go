package engine

import (
	"sort"

	"orbit-ads/internal/core/port"
)

// SelectTopK ranks scored candidates and picks the winners for a slot:
// score descending, ties broken by most recently created ad, truncated to
// limit. A limit below zero returns the full ranking. This is a plain top-k
// selection, not a second-price auction; winners pay nothing here and
// spend is attributed through reported interactions.
func SelectTopK(candidates []port.AdCandidate, limit int) []port.AdCandidate {
	ranked := make([]port.AdCandidate, len(candidates))
	copy(ranked, candidates)

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Ad.CreatedAt.After(ranked[j].Ad.CreatedAt)
	})

	if limit >= 0 && limit < len(ranked) {
		ranked = ranked[:limit]
	}
	return ranked
}
