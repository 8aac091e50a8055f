package engine

import (
	"strings"
	"time"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

// contentBaseline is the placeholder content-relevance sub-score. Extension
// point for a real content model.
const contentBaseline = 0.5

// freshnessHorizon is how long an ad takes to decay from fully fresh to
// stale.
const freshnessHorizon = 7 * 24 * time.Hour

// ScoreWeights weight the five relevance sub-scores. Each sub-score is
// normalized to [0,1] before weighting and the final score is clamped to
// [0,1].
type ScoreWeights struct {
	TargetingMatch   float64
	BidAmount        float64
	ContentRelevance float64
	Freshness        float64
	Historical       float64
}

// DefaultScoreWeights returns the production weighting.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		TargetingMatch:   0.40,
		BidAmount:        0.25,
		ContentRelevance: 0.20,
		Freshness:        0.10,
		Historical:       0.05,
	}
}

// Score computes the delivery score for a candidate against a user at time
// now. The function is deterministic: identical inputs always produce the
// same score.
func (w ScoreWeights) Score(c port.AdCandidate, user domain.UserContext, now time.Time) float64 {
	score := w.TargetingMatch*targetingCloseness(c.AdSet.Targeting, user) +
		w.BidAmount*clamp01(c.AdSet.BidAmount/10) +
		w.ContentRelevance*contentBaseline +
		w.Freshness*freshness(c.Ad.CreatedAt, now) +
		w.Historical*clamp01(c.Ad.Performance.ClickRate()*20)
	return clamp01(score)
}

// targetingCloseness measures how well the user fits the targeting beyond
// the hard eligibility checks: distance of the user's age from the target
// age midpoint, and the fraction of target interests the user overlaps.
func targetingCloseness(tgt domain.Targeting, user domain.UserContext) float64 {
	return (ageCloseness(tgt.Demographics, user.Age) + interestOverlap(tgt.Interests, user.Interests)) / 2
}

func ageCloseness(d domain.Demographics, age int) float64 {
	if d.AgeMin <= 0 && d.AgeMax <= 0 {
		return 1
	}
	if age <= 0 {
		age = domain.AssumedAge
	}
	lo, hi := d.AgeMin, d.AgeMax
	if lo <= 0 {
		lo = hi
	}
	if hi <= 0 {
		hi = lo
	}
	mid := float64(lo+hi) / 2
	if mid <= 0 {
		return 1
	}
	dist := float64(age) - mid
	if dist < 0 {
		dist = -dist
	}
	return clamp01(1 - dist/mid)
}

func interestOverlap(targets, userInterests []string) float64 {
	if len(targets) == 0 {
		return 1
	}
	matched := 0
	for _, t := range targets {
		lt := strings.ToLower(t)
		for _, u := range userInterests {
			lu := strings.ToLower(u)
			if strings.Contains(lt, lu) || strings.Contains(lu, lt) {
				matched++
				break
			}
		}
	}
	return float64(matched) / float64(len(targets))
}

func freshness(createdAt, now time.Time) float64 {
	age := now.Sub(createdAt)
	if age <= 0 {
		return 1
	}
	return clamp01(1 - float64(age)/float64(freshnessHorizon))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
