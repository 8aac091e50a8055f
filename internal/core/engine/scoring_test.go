package engine

import (
	"testing"
	"time"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

// TestScoreBoundsAndDeterminism checks scores stay in [0,1] and that the
// same inputs always produce the same score.
func TestScoreBoundsAndDeterminism(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	w := DefaultScoreWeights()

	c := port.AdCandidate{
		Ad: domain.Ad{
			CreatedAt:   now.Add(-48 * time.Hour),
			Performance: domain.Performance{Impressions: 1000, Clicks: 40},
		},
		AdSet: domain.AdSet{
			Targeting: domain.Targeting{
				Demographics: domain.Demographics{AgeMin: 20, AgeMax: 30},
				Interests:    []string{"music", "tech"},
			},
			BidAmount: 4,
		},
	}
	user := domain.UserContext{UserID: "u", Age: 25, Interests: []string{"music"}}

	first := w.Score(c, user, now)
	if first < 0 || first > 1 {
		t.Fatalf("score out of bounds: %v", first)
	}
	for i := 0; i < 10; i++ {
		if got := w.Score(c, user, now); got != first {
			t.Fatalf("score not deterministic: %v vs %v", got, first)
		}
	}
}

// TestScorePerfectCandidate drives every sub-score to 1 and expects the
// score to hit the sum of all weights except the content baseline.
func TestScorePerfectCandidate(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	w := DefaultScoreWeights()

	c := port.AdCandidate{
		Ad: domain.Ad{
			CreatedAt:   now,                                              // fully fresh
			Performance: domain.Performance{Impressions: 100, Clicks: 10}, // rate 0.1 saturates
		},
		AdSet: domain.AdSet{
			Targeting: domain.Targeting{
				Demographics: domain.Demographics{AgeMin: 25, AgeMax: 25},
				Interests:    []string{"music"},
			},
			BidAmount: 10,
		},
	}
	user := domain.UserContext{UserID: "u", Age: 25, Interests: []string{"music"}}

	// targeting 0.40 + bid 0.25 + content 0.20*0.5 + freshness 0.10 + history 0.05
	want := 0.40 + 0.25 + 0.10 + 0.10 + 0.05
	got := w.Score(c, user, now)
	if diff := got - want; diff > 1e-9 || diff < -1e-9 {
		t.Fatalf("score: got %v, want %v", got, want)
	}
}

// TestScoreFreshnessDecay checks a newer ad outscores an identical older
// one, and that the decay bottoms out after the horizon.
func TestScoreFreshnessDecay(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	w := DefaultScoreWeights()
	user := domain.UserContext{UserID: "u", Age: 25}

	at := func(created time.Time) float64 {
		return w.Score(port.AdCandidate{Ad: domain.Ad{CreatedAt: created}}, user, now)
	}

	fresh := at(now.Add(-time.Hour))
	old := at(now.Add(-5 * 24 * time.Hour))
	stale := at(now.Add(-30 * 24 * time.Hour))
	ancient := at(now.Add(-90 * 24 * time.Hour))

	if fresh <= old || old <= stale {
		t.Fatalf("freshness must decay: %v, %v, %v", fresh, old, stale)
	}
	if stale != ancient {
		t.Fatalf("decay bottoms out past the horizon: %v vs %v", stale, ancient)
	}
}

func TestAgeCloseness(t *testing.T) {
	d := domain.Demographics{AgeMin: 20, AgeMax: 30}

	if got := ageCloseness(d, 25); got != 1 {
		t.Fatalf("midpoint age: got %v, want 1", got)
	}
	if got := ageCloseness(d, 20); got >= 1 || got <= 0 {
		t.Fatalf("edge age must score between 0 and 1, got %v", got)
	}
	if got := ageCloseness(domain.Demographics{}, 60); got != 1 {
		t.Fatalf("no age bounds must score 1, got %v", got)
	}
}

func TestInterestOverlap(t *testing.T) {
	targets := []string{"music", "tech", "sports", "travel"}

	if got := interestOverlap(targets, []string{"music", "tech"}); got != 0.5 {
		t.Fatalf("overlap: got %v, want 0.5", got)
	}
	if got := interestOverlap(nil, []string{"music"}); got != 1 {
		t.Fatalf("no targets must score 1, got %v", got)
	}
	if got := interestOverlap(targets, nil); got != 0 {
		t.Fatalf("no user interests must score 0, got %v", got)
	}
}
