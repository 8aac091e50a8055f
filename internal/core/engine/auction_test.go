package engine

import (
	"testing"
	"time"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

func scored(id int64, score float64, created time.Time) port.AdCandidate {
	return port.AdCandidate{
		Ad:    domain.Ad{ID: id, CreatedAt: created},
		Score: score,
	}
}

// TestSelectTopK checks ranking order, truncation and that the input slice
// is left untouched.
func TestSelectTopK(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	in := []port.AdCandidate{
		scored(1, 0.3, now),
		scored(2, 0.9, now),
		scored(3, 0.6, now),
		scored(4, 0.8, now),
	}

	got := SelectTopK(in, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 winners, got %d", len(got))
	}
	if got[0].Ad.ID != 2 || got[1].Ad.ID != 4 {
		t.Fatalf("wrong winners: %d, %d", got[0].Ad.ID, got[1].Ad.ID)
	}
	if in[0].Ad.ID != 1 {
		t.Fatal("input slice must not be reordered")
	}
}

// TestSelectTopKTies ensures the newest ad wins an exact score tie.
func TestSelectTopKTies(t *testing.T) {
	now := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	in := []port.AdCandidate{
		scored(1, 0.5, now.Add(-48*time.Hour)),
		scored(2, 0.5, now.Add(-time.Hour)),
		scored(3, 0.5, now.Add(-24*time.Hour)),
	}

	got := SelectTopK(in, 3)
	if got[0].Ad.ID != 2 || got[1].Ad.ID != 3 || got[2].Ad.ID != 1 {
		t.Fatalf("tie order: got %d, %d, %d, want 2, 3, 1", got[0].Ad.ID, got[1].Ad.ID, got[2].Ad.ID)
	}
}

func TestSelectTopKLimits(t *testing.T) {
	now := time.Now()
	in := []port.AdCandidate{scored(1, 0.1, now), scored(2, 0.2, now)}

	if got := SelectTopK(in, 10); len(got) != 2 {
		t.Fatalf("limit above size returns everything, got %d", len(got))
	}
	if got := SelectTopK(in, -1); len(got) != 2 {
		t.Fatalf("negative limit returns the full ranking, got %d", len(got))
	}
	if got := SelectTopK(in, 0); len(got) != 0 {
		t.Fatalf("zero limit returns nothing, got %d", len(got))
	}
	if got := SelectTopK(nil, 5); len(got) != 0 {
		t.Fatalf("no candidates returns nothing, got %d", len(got))
	}
}
