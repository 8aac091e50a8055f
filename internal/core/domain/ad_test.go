package domain

import (
	"testing"
	"time"
)

// TestAdDeliverable checks every gate that keeps an ad out of delivery.
func TestAdDeliverable(t *testing.T) {
	now := time.Date(2026, 6, 15, 12, 0, 0, 0, time.UTC)
	base := Ad{
		Status: StatusActive,
		Budget: Budget{Type: BudgetLifetime, Amount: 100, Spent: 50},
		Schedule: Schedule{
			StartDate: now.AddDate(0, 0, -1),
			EndDate:   now.AddDate(0, 0, 1),
		},
	}
	if !base.Deliverable(now) {
		t.Fatal("active in-schedule ad with budget left must be deliverable")
	}

	paused := base
	paused.Status = StatusPaused
	if paused.Deliverable(now) {
		t.Fatal("paused ad must not be deliverable")
	}

	exhausted := base
	exhausted.Budget.Spent = exhausted.Budget.Amount
	if exhausted.Deliverable(now) {
		t.Fatal("exhausted budget must not be deliverable")
	}

	ended := base
	ended.Schedule.EndDate = now.Add(-time.Hour)
	if ended.Deliverable(now) {
		t.Fatal("ad past its schedule must not be deliverable")
	}

	future := base
	future.Schedule.StartDate = now.Add(time.Hour)
	if future.Deliverable(now) {
		t.Fatal("ad before its schedule must not be deliverable")
	}
}

func TestNewAdValidation(t *testing.T) {
	creative := Creative{Title: "t", LandingURL: "https://example.com"}
	budget := Budget{Type: BudgetDaily, Amount: 10}
	schedule := Schedule{StartDate: time.Now(), EndDate: time.Now().AddDate(0, 0, 1)}

	if _, err := NewAd(1, 1, Creative{}, budget, schedule); err == nil {
		t.Fatal("expected error for empty creative")
	}
	if _, err := NewAd(1, 1, creative, Budget{Type: BudgetDaily, Amount: -1}, schedule); err == nil {
		t.Fatal("expected error for negative budget")
	}
	if _, err := NewAd(1, 1, creative, Budget{Type: BudgetDaily, Amount: 10, Spent: 11}, schedule); err == nil {
		t.Fatal("expected error for spent above amount")
	}

	ad, err := NewAd(1, 2, creative, budget, schedule)
	if err != nil {
		t.Fatalf("NewAd error: %v", err)
	}
	if ad.Status != StatusDraft {
		t.Fatalf("new ad status: got %s, want %s", ad.Status, StatusDraft)
	}
}
