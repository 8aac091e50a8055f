package domain

import (
	"testing"
	"time"
)

// TestCampaignTotalCost checks the cost formula for both budget types.
func TestCampaignTotalCost(t *testing.T) {
	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	cases := []struct {
		name   string
		budget Budget
		end    time.Time
		want   float64
	}{
		{
			name:   "lifetime is the amount",
			budget: Budget{Type: BudgetLifetime, Amount: 750},
			end:    start.AddDate(0, 0, 30),
			want:   750,
		},
		{
			name:   "daily multiplies by days",
			budget: Budget{Type: BudgetDaily, Amount: 100},
			end:    start.AddDate(0, 0, 5),
			want:   500,
		},
		{
			name:   "partial day rounds up",
			budget: Budget{Type: BudgetDaily, Amount: 100},
			end:    start.Add(4*24*time.Hour + time.Hour),
			want:   500,
		},
		{
			name:   "sub-day flight still costs one day",
			budget: Budget{Type: BudgetDaily, Amount: 40},
			end:    start.Add(6 * time.Hour),
			want:   40,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := CampaignTotalCost(tc.budget, Schedule{StartDate: start, EndDate: tc.end})
			if got != tc.want {
				t.Fatalf("total cost: got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestNewCampaignValidation(t *testing.T) {
	budget := Budget{Type: BudgetLifetime, Amount: 100}
	schedule := Schedule{
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 0, 7),
	}

	if _, err := NewCampaign(0, "c", budget, schedule); err == nil {
		t.Fatal("expected error for missing advertiser")
	}
	if _, err := NewCampaign(1, "", budget, schedule); err == nil {
		t.Fatal("expected error for missing name")
	}
	if _, err := NewCampaign(1, "c", Budget{Type: "weekly", Amount: 100}, schedule); err == nil {
		t.Fatal("expected error for unknown budget type")
	}
	if _, err := NewCampaign(1, "c", budget, Schedule{StartDate: schedule.EndDate, EndDate: schedule.StartDate}); err == nil {
		t.Fatal("expected error for inverted schedule")
	}

	c, err := NewCampaign(1, "c", budget, schedule)
	if err != nil {
		t.Fatalf("NewCampaign error: %v", err)
	}
	if c.Status != StatusDraft {
		t.Fatalf("new campaign status: got %s, want %s", c.Status, StatusDraft)
	}
	if c.Payment.TotalCost != 100 {
		t.Fatalf("total cost: got %v, want 100", c.Payment.TotalCost)
	}
	if c.Payment.PaymentStatus != "pending" {
		t.Fatalf("payment status: got %s, want pending", c.Payment.PaymentStatus)
	}
}
