package domain

import (
	"fmt"
	"math"
	"time"
)

// Payment carries the cost computed for a campaign at creation or update
// time. TotalCost is derived from budget and schedule and is never allowed
// to silently diverge from them.
type Payment struct {
	TotalCost     float64
	PaymentStatus string // pending, paid, refunded
}

// Campaign owns ad sets and carries the top-level budget, schedule and
// rolled-up performance.
type Campaign struct {
	ID           int64
	AdvertiserID int64
	Name         string
	Objective    string
	Budget       Budget
	Schedule     Schedule
	Payment      Payment
	Status       AdStatus
	Performance  Performance
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// CampaignTotalCost computes the campaign cost from its budget and schedule.
// A lifetime budget costs its amount exactly; a daily budget costs the
// amount for every started day of the flight.
func CampaignTotalCost(budget Budget, schedule Schedule) float64 {
	if budget.Type == BudgetLifetime {
		return budget.Amount
	}
	days := math.Ceil(schedule.EndDate.Sub(schedule.StartDate).Hours() / 24)
	if days < 1 {
		days = 1
	}
	return Round2(budget.Amount * days)
}

// NewCampaign validates and constructs a Campaign, computing its total cost
// once from the budget and schedule.
func NewCampaign(advertiserID int64, name string, budget Budget, schedule Schedule) (Campaign, error) {
	if advertiserID <= 0 {
		return Campaign{}, fmt.Errorf("advertiser id must be positive")
	}
	if name == "" {
		return Campaign{}, fmt.Errorf("campaign name required")
	}
	if err := budget.Validate(); err != nil {
		return Campaign{}, err
	}
	if err := schedule.Validate(); err != nil {
		return Campaign{}, err
	}
	now := time.Now().UTC()
	return Campaign{
		AdvertiserID: advertiserID,
		Name:         name,
		Budget:       budget,
		Schedule:     schedule,
		Payment: Payment{
			TotalCost:     CampaignTotalCost(budget, schedule),
			PaymentStatus: "pending",
		},
		Status:    StatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}
