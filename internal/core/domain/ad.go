package domain

import (
	"fmt"
	"time"
)

// BudgetType distinguishes a per-day budget from a whole-flight budget.
type BudgetType string

const (
	BudgetDaily    BudgetType = "daily"
	BudgetLifetime BudgetType = "lifetime"
)

// Budget tracks the allocated amount and what has been spent against it.
// Amounts are currency units with two decimal places of precision.
// Invariant: Spent never exceeds Amount.
type Budget struct {
	Type   BudgetType
	Amount float64
	Spent  float64
}

// Validate checks budget fields at construction time.
func (b Budget) Validate() error {
	switch b.Type {
	case BudgetDaily, BudgetLifetime:
	default:
		return fmt.Errorf("unknown budget type %q", b.Type)
	}
	if b.Amount <= 0 {
		return fmt.Errorf("budget amount must be positive, got %v", b.Amount)
	}
	if b.Spent < 0 || b.Spent > b.Amount {
		return fmt.Errorf("spent %v outside [0, %v]", b.Spent, b.Amount)
	}
	return nil
}

// Schedule bounds the period during which an ad or campaign may run.
type Schedule struct {
	StartDate time.Time
	EndDate   time.Time
}

// Validate ensures the schedule spans a positive interval.
func (s Schedule) Validate() error {
	if s.StartDate.IsZero() || s.EndDate.IsZero() {
		return fmt.Errorf("schedule dates must be set")
	}
	if !s.EndDate.After(s.StartDate) {
		return fmt.Errorf("schedule end %v not after start %v", s.EndDate, s.StartDate)
	}
	return nil
}

// Contains reports whether t falls inside the schedule window.
func (s Schedule) Contains(t time.Time) bool {
	return !t.Before(s.StartDate) && !t.After(s.EndDate)
}

// Creative is the renderable payload of an ad.
type Creative struct {
	Title      string
	Body       string
	MediaURL   string
	LandingURL string
}

// Ad is a single deliverable advertisement. It belongs to an AdSet, which
// carries the targeting and frequency-cap rules the ad inherits.
type Ad struct {
	ID           int64
	AdSetID      int64
	AdvertiserID int64
	Creative     Creative
	Budget       Budget
	Schedule     Schedule
	Status       AdStatus
	Performance  Performance
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAd validates and constructs an Ad. Records are validated here, at
// construction, rather than at persistence time.
func NewAd(adSetID, advertiserID int64, creative Creative, budget Budget, schedule Schedule) (Ad, error) {
	if adSetID <= 0 {
		return Ad{}, fmt.Errorf("ad set id must be positive")
	}
	if advertiserID <= 0 {
		return Ad{}, fmt.Errorf("advertiser id must be positive")
	}
	if creative.Title == "" || creative.LandingURL == "" {
		return Ad{}, fmt.Errorf("creative requires a title and landing url")
	}
	if err := budget.Validate(); err != nil {
		return Ad{}, err
	}
	if err := schedule.Validate(); err != nil {
		return Ad{}, err
	}
	now := time.Now().UTC()
	return Ad{
		AdSetID:      adSetID,
		AdvertiserID: advertiserID,
		Creative:     creative,
		Budget:       budget,
		Schedule:     schedule,
		Status:       StatusDraft,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Deliverable reports whether the ad may participate in delivery at time t:
// active status, inside its schedule and with budget remaining.
func (a Ad) Deliverable(t time.Time) bool {
	return a.Status == StatusActive && a.Schedule.Contains(t) && a.Budget.Spent < a.Budget.Amount
}
