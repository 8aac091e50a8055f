package domain

import (
	"fmt"
	"time"
)

// Demographics narrows an audience by age and gender. Zero age bounds mean
// "no age constraint"; an empty gender list means "any gender".
type Demographics struct {
	AgeMin  int      `json:"age_min"`
	AgeMax  int      `json:"age_max"`
	Genders []string `json:"genders"`
}

// Targeting describes the audience an ad set wants to reach. Empty lists
// impose no constraint. Persisted as a JSONB column.
type Targeting struct {
	Demographics Demographics `json:"demographics"`
	Locations    []string     `json:"locations"` // country codes
	Interests    []string     `json:"interests"`
	Behaviors    []string     `json:"behaviors"`
}

// Validate rejects inverted or negative age bounds.
func (t Targeting) Validate() error {
	d := t.Demographics
	if d.AgeMin < 0 || d.AgeMax < 0 {
		return fmt.Errorf("age bounds must be non-negative")
	}
	if d.AgeMin > 0 && d.AgeMax > 0 && d.AgeMin > d.AgeMax {
		return fmt.Errorf("age_min %d greater than age_max %d", d.AgeMin, d.AgeMax)
	}
	return nil
}

// Placement lists the platforms an ad set's ads may be delivered on.
type Placement struct {
	Platforms []string `json:"platforms"`
}

// TimeWindow is the rolling window a frequency cap counts impressions over.
type TimeWindow string

const (
	WindowHour TimeWindow = "hour"
	WindowDay  TimeWindow = "day"
	WindowWeek TimeWindow = "week"
)

// Lookback maps the window to its fixed lookback duration ending now.
func (w TimeWindow) Lookback() time.Duration {
	switch w {
	case WindowHour:
		return time.Hour
	case WindowWeek:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// FrequencyCap limits how many times one user may be shown ads from this
// ad set within the rolling window.
type FrequencyCap struct {
	Impressions int        `json:"impressions"`
	TimeWindow  TimeWindow `json:"time_window"`
}

// Capped reports whether the cap is configured at all.
func (c FrequencyCap) Capped() bool {
	return c.Impressions > 0
}

// AdSet groups ads under a campaign and carries the targeting, placement,
// frequency cap and bid its ads inherit.
type AdSet struct {
	ID           int64
	CampaignID   int64
	Name         string
	Targeting    Targeting
	Placement    Placement
	FrequencyCap FrequencyCap
	BidAmount    float64
	Performance  Performance
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewAdSet validates and constructs an AdSet.
func NewAdSet(campaignID int64, name string, targeting Targeting, placement Placement, cap FrequencyCap, bid float64) (AdSet, error) {
	if campaignID <= 0 {
		return AdSet{}, fmt.Errorf("campaign id must be positive")
	}
	if name == "" {
		return AdSet{}, fmt.Errorf("ad set name required")
	}
	if err := targeting.Validate(); err != nil {
		return AdSet{}, err
	}
	if bid < 0 {
		return AdSet{}, fmt.Errorf("bid amount must be non-negative")
	}
	if cap.Capped() {
		switch cap.TimeWindow {
		case WindowHour, WindowDay, WindowWeek:
		default:
			return AdSet{}, fmt.Errorf("unknown frequency cap window %q", cap.TimeWindow)
		}
	}
	now := time.Now().UTC()
	return AdSet{
		CampaignID:   campaignID,
		Name:         name,
		Targeting:    targeting,
		Placement:    placement,
		FrequencyCap: cap,
		BidAmount:    bid,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}
