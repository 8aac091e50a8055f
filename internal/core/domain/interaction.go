package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// InteractionType classifies an interaction event.
type InteractionType string

const (
	// InteractionDelivered is written by the delivery pipeline itself when an
	// ad wins a slot. It feeds frequency capping and is never reportable by
	// clients.
	InteractionDelivered InteractionType = "delivered"

	InteractionImpression InteractionType = "impression"
	InteractionClick      InteractionType = "click"
	InteractionView       InteractionType = "view"
	InteractionConversion InteractionType = "conversion"
)

// Reportable reports whether clients may submit this interaction type.
func (t InteractionType) Reportable() bool {
	switch t {
	case InteractionImpression, InteractionClick, InteractionView, InteractionConversion:
		return true
	}
	return false
}

// InteractionContext is a snapshot of the request environment taken when the
// interaction happened.
type InteractionContext struct {
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	Country   string `json:"country"`
	Platform  string `json:"platform"`
	Placement string `json:"placement"`
}

// Interaction is an immutable, append-only event referencing an ad, its ad
// set and campaign, and the user involved. Records are created once and
// expire through time-based retention, never through mutation.
type Interaction struct {
	ID         string
	Type       InteractionType
	AdID       int64
	AdSetID    int64
	CampaignID int64
	UserID     string
	Spend      float64
	Context    InteractionContext
	FraudScore *float64
	CreatedAt  time.Time
}

// NewInteraction validates and constructs an Interaction with a fresh id.
func NewInteraction(t InteractionType, adID, adSetID, campaignID int64, userID string, spend float64, ictx InteractionContext) (Interaction, error) {
	if t != InteractionDelivered && !t.Reportable() {
		return Interaction{}, fmt.Errorf("unknown interaction type %q", t)
	}
	if adID <= 0 || adSetID <= 0 || campaignID <= 0 {
		return Interaction{}, fmt.Errorf("interaction requires ad, ad set and campaign ids")
	}
	if userID == "" {
		return Interaction{}, fmt.Errorf("interaction requires a user id")
	}
	if spend < 0 {
		return Interaction{}, fmt.Errorf("spend must be non-negative, got %v", spend)
	}
	return Interaction{
		ID:         uuid.NewString(),
		Type:       t,
		AdID:       adID,
		AdSetID:    adSetID,
		CampaignID: campaignID,
		UserID:     userID,
		Spend:      spend,
		Context:    ictx,
		CreatedAt:  time.Now().UTC(),
	}, nil
}
