package port

import (
	"context"
	"time"

	"orbit-ads/internal/core/domain"
)

// StatsReq selects the period and optional campaign for a stats query.
type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *int64
}

// StatsResp aggregates interaction events over a period.
type StatsResp struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Conversions int64   `json:"conversions"`
	Spend       float64 `json:"spend"`
}

// InteractionRepository is the outbound port for the append-only interaction
// log and the aggregate counters derived from it.
type InteractionRepository interface {
	// Record appends the interaction and, for reportable types, atomically
	// propagates counters and derived metrics to the ad, its ad set and its
	// campaign in the same transaction. Delivered events are appended
	// without touching counters. Every recorded interaction is reflected in
	// the aggregates exactly once.
	Record(ctx context.Context, in domain.Interaction) error

	// CountDelivered counts delivered events for (adID, userID) created at
	// or after since. Frequency capping reads this from durable storage so
	// the cap holds across process restarts.
	CountDelivered(ctx context.Context, adID int64, userID string, since time.Time) (int64, error)

	// Stats aggregates interactions over a period, optionally scoped to one
	// campaign.
	Stats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// PurgeBefore deletes reportable interactions created before raw and
	// delivered events created before delivered, returning the number of
	// rows removed. Implements the time-based retention policy.
	PurgeBefore(ctx context.Context, raw, delivered time.Time) (int64, error)
}
