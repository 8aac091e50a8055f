package port

import (
	"context"
	"fmt"

	"orbit-ads/internal/core/domain"
)

// DeliveredAd pairs a winning ad with the delivery score it won on.
type DeliveredAd struct {
	Ad            domain.Ad
	DeliveryScore float64
}

// DeliveryUseCase is the read path of the engine: pick the ads a user
// should see in a placement.
type DeliveryUseCase interface {
	// GetAdsForUser returns up to limit ads for the user and placement,
	// each with a delivery score in [0,1]. A delivered event is recorded
	// per returned ad. Internal failures degrade to a shorter or empty
	// list; only an unknown user is reported as an error.
	GetAdsForUser(ctx context.Context, userID, placement string, limit int) ([]DeliveredAd, error)
}

// InteractionMetrics is the client-reported payload accompanying an
// interaction: counts claimed for the event and the spend to attribute.
type InteractionMetrics struct {
	Impressions int64
	Clicks      int64
	Spend       float64
}

// InteractionRequest is one client-reported interaction.
type InteractionRequest struct {
	AdID    int64
	UserID  string
	Type    domain.InteractionType
	Metrics InteractionMetrics
	Context domain.InteractionContext
}

// Validate checks the request shape. Violations wrap ErrValidation.
func (r InteractionRequest) Validate() error {
	if r.AdID <= 0 {
		return fmt.Errorf("%w: ad id must be positive", ErrValidation)
	}
	if r.UserID == "" {
		return fmt.Errorf("%w: user id required", ErrValidation)
	}
	if !r.Type.Reportable() {
		return fmt.Errorf("%w: interaction type %q not reportable", ErrValidation, r.Type)
	}
	if r.Metrics.Spend < 0 || r.Metrics.Impressions < 0 || r.Metrics.Clicks < 0 {
		return fmt.Errorf("%w: metrics must be non-negative", ErrValidation)
	}
	return nil
}

// InteractionResult reports whether an interaction was accepted and the
// fraud score computed for it. FraudScore is always populated so rejections
// stay user-visible.
type InteractionResult struct {
	Accepted   bool    `json:"accepted"`
	FraudScore float64 `json:"fraud_score"`
}

// BatchFailure identifies a single failed item in a batch.
type BatchFailure struct {
	Index int    `json:"index"`
	AdID  int64  `json:"ad_id"`
	Error string `json:"error"`
}

// BatchResult summarises a batch write: how many items landed and which
// failed. One bad item never fails the batch.
type BatchResult struct {
	Successful int            `json:"successful"`
	Failed     []BatchFailure `json:"failed"`
}

// Actor identifies who is performing a write against ad state. System
// actors (internal schedulers, review tooling) bypass ownership checks.
type Actor struct {
	AdvertiserID int64
	System       bool
}

// InteractionUseCase is the write path of the engine plus ad lifecycle
// management.
type InteractionUseCase interface {
	// RecordInteraction scores the request for fraud and, when accepted,
	// appends the interaction and updates aggregates atomically. A fraud
	// rejection is returned in the result, not as an error.
	RecordInteraction(ctx context.Context, req InteractionRequest) (InteractionResult, error)

	// BatchRecordInteraction processes up to MaxBatchSize requests with
	// per-item failure isolation.
	BatchRecordInteraction(ctx context.Context, reqs []InteractionRequest) (BatchResult, error)

	// UpdateAdStatus transitions an ad's lifecycle state on behalf of
	// actor. Non-owning, non-system actors get ErrForbidden; illegal
	// transitions get ErrInvalidState.
	UpdateAdStatus(ctx context.Context, adID int64, actor Actor, to domain.AdStatus) error

	// GetStats returns aggregated interaction counts for a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
}

// MaxBatchSize caps BatchRecordInteraction input length.
const MaxBatchSize = 1000
