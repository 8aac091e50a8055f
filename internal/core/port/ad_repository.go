package port

import (
	"context"

	"orbit-ads/internal/core/domain"
)

// AdCandidate bundles an ad with the ad set and campaign it inherits
// targeting, frequency caps and bids from. Score is filled in by the
// relevance scorer during delivery.
type AdCandidate struct {
	Ad       domain.Ad
	AdSet    domain.AdSet
	Campaign domain.Campaign
	Score    float64
}

// AdRepository is the outbound port for ad, ad set and campaign state.
// Implementations must be concurrency-safe.
type AdRepository interface {
	// ListActiveCandidates returns all ads eligible for delivery right now:
	// active status, inside their schedule, with budget remaining, joined
	// with their ad set and campaign.
	ListActiveCandidates(ctx context.Context) ([]AdCandidate, error)

	// GetCandidate returns a single ad with its ad set and campaign.
	// Returns ErrNotFound when the ad does not exist.
	GetCandidate(ctx context.Context, adID int64) (*AdCandidate, error)

	// GetAd returns an ad by id. Returns ErrNotFound when it does not exist.
	GetAd(ctx context.Context, adID int64) (*domain.Ad, error)

	// UpdateAdStatus moves an ad from one status to another. The update is
	// conditional on the current status so concurrent transitions cannot
	// clobber each other; a mismatch returns ErrInvalidState.
	UpdateAdStatus(ctx context.Context, adID int64, from, to domain.AdStatus) error
}
