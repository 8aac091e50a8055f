package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/engine"
	"orbit-ads/internal/core/port"
)

// CandidateSource is the snapshot view the delivery pipeline reads active
// ads from. Implemented by cache.AdCache; ok is false until the cache has
// loaded at least once.
type CandidateSource interface {
	Snapshot() (candidates []port.AdCandidate, ok bool)
}

// DeliveryUseCase implements port.DeliveryUseCase: the targeting → scoring
// → frequency cap → auction pipeline, ending with a delivered event per
// winner.
type DeliveryUseCase struct {
	ads          port.AdRepository
	interactions port.InteractionRepository
	profiles     port.UserProfileStore
	cache        CandidateSource
	weights      engine.ScoreWeights
	timeBudget   time.Duration
	logger       *slog.Logger
}

// NewDeliveryUseCase wires the delivery pipeline. cache may be nil, in
// which case every request reads candidates from the repository directly.
func NewDeliveryUseCase(
	ads port.AdRepository,
	interactions port.InteractionRepository,
	profiles port.UserProfileStore,
	cache CandidateSource,
	weights engine.ScoreWeights,
	timeBudget time.Duration,
	logger *slog.Logger,
) *DeliveryUseCase {
	return &DeliveryUseCase{
		ads:          ads,
		interactions: interactions,
		profiles:     profiles,
		cache:        cache,
		weights:      weights,
		timeBudget:   timeBudget,
		logger:       logger,
	}
}

// GetAdsForUser returns up to limit scored ads for the user and placement.
// Internal failures degrade to fewer or no ads rather than an error; an
// unknown user or invalid limit is reported to the caller.
func (u *DeliveryUseCase) GetAdsForUser(ctx context.Context, userID, placement string, limit int) ([]port.DeliveredAd, error) {
	if limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", port.ErrValidation)
	}
	if u.timeBudget > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeBudget)
		defer cancel()
	}

	user, err := u.profiles.GetContext(ctx, userID)
	if err != nil {
		if errors.Is(err, port.ErrNotFound) {
			return nil, err
		}
		u.logger.Error("profile lookup failed, delivering nothing",
			slog.String("user_id", userID), slog.Any("error", err))
		return []port.DeliveredAd{}, nil
	}

	candidates, ok := u.cacheSnapshot()
	if !ok {
		if candidates, err = u.ads.ListActiveCandidates(ctx); err != nil {
			u.logger.Error("candidate load failed, delivering nothing", slog.Any("error", err))
			return []port.DeliveredAd{}, nil
		}
	}

	now := time.Now().UTC()
	eligible := make([]port.AdCandidate, 0, len(candidates))
	for _, cand := range candidates {
		// The cache may be up to a refresh interval stale; re-check the
		// cheap liveness constraints here.
		if !cand.Ad.Deliverable(now) {
			continue
		}
		if !engine.Matches(cand, *user, placement) {
			continue
		}
		cand.Score = u.weights.Score(cand, *user, now)
		eligible = append(eligible, cand)
	}

	winners := make([]port.DeliveredAd, 0, limit)
	for _, cand := range engine.SelectTopK(eligible, -1) {
		if len(winners) == limit {
			break
		}
		if ctx.Err() != nil {
			u.logger.Warn("delivery deadline hit, returning partial result",
				slog.String("user_id", userID), slog.Int("delivered", len(winners)))
			break
		}
		allowed, err := u.underFrequencyCap(ctx, cand, userID, now)
		if err != nil {
			u.logger.Error("frequency cap check failed, skipping ad",
				slog.Int64("ad_id", cand.Ad.ID), slog.Any("error", err))
			continue
		}
		if !allowed {
			continue
		}
		if err = u.recordDelivered(ctx, cand, *user, placement); err != nil {
			// An unrecorded delivery would let the user slip past the cap,
			// so the ad is dropped from this response.
			u.logger.Error("delivered event not recorded, skipping ad",
				slog.Int64("ad_id", cand.Ad.ID), slog.Any("error", err))
			continue
		}
		winners = append(winners, port.DeliveredAd{Ad: cand.Ad, DeliveryScore: cand.Score})
	}
	return winners, nil
}

func (u *DeliveryUseCase) cacheSnapshot() ([]port.AdCandidate, bool) {
	if u.cache == nil {
		return nil, false
	}
	return u.cache.Snapshot()
}

// underFrequencyCap checks the delivered-event count for (ad, user) within
// the ad set's window against durable storage.
func (u *DeliveryUseCase) underFrequencyCap(ctx context.Context, cand port.AdCandidate, userID string, now time.Time) (bool, error) {
	fc := cand.AdSet.FrequencyCap
	if !fc.Capped() {
		return true, nil
	}
	since := now.Add(-fc.TimeWindow.Lookback())
	count, err := u.interactions.CountDelivered(ctx, cand.Ad.ID, userID, since)
	if err != nil {
		return false, err
	}
	return count < int64(fc.Impressions), nil
}

func (u *DeliveryUseCase) recordDelivered(ctx context.Context, cand port.AdCandidate, user domain.UserContext, placement string) error {
	in, err := domain.NewInteraction(
		domain.InteractionDelivered,
		cand.Ad.ID, cand.AdSet.ID, cand.Campaign.ID,
		user.UserID, 0,
		domain.InteractionContext{
			Country:   user.Country,
			Platform:  user.Platform,
			Placement: placement,
		},
	)
	if err != nil {
		return err
	}
	return u.interactions.Record(ctx, in)
}
