package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/engine"
	"orbit-ads/internal/core/port"
)

// InteractionUseCase implements port.InteractionUseCase: the fraud-gated
// write path for client-reported interactions, batch ingestion and ad
// lifecycle transitions.
type InteractionUseCase struct {
	ads          port.AdRepository
	interactions port.InteractionRepository
	signals      port.FraudSignalStore
	fraud        engine.FraudConfig
	subBatchSize int
	logger       *slog.Logger
}

// NewInteractionUseCase wires the write path. subBatchSize bounds how many
// batch items are processed concurrently.
func NewInteractionUseCase(
	ads port.AdRepository,
	interactions port.InteractionRepository,
	signals port.FraudSignalStore,
	fraud engine.FraudConfig,
	subBatchSize int,
	logger *slog.Logger,
) *InteractionUseCase {
	if subBatchSize <= 0 {
		subBatchSize = 50
	}
	return &InteractionUseCase{
		ads:          ads,
		interactions: interactions,
		signals:      signals,
		fraud:        fraud,
		subBatchSize: subBatchSize,
		logger:       logger,
	}
}

// RecordInteraction scores the request for fraud and, when accepted,
// appends the interaction and moves the aggregates atomically. A fraud
// rejection is a result, not an error: the caller always sees the score.
func (u *InteractionUseCase) RecordInteraction(ctx context.Context, req port.InteractionRequest) (port.InteractionResult, error) {
	if err := req.Validate(); err != nil {
		return port.InteractionResult{}, err
	}

	cand, err := u.ads.GetCandidate(ctx, req.AdID)
	if err != nil {
		return port.InteractionResult{}, err
	}

	score := u.fraud.Score(req.Metrics, engine.RequestMeta{
		IP:        req.Context.IP,
		UserAgent: req.Context.UserAgent,
		Country:   req.Context.Country,
	}, u.fraudSignals(ctx, req))

	// The signal store keeps counting regardless of whether this
	// interaction is accepted; rejected traffic is exactly what the next
	// score should know about.
	if err = u.signals.Observe(ctx, req.AdID, req.Context.IP, req.Type == domain.InteractionClick); err != nil {
		u.logger.Debug("fraud signal observe failed", slog.Any("error", err))
	}

	if u.fraud.Reject(score) {
		return port.InteractionResult{Accepted: false, FraudScore: score}, nil
	}

	in, err := domain.NewInteraction(req.Type, cand.Ad.ID, cand.AdSet.ID, cand.Campaign.ID,
		req.UserID, req.Metrics.Spend, req.Context)
	if err != nil {
		return port.InteractionResult{}, fmt.Errorf("%w: %v", port.ErrValidation, err)
	}
	in.FraudScore = &score

	if err = u.interactions.Record(ctx, in); err != nil {
		// Interaction writes affect advertiser billing; failures are
		// surfaced, never dropped.
		return port.InteractionResult{}, fmt.Errorf("%w: record interaction: %v", port.ErrPersistence, err)
	}
	return port.InteractionResult{Accepted: true, FraudScore: score}, nil
}

// fraudSignals collects request-history signals. Signal store failures
// degrade the affected signal to zero instead of blocking the write.
func (u *InteractionUseCase) fraudSignals(ctx context.Context, req port.InteractionRequest) engine.FraudSignals {
	var sig engine.FraudSignals
	clicks, err := u.signals.ClicksLastHour(ctx, req.Context.IP)
	if err != nil {
		u.logger.Debug("click volume signal unavailable", slog.Any("error", err))
	} else {
		sig.ClicksFromIPLastHour = clicks
	}
	since, seen, err := u.signals.SinceLastInteraction(ctx, req.AdID, req.Context.IP)
	if err != nil {
		u.logger.Debug("last-seen signal unavailable", slog.Any("error", err))
	} else {
		sig.SinceLastSameAdIP = since
		sig.SeenSameAdIP = seen
	}
	return sig
}

// BatchRecordInteraction processes up to port.MaxBatchSize requests in
// sub-batches of subBatchSize concurrent items. One failing item never
// fails the batch; fraud rejections surface as failed items.
func (u *InteractionUseCase) BatchRecordInteraction(ctx context.Context, reqs []port.InteractionRequest) (port.BatchResult, error) {
	if len(reqs) > port.MaxBatchSize {
		return port.BatchResult{}, fmt.Errorf("%w: batch of %d exceeds limit %d",
			port.ErrValidation, len(reqs), port.MaxBatchSize)
	}

	var (
		mu         sync.Mutex
		successful int
		failed     []port.BatchFailure
	)
	for start := 0; start < len(reqs); start += u.subBatchSize {
		end := min(start+u.subBatchSize, len(reqs))

		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				res, err := u.RecordInteraction(ctx, reqs[i])
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err != nil:
					failed = append(failed, port.BatchFailure{Index: i, AdID: reqs[i].AdID, Error: err.Error()})
				case !res.Accepted:
					rej := &port.FraudRejectedError{Score: res.FraudScore}
					failed = append(failed, port.BatchFailure{Index: i, AdID: reqs[i].AdID, Error: rej.Error()})
				default:
					successful++
				}
			}(i)
		}
		wg.Wait()
	}

	sort.Slice(failed, func(i, j int) bool { return failed[i].Index < failed[j].Index })
	return port.BatchResult{Successful: successful, Failed: failed}, nil
}

// UpdateAdStatus transitions an ad's lifecycle state on behalf of actor.
func (u *InteractionUseCase) UpdateAdStatus(ctx context.Context, adID int64, actor port.Actor, to domain.AdStatus) error {
	if !domain.ValidStatus(to) {
		return fmt.Errorf("%w: unknown status %q", port.ErrValidation, to)
	}
	ad, err := u.ads.GetAd(ctx, adID)
	if err != nil {
		return err
	}
	if !actor.System && actor.AdvertiserID != ad.AdvertiserID {
		return fmt.Errorf("%w: advertiser %d does not own ad %d", port.ErrForbidden, actor.AdvertiserID, adID)
	}
	if !domain.ValidStatusTransition(ad.Status, to) {
		return fmt.Errorf("%w: cannot move ad %d from %s to %s", port.ErrInvalidState, adID, ad.Status, to)
	}
	return u.ads.UpdateAdStatus(ctx, adID, ad.Status, to)
}

// GetStats returns aggregated interaction counts for a period.
func (u *InteractionUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	if !req.To.After(req.From) {
		return nil, fmt.Errorf("%w: period end must be after start", port.ErrValidation)
	}
	return u.interactions.Stats(ctx, req)
}
