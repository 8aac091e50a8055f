package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

// AdRepository implements port.AdRepository using pgxpool for PostgreSQL.
type AdRepository struct {
	pool *pgxpool.Pool
}

// NewAdRepository returns a new repository instance.
func NewAdRepository(pool *pgxpool.Pool) *AdRepository {
	return &AdRepository{pool: pool}
}

const candidateColumns = `
        a.id, a.ad_set_id, a.advertiser_id,
        a.title, a.body, a.media_url, a.landing_url,
        a.budget_type, a.budget_amount, a.budget_spent,
        a.start_date, a.end_date, a.status,
        a.impressions, a.clicks, a.conversions, a.spend,
        a.ctr, a.cpc, a.cpm, a.conversion_rate,
        a.created_at, a.updated_at,
        s.id, s.campaign_id, s.name, s.targeting, s.platforms,
        s.freq_cap_impressions, s.freq_cap_window, s.bid_amount,
        s.impressions, s.clicks, s.conversions, s.spend,
        s.created_at, s.updated_at,
        c.id, c.advertiser_id, c.name, c.objective,
        c.budget_type, c.budget_amount, c.budget_spent,
        c.start_date, c.end_date, c.total_cost, c.payment_status, c.status,
        c.impressions, c.clicks, c.conversions, c.spend,
        c.created_at, c.updated_at`

const candidateFrom = `
    FROM ads a
    JOIN ad_sets s ON a.ad_set_id = s.id
    JOIN campaigns c ON s.campaign_id = c.id`

// scanCandidate scans one joined row into an AdCandidate. The targeting
// JSONB column is decoded after the scan.
func scanCandidate(row pgx.CollectableRow) (port.AdCandidate, error) {
	var (
		cand         port.AdCandidate
		targetingRaw []byte
	)
	err := row.Scan(
		&cand.Ad.ID, &cand.Ad.AdSetID, &cand.Ad.AdvertiserID,
		&cand.Ad.Creative.Title, &cand.Ad.Creative.Body, &cand.Ad.Creative.MediaURL, &cand.Ad.Creative.LandingURL,
		&cand.Ad.Budget.Type, &cand.Ad.Budget.Amount, &cand.Ad.Budget.Spent,
		&cand.Ad.Schedule.StartDate, &cand.Ad.Schedule.EndDate, &cand.Ad.Status,
		&cand.Ad.Performance.Impressions, &cand.Ad.Performance.Clicks, &cand.Ad.Performance.Conversions, &cand.Ad.Performance.Spend,
		&cand.Ad.Performance.CTR, &cand.Ad.Performance.CPC, &cand.Ad.Performance.CPM, &cand.Ad.Performance.ConversionRate,
		&cand.Ad.CreatedAt, &cand.Ad.UpdatedAt,
		&cand.AdSet.ID, &cand.AdSet.CampaignID, &cand.AdSet.Name, &targetingRaw, &cand.AdSet.Placement.Platforms,
		&cand.AdSet.FrequencyCap.Impressions, &cand.AdSet.FrequencyCap.TimeWindow, &cand.AdSet.BidAmount,
		&cand.AdSet.Performance.Impressions, &cand.AdSet.Performance.Clicks, &cand.AdSet.Performance.Conversions, &cand.AdSet.Performance.Spend,
		&cand.AdSet.CreatedAt, &cand.AdSet.UpdatedAt,
		&cand.Campaign.ID, &cand.Campaign.AdvertiserID, &cand.Campaign.Name, &cand.Campaign.Objective,
		&cand.Campaign.Budget.Type, &cand.Campaign.Budget.Amount, &cand.Campaign.Budget.Spent,
		&cand.Campaign.Schedule.StartDate, &cand.Campaign.Schedule.EndDate,
		&cand.Campaign.Payment.TotalCost, &cand.Campaign.Payment.PaymentStatus, &cand.Campaign.Status,
		&cand.Campaign.Performance.Impressions, &cand.Campaign.Performance.Clicks, &cand.Campaign.Performance.Conversions, &cand.Campaign.Performance.Spend,
		&cand.Campaign.CreatedAt, &cand.Campaign.UpdatedAt,
	)
	if err != nil {
		return cand, err
	}
	if len(targetingRaw) > 0 {
		if err = json.Unmarshal(targetingRaw, &cand.AdSet.Targeting); err != nil {
			return cand, fmt.Errorf("decode targeting for ad set %d: %w", cand.AdSet.ID, err)
		}
	}
	return cand, nil
}

// ListActiveCandidates returns every ad currently eligible for delivery,
// joined with its ad set and campaign. Eligibility beyond this (targeting,
// frequency caps) is decided by the core engine.
func (r *AdRepository) ListActiveCandidates(ctx context.Context) ([]port.AdCandidate, error) {
	query := `SELECT` + candidateColumns + candidateFrom + `
    WHERE a.status = 'active'
      AND now() BETWEEN a.start_date AND a.end_date
      AND a.budget_spent < a.budget_amount`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanCandidate)
}

// GetCandidate returns one ad with its ad set and campaign regardless of
// status.
func (r *AdRepository) GetCandidate(ctx context.Context, adID int64) (*port.AdCandidate, error) {
	query := `SELECT` + candidateColumns + candidateFrom + `
    WHERE a.id = $1`

	rows, err := r.pool.Query(ctx, query, adID)
	if err != nil {
		return nil, err
	}
	cand, err := pgx.CollectOneRow(rows, scanCandidate)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: ad %d", port.ErrNotFound, adID)
	}
	if err != nil {
		return nil, err
	}
	return &cand, nil
}

// GetAd returns an ad by id.
func (r *AdRepository) GetAd(ctx context.Context, adID int64) (*domain.Ad, error) {
	var a domain.Ad
	err := r.pool.QueryRow(ctx, `
        SELECT id, ad_set_id, advertiser_id, title, body, media_url, landing_url,
               budget_type, budget_amount, budget_spent,
               start_date, end_date, status,
               impressions, clicks, conversions, spend, ctr, cpc, cpm, conversion_rate,
               created_at, updated_at
        FROM ads WHERE id = $1`, adID).
		Scan(
			&a.ID, &a.AdSetID, &a.AdvertiserID,
			&a.Creative.Title, &a.Creative.Body, &a.Creative.MediaURL, &a.Creative.LandingURL,
			&a.Budget.Type, &a.Budget.Amount, &a.Budget.Spent,
			&a.Schedule.StartDate, &a.Schedule.EndDate, &a.Status,
			&a.Performance.Impressions, &a.Performance.Clicks, &a.Performance.Conversions, &a.Performance.Spend,
			&a.Performance.CTR, &a.Performance.CPC, &a.Performance.CPM, &a.Performance.ConversionRate,
			&a.CreatedAt, &a.UpdatedAt,
		)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: ad %d", port.ErrNotFound, adID)
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// UpdateAdStatus transitions an ad conditionally on its current status, so
// two concurrent transitions cannot both succeed.
func (r *AdRepository) UpdateAdStatus(ctx context.Context, adID int64, from, to domain.AdStatus) error {
	tag, err := r.pool.Exec(ctx, `
        UPDATE ads SET status = $3, updated_at = now()
        WHERE id = $1 AND status = $2`, adID, from, to)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		var exists bool
		if err = r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM ads WHERE id = $1)`, adID).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: ad %d", port.ErrNotFound, adID)
		}
		return fmt.Errorf("%w: ad %d is no longer %s", port.ErrInvalidState, adID, from)
	}
	return nil
}
