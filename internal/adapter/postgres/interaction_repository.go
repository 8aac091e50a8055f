package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

// InteractionRepository implements port.InteractionRepository on PostgreSQL.
// The interaction log is append-only; aggregate counters on ads, ad sets
// and campaigns are moved by atomic in-place increments, never by
// read-modify-write, so concurrent writers cannot lose updates.
type InteractionRepository struct {
	pool *pgxpool.Pool
}

// NewInteractionRepository returns a new repository instance.
func NewInteractionRepository(pool *pgxpool.Pool) *InteractionRepository {
	return &InteractionRepository{pool: pool}
}

// Right-hand sides reference the pre-update column values, so every derived
// metric is recomputed from the post-increment counters inside the same
// statement. Lifetime spend is clamped at the budget amount and the ad
// completes when the budget is exhausted.
const updateAdCounters = `
    UPDATE ads SET
        impressions = impressions + $2,
        clicks      = clicks + $3,
        conversions = conversions + $4,
        spend       = spend + $5,
        budget_spent = LEAST(budget_spent + $5, budget_amount),
        ctr = CASE WHEN impressions + $2 > 0
              THEN ROUND((clicks + $3)::numeric / (impressions + $2) * 100, 2) ELSE 0 END,
        cpc = CASE WHEN clicks + $3 > 0
              THEN ROUND((spend + $5)::numeric / (clicks + $3), 2) ELSE 0 END,
        cpm = CASE WHEN impressions + $2 > 0
              THEN ROUND((spend + $5)::numeric / (impressions + $2) * 1000, 2) ELSE 0 END,
        conversion_rate = CASE WHEN clicks + $3 > 0
              THEN ROUND((conversions + $4)::numeric / (clicks + $3) * 100, 2) ELSE 0 END,
        status = CASE WHEN budget_type = 'lifetime' AND budget_spent + $5 >= budget_amount
              THEN 'completed' ELSE status END,
        updated_at = now()
    WHERE id = $1`

const updateAdSetCounters = `
    UPDATE ad_sets SET
        impressions = impressions + $2,
        clicks      = clicks + $3,
        conversions = conversions + $4,
        spend       = spend + $5,
        updated_at  = now()
    WHERE id = $1`

const updateCampaignCounters = `
    UPDATE campaigns SET
        impressions  = impressions + $2,
        clicks       = clicks + $3,
        conversions  = conversions + $4,
        spend        = spend + $5,
        budget_spent = LEAST(budget_spent + $5, budget_amount),
        updated_at   = now()
    WHERE id = $1`

// Record appends the interaction and propagates counters to the ad, its ad
// set and its campaign in a single transaction.
func (r *InteractionRepository) Record(ctx context.Context, in domain.Interaction) (err error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `
        INSERT INTO interactions
            (id, type, ad_id, ad_set_id, campaign_id, user_id, spend,
             ip, user_agent, country, platform, placement, fraud_score, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`,
		in.ID, in.Type, in.AdID, in.AdSetID, in.CampaignID, in.UserID, in.Spend,
		in.Context.IP, in.Context.UserAgent, in.Context.Country, in.Context.Platform,
		in.Context.Placement, in.FraudScore, in.CreatedAt)
	if err != nil {
		return err
	}

	// Delivered events feed frequency capping only; they never move the
	// performance counters.
	if !in.Type.Reportable() {
		return nil
	}

	var dImp, dClk, dCnv int64
	switch in.Type {
	case domain.InteractionImpression:
		dImp = 1
	case domain.InteractionClick:
		dClk = 1
	case domain.InteractionConversion:
		dCnv = 1
	}

	if _, err = tx.Exec(ctx, updateAdCounters, in.AdID, dImp, dClk, dCnv, in.Spend); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, updateAdSetCounters, in.AdSetID, dImp, dClk, dCnv, in.Spend); err != nil {
		return err
	}
	if _, err = tx.Exec(ctx, updateCampaignCounters, in.CampaignID, dImp, dClk, dCnv, in.Spend); err != nil {
		return err
	}
	return nil
}

// CountDelivered counts delivered events for (adID, userID) since the given
// time. This is the durable source the frequency cap is enforced against.
func (r *InteractionRepository) CountDelivered(ctx context.Context, adID int64, userID string, since time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `
        SELECT count(*) FROM interactions
        WHERE ad_id = $1 AND user_id = $2 AND type = 'delivered' AND created_at >= $3`,
		adID, userID, since).Scan(&count)
	return count, err
}

// Stats aggregates reported interactions over a period.
func (r *InteractionRepository) Stats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	args := []any{req.From, req.To}
	whereCampaign := ""
	if req.CampaignID != nil {
		whereCampaign = "AND campaign_id = $3"
		args = append(args, *req.CampaignID)
	}
	query := fmt.Sprintf(`
        SELECT
            count(*) FILTER (WHERE type = 'impression'),
            count(*) FILTER (WHERE type = 'click'),
            count(*) FILTER (WHERE type = 'conversion'),
            COALESCE(sum(spend), 0)
        FROM interactions
        WHERE type <> 'delivered' AND created_at >= $1 AND created_at <= $2 %s`, whereCampaign)

	var resp port.StatsResp
	err := r.pool.QueryRow(ctx, query, args...).
		Scan(&resp.Impressions, &resp.Clicks, &resp.Conversions, &resp.Spend)
	if err != nil {
		return nil, err
	}
	return &resp, nil
}

// PurgeBefore applies the retention policy: reported interactions older
// than raw and delivery log entries older than delivered are removed.
func (r *InteractionRepository) PurgeBefore(ctx context.Context, raw, delivered time.Time) (int64, error) {
	tagRaw, err := r.pool.Exec(ctx, `
        DELETE FROM interactions WHERE type <> 'delivered' AND created_at < $1`, raw)
	if err != nil {
		return 0, err
	}
	tagDelivered, err := r.pool.Exec(ctx, `
        DELETE FROM interactions WHERE type = 'delivered' AND created_at < $1`, delivered)
	if err != nil {
		return tagRaw.RowsAffected(), err
	}
	return tagRaw.RowsAffected() + tagDelivered.RowsAffected(), nil
}
