package db

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Seed inserts demo data: a handful of campaigns, each with ad sets and
// ads, a pool of users and a spread of historical interactions.
func Seed(ctx context.Context, db *pgxpool.Pool) error {
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	countries := []string{"US", "DE", "BR"}
	platforms := []string{"web", "ios", "android"}
	interests := []string{"music", "tech", "sports", "travel", "gaming"}

	for i := 1; i <= 100; i++ {
		userID := fmt.Sprintf("user-%d", i)
		birth := time.Now().AddDate(-18-r.Intn(40), 0, -r.Intn(365))
		gender := []string{"male", "female"}[r.Intn(2)]
		userInterests := []string{interests[r.Intn(len(interests))], interests[r.Intn(len(interests))]}
		_, err := db.Exec(ctx, `INSERT INTO users (id, birth_date, gender, country, platform, interests)
VALUES ($1,$2,$3,$4,$5,$6) ON CONFLICT DO NOTHING`,
			userID, birth, gender, countries[r.Intn(len(countries))], platforms[r.Intn(len(platforms))], userInterests)
		if err != nil {
			return err
		}
	}

	for i := 1; i <= 5; i++ {
		start := time.Now().AddDate(0, 0, -1)
		end := time.Now().AddDate(0, 1, 0)
		_, err := db.Exec(ctx, `INSERT INTO campaigns
    (id, advertiser_id, name, objective, budget_type, budget_amount, start_date, end_date,
     total_cost, payment_status, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,'paid','active') ON CONFLICT DO NOTHING`,
			i, i, fmt.Sprintf("Campaign %d", i), "awareness", "lifetime", 5000.0, start, end, 5000.0)
		if err != nil {
			return err
		}

		targeting := map[string]any{
			"demographics": map[string]any{
				"age_min": 18,
				"age_max": 54,
				"genders": []string{},
			},
			"locations": countries,
			"interests": []string{interests[r.Intn(len(interests))], interests[r.Intn(len(interests))]},
			"behaviors": []string{},
		}
		tgtJSON, _ := json.Marshal(targeting)
		_, err = db.Exec(ctx, `INSERT INTO ad_sets
    (id, campaign_id, name, targeting, platforms, freq_cap_impressions, freq_cap_window, bid_amount)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8) ON CONFLICT DO NOTHING`,
			i, i, fmt.Sprintf("Ad set %d", i), tgtJSON, platforms, 5, "day", 1.0+r.Float64()*5)
		if err != nil {
			return err
		}

		for j := 1; j <= 10; j++ {
			adID := (i-1)*10 + j
			_, err = db.Exec(ctx, `INSERT INTO ads
    (id, ad_set_id, advertiser_id, title, body, media_url, landing_url,
     budget_type, budget_amount, start_date, end_date, status)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,'active') ON CONFLICT DO NOTHING`,
				adID, i, i,
				fmt.Sprintf("Ad %d for campaign %d", j, i),
				"Demo creative body",
				fmt.Sprintf("https://example.com/media/%d.jpg", adID),
				fmt.Sprintf("https://example.com/landing/%d", adID),
				"lifetime", 1000.0, start, end)
			if err != nil {
				return err
			}
		}
	}

	// historical interactions for scoring and stats
	for i := 0; i < 1000; i++ {
		adID := int64(r.Intn(50) + 1)
		adSetID := (adID-1)/10 + 1
		userID := fmt.Sprintf("user-%d", r.Intn(100)+1)
		kind := []string{"impression", "impression", "impression", "click", "conversion"}[r.Intn(5)]
		spend := 0.0
		if kind == "click" {
			spend = 0.5
		}
		_, err := db.Exec(ctx, `INSERT INTO interactions
    (id, type, ad_id, ad_set_id, campaign_id, user_id, spend, ip, user_agent, country, platform, placement, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13) ON CONFLICT DO NOTHING`,
			uuid.NewString(), kind, adID, adSetID, adSetID, userID, spend,
			fmt.Sprintf("203.0.113.%d", r.Intn(255)), "Mozilla/5.0 (seed data agent)",
			countries[r.Intn(len(countries))], platforms[r.Intn(len(platforms))], "feed",
			time.Now().Add(-time.Duration(r.Intn(72))*time.Hour))
		if err != nil {
			return err
		}
	}
	return nil
}
