package configs

import (
	"time"

	"orbit-ads/internal/core/engine"
)

// Engine carries the delivery engine's tunables. Every fraud and scoring
// knob is configurable; the defaults are the production heuristics.
type Engine struct {
	// CacheRefresh is the active-ad cache refresh interval.
	CacheRefresh time.Duration `env:"CACHE_REFRESH" envDefault:"5m"`
	// DeliveryTimeout bounds a single delivery request. On expiry the
	// request returns the ads selected so far.
	DeliveryTimeout time.Duration `env:"DELIVERY_TIMEOUT" envDefault:"500ms"`
	// BatchConcurrency is how many batch items are written concurrently.
	BatchConcurrency int `env:"BATCH_CONCURRENCY" envDefault:"50"`

	// RetentionSweep is how often expired interaction records are purged.
	RetentionSweep time.Duration `env:"RETENTION_SWEEP" envDefault:"1h"`
	// InteractionTTL is the retention window for reported interactions.
	InteractionTTL time.Duration `env:"INTERACTION_TTL" envDefault:"2160h"` // 90 days
	// DeliveryLogTTL is the retention window for the delivery log.
	DeliveryLogTTL time.Duration `env:"DELIVERY_LOG_TTL" envDefault:"8760h"` // 1 year

	ScoreTargetingWeight  float64 `env:"SCORE_TARGETING_WEIGHT" envDefault:"0.40"`
	ScoreBidWeight        float64 `env:"SCORE_BID_WEIGHT" envDefault:"0.25"`
	ScoreContentWeight    float64 `env:"SCORE_CONTENT_WEIGHT" envDefault:"0.20"`
	ScoreFreshnessWeight  float64 `env:"SCORE_FRESHNESS_WEIGHT" envDefault:"0.10"`
	ScoreHistoricalWeight float64 `env:"SCORE_HISTORICAL_WEIGHT" envDefault:"0.05"`

	FraudClickFloodWeight  float64       `env:"FRAUD_CLICK_FLOOD_WEIGHT" envDefault:"0.4"`
	FraudClickFloodLimit   int64         `env:"FRAUD_CLICK_FLOOD_LIMIT" envDefault:"10"`
	FraudShortAgentWeight  float64       `env:"FRAUD_SHORT_AGENT_WEIGHT" envDefault:"0.2"`
	FraudMinAgentLength    int           `env:"FRAUD_MIN_AGENT_LENGTH" envDefault:"20"`
	FraudHighCTRWeight     float64       `env:"FRAUD_HIGH_CTR_WEIGHT" envDefault:"0.3"`
	FraudHighCTRFraction   float64       `env:"FRAUD_HIGH_CTR_FRACTION" envDefault:"0.5"`
	FraudRapidRepeatWeight float64       `env:"FRAUD_RAPID_REPEAT_WEIGHT" envDefault:"0.3"`
	FraudRapidRepeatWithin time.Duration `env:"FRAUD_RAPID_REPEAT_WITHIN" envDefault:"1s"`
	FraudMissingGeoWeight  float64       `env:"FRAUD_MISSING_GEO_WEIGHT" envDefault:"0.1"`
	FraudRejectThreshold   float64       `env:"FRAUD_REJECT_THRESHOLD" envDefault:"0.8"`
}

// ScoreWeights converts the configured weights into the engine's type.
func (c Engine) ScoreWeights() engine.ScoreWeights {
	return engine.ScoreWeights{
		TargetingMatch:   c.ScoreTargetingWeight,
		BidAmount:        c.ScoreBidWeight,
		ContentRelevance: c.ScoreContentWeight,
		Freshness:        c.ScoreFreshnessWeight,
		Historical:       c.ScoreHistoricalWeight,
	}
}

// FraudConfig converts the configured heuristics into the engine's type.
func (c Engine) FraudConfig() engine.FraudConfig {
	return engine.FraudConfig{
		ClickFloodWeight:  c.FraudClickFloodWeight,
		ClickFloodLimit:   c.FraudClickFloodLimit,
		ShortAgentWeight:  c.FraudShortAgentWeight,
		MinAgentLength:    c.FraudMinAgentLength,
		HighCTRWeight:     c.FraudHighCTRWeight,
		HighCTRFraction:   c.FraudHighCTRFraction,
		RapidRepeatWeight: c.FraudRapidRepeatWeight,
		RapidRepeatWithin: c.FraudRapidRepeatWithin,
		MissingGeoWeight:  c.FraudMissingGeoWeight,
		RejectThreshold:   c.FraudRejectThreshold,
	}
}
