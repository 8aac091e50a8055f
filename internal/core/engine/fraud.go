package engine

import (
	"time"

	"orbit-ads/internal/core/port"
)

// FraudSignals are the request-history facts the detector scores against,
// fetched by the caller before scoring. Zero values contribute nothing, so
// an unavailable signal store degrades gracefully.
type FraudSignals struct {
	ClicksFromIPLastHour int64
	SinceLastSameAdIP    time.Duration
	SeenSameAdIP         bool
}

// RequestMeta describes the request that carried the interaction.
type RequestMeta struct {
	IP        string
	UserAgent string
	Country   string
}

// FraudConfig carries the heuristic weights and thresholds. Defaults match
// production behaviour; every knob is configurable.
type FraudConfig struct {
	ClickFloodWeight  float64 // per-IP click volume above ClickFloodLimit
	ClickFloodLimit   int64
	ShortAgentWeight  float64 // missing or short user-agent
	MinAgentLength    int
	HighCTRWeight     float64 // implied payload CTR above HighCTRFraction
	HighCTRFraction   float64
	RapidRepeatWeight float64 // same (ad, IP) again within RapidRepeatWithin
	RapidRepeatWithin time.Duration
	MissingGeoWeight  float64
	RejectThreshold   float64 // scores above this reject the update
}

// DefaultFraudConfig returns the production heuristics.
func DefaultFraudConfig() FraudConfig {
	return FraudConfig{
		ClickFloodWeight:  0.4,
		ClickFloodLimit:   10,
		ShortAgentWeight:  0.2,
		MinAgentLength:    20,
		HighCTRWeight:     0.3,
		HighCTRFraction:   0.5,
		RapidRepeatWeight: 0.3,
		RapidRepeatWithin: time.Second,
		MissingGeoWeight:  0.1,
		RejectThreshold:   0.8,
	}
}

// Score computes the additive heuristic fraud score in [0,1] for an
// interaction payload.
func (c FraudConfig) Score(metrics port.InteractionMetrics, meta RequestMeta, sig FraudSignals) float64 {
	var score float64

	if sig.ClicksFromIPLastHour > c.ClickFloodLimit {
		score += c.ClickFloodWeight
	}
	if len(meta.UserAgent) < c.MinAgentLength {
		score += c.ShortAgentWeight
	}
	if metrics.Impressions > 0 && float64(metrics.Clicks)/float64(metrics.Impressions) > c.HighCTRFraction {
		score += c.HighCTRWeight
	}
	if sig.SeenSameAdIP && sig.SinceLastSameAdIP < c.RapidRepeatWithin {
		score += c.RapidRepeatWeight
	}
	if meta.Country == "" {
		score += c.MissingGeoWeight
	}

	return clamp01(score)
}

// Reject reports whether score is past the rejection threshold.
func (c FraudConfig) Reject(score float64) bool {
	return score > c.RejectThreshold
}
