package domain

import "math"

// Performance holds raw interaction counters and the metrics derived from
// them. Derived metrics are always recomputable from the raw counters, so
// aggregates can be rebuilt by replaying the interaction log.
type Performance struct {
	Impressions    int64
	Clicks         int64
	Conversions    int64
	Spend          float64
	CTR            float64 // percent
	CPC            float64
	CPM            float64
	ConversionRate float64 // percent
}

// Round2 rounds v to two decimal places.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Recalc recomputes the derived metrics from the raw counters. The result
// depends only on (impressions, clicks, conversions, spend), never on the
// order the counters were accumulated in.
func (p *Performance) Recalc() {
	if p.Impressions > 0 {
		p.CTR = Round2(float64(p.Clicks) / float64(p.Impressions) * 100)
		p.CPM = Round2(p.Spend / float64(p.Impressions) * 1000)
	} else {
		p.CTR = 0
		p.CPM = 0
	}
	if p.Clicks > 0 {
		p.CPC = Round2(p.Spend / float64(p.Clicks))
		p.ConversionRate = Round2(float64(p.Conversions) / float64(p.Clicks) * 100)
	} else {
		p.CPC = 0
		p.ConversionRate = 0
	}
}

// ClickRate returns clicks/impressions as a fraction in [0,1], or 0 when no
// impressions were counted. Used by relevance scoring, which works on the
// fraction rather than the percent form stored in CTR.
func (p Performance) ClickRate() float64 {
	if p.Impressions <= 0 {
		return 0
	}
	return float64(p.Clicks) / float64(p.Impressions)
}
