package engine

import (
	"testing"
	"time"

	"orbit-ads/internal/core/port"
)

var cleanMeta = RequestMeta{
	IP:        "203.0.113.7",
	UserAgent: "Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101",
	Country:   "US",
}

// TestFraudScoreClean checks a normal-looking interaction scores zero.
func TestFraudScoreClean(t *testing.T) {
	cfg := DefaultFraudConfig()
	metrics := port.InteractionMetrics{Impressions: 100, Clicks: 3}

	if got := cfg.Score(metrics, cleanMeta, FraudSignals{}); got != 0 {
		t.Fatalf("clean interaction: got %v, want 0", got)
	}
}

// TestFraudScoreRules triggers each heuristic in isolation and checks its
// weight.
func TestFraudScoreRules(t *testing.T) {
	cfg := DefaultFraudConfig()
	metrics := port.InteractionMetrics{Impressions: 100, Clicks: 3}

	cases := []struct {
		name    string
		metrics port.InteractionMetrics
		meta    RequestMeta
		sig     FraudSignals
		want    float64
	}{
		{
			name:    "click flood over limit",
			metrics: metrics,
			meta:    cleanMeta,
			sig:     FraudSignals{ClicksFromIPLastHour: 11},
			want:    0.4,
		},
		{
			name:    "click volume at the limit is fine",
			metrics: metrics,
			meta:    cleanMeta,
			sig:     FraudSignals{ClicksFromIPLastHour: 10},
			want:    0,
		},
		{
			name:    "short user agent",
			metrics: metrics,
			meta:    RequestMeta{IP: cleanMeta.IP, UserAgent: "curl/8.0", Country: "US"},
			want:    0.2,
		},
		{
			name:    "implied ctr above half",
			metrics: port.InteractionMetrics{Impressions: 10, Clicks: 6},
			meta:    cleanMeta,
			want:    0.3,
		},
		{
			name:    "rapid repeat from same ad and ip",
			metrics: metrics,
			meta:    cleanMeta,
			sig:     FraudSignals{SeenSameAdIP: true, SinceLastSameAdIP: 300 * time.Millisecond},
			want:    0.3,
		},
		{
			name:    "slow repeat is fine",
			metrics: metrics,
			meta:    cleanMeta,
			sig:     FraudSignals{SeenSameAdIP: true, SinceLastSameAdIP: 5 * time.Second},
			want:    0,
		},
		{
			name:    "missing geo",
			metrics: metrics,
			meta:    RequestMeta{IP: cleanMeta.IP, UserAgent: cleanMeta.UserAgent},
			want:    0.1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := cfg.Score(tc.metrics, tc.meta, tc.sig)
			if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Fatalf("score: got %v, want %v", got, tc.want)
			}
		})
	}
}

// TestFraudScoreStacksAndClamps piles every heuristic on one interaction.
func TestFraudScoreStacksAndClamps(t *testing.T) {
	cfg := DefaultFraudConfig()

	got := cfg.Score(
		port.InteractionMetrics{Impressions: 10, Clicks: 9},
		RequestMeta{IP: "203.0.113.7", UserAgent: "x"},
		FraudSignals{
			ClicksFromIPLastHour: 100,
			SeenSameAdIP:         true,
			SinceLastSameAdIP:    10 * time.Millisecond,
		},
	)
	// 0.4 + 0.2 + 0.3 + 0.3 + 0.1 clamps to 1
	if got != 1 {
		t.Fatalf("stacked score: got %v, want 1", got)
	}
	if !cfg.Reject(got) {
		t.Fatal("score 1 must reject")
	}
}

func TestFraudReject(t *testing.T) {
	cfg := DefaultFraudConfig()
	if cfg.Reject(0.8) {
		t.Fatal("threshold itself must not reject")
	}
	if !cfg.Reject(0.81) {
		t.Fatal("score above threshold must reject")
	}
}

// TestFraudDegradedSignals ensures zero-value signals, the shape an
// unavailable store produces, add nothing to the score.
func TestFraudDegradedSignals(t *testing.T) {
	cfg := DefaultFraudConfig()
	got := cfg.Score(port.InteractionMetrics{Impressions: 50, Clicks: 1}, cleanMeta, FraudSignals{})
	if got != 0 {
		t.Fatalf("degraded signals must be neutral, got %v", got)
	}
}
