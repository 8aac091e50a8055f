package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net"
	"net/http"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

type interactionMetrics struct {
	Impressions int64   `json:"impressions"`
	Clicks      int64   `json:"clicks"`
	Spend       float64 `json:"spend"`
}

type interactionContext struct {
	IP        string `json:"ip"`
	UserAgent string `json:"user_agent"`
	Country   string `json:"country"`
	Platform  string `json:"platform"`
	Placement string `json:"placement"`
}

type interactionRequest struct {
	AdID    int64              `json:"ad_id"`
	UserID  string             `json:"user_id"`
	Type    string             `json:"type"`
	Metrics interactionMetrics `json:"metrics"`
	Context interactionContext `json:"context"`
}

// toPort converts the wire request, filling IP and user-agent from the
// HTTP request when the payload omits them.
func (req interactionRequest) toPort(r *http.Request) port.InteractionRequest {
	ictx := domain.InteractionContext(req.Context)
	if ictx.IP == "" {
		if host, _, err := net.SplitHostPort(r.RemoteAddr); err == nil {
			ictx.IP = host
		} else {
			ictx.IP = r.RemoteAddr
		}
	}
	if ictx.UserAgent == "" {
		ictx.UserAgent = r.UserAgent()
	}
	return port.InteractionRequest{
		AdID:   req.AdID,
		UserID: req.UserID,
		Type:   domain.InteractionType(req.Type),
		Metrics: port.InteractionMetrics{
			Impressions: req.Metrics.Impressions,
			Clicks:      req.Metrics.Clicks,
			Spend:       req.Metrics.Spend,
		},
		Context: ictx,
	}
}

// handleRecordInteraction records one client-reported interaction. A fraud
// rejection is not an HTTP error: the response body carries
// {"accepted": false, "fraud_score": ...} so the rejection stays visible
// to the caller.
func (h *Handler) handleRecordInteraction(w http.ResponseWriter, r *http.Request) {
	var req interactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	res, err := h.interactions.RecordInteraction(r.Context(), req.toPort(r))
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(res); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type batchRequest struct {
	Updates []interactionRequest `json:"updates"`
}

// handleBatchInteractions records a batch of interactions with per-item
// failure isolation. Only an oversized batch fails as a whole.
func (h *Handler) handleBatchInteractions(w http.ResponseWriter, r *http.Request) {
	var req batchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	reqs := make([]port.InteractionRequest, 0, len(req.Updates))
	for _, u := range req.Updates {
		reqs = append(reqs, u.toPort(r))
	}

	res, err := h.interactions.BatchRecordInteraction(r.Context(), reqs)
	if err != nil {
		h.writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(res); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
