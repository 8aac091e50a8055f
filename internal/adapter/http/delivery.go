package httpadapter

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

type adRequest struct {
	UserID    string `json:"user_id"`
	Placement string `json:"placement"`
	Limit     int    `json:"limit"`
}

type deliveredAd struct {
	AdID          int64   `json:"ad_id"`
	Title         string  `json:"title"`
	Body          string  `json:"body,omitempty"`
	MediaURL      string  `json:"media_url,omitempty"`
	LandingURL    string  `json:"landing_url"`
	DeliveryScore float64 `json:"delivery_score"`
}

// handleAdRequest runs the delivery pipeline for a user and placement and
// returns the winning ads with their delivery scores. An unknown user is a
// 404, bad input a 400; internal degradation shows up as a shorter or
// empty list, never a 5xx to the feed.
func (h *Handler) handleAdRequest(w http.ResponseWriter, r *http.Request) {
	var req adRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if req.Limit <= 0 {
		req.Limit = 1
	}

	ads, err := h.delivery.GetAdsForUser(r.Context(), req.UserID, req.Placement, req.Limit)
	if err != nil {
		h.writeError(w, err)
		return
	}

	resp := make([]deliveredAd, 0, len(ads))
	for _, d := range ads {
		resp = append(resp, deliveredAd{
			AdID:          d.Ad.ID,
			Title:         d.Ad.Creative.Title,
			Body:          d.Ad.Creative.Body,
			MediaURL:      d.Ad.Creative.MediaURL,
			LandingURL:    d.Ad.Creative.LandingURL,
			DeliveryScore: d.DeliveryScore,
		})
	}
	w.Header().Set("Content-Type", "application/json")
	if err = json.NewEncoder(w).Encode(resp); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}
