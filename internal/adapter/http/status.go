package httpadapter

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"orbit-ads/internal/core/domain"
	"orbit-ads/internal/core/port"
)

type statusRequest struct {
	Status string `json:"status"`
	// Actor identity is supplied by the host layer, which has already
	// authenticated the caller.
	AdvertiserID int64 `json:"advertiser_id"`
	System       bool  `json:"system"`
}

// handleUpdateAdStatus transitions an ad's lifecycle state. Ownership
// violations map to 403, illegal transitions to 409.
func (h *Handler) handleUpdateAdStatus(w http.ResponseWriter, r *http.Request) {
	adID, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid ad id", http.StatusBadRequest)
		return
	}
	var req statusRequest
	if err = json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}

	actor := port.Actor{AdvertiserID: req.AdvertiserID, System: req.System}
	if err = h.interactions.UpdateAdStatus(r.Context(), adID, actor, domain.AdStatus(req.Status)); err != nil {
		h.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
