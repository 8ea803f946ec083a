package httpadapter

import (
	"encoding/json"
	"net/http"
	"time"

	"movo-ads/internal/core/domain"
)

type playRequest struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	PlayedAt   time.Time `json:"played_at"`
}

// handlePlay appends one entry to the play log for the calling driver.
// Resending an entry with the same id is accepted and stored once.
func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var body playRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	err := h.ads.RegisterPlay(r.Context(), domain.PlayLogEntry{
		ID:         body.ID,
		CampaignID: body.CampaignID,
		DriverID:   userID(r.Context()),
		PlayedAt:   body.PlayedAt,
	})
	if err != nil {
		h.writeError(w, r, "register play", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) handlePlayCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.ads.CountPlays(r.Context(), userID(r.Context()))
	if err != nil {
		h.writeError(w, r, "count plays", err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]int64{"count": n})
}
