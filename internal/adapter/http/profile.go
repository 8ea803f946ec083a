package httpadapter

import (
	"encoding/json"
	"net/http"

	"movo-ads/internal/core/domain"
)

// handleGetProfile returns the calling driver's profile, or 404 when none
// was saved yet.
func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.profiles.GetProfile(r.Context(), userID(r.Context()))
	if err != nil {
		h.writeError(w, r, "get profile", err)
		return
	}
	if p == nil {
		http.NotFound(w, r)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// handlePutProfile creates or replaces the calling driver's profile. The
// driver_id in the body, if any, is ignored.
func (h *Handler) handlePutProfile(w http.ResponseWriter, r *http.Request) {
	var p domain.DriverProfile
	if err := json.NewDecoder(r.Body).Decode(&p); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	p.DriverID = userID(r.Context())
	if err := h.profiles.SaveProfile(r.Context(), p); err != nil {
		h.writeError(w, r, "save profile", err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}
