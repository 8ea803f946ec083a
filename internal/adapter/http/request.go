package httpadapter

import (
	"encoding/json"
	"net/http"

	"movo-ads/internal/core/domain"
)

// matchRequest is the wire form of a matching request. Pointers tell a
// missing coordinate apart from zero.
type matchRequest struct {
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	ServiceType   string   `json:"service_type"`
	IsStartOfRide bool     `json:"is_start_of_ride"`
}

// matchResponse carries either the selected campaign or, with a nil
// AudioURLs, the no-match message.
type matchResponse struct {
	CampaignID string              `json:"campaign_id,omitempty"`
	AudioURLs  []string            `json:"audio_urls"`
	Title      string              `json:"titulo,omitempty"`
	Client     string              `json:"cliente,omitempty"`
	Type       domain.CampaignType `json:"tipo_campanha,omitempty"`
	Message    string              `json:"message,omitempty"`
}

// handleAdMatch selects the campaign for the calling driver. Missing
// coordinates or service type produce HTTP 400. An empty match is a
// successful response with null audio_urls and a message. Internal errors
// result in HTTP 500.
func (h *Handler) handleAdMatch(w http.ResponseWriter, r *http.Request) {
	var body matchRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid JSON", http.StatusBadRequest)
		return
	}
	if body.Latitude == nil || body.Longitude == nil || body.ServiceType == "" {
		http.Error(w, "latitude, longitude and service_type are required", http.StatusBadRequest)
		return
	}

	resp, err := h.ads.RequestAd(r.Context(), domain.MatchRequest{
		DriverID:      userID(r.Context()),
		Location:      &domain.Location{Lat: *body.Latitude, Lng: *body.Longitude},
		ServiceType:   body.ServiceType,
		IsStartOfRide: body.IsStartOfRide,
	})
	if err != nil {
		h.writeError(w, r, "match", err)
		return
	}
	if resp == nil {
		h.writeJSON(w, http.StatusOK, matchResponse{Message: domain.NoCampaignMessage})
		return
	}
	h.writeJSON(w, http.StatusOK, matchResponse{
		CampaignID: resp.CampaignID,
		AudioURLs:  resp.AudioURLs,
		Title:      resp.Title,
		Client:     resp.Client,
		Type:       resp.Type,
	})
}
