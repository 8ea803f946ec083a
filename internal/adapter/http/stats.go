package httpadapter

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/port"
)

// reportWindow is the period reported when the query names no bounds.
const reportWindow = 24 * time.Hour

// period is the reporting window the operator routes share.
type period struct {
	from, to   time.Time
	campaignID *string
}

// parsePeriod reads the optional `from` and `to` (RFC3339) and
// `campaign_id` query parameters. A missing bound falls back to the window
// of reportWindow that ends at now.
func parsePeriod(q url.Values, now time.Time) (period, error) {
	p := period{from: now.Add(-reportWindow), to: now}
	bounds := []struct {
		name string
		dst  *time.Time
	}{{"from", &p.from}, {"to", &p.to}}
	for _, b := range bounds {
		raw := q.Get(b.name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return p, fmt.Errorf("%w: '%s' is not an RFC3339 timestamp", domain.ErrInvalidRequest, b.name)
		}
		*b.dst = t
	}
	if cid := q.Get("campaign_id"); cid != "" {
		p.campaignID = &cid
	}
	return p, nil
}

// handleStatsOverview reports, for a period and optionally one campaign,
// how many clips were played, by how many distinct drivers and across how
// many campaigns.
func (h *Handler) handleStatsOverview(w http.ResponseWriter, r *http.Request) {
	p, err := parsePeriod(r.URL.Query(), time.Now())
	if err != nil {
		h.writeError(w, r, "stats", err)
		return
	}
	stats, err := h.ads.GetStats(r.Context(), port.StatsReq{From: p.from, To: p.to, CampaignID: p.campaignID})
	if err != nil {
		h.writeError(w, r, "stats", err)
		return
	}
	h.writeJSON(w, http.StatusOK, stats)
}

// handleListPlays lists individual plays of the period, newest first, with
// the campaign title. `limit` caps the rows.
func (h *Handler) handleListPlays(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	p, err := parsePeriod(q, time.Now())
	if err != nil {
		h.writeError(w, r, "list plays", err)
		return
	}
	req := port.PlaysReq{From: p.from, To: p.to, CampaignID: p.campaignID}
	if raw := q.Get("limit"); raw != "" {
		if req.Limit, err = strconv.Atoi(raw); err != nil || req.Limit <= 0 {
			http.Error(w, "invalid 'limit'", http.StatusBadRequest)
			return
		}
	}

	plays, err := h.ads.ListPlays(r.Context(), req)
	if err != nil {
		h.writeError(w, r, "list plays", err)
		return
	}
	if plays == nil {
		plays = []port.PlayRecord{}
	}
	h.writeJSON(w, http.StatusOK, map[string]any{"plays": plays})
}
