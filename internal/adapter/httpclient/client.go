// Package httpclient talks to the matching service on behalf of a ride
// session. It implements port.Matcher and port.PlayLogger.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"movo-ads/internal/core/domain"
)

// Client is a bearer-authenticated client of the /api/v1 routes.
type Client struct {
	baseURL string
	token   string
	http    *http.Client
}

// New returns a client for the service at baseURL. timeout bounds each
// request; contexts passed to the methods may shorten it.
func New(baseURL, token string, timeout time.Duration) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		http:    &http.Client{Timeout: timeout},
	}
}

type matchBody struct {
	Latitude      float64 `json:"latitude"`
	Longitude     float64 `json:"longitude"`
	ServiceType   string  `json:"service_type"`
	IsStartOfRide bool    `json:"is_start_of_ride"`
}

type matchResult struct {
	CampaignID string              `json:"campaign_id"`
	AudioURLs  []string            `json:"audio_urls"`
	Title      string              `json:"titulo"`
	Client     string              `json:"cliente"`
	Type       domain.CampaignType `json:"tipo_campanha"`
	Message    string              `json:"message"`
}

// Match asks the service for a campaign. It returns nil when the service
// reports that nothing matched.
func (c *Client) Match(ctx context.Context, req domain.MatchRequest) (*domain.Campaign, error) {
	if req.Location == nil {
		return nil, fmt.Errorf("%w: location is required", domain.ErrInvalidRequest)
	}
	var res matchResult
	err := c.do(ctx, http.MethodPost, "/api/v1/ad/match", matchBody{
		Latitude:      req.Location.Lat,
		Longitude:     req.Location.Lng,
		ServiceType:   req.ServiceType,
		IsStartOfRide: req.IsStartOfRide,
	}, &res)
	if err != nil {
		return nil, err
	}
	if len(res.AudioURLs) == 0 {
		return nil, nil
	}
	return &domain.Campaign{
		ID:        res.CampaignID,
		Title:     res.Title,
		Client:    res.Client,
		Type:      res.Type,
		AudioURLs: res.AudioURLs,
	}, nil
}

type playBody struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	PlayedAt   time.Time `json:"played_at"`
}

// LogPlay appends entry to the play log. The driver is taken from the
// token, so entry.DriverID is not sent.
func (c *Client) LogPlay(ctx context.Context, entry domain.PlayLogEntry) error {
	return c.do(ctx, http.MethodPost, "/api/v1/plays", playBody{
		ID:         entry.ID,
		CampaignID: entry.CampaignID,
		PlayedAt:   entry.PlayedAt,
	}, nil)
}

// CountPlays returns the driver's lifetime play count.
func (c *Client) CountPlays(ctx context.Context) (int64, error) {
	var res struct {
		Count int64 `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/api/v1/plays/count", nil, &res); err != nil {
		return 0, err
	}
	return res.Count, nil
}

// Profile returns the driver's stored profile, or nil when none exists.
func (c *Client) Profile(ctx context.Context) (*domain.DriverProfile, error) {
	var p domain.DriverProfile
	err := c.do(ctx, http.MethodGet, "/api/v1/drivers/me/profile", nil, &p)
	if errors.Is(err, errNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// SaveProfile stores the driver's profile.
func (c *Client) SaveProfile(ctx context.Context, p domain.DriverProfile) error {
	return c.do(ctx, http.MethodPut, "/api/v1/drivers/me/profile", p, nil)
}
