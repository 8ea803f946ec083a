package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"movo-ads/internal/core/domain"
	"movo-ads/internal/core/matching"
	"movo-ads/internal/core/port"
)

// Config tunes campaign selection. Location is the time zone campaign
// windows are written in; nil means UTC.
type Config struct {
	Matching matching.Options
	Location *time.Location
}

// AdUseCase provides business logic for campaign selection and play
// logging. It orchestrates the matching engine and repositories to
// implement the port.AdUseCase interface.
type AdUseCase struct {
	campaigns port.CampaignRepository
	plays     port.PlayLogRepository
	// events is optional; plays are announced only when it is set.
	events port.PlayEventPublisher
	cfg    Config
	logger *slog.Logger
	now    func() time.Time
}

// NewAdUseCase creates a new usecase with the provided repositories.
func NewAdUseCase(
	campaigns port.CampaignRepository,
	plays port.PlayLogRepository,
	events port.PlayEventPublisher,
	cfg Config,
	logger *slog.Logger,
) *AdUseCase {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &AdUseCase{
		campaigns: campaigns,
		plays:     plays,
		events:    events,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// RequestAd selects the campaign the driver should hear next. It returns
// nil when no campaign matches. An error is returned on malformed input or
// repository failures.
func (u *AdUseCase) RequestAd(ctx context.Context, req domain.MatchRequest) (*port.AdResponse, error) {
	if req.Location == nil || req.ServiceType == "" {
		return nil, fmt.Errorf("%w: latitude, longitude and service_type are required", domain.ErrInvalidRequest)
	}
	campaigns, err := u.campaigns.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}

	sel, ok := matching.SelectCampaign(campaigns, matching.Query{
		Location:    req.Location,
		ServiceType: req.ServiceType,
		Now:         u.now().In(u.cfg.Location),
		IsRideStart: req.IsStartOfRide,
	}, u.cfg.Matching)
	if !ok {
		u.logger.Debug("no campaign matched",
			slog.String("driver_id", req.DriverID),
			slog.String("service_type", req.ServiceType),
			slog.Bool("start_of_ride", req.IsStartOfRide),
			slog.Int("candidates", len(campaigns)))
		return nil, nil
	}

	u.logger.Debug("campaign selected",
		slog.String("driver_id", req.DriverID),
		slog.String("campaign_id", sel.Campaign.ID),
		slog.String("tier", sel.Tier.String()))
	return &port.AdResponse{
		CampaignID: sel.Campaign.ID,
		AudioURLs:  sel.Campaign.AudioURLs,
		Title:      sel.Campaign.Title,
		Client:     sel.Campaign.Client,
		Type:       sel.Campaign.Type,
		Tier:       sel.Tier.String(),
	}, nil
}

// RegisterPlay appends a play log entry. Entries without ID or timestamp
// get server-side values. A repeated ID is accepted without a second write
// or announcement. Publishing is best-effort: a failed publish is logged
// and the play stays recorded.
func (u *AdUseCase) RegisterPlay(ctx context.Context, entry domain.PlayLogEntry) error {
	if entry.CampaignID == "" || entry.DriverID == "" {
		return fmt.Errorf("%w: campaign_id and driver_id are required", domain.ErrInvalidRequest)
	}
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	} else if _, err := uuid.Parse(entry.ID); err != nil {
		return fmt.Errorf("%w: id must be a UUID", domain.ErrInvalidRequest)
	}
	if entry.PlayedAt.IsZero() {
		entry.PlayedAt = u.now().UTC()
	}

	inserted, err := u.plays.AppendPlay(ctx, entry)
	if err != nil {
		return fmt.Errorf("append play: %w", err)
	}
	if !inserted {
		u.logger.Info("duplicate play ignored", slog.String("play_id", entry.ID))
		return nil
	}
	if u.events == nil {
		return nil
	}
	if err = u.events.PublishPlay(ctx, entry); err != nil {
		u.logger.Warn("publish play event failed", slog.String("play_id", entry.ID), slog.Any("error", err))
	}
	return nil
}

// CountPlays returns the number of plays logged for driverID.
func (u *AdUseCase) CountPlays(ctx context.Context, driverID string) (int64, error) {
	if driverID == "" {
		return 0, fmt.Errorf("%w: driver_id is required", domain.ErrInvalidRequest)
	}
	return u.plays.CountPlays(ctx, driverID)
}

// GetStats returns aggregated plays for a period.
func (u *AdUseCase) GetStats(ctx context.Context, req port.StatsReq) (*port.StatsResp, error) {
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: 'to' precedes 'from'", domain.ErrInvalidRequest)
	}
	return u.plays.GetStats(ctx, req)
}

// ListPlays returns the plays of a period, newest first. A missing limit
// takes port.DefaultPlaysLimit and larger ones are cut to
// port.MaxPlaysLimit.
func (u *AdUseCase) ListPlays(ctx context.Context, req port.PlaysReq) ([]port.PlayRecord, error) {
	if req.To.Before(req.From) {
		return nil, fmt.Errorf("%w: 'to' precedes 'from'", domain.ErrInvalidRequest)
	}
	switch {
	case req.Limit < 0:
		return nil, fmt.Errorf("%w: limit must be positive", domain.ErrInvalidRequest)
	case req.Limit == 0:
		req.Limit = port.DefaultPlaysLimit
	case req.Limit > port.MaxPlaysLimit:
		req.Limit = port.MaxPlaysLimit
	}
	plays, err := u.plays.ListPlays(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("list plays: %w", err)
	}
	return plays, nil
}
