package port

import (
	"context"
	"time"

	"movo-ads/internal/core/domain"
)

// CampaignRepository is the read-only campaign source of the matching
// service. It is an outbound port in hexagonal architecture.
// Implementations return the complete authorized set in a stable order;
// filtering is the matcher's job.
type CampaignRepository interface {
	// ListCampaigns returns every campaign visible to the engine.
	ListCampaigns(ctx context.Context) ([]domain.Campaign, error)
}

// PlayLogRepository is the durable, append-only play log. Implementations
// must be concurrency-safe and treat a repeated entry ID as a no-op.
type PlayLogRepository interface {
	// AppendPlay stores entry. It reports inserted=false when an entry
	// with the same ID already exists.
	AppendPlay(ctx context.Context, entry domain.PlayLogEntry) (inserted bool, err error)
	// CountPlays returns how many clips the driver has played.
	CountPlays(ctx context.Context, driverID string) (int64, error)
	// GetStats returns aggregated plays in a period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)
	// ListPlays returns individual plays in a period, newest first.
	ListPlays(ctx context.Context, req PlaysReq) ([]PlayRecord, error)
}

// ProfileRepository stores driver profiles.
type ProfileRepository interface {
	// GetProfile returns nil when the driver has no profile yet.
	GetProfile(ctx context.Context, driverID string) (*domain.DriverProfile, error)
	// UpsertProfile creates or replaces the driver's profile.
	UpsertProfile(ctx context.Context, profile domain.DriverProfile) error
}

// PlayEventPublisher announces logged plays to downstream consumers such
// as reporting.
type PlayEventPublisher interface {
	PublishPlay(ctx context.Context, entry domain.PlayLogEntry) error
}

// StatsResp contains aggregated play counts for campaigns. Plays counts
// completed clips, Drivers the distinct drivers that played them and
// Campaigns the distinct campaigns played.
type StatsResp struct {
	Plays     int64 `json:"plays"`
	Drivers   int64 `json:"drivers"`
	Campaigns int64 `json:"campaigns"`
}

type StatsReq struct {
	From       time.Time
	To         time.Time
	CampaignID *string
}

// PlaysReq selects plays for the operator listing. Limit caps the rows
// returned.
type PlaysReq struct {
	From       time.Time
	To         time.Time
	CampaignID *string
	Limit      int
}

// PlayRecord is one logged play with its campaign title. DriverName is
// empty when the driver never saved a profile.
type PlayRecord struct {
	ID            string    `json:"id"`
	CampaignID    string    `json:"campaign_id"`
	CampaignTitle string    `json:"campaign_title"`
	DriverID      string    `json:"driver_id"`
	DriverName    string    `json:"driver_name,omitempty"`
	PlayedAt      time.Time `json:"played_at"`
}
