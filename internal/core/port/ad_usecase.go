package port

import (
	"context"

	"movo-ads/internal/core/domain"
)

// AdUseCase defines the business operations exposed by the matching
// service. This interface represents the primary port into the
// application domain. Mock implementations can be generated from this
// interface for testing.
type AdUseCase interface {
	// RequestAd evaluates the campaign set for the provided request. It
	// returns nil when no campaign matches; "no match" is not an error.
	// Malformed requests yield domain.ErrInvalidRequest.
	RequestAd(ctx context.Context, req domain.MatchRequest) (*AdResponse, error)

	// RegisterPlay appends one play log entry and announces it. Entries
	// whose ID was already stored are accepted without a second write.
	RegisterPlay(ctx context.Context, entry domain.PlayLogEntry) error

	// CountPlays returns the total number of plays logged for a driver.
	CountPlays(ctx context.Context, driverID string) (int64, error)

	// GetStats returns aggregated plays for the specified campaign
	// (optional) and time period.
	GetStats(ctx context.Context, req StatsReq) (*StatsResp, error)

	// ListPlays returns the plays of a period, newest first, for
	// reporting. Limit defaults to DefaultPlaysLimit and is capped at
	// MaxPlaysLimit.
	ListPlays(ctx context.Context, req PlaysReq) ([]PlayRecord, error)
}

const (
	DefaultPlaysLimit = 100
	MaxPlaysLimit     = 1000
)

// ProfileUseCase reads and writes driver profiles.
type ProfileUseCase interface {
	GetProfile(ctx context.Context, driverID string) (*domain.DriverProfile, error)
	SaveProfile(ctx context.Context, profile domain.DriverProfile) error
}

// AdResponse represents the selected campaign returned to the driver. It
// is a DTO used by the HTTP layer and does not contain domain behaviour.
type AdResponse struct {
	CampaignID string
	AudioURLs  []string
	Title      string
	Client     string
	Type       domain.CampaignType
	Tier       string
}
