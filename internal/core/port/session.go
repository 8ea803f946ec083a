package port

import (
	"context"

	"movo-ads/internal/core/domain"
)

// Locator supplies the device's current coordinates. Errors are expected
// and are replaced with a fallback coordinate by the caller.
type Locator interface {
	CurrentLocation(ctx context.Context) (domain.Location, error)
}

// Matcher asks the matching service for the next campaign. It returns nil
// without error when nothing matches. Authorization failures wrap
// domain.ErrUnauthenticated or domain.ErrForbidden.
type Matcher interface {
	Match(ctx context.Context, req domain.MatchRequest) (*domain.Campaign, error)
}

// Player starts audio playback. Play must return as soon as the clip has
// started; the end of playback is reported through the returned handle.
type Player interface {
	Play(ctx context.Context, clipURL string) (Playback, error)
}

// Playback is a handle on one clip being played. Done receives exactly one
// value: nil when the clip reached its natural end, or the playback error.
// Stop halts the clip; after Stop the value sent on Done is irrelevant.
type Playback interface {
	Done() <-chan error
	Stop()
}

// PlayLogger writes completed plays to the durable play log.
type PlayLogger interface {
	LogPlay(ctx context.Context, entry domain.PlayLogEntry) error
}
