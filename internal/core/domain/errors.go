package domain

import "errors"

var (
	// ErrInvalidRequest marks malformed matching or play-log input.
	ErrInvalidRequest = errors.New("invalid request")
	// ErrInvalidCampaign marks a campaign that breaks its invariants.
	ErrInvalidCampaign = errors.New("invalid campaign")
	// ErrInvalidProfile marks a driver profile that fails validation.
	ErrInvalidProfile = errors.New("invalid driver profile")
	// ErrProfileIncomplete is returned when a ride is started without a
	// service type on the driver profile.
	ErrProfileIncomplete = errors.New("driver profile incomplete: service type is required")

	// ErrUnauthenticated means the caller presented no valid credentials.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the caller is authenticated but lacks the role.
	ErrForbidden = errors.New("forbidden: driver role required")

	// ErrRideInProgress is returned by Start while a ride is active.
	ErrRideInProgress = errors.New("ride already in progress")
	// ErrNotPlaying is returned by Pause and Resume outside of playback.
	ErrNotPlaying = errors.New("no clip is playing")
	// ErrSessionClosed is returned once the session loop has exited.
	ErrSessionClosed = errors.New("session closed")
)

// NoCampaignMessage is the caller-visible reason for an empty match.
const NoCampaignMessage = "no campaign available for this location/time"

// Roles carried in access tokens.
const (
	RoleDriver   = "driver"
	RoleOperator = "operator"
)
