package domain

import (
	"fmt"
	"slices"
	"time"
)

// CampaignType tells the matcher which targeting rules apply to a campaign.
type CampaignType string

const (
	// CampaignGeneric campaigns carry no location constraint and are meant
	// for the start of a ride.
	CampaignGeneric CampaignType = "generic"
	// CampaignGeoreferenced campaigns only play inside their geofence.
	CampaignGeoreferenced CampaignType = "georeferenced"
)

// MaxAudioClips is the largest clip sequence a campaign may carry.
const MaxAudioClips = 15

// Location is a WGS84 coordinate in decimal degrees.
type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Campaign represents an advertising campaign: a targeting rule plus an
// ordered sequence of audio clips played in order and wrapping around.
// Time boundaries are HH:MM times of day, inclusive on both ends.
type Campaign struct {
	ID           string       `json:"id"`
	Title        string       `json:"titulo"`
	Client       string       `json:"cliente"`
	StartTime    string       `json:"horario_inicio"`
	EndTime      string       `json:"horario_fim"`
	RadiusKm     float64      `json:"raio_km"`
	ServiceTypes []string     `json:"tipos_servico_segmentados"`
	Location     *Location    `json:"localizacao,omitempty"`
	AudioURLs    []string     `json:"audio_urls"`
	Type         CampaignType `json:"tipo_campanha"`
	CreatedAt    time.Time    `json:"created_at"`
}

// TargetsService reports whether serviceType is one of the campaign's
// segmented service types.
func (c Campaign) TargetsService(serviceType string) bool {
	return slices.Contains(c.ServiceTypes, serviceType)
}

// ActiveAt reports whether the time of day of now falls inside the
// campaign's window. Campaigns with unparseable boundaries are never
// active.
func (c Campaign) ActiveAt(now time.Time) bool {
	w, err := ParseWindow(c.StartTime, c.EndTime)
	if err != nil {
		return false
	}
	return w.Contains(TimeOfDayOf(now))
}

// ClipURL returns the clip at index, wrapping modulo the sequence length.
func (c Campaign) ClipURL(index int) string {
	if len(c.AudioURLs) == 0 {
		return ""
	}
	return c.AudioURLs[index%len(c.AudioURLs)]
}

// Validate checks the campaign invariants that the matcher relies on.
func (c Campaign) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidCampaign)
	}
	if n := len(c.AudioURLs); n == 0 || n > MaxAudioClips {
		return fmt.Errorf("%w: campaign %s has %d audio clips, want 1..%d", ErrInvalidCampaign, c.ID, n, MaxAudioClips)
	}
	if _, err := ParseWindow(c.StartTime, c.EndTime); err != nil {
		return fmt.Errorf("%w: campaign %s: %v", ErrInvalidCampaign, c.ID, err)
	}
	switch c.Type {
	case CampaignGeneric:
	case CampaignGeoreferenced:
		if c.Location == nil {
			return fmt.Errorf("%w: georeferenced campaign %s has no location", ErrInvalidCampaign, c.ID)
		}
		if c.RadiusKm <= 0 {
			return fmt.Errorf("%w: georeferenced campaign %s has radius %.3f km", ErrInvalidCampaign, c.ID, c.RadiusKm)
		}
	default:
		return fmt.Errorf("%w: campaign %s has unknown type %q", ErrInvalidCampaign, c.ID, c.Type)
	}
	return nil
}
