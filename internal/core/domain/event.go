package domain

import (
	"time"
)

// PlayLogEntry is the durable record of one clip that played to its end.
// ID is generated by the client that played the clip so a retried write
// does not produce a second entry.
type PlayLogEntry struct {
	ID         string    `json:"id"`
	CampaignID string    `json:"campaign_id"`
	DriverID   string    `json:"driver_id"`
	PlayedAt   time.Time `json:"played_at"`
}
