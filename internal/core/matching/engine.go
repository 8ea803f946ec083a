// Package matching selects the campaign a driver should hear next. The
// evaluation is a pure function of its inputs: campaigns are walked in the
// order given and the first one satisfying the highest applicable tier
// wins.
package matching

import (
	"time"

	"movo-ads/internal/core/domain"
)

// Tier identifies the priority level that produced a match.
type Tier int

const (
	TierNone Tier = iota
	// TierGenericAtStart selects generic campaigns when a ride begins.
	TierGenericAtStart
	// TierGeoreferenced selects campaigns whose geofence holds the driver.
	TierGeoreferenced
	// TierRelaxed ignores type and distance at ride start.
	TierRelaxed
	// TierUnconditional returns the first campaign at ride start.
	TierUnconditional
)

func (t Tier) String() string {
	switch t {
	case TierGenericAtStart:
		return "generic_at_start"
	case TierGeoreferenced:
		return "georeferenced"
	case TierRelaxed:
		return "relaxed"
	case TierUnconditional:
		return "unconditional"
	default:
		return "none"
	}
}

// Options tunes the engine. UnconditionalFallback enables the last tier,
// which bypasses all targeting; leave it off outside demo deployments.
type Options struct {
	UnconditionalFallback bool
}

// Query is the driver side of one evaluation. Location may be nil, in
// which case the georeferenced tier cannot match.
type Query struct {
	Location    *domain.Location
	ServiceType string
	Now         time.Time
	IsRideStart bool
}

// Selection is a successful match.
type Selection struct {
	Campaign domain.Campaign
	Tier     Tier
}

// SelectCampaign evaluates the tiers in priority order and returns the
// first campaign that qualifies. ok is false when nothing matched.
func SelectCampaign(campaigns []domain.Campaign, q Query, opts Options) (sel Selection, ok bool) {
	targeted := func(c domain.Campaign) bool {
		return c.TargetsService(q.ServiceType) && c.ActiveAt(q.Now)
	}

	if q.IsRideStart {
		if c, found := first(campaigns, func(c domain.Campaign) bool {
			return c.Type == domain.CampaignGeneric && targeted(c)
		}); found {
			return Selection{Campaign: c, Tier: TierGenericAtStart}, true
		}
	}

	if q.Location != nil {
		if c, found := first(campaigns, func(c domain.Campaign) bool {
			return c.Type == domain.CampaignGeoreferenced && targeted(c) && withinGeofence(*q.Location, c)
		}); found {
			return Selection{Campaign: c, Tier: TierGeoreferenced}, true
		}
	}

	if !q.IsRideStart {
		return Selection{}, false
	}

	if c, found := first(campaigns, targeted); found {
		return Selection{Campaign: c, Tier: TierRelaxed}, true
	}

	if opts.UnconditionalFallback && len(campaigns) > 0 {
		return Selection{Campaign: campaigns[0], Tier: TierUnconditional}, true
	}
	return Selection{}, false
}

func first(campaigns []domain.Campaign, pred func(domain.Campaign) bool) (domain.Campaign, bool) {
	for _, c := range campaigns {
		if pred(c) {
			return c, true
		}
	}
	return domain.Campaign{}, false
}
