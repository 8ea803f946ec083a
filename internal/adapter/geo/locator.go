// Package geo provides simulated position sources for a ride session.
package geo

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"movo-ads/internal/core/domain"
)

// ErrNoFix is returned by a locator that has no position to report.
var ErrNoFix = errors.New("no location fix")

// StaticLocator always reports the same position.
type StaticLocator struct {
	loc domain.Location
}

func NewStaticLocator(loc domain.Location) *StaticLocator {
	return &StaticLocator{loc: loc}
}

func (l *StaticLocator) CurrentLocation(ctx context.Context) (domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return domain.Location{}, err
	}
	return l.loc, nil
}

// RouteLocator walks a fixed list of points, moving to the next one every
// step and staying at the last point once the route is done.
type RouteLocator struct {
	points []domain.Location
	step   time.Duration
	start  time.Time
	now    func() time.Time
}

// NewRouteLocator starts the route at the current time.
func NewRouteLocator(points []domain.Location, step time.Duration) *RouteLocator {
	return &RouteLocator{points: points, step: step, start: time.Now(), now: time.Now}
}

func (l *RouteLocator) CurrentLocation(ctx context.Context) (domain.Location, error) {
	if err := ctx.Err(); err != nil {
		return domain.Location{}, err
	}
	if len(l.points) == 0 {
		return domain.Location{}, ErrNoFix
	}
	i := 0
	if l.step > 0 {
		i = int(l.now().Sub(l.start) / l.step)
	}
	i = min(max(i, 0), len(l.points)-1)
	return l.points[i], nil
}

// ParseRoute parses "lat,lng" points.
func ParseRoute(points []string) ([]domain.Location, error) {
	route := make([]domain.Location, 0, len(points))
	for _, p := range points {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		latStr, lngStr, ok := strings.Cut(p, ",")
		if !ok {
			return nil, fmt.Errorf("route point %q: want lat,lng", p)
		}
		lat, err := strconv.ParseFloat(strings.TrimSpace(latStr), 64)
		if err != nil || lat < -90 || lat > 90 {
			return nil, fmt.Errorf("route point %q: bad latitude", p)
		}
		lng, err := strconv.ParseFloat(strings.TrimSpace(lngStr), 64)
		if err != nil || lng < -180 || lng > 180 {
			return nil, fmt.Errorf("route point %q: bad longitude", p)
		}
		route = append(route, domain.Location{Lat: lat, Lng: lng})
	}
	return route, nil
}
