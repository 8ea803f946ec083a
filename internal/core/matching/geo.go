package matching

import (
	"math"

	"movo-ads/internal/core/domain"
)

const earthRadiusKm = 6371.0

// HaversineKm returns the great-circle distance in kilometres between two
// points.
func HaversineKm(a, b domain.Location) float64 {
	dLat := degreesToRadians(b.Lat - a.Lat)
	dLng := degreesToRadians(b.Lng - a.Lng)

	rLat1 := degreesToRadians(a.Lat)
	rLat2 := degreesToRadians(b.Lat)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(rLat1)*math.Cos(rLat2)*math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusKm * c
}

func degreesToRadians(deg float64) float64 {
	return deg * math.Pi / 180.0
}

// withinGeofence reports whether p lies inside the campaign's circle. A
// point exactly on the boundary is inside.
func withinGeofence(p domain.Location, c domain.Campaign) bool {
	if c.Location == nil {
		return false
	}
	return HaversineKm(p, *c.Location) <= c.RadiusKm
}
