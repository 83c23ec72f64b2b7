// Package geo implements the engine's geolocation port with a local
// great-circle distance check against a fixed geofence radius.
package geo

import (
	"context"
	"math"

	"hauling/internal/core/domain/model/kernel"
)

// earthRadiusMeters is the mean Earth radius used by the haversine formula.
const earthRadiusMeters = 6371000

// HaversineGeolocationService resolves geofence membership by comparing the
// great-circle distance between the site and the reported position against
// the configured radius.
type HaversineGeolocationService struct {
	radiusMeters float64
}

// NewHaversineGeolocationService creates a geolocation service with the given
// geofence radius in meters.
func NewHaversineGeolocationService(radiusMeters float64) *HaversineGeolocationService {
	return &HaversineGeolocationService{radiusMeters: radiusMeters}
}

// IsInsideArea reports whether the position lies within the geofence around
// the site.
func (s *HaversineGeolocationService) IsInsideArea(_ context.Context, site kernel.Site, position kernel.GeoPoint) (bool, error) {
	if err := site.Validate(); err != nil {
		return false, err
	}
	if err := position.Validate(); err != nil {
		return false, err
	}

	distance := haversine(site.Point(), position)
	return distance <= s.radiusMeters, nil
}

func haversine(a, b kernel.GeoPoint) float64 {
	lat1 := a.Latitude() * math.Pi / 180
	lat2 := b.Latitude() * math.Pi / 180
	dLat := (b.Latitude() - a.Latitude()) * math.Pi / 180
	dLon := (b.Longitude() - a.Longitude()) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	return 2 * earthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
