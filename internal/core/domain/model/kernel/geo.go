package kernel

import (
	"fmt"

	"hauling/internal/pkg/errs"
	"hauling/internal/pkg/guard"
)

// Latitude/longitude bounds in decimal degrees.
const (
	LatitudeMin  float64 = -90
	LatitudeMax  float64 = 90
	LongitudeMin float64 = -180
	LongitudeMax float64 = 180
)

// ErrGeoPointIsNotConstructed is returned when using an improperly initialized GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// ErrSiteIsNotConstructed is returned when using an improperly initialized Site.
var ErrSiteIsNotConstructed = errs.NewValueIsRequiredError(
	"site must be created via NewSite constructor")

// GeoPoint is an immutable value object holding validated WGS84 coordinates.
// The zero value is invalid and fails Validate; use NewGeoPoint.
type GeoPoint struct { //nolint:recvcheck //using for validation
	latitude  float64
	longitude float64
	guard     guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint, rejecting coordinates outside the valid
// latitude [-90, 90] and longitude [-180, 180] ranges.
func NewGeoPoint(latitude, longitude float64) (GeoPoint, error) {
	if latitude < LatitudeMin || latitude > LatitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}
	if longitude < LongitudeMin || longitude > LongitudeMax {
		return GeoPoint{}, errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	return GeoPoint{
		latitude:  latitude,
		longitude: longitude,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the GeoPoint was built through its constructor.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Latitude returns the latitude in decimal degrees.
func (p GeoPoint) Latitude() float64 {
	return p.latitude
}

// Longitude returns the longitude in decimal degrees.
func (p GeoPoint) Longitude() float64 {
	return p.longitude
}

// IsEqual compares two geo points by coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.latitude == other.latitude && p.longitude == other.longitude
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%f,%f)", p.latitude, p.longitude)
}

// Site is a load or dump location: a human-readable address plus its geo point.
// It is an immutable value object; the zero value is invalid.
type Site struct { //nolint:recvcheck //using for validation
	address string
	point   GeoPoint
	guard   guard.ConstructorGuard
}

// NewSite creates a Site with a non-empty address and a valid geo point.
func NewSite(address string, point GeoPoint) (Site, error) {
	if address == "" {
		return Site{}, errs.NewValueIsRequiredError("address")
	}
	if err := point.Validate(); err != nil {
		return Site{}, err
	}

	return Site{
		address: address,
		point:   point,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate checks the Site was built through its constructor.
func (s Site) Validate() error {
	return s.guard.Validate(ErrSiteIsNotConstructed)
}

// Address returns the human-readable address.
func (s Site) Address() string {
	return s.address
}

// Point returns the site's coordinates.
func (s Site) Point() GeoPoint {
	return s.point
}
