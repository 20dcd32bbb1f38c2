package kernel

import (
	"errors"
	"fmt"

	"fooddelivery/internal/pkg/errs"

	"fooddelivery/internal/pkg/guard"
)

const (
	// GeoPointMinLat is the minimum valid latitude in degrees.
	GeoPointMinLat = -90.0
	// GeoPointMaxLat is the maximum valid latitude in degrees.
	GeoPointMaxLat = 90.0
	// GeoPointMinLng is the minimum valid longitude in degrees.
	GeoPointMinLng = -180.0
	// GeoPointMaxLng is the maximum valid longitude in degrees.
	GeoPointMaxLng = 180.0
)

// ErrGeoPointIsNotConstructed is returned when using an improperly initialized GeoPoint.
var ErrGeoPointIsNotConstructed = errs.NewValueIsRequiredError(
	"geo point must be created via NewGeoPoint constructor")

// GeoPoint is an immutable value object holding the customer's delivery
// coordinates as picked on the map. The zero value is invalid; use NewGeoPoint.
//
// Example:
//
//	point, err := kernel.NewGeoPoint(15.3694, 44.1910)
//	if err != nil {
//	    // coordinates out of bounds
//	}
type GeoPoint struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewGeoPoint creates a GeoPoint with validated WGS84 coordinates.
// Latitude must lie in [-90, 90] and longitude in [-180, 180].
func NewGeoPoint(lat float64, lng float64) (GeoPoint, error) {
	point := GeoPoint{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(point.setLat(lat), point.setLng(lng)); err != nil {
		return GeoPoint{}, err
	}

	return point, nil
}

// Validate ensures the GeoPoint was created via NewGeoPoint.
func (p GeoPoint) Validate() error {
	return p.guard.Validate(ErrGeoPointIsNotConstructed)
}

// Lat returns the latitude in degrees.
func (p GeoPoint) Lat() float64 {
	return p.lat
}

// Lng returns the longitude in degrees.
func (p GeoPoint) Lng() float64 {
	return p.lng
}

// IsEqual reports whether two points hold the same coordinates.
func (p GeoPoint) IsEqual(other GeoPoint) bool {
	return p.lat == other.lat && p.lng == other.lng
}

// String implements fmt.Stringer.
func (p GeoPoint) String() string {
	return fmt.Sprintf("GeoPoint(%g,%g)", p.lat, p.lng)
}

func (p *GeoPoint) setLat(lat float64) error {
	if lat < GeoPointMinLat || lat > GeoPointMaxLat {
		return errs.NewValueIsOutOfRangeError("latitude", lat, GeoPointMinLat, GeoPointMaxLat)
	}
	p.lat = lat
	return nil
}

func (p *GeoPoint) setLng(lng float64) error {
	if lng < GeoPointMinLng || lng > GeoPointMaxLng {
		return errs.NewValueIsOutOfRangeError("longitude", lng, GeoPointMinLng, GeoPointMaxLng)
	}
	p.lng = lng
	return nil
}
