// Package geo provides great-circle distance math for the candidate
// discovery queries. Coordinates are WGS84 decimal degrees; distances are
// statute miles.
package geo

import (
	"errors"
	"fmt"
	"math"
)

// EarthRadiusMiles is Earth's mean radius.
const EarthRadiusMiles = 3959.0

var ErrInvalidCoordinates = errors.New("invalid coordinates")

// ValidateCoordinates checks that a (lat, lon) pair is a finite point on the
// WGS84 grid.
func ValidateCoordinates(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) || math.IsInf(lat, 0) || math.IsInf(lon, 0) {
		return fmt.Errorf("non-finite values: %w", ErrInvalidCoordinates)
	}
	if lat < -90 || lat > 90 || lon < -180 || lon > 180 {
		return fmt.Errorf("out of range: %w", ErrInvalidCoordinates)
	}
	return nil
}

// HaversineMiles computes the great-circle distance between two points using
// the haversine formula. Static snapshots only: no altitude, no routing.
func HaversineMiles(lat1, lon1, lat2, lon2 float64) float64 {
	toRad := func(v float64) float64 { return v * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return EarthRadiusMiles * c
}

// BoundingBox is a rectangular coordinate envelope used to prefilter rows in
// SQL before the exact haversine pass.
type BoundingBox struct {
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

// BoundingBoxFor returns a lat/lon rectangle covering the circle of
// radiusMiles around the center. It is a prefilter only: callers must still
// apply the exact haversine check. Longitude width grows with latitude; near
// the poles the box degenerates to the full longitude range.
func BoundingBoxFor(lat, lon, radiusMiles float64) BoundingBox {
	latDelta := (radiusMiles / EarthRadiusMiles) * 180 / math.Pi

	lonDelta := 180.0
	if cosLat := math.Cos(lat * math.Pi / 180); cosLat > 1e-6 {
		lonDelta = latDelta / cosLat
	}

	box := BoundingBox{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLon: lon - lonDelta,
		MaxLon: lon + lonDelta,
	}
	if box.MinLat < -90 {
		box.MinLat = -90
	}
	if box.MaxLat > 90 {
		box.MaxLat = 90
	}
	if box.MinLon < -180 {
		box.MinLon = -180
	}
	if box.MaxLon > 180 {
		box.MaxLon = 180
	}
	return box
}
