package domain

import (
	"log/slog"
	"math"
)

// Metro fence constants for the St. Louis region. The primary box covers
// the Missouri side of the metro; the subregion box is the Illinois
// exception area around East St. Louis.
const (
	metroMinLat = 38.0
	metroMaxLat = 39.0
	metroMinLon = -91.1
	metroMaxLon = -90.16 // Mississippi river; Illinois side handled by the subregion box

	subregionMinLat = 38.55
	subregionMaxLat = 38.70
	subregionMinLon = -90.18
	subregionMaxLon = -90.02

	// DefaultMaxDistanceMiles bounds how far from the metro centroid a
	// geocoded point may fall.
	DefaultMaxDistanceMiles = 50.0

	earthRadiusMiles = 3958.8
)

// MetroCenter is the downtown St. Louis centroid used for distance checks.
var MetroCenter = GeoPoint{Lat: 38.6270, Lon: -90.1994}

// Fence validates that coordinates lie within the metro region. It is the
// single gate all geocoded output must pass; no component bypasses it.
type Fence struct {
	logger *slog.Logger
}

// NewFence creates a metro fence that logs rejections to the given logger.
func NewFence(logger *slog.Logger) *Fence {
	return &Fence{logger: logger}
}

// IsWithinBounds reports whether p lies inside the strict metro bounding box.
func (f *Fence) IsWithinBounds(p GeoPoint) bool {
	return p.Lat >= metroMinLat && p.Lat <= metroMaxLat &&
		p.Lon >= metroMinLon && p.Lon <= metroMaxLon
}

// DistanceFromCenter returns the great-circle distance in miles from p to
// the metro centroid.
func (f *Fence) DistanceFromCenter(p GeoPoint) float64 {
	return haversineMiles(p, MetroCenter)
}

// IsValidLocation reports whether p is inside the metro bounding box and
// within maxMiles of the centroid. Rejections are logged at warning level;
// this method never errors.
func (f *Fence) IsValidLocation(p GeoPoint, maxMiles float64) bool {
	if !f.IsWithinBounds(p) {
		f.logger.Warn("location outside metro bounds", "lat", p.Lat, "lon", p.Lon)
		return false
	}
	if d := f.DistanceFromCenter(p); d > maxMiles {
		f.logger.Warn("location too far from metro center",
			"lat", p.Lat, "lon", p.Lon, "distance_miles", d, "max_miles", maxMiles)
		return false
	}
	return true
}

// IsWithinSubregion reports whether p lies inside the Illinois exception
// box. Only the cross-border East St. Louis entries validate here; there
// is no distance check.
func (f *Fence) IsWithinSubregion(p GeoPoint) bool {
	return p.Lat >= subregionMinLat && p.Lat <= subregionMaxLat &&
		p.Lon >= subregionMinLon && p.Lon <= subregionMaxLon
}

// haversineMiles computes the great-circle distance between two points.
func haversineMiles(a, b GeoPoint) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusMiles * 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}
