// Package geo provides the spherical-earth math used everywhere else:
// great-circle distance in statute miles, initial bearing, coordinate
// interpolation, and padded bounding boxes.
package geo

import (
	"math"

	"evacroute/internal/models"
)

// earthRadiusMi is the volumetric mean radius in statute miles.
const earthRadiusMi = 3956.0

// Haversine returns the great-circle distance between a and b in miles.
func Haversine(a, b models.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLat := (b.Lat - a.Lat) * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	return 2 * earthRadiusMi * math.Asin(math.Sqrt(h))
}

// Bearing returns the initial great-circle bearing from a to b in
// degrees, normalized to [0, 360).
func Bearing(a, b models.Coordinate) float64 {
	lat1 := a.Lat * math.Pi / 180
	lat2 := b.Lat * math.Pi / 180
	dLon := (b.Lon - a.Lon) * math.Pi / 180

	y := math.Sin(dLon) * math.Cos(lat2)
	x := math.Cos(lat1)*math.Sin(lat2) - math.Sin(lat1)*math.Cos(lat2)*math.Cos(dLon)
	deg := math.Atan2(y, x) * 180 / math.Pi
	return math.Mod(deg+360, 360)
}

var cardinals = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

// Cardinal maps a bearing in degrees onto the eight-wind compass rose.
func Cardinal(bearing float64) string {
	idx := int(math.Mod(bearing+22.5, 360) / 45)
	return cardinals[idx]
}

// Lerp linearly interpolates between a and b. t=0 yields a, t=1 yields
// b. Fine for the corridor lengths this engine works with; no geodesic
// correction is attempted.
func Lerp(a, b models.Coordinate, t float64) models.Coordinate {
	return models.Coordinate{
		Lat: a.Lat + (b.Lat-a.Lat)*t,
		Lon: a.Lon + (b.Lon-a.Lon)*t,
	}
}

// BBox is a south/west/north/east bounding box in degrees.
type BBox struct {
	South float64
	West  float64
	North float64
	East  float64
}

// NewBBox returns the smallest box containing a and b, padded outward
// by pad degrees on every side.
func NewBBox(a, b models.Coordinate, pad float64) BBox {
	return BBox{
		South: math.Min(a.Lat, b.Lat) - pad,
		West:  math.Min(a.Lon, b.Lon) - pad,
		North: math.Max(a.Lat, b.Lat) + pad,
		East:  math.Max(a.Lon, b.Lon) + pad,
	}
}

// Contains reports whether c falls inside the box, edges inclusive.
func (bb BBox) Contains(c models.Coordinate) bool {
	return c.Lat >= bb.South && c.Lat <= bb.North &&
		c.Lon >= bb.West && c.Lon <= bb.East
}
