// Package transit discovers boarding points: local stops around a
// coordinate via Overpass, and long-distance coach terminals from a
// curated directory.
package transit

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"evacroute/internal/cache"
	"evacroute/internal/geo"
	"evacroute/internal/models"
	"evacroute/internal/overpass"
)

// StopIndex finds and classifies transit stops near a point.
type StopIndex struct {
	client  *overpass.Client
	radiusM int
	results *cache.Cache[[]models.TransitStop]
}

// NewStopIndex builds an index searching radiusM meters around each
// query point, caching results for ttl.
func NewStopIndex(client *overpass.Client, radiusM int, ttl time.Duration) *StopIndex {
	return &StopIndex{
		client:  client,
		radiusM: radiusM,
		results: cache.New[[]models.TransitStop](ttl, time.Minute),
	}
}

// Close releases the index's cache resources.
func (s *StopIndex) Close() { s.results.Close() }

// Near returns the classified, name-deduplicated stops around c,
// sorted by distance from c.
func (s *StopIndex) Near(ctx context.Context, c models.Coordinate) ([]models.TransitStop, error) {
	key := cache.PointKey(c.Lat, c.Lon, s.radiusM)
	if stops, ok := s.results.Get(key); ok {
		return stops, nil
	}

	ql := fmt.Sprintf(`[out:json][timeout:25];
(
  node(around:%d,%f,%f)["highway"="bus_stop"];
  node(around:%d,%f,%f)["railway"~"station|halt"];
  node(around:%d,%f,%f)["railway"="tram_stop"];
  node(around:%d,%f,%f)["amenity"="bus_station"];
  node(around:%d,%f,%f)["public_transport"~"platform|station|stop_position"];
);
out body;`,
		s.radiusM, c.Lat, c.Lon, s.radiusM, c.Lat, c.Lon, s.radiusM, c.Lat, c.Lon,
		s.radiusM, c.Lat, c.Lon, s.radiusM, c.Lat, c.Lon)

	features, err := s.client.Query(ctx, ql)
	if err != nil {
		return nil, fmt.Errorf("transit: stops near %.4f,%.4f: %w", c.Lat, c.Lon, err)
	}

	seen := make(map[string]bool)
	stops := make([]models.TransitStop, 0, len(features))
	for _, f := range features {
		name := f.Tag("name")
		if name == "" {
			name = "Unnamed stop"
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		stops = append(stops, models.TransitStop{
			Name:       name,
			Coordinate: models.Coordinate{Lat: f.Lat, Lon: f.Lon},
			Category:   Classify(f.Tags),
			Operator:   f.Tag("operator"),
			Ref:        f.Tag("ref"),
		})
	}

	sort.SliceStable(stops, func(i, j int) bool {
		return geo.Haversine(c, stops[i].Coordinate) < geo.Haversine(c, stops[j].Coordinate)
	})

	s.results.Set(key, stops)
	return stops, nil
}

var coachOperators = []string{"greyhound", "flixbus", "megabus", "coach"}

// Classify maps OSM tags onto a stop category. Intercity coach
// service wins over everything, then rail, tram, bus stations,
// platforms, and finally plain bus stops.
func Classify(tags map[string]string) models.StopCategory {
	operator := strings.ToLower(tags["operator"])
	for _, op := range coachOperators {
		if strings.Contains(operator, op) {
			return models.CategoryIntercityCoach
		}
	}
	if strings.ToLower(tags["route"]) == "coach" {
		return models.CategoryIntercityCoach
	}
	switch tags["railway"] {
	case "station", "halt":
		return models.CategoryRail
	case "tram_stop":
		return models.CategoryTram
	}
	if tags["amenity"] == "bus_station" {
		return models.CategoryBusStation
	}
	if tags["public_transport"] == "platform" {
		return models.CategoryPlatform
	}
	return models.CategoryBus
}

// Nearest returns the stop closest to from, or nil when the list is
// empty.
func Nearest(stops []models.TransitStop, from models.Coordinate) *models.TransitStop {
	var best *models.TransitStop
	bestDist := 0.0
	for i := range stops {
		d := geo.Haversine(from, stops[i].Coordinate)
		if best == nil || d < bestDist {
			best = &stops[i]
			bestDist = d
		}
	}
	return best
}

// NearestOfCategory returns the closest stop whose category is in
// want, or nil when none match.
func NearestOfCategory(stops []models.TransitStop, from models.Coordinate, want ...models.StopCategory) *models.TransitStop {
	var filtered []models.TransitStop
	for _, s := range stops {
		for _, c := range want {
			if s.Category == c {
				filtered = append(filtered, s)
				break
			}
		}
	}
	return Nearest(filtered, from)
}
