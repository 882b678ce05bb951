// Package hazard checks the evacuation corridor against known hazard
// sites. The corridor is sampled at five points along the straight
// line between origin and destination; a site whose minimum distance
// to any sample is within the buffer is reported.
package hazard

import (
	"sort"

	"evacroute/internal/geo"
	"evacroute/internal/models"
)

// corridorSamples is the number of evenly spaced probe points,
// endpoints included.
const corridorSamples = 5

// Scanner screens hazard sites against a corridor buffer in miles.
type Scanner struct {
	BufferMi float64
}

// NewScanner builds a scanner with the given buffer radius.
func NewScanner(bufferMi float64) *Scanner {
	return &Scanner{BufferMi: bufferMi}
}

// Scan returns the sites within the buffer of the origin-destination
// corridor, nearest first. Duplicate site names keep the first
// occurrence.
func (s *Scanner) Scan(origin, dest models.Coordinate, sites []models.HazardSite) []models.HazardHit {
	samples := make([]models.Coordinate, corridorSamples)
	for i := range samples {
		samples[i] = geo.Lerp(origin, dest, float64(i)/float64(corridorSamples-1))
	}

	seen := make(map[string]bool, len(sites))
	var hits []models.HazardHit
	for _, site := range sites {
		if seen[site.Name] {
			continue
		}
		min := geo.Haversine(samples[0], site.Coordinate)
		for _, p := range samples[1:] {
			if d := geo.Haversine(p, site.Coordinate); d < min {
				min = d
			}
		}
		if min <= s.BufferMi {
			seen[site.Name] = true
			hits = append(hits, models.HazardHit{
				Name:          site.Name,
				Coordinate:    site.Coordinate,
				Acres:         site.Acres,
				MinDistanceMi: min,
			})
		}
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].MinDistanceMi < hits[j].MinDistanceMi
	})
	return hits
}
