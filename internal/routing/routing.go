// Package routing produces point-to-point road segments. The default
// provider is a public OSRM instance; a Google Maps provider can be
// swapped in by API key. When the provider fails, a straight-line
// estimator keeps the engine answering.
package routing

import (
	"context"
	"fmt"
	"time"

	"evacroute/internal/cache"
	"evacroute/internal/geo"
	"evacroute/internal/models"
)

// Profile selects the travel mode a routing call is computed for.
type Profile string

const (
	ProfileDrive Profile = "car"
	ProfileWalk  Profile = "foot"
)

// Provider computes a routed segment between two points.
type Provider interface {
	Route(ctx context.Context, profile Profile, from, to models.Coordinate) (models.RouteSegment, error)
}

// Estimator constants. Road networks rarely beat the crow by much:
// straight-line distance scaled by a path factor at a flat speed is a
// serviceable stand-in when the router is unreachable.
const (
	drivePathFactor = 1.3
	driveSpeedMph   = 45.0
	walkPathFactor  = 1.2
	walkSpeedMph    = 3.5
)

// Estimate returns a fallback segment for the profile, derived from
// straight-line distance. Geometry is the two endpoints.
func Estimate(profile Profile, from, to models.Coordinate) models.RouteSegment {
	straight := geo.Haversine(from, to)

	factor, speed := walkPathFactor, walkSpeedMph
	if profile == ProfileDrive {
		factor, speed = drivePathFactor, driveSpeedMph
	}
	dist := straight * factor
	return models.RouteSegment{
		DistanceMi:  dist,
		DurationMin: dist / speed * 60,
		Geometry:    []models.Coordinate{from, to},
		Estimated:   true,
	}
}

// Service wraps a Provider with a result cache and the estimator
// fallback. Fetch never returns an error; degraded results are flagged
// via RouteSegment.Estimated.
type Service struct {
	provider Provider
	results  *cache.Cache[models.RouteSegment]
}

// NewService builds a routing service over provider with the given
// cache TTL.
func NewService(provider Provider, ttl time.Duration) *Service {
	return &Service{
		provider: provider,
		results:  cache.New[models.RouteSegment](ttl, time.Minute),
	}
}

// Close releases the service's cache resources.
func (s *Service) Close() { s.results.Close() }

// Fetch returns a segment for the pair, routed when possible and
// estimated otherwise.
func (s *Service) Fetch(ctx context.Context, profile Profile, from, to models.Coordinate) models.RouteSegment {
	key := fmt.Sprintf("%s|%s|%s", profile,
		cache.PointKey(from.Lat, from.Lon, 0), cache.PointKey(to.Lat, to.Lon, 0))
	if seg, ok := s.results.Get(key); ok {
		return seg
	}

	seg, err := s.provider.Route(ctx, profile, from, to)
	if err != nil {
		return Estimate(profile, from, to)
	}
	s.results.Set(key, seg)
	return seg
}
