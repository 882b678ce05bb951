package routing

import (
	"context"
	"fmt"

	"googlemaps.github.io/maps"

	"evacroute/internal/models"
)

// GoogleMaps routes via the Google Directions API. Used instead of
// OSRM when an API key is configured.
type GoogleMaps struct {
	client *maps.Client
}

// NewGoogleMaps builds a provider from an API key.
func NewGoogleMaps(apiKey string) (*GoogleMaps, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("googlemaps: %w", err)
	}
	return &GoogleMaps{client: client}, nil
}

// Route implements Provider.
func (g *GoogleMaps) Route(ctx context.Context, profile Profile, from, to models.Coordinate) (models.RouteSegment, error) {
	mode := maps.TravelModeDriving
	if profile == ProfileWalk {
		mode = maps.TravelModeWalking
	}

	routes, _, err := g.client.Directions(ctx, &maps.DirectionsRequest{
		Origin:      fmt.Sprintf("%f,%f", from.Lat, from.Lon),
		Destination: fmt.Sprintf("%f,%f", to.Lat, to.Lon),
		Mode:        mode,
	})
	if err != nil {
		return models.RouteSegment{}, fmt.Errorf("googlemaps: directions: %w", err)
	}
	if len(routes) == 0 || len(routes[0].Legs) == 0 {
		return models.RouteSegment{}, fmt.Errorf("googlemaps: no route")
	}

	route := routes[0]
	var meters float64
	var seconds float64
	var steps []string
	for _, leg := range route.Legs {
		meters += float64(leg.Distance.Meters)
		seconds += leg.Duration.Seconds()
		for _, st := range leg.Steps {
			if st.HTMLInstructions != "" {
				steps = append(steps, st.HTMLInstructions)
			}
		}
	}

	points, err := route.OverviewPolyline.Decode()
	if err != nil {
		return models.RouteSegment{}, fmt.Errorf("googlemaps: polyline: %w", err)
	}
	geometry := make([]models.Coordinate, 0, len(points))
	for _, p := range points {
		geometry = append(geometry, models.Coordinate{Lat: p.Lat, Lon: p.Lng})
	}

	return models.RouteSegment{
		DistanceMi:  meters / metersPerMile,
		DurationMin: seconds / 60,
		Geometry:    geometry,
		Steps:       steps,
	}, nil
}
