package routing

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"evacroute/internal/models"
)

const metersPerMile = 1609.344

// OSRM routes against an OSRM HTTP instance.
type OSRM struct {
	baseURL    string
	httpClient *http.Client
}

// NewOSRM builds a provider for the given OSRM base URL, e.g. the
// public https://router.project-osrm.org instance.
func NewOSRM(baseURL string) *OSRM {
	return &OSRM{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

type osrmResponse struct {
	Code   string `json:"code"`
	Routes []struct {
		Distance float64 `json:"distance"`
		Duration float64 `json:"duration"`
		Geometry struct {
			Coordinates [][]float64 `json:"coordinates"`
		} `json:"geometry"`
		Legs []struct {
			Steps []struct {
				Name     string `json:"name"`
				Maneuver struct {
					Type     string `json:"type"`
					Modifier string `json:"modifier"`
				} `json:"maneuver"`
			} `json:"steps"`
		} `json:"legs"`
	} `json:"routes"`
}

// Route implements Provider.
func (o *OSRM) Route(ctx context.Context, profile Profile, from, to models.Coordinate) (models.RouteSegment, error) {
	u := fmt.Sprintf("%s/route/v1/%s/%f,%f;%f,%f?overview=full&geometries=geojson&steps=true",
		o.baseURL, profile, from.Lon, from.Lat, to.Lon, to.Lat)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return models.RouteSegment{}, fmt.Errorf("osrm: build request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return models.RouteSegment{}, fmt.Errorf("osrm: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.RouteSegment{}, fmt.Errorf("osrm: status %d", resp.StatusCode)
	}

	var parsed osrmResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return models.RouteSegment{}, fmt.Errorf("osrm: decode: %w", err)
	}
	if parsed.Code != "Ok" || len(parsed.Routes) == 0 {
		return models.RouteSegment{}, fmt.Errorf("osrm: no route (code %q)", parsed.Code)
	}

	route := parsed.Routes[0]
	geometry := make([]models.Coordinate, 0, len(route.Geometry.Coordinates))
	for _, pair := range route.Geometry.Coordinates {
		if len(pair) < 2 {
			continue
		}
		geometry = append(geometry, models.Coordinate{Lat: pair[1], Lon: pair[0]})
	}

	var steps []string
	for _, leg := range route.Legs {
		for _, st := range leg.Steps {
			desc := st.Maneuver.Type
			if st.Maneuver.Modifier != "" {
				desc += " " + st.Maneuver.Modifier
			}
			if st.Name != "" {
				desc += " onto " + st.Name
			}
			steps = append(steps, desc)
		}
	}

	return models.RouteSegment{
		DistanceMi:  route.Distance / metersPerMile,
		DurationMin: route.Duration / 60,
		Geometry:    geometry,
		Steps:       steps,
	}, nil
}
