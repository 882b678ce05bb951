package incident

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"evacroute/internal/models"
)

// WSDOT pulls highway alerts from the Washington State DOT traveler
// API. The feed is statewide, so results are filtered to the corridor
// box.
type WSDOT struct {
	baseURL    string
	accessCode string
	ttl        time.Duration
	httpClient *http.Client
}

// NewWSDOT builds the Washington feed with the given cache TTL. The
// traveler API requires a free access code.
func NewWSDOT(baseURL, accessCode string, ttl time.Duration) *WSDOT {
	return &WSDOT{
		baseURL:    strings.TrimRight(baseURL, "/"),
		accessCode: accessCode,
		ttl:        ttl,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (w *WSDOT) Name() string { return "wsdot" }

func (w *WSDOT) Matches(state string) bool { return state == "WA" }

func (w *WSDOT) TTL() time.Duration { return w.ttl }

type wsdotAlert struct {
	HeadlineDescription  string `json:"HeadlineDescription"`
	EventCategory        string `json:"EventCategory"`
	Priority             string `json:"Priority"`
	EventStatus          string `json:"EventStatus"`
	StartRoadwayLocation struct {
		RoadName  string  `json:"RoadName"`
		Latitude  float64 `json:"Latitude"`
		Longitude float64 `json:"Longitude"`
	} `json:"StartRoadwayLocation"`
}

// Fetch implements Feed.
func (w *WSDOT) Fetch(ctx context.Context, req Request) ([]models.RoadIncident, error) {
	q := url.Values{"AccessCode": {w.accessCode}}
	u := w.baseURL + "/GetAlertsAsJson?" + q.Encode()

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("wsdot: build request: %w", err)
	}

	resp, err := w.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("wsdot: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wsdot: status %d", resp.StatusCode)
	}

	var alerts []wsdotAlert
	if err := json.NewDecoder(resp.Body).Decode(&alerts); err != nil {
		return nil, fmt.Errorf("wsdot: decode: %w", err)
	}

	var out []models.RoadIncident
	for _, a := range alerts {
		loc := a.StartRoadwayLocation
		if !req.BBox.Contains(models.Coordinate{Lat: loc.Latitude, Lon: loc.Longitude}) {
			continue
		}
		out = append(out, models.RoadIncident{
			Title:    a.HeadlineDescription,
			Road:     loc.RoadName,
			Severity: a.Priority,
			Status:   a.EventStatus,
			Lat:      loc.Latitude,
			Lon:      loc.Longitude,
			Source:   "wsdot",
		})
	}
	return out, nil
}
