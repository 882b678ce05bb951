// Package geocode turns free-text place names into coordinates. The
// built-in gazetteer is consulted first; everything else goes to
// Nominatim, US-restricted, with results cached.
package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"evacroute/internal/cache"
	"evacroute/internal/gazetteer"
	"evacroute/internal/models"
)

// ErrNotResolved means the place name produced no usable coordinate
// from any source.
var ErrNotResolved = errors.New("geocode: place not resolved")

// Resolver resolves place names via the gazetteer and Nominatim.
type Resolver struct {
	baseURL    string
	userAgent  string
	gaz        *gazetteer.Gazetteer
	httpClient *http.Client
	results    *cache.Cache[models.Coordinate]
}

// NewResolver builds a resolver against the given Nominatim base URL.
// Nominatim's usage policy requires an identifying User-Agent; pass the
// deployment contact string.
func NewResolver(baseURL, userAgent string, gaz *gazetteer.Gazetteer, ttl time.Duration) *Resolver {
	return &Resolver{
		baseURL:    strings.TrimRight(baseURL, "/"),
		userAgent:  userAgent,
		gaz:        gaz,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		results:    cache.New[models.Coordinate](ttl, time.Minute),
	}
}

// Close releases the resolver's cache resources.
func (r *Resolver) Close() { r.results.Close() }

// Resolve returns the coordinate for a free-text place name.
func (r *Resolver) Resolve(ctx context.Context, place string) (models.Coordinate, error) {
	place = strings.TrimSpace(place)
	if place == "" {
		return models.Coordinate{}, fmt.Errorf("%w: empty query", ErrNotResolved)
	}

	if p, ok := r.gaz.Lookup(place); ok {
		return p.Coord, nil
	}

	key := strings.ToLower(place)
	if c, ok := r.results.Get(key); ok {
		return c, nil
	}

	c, err := r.queryNominatim(ctx, place)
	if err != nil {
		return models.Coordinate{}, err
	}
	r.results.Set(key, c)
	return c, nil
}

// StateHint reports the two-letter state code implied by a place name,
// or "" when none can be determined.
func (r *Resolver) StateHint(place string) string {
	return r.gaz.StateHint(place)
}

type nominatimResult struct {
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
}

func (r *Resolver) queryNominatim(ctx context.Context, place string) (models.Coordinate, error) {
	q := url.Values{}
	q.Set("q", place)
	q.Set("format", "json")
	q.Set("limit", "1")
	q.Set("countrycodes", "us")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		r.baseURL+"/search?"+q.Encode(), nil)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("User-Agent", r.userAgent)

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode: nominatim: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Coordinate{}, fmt.Errorf("geocode: nominatim status %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode: decode response: %w", err)
	}
	if len(results) == 0 {
		return models.Coordinate{}, fmt.Errorf("%w: %q", ErrNotResolved, place)
	}

	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode: bad latitude %q: %w", results[0].Lat, err)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return models.Coordinate{}, fmt.Errorf("geocode: bad longitude %q: %w", results[0].Lon, err)
	}
	return models.Coordinate{Lat: lat, Lon: lon}, nil
}
