// Package overpass is a thin client for the Overpass OSM query API,
// with endpoint failover. Both the transit stop index and the
// universal road-obstruction feed sit on top of it.
package overpass

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Feature is one OSM element from a query result. Ways and relations
// report their center point as Lat/Lon.
type Feature struct {
	ID   int64
	Type string
	Lat  float64
	Lon  float64
	Tags map[string]string
}

// Tag returns the named tag or "".
func (f Feature) Tag(key string) string { return f.Tags[key] }

// Client queries Overpass, trying each configured endpoint in order
// until one answers.
type Client struct {
	endpoints  []string
	httpClient *http.Client
}

// NewClient builds a client over the given interpreter endpoints. At
// least one endpoint is required.
func NewClient(endpoints []string) *Client {
	return &Client{
		endpoints:  endpoints,
		httpClient: &http.Client{Timeout: 25 * time.Second},
	}
}

type overpassElement struct {
	ID     int64             `json:"id"`
	Type   string            `json:"type"`
	Lat    float64           `json:"lat"`
	Lon    float64           `json:"lon"`
	Center *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"center"`
	Tags map[string]string `json:"tags"`
}

type overpassResponse struct {
	Elements []overpassElement `json:"elements"`
}

// Query runs an Overpass QL statement and returns the elements that
// carry a usable location.
func (c *Client) Query(ctx context.Context, ql string) ([]Feature, error) {
	var lastErr error
	for _, endpoint := range c.endpoints {
		features, err := c.queryOne(ctx, endpoint, ql)
		if err == nil {
			return features, nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return nil, fmt.Errorf("overpass: all endpoints failed: %w", lastErr)
}

func (c *Client) queryOne(ctx context.Context, endpoint, ql string) ([]Feature, error) {
	body := url.Values{"data": {ql}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint,
		strings.NewReader(body.Encode()))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s: status %d", endpoint, resp.StatusCode)
	}

	var parsed overpassResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", endpoint, err)
	}

	features := make([]Feature, 0, len(parsed.Elements))
	for _, el := range parsed.Elements {
		lat, lon := el.Lat, el.Lon
		if el.Center != nil {
			lat, lon = el.Center.Lat, el.Center.Lon
		}
		if lat == 0 && lon == 0 {
			continue
		}
		features = append(features, Feature{
			ID:   el.ID,
			Type: el.Type,
			Lat:  lat,
			Lon:  lon,
			Tags: el.Tags,
		})
	}
	return features, nil
}
