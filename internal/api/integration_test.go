package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"evacroute/internal/api/handlers"
	"evacroute/internal/engine"
	"evacroute/internal/geocode"
	"evacroute/internal/models"
)

type mockPlanner struct {
	bundle *models.Bundle
	err    error
}

func (m *mockPlanner) Plan(ctx context.Context, req engine.Request) (*models.Bundle, error) {
	if m.err != nil {
		return nil, m.err
	}
	b := *m.bundle
	b.Origin = req.Origin
	b.Destination = req.Destination
	return &b, nil
}

type mockStops struct {
	stops []models.TransitStop
	err   error
}

func (m *mockStops) Near(ctx context.Context, c models.Coordinate) ([]models.TransitStop, error) {
	return m.stops, m.err
}

type mockGeocoder struct {
	coord models.Coordinate
	err   error
}

func (m *mockGeocoder) Resolve(ctx context.Context, place string) (models.Coordinate, error) {
	return m.coord, m.err
}

func sampleBundle() *models.Bundle {
	return &models.Bundle{
		RequestID:       "test-id",
		OriginCoord:     models.Coordinate{Lat: 35.7796, Lon: -78.6382},
		DestCoord:       models.Coordinate{Lat: 35.2271, Lon: -80.8431},
		StraightLineMi:  129.8,
		BearingCardinal: "SW",
		Plans: []models.Plan{
			{Label: "Drive", Tag: "drive", TotalMinutes: 170, Badge: models.BadgeFastest},
			{Label: "Walk", Tag: "walk", TotalMinutes: 2600},
		},
	}
}

func newTestServer(t *testing.T, p handlers.Planner, s handlers.StopFinder, g handlers.Geocoder) *httptest.Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := handlers.New(p, s, g, 1<<20, logger)
	srv := httptest.NewServer(NewRouter(h, logger, 5*time.Second))
	t.Cleanup(srv.Close)
	return srv
}

func decodeBody(t *testing.T, resp *http.Response) map[string]any {
	t.Helper()
	defer resp.Body.Close()
	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	return body
}

func assertStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		t.Fatalf("status = %d, want %d", resp.StatusCode, want)
	}
}

func TestPlanEndpoint(t *testing.T) {
	srv := newTestServer(t, &mockPlanner{bundle: sampleBundle()}, &mockStops{}, &mockGeocoder{})

	payload := `{"origin":"Raleigh, NC","destination":"Charlotte, NC",
		"hazards":[{"name":"Fire","lat":35.5,"lon":-79.7,"acres":900}]}`
	resp, err := http.Post(srv.URL+"/api/plan", "application/json", bytes.NewBufferString(payload))
	if err != nil {
		t.Fatal(err)
	}
	assertStatus(t, resp, http.StatusOK)
	if resp.Header.Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}

	body := decodeBody(t, resp)
	if body["origin"] != "Raleigh, NC" {
		t.Errorf("origin = %v", body["origin"])
	}
	plans, ok := body["plans"].([]any)
	if !ok || len(plans) != 2 {
		t.Fatalf("plans = %v", body["plans"])
	}
	first := plans[0].(map[string]any)
	if first["badge"] != "Fastest" {
		t.Errorf("first badge = %v", first["badge"])
	}
}

func TestPlanValidation(t *testing.T) {
	srv := newTestServer(t, &mockPlanner{bundle: sampleBundle()}, &mockStops{}, &mockGeocoder{})

	cases := []struct {
		name    string
		payload string
	}{
		{"missing destination", `{"origin":"Raleigh, NC"}`},
		{"missing origin", `{"destination":"Charlotte, NC"}`},
		{"malformed json", `{"origin":`},
	}
	for _, tc := range cases {
		resp, err := http.Post(srv.URL+"/api/plan", "application/json", bytes.NewBufferString(tc.payload))
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("%s: status = %d, want 400", tc.name, resp.StatusCode)
		}
	}
}

func TestPlanUnresolvedPlace(t *testing.T) {
	srv := newTestServer(t,
		&mockPlanner{err: fmt.Errorf("resolve origin: %w", geocode.ErrNotResolved)},
		&mockStops{}, &mockGeocoder{})

	resp, err := http.Post(srv.URL+"/api/plan", "application/json",
		bytes.NewBufferString(`{"origin":"Nowhere","destination":"Charlotte, NC"}`))
	if err != nil {
		t.Fatal(err)
	}
	assertStatus(t, resp, http.StatusNotFound)
	resp.Body.Close()
}

func TestStopsEndpoint(t *testing.T) {
	srv := newTestServer(t, &mockPlanner{bundle: sampleBundle()},
		&mockStops{stops: []models.TransitStop{
			{Name: "Union Station", Category: models.CategoryRail},
		}}, &mockGeocoder{})

	resp, err := http.Get(srv.URL + "/api/stops?lat=35.78&lon=-78.64")
	if err != nil {
		t.Fatal(err)
	}
	assertStatus(t, resp, http.StatusOK)
	body := decodeBody(t, resp)
	if body["count"] != float64(1) {
		t.Errorf("count = %v", body["count"])
	}
}

func TestStopsParamValidation(t *testing.T) {
	srv := newTestServer(t, &mockPlanner{bundle: sampleBundle()}, &mockStops{}, &mockGeocoder{})

	for _, q := range []string{"", "?lat=35.78", "?lat=91&lon=0", "?lat=abc&lon=-78.64"} {
		resp, err := http.Get(srv.URL + "/api/stops" + q)
		if err != nil {
			t.Fatal(err)
		}
		resp.Body.Close()
		if resp.StatusCode != http.StatusBadRequest {
			t.Errorf("query %q: status = %d, want 400", q, resp.StatusCode)
		}
	}
}

func TestGeocodeEndpoint(t *testing.T) {
	srv := newTestServer(t, &mockPlanner{bundle: sampleBundle()}, &mockStops{},
		&mockGeocoder{coord: models.Coordinate{Lat: 35.7796, Lon: -78.6382}})

	resp, err := http.Get(srv.URL + "/api/geocode?q=Raleigh")
	if err != nil {
		t.Fatal(err)
	}
	assertStatus(t, resp, http.StatusOK)
	body := decodeBody(t, resp)
	coord := body["coordinate"].(map[string]any)
	if coord["lat"] != 35.7796 {
		t.Errorf("lat = %v", coord["lat"])
	}
}

func TestGeocodeNotFound(t *testing.T) {
	srv := newTestServer(t, &mockPlanner{bundle: sampleBundle()}, &mockStops{},
		&mockGeocoder{err: geocode.ErrNotResolved})

	resp, err := http.Get(srv.URL + "/api/geocode?q=xyzzy")
	if err != nil {
		t.Fatal(err)
	}
	assertStatus(t, resp, http.StatusNotFound)
	resp.Body.Close()
}

func TestHealthAndRoot(t *testing.T) {
	srv := newTestServer(t, &mockPlanner{bundle: sampleBundle()}, &mockStops{}, &mockGeocoder{})

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatal(err)
	}
	assertStatus(t, resp, http.StatusOK)
	resp.Body.Close()

	resp, err = http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	assertStatus(t, resp, http.StatusOK)
	body := decodeBody(t, resp)
	if body["service"] != "evacroute" {
		t.Errorf("service = %v", body["service"])
	}

	resp, err = http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown path status = %d", resp.StatusCode)
	}
	resp.Body.Close()
}

func TestCORSPreflight(t *testing.T) {
	srv := newTestServer(t, &mockPlanner{bundle: sampleBundle()}, &mockStops{}, &mockGeocoder{})

	req, err := http.NewRequest(http.MethodOptions, srv.URL+"/api/plan", nil)
	if err != nil {
		t.Fatal(err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusNoContent {
		t.Errorf("preflight status = %d, want 204", resp.StatusCode)
	}
	if resp.Header.Get("Access-Control-Allow-Origin") != "*" {
		t.Error("missing CORS allow-origin header")
	}
}
