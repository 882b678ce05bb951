// Package handlers implements the HTTP endpoints. Handlers depend on
// small interfaces so tests can drop in fakes.
package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"evacroute/internal/engine"
	"evacroute/internal/geocode"
	"evacroute/internal/models"
)

// Handler serves the public API.
type Handler struct {
	planner  Planner
	stops    StopFinder
	geocoder Geocoder
	logger   *slog.Logger
	maxBody  int64
}

// New builds a handler set.
func New(planner Planner, stops StopFinder, geocoder Geocoder, maxBody int64, logger *slog.Logger) *Handler {
	return &Handler{
		planner:  planner,
		stops:    stops,
		geocoder: geocoder,
		logger:   logger,
		maxBody:  maxBody,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]any{"error": msg})
}

type hazardSiteBody struct {
	Name  string  `json:"name"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Acres float64 `json:"acres"`
}

type planBody struct {
	Origin         string           `json:"origin"`
	Destination    string           `json:"destination"`
	Hazards        []hazardSiteBody `json:"hazards"`
	HazardBufferMi float64          `json:"hazard_buffer_mi"`
}

// Plan handles POST /api/plan.
func (h *Handler) Plan(w http.ResponseWriter, r *http.Request) {
	var body planBody
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBody)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if body.Origin == "" || body.Destination == "" {
		writeError(w, http.StatusBadRequest, "origin and destination are required")
		return
	}

	sites := make([]models.HazardSite, 0, len(body.Hazards))
	for _, s := range body.Hazards {
		sites = append(sites, models.HazardSite{
			Name:       s.Name,
			Coordinate: models.Coordinate{Lat: s.Lat, Lon: s.Lon},
			Acres:      s.Acres,
		})
	}

	bundle, err := h.planner.Plan(r.Context(), engine.Request{
		Origin:         body.Origin,
		Destination:    body.Destination,
		Hazards:        sites,
		HazardBufferMi: body.HazardBufferMi,
	})
	if err != nil {
		if errors.Is(err, geocode.ErrNotResolved) {
			writeError(w, http.StatusNotFound, err.Error())
			return
		}
		h.logger.Error("plan failed", "error", err)
		writeError(w, http.StatusBadGateway, "planning failed")
		return
	}
	writeJSON(w, http.StatusOK, bundle)
}

// Stops handles GET /api/stops.
func (h *Handler) Stops(w http.ResponseWriter, r *http.Request) {
	lat, ok1 := parseFloatParam(r, "lat", -90, 90)
	lon, ok2 := parseFloatParam(r, "lon", -180, 180)
	if !ok1 || !ok2 {
		writeError(w, http.StatusBadRequest, "lat and lon are required")
		return
	}

	stops, err := h.stops.Near(r.Context(), models.Coordinate{Lat: lat, Lon: lon})
	if err != nil {
		h.logger.Error("stop lookup failed", "error", err)
		writeError(w, http.StatusBadGateway, "stop lookup failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"stops": stops,
		"count": len(stops),
	})
}

// Geocode handles GET /api/geocode.
func (h *Handler) Geocode(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	if q == "" {
		writeError(w, http.StatusBadRequest, "q is required")
		return
	}

	coord, err := h.geocoder.Resolve(r.Context(), q)
	if err != nil {
		if errors.Is(err, geocode.ErrNotResolved) {
			writeError(w, http.StatusNotFound, "place not found")
			return
		}
		h.logger.Error("geocode failed", "error", err)
		writeError(w, http.StatusBadGateway, "geocoding failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"query": q, "coordinate": coord})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"status": "ok"})
}

// Root handles GET /.
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		writeError(w, http.StatusNotFound, "not found")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "evacroute",
		"endpoints": []string{
			"POST /api/plan",
			"GET /api/stops?lat=&lon=",
			"GET /api/geocode?q=",
			"GET /health",
		},
	})
}

// parseFloatParam reads a float query parameter and clamps validation
// to the given range.
func parseFloatParam(r *http.Request, name string, min, max float64) (float64, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || v < min || v > max {
		return 0, false
	}
	return v, true
}
