// Package api assembles the HTTP surface: routes plus the middleware
// chain.
package api

import (
	"log/slog"
	"net/http"
	"time"

	"evacroute/internal/api/handlers"
)

// NewRouter wires the endpoints and wraps them in the standard
// middleware chain.
func NewRouter(h *handlers.Handler, logger *slog.Logger, timeout time.Duration) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/plan", h.Plan)
	mux.HandleFunc("GET /api/stops", h.Stops)
	mux.HandleFunc("GET /api/geocode", h.Geocode)
	mux.HandleFunc("GET /health", h.Health)
	mux.HandleFunc("GET /", h.Root)

	return Chain(mux,
		RequestID,
		Recovery(logger),
		Logging(logger),
		CORS,
		Timeout(timeout),
	)
}
