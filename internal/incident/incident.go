// Package incident aggregates road obstruction reports for an
// evacuation corridor. State DOT feeds cover their own jurisdictions;
// an Overpass query over the corridor box is the universal fallback.
// Collection is best effort: a dead feed degrades coverage, never the
// request.
package incident

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"evacroute/internal/cache"
	"evacroute/internal/geo"
	"evacroute/internal/models"
)

// Request describes the corridor a collection run covers.
type Request struct {
	BBox        geo.BBox
	OriginPlace string
	StateHint   string
}

// Feed is one source of road incidents.
type Feed interface {
	// Name identifies the feed in logs and cache keys.
	Name() string
	// Matches reports whether the feed covers the given two-letter
	// state code. Feeds that cover everywhere return true for "".
	Matches(state string) bool
	// TTL is how long the feed's results stay fresh.
	TTL() time.Duration
	Fetch(ctx context.Context, req Request) ([]models.RoadIncident, error)
}

// Aggregator fans a collection request out to every matching feed.
type Aggregator struct {
	feeds   []Feed
	results *cache.Cache[[]models.RoadIncident]
	logger  *slog.Logger
}

// NewAggregator builds an empty aggregator. Register feeds before
// collecting.
func NewAggregator(logger *slog.Logger) *Aggregator {
	return &Aggregator{
		results: cache.New[[]models.RoadIncident](2*time.Minute, time.Minute),
		logger:  logger,
	}
}

// Register adds a feed to the aggregator.
func (a *Aggregator) Register(f Feed) {
	a.feeds = append(a.feeds, f)
}

// Close releases the aggregator's cache resources.
func (a *Aggregator) Close() { a.results.Close() }

// Collect gathers incidents from every feed matching the request's
// state hint. Feed failures are logged and skipped; Collect itself
// never fails.
func (a *Aggregator) Collect(ctx context.Context, req Request) []models.RoadIncident {
	var out []models.RoadIncident
	for _, feed := range a.feeds {
		if !feed.Matches(req.StateHint) {
			continue
		}

		key := fmt.Sprintf("%s|%.2f,%.2f,%.2f,%.2f|%s", feed.Name(),
			req.BBox.South, req.BBox.West, req.BBox.North, req.BBox.East, req.StateHint)
		if cached, ok := a.results.Get(key); ok {
			out = append(out, cached...)
			continue
		}

		incidents, err := feed.Fetch(ctx, req)
		if err != nil {
			a.logger.Warn("incident feed failed",
				"feed", feed.Name(), "error", err)
			continue
		}
		a.results.SetTTL(key, incidents, feed.TTL())
		out = append(out, incidents...)
	}
	return out
}
