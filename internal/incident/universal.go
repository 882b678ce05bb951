package incident

import (
	"context"
	"fmt"
	"time"

	"evacroute/internal/models"
	"evacroute/internal/overpass"
)

// Universal reports mapped road obstructions from OpenStreetMap:
// closed-access ways and construction zones inside the corridor box.
// It matches every jurisdiction, so feeds coverage where no state DOT
// feed exists.
type Universal struct {
	client *overpass.Client
	ttl    time.Duration
}

// NewUniversal builds the fallback feed over an Overpass client with
// the given cache TTL.
func NewUniversal(client *overpass.Client, ttl time.Duration) *Universal {
	return &Universal{client: client, ttl: ttl}
}

func (u *Universal) Name() string { return "overpass" }

func (u *Universal) Matches(string) bool { return true }

func (u *Universal) TTL() time.Duration { return u.ttl }

// Fetch implements Feed.
func (u *Universal) Fetch(ctx context.Context, req Request) ([]models.RoadIncident, error) {
	bb := req.BBox
	ql := fmt.Sprintf(`[out:json][timeout:25];
(
  way(%f,%f,%f,%f)["highway"]["access"="no"];
  way(%f,%f,%f,%f)["highway"="construction"];
  node(%f,%f,%f,%f)["highway"="construction"];
);
out center 80;`,
		bb.South, bb.West, bb.North, bb.East,
		bb.South, bb.West, bb.North, bb.East,
		bb.South, bb.West, bb.North, bb.East)

	features, err := u.client.Query(ctx, ql)
	if err != nil {
		return nil, fmt.Errorf("universal: %w", err)
	}

	out := make([]models.RoadIncident, 0, len(features))
	for _, f := range features {
		title, status := "Road closed to traffic", "closed"
		if f.Tag("highway") == "construction" {
			title, status = "Construction zone", "construction"
		}
		road := f.Tag("name")
		if road == "" {
			road = f.Tag("ref")
		}
		out = append(out, models.RoadIncident{
			Title:  title,
			Road:   road,
			Status: status,
			Lat:    f.Lat,
			Lon:    f.Lon,
			Source: "overpass",
		})
	}
	return out, nil
}
