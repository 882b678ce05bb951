package incident

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/MobilityData/gtfs-realtime-bindings/golang/gtfs"
	"google.golang.org/protobuf/proto"

	"evacroute/internal/models"
)

// GTFSRT surfaces transit agency service alerts from a GTFS-realtime
// feed as road incidents, so a corridor through a disrupted transit
// network shows the disruption alongside DOT reports.
type GTFSRT struct {
	feedURL    string
	state      string
	ttl        time.Duration
	httpClient *http.Client
}

// NewGTFSRT builds an alert feed for one agency with the given cache
// TTL. state scopes it to the jurisdiction the agency operates in.
func NewGTFSRT(feedURL, state string, ttl time.Duration) *GTFSRT {
	return &GTFSRT{
		feedURL:    feedURL,
		state:      state,
		ttl:        ttl,
		httpClient: &http.Client{Timeout: 15 * time.Second},
	}
}

func (g *GTFSRT) Name() string { return "gtfs-rt" }

func (g *GTFSRT) Matches(state string) bool { return state == g.state }

func (g *GTFSRT) TTL() time.Duration { return g.ttl }

// Fetch implements Feed.
func (g *GTFSRT) Fetch(ctx context.Context, req Request) ([]models.RoadIncident, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("gtfs-rt: build request: %w", err)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("gtfs-rt: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("gtfs-rt: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("gtfs-rt: read body: %w", err)
	}

	var feed gtfs.FeedMessage
	if err := proto.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("gtfs-rt: unmarshal: %w", err)
	}

	var out []models.RoadIncident
	for _, entity := range feed.GetEntity() {
		alert := entity.GetAlert()
		if alert == nil {
			continue
		}
		title := translatedText(alert.GetHeaderText())
		if title == "" {
			continue
		}
		out = append(out, models.RoadIncident{
			Title:    title,
			Status:   translatedText(alert.GetDescriptionText()),
			Severity: alert.GetEffect().String(),
			Source:   "gtfs-rt",
		})
	}
	return out, nil
}

// translatedText picks the English translation when present, falling
// back to the first one in the message.
func translatedText(ts *gtfs.TranslatedString) string {
	if ts == nil {
		return ""
	}
	translations := ts.GetTranslation()
	for _, t := range translations {
		if t.GetLanguage() == "en" {
			return t.GetText()
		}
	}
	if len(translations) > 0 {
		return translations[0].GetText()
	}
	return ""
}
