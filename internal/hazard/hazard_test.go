package hazard

import (
	"testing"

	"evacroute/internal/geo"
	"evacroute/internal/models"
)

var (
	raleigh   = models.Coordinate{Lat: 35.7796, Lon: -78.6382}
	charlotte = models.Coordinate{Lat: 35.2271, Lon: -80.8431}
)

func TestScanFiltersByBuffer(t *testing.T) {
	mid := geo.Lerp(raleigh, charlotte, 0.5)
	sites := []models.HazardSite{
		{Name: "Midline Fire", Coordinate: models.Coordinate{Lat: mid.Lat + 0.05, Lon: mid.Lon}, Acres: 1200},
		{Name: "Remote Fire", Coordinate: models.Coordinate{Lat: 44.0, Lon: -110.0}, Acres: 90000},
		{Name: "Origin Fire", Coordinate: models.Coordinate{Lat: raleigh.Lat + 0.1, Lon: raleigh.Lon}, Acres: 300},
	}

	hits := NewScanner(20).Scan(raleigh, charlotte, sites)
	if len(hits) != 2 {
		t.Fatalf("got %d hits, want 2", len(hits))
	}
	// Sorted nearest first.
	if hits[0].MinDistanceMi > hits[1].MinDistanceMi {
		t.Errorf("hits out of order: %v then %v", hits[0].MinDistanceMi, hits[1].MinDistanceMi)
	}
	for _, h := range hits {
		if h.Name == "Remote Fire" {
			t.Error("site far off corridor should be excluded")
		}
		if h.MinDistanceMi > 20 {
			t.Errorf("%s at %v mi exceeds buffer", h.Name, h.MinDistanceMi)
		}
	}
}

func TestScanBufferEdgeInclusive(t *testing.T) {
	site := models.HazardSite{Name: "Edge Fire", Coordinate: models.Coordinate{Lat: raleigh.Lat + 0.2, Lon: raleigh.Lon}}
	dist := geo.Haversine(raleigh, site.Coordinate)

	hits := NewScanner(dist).Scan(raleigh, raleigh, []models.HazardSite{site})
	if len(hits) != 1 {
		t.Fatalf("site exactly at the buffer should be included, got %d hits", len(hits))
	}
	if hits[0].MinDistanceMi != dist {
		t.Errorf("min distance = %v, want %v", hits[0].MinDistanceMi, dist)
	}
}

func TestScanDedupesNames(t *testing.T) {
	near := models.Coordinate{Lat: raleigh.Lat + 0.05, Lon: raleigh.Lon}
	nearer := models.Coordinate{Lat: raleigh.Lat + 0.01, Lon: raleigh.Lon}
	sites := []models.HazardSite{
		{Name: "Twin Fire", Coordinate: near, Acres: 100},
		{Name: "Twin Fire", Coordinate: nearer, Acres: 200},
	}

	hits := NewScanner(20).Scan(raleigh, charlotte, sites)
	if len(hits) != 1 {
		t.Fatalf("got %d hits, want 1", len(hits))
	}
	if hits[0].Acres != 100 {
		t.Errorf("first occurrence should win, got acres %v", hits[0].Acres)
	}
}

func TestScanNoSites(t *testing.T) {
	if hits := NewScanner(20).Scan(raleigh, charlotte, nil); len(hits) != 0 {
		t.Errorf("got %d hits from empty input", len(hits))
	}
}

func TestScanMidCorridorOnlySite(t *testing.T) {
	// A site near the corridor midpoint but more than the buffer from
	// either endpoint is still caught by the interior samples.
	mid := geo.Lerp(raleigh, charlotte, 0.5)
	site := models.HazardSite{Name: "Interior Fire", Coordinate: mid}

	if d := geo.Haversine(raleigh, mid); d <= 20 {
		t.Skipf("test corridor too short: %v mi", d)
	}
	hits := NewScanner(20).Scan(raleigh, charlotte, []models.HazardSite{site})
	if len(hits) != 1 {
		t.Fatalf("interior sample should catch the site, got %d hits", len(hits))
	}
}
