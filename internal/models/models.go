// Package models defines the shared data types for the evacuation
// route engine. Everything here is built once per request and never
// mutated afterwards; caches may share values across requests.
package models

// Coordinate is a WGS-84 lat/lon pair.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// RouteSegment is the result of one point-to-point routing call.
// Estimated is true when the segment came from the fallback estimator
// rather than a live routing engine.
type RouteSegment struct {
	DistanceMi  float64      `json:"distance_mi"`
	DurationMin float64      `json:"duration_min"`
	Geometry    []Coordinate `json:"geometry"`
	Steps       []string     `json:"steps,omitempty"`
	Estimated   bool         `json:"estimated"`
}

// StopCategory classifies a transit stop.
type StopCategory string

const (
	CategoryRail           StopCategory = "Rail"
	CategoryTram           StopCategory = "Tram"
	CategoryBusStation     StopCategory = "Bus Station"
	CategoryPlatform       StopCategory = "Platform"
	CategoryBus            StopCategory = "Bus"
	CategoryIntercityCoach StopCategory = "Intercity Coach"
)

// TransitStop is a named stop discovered near a point.
type TransitStop struct {
	Name       string       `json:"name"`
	Coordinate Coordinate   `json:"coordinate"`
	Category   StopCategory `json:"category"`
	Operator   string       `json:"operator,omitempty"`
	Ref        string       `json:"ref,omitempty"`
}

// LegMode is the travel mode of a single itinerary leg.
type LegMode string

const (
	ModeWalk  LegMode = "walk"
	ModeDrive LegMode = "drive"
	ModeRide  LegMode = "ride"
	ModeCoach LegMode = "coach"
)

// Leg is one mode-homogeneous segment of a plan. Ride and Coach leg
// durations already include their boarding buffer.
type Leg struct {
	Mode        LegMode      `json:"mode"`
	Label       string       `json:"label"`
	DurationMin float64      `json:"duration_min"`
	DistanceMi  float64      `json:"distance_mi"`
	Geometry    []Coordinate `json:"geometry"`
	StopName    string       `json:"stop_name,omitempty"`
	Estimated   bool         `json:"estimated"`
}

// Badge is a ranking label attached to at most one plan per category.
type Badge string

const (
	BadgeFastest         Badge = "Fastest"
	BadgeFewestTransfers Badge = "Fewest transfers"
	BadgeMostWalking     Badge = "Most walking"
)

// Plan is an ordered sequence of legs from origin to destination.
// TotalMinutes and TotalDistanceMi are the sums over the legs.
type Plan struct {
	Label           string  `json:"label"`
	Tag             string  `json:"tag"`
	Legs            []Leg   `json:"legs"`
	TotalMinutes    float64 `json:"total_minutes"`
	TotalDistanceMi float64 `json:"total_distance_mi"`
	TransferCount   int     `json:"transfer_count"`
	Badge           Badge   `json:"badge,omitempty"`
}

// HazardSite is an input hazard (e.g. an active fire detection).
type HazardSite struct {
	Name       string     `json:"name"`
	Coordinate Coordinate `json:"coordinate"`
	Acres      float64    `json:"acres,omitempty"`
}

// HazardHit is a hazard found within the corridor buffer.
type HazardHit struct {
	Name          string     `json:"name"`
	Coordinate    Coordinate `json:"coordinate"`
	Acres         float64    `json:"acres,omitempty"`
	MinDistanceMi float64    `json:"min_distance_mi"`
}

// RoadIncident is a closure, construction zone, or crash reported by a
// jurisdiction feed or the universal fallback. Lat/Lon of zero means
// the feed did not supply a location.
type RoadIncident struct {
	Title    string  `json:"title"`
	Road     string  `json:"road,omitempty"`
	Severity string  `json:"severity,omitempty"`
	Status   string  `json:"status,omitempty"`
	Lat      float64 `json:"lat,omitempty"`
	Lon      float64 `json:"lon,omitempty"`
	Source   string  `json:"source"`
}

// IntercityTerminal is a long-distance coach terminal near the origin.
type IntercityTerminal struct {
	City       string     `json:"city"`
	Coordinate Coordinate `json:"coordinate"`
	Carriers   []string   `json:"carriers"`
	Address    string     `json:"address,omitempty"`
	DistanceMi float64    `json:"distance_mi"`
}

// Degraded flags which data sources produced usable results, so a
// presentation layer can warn without blocking the response.
type Degraded struct {
	LiveRouting    bool `json:"live_routing"`
	StopsFound     bool `json:"stops_found"`
	IncidentsFound bool `json:"incidents_found"`
	HazardsChecked bool `json:"hazards_checked"`
}

// Bundle is the full read-only result of one planning request.
type Bundle struct {
	RequestID        string              `json:"request_id"`
	Origin           string              `json:"origin"`
	Destination      string              `json:"destination"`
	OriginCoord      Coordinate          `json:"origin_coord"`
	DestCoord        Coordinate          `json:"dest_coord"`
	StraightLineMi   float64             `json:"straight_line_mi"`
	BearingDeg       float64             `json:"bearing_deg"`
	BearingCardinal  string              `json:"bearing_cardinal"`
	Plans            []Plan              `json:"plans"`
	HazardHits       []HazardHit         `json:"hazard_hits"`
	RoadIncidents    []RoadIncident      `json:"road_incidents"`
	OriginStops      []TransitStop       `json:"origin_stops"`
	DestStops        []TransitStop       `json:"dest_stops"`
	IntercityOptions []IntercityTerminal `json:"intercity_terminals"`
	Degraded         Degraded            `json:"degraded"`
}
