// Package engine ties the resolvers, providers, and planner together
// into a single Plan call. Independent network lookups run
// concurrently; only a failure to resolve the endpoints aborts a
// request.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"evacroute/internal/geo"
	"evacroute/internal/geocode"
	"evacroute/internal/hazard"
	"evacroute/internal/incident"
	"evacroute/internal/models"
	"evacroute/internal/planner"
	"evacroute/internal/routing"
	"evacroute/internal/transit"
)

// nearTerminals is how many directory terminals to consider before
// merging in discovered coach stops.
const nearTerminals = 5

// bboxPadDeg pads the corridor box for incident collection.
const bboxPadDeg = 0.25

// Engine runs evacuation planning requests.
type Engine struct {
	resolver  *geocode.Resolver
	router    *routing.Service
	stops     *transit.StopIndex
	hazards   *hazard.Scanner
	incidents *incident.Aggregator
	synth     *planner.Synthesizer
	logger    *slog.Logger
}

// New wires an engine from its services.
func New(resolver *geocode.Resolver, router *routing.Service, stops *transit.StopIndex,
	hazards *hazard.Scanner, incidents *incident.Aggregator, params planner.Params,
	logger *slog.Logger) *Engine {
	return &Engine{
		resolver:  resolver,
		router:    router,
		stops:     stops,
		hazards:   hazards,
		incidents: incidents,
		synth:     planner.NewSynthesizer(params),
		logger:    logger,
	}
}

// Request is one planning request. Hazards are caller-supplied sites
// to screen the corridor against; HazardBufferMi overrides the default
// corridor buffer when positive.
type Request struct {
	Origin         string
	Destination    string
	Hazards        []models.HazardSite
	HazardBufferMi float64
}

// Plan resolves the endpoints, gathers corridor data, and returns the
// ranked itinerary bundle. Data-source failures degrade the bundle
// rather than failing the call.
func (e *Engine) Plan(ctx context.Context, req Request) (*models.Bundle, error) {
	origin, err := e.resolver.Resolve(ctx, req.Origin)
	if err != nil {
		return nil, fmt.Errorf("resolve origin: %w", err)
	}
	dest, err := e.resolver.Resolve(ctx, req.Destination)
	if err != nil {
		return nil, fmt.Errorf("resolve destination: %w", err)
	}

	var (
		wg                   sync.WaitGroup
		originStops          []models.TransitStop
		destStops            []models.TransitStop
		walkSeg, driveSeg    models.RouteSegment
		roadIncidents        []models.RoadIncident
		oStopsErr, dStopsErr error
	)

	wg.Add(5)
	go func() {
		defer wg.Done()
		originStops, oStopsErr = e.stops.Near(ctx, origin)
	}()
	go func() {
		defer wg.Done()
		destStops, dStopsErr = e.stops.Near(ctx, dest)
	}()
	go func() {
		defer wg.Done()
		walkSeg = e.router.Fetch(ctx, routing.ProfileWalk, origin, dest)
	}()
	go func() {
		defer wg.Done()
		driveSeg = e.router.Fetch(ctx, routing.ProfileDrive, origin, dest)
	}()
	go func() {
		defer wg.Done()
		roadIncidents = e.incidents.Collect(ctx, incident.Request{
			BBox:        geo.NewBBox(origin, dest, bboxPadDeg),
			OriginPlace: req.Origin,
			StateHint:   e.resolver.StateHint(req.Origin),
		})
	}()
	wg.Wait()

	if oStopsErr != nil {
		e.logger.Warn("origin stop lookup failed", "error", oStopsErr)
	}
	if dStopsErr != nil {
		e.logger.Warn("destination stop lookup failed", "error", dStopsErr)
	}

	terminals := transit.MergeCoachStops(
		transit.NearestTerminals(origin, nearTerminals), originStops, origin)

	plans := planner.Rank(e.synth.Build(planner.Input{
		Origin:      origin,
		Dest:        dest,
		WalkSeg:     walkSeg,
		DriveSeg:    driveSeg,
		OriginStops: originStops,
		DestStops:   destStops,
		Terminals:   terminals,
	}))

	scanner := e.hazards
	if req.HazardBufferMi > 0 {
		scanner = hazard.NewScanner(req.HazardBufferMi)
	}
	hits := scanner.Scan(origin, dest, req.Hazards)
	bearing := geo.Bearing(origin, dest)

	return &models.Bundle{
		RequestID:        uuid.NewString(),
		Origin:           req.Origin,
		Destination:      req.Destination,
		OriginCoord:      origin,
		DestCoord:        dest,
		StraightLineMi:   geo.Haversine(origin, dest),
		BearingDeg:       bearing,
		BearingCardinal:  geo.Cardinal(bearing),
		Plans:            plans,
		HazardHits:       hits,
		RoadIncidents:    roadIncidents,
		OriginStops:      originStops,
		DestStops:        destStops,
		IntercityOptions: terminals,
		Degraded: models.Degraded{
			LiveRouting:    !driveSeg.Estimated || !walkSeg.Estimated,
			StopsFound:     len(originStops)+len(destStops) > 0,
			IncidentsFound: len(roadIncidents) > 0,
			HazardsChecked: len(req.Hazards) > 0,
		},
	}, nil
}
