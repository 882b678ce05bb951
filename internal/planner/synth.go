package planner

import (
	"fmt"

	"evacroute/internal/geo"
	"evacroute/internal/models"
	"evacroute/internal/transit"
)

// Input carries everything synthesis needs for one request. WalkSeg
// and DriveSeg are the full origin-to-destination segments, routed or
// estimated.
type Input struct {
	Origin models.Coordinate
	Dest   models.Coordinate

	WalkSeg  models.RouteSegment
	DriveSeg models.RouteSegment

	OriginStops []models.TransitStop
	DestStops   []models.TransitStop
	Terminals   []models.IntercityTerminal
}

// Synthesizer builds the itinerary catalogue from an Input.
type Synthesizer struct {
	params Params
}

// NewSynthesizer builds a synthesizer with the given assumptions.
func NewSynthesizer(params Params) *Synthesizer {
	return &Synthesizer{params: params}
}

// Build returns every itinerary the inputs support, in catalogue
// order. Plans whose required stops are missing are skipped, so a
// corridor with no transit still yields the walk and drive plans.
func (s *Synthesizer) Build(in Input) []models.Plan {
	plans := []models.Plan{
		s.walkPlan(in),
		s.drivePlan(in),
	}
	if p, ok := s.walkRideWalk(in, "Walk, rail, walk", "walk-rail-walk",
		s.params.RailSpeedMph, models.CategoryRail); ok {
		plans = append(plans, p)
	}
	if p, ok := s.walkRideWalk(in, "Walk, bus, walk", "walk-bus-walk",
		s.params.BusSpeedMph, models.CategoryBus, models.CategoryBusStation); ok {
		plans = append(plans, p)
	}
	if p, ok := s.driveRideWalk(in); ok {
		plans = append(plans, p)
	}
	if p, ok := s.railThenBus(in); ok {
		plans = append(plans, p)
	}
	if p, ok := s.intercityCoach(in); ok {
		plans = append(plans, p)
	}
	return plans
}

func (s *Synthesizer) walkPlan(in Input) models.Plan {
	leg := models.Leg{
		Mode:        models.ModeWalk,
		Label:       "Walk the full route",
		DurationMin: in.WalkSeg.DurationMin,
		DistanceMi:  in.WalkSeg.DistanceMi,
		Geometry:    in.WalkSeg.Geometry,
		Estimated:   in.WalkSeg.Estimated,
	}
	return finishPlan("Walk", "walk", []models.Leg{leg})
}

func (s *Synthesizer) drivePlan(in Input) models.Plan {
	leg := models.Leg{
		Mode:        models.ModeDrive,
		Label:       "Drive the full route",
		DurationMin: in.DriveSeg.DurationMin,
		DistanceMi:  in.DriveSeg.DistanceMi,
		Geometry:    in.DriveSeg.Geometry,
		Estimated:   in.DriveSeg.Estimated,
	}
	return finishPlan("Drive", "drive", []models.Leg{leg})
}

func (s *Synthesizer) walkRideWalk(in Input, label, tag string, rideMph float64, cats ...models.StopCategory) (models.Plan, bool) {
	board := transit.NearestOfCategory(in.OriginStops, in.Origin, cats...)
	alight := transit.NearestOfCategory(in.DestStops, in.Dest, cats...)
	if board == nil || alight == nil {
		return models.Plan{}, false
	}

	var legs []models.Leg
	legs = s.appendWalkLeg(legs, in.Origin, board.Coordinate,
		"Walk to "+board.Name)
	legs = append(legs, s.rideLeg(board, alight, rideMph, s.params.LocalBoardMin))
	legs = s.appendWalkLeg(legs, alight.Coordinate, in.Dest,
		"Walk from "+alight.Name)
	return finishPlan(label, tag, legs), true
}

// hubPriority orders stop categories by how useful they are as a
// park-and-ride point.
var hubPriority = []models.StopCategory{
	models.CategoryRail,
	models.CategoryBusStation,
	models.CategoryTram,
	models.CategoryBus,
}

// firstByPriority returns the nearest stop of the highest-priority
// category present, or nil when none of the priority categories is.
func firstByPriority(stops []models.TransitStop, from models.Coordinate) *models.TransitStop {
	for _, cat := range hubPriority {
		if s := transit.NearestOfCategory(stops, from, cat); s != nil {
			return s
		}
	}
	return nil
}

func (s *Synthesizer) driveRideWalk(in Input) (models.Plan, bool) {
	hub := firstByPriority(in.OriginStops, in.Origin)
	if hub == nil {
		return models.Plan{}, false
	}

	// Prefer alighting at a stop of the hub's own category, otherwise
	// the best ride-able category near the destination. Platforms and
	// coach points never serve this pattern.
	alight := transit.NearestOfCategory(in.DestStops, in.Dest, hub.Category)
	if alight == nil {
		alight = firstByPriority(in.DestStops, in.Dest)
	}
	if alight == nil {
		return models.Plan{}, false
	}

	driveDist := geo.Haversine(in.Origin, hub.Coordinate)
	legs := []models.Leg{{
		Mode:        models.ModeDrive,
		Label:       "Drive to " + hub.Name,
		DurationMin: driveDist / s.params.HubDriveSpeedMph * 60,
		DistanceMi:  driveDist,
		Geometry:    []models.Coordinate{in.Origin, hub.Coordinate},
		StopName:    hub.Name,
		Estimated:   true,
	}}
	legs = append(legs, s.rideLeg(hub, alight, s.rideSpeedFor(hub.Category), s.params.LocalBoardMin))
	legs = s.appendWalkLeg(legs, alight.Coordinate, in.Dest,
		"Walk from "+alight.Name)
	return finishPlan("Drive to transit", "drive-ride-walk", legs), true
}

func (s *Synthesizer) railThenBus(in Input) (models.Plan, bool) {
	oRail := transit.NearestOfCategory(in.OriginStops, in.Origin, models.CategoryRail)
	dRail := transit.NearestOfCategory(in.DestStops, in.Dest, models.CategoryRail)
	dBus := transit.NearestOfCategory(in.DestStops, in.Dest,
		models.CategoryBus, models.CategoryBusStation)
	if oRail == nil || dRail == nil || dBus == nil {
		return models.Plan{}, false
	}

	midBus := transit.NearestOfCategory(in.DestStops, dRail.Coordinate,
		models.CategoryBus, models.CategoryBusStation)
	if midBus == nil || midBus.Name == dBus.Name {
		return models.Plan{}, false
	}

	var legs []models.Leg
	legs = s.appendWalkLeg(legs, in.Origin, oRail.Coordinate,
		"Walk to "+oRail.Name)
	legs = append(legs, s.rideLeg(oRail, dRail, s.params.RailSpeedMph, s.params.LocalBoardMin))
	legs = s.appendWalkLeg(legs, dRail.Coordinate, midBus.Coordinate,
		"Walk to "+midBus.Name)
	legs = append(legs, s.rideLeg(midBus, dBus, s.params.BusSpeedMph, s.params.LocalBoardMin))
	legs = s.appendWalkLeg(legs, dBus.Coordinate, in.Dest,
		"Walk from "+dBus.Name)
	return finishPlan("Rail with bus transfer", "rail-bus", legs), true
}

func (s *Synthesizer) intercityCoach(in Input) (models.Plan, bool) {
	if len(in.Terminals) == 0 {
		return models.Plan{}, false
	}
	term := in.Terminals[0]

	driveDist := geo.Haversine(in.Origin, term.Coordinate)
	coachDist := geo.Haversine(term.Coordinate, in.Dest)
	legs := []models.Leg{
		{
			Mode:        models.ModeDrive,
			Label:       "Drive to " + term.City + " terminal",
			DurationMin: driveDist / s.params.HubDriveSpeedMph * 60,
			DistanceMi:  driveDist,
			Geometry:    []models.Coordinate{in.Origin, term.Coordinate},
			StopName:    term.City,
			Estimated:   true,
		},
		{
			Mode:        models.ModeCoach,
			Label:       fmt.Sprintf("Coach from %s", term.City),
			DurationMin: coachDist/s.params.CoachSpeedMph*60 + s.params.IntercityBoardMin,
			DistanceMi:  coachDist,
			Geometry:    []models.Coordinate{term.Coordinate, in.Dest},
			StopName:    term.City,
			Estimated:   true,
		},
	}
	return finishPlan("Intercity coach", "intercity-coach", legs), true
}

func (s *Synthesizer) rideSpeedFor(cat models.StopCategory) float64 {
	switch cat {
	case models.CategoryRail:
		return s.params.RailSpeedMph
	case models.CategoryTram:
		return s.params.TramSpeedMph
	default:
		return s.params.BusSpeedMph
	}
}

func (s *Synthesizer) rideLeg(board, alight *models.TransitStop, mph, boardMin float64) models.Leg {
	dist := geo.Haversine(board.Coordinate, alight.Coordinate)
	return models.Leg{
		Mode:        models.ModeRide,
		Label:       fmt.Sprintf("Ride %s to %s", board.Name, alight.Name),
		DurationMin: dist/mph*60 + boardMin,
		DistanceMi:  dist,
		Geometry:    []models.Coordinate{board.Coordinate, alight.Coordinate},
		StopName:    board.Name,
		Estimated:   true,
	}
}

// appendWalkLeg adds a straight-line walk leg unless it is too short
// to matter.
func (s *Synthesizer) appendWalkLeg(legs []models.Leg, from, to models.Coordinate, label string) []models.Leg {
	dist := geo.Haversine(from, to)
	dur := dist / s.params.WalkSpeedMph * 60
	if dur <= s.params.MinWalkLegMin {
		return legs
	}
	return append(legs, models.Leg{
		Mode:        models.ModeWalk,
		Label:       label,
		DurationMin: dur,
		DistanceMi:  dist,
		Geometry:    []models.Coordinate{from, to},
		Estimated:   true,
	})
}

func finishPlan(label, tag string, legs []models.Leg) models.Plan {
	var minutes, miles float64
	for _, l := range legs {
		minutes += l.DurationMin
		miles += l.DistanceMi
	}
	transfers := len(legs) - 1
	if transfers < 0 {
		transfers = 0
	}
	return models.Plan{
		Label:           label,
		Tag:             tag,
		Legs:            legs,
		TotalMinutes:    minutes,
		TotalDistanceMi: miles,
		TransferCount:   transfers,
	}
}
