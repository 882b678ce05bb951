package planner

import (
	"math"
	"testing"

	"github.com/kr/pretty"

	"evacroute/internal/geo"
	"evacroute/internal/models"
	"evacroute/internal/routing"
)

var (
	raleigh   = models.Coordinate{Lat: 35.7796, Lon: -78.6382}
	goldsboro = models.Coordinate{Lat: 35.3859, Lon: -77.9928}
)

func baseInput() Input {
	return Input{
		Origin:   raleigh,
		Dest:     goldsboro,
		WalkSeg:  routing.Estimate(routing.ProfileWalk, raleigh, goldsboro),
		DriveSeg: routing.Estimate(routing.ProfileDrive, raleigh, goldsboro),
	}
}

func stop(name string, cat models.StopCategory, lat, lon float64) models.TransitStop {
	return models.TransitStop{Name: name, Category: cat,
		Coordinate: models.Coordinate{Lat: lat, Lon: lon}}
}

func planByTag(t *testing.T, plans []models.Plan, tag string) models.Plan {
	t.Helper()
	for _, p := range plans {
		if p.Tag == tag {
			return p
		}
	}
	t.Fatalf("no plan tagged %q in %v", tag, tags(plans))
	return models.Plan{}
}

func tags(plans []models.Plan) []string {
	out := make([]string, len(plans))
	for i, p := range plans {
		out[i] = p.Tag
	}
	return out
}

func TestBuildAlwaysHasWalkAndDrive(t *testing.T) {
	plans := NewSynthesizer(DefaultParams()).Build(baseInput())
	if len(plans) != 2 {
		t.Fatalf("got %d plans without transit, want 2: %v", len(plans), tags(plans))
	}

	straight := geo.Haversine(raleigh, goldsboro)
	walk := planByTag(t, plans, "walk")
	wantWalkMin := straight * 1.2 / 3.5 * 60
	if math.Abs(walk.TotalMinutes-wantWalkMin) > 1e-9 {
		t.Errorf("walk total = %v, want %v", walk.TotalMinutes, wantWalkMin)
	}
	if walk.TransferCount != 0 {
		t.Errorf("walk transfers = %d", walk.TransferCount)
	}

	drive := planByTag(t, plans, "drive")
	wantDriveMin := straight * 1.3 / 45 * 60
	if math.Abs(drive.TotalMinutes-wantDriveMin) > 1e-9 {
		t.Errorf("drive total = %v, want %v", drive.TotalMinutes, wantDriveMin)
	}
}

func TestWalkRailWalk(t *testing.T) {
	in := baseInput()
	oRail := stop("Raleigh Union Station", models.CategoryRail, 35.7772, -78.6455)
	dRail := stop("Goldsboro Station", models.CategoryRail, 35.3838, -77.9995)
	in.OriginStops = []models.TransitStop{oRail}
	in.DestStops = []models.TransitStop{dRail}

	plans := NewSynthesizer(DefaultParams()).Build(in)
	p := planByTag(t, plans, "walk-rail-walk")
	if len(p.Legs) != 3 {
		t.Fatalf("got %d legs: %v", len(p.Legs), p.Legs)
	}

	ride := p.Legs[1]
	dist := geo.Haversine(oRail.Coordinate, dRail.Coordinate)
	wantMin := dist/40*60 + 5
	if math.Abs(ride.DurationMin-wantMin) > 1e-9 {
		t.Errorf("rail leg = %v min, want %v", ride.DurationMin, wantMin)
	}
	if p.TransferCount != 2 {
		t.Errorf("transfers = %d, want 2", p.TransferCount)
	}
}

func TestShortWalkLegDropped(t *testing.T) {
	in := baseInput()
	// Board stop effectively at the origin: the access walk vanishes.
	in.OriginStops = []models.TransitStop{stop("Front Door", models.CategoryBus, raleigh.Lat, raleigh.Lon)}
	in.DestStops = []models.TransitStop{stop("Goldsboro Bus", models.CategoryBus, 35.3838, -77.9995)}

	plans := NewSynthesizer(DefaultParams()).Build(in)
	p := planByTag(t, plans, "walk-bus-walk")
	if len(p.Legs) != 2 {
		t.Fatalf("got %d legs, want ride+walk only: %v", len(p.Legs), p.Legs)
	}
	if p.Legs[0].Mode != models.ModeRide {
		t.Errorf("first leg = %v", p.Legs[0].Mode)
	}
}

func TestDriveRideWalkHubPriority(t *testing.T) {
	in := baseInput()
	in.OriginStops = []models.TransitStop{
		stop("Corner Stop", models.CategoryBus, 35.7800, -78.6390),
		stop("GoRaleigh Station", models.CategoryBusStation, 35.8100, -78.7000),
	}
	in.DestStops = []models.TransitStop{
		stop("Goldsboro Bus", models.CategoryBus, 35.3838, -77.9995),
	}

	plans := NewSynthesizer(DefaultParams()).Build(in)
	p := planByTag(t, plans, "drive-ride-walk")
	// The bus station outranks the closer corner stop as a hub.
	if p.Legs[0].StopName != "GoRaleigh Station" {
		t.Errorf("hub = %q, want the bus station", p.Legs[0].StopName)
	}
	if p.Legs[0].Mode != models.ModeDrive {
		t.Errorf("first leg mode = %v", p.Legs[0].Mode)
	}
}

func TestRailThenBusNeedsAllStops(t *testing.T) {
	in := baseInput()
	oRail := stop("Raleigh Union Station", models.CategoryRail, 35.7772, -78.6455)
	dRail := stop("Goldsboro Station", models.CategoryRail, 35.3838, -77.9995)
	nearRailBus := stop("Station Bus Loop", models.CategoryBus, 35.3840, -77.9990)
	farBus := stop("East End Stop", models.CategoryBus, 35.3900, -77.9700)

	in.OriginStops = []models.TransitStop{oRail}
	in.DestStops = []models.TransitStop{dRail, nearRailBus, farBus}
	// Destination point near farBus so the final bus stop differs from
	// the transfer stop.
	in.Dest = models.Coordinate{Lat: 35.3901, Lon: -77.9705}
	in.WalkSeg = routing.Estimate(routing.ProfileWalk, in.Origin, in.Dest)
	in.DriveSeg = routing.Estimate(routing.ProfileDrive, in.Origin, in.Dest)

	plans := NewSynthesizer(DefaultParams()).Build(in)
	p := planByTag(t, plans, "rail-bus")
	rides := 0
	for _, l := range p.Legs {
		if l.Mode == models.ModeRide {
			rides++
		}
	}
	if rides != 2 {
		t.Errorf("got %d ride legs, want 2: %v", rides, p.Legs)
	}

	// Without a distinct transfer stop the plan is skipped.
	in.DestStops = []models.TransitStop{dRail, nearRailBus}
	in.Dest = goldsboro
	for _, p := range NewSynthesizer(DefaultParams()).Build(in) {
		if p.Tag == "rail-bus" {
			t.Error("rail-bus built with transfer and final stop identical")
		}
	}
}

func TestIntercityCoach(t *testing.T) {
	in := baseInput()
	term := models.IntercityTerminal{
		City:       "Raleigh, NC",
		Coordinate: models.Coordinate{Lat: 35.7772, Lon: -78.6455},
		DistanceMi: 0.4,
	}
	in.Terminals = []models.IntercityTerminal{term}

	plans := NewSynthesizer(DefaultParams()).Build(in)
	p := planByTag(t, plans, "intercity-coach")
	if len(p.Legs) != 2 {
		t.Fatalf("legs = %v", p.Legs)
	}
	coach := p.Legs[1]
	wantMin := geo.Haversine(term.Coordinate, goldsboro)/55*60 + 15
	if math.Abs(coach.DurationMin-wantMin) > 1e-9 {
		t.Errorf("coach leg = %v min, want %v", coach.DurationMin, wantMin)
	}
}

func fullCatalogue(t *testing.T) []models.Plan {
	t.Helper()
	in := baseInput()
	in.OriginStops = []models.TransitStop{
		stop("Raleigh Union Station", models.CategoryRail, 35.7772, -78.6455),
		stop("Moore Square", models.CategoryBus, 35.7800, -78.6390),
	}
	in.DestStops = []models.TransitStop{
		stop("Goldsboro Station", models.CategoryRail, 35.3838, -77.9995),
		stop("Center St Stop", models.CategoryBus, 35.3830, -77.9930),
		stop("Station Bus Loop", models.CategoryBus, 35.3840, -77.9990),
	}
	in.Terminals = []models.IntercityTerminal{{
		City:       "Raleigh, NC",
		Coordinate: models.Coordinate{Lat: 35.7772, Lon: -78.6455},
		DistanceMi: 0.4,
	}}
	return NewSynthesizer(DefaultParams()).Build(in)
}

func TestRankSortsAndBadges(t *testing.T) {
	ranked := Rank(fullCatalogue(t))
	for i := 1; i < len(ranked); i++ {
		if ranked[i].TotalMinutes < ranked[i-1].TotalMinutes {
			t.Errorf("plans out of order at %d", i)
		}
	}
	if ranked[0].Badge != models.BadgeFastest {
		t.Errorf("first plan badge = %q", ranked[0].Badge)
	}

	counts := map[models.Badge]int{}
	for _, p := range ranked {
		if p.Badge != "" {
			counts[p.Badge]++
		}
		if p.Badge == models.BadgeFewestTransfers && p.TransferCount == 0 {
			t.Error("fewest-transfers badge on a single-leg plan")
		}
	}
	for _, b := range []models.Badge{models.BadgeFastest, models.BadgeFewestTransfers, models.BadgeMostWalking} {
		if counts[b] > 1 {
			t.Errorf("badge %q assigned %d times", b, counts[b])
		}
	}
}

func TestBadgeDoesNotFallThrough(t *testing.T) {
	walkLeg := func(min float64) models.Leg {
		return models.Leg{Mode: models.ModeWalk, DurationMin: min}
	}
	rideLeg := func(min float64) models.Leg {
		return models.Leg{Mode: models.ModeRide, DurationMin: min}
	}
	plans := []models.Plan{
		{Tag: "hybrid-a", TotalMinutes: 10, TransferCount: 1,
			Legs: []models.Leg{walkLeg(8), rideLeg(2)}},
		{Tag: "hybrid-b", TotalMinutes: 20, TransferCount: 2,
			Legs: []models.Leg{walkLeg(5), rideLeg(10), rideLeg(5)}},
		{Tag: "drive", TotalMinutes: 30, TransferCount: 0,
			Legs: []models.Leg{{Mode: models.ModeDrive, DurationMin: 30}}},
	}

	ranked := Rank(plans)
	if ranked[0].Tag != "hybrid-a" || ranked[0].Badge != models.BadgeFastest {
		t.Fatalf("first plan = %s badge %q", ranked[0].Tag, ranked[0].Badge)
	}
	// hybrid-a is also the transfer minimizer and the walk-share
	// maximizer; since it already holds Fastest, neither category may
	// pass to hybrid-b.
	for _, p := range ranked[1:] {
		if p.Badge != "" {
			t.Errorf("%s badge = %q, want none", p.Tag, p.Badge)
		}
	}
}

func TestDriveRideWalkNeedsPriorityStops(t *testing.T) {
	in := baseInput()
	in.OriginStops = []models.TransitStop{
		stop("Platform 2", models.CategoryPlatform, 35.7800, -78.6390),
		stop("Curbside Coach", models.CategoryIntercityCoach, 35.7810, -78.6400),
	}
	in.DestStops = []models.TransitStop{
		stop("Goldsboro Bus", models.CategoryBus, 35.3838, -77.9995),
	}
	for _, p := range NewSynthesizer(DefaultParams()).Build(in) {
		if p.Tag == "drive-ride-walk" {
			t.Error("pattern built without a priority-category hub")
		}
	}

	// Same on the destination side.
	in.OriginStops = []models.TransitStop{
		stop("Moore Square", models.CategoryBus, 35.7800, -78.6390),
	}
	in.DestStops = []models.TransitStop{
		stop("Platform 1", models.CategoryPlatform, 35.3838, -77.9995),
	}
	for _, p := range NewSynthesizer(DefaultParams()).Build(in) {
		if p.Tag == "drive-ride-walk" {
			t.Error("pattern built without a priority-category alight stop")
		}
	}
}

func TestRankDeterministic(t *testing.T) {
	a := Rank(fullCatalogue(t))
	b := Rank(fullCatalogue(t))
	if diff := pretty.Diff(a, b); len(diff) > 0 {
		t.Errorf("ranking not deterministic:\n%v", diff)
	}
}

func TestRankEmpty(t *testing.T) {
	if got := Rank(nil); len(got) != 0 {
		t.Errorf("Rank(nil) = %v", got)
	}
}
