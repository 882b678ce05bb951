// Package planner builds the candidate itineraries for a resolved
// origin-destination pair and ranks them. Synthesis is pure: all
// network lookups happen upstream and arrive as inputs.
package planner

// Params holds the speed and timing assumptions used for legs that are
// not individually routed. Transit legs run at flat averages over the
// straight-line distance between stops.
type Params struct {
	RailSpeedMph     float64
	BusSpeedMph      float64
	TramSpeedMph     float64
	HubDriveSpeedMph float64
	CoachSpeedMph    float64
	WalkSpeedMph     float64

	// Boarding buffers, added to the ride leg duration.
	LocalBoardMin     float64
	IntercityBoardMin float64

	// Walk legs at or below this duration are not worth listing.
	MinWalkLegMin float64
}

// DefaultParams returns the standard assumption set.
func DefaultParams() Params {
	return Params{
		RailSpeedMph:      40,
		BusSpeedMph:       22,
		TramSpeedMph:      40,
		HubDriveSpeedMph:  35,
		CoachSpeedMph:     55,
		WalkSpeedMph:      3.5,
		LocalBoardMin:     5,
		IntercityBoardMin: 15,
		MinWalkLegMin:     0.5,
	}
}
