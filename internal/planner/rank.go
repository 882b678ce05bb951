package planner

import (
	"sort"

	"evacroute/internal/models"
)

// Rank orders plans fastest first and attaches badges. Each category's
// winner is picked over every multi-leg plan; when the winner already
// holds an earlier badge the category goes unawarded, so a plan never
// carries more than one badge and a badge never falls through to a
// runner-up.
func Rank(plans []models.Plan) []models.Plan {
	ranked := append([]models.Plan(nil), plans...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].TotalMinutes < ranked[j].TotalMinutes
	})

	if len(ranked) == 0 {
		return ranked
	}
	ranked[0].Badge = models.BadgeFastest

	if i := fewestTransfersIdx(ranked); i >= 0 && ranked[i].Badge == "" {
		ranked[i].Badge = models.BadgeFewestTransfers
	}
	if i := mostWalkingIdx(ranked); i >= 0 && ranked[i].Badge == "" {
		ranked[i].Badge = models.BadgeMostWalking
	}
	return ranked
}

// fewestTransfersIdx finds the multi-leg plan with the least
// transfers, breaking ties by total time.
func fewestTransfersIdx(plans []models.Plan) int {
	best := -1
	for i, p := range plans {
		if p.TransferCount == 0 {
			continue
		}
		if best < 0 ||
			p.TransferCount < plans[best].TransferCount ||
			(p.TransferCount == plans[best].TransferCount && p.TotalMinutes < plans[best].TotalMinutes) {
			best = i
		}
	}
	return best
}

// mostWalkingIdx finds the multi-leg plan with the highest share of
// its time spent walking.
func mostWalkingIdx(plans []models.Plan) int {
	best := -1
	bestShare := 0.0
	for i, p := range plans {
		if p.TransferCount == 0 || p.TotalMinutes <= 0 {
			continue
		}
		var walk float64
		for _, l := range p.Legs {
			if l.Mode == models.ModeWalk {
				walk += l.DurationMin
			}
		}
		share := walk / p.TotalMinutes
		if best < 0 || share > bestShare {
			best = i
			bestShare = share
		}
	}
	return best
}
