package pricing

import (
	"math"

	"github.com/alexanderramin/quoteforge/internal/domain"
)

const hoursPerWeek = 40

type phaseWeight struct {
	name   string
	weight float64
}

var phaseWeights = []phaseWeight{
	{"Discovery & Planning", 0.15},
	{"Design", 0.20},
	{"Development", 0.45},
	{"Testing & QA", 0.12},
	{"Launch & Handoff", 0.08},
}

// ComputeTeamSize estimates the team range from the feature count.
func ComputeTeamSize(featureCount int) domain.TeamSize {
	lo := max(2, ceilDiv(featureCount, 4))
	hi := min(8, ceilDiv(featureCount, 2)+3)
	if lo > hi {
		lo, hi = hi, lo
	}
	return domain.TeamSize{Min: lo, Max: hi}
}

func ceilDiv(a, b int) int {
	return int(math.Ceil(float64(a) / float64(b)))
}

// ComputeTimeline plans delivery from the labor hours in cost. The last
// phase absorbs rounding so TotalWeeks equals the sum of the phases.
func ComputeTimeline(inputs domain.PricingInputs, cost domain.InternalCost, cfg Configuration) domain.Timeline {
	if inputs.IdeaType == domain.IdeaUnset {
		return domain.Timeline{Phases: []domain.Phase{}}
	}
	inputs = inputs.Normalize()

	team := ComputeTeamSize(inputs.FeatureCount())
	avgTeam := float64(team.Min+team.Max) / 2
	weeks := int(math.Ceil(float64(cost.TotalHours()) / (avgTeam * hoursPerWeek)))

	if speed := lookup(cfg.TimelineMultipliers, inputs.DeliverySpeed, 1.0); speed > 1.0 {
		weeks = int(math.Ceil(float64(weeks) / speed))
	}
	weeks = max(weeks, 1)

	phases := distributePhases(weeks)
	total := 0
	for _, p := range phases {
		total += p.Weeks
	}
	return domain.Timeline{Phases: phases, TotalWeeks: total, TeamSize: team}
}

func distributePhases(weeks int) []domain.Phase {
	phases := make([]domain.Phase, 0, len(phaseWeights))
	remaining := weeks
	for i, pw := range phaseWeights {
		var d int
		if i == len(phaseWeights)-1 {
			d = max(1, remaining)
		} else {
			d = int(math.Round(float64(weeks) * pw.weight))
			if d == 0 && weeks > 3 {
				d = 1
			}
			d = min(d, remaining)
		}
		remaining -= d
		phases = append(phases, domain.Phase{Name: pw.name, Weeks: d})
	}
	return phases
}
