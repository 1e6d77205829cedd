package pricing

import (
	"math"

	"github.com/alexanderramin/quoteforge/internal/domain"
)

const priceRangeSpread = 0.15

// roundToThousand rounds half away from zero to the nearest 1000.
func roundToThousand(x float64) float64 {
	return math.Round(x/1000) * 1000
}

// complexityTier maps the feature count to a price multiplier.
func complexityTier(featureCount int) float64 {
	switch {
	case featureCount <= 3:
		return 1.0
	case featureCount <= 6:
		return 1.15
	case featureCount <= 9:
		return 1.30
	default:
		return 1.50
	}
}

// ComputeClientPrice derives the client-facing quote. Support is added
// after the multiplied core is rounded.
func ComputeClientPrice(inputs domain.PricingInputs, cfg Configuration) domain.ClientPrice {
	if inputs.IdeaType == domain.IdeaUnset {
		return domain.ClientPrice{}
	}
	inputs = inputs.Normalize()

	out := domain.ClientPrice{
		BasePrice:          lookup(cfg.BaseCosts, inputs.IdeaType, 0),
		FeaturesCost:       featuresCost(inputs.SelectedFeatures, cfg),
		TechMultiplier:     lookup(cfg.TechMultipliers, inputs.TechStack, 1.0),
		TimelineMultiplier: lookup(cfg.TimelineMultipliers, inputs.DeliverySpeed, 1.0),
		SupportCost:        lookup(cfg.SupportCosts, inputs.SupportDuration, 0),
	}

	out.ComplexityMultiplier = complexityTier(len(inputs.SelectedFeatures))
	if inputs.ComplexityLevel != domain.ComplexityNone {
		ai := lookup(cfg.ComplexityMultipliers, inputs.ComplexityLevel, 1.0)
		out.ComplexityMultiplier = math.Max(out.ComplexityMultiplier, ai)
	}

	core := (out.BasePrice + out.FeaturesCost) * out.TechMultiplier * out.ComplexityMultiplier * out.TimelineMultiplier
	out.TotalPrice = roundToThousand(core) + out.SupportCost
	out.PriceRange = domain.PriceRange{
		Min: roundToThousand(out.TotalPrice * (1 - priceRangeSpread)),
		Max: roundToThousand(out.TotalPrice * (1 + priceRangeSpread)),
	}
	return out
}

func featuresCost(ids []string, cfg Configuration) float64 {
	if len(cfg.FeatureCosts) == 0 {
		return float64(len(ids)) * cfg.FeatureBaseCost
	}
	var sum float64
	for _, id := range ids {
		sum += lookup(cfg.FeatureCosts, id, cfg.FeatureBaseCost)
	}
	return sum
}
