package pricing

import (
	"math"

	"github.com/alexanderramin/quoteforge/internal/domain"
)

const (
	infrastructureMonths = 6
	overheadRate         = 0.15
	rushEffortFactor     = 1.2

	riskBufferBase     = 0.10
	riskBufferMany     = 0.03 // more than 6 features
	riskBufferVeryMany = 0.02 // more than 9 features
	riskBufferAI       = 0.05
	riskBufferCap      = 0.20
)

// ComputeInternalCost derives labor, infrastructure, overhead and risk
// buffer for the inputs. Feature ids missing from the catalog add no hours.
func ComputeInternalCost(inputs domain.PricingInputs, cfg Configuration) domain.InternalCost {
	if inputs.IdeaType == domain.IdeaUnset {
		return domain.InternalCost{}
	}
	inputs = inputs.Normalize()

	hours := make(RoleHours, len(domain.Roles))
	for role, h := range cfg.BaseHours[inputs.IdeaType] {
		hours[role] += h
	}
	for _, id := range inputs.SelectedFeatures {
		f, ok := LookupFeature(id)
		if !ok {
			continue
		}
		for role, h := range f.Hours {
			hours[role] += h
		}
	}

	formatMult := lookup(cfg.FormatMultipliers, inputs.ProductFormat, 1.0)
	deliveryAdj := 1.0
	if lookup(cfg.TimelineMultipliers, inputs.DeliverySpeed, 1.0) > 1.0 {
		deliveryAdj = rushEffortFactor
	}

	out := domain.InternalCost{LaborCosts: make([]domain.RoleCost, 0, len(domain.Roles))}
	for _, role := range domain.Roles {
		h := int(math.Round(hours[role] * formatMult * deliveryAdj))
		rate := cfg.HourlyRate(role)
		rc := domain.RoleCost{Role: role, Hours: h, HourlyRate: rate, Cost: float64(h) * rate}
		out.LaborCosts = append(out.LaborCosts, rc)
		out.TotalLaborCost += rc.Cost
	}

	out.InfrastructureCost = lookup(cfg.InfrastructureCosts, inputs.IdeaType, 0) * infrastructureMonths
	out.OverheadCost = out.TotalLaborCost * overheadRate
	out.RiskBufferPct = riskBufferPct(inputs)
	out.RiskBuffer = (out.TotalLaborCost + out.InfrastructureCost + out.OverheadCost) * out.RiskBufferPct
	out.TotalInternalCost = out.TotalLaborCost + out.InfrastructureCost + out.OverheadCost + out.RiskBuffer
	return out
}

func riskBufferPct(inputs domain.PricingInputs) float64 {
	pct := riskBufferBase
	n := inputs.FeatureCount()
	if n > 6 {
		pct += riskBufferMany
	}
	if n > 9 {
		pct += riskBufferVeryMany
	}
	if isAIProject(inputs) {
		pct += riskBufferAI
	}
	return math.Min(pct, riskBufferCap)
}
