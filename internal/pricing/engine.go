// Package pricing implements the deterministic estimation engine: internal
// cost, client price, profit health, delivery timeline, cost breakdown and
// risk warnings. Every function is pure and safe for concurrent use.
package pricing

import "github.com/alexanderramin/quoteforge/internal/domain"

// Estimate runs the full pipeline for inputs under cfg.
func Estimate(inputs domain.PricingInputs, cfg Configuration) domain.Estimate {
	inputs = inputs.Normalize()

	cost := ComputeInternalCost(inputs, cfg)
	price := ComputeClientPrice(inputs, cfg)
	profit := ComputeProfit(price, cost)
	timeline := ComputeTimeline(inputs, cost, cfg)

	out := domain.Estimate{
		Inputs:       inputs,
		InternalCost: cost,
		ClientPrice:  price,
		Profit:       profit,
		Timeline:     timeline,
		Breakdown:    []domain.CostBreakdown{},
		Warnings:     []domain.RiskWarning{},
	}
	if inputs.IdeaType == domain.IdeaUnset {
		return out
	}
	out.Breakdown = ComputeCostBreakdown(cost)
	out.Warnings = ComputeRiskWarnings(inputs, profit, timeline)
	out.SupportHoursPerMonth = lookup(cfg.SupportHours, inputs.SupportDuration, 0)
	return out
}
