package pricing

import "github.com/alexanderramin/quoteforge/internal/domain"

const (
	healthyMarginPct = 45.0
	warningMarginPct = 30.0
)

// ComputeProfit compares the quote to the internal cost. A zero price
// yields a zero margin.
func ComputeProfit(price domain.ClientPrice, cost domain.InternalCost) domain.ProfitAnalysis {
	out := domain.ProfitAnalysis{
		ClientPrice:  price.TotalPrice,
		InternalCost: cost.TotalInternalCost,
		Profit:       price.TotalPrice - cost.TotalInternalCost,
	}
	if price.TotalPrice != 0 {
		out.ProfitMargin = out.Profit / price.TotalPrice * 100
	}
	out.HealthStatus = ClassifyMargin(out.ProfitMargin)
	return out
}

// ClassifyMargin maps a margin percentage to a health status.
func ClassifyMargin(margin float64) domain.HealthStatus {
	switch {
	case margin >= healthyMarginPct:
		return domain.HealthHealthy
	case margin >= warningMarginPct:
		return domain.HealthWarning
	default:
		return domain.HealthCritical
	}
}
