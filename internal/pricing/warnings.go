package pricing

import (
	"fmt"

	"github.com/alexanderramin/quoteforge/internal/domain"
)

const (
	lowMarginPct        = 30.0
	thinMarginPct       = 40.0
	complexFeatureCount = 8
)

// ComputeRiskWarnings evaluates each rule independently; several warnings
// of the same type may be returned.
func ComputeRiskWarnings(inputs domain.PricingInputs, profit domain.ProfitAnalysis, timeline domain.Timeline) []domain.RiskWarning {
	warnings := []domain.RiskWarning{}
	inputs = inputs.Normalize()

	switch {
	case profit.ProfitMargin < lowMarginPct:
		warnings = append(warnings, domain.RiskWarning{
			Type:     domain.WarningMargin,
			Severity: domain.SeverityHigh,
			Message:  fmt.Sprintf("Profit margin %.1f%% is below %.0f%%; review scope or pricing before sending.", profit.ProfitMargin, lowMarginPct),
		})
	case profit.ProfitMargin < thinMarginPct:
		warnings = append(warnings, domain.RiskWarning{
			Type:     domain.WarningMargin,
			Severity: domain.SeverityMedium,
			Message:  fmt.Sprintf("Profit margin %.1f%% is thin; little room for scope changes.", profit.ProfitMargin),
		})
	}

	if inputs.DeliverySpeed != domain.SpeedStandard {
		sev := domain.SeverityMedium
		if inputs.DeliverySpeed == domain.SpeedPriority {
			sev = domain.SeverityHigh
		}
		warnings = append(warnings, domain.RiskWarning{
			Type:     domain.WarningTimeline,
			Severity: sev,
			Message:  fmt.Sprintf("%s delivery compresses the schedule to %d weeks; expect parallel workstreams and higher coordination load.", inputs.DeliverySpeed, timeline.TotalWeeks),
		})
	}

	if n := inputs.FeatureCount(); n > complexFeatureCount {
		warnings = append(warnings, domain.RiskWarning{
			Type:     domain.WarningComplexity,
			Severity: domain.SeverityMedium,
			Message:  fmt.Sprintf("%d features selected; consider phasing the scope into releases.", n),
		})
	}

	if isAIProject(inputs) {
		warnings = append(warnings, domain.RiskWarning{
			Type:     domain.WarningComplexity,
			Severity: domain.SeverityMedium,
			Message:  "AI components carry model, data and evaluation uncertainty.",
		})
	}

	return warnings
}
