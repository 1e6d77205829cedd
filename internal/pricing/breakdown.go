package pricing

import (
	"math"

	"github.com/alexanderramin/quoteforge/internal/domain"
)

const securityOverheadShare = 0.30

func roleCost(cost domain.InternalCost, role domain.Role) float64 {
	for _, lc := range cost.LaborCosts {
		if lc.Role == role {
			return lc.Cost
		}
	}
	return 0
}

// ComputeCostBreakdown relabels the internal cost into eight client-facing
// categories. Percentages are rounded per row and may not sum to 100.
func ComputeCostBreakdown(cost domain.InternalCost) []domain.CostBreakdown {
	rows := []domain.CostBreakdown{
		{
			Category:    "Product Engineering",
			Amount:      roleCost(cost, domain.RoleFrontend),
			Color:       "#83a598",
			Description: "Interfaces, screens and client-side behavior",
		},
		{
			Category:    "UX & Design",
			Amount:      roleCost(cost, domain.RoleDesigner),
			Color:       "#d3869b",
			Description: "Research, wireframes and visual design",
		},
		{
			Category:    "Business Logic & Automation",
			Amount:      roleCost(cost, domain.RoleBackend),
			Color:       "#8ec07c",
			Description: "APIs, data models and server-side workflows",
		},
		{
			Category:    "QA & Testing",
			Amount:      roleCost(cost, domain.RoleQA),
			Color:       "#fabd2f",
			Description: "Test plans, automated and manual verification",
		},
		{
			Category:    "Security & Data Protection",
			Amount:      cost.OverheadCost * securityOverheadShare,
			Color:       "#fb4934",
			Description: "Access control, audits and data handling",
		},
		{
			Category:    "Product Management",
			Amount:      roleCost(cost, domain.RolePM),
			Color:       "#fe8019",
			Description: "Planning, coordination and stakeholder updates",
		},
		{
			Category:    "Infrastructure & Tools",
			Amount:      cost.InfrastructureCost + cost.OverheadCost*(1-securityOverheadShare),
			Color:       "#b8bb26",
			Description: "Hosting, services, licenses and tooling",
		},
		{
			Category:    "Support & Risk Coverage",
			Amount:      cost.RiskBuffer,
			Color:       "#928374",
			Description: "Contingency for scope and delivery risk",
		},
	}

	total := cost.TotalInternalCost
	for i := range rows {
		if total > 0 {
			rows[i].Percentage = int(math.Round(rows[i].Amount / total * 100))
		}
		rows[i].Amount = math.Round(rows[i].Amount)
	}
	return rows
}
