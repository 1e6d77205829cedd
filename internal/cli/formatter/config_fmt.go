package formatter

import (
	"fmt"
	"sort"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/alexanderramin/quoteforge/internal/service"
)

// FormatActiveConfig renders the resolved pricing tables.
func FormatActiveConfig(ac service.ActiveConfig) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s %s\n\n", Bold("Pricing configuration"), configLabel(ac.Version), Dim("("+ac.Label+")"))
	cfg := ac.Config

	ideaRows := make([][]string, 0, len(domain.IdeaTypes))
	for _, idea := range domain.IdeaTypes {
		ideaRows = append(ideaRows, []string{string(idea), Money(cfg.BaseCosts[idea]), Money(cfg.InfrastructureCosts[idea])})
	}
	b.WriteString(Header("Idea types"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"IDEA", "BASE", "INFRA"}, ideaRows, 1, 2))
	b.WriteString("\n")

	rateRows := make([][]string, 0, len(domain.Roles))
	for _, role := range domain.Roles {
		rateRows = append(rateRows, []string{string(role), fmt.Sprintf("$%.0f/h", cfg.HourlyRate(role))})
	}
	b.WriteString(Header("Hourly rates"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"ROLE", "RATE"}, rateRows, 1))
	b.WriteString("\n")

	b.WriteString(Header("Multipliers"))
	b.WriteString("\n")
	b.WriteString(multiplierLine("tech", cfg.TechMultipliers))
	b.WriteString(multiplierLine("format", cfg.FormatMultipliers))
	b.WriteString(multiplierLine("delivery", cfg.TimelineMultipliers))
	b.WriteString(multiplierLine("complexity", cfg.ComplexityMultipliers))
	b.WriteString("\n")

	supportRows := make([][]string, 0, len(domain.SupportDurations))
	for _, d := range domain.SupportDurations {
		supportRows = append(supportRows, []string{string(d), Money(cfg.SupportCosts[d]), fmt.Sprintf("%.0fh/mo", cfg.SupportHours[d])})
	}
	b.WriteString(Header("Support"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"DURATION", "PRICE", "HOURS"}, supportRows, 1, 2))
	fmt.Fprintf(&b, "\n%s %s %s\n", Dim("Unlisted features price at"), Money(cfg.FeatureBaseCost),
		Dim(fmt.Sprintf("· %d feature prices set", len(cfg.FeatureCosts))))
	return b.String()
}

func multiplierLine[K ~string](name string, m map[K]float64) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s %s", k, multiplier(m[K(k)])))
	}
	return fmt.Sprintf("  %-11s %s\n", name, strings.Join(parts, Dim(" · ")))
}

// FormatConfigHistory renders saved configuration versions, newest first.
func FormatConfigHistory(versions []*pricing.Version) string {
	rows := make([][]string, 0, len(versions))
	for _, v := range versions {
		active := ""
		if v.Active {
			active = StyleGreen.Render("● active")
		}
		rows = append(rows, []string{fmt.Sprintf("v%d", v.Version), v.Label, active, v.CreatedAt.Format("2006-01-02 15:04")})
	}
	return RenderTable([]string{"VERSION", "LABEL", "", "CREATED"}, rows)
}

// FormatSimulation renders the effect of a candidate configuration.
func FormatSimulation(rep *service.SimulationReport) string {
	var b strings.Builder
	rows := make([][]string, 0, len(rep.Rows))
	for _, r := range rep.Rows {
		health := HealthColor(r.OldHealth).Render(string(r.OldHealth))
		if r.NewHealth != r.OldHealth {
			health += Dim(" → ") + HealthColor(r.NewHealth).Render(string(r.NewHealth))
		}
		rows = append(rows, []string{
			TruncID(r.ProjectID), r.Name, Money(r.OldPrice), Money(r.NewPrice), signedMoney(r.Delta),
			Percent(r.NewMargin), health,
		})
	}
	b.WriteString(RenderTable([]string{"ID", "NAME", "OLD", "NEW", "DELTA", "MARGIN", "HEALTH"}, rows, 2, 3, 4, 5))
	fmt.Fprintf(&b, "\n%s %s → %s (%s) · %d health changes\n", Bold("Total"),
		Money(rep.OldTotal), Money(rep.NewTotal), signedMoney(rep.NewTotal-rep.OldTotal), rep.HealthChanges)
	return b.String()
}

func signedMoney(v float64) string {
	switch {
	case v > 0:
		return StyleGreen.Render("+" + Money(v))
	case v < 0:
		return StyleRed.Render(Money(v))
	default:
		return Dim(Money(0))
	}
}
