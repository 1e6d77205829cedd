package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/pricing"
)

// FormatEstimate renders every section of an estimate for the terminal.
func FormatEstimate(est domain.Estimate, configVersion int) string {
	var b strings.Builder

	b.WriteString(Header("Quote"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s  %s\n", Bold(Money(est.ClientPrice.TotalPrice)),
		Dim(fmt.Sprintf("range %s – %s", Money(est.ClientPrice.PriceRange.Min), Money(est.ClientPrice.PriceRange.Max))))
	fmt.Fprintf(&b, "  %s %s  %s %s\n",
		Dim("Type"), Humanize(string(est.Inputs.IdeaType)),
		Dim("Config"), configLabel(configVersion))
	b.WriteString("\n")

	b.WriteString(Header("Price build-up"))
	b.WriteString("\n")
	cp := est.ClientPrice
	rows := [][]string{
		{"Base price", Money(cp.BasePrice)},
		{fmt.Sprintf("Features (%d)", len(est.Inputs.SelectedFeatures)), Money(cp.FeaturesCost)},
		{"Tech × format", multiplier(cp.TechMultiplier)},
		{"Complexity", multiplier(cp.ComplexityMultiplier)},
		{"Delivery (" + string(est.Inputs.DeliverySpeed) + ")", multiplier(cp.TimelineMultiplier)},
		{"Support (" + string(est.Inputs.SupportDuration) + ")", Money(cp.SupportCost)},
	}
	b.WriteString(RenderTable([]string{"ITEM", "VALUE"}, rows, 1))
	b.WriteString("\n")

	b.WriteString(Header("Profitability"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  Internal cost  %s  %s\n", Money(est.InternalCost.TotalInternalCost),
		Dim(fmt.Sprintf("(%dh labor, %.0f%% risk buffer)", est.InternalCost.TotalHours(), est.InternalCost.RiskBufferPct*100)))
	fmt.Fprintf(&b, "  Profit         %s\n", Money(est.Profit.Profit))
	fmt.Fprintf(&b, "  Margin         %s  %s\n", RenderMargin(est.Profit.ProfitMargin, 20), HealthIndicator(est.Profit.HealthStatus))
	b.WriteString("\n")

	b.WriteString(FormatTimeline(est.Timeline))
	b.WriteString("\n")
	b.WriteString(FormatBreakdown(est.Breakdown))

	if len(est.Warnings) > 0 {
		b.WriteString("\n")
		b.WriteString(FormatWarnings(est.Warnings))
	}
	return b.String()
}

func configLabel(version int) string {
	if version == pricing.DefaultVersion {
		return "built-in"
	}
	return "v" + strconv.Itoa(version)
}

func multiplier(v float64) string {
	return fmt.Sprintf("×%.2f", v)
}

// FormatTimeline renders the phases with their share of the total weeks.
func FormatTimeline(tl domain.Timeline) string {
	var b strings.Builder
	b.WriteString(Header("Timeline"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %d weeks · team of %d–%d\n", tl.TotalWeeks, tl.TeamSize.Min, tl.TeamSize.Max)

	rows := make([][]string, 0, len(tl.Phases))
	for _, ph := range tl.Phases {
		share := 0
		if tl.TotalWeeks > 0 {
			share = ph.Weeks * 100 / tl.TotalWeeks
		}
		rows = append(rows, []string{ph.Name, strconv.Itoa(ph.Weeks), RenderShare(share, 16, StyleBlue)})
	}
	b.WriteString(RenderTable([]string{"PHASE", "WEEKS", "SHARE"}, rows, 1))
	return b.String()
}

// FormatBreakdown renders the client-facing cost categories.
func FormatBreakdown(rows []domain.CostBreakdown) string {
	var b strings.Builder
	b.WriteString(Header("Breakdown"))
	b.WriteString("\n")
	out := make([][]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, []string{r.Category, Money(r.Amount), RenderShare(r.Percentage, 16, StylePurple)})
	}
	b.WriteString(RenderTable([]string{"CATEGORY", "AMOUNT", "SHARE"}, out, 1))
	return b.String()
}

// FormatWarnings renders risk warnings colored by severity.
func FormatWarnings(ws []domain.RiskWarning) string {
	var b strings.Builder
	b.WriteString(Header("Risks"))
	b.WriteString("\n")
	for _, w := range ws {
		tag := SeverityColor(w.Severity).Render(fmt.Sprintf("▲ %-6s", strings.ToUpper(string(w.Severity))))
		fmt.Fprintf(&b, "  %s %s %s\n", tag, Dim("["+string(w.Type)+"]"), w.Message)
	}
	return b.String()
}
