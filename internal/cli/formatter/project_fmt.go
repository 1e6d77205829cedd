package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/domain"
)

// FormatProjectList renders saved quotes as a table.
func FormatProjectList(projects []*domain.Project) string {
	rows := make([][]string, 0, len(projects))
	for _, p := range projects {
		client := p.ClientName
		if client == "" {
			client = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(p.ID),
			p.Name,
			client,
			StatusPill(p.Status),
			Money(p.Estimate.ClientPrice.TotalPrice),
			HealthColor(p.Estimate.Profit.HealthStatus).Render(Percent(p.Estimate.Profit.ProfitMargin)),
			fmt.Sprintf("%dw", p.Estimate.Timeline.TotalWeeks),
			HumanDate(p.CreatedAt),
		})
	}
	return RenderTable(
		[]string{"ID", "NAME", "CLIENT", "STATUS", "PRICE", "MARGIN", "WEEKS", "CREATED"},
		rows, 4, 5, 6,
	)
}

// FormatProjectDetail renders one saved quote with its stored estimate.
func FormatProjectDetail(p *domain.Project) string {
	var b strings.Builder

	title := Bold(p.Name) + "  " + StatusPill(p.Status)
	meta := []string{
		Dim("ID      ") + p.ID,
		Dim("Source  ") + string(p.Source),
		Dim("Created ") + p.CreatedAt.Format("2006-01-02 15:04"),
	}
	if p.ClientName != "" || p.ClientEmail != "" {
		meta = append(meta, Dim("Client  ")+strings.TrimSpace(p.ClientName+" "+angle(p.ClientEmail)))
	}
	if p.Description != "" {
		meta = append(meta, Dim("Brief   ")+p.Description)
	}
	if p.Notes != "" {
		meta = append(meta, Dim("Notes   ")+p.Notes)
	}
	b.WriteString(RenderBox("", title+"\n\n"+strings.Join(meta, "\n")))
	b.WriteString("\n\n")

	if len(p.Inputs.SelectedFeatures) > 0 {
		b.WriteString(FormatFeatureList(p.Inputs.SelectedFeatures))
		b.WriteString("\n")
	}
	if p.Analysis != nil {
		b.WriteString(FormatAnalysis(*p.Analysis))
		b.WriteString("\n")
	}
	b.WriteString(FormatEstimate(p.Estimate, p.ConfigVersion))
	return b.String()
}

func angle(email string) string {
	if email == "" {
		return ""
	}
	return "<" + email + ">"
}
