package formatter

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/service"
)

// FormatDashboard renders the pipeline summary.
func FormatDashboard(s *service.Summary) string {
	var b strings.Builder

	b.WriteString(Header("Pipeline"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s quotes · %s open value\n", Bold(strconv.Itoa(s.Projects)), Bold(Money(s.PipelineValue)))
	fmt.Fprintf(&b, "  %s %s  %s %s  %s %s\n",
		Dim("mean"), Money(s.MeanPrice), Dim("median"), Money(s.MedianPrice), Dim("p90"), Money(s.P90Price))
	fmt.Fprintf(&b, "  %s %s\n\n", Dim("mean margin"), RenderMargin(s.MeanMargin, 20))

	statusRows := make([][]string, 0, len(domain.ProjectStatuses))
	for _, st := range domain.ProjectStatuses {
		statusRows = append(statusRows, []string{StatusPill(st), strconv.Itoa(s.ByStatus[st])})
	}
	b.WriteString(Header("By status"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"STATUS", "COUNT"}, statusRows, 1))
	b.WriteString("\n")

	healthRows := make([][]string, 0, len(domain.HealthStatuses))
	for _, h := range domain.HealthStatuses {
		healthRows = append(healthRows, []string{HealthIndicator(h), strconv.Itoa(s.ByHealth[h])})
	}
	b.WriteString(Header("By health"))
	b.WriteString("\n")
	b.WriteString(RenderTable([]string{"HEALTH", "COUNT"}, healthRows, 1))

	if len(s.AtRisk) > 0 {
		b.WriteString("\n")
		b.WriteString(Header("At risk"))
		b.WriteString("\n")
		rows := make([][]string, 0, len(s.AtRisk))
		for _, d := range s.AtRisk {
			rows = append(rows, []string{TruncID(d.ID), d.Name, Money(d.TotalPrice), StyleRed.Render(Percent(d.ProfitMargin))})
		}
		b.WriteString(RenderTable([]string{"ID", "NAME", "PRICE", "MARGIN"}, rows, 2, 3))
	}
	return b.String()
}
