// Package report renders saved quotes for clients and for internal review.
package report

import (
	"fmt"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/intelligence"
	"github.com/alexanderramin/quoteforge/internal/pricing"
)

// Options controls what a report reveals.
type Options struct {
	// Internal adds cost, margin and risk warnings. Client copies omit them.
	Internal bool
}

// Markdown builds the quote report for p. narrative is the opening
// paragraph; an empty narrative falls back to the deterministic text.
func Markdown(p *domain.Project, narrative string, opts Options) string {
	est := p.Estimate
	if strings.TrimSpace(narrative) == "" {
		narrative = intelligence.DeterministicNarrative(p.Name, est)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", p.Name)
	if p.ClientName != "" {
		fmt.Fprintf(&b, "Prepared for **%s**", p.ClientName)
		if p.ClientEmail != "" {
			fmt.Fprintf(&b, " (%s)", p.ClientEmail)
		}
		b.WriteString("\n\n")
	}
	b.WriteString(narrative)
	b.WriteString("\n\n")

	b.WriteString("## Investment\n\n")
	b.WriteString("| Item | Amount |\n|---|---:|\n")
	fmt.Fprintf(&b, "| Quoted price | %s |\n", intelligence.FormatMoney(est.ClientPrice.TotalPrice))
	fmt.Fprintf(&b, "| Expected range | %s to %s |\n",
		intelligence.FormatMoney(est.ClientPrice.PriceRange.Min), intelligence.FormatMoney(est.ClientPrice.PriceRange.Max))
	if est.ClientPrice.SupportCost > 0 {
		fmt.Fprintf(&b, "| Included support (%s) | %s |\n", est.Inputs.SupportDuration, intelligence.FormatMoney(est.ClientPrice.SupportCost))
	}
	b.WriteString("\n")

	b.WriteString("## Scope\n\n")
	fmt.Fprintf(&b, "- Project type: %s\n", humanize(string(est.Inputs.IdeaType)))
	if est.Inputs.ProductFormat != domain.FormatUnset {
		fmt.Fprintf(&b, "- Format: %s\n", humanize(string(est.Inputs.ProductFormat)))
	}
	if est.Inputs.TechStack != domain.StackUnset {
		fmt.Fprintf(&b, "- Technology: %s\n", est.Inputs.TechStack)
	}
	fmt.Fprintf(&b, "- Delivery: %s\n", est.Inputs.DeliverySpeed)
	if len(est.Inputs.SelectedFeatures) > 0 {
		b.WriteString("\n### Features\n\n")
		for _, id := range est.Inputs.SelectedFeatures {
			fmt.Fprintf(&b, "- %s\n", featureName(id))
		}
	}
	b.WriteString("\n")

	b.WriteString("## Timeline\n\n")
	fmt.Fprintf(&b, "%d weeks with a team of %d to %d people.\n\n",
		est.Timeline.TotalWeeks, est.Timeline.TeamSize.Min, est.Timeline.TeamSize.Max)
	b.WriteString("| Phase | Weeks |\n|---|---:|\n")
	for _, ph := range est.Timeline.Phases {
		fmt.Fprintf(&b, "| %s | %d |\n", ph.Name, ph.Weeks)
	}
	b.WriteString("\n")

	b.WriteString("## Where the effort goes\n\n")
	if opts.Internal {
		b.WriteString("| Category | Share | Amount |\n|---|---:|---:|\n")
		for _, row := range est.Breakdown {
			fmt.Fprintf(&b, "| %s | %d%% | %s |\n", row.Category, row.Percentage, intelligence.FormatMoney(row.Amount))
		}
	} else {
		b.WriteString("| Category | Share | Details |\n|---|---:|---|\n")
		for _, row := range est.Breakdown {
			fmt.Fprintf(&b, "| %s | %d%% | %s |\n", row.Category, row.Percentage, row.Description)
		}
	}

	if opts.Internal {
		writeInternal(&b, p)
	}
	return b.String()
}

func writeInternal(b *strings.Builder, p *domain.Project) {
	est := p.Estimate
	b.WriteString("\n## Internal\n\n")
	fmt.Fprintf(b, "- Status: %s\n", p.Status)
	fmt.Fprintf(b, "- Pricing config version: %d\n", p.ConfigVersion)
	fmt.Fprintf(b, "- Internal cost: %s (%d hours, %.0f%% risk buffer)\n",
		intelligence.FormatMoney(est.InternalCost.TotalInternalCost), est.InternalCost.TotalHours(), est.InternalCost.RiskBufferPct*100)
	fmt.Fprintf(b, "- Profit: %s at %.1f%% margin (%s)\n",
		intelligence.FormatMoney(est.Profit.Profit), est.Profit.ProfitMargin, est.Profit.HealthStatus)

	if len(est.Warnings) > 0 {
		b.WriteString("\n### Risk warnings\n\n")
		for _, w := range est.Warnings {
			fmt.Fprintf(b, "- **%s** (%s): %s\n", w.Type, w.Severity, w.Message)
		}
	}
	if p.Notes != "" {
		b.WriteString("\n### Notes\n\n")
		b.WriteString(p.Notes)
		b.WriteString("\n")
	}
}

func featureName(id string) string {
	if f, ok := pricing.LookupFeature(id); ok {
		return f.Name
	}
	return id
}

func humanize(s string) string {
	s = strings.ReplaceAll(s, "-", " ")
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

// RenderHTML converts report markdown into an HTML fragment.
func RenderHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, r)
}
