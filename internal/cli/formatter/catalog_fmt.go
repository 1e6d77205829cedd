package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/pricing"
)

// FormatFeatureCatalog renders the catalog grouped by category, in catalog order.
func FormatFeatureCatalog(features []pricing.Feature) string {
	var b strings.Builder
	var current pricing.FeatureCategory
	var rows [][]string

	flush := func() {
		if len(rows) == 0 {
			return
		}
		b.WriteString(Header(string(current)))
		b.WriteString("\n")
		b.WriteString(RenderTable([]string{"ID", "FEATURE", "PRICE", "HOURS"}, rows, 2, 3))
		b.WriteString("\n")
		rows = nil
	}

	for _, f := range features {
		if f.Category != current {
			flush()
			current = f.Category
		}
		total := 0.0
		for _, h := range f.Hours {
			total += h
		}
		rows = append(rows, []string{f.ID, f.Name, Money(f.Cost), fmt.Sprintf("%.0fh", total)})
	}
	flush()
	return strings.TrimRight(b.String(), "\n") + "\n"
}

// FormatFeatureList renders selected feature ids with their catalog names.
func FormatFeatureList(ids []string) string {
	var b strings.Builder
	b.WriteString(Header("Features"))
	b.WriteString("\n")
	for _, id := range ids {
		if f, ok := pricing.LookupFeature(id); ok {
			fmt.Fprintf(&b, "  • %s %s\n", f.Name, Dim("("+id+")"))
		} else {
			fmt.Fprintf(&b, "  • %s %s\n", id, StyleYellow.Render("(not in catalog)"))
		}
	}
	return b.String()
}
