package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/service"
)

// FormatAnalysis renders how an idea description was read.
func FormatAnalysis(a domain.AIAnalysis) string {
	var b strings.Builder
	b.WriteString(Header("Idea analysis"))
	b.WriteString("\n")

	platforms := make([]string, 0, len(a.Platforms))
	for _, p := range a.Platforms {
		platforms = append(platforms, string(p))
	}
	fmt.Fprintf(&b, "  %s %s\n", Dim("Type       "), Humanize(string(a.ProjectType)))
	fmt.Fprintf(&b, "  %s %s\n", Dim("Platforms  "), strings.Join(platforms, ", "))
	if a.ComplexityLevel != domain.ComplexityNone {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Complexity "), a.ComplexityLevel)
	}
	fmt.Fprintf(&b, "  %s %s %s\n", Dim("Confidence "), confidence(a.Confidence), Dim("via "+string(a.Source)))
	if a.Summary != "" {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Summary    "), a.Summary)
	}
	return b.String()
}

func confidence(c float64) string {
	s := fmt.Sprintf("%.0f%%", c*100)
	switch {
	case c >= 0.7:
		return StyleGreen.Render(s)
	case c >= 0.4:
		return StyleYellow.Render(s)
	default:
		return StyleRed.Render(s)
	}
}

// FormatIdeaEstimate renders an analyzed idea: the reading, the mapping
// into pricing inputs and the resulting estimate.
func FormatIdeaEstimate(idea *service.IdeaEstimate) string {
	var b strings.Builder
	b.WriteString(FormatAnalysis(idea.Analysis))
	b.WriteString("\n")

	m := idea.Mapping
	b.WriteString(Header("Mapped inputs"))
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s · %s · %s\n", Dim("Build   "),
		Humanize(string(m.Inputs.IdeaType)), Humanize(string(m.Inputs.ProductFormat)), m.Inputs.TechStack)
	fmt.Fprintf(&b, "  %s %s delivery · %s support\n", Dim("Terms   "), m.Inputs.DeliverySpeed, m.Inputs.SupportDuration)
	if len(m.AppliedRules) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", Dim("Rules   "), strings.Join(m.AppliedRules, ", "))
	}
	if len(m.Unmatched) > 0 {
		fmt.Fprintf(&b, "  %s %s\n", StyleYellow.Render("Unpriced"), strings.Join(m.Unmatched, "; "))
	}
	b.WriteString("\n")
	if len(m.Inputs.SelectedFeatures) > 0 {
		b.WriteString(FormatFeatureList(m.Inputs.SelectedFeatures))
		b.WriteString("\n")
	}
	b.WriteString(FormatEstimate(idea.Estimate, idea.ConfigVersion))
	return b.String()
}
