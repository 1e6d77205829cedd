package formatter

import (
	"fmt"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/charmbracelet/lipgloss"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderShare renders a share bar like [████░░░░]  45% in the given style.
func RenderShare(pct int, width int, style lipgloss.Style) string {
	pct = min(max(pct, 0), 100)
	width = max(width, 2)

	filled := pct * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %3d%%", style.Render(bar), pct)
}

// RenderMargin renders a profit margin bar colored by the health thresholds.
func RenderMargin(margin float64, width int) string {
	style := HealthColor(pricing.ClassifyMargin(margin))
	pct := int(margin + 0.5)
	if margin < 0 {
		pct = 0
	}
	width = max(width, 2)
	filled := min(pct, 100) * width / 100
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	return fmt.Sprintf("[%s] %s", style.Render(bar), Percent(margin))
}
