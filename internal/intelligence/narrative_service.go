package intelligence

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/llm"
)

// NarrativeService writes the opening paragraph of a quote report.
type NarrativeService interface {
	Narrate(ctx context.Context, name string, est domain.Estimate) string
}

type narrativeService struct {
	client llm.LLMClient
}

func NewNarrativeService(client llm.LLMClient) NarrativeService {
	return &narrativeService{client: client}
}

// FormatMoney renders a whole-dollar amount with thousands separators.
func FormatMoney(v float64) string {
	neg := v < 0
	if neg {
		v = -v
	}
	s := fmt.Sprintf("%.0f", v)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	if neg {
		return "-$" + b.String()
	}
	return "$" + b.String()
}

func (s *narrativeService) Narrate(ctx context.Context, name string, est domain.Estimate) string {
	facts := fmt.Sprintf("Project: %s\nType: %s\nFeatures: %s\nTimeline: %d weeks\nTeam: %d-%d people\nPrice range: %s to %s\nQuoted price: %s",
		name, est.Inputs.IdeaType, strings.Join(est.Inputs.SelectedFeatures, ", "),
		est.Timeline.TotalWeeks, est.Timeline.TeamSize.Min, est.Timeline.TeamSize.Max,
		FormatMoney(est.ClientPrice.PriceRange.Min), FormatMoney(est.ClientPrice.PriceRange.Max),
		FormatMoney(est.ClientPrice.TotalPrice))

	resp, err := s.client.Generate(ctx, llm.GenerateRequest{
		Task:         llm.TaskQuoteNarrative,
		SystemPrompt: quoteNarrativeSystemPrompt,
		UserPrompt:   facts,
	})
	if err != nil {
		return DeterministicNarrative(name, est)
	}
	text := strings.TrimSpace(resp.Text)
	if err := validateNarrative(text, est); err != nil {
		return DeterministicNarrative(name, est)
	}
	return text
}

var moneyPattern = regexp.MustCompile(`\$[0-9][0-9,]*`)

// validateNarrative rejects empty or oversized text and any dollar figure
// that is not one of the quote's own amounts.
func validateNarrative(text string, est domain.Estimate) error {
	if text == "" || len(text) > 1200 {
		return fmt.Errorf("%w: narrative length %d", llm.ErrInvalidOutput, len(text))
	}
	allowed := map[string]bool{
		FormatMoney(est.ClientPrice.TotalPrice):    true,
		FormatMoney(est.ClientPrice.PriceRange.Min): true,
		FormatMoney(est.ClientPrice.PriceRange.Max): true,
		FormatMoney(est.ClientPrice.SupportCost):   true,
	}
	for _, m := range moneyPattern.FindAllString(text, -1) {
		if !allowed[strings.TrimRight(m, ",")] {
			return fmt.Errorf("%w: unexpected amount %s", llm.ErrInvalidOutput, m)
		}
	}
	return nil
}

// DeterministicNarrative builds the paragraph from the estimate alone.
func DeterministicNarrative(name string, est domain.Estimate) string {
	scope := "the core build"
	if n := len(est.Inputs.SelectedFeatures); n > 0 {
		scope = fmt.Sprintf("the core build plus %d features", n)
	}
	text := fmt.Sprintf("%s covers %s as a %s. We expect delivery in about %d weeks with a team of %d to %d people.",
		name, scope, strings.ReplaceAll(string(est.Inputs.IdeaType), "-", " "),
		est.Timeline.TotalWeeks, est.Timeline.TeamSize.Min, est.Timeline.TeamSize.Max)
	text += fmt.Sprintf(" The quoted price is %s, within an expected range of %s to %s.",
		FormatMoney(est.ClientPrice.TotalPrice),
		FormatMoney(est.ClientPrice.PriceRange.Min), FormatMoney(est.ClientPrice.PriceRange.Max))
	return text
}
