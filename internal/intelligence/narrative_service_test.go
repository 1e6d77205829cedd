package intelligence

import (
	"context"
	"testing"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/llm"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/stretchr/testify/assert"
)

func sampleEstimate() domain.Estimate {
	return pricing.Estimate(domain.PricingInputs{
		IdeaType:         domain.IdeaBusinessWebsite,
		ProductFormat:    domain.FormatWebsite,
		TechStack:        domain.StackReactNext,
		SelectedFeatures: []string{"contact-form", "cms"},
		SupportDuration:  domain.Support3Months,
	}, pricing.DefaultConfiguration())
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "$0", FormatMoney(0))
	assert.Equal(t, "$999", FormatMoney(999))
	assert.Equal(t, "$15,000", FormatMoney(15000))
	assert.Equal(t, "$1,234,567", FormatMoney(1234567))
	assert.Equal(t, "-$2,500", FormatMoney(-2500))
	assert.Equal(t, "$1,001", FormatMoney(1000.6))
}

func TestNarrativeService_UsesValidModelText(t *testing.T) {
	est := sampleEstimate()
	text := "Acme Site is a focused marketing website. We quote " + FormatMoney(est.ClientPrice.TotalPrice) +
		", with support at " + FormatMoney(est.ClientPrice.SupportCost) + "."
	client := &mockLLMClient{response: "  " + text + "\n"}

	got := NewNarrativeService(client).Narrate(context.Background(), "Acme Site", est)
	assert.Equal(t, text, got)
	assert.Equal(t, llm.TaskQuoteNarrative, client.last.Task)
	assert.Contains(t, client.last.UserPrompt, FormatMoney(est.ClientPrice.PriceRange.Max))
}

func TestNarrativeService_FallsBack(t *testing.T) {
	est := sampleEstimate()
	tests := []struct {
		name   string
		client *mockLLMClient
	}{
		{"llm error", &mockLLMClient{err: llm.ErrDisabled}},
		{"empty", &mockLLMClient{response: "   "}},
		{"invented figure", &mockLLMClient{response: "Only $1,999 this week, a bargain."}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewNarrativeService(tt.client).Narrate(context.Background(), "Acme Site", est)
			assert.Equal(t, DeterministicNarrative("Acme Site", est), got)
		})
	}
}

func TestDeterministicNarrative(t *testing.T) {
	est := sampleEstimate()
	got := DeterministicNarrative("Acme Site", est)

	assert.Contains(t, got, "Acme Site covers the core build plus 2 features as a business website.")
	assert.Contains(t, got, FormatMoney(est.ClientPrice.TotalPrice))
	assert.Contains(t, got, FormatMoney(est.ClientPrice.PriceRange.Min))
	assert.NoError(t, validateNarrative(got, est))
}
