package formatter

import (
	"testing"
	"time"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/intelligence"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/alexanderramin/quoteforge/internal/service"
	"github.com/alexanderramin/quoteforge/internal/testutil"
	"github.com/stretchr/testify/assert"
)

func TestFormatEstimate(t *testing.T) {
	p := testutil.NewTestProject("Acme site")
	out := stripANSI(FormatEstimate(p.Estimate, 0))

	assert.Contains(t, out, "$15,000")
	assert.Contains(t, out, "built-in")
	assert.Contains(t, out, "PRICE BUILD-UP")
	assert.Contains(t, out, "● HEALTHY")
	for _, ph := range p.Estimate.Timeline.Phases {
		assert.Contains(t, out, ph.Name)
	}
	assert.Contains(t, out, "Product Engineering")
	assert.NotContains(t, out, "RISKS")

	assert.Contains(t, stripANSI(FormatEstimate(p.Estimate, 3)), "v3")
}

func TestFormatEstimate_Warnings(t *testing.T) {
	in := testutil.BusinessWebsiteInputs()
	in.DeliverySpeed = domain.SpeedPriority
	p := testutil.NewTestProject("Rush", testutil.WithInputs(in))

	out := stripANSI(FormatEstimate(p.Estimate, 0))
	assert.Contains(t, out, "RISKS")
	assert.Contains(t, out, "▲ HIGH")
	assert.Contains(t, out, "[timeline]")
}

func TestFormatProjectList(t *testing.T) {
	p := testutil.NewTestProject("Acme site", testutil.WithClient("Acme", ""))
	p.ID = "abcdef12-3456-7890-abcd-ef1234567890"
	bare := testutil.NewTestProject("No client", testutil.WithProjectStatus(domain.ProjectApproved))

	out := stripANSI(FormatProjectList([]*domain.Project{p, bare}))
	assert.Contains(t, out, "abcdef12")
	assert.NotContains(t, out, "abcdef12-3456")
	assert.Contains(t, out, "Acme site")
	assert.Contains(t, out, "$15,000")
	assert.Contains(t, out, "Approved")
	assert.Contains(t, out, "Today")
}

func TestFormatProjectDetail(t *testing.T) {
	p := testutil.NewTestProject("Acme site",
		testutil.WithClient("Acme", "ops@acme.test"),
		testutil.WithFeatures("contact-form", "teleportation"),
		testutil.WithNotes("follow up"),
		testutil.WithAnalysis(*intelligence.DeterministicAnalysis("A simple website for a bakery with a contact form.")),
	)
	out := stripANSI(FormatProjectDetail(p))

	assert.Contains(t, out, p.ID)
	assert.Contains(t, out, "Acme <ops@acme.test>")
	assert.Contains(t, out, "follow up")
	assert.Contains(t, out, "Contact Form")
	assert.Contains(t, out, "teleportation (not in catalog)")
	assert.Contains(t, out, "IDEA ANALYSIS")
	assert.Contains(t, out, "via heuristic")
}

func TestFormatFeatureCatalog(t *testing.T) {
	out := stripANSI(FormatFeatureCatalog(pricing.FeatureCatalog))
	for _, cat := range []string{"CORE", "COMMERCE", "AI"} {
		assert.Contains(t, out, cat)
	}
	assert.Contains(t, out, "user-auth")
	assert.Contains(t, out, "User Authentication")
	assert.Contains(t, out, "$3,000")
}

func TestFormatIdeaEstimate(t *testing.T) {
	a := intelligence.DeterministicAnalysis("An online shop selling candles with a blog")
	mapping := intelligence.MapAnalysisToInputs(*a)
	idea := &service.IdeaEstimate{
		Analysis: *a,
		Mapping:  mapping,
		Estimate: pricing.Estimate(mapping.Inputs, pricing.DefaultConfiguration()),
	}
	out := stripANSI(FormatIdeaEstimate(idea))

	assert.Contains(t, out, "Ecommerce")
	assert.Contains(t, out, "MAPPED INPUTS")
	assert.Contains(t, out, "accounts")
	assert.Contains(t, out, "Shopping Cart & Checkout")
}

func TestFormatActiveConfigAndHistory(t *testing.T) {
	out := stripANSI(FormatActiveConfig(service.ActiveConfig{
		Version: 0, Label: "built-in defaults", Config: pricing.DefaultConfiguration(),
	}))
	assert.Contains(t, out, "built-in defaults")
	assert.Contains(t, out, "business-website")
	assert.Contains(t, out, "$15,000")
	assert.Contains(t, out, "$45/h")
	assert.Contains(t, out, "12-months")

	hist := stripANSI(FormatConfigHistory([]*pricing.Version{
		{Version: 2, Label: "spring", Active: true, CreatedAt: time.Now()},
		{Version: 1, Label: "winter", CreatedAt: time.Now()},
	}))
	assert.Contains(t, hist, "v2")
	assert.Contains(t, hist, "● active")
	assert.Contains(t, hist, "winter")
}

func TestFormatSimulation(t *testing.T) {
	out := stripANSI(FormatSimulation(&service.SimulationReport{
		Rows: []service.SimulationRow{{
			ProjectID: "abcdef12-0000", Name: "Acme", OldPrice: 15000, NewPrice: 8000, Delta: -7000,
			OldMargin: 50, NewMargin: 6.4, OldHealth: domain.HealthHealthy, NewHealth: domain.HealthCritical,
		}},
		OldTotal: 15000, NewTotal: 8000, HealthChanges: 1,
	}))
	assert.Contains(t, out, "-$7,000")
	assert.Contains(t, out, "healthy → critical")
	assert.Contains(t, out, "1 health changes")
}

func TestFormatDashboard(t *testing.T) {
	out := stripANSI(FormatDashboard(&service.Summary{
		Projects:      3,
		ByStatus:      map[domain.ProjectStatus]int{domain.ProjectNew: 2, domain.ProjectApproved: 1},
		ByHealth:      map[domain.HealthStatus]int{domain.HealthHealthy: 2, domain.HealthCritical: 1},
		MeanPrice:     12666,
		MedianPrice:   15000,
		P90Price:      15000,
		MeanMargin:    35.5,
		PipelineValue: 38000,
		AtRisk:        []service.ProjectDigest{{ID: "deadbeef-1", Name: "Cheap", TotalPrice: 8000, ProfitMargin: 6.4}},
	}))
	assert.Contains(t, out, "3 quotes")
	assert.Contains(t, out, "$38,000 open value")
	assert.Contains(t, out, "AT RISK")
	assert.Contains(t, out, "Cheap")
	assert.Contains(t, out, "6.4%")
}
