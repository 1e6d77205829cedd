package pricing

import (
	"math"
	"testing"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeInternalCost_UnknownFeaturesSkipped(t *testing.T) {
	cfg := DefaultConfiguration()
	in := businessWebsite()
	in.SelectedFeatures = []string{"time-machine"}

	with := ComputeInternalCost(in, cfg)
	without := ComputeInternalCost(businessWebsite(), cfg)
	assert.Equal(t, without.TotalLaborCost, with.TotalLaborCost)
}

func TestComputeInternalCost_FormatMultiplierScalesHours(t *testing.T) {
	cfg := DefaultConfiguration()
	in := businessWebsite()
	in.ProductFormat = domain.FormatWebsiteAndApp

	cost := ComputeInternalCost(in, cfg)
	assert.Equal(t, 72, cost.LaborCosts[0].Hours) // 48 * 1.5
	assert.Equal(t, 36, cost.LaborCosts[1].Hours)
}

func TestComputeInternalCost_MissingHourlyRateFallsBack(t *testing.T) {
	cfg := DefaultConfiguration()
	delete(cfg.HourlyRates, domain.RoleBackend)

	cost := ComputeInternalCost(businessWebsite(), cfg)
	assert.Equal(t, 55.0, cost.LaborCosts[1].HourlyRate)
}

func TestRiskBufferPct_Capped(t *testing.T) {
	cases := []struct {
		name     string
		idea     domain.IdeaType
		features []string
		want     float64
	}{
		{"base", domain.IdeaStartupProduct, nil, 0.10},
		{"seven features", domain.IdeaStartupProduct, tenFeatures()[:7], 0.13},
		{"ten features", domain.IdeaStartupProduct, tenFeatures(), 0.15},
		{"ai idea", domain.IdeaAIPoweredProduct, nil, 0.15},
		{"ai feature", domain.IdeaMobileApp, []string{"ai-recommendations"}, 0.15},
		{"everything", domain.IdeaAIPoweredProduct, append(tenFeatures(), "ai-chatbot"), 0.20},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			in := domain.PricingInputs{IdeaType: tc.idea, SelectedFeatures: tc.features}
			cost := ComputeInternalCost(in, DefaultConfiguration())
			assert.InDelta(t, tc.want, cost.RiskBufferPct, 1e-9)
			assert.LessOrEqual(t, cost.RiskBufferPct, 0.20)
		})
	}
}

func TestComputeClientPrice_AIComplexityNeverLowers(t *testing.T) {
	cfg := DefaultConfiguration()
	in := businessWebsite()
	in.SelectedFeatures = tenFeatures()[:5] // tier 1.15

	in.ComplexityLevel = domain.ComplexityBasic
	assert.Equal(t, 1.15, ComputeClientPrice(in, cfg).ComplexityMultiplier)

	in.ComplexityLevel = domain.ComplexityAdvanced
	assert.Equal(t, 1.5, ComputeClientPrice(in, cfg).ComplexityMultiplier)
}

func TestComputeClientPrice_ComplexityTiers(t *testing.T) {
	for n, want := range map[int]float64{0: 1.0, 3: 1.0, 4: 1.15, 6: 1.15, 7: 1.30, 9: 1.30, 10: 1.50} {
		assert.Equal(t, want, complexityTier(n), "n=%d", n)
	}
}

func TestComputeClientPrice_FeatureCosts(t *testing.T) {
	in := businessWebsite()
	in.SelectedFeatures = []string{"payments", "unknown-thing"}

	cfg := DefaultConfiguration()
	assert.Equal(t, 5500.0+2500.0, ComputeClientPrice(in, cfg).FeaturesCost)

	cfg.FeatureCosts = map[string]float64{}
	assert.Equal(t, 5000.0, ComputeClientPrice(in, cfg).FeaturesCost)
}

func TestComputeClientPrice_SupportAddedAfterRounding(t *testing.T) {
	cfg := DefaultConfiguration()
	in := businessWebsite()
	in.TechStack = domain.StackAngular // 16500 -> 17000 (half away from zero)
	in.SupportDuration = domain.Support6Months

	p := ComputeClientPrice(in, cfg)
	assert.Equal(t, 6000.0, p.SupportCost)
	assert.Equal(t, 23000.0, p.TotalPrice)
}

func TestRoundToThousand(t *testing.T) {
	assert.Equal(t, 13000.0, roundToThousand(12750))
	assert.Equal(t, 17000.0, roundToThousand(17250))
	assert.Equal(t, 17000.0, roundToThousand(16500))
	assert.Equal(t, -2000.0, roundToThousand(-1500))
	assert.Equal(t, 0.0, roundToThousand(499))
}

func TestClassifyMargin_Boundaries(t *testing.T) {
	assert.Equal(t, domain.HealthHealthy, ClassifyMargin(45.0))
	assert.Equal(t, domain.HealthWarning, ClassifyMargin(44.999))
	assert.Equal(t, domain.HealthWarning, ClassifyMargin(30.0))
	assert.Equal(t, domain.HealthCritical, ClassifyMargin(29.999))
	assert.Equal(t, domain.HealthCritical, ClassifyMargin(-20))
}

func TestComputeProfit_ZeroPriceGuard(t *testing.T) {
	p := ComputeProfit(domain.ClientPrice{}, domain.InternalCost{TotalInternalCost: 500})
	assert.Zero(t, p.ProfitMargin)
	assert.False(t, math.IsNaN(p.ProfitMargin))
	assert.Equal(t, -500.0, p.Profit)
	assert.Equal(t, domain.HealthCritical, p.HealthStatus)
}

func TestComputeProfit_Margin(t *testing.T) {
	p := ComputeProfit(domain.ClientPrice{TotalPrice: 20000}, domain.InternalCost{TotalInternalCost: 11000})
	assert.Equal(t, 9000.0, p.Profit)
	assert.InDelta(t, 45.0, p.ProfitMargin, 1e-9)
	assert.Equal(t, domain.HealthHealthy, p.HealthStatus)
}

func TestComputeTeamSize(t *testing.T) {
	assert.Equal(t, domain.TeamSize{Min: 2, Max: 3}, ComputeTeamSize(0))
	assert.Equal(t, domain.TeamSize{Min: 3, Max: 8}, ComputeTeamSize(10))
	assert.Equal(t, domain.TeamSize{Min: 5, Max: 8}, ComputeTeamSize(20))
	assert.Equal(t, domain.TeamSize{Min: 8, Max: 10}, ComputeTeamSize(40))
}

func TestDistributePhases(t *testing.T) {
	cases := map[int][]int{
		1:  {0, 0, 0, 0, 1},
		2:  {0, 0, 1, 0, 1},
		4:  {1, 1, 2, 0, 1},
		10: {2, 2, 5, 1, 1},
		20: {3, 4, 9, 2, 2},
	}
	for weeks, want := range cases {
		got := make([]int, 0, 5)
		for _, p := range distributePhases(weeks) {
			got = append(got, p.Weeks)
		}
		assert.Equal(t, want, got, "weeks=%d", weeks)
	}
}

func TestComputeTimeline_SpeedCompresses(t *testing.T) {
	cfg := DefaultConfiguration()
	in := domain.PricingInputs{IdeaType: domain.IdeaEnterpriseSoftware, SelectedFeatures: tenFeatures()}
	cost := domain.InternalCost{LaborCosts: []domain.RoleCost{{Role: domain.RoleBackend, Hours: 2200}}}

	standard := ComputeTimeline(in, cost, cfg)
	in.DeliverySpeed = domain.SpeedPriority
	rushed := ComputeTimeline(in, cost, cfg)

	// 2200h / (5.5 * 40) = 10 weeks; 10 / 1.4 -> 8
	assert.Equal(t, 11, standard.TotalWeeks)
	assert.Less(t, rushed.TotalWeeks, standard.TotalWeeks)
}

func TestComputeCostBreakdown_ZeroTotal(t *testing.T) {
	rows := ComputeCostBreakdown(domain.InternalCost{})
	require.Len(t, rows, 8)
	for _, r := range rows {
		assert.Zero(t, r.Percentage)
		assert.Zero(t, r.Amount)
	}
}

func TestComputeCostBreakdown_Categories(t *testing.T) {
	est := Estimate(businessWebsite(), DefaultConfiguration())
	rows := est.Breakdown

	byName := map[string]domain.CostBreakdown{}
	for _, r := range rows {
		byName[r.Category] = r
	}
	assert.Equal(t, 2160.0, byName["Product Engineering"].Amount)
	assert.Equal(t, 29, byName["Product Engineering"].Percentage)
	assert.Equal(t, 243.0, byName["Security & Data Protection"].Amount)
	assert.Equal(t, 1167.0, byName["Infrastructure & Tools"].Amount)
	assert.Equal(t, 681.0, byName["Support & Risk Coverage"].Amount)
	assert.Equal(t, 600.0, byName["Product Management"].Amount)
}

func TestComputeRiskWarnings_Rules(t *testing.T) {
	tl := domain.Timeline{TotalWeeks: 6}

	t.Run("critical margin", func(t *testing.T) {
		w := ComputeRiskWarnings(businessWebsite(), domain.ProfitAnalysis{ProfitMargin: 12}, tl)
		require.Len(t, w, 1)
		assert.Equal(t, domain.WarningMargin, w[0].Type)
		assert.Equal(t, domain.SeverityHigh, w[0].Severity)
	})

	t.Run("thin margin", func(t *testing.T) {
		w := ComputeRiskWarnings(businessWebsite(), domain.ProfitAnalysis{ProfitMargin: 35}, tl)
		require.Len(t, w, 1)
		assert.Equal(t, domain.SeverityMedium, w[0].Severity)
	})

	t.Run("faster delivery", func(t *testing.T) {
		in := businessWebsite()
		in.DeliverySpeed = domain.SpeedFaster
		w := ComputeRiskWarnings(in, domain.ProfitAnalysis{ProfitMargin: 60}, tl)
		require.Len(t, w, 1)
		assert.Equal(t, domain.WarningTimeline, w[0].Type)
		assert.Equal(t, domain.SeverityMedium, w[0].Severity)
	})

	t.Run("feature count and ai co-occur", func(t *testing.T) {
		in := businessWebsite()
		in.SelectedFeatures = append(tenFeatures(), "ai-chatbot")
		w := ComputeRiskWarnings(in, domain.ProfitAnalysis{ProfitMargin: 60}, tl)
		require.Len(t, w, 2)
		assert.Equal(t, domain.WarningComplexity, w[0].Type)
		assert.Equal(t, domain.WarningComplexity, w[1].Type)
	})

	t.Run("healthy standard", func(t *testing.T) {
		w := ComputeRiskWarnings(businessWebsite(), domain.ProfitAnalysis{ProfitMargin: 50}, tl)
		assert.Empty(t, w)
	})
}
