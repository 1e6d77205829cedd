package service

import (
	"context"
	"testing"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/alexanderramin/quoteforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigService_ActiveDefaultsWhenNothingSaved(t *testing.T) {
	env := newTestEnv(t)

	ac, err := env.Config.Active(context.Background())
	require.NoError(t, err)
	assert.Equal(t, pricing.DefaultVersion, ac.Version)
	assert.Equal(t, pricing.DefaultConfiguration(), ac.Config)
}

func TestConfigService_SaveActivatesAndResolvesOverDefaults(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	// Warm the cache with the defaults first.
	_, err := env.Config.Active(ctx)
	require.NoError(t, err)
	env.cache.Wait()

	v, err := env.Config.Save(ctx, "cheap sites", cheapWebsites())
	require.NoError(t, err)
	assert.True(t, v.Active)
	assert.Equal(t, 1, v.Version)

	ac, err := env.Config.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, ac.Version)
	assert.Equal(t, "cheap sites", ac.Label)
	assert.Equal(t, 8000.0, ac.Config.BaseCosts[domain.IdeaBusinessWebsite])
	assert.Equal(t, 35000.0, ac.Config.BaseCosts[domain.IdeaMobileApp], "untouched keys keep defaults")
	assert.Contains(t, env.log.String(), `"use_case":"save-pricing-config"`)
}

func TestConfigService_SaveRejectsInvalidOverride(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.Config.Save(ctx, "broken", pricing.Configuration{
		HourlyRates: map[domain.Role]float64{domain.RoleQA: -5},
	})
	require.ErrorIs(t, err, pricing.ErrInvalidConfiguration)

	history, err := env.Config.History(ctx)
	require.NoError(t, err)
	assert.Empty(t, history, "nothing is stored when validation fails")
}

func TestConfigService_ActivateSwitchesAndReverts(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	v1, err := env.Config.Save(ctx, "one", cheapWebsites())
	require.NoError(t, err)
	_, err = env.Config.Save(ctx, "two", pricing.Configuration{FeatureBaseCost: 3000})
	require.NoError(t, err)

	require.NoError(t, env.Config.Activate(ctx, v1.Version))
	ac, err := env.Config.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, v1.Version, ac.Version)

	require.NoError(t, env.Config.Activate(ctx, pricing.DefaultVersion))
	ac, err = env.Config.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, pricing.DefaultVersion, ac.Version)

	assert.Error(t, env.Config.Activate(ctx, 99))

	history, err := env.Config.History(ctx)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "two", history[0].Label)
}

func TestConfigService_SimulateReportsPriceAndHealthChanges(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	site := testutil.NewTestProject("Site")
	app := testutil.NewTestProject("App", testutil.WithInputs(domain.PricingInputs{
		IdeaType:      domain.IdeaMobileApp,
		ProductFormat: domain.FormatMobileApp,
		TechStack:     domain.StackFlutter,
	}))
	archived := testutil.NewTestProject("Old", testutil.WithProjectStatus(domain.ProjectArchived))
	for _, p := range []*domain.Project{site, app, archived} {
		require.NoError(t, env.projects.Create(ctx, p))
	}

	report, err := env.Config.Simulate(ctx, cheapWebsites())
	require.NoError(t, err)
	require.Len(t, report.Rows, 2, "archived projects are not re-priced")

	byID := map[string]SimulationRow{}
	for _, r := range report.Rows {
		byID[r.ProjectID] = r
	}
	siteRow := byID[site.ID]
	assert.Equal(t, 15000.0, siteRow.OldPrice)
	assert.Equal(t, 8000.0, siteRow.NewPrice)
	assert.Equal(t, -7000.0, siteRow.Delta)
	assert.Equal(t, domain.HealthHealthy, siteRow.OldHealth)
	assert.Equal(t, domain.HealthCritical, siteRow.NewHealth)

	appRow := byID[app.ID]
	assert.Zero(t, appRow.Delta)
	assert.Equal(t, 1, report.HealthChanges)
	assert.Equal(t, report.OldTotal-7000, report.NewTotal)

	// Nothing was persisted.
	stored, err := env.projects.GetByID(ctx, site.ID)
	require.NoError(t, err)
	assert.Equal(t, 15000.0, stored.Estimate.ClientPrice.TotalPrice)
	ac, err := env.Config.Active(ctx)
	require.NoError(t, err)
	assert.Equal(t, pricing.DefaultVersion, ac.Version)
}

func TestConfigService_SimulateRejectsInvalidCandidate(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.Config.Simulate(context.Background(), pricing.Configuration{
		SupportCosts: map[domain.SupportDuration]float64{domain.Support3Months: 2500},
	})
	assert.ErrorIs(t, err, pricing.ErrInvalidConfiguration)
}
