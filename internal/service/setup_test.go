package service

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/alexanderramin/quoteforge/internal/cache"
	"github.com/alexanderramin/quoteforge/internal/db"
	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/intelligence"
	"github.com/alexanderramin/quoteforge/internal/llm"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/alexanderramin/quoteforge/internal/repository"
	"github.com/alexanderramin/quoteforge/internal/testutil"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	projects  repository.ProjectRepo
	configs   repository.PricingConfigRepo
	uow       db.UnitOfWork
	cache     *cache.Cache
	log       *bytes.Buffer
	Config    ConfigService
	Quotes    QuoteService
	Projects  ProjectService
	Dashboard DashboardService
}

// newTestEnv wires every service against a fresh in-memory database with
// the LLM disabled, so analysis and narratives use the heuristics.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	database := testutil.NewTestDB(t)
	c, err := cache.New(1<<20, time.Minute)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	var buf bytes.Buffer
	obs := NewLogUseCaseObserver(slog.New(slog.NewJSONHandler(&buf, nil)))

	env := &testEnv{
		projects: repository.NewSQLiteProjectRepo(database),
		configs:  repository.NewSQLitePricingConfigRepo(database),
		uow:      testutil.NewTestUoW(database),
		cache:    c,
		log:      &buf,
	}
	client := llm.NewClient(llm.DefaultConfig(), llm.NoopObserver{})
	env.Config = NewConfigService(env.configs, env.projects, env.uow, c, 4, obs)
	env.Quotes = NewQuoteService(env.projects, env.Config,
		intelligence.NewAnalyzerService(client, 0.4), intelligence.NewNarrativeService(client), obs)
	env.Projects = NewProjectService(env.projects, obs)
	env.Dashboard = NewDashboardService(env.projects)
	return env
}

// cheapWebsites prices a business website below its internal cost band.
func cheapWebsites() pricing.Configuration {
	return pricing.Configuration{
		BaseCosts: map[domain.IdeaType]float64{domain.IdeaBusinessWebsite: 8000},
	}
}
