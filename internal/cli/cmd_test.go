package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/alexanderramin/quoteforge/internal/cache"
	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/intelligence"
	"github.com/alexanderramin/quoteforge/internal/llm"
	"github.com/alexanderramin/quoteforge/internal/repository"
	"github.com/alexanderramin/quoteforge/internal/service"
	"github.com/alexanderramin/quoteforge/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// testApp wires a full App backed by an in-memory DB with the LLM disabled.
func testApp(t *testing.T) *App {
	t.Helper()
	database := testutil.NewTestDB(t)
	c, err := cache.New(1<<20, time.Minute)
	require.NoError(t, err)
	t.Cleanup(c.Close)

	projects := repository.NewSQLiteProjectRepo(database)
	configs := repository.NewSQLitePricingConfigRepo(database)
	client := llm.NewClient(llm.DefaultConfig(), llm.NoopObserver{})

	cfg := service.NewConfigService(configs, projects, testutil.NewTestUoW(database), c, 2)
	return &App{
		Quotes: service.NewQuoteService(projects, cfg,
			intelligence.NewAnalyzerService(client, 0.4), intelligence.NewNarrativeService(client)),
		Projects:  service.NewProjectService(projects),
		Config:    cfg,
		Dashboard: service.NewDashboardService(projects),
	}
}

// seedQuote saves a default business website quote.
func seedQuote(t *testing.T, app *App, name string) *domain.Project {
	t.Helper()
	p, err := app.Quotes.SaveQuote(context.Background(), service.QuoteRequest{
		Name:       name,
		ClientName: "Acme",
		Source:     domain.SourceForm,
		Inputs:     testutil.BusinessWebsiteInputs(),
	})
	require.NoError(t, err)
	return p
}

// executeCmd runs a cobra command and captures stdout/stderr.
func executeCmd(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(app)
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return buf.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

var websiteFlags = []string{
	"--idea", "business-website", "--format", "website", "--stack", "react-nextjs",
	"--speed", "standard", "--support", "none",
}

// --- root ---

func TestRootCmd_NoArgs_ShowsHelp(t *testing.T) {
	output, err := executeCmd(t, testApp(t))
	require.NoError(t, err)
	assert.Contains(t, output, "quoteforge")
	assert.Contains(t, output, "estimate")
}

// --- estimate ---

func TestEstimateCmd_JSON(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, append([]string{"estimate", "--json"}, websiteFlags...)...)
	require.NoError(t, err)

	var got struct {
		Estimate      domain.Estimate `json:"estimate"`
		ConfigVersion int             `json:"configVersion"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, 15000.0, got.Estimate.ClientPrice.TotalPrice)
	assert.Equal(t, domain.HealthHealthy, got.Estimate.Profit.HealthStatus)
	assert.Equal(t, 0, got.ConfigVersion)
}

func TestEstimateCmd_Text(t *testing.T) {
	output, err := executeCmd(t, testApp(t), append([]string{"estimate"}, websiteFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, output, "$15,000")
}

func TestEstimateCmd_RejectsUnknownEnum(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "estimate", "--idea", "spaceship")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be one of")
}

func TestEstimateCmd_FileWithFlagOverride(t *testing.T) {
	path := writeFile(t, "inputs.yaml", `ideaType: business-website
productFormat: website
techStack: react-nextjs
deliverySpeed: standard
supportDuration: none
`)

	output, err := executeCmd(t, testApp(t), "estimate", "-f", path, "--speed", "priority", "--json")
	require.NoError(t, err)

	var got struct {
		Estimate domain.Estimate `json:"estimate"`
	}
	require.NoError(t, json.Unmarshal([]byte(output), &got))
	assert.Equal(t, domain.SpeedPriority, got.Estimate.Inputs.DeliverySpeed)
	assert.Greater(t, got.Estimate.ClientPrice.TotalPrice, 15000.0)
}

func TestEstimateCmd_SaveRequiresName(t *testing.T) {
	_, err := executeCmd(t, testApp(t), append([]string{"estimate", "--save"}, websiteFlags...)...)
	assert.Error(t, err)
}

func TestEstimateCmd_Save(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, append([]string{"estimate", "--save", "--name", "Acme site", "--client", "Acme"}, websiteFlags...)...)
	require.NoError(t, err)
	assert.Contains(t, output, "Saved quote Acme site")

	projects, err := app.Projects.List(context.Background(), repository.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, domain.SourceForm, projects[0].Source)
	assert.Equal(t, "Acme", projects[0].ClientName)
}

func TestFeaturesCmd(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "features")
	require.NoError(t, err)
	assert.Contains(t, output, "user-auth")
}

// --- analyze ---

func TestAnalyzeCmd_HeuristicFallback(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "analyze", "--json",
		"An online store with a shopping cart and online payments")
	require.NoError(t, err)

	var idea service.IdeaEstimate
	require.NoError(t, json.Unmarshal([]byte(output), &idea))
	assert.Equal(t, domain.AnalysisHeuristic, idea.Analysis.Source)
	assert.Equal(t, domain.AIEcommerce, idea.Analysis.ProjectType)
	assert.Contains(t, idea.Mapping.Inputs.SelectedFeatures, "shopping-cart")
}

func TestAnalyzeCmd_Save(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "analyze", "--save", "--name", "Shop",
		"An online store with a shopping cart")
	require.NoError(t, err)
	assert.Contains(t, output, "Saved quote Shop")

	projects, err := app.Projects.List(context.Background(), repository.ProjectFilter{})
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, domain.SourceAI, projects[0].Source)
	require.NotNil(t, projects[0].Analysis)
	assert.Equal(t, "An online store with a shopping cart", projects[0].Description)
}

func TestAnalyzeCmd_RequiresText(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "analyze")
	assert.Error(t, err)
}

// --- project ---

func TestProjectListCmd(t *testing.T) {
	app := testApp(t)

	output, err := executeCmd(t, app, "project", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No projects found.")

	seedQuote(t, app, "Alpha site")
	seedQuote(t, app, "Beta site")

	output, err = executeCmd(t, app, "project", "list", "--query", "beta")
	require.NoError(t, err)
	assert.Contains(t, output, "Beta site")
	assert.NotContains(t, output, "Alpha site")
}

func TestProjectListCmd_JSONEmptyIsArray(t *testing.T) {
	output, err := executeCmd(t, testApp(t), "project", "list", "--json")
	require.NoError(t, err)
	assert.JSONEq(t, "[]", output)
}

func TestProjectShowCmd_ByPrefix(t *testing.T) {
	app := testApp(t)
	p := seedQuote(t, app, "Prefix site")

	output, err := executeCmd(t, app, "project", "show", p.DisplayID())
	require.NoError(t, err)
	assert.Contains(t, output, "Prefix site")
	assert.Contains(t, output, p.ID)
}

func TestProjectShowCmd_NotFound(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "project", "show", "00000000-0000-0000-0000-000000000000")
	require.Error(t, err)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectStatusAndDeleteCmds(t *testing.T) {
	app := testApp(t)
	p := seedQuote(t, app, "Lifecycle")

	_, err := executeCmd(t, app, "project", "delete", p.ID)
	require.Error(t, err, "only archived quotes can be deleted without --force")

	output, err := executeCmd(t, app, "project", "status", p.ID, "ARCHIVED")
	require.NoError(t, err)
	assert.Contains(t, output, "Lifecycle is now")

	_, err = executeCmd(t, app, "project", "status", p.ID, "approved")
	require.Error(t, err, "archived quotes are frozen")

	output, err = executeCmd(t, app, "project", "delete", p.ID)
	require.NoError(t, err)
	assert.Contains(t, output, "Deleted Lifecycle")
}

func TestProjectDeleteCmd_Force(t *testing.T) {
	app := testApp(t)
	p := seedQuote(t, app, "Forced")

	_, err := executeCmd(t, app, "project", "delete", p.ID, "--force")
	require.NoError(t, err)

	_, err = app.Projects.Get(context.Background(), p.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProjectNotesCmd(t *testing.T) {
	app := testApp(t)
	p := seedQuote(t, app, "Noted")

	output, err := executeCmd(t, app, "project", "notes", p.ID, "call", "client", "friday")
	require.NoError(t, err)
	assert.Contains(t, output, "Notes updated.")

	got, err := app.Projects.Get(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, "call client friday", got.Notes)

	output, err = executeCmd(t, app, "project", "notes", p.ID)
	require.NoError(t, err)
	assert.Contains(t, output, "Notes cleared.")
}

func TestProjectReportCmd(t *testing.T) {
	app := testApp(t)
	p := seedQuote(t, app, "Report site")

	output, err := executeCmd(t, app, "project", "report", p.ID)
	require.NoError(t, err)
	assert.Contains(t, output, "# Report site")
	assert.Contains(t, output, "$15,000")
	assert.NotContains(t, output, "## Internal")

	output, err = executeCmd(t, app, "project", "report", p.ID, "--internal")
	require.NoError(t, err)
	assert.Contains(t, output, "## Internal")

	output, err = executeCmd(t, app, "project", "report", p.ID, "--html")
	require.NoError(t, err)
	assert.Contains(t, output, "<h1")
}

func TestProjectReportCmd_WritesFile(t *testing.T) {
	app := testApp(t)
	p := seedQuote(t, app, "File report")
	out := filepath.Join(t.TempDir(), "report.md")

	output, err := executeCmd(t, app, "project", "report", p.ID, "-o", out)
	require.NoError(t, err)
	assert.Contains(t, output, "Wrote "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# File report")
}

func TestProjectExportCmd(t *testing.T) {
	app := testApp(t)
	seedQuote(t, app, "One")
	seedQuote(t, app, "Two")
	out := filepath.Join(t.TempDir(), "quotes.xlsx")

	output, err := executeCmd(t, app, "project", "export", "-o", out)
	require.NoError(t, err)
	assert.Contains(t, output, "Exported 2 quotes")

	f, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Projects")
	require.NoError(t, err)
	assert.Len(t, rows, 3)
}

// --- config ---

func TestConfigCmd_ImportHistoryActivate(t *testing.T) {
	app := testApp(t)
	seedQuote(t, app, "Existing")
	path := writeFile(t, "cheap.yaml", "baseCosts:\n  business-website: 8000\n")

	output, err := executeCmd(t, app, "config", "history")
	require.NoError(t, err)
	assert.Contains(t, output, "No saved versions")

	output, err = executeCmd(t, app, "config", "simulate", path, "--json")
	require.NoError(t, err)
	var rep service.SimulationReport
	require.NoError(t, json.Unmarshal([]byte(output), &rep))
	assert.Equal(t, 1, rep.HealthChanges)

	output, err = executeCmd(t, app, "config", "import", path, "--label", "cheap sites")
	require.NoError(t, err)
	assert.Contains(t, output, "Saved pricing config v1")

	output, err = executeCmd(t, app, "config", "show", "--json")
	require.NoError(t, err)
	var ac service.ActiveConfig
	require.NoError(t, json.Unmarshal([]byte(output), &ac))
	assert.Equal(t, 1, ac.Version)
	assert.Equal(t, 8000.0, ac.Config.BaseCosts[domain.IdeaBusinessWebsite])

	output, err = executeCmd(t, app, "config", "activate", "0")
	require.NoError(t, err)
	assert.Contains(t, output, "Built-in pricing configuration is active.")
}

func TestConfigCmd_ActivateErrors(t *testing.T) {
	app := testApp(t)

	_, err := executeCmd(t, app, "config", "activate", "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid version")

	_, err = executeCmd(t, app, "config", "activate", "42")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestConfigCmd_ImportRejectsInvalid(t *testing.T) {
	path := writeFile(t, "bad.yaml", "supportCosts:\n  3-months: 1500\n")

	_, err := executeCmd(t, testApp(t), "config", "import", path)
	assert.Error(t, err)
}

// --- dashboard, interactive commands ---

func TestDashboardCmd(t *testing.T) {
	app := testApp(t)
	seedQuote(t, app, "Dash")

	output, err := executeCmd(t, app, "dashboard", "--json")
	require.NoError(t, err)
	var s service.Summary
	require.NoError(t, json.Unmarshal([]byte(output), &s))
	assert.Equal(t, 1, s.Projects)
	assert.Equal(t, 15000.0, s.PipelineValue)
}

func TestInteractiveCmds_RequireTerminal(t *testing.T) {
	app := testApp(t)

	for _, name := range []string{"wizard", "browse"} {
		_, err := executeCmd(t, app, name)
		assert.ErrorIs(t, err, errNotInteractive, name)
	}
}

func TestServeCmd_UsesConfiguredServer(t *testing.T) {
	app := testApp(t)
	var gotAddr string
	app.Serve = func(ctx context.Context, addr string) error {
		gotAddr = addr
		return nil
	}

	_, err := executeCmd(t, app, "serve", "--addr", "127.0.0.1:9999")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9999", gotAddr)
}

func TestServeCmd_Unavailable(t *testing.T) {
	_, err := executeCmd(t, testApp(t), "serve")
	assert.Error(t, err)
}
