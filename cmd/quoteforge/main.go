package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/quoteforge/internal/cache"
	"github.com/alexanderramin/quoteforge/internal/cli"
	"github.com/alexanderramin/quoteforge/internal/config"
	"github.com/alexanderramin/quoteforge/internal/db"
	"github.com/alexanderramin/quoteforge/internal/httpapi"
	"github.com/alexanderramin/quoteforge/internal/intelligence"
	"github.com/alexanderramin/quoteforge/internal/llm"
	"github.com/alexanderramin/quoteforge/internal/logger"
	"github.com/alexanderramin/quoteforge/internal/repository"
	"github.com/alexanderramin/quoteforge/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log, level := logger.NewLeveled(cfg.Logging, os.Stderr)
	configured := level.Level()
	// One-shot commands only report warnings; serve restores the configured level.
	level.Set(max(configured, slog.LevelWarn))

	database, err := db.OpenDB(cfg.Database.Path)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	configCache, err := cache.New(cfg.Cache.MaxCostBytes, cfg.Cache.TTL)
	if err != nil {
		return fmt.Errorf("creating cache: %w", err)
	}
	defer configCache.Close()

	// Wire repositories
	projectRepo := repository.NewSQLiteProjectRepo(database)
	configRepo := repository.NewSQLitePricingConfigRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// LLM client is a no-op unless QUOTEFORGE_LLM_ENABLED is set.
	llmCfg := llm.LoadConfig()
	var llmObserver llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		llmObserver = llm.NewLogObserver(log)
	}
	llmClient := llm.NewClient(llmCfg, llmObserver)

	// Wire services
	obs := service.NewLogUseCaseObserver(log)
	configSvc := service.NewConfigService(configRepo, projectRepo, uow, configCache, cfg.Repricing.Workers, obs)
	app := &cli.App{
		Quotes: service.NewQuoteService(projectRepo, configSvc,
			intelligence.NewAnalyzerService(llmClient, llmCfg.MinConfidence),
			intelligence.NewNarrativeService(llmClient), obs),
		Projects:      service.NewProjectService(projectRepo, obs),
		Config:        configSvc,
		Dashboard:     service.NewDashboardService(projectRepo),
		IsInteractive: isatty.IsTerminal(os.Stdin.Fd()) && isatty.IsTerminal(os.Stdout.Fd()),
	}

	app.Serve = func(ctx context.Context, addr string) error {
		level.Set(configured)
		serverCfg := cfg.Server
		if addr != "" {
			serverCfg.Addr = addr
		}
		h := httpapi.NewHandlers(app.Quotes, app.Projects, app.Config, app.Dashboard, serverCfg.BodyLimit, log)
		return httpapi.Run(ctx, httpapi.NewServer(serverCfg, h), log)
	}

	return cli.NewRootCmd(app).ExecuteContext(context.Background())
}
