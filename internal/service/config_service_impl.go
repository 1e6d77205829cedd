package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/quoteforge/internal/cache"
	"github.com/alexanderramin/quoteforge/internal/db"
	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/alexanderramin/quoteforge/internal/repository"
	"golang.org/x/sync/errgroup"
)

const activeConfigKey = "pricing:active"

const defaultConfigLabel = "built-in defaults"

type configService struct {
	configs  repository.PricingConfigRepo
	projects repository.ProjectRepo
	uow      db.UnitOfWork
	cache    *cache.Cache
	workers  int
	observer UseCaseObserver
}

// NewConfigService returns the pricing configuration provider. cache may be
// nil, in which case every call reads the store.
func NewConfigService(
	configs repository.PricingConfigRepo,
	projects repository.ProjectRepo,
	uow db.UnitOfWork,
	c *cache.Cache,
	workers int,
	observers ...UseCaseObserver,
) ConfigService {
	if workers < 1 {
		workers = 1
	}
	return &configService{
		configs:  configs,
		projects: projects,
		uow:      uow,
		cache:    c,
		workers:  workers,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *configService) Active(ctx context.Context) (ActiveConfig, error) {
	if ac, ok := cache.GetJSON[ActiveConfig](ctx, s.cache, activeConfigKey); ok {
		return ac, nil
	}

	ac := ActiveConfig{Version: pricing.DefaultVersion, Label: defaultConfigLabel}
	stored, err := s.configs.GetActive(ctx)
	switch {
	case errors.Is(err, repository.ErrNotFound):
		ac.Config = pricing.DefaultConfiguration()
	case err != nil:
		return ActiveConfig{}, fmt.Errorf("loading active pricing config: %w", err)
	default:
		cfg, err := pricing.Resolve(&stored.Override)
		if err != nil {
			return ActiveConfig{}, fmt.Errorf("pricing config v%d: %w", stored.Version, err)
		}
		ac = ActiveConfig{Version: stored.Version, Label: stored.Label, Config: cfg}
	}

	if err := cache.SetJSON(ctx, s.cache, activeConfigKey, ac); err != nil {
		return ActiveConfig{}, err
	}
	return ac, nil
}

func (s *configService) Save(ctx context.Context, label string, override pricing.Configuration) (v *pricing.Version, err error) {
	fields := map[string]any{"label": label}
	defer observe(ctx, s.observer, "save-pricing-config", time.Now(), &err, fields)

	if _, err = pricing.Resolve(&override); err != nil {
		return nil, err
	}

	var version int
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		repo := repository.NewSQLitePricingConfigRepo(tx)
		var err error
		if version, err = repo.Create(ctx, label, override); err != nil {
			return err
		}
		return repo.Activate(ctx, version)
	})
	if err != nil {
		return nil, fmt.Errorf("saving pricing config: %w", err)
	}
	s.invalidate(ctx)
	fields["version"] = version

	return s.configs.GetByVersion(ctx, version)
}

func (s *configService) History(ctx context.Context) ([]*pricing.Version, error) {
	return s.configs.List(ctx)
}

func (s *configService) Activate(ctx context.Context, version int) (err error) {
	defer observe(ctx, s.observer, "activate-pricing-config", time.Now(), &err, map[string]any{"version": version})

	if version == pricing.DefaultVersion {
		err = s.configs.ClearActive(ctx)
		s.invalidate(ctx)
		return err
	}

	stored, err := s.configs.GetByVersion(ctx, version)
	if err != nil {
		return err
	}
	if _, err = pricing.Resolve(&stored.Override); err != nil {
		return fmt.Errorf("pricing config v%d: %w", version, err)
	}
	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		return repository.NewSQLitePricingConfigRepo(tx).Activate(ctx, version)
	})
	s.invalidate(ctx)
	return err
}

func (s *configService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Delete(ctx, activeConfigKey)
	}
}

// SimulationRow compares one project's stored quote with a re-priced one.
type SimulationRow struct {
	ProjectID string              `json:"projectId"`
	Name      string              `json:"name"`
	OldPrice  float64             `json:"oldPrice"`
	NewPrice  float64             `json:"newPrice"`
	Delta     float64             `json:"delta"`
	OldMargin float64             `json:"oldMargin"`
	NewMargin float64             `json:"newMargin"`
	OldHealth domain.HealthStatus `json:"oldHealth"`
	NewHealth domain.HealthStatus `json:"newHealth"`
}

// SimulationReport summarizes a what-if re-pricing run.
type SimulationReport struct {
	Rows          []SimulationRow `json:"rows"`
	OldTotal      float64         `json:"oldTotal"`
	NewTotal      float64         `json:"newTotal"`
	HealthChanges int             `json:"healthChanges"`
}

func (s *configService) Simulate(ctx context.Context, override pricing.Configuration) (report *SimulationReport, err error) {
	fields := map[string]any{"workers": s.workers}
	defer observe(ctx, s.observer, "simulate-pricing-config", time.Now(), &err, fields)

	candidate, err := pricing.Resolve(&override)
	if err != nil {
		return nil, err
	}
	all, err := s.projects.List(ctx, repository.ProjectFilter{})
	if err != nil {
		return nil, err
	}
	open := make([]*domain.Project, 0, len(all))
	for _, p := range all {
		if p.Status != domain.ProjectArchived {
			open = append(open, p)
		}
	}
	fields["projects"] = len(open)

	rows := make([]SimulationRow, len(open))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, p := range open {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			est := pricing.Estimate(p.Inputs, candidate)
			rows[i] = SimulationRow{
				ProjectID: p.ID,
				Name:      p.Name,
				OldPrice:  p.Estimate.ClientPrice.TotalPrice,
				NewPrice:  est.ClientPrice.TotalPrice,
				Delta:     est.ClientPrice.TotalPrice - p.Estimate.ClientPrice.TotalPrice,
				OldMargin: p.Estimate.Profit.ProfitMargin,
				NewMargin: est.Profit.ProfitMargin,
				OldHealth: p.Estimate.Profit.HealthStatus,
				NewHealth: est.Profit.HealthStatus,
			}
			return nil
		})
	}
	if err = g.Wait(); err != nil {
		return nil, fmt.Errorf("re-pricing projects: %w", err)
	}

	report = &SimulationReport{Rows: rows}
	for _, r := range rows {
		report.OldTotal += r.OldPrice
		report.NewTotal += r.NewPrice
		if r.OldHealth != r.NewHealth {
			report.HealthChanges++
		}
	}
	return report, nil
}
