package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/intelligence"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/alexanderramin/quoteforge/internal/repository"
	"github.com/google/uuid"
)

type quoteService struct {
	projects repository.ProjectRepo
	configs  ConfigService
	analyzer intelligence.AnalyzerService
	narrator intelligence.NarrativeService
	observer UseCaseObserver
}

func NewQuoteService(
	projects repository.ProjectRepo,
	configs ConfigService,
	analyzer intelligence.AnalyzerService,
	narrator intelligence.NarrativeService,
	observers ...UseCaseObserver,
) QuoteService {
	return &quoteService{
		projects: projects,
		configs:  configs,
		analyzer: analyzer,
		narrator: narrator,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *quoteService) Estimate(ctx context.Context, inputs domain.PricingInputs) (domain.Estimate, int, error) {
	if err := inputs.Validate(); err != nil {
		return domain.Estimate{}, 0, err
	}
	active, err := s.configs.Active(ctx)
	if err != nil {
		return domain.Estimate{}, 0, err
	}
	return pricing.Estimate(inputs.Normalize(), active.Config), active.Version, nil
}

func (s *quoteService) SaveQuote(ctx context.Context, req QuoteRequest) (p *domain.Project, err error) {
	fields := map[string]any{"idea_type": string(req.Inputs.IdeaType)}
	defer observe(ctx, s.observer, "save-quote", time.Now(), &err, fields)

	if req.Inputs.IdeaType == domain.IdeaUnset {
		return nil, fmt.Errorf("%w: idea type is required to save a quote", domain.ErrValidation)
	}
	if req.Source == "" {
		req.Source = domain.SourceForm
	}

	now := time.Now().UTC()
	p = &domain.Project{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(req.Name),
		ClientName:  strings.TrimSpace(req.ClientName),
		ClientEmail: strings.TrimSpace(req.ClientEmail),
		Description: strings.TrimSpace(req.Description),
		Notes:       req.Notes,
		Source:      req.Source,
		Status:      domain.ProjectNew,
		Inputs:      req.Inputs.Normalize(),
		Analysis:    req.Analysis,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err = p.Validate(); err != nil {
		return nil, err
	}

	if p.Estimate, p.ConfigVersion, err = s.Estimate(ctx, p.Inputs); err != nil {
		return nil, err
	}
	if err = s.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("saving quote: %w", err)
	}
	fields["project_id"] = p.ID
	fields["total_price"] = p.Estimate.ClientPrice.TotalPrice
	fields["config_version"] = p.ConfigVersion
	return p, nil
}

func (s *quoteService) AnalyzeIdea(ctx context.Context, description string) (res *IdeaEstimate, err error) {
	fields := map[string]any{}
	defer observe(ctx, s.observer, "analyze-idea", time.Now(), &err, fields)

	analysis, err := s.analyzer.Analyze(ctx, description)
	if err != nil {
		return nil, err
	}
	fields["source"] = string(analysis.Source)
	fields["project_type"] = string(analysis.ProjectType)

	mapping := intelligence.MapAnalysisToInputs(*analysis)
	est, version, err := s.Estimate(ctx, mapping.Inputs)
	if err != nil {
		return nil, err
	}
	fields["unmatched"] = len(mapping.Unmatched)
	return &IdeaEstimate{
		Analysis:      *analysis,
		Mapping:       mapping,
		Estimate:      est,
		ConfigVersion: version,
	}, nil
}

func (s *quoteService) Narrative(ctx context.Context, p *domain.Project) string {
	return s.narrator.Narrate(ctx, p.Name, p.Estimate)
}
