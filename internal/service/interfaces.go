package service

import (
	"context"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/intelligence"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/alexanderramin/quoteforge/internal/repository"
)

// QuoteRequest is everything needed to price and store a quote.
type QuoteRequest struct {
	Name        string               `json:"name"`
	ClientName  string               `json:"clientName,omitempty"`
	ClientEmail string               `json:"clientEmail,omitempty"`
	Description string               `json:"description,omitempty"`
	Notes       string               `json:"notes,omitempty"`
	Source      domain.ProjectSource `json:"source,omitempty"`
	Inputs      domain.PricingInputs `json:"inputs"`
	Analysis    *domain.AIAnalysis   `json:"analysis,omitempty"`
}

// IdeaEstimate is a free-text idea read, mapped and priced.
type IdeaEstimate struct {
	Analysis      domain.AIAnalysis          `json:"analysis"`
	Mapping       intelligence.MappingResult `json:"mapping"`
	Estimate      domain.Estimate            `json:"estimate"`
	ConfigVersion int                        `json:"configVersion"`
}

type QuoteService interface {
	// Estimate prices inputs under the active configuration and reports
	// which configuration version was used.
	Estimate(ctx context.Context, inputs domain.PricingInputs) (domain.Estimate, int, error)
	SaveQuote(ctx context.Context, req QuoteRequest) (*domain.Project, error)
	AnalyzeIdea(ctx context.Context, description string) (*IdeaEstimate, error)
	// Narrative is the client-facing summary paragraph for a saved quote.
	Narrative(ctx context.Context, p *domain.Project) string
}

type ProjectService interface {
	// Get accepts a full id or an unambiguous prefix of at least 4 characters.
	Get(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, f repository.ProjectFilter) ([]*domain.Project, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) (*domain.Project, error)
	UpdateNotes(ctx context.Context, id, notes string) error
	Delete(ctx context.Context, id string, force bool) error
}

// ActiveConfig is the resolved configuration currently used for pricing.
type ActiveConfig struct {
	Version int                   `json:"version"`
	Label   string                `json:"label"`
	Config  pricing.Configuration `json:"config"`
}

type ConfigService interface {
	Active(ctx context.Context) (ActiveConfig, error)
	// Save validates override against the defaults, stores it as a new
	// version and makes it active.
	Save(ctx context.Context, label string, override pricing.Configuration) (*pricing.Version, error)
	History(ctx context.Context) ([]*pricing.Version, error)
	// Activate switches to a saved version; pricing.DefaultVersion reverts
	// to the built-in configuration.
	Activate(ctx context.Context, version int) error
	// Simulate re-prices every open project under a candidate override
	// without saving anything.
	Simulate(ctx context.Context, override pricing.Configuration) (*SimulationReport, error)
}

type DashboardService interface {
	Summary(ctx context.Context) (*Summary, error)
}
