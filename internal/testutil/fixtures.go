package testutil

import (
	"time"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/pricing"
	"github.com/google/uuid"
)

// Project options
type ProjectOption func(*domain.Project)

func WithProjectStatus(s domain.ProjectStatus) ProjectOption {
	return func(p *domain.Project) {
		p.Status = s
	}
}

func WithClient(name, email string) ProjectOption {
	return func(p *domain.Project) {
		p.ClientName = name
		p.ClientEmail = email
	}
}

func WithSource(s domain.ProjectSource) ProjectOption {
	return func(p *domain.Project) {
		p.Source = s
	}
}

func WithNotes(notes string) ProjectOption {
	return func(p *domain.Project) {
		p.Notes = notes
	}
}

func WithCreatedAt(t time.Time) ProjectOption {
	return func(p *domain.Project) {
		p.CreatedAt = t
		p.UpdatedAt = t
	}
}

func WithAnalysis(a domain.AIAnalysis) ProjectOption {
	return func(p *domain.Project) {
		p.Analysis = &a
		p.Source = domain.SourceAI
	}
}

// WithInputs replaces the inputs and re-prices them with the default configuration.
func WithInputs(in domain.PricingInputs) ProjectOption {
	return func(p *domain.Project) {
		p.Inputs = in.Normalize()
		p.Estimate = pricing.Estimate(p.Inputs, pricing.DefaultConfiguration())
	}
}

// WithFeatures adds features to the default business website inputs.
func WithFeatures(ids ...string) ProjectOption {
	return func(p *domain.Project) {
		in := p.Inputs
		in.SelectedFeatures = ids
		WithInputs(in)(p)
	}
}

// BusinessWebsiteInputs is the smallest complete form.
func BusinessWebsiteInputs() domain.PricingInputs {
	return domain.PricingInputs{
		IdeaType:        domain.IdeaBusinessWebsite,
		ProductFormat:   domain.FormatWebsite,
		TechStack:       domain.StackReactNext,
		DeliverySpeed:   domain.SpeedStandard,
		SupportDuration: domain.SupportNone,
	}
}

// NewTestProject returns a new business-website quote priced with the
// default configuration.
func NewTestProject(name string, opts ...ProjectOption) *domain.Project {
	now := time.Now().UTC()
	p := &domain.Project{
		ID:        uuid.New().String(),
		Name:      name,
		Source:    domain.SourceForm,
		Status:    domain.ProjectNew,
		CreatedAt: now,
		UpdatedAt: now,
	}
	WithInputs(BusinessWebsiteInputs())(p)
	for _, opt := range opts {
		opt(p)
	}
	return p
}
