package repository

import (
	"context"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/pricing"
)

// ProjectFilter narrows List. Zero fields match everything.
type ProjectFilter struct {
	Status domain.ProjectStatus
	Health domain.HealthStatus
	// Query matches name, client name and description, case-insensitively.
	Query string
	Limit int
}

type ProjectRepo interface {
	Create(ctx context.Context, p *domain.Project) error
	GetByID(ctx context.Context, id string) (*domain.Project, error)
	List(ctx context.Context, f ProjectFilter) ([]*domain.Project, error)
	UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) error
	UpdateNotes(ctx context.Context, id, notes string) error
	Delete(ctx context.Context, id string) error
}

type PricingConfigRepo interface {
	// Create stores a new inactive version and returns its number.
	Create(ctx context.Context, label string, override pricing.Configuration) (int, error)
	GetActive(ctx context.Context) (*pricing.Version, error)
	GetByVersion(ctx context.Context, version int) (*pricing.Version, error)
	// List returns every version, newest first.
	List(ctx context.Context) ([]*pricing.Version, error)
	// Activate clears the previous active flag and sets it on version.
	// Run it inside a UnitOfWork so the two writes land together.
	Activate(ctx context.Context, version int) error
	// ClearActive reverts to the built-in configuration.
	ClearActive(ctx context.Context) error
}
