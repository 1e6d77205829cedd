package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/quoteforge/internal/domain"
	"github.com/alexanderramin/quoteforge/internal/repository"
)

const minIDPrefix = 4

type projectService struct {
	projects repository.ProjectRepo
	observer UseCaseObserver
}

func NewProjectService(projects repository.ProjectRepo, observers ...UseCaseObserver) ProjectService {
	return &projectService{projects: projects, observer: useCaseObserverOrNoop(observers)}
}

func (s *projectService) Get(ctx context.Context, id string) (*domain.Project, error) {
	id = strings.TrimSpace(id)
	p, err := s.projects.GetByID(ctx, id)
	if err == nil || !errors.Is(err, repository.ErrNotFound) || len(id) < minIDPrefix {
		return p, err
	}

	all, listErr := s.projects.List(ctx, repository.ProjectFilter{})
	if listErr != nil {
		return nil, listErr
	}
	var match *domain.Project
	for _, candidate := range all {
		if !strings.HasPrefix(candidate.ID, strings.ToLower(id)) {
			continue
		}
		if match != nil {
			return nil, fmt.Errorf("%w: id prefix %q matches more than one project", domain.ErrValidation, id)
		}
		match = candidate
	}
	if match == nil {
		return nil, err
	}
	return match, nil
}

func (s *projectService) List(ctx context.Context, f repository.ProjectFilter) ([]*domain.Project, error) {
	if f.Status != "" && !f.Status.Valid() {
		return nil, fmt.Errorf("%w: unknown project status %q", domain.ErrValidation, f.Status)
	}
	if f.Health != "" && !f.Health.Valid() {
		return nil, fmt.Errorf("%w: unknown health status %q", domain.ErrValidation, f.Health)
	}
	return s.projects.List(ctx, f)
}

func (s *projectService) UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) (p *domain.Project, err error) {
	fields := map[string]any{"status": string(status)}
	defer observe(ctx, s.observer, "update-project-status", time.Now(), &err, fields)

	if p, err = s.Get(ctx, id); err != nil {
		return nil, err
	}
	fields["project_id"] = p.ID
	fields["from"] = string(p.Status)
	if err = p.CanTransition(status); err != nil {
		return nil, err
	}
	if err = s.projects.UpdateStatus(ctx, p.ID, status); err != nil {
		return nil, err
	}
	return s.projects.GetByID(ctx, p.ID)
}

func (s *projectService) UpdateNotes(ctx context.Context, id, notes string) error {
	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.projects.UpdateNotes(ctx, p.ID, notes)
}

func (s *projectService) Delete(ctx context.Context, id string, force bool) (err error) {
	defer observe(ctx, s.observer, "delete-project", time.Now(), &err, map[string]any{"force": force})

	p, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	if !force && p.Status != domain.ProjectArchived {
		return fmt.Errorf("%w: project must be archived before deletion (use --force to override)", domain.ErrValidation)
	}
	return s.projects.Delete(ctx, p.ID)
}
