package domain

import (
	"fmt"
	"strings"
	"time"
)

// Project is a persisted quote: the inputs a client chose and the estimate
// snapshot computed for them under a specific pricing configuration version.
type Project struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	ClientName    string        `json:"clientName,omitempty"`
	ClientEmail   string        `json:"clientEmail,omitempty"`
	Description   string        `json:"description,omitempty"`
	Source        ProjectSource `json:"source"`
	Status        ProjectStatus `json:"status"`
	Inputs        PricingInputs `json:"inputs"`
	Estimate      Estimate      `json:"estimate"`
	ConfigVersion int           `json:"configVersion"`
	Analysis      *AIAnalysis   `json:"analysis,omitempty"`
	Notes         string        `json:"notes,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

// Validate checks the fields a project needs before it can be stored.
func (p *Project) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: project name is required", ErrValidation)
	}
	if !p.Status.Valid() {
		return fmt.Errorf("%w: unknown project status %q", ErrValidation, p.Status)
	}
	if !p.Source.Valid() {
		return fmt.Errorf("%w: unknown project source %q", ErrValidation, p.Source)
	}
	if p.ClientEmail != "" && !strings.Contains(p.ClientEmail, "@") {
		return fmt.Errorf("%w: client email %q is not an address", ErrValidation, p.ClientEmail)
	}
	return p.Inputs.Validate()
}

// DisplayID returns the first 8 characters of the ID.
func (p *Project) DisplayID() string {
	if len(p.ID) >= 8 {
		return p.ID[:8]
	}
	return p.ID
}

// CanTransition reports whether the status may move from the current value to next.
// Archived projects are frozen.
func (p *Project) CanTransition(next ProjectStatus) error {
	if !next.Valid() {
		return fmt.Errorf("%w: unknown project status %q", ErrValidation, next)
	}
	if p.Status.IsTerminal() {
		return fmt.Errorf("%w: project %s is archived", ErrValidation, p.DisplayID())
	}
	return nil
}
