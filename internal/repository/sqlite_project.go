package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/quoteforge/internal/db"
	"github.com/alexanderramin/quoteforge/internal/domain"
)

// SQLiteProjectRepo stores quotes. Inputs, estimate and analysis are kept as
// JSON snapshots; headline figures are copied into columns for filtering.
type SQLiteProjectRepo struct {
	db db.DBTX
}

func NewSQLiteProjectRepo(conn db.DBTX) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: conn}
}

const projectColumns = `id, name, client_name, client_email, description, source, status,
	inputs, estimate, analysis, config_version, notes, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	inputs, err := marshalJSON("inputs", p.Inputs)
	if err != nil {
		return err
	}
	estimate, err := marshalJSON("estimate", p.Estimate)
	if err != nil {
		return err
	}
	var analysis sql.NullString
	if p.Analysis != nil {
		raw, err := marshalJSON("analysis", p.Analysis)
		if err != nil {
			return err
		}
		analysis = sql.NullString{String: raw, Valid: true}
	}

	query := `INSERT INTO projects (id, name, client_name, client_email, description, source, status,
			idea_type, inputs, estimate, analysis, config_version,
			total_price, internal_cost, profit_margin, health_status, total_weeks,
			notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		p.ID, p.Name, p.ClientName, p.ClientEmail, p.Description,
		string(p.Source), string(p.Status),
		string(p.Inputs.IdeaType), inputs, estimate, analysis, p.ConfigVersion,
		p.Estimate.ClientPrice.TotalPrice,
		p.Estimate.InternalCost.TotalInternalCost,
		p.Estimate.Profit.ProfitMargin,
		string(p.Estimate.Profit.HealthStatus),
		p.Estimate.Timeline.TotalWeeks,
		p.Notes,
		formatTime(p.CreatedAt), formatTime(p.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	p, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %s: %w", id, ErrNotFound)
	}
	return p, err
}

func (r *SQLiteProjectRepo) List(ctx context.Context, f ProjectFilter) ([]*domain.Project, error) {
	var (
		where []string
		args  []any
	)
	if f.Status != "" {
		where = append(where, "status = ?")
		args = append(args, string(f.Status))
	}
	if f.Health != "" {
		where = append(where, "health_status = ?")
		args = append(args, string(f.Health))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		where = append(where, "(name LIKE ? OR client_name LIKE ? OR description LIKE ?)")
		like := "%" + q + "%"
		args = append(args, like, like, like)
	}

	query := `SELECT ` + projectColumns + ` FROM projects`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"
	if f.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, f.Limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing projects: %w", err)
	}
	defer rows.Close()

	var projects []*domain.Project
	for rows.Next() {
		p, err := scanProject(rows)
		if err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func (r *SQLiteProjectRepo) UpdateStatus(ctx context.Context, id string, status domain.ProjectStatus) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET status = ?, updated_at = ? WHERE id = ?`,
		string(status), nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating project status: %w", err)
	}
	return requireAffected(res, "project", id)
}

func (r *SQLiteProjectRepo) UpdateNotes(ctx context.Context, id, notes string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE projects SET notes = ?, updated_at = ? WHERE id = ?`,
		notes, nowUTC(), id)
	if err != nil {
		return fmt.Errorf("updating project notes: %w", err)
	}
	return requireAffected(res, "project", id)
}

func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting project: %w", err)
	}
	return requireAffected(res, "project", id)
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanProject(s scanner) (*domain.Project, error) {
	var (
		p                    domain.Project
		source, status       string
		inputs, estimate     string
		analysis             sql.NullString
		createdAt, updatedAt string
	)
	err := s.Scan(
		&p.ID, &p.Name, &p.ClientName, &p.ClientEmail, &p.Description, &source, &status,
		&inputs, &estimate, &analysis, &p.ConfigVersion, &p.Notes, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.Source = domain.ProjectSource(source)
	p.Status = domain.ProjectStatus(status)
	if err := unmarshalJSON("inputs", inputs, &p.Inputs); err != nil {
		return nil, err
	}
	if err := unmarshalJSON("estimate", estimate, &p.Estimate); err != nil {
		return nil, err
	}
	if analysis.Valid {
		p.Analysis = &domain.AIAnalysis{}
		if err := unmarshalJSON("analysis", analysis.String, p.Analysis); err != nil {
			return nil, err
		}
	}
	if p.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", err)
	}
	return &p, nil
}
