package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/quoteforge/internal/db"
	"github.com/alexanderramin/quoteforge/internal/pricing"
)

// SQLitePricingConfigRepo keeps every saved pricing configuration; at most
// one row is active.
type SQLitePricingConfigRepo struct {
	db db.DBTX
}

func NewSQLitePricingConfigRepo(conn db.DBTX) *SQLitePricingConfigRepo {
	return &SQLitePricingConfigRepo{db: conn}
}

const pricingConfigColumns = `version, label, payload, active, created_at`

func (r *SQLitePricingConfigRepo) Create(ctx context.Context, label string, override pricing.Configuration) (int, error) {
	payload, err := marshalJSON("payload", override)
	if err != nil {
		return 0, err
	}
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO pricing_configs (label, payload, active, created_at) VALUES (?, ?, 0, ?)`,
		label, payload, nowUTC())
	if err != nil {
		return 0, fmt.Errorf("inserting pricing config: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading pricing config version: %w", err)
	}
	return int(id), nil
}

func (r *SQLitePricingConfigRepo) GetActive(ctx context.Context) (*pricing.Version, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+pricingConfigColumns+` FROM pricing_configs WHERE active = 1`)
	v, err := scanPricingConfig(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("active pricing config: %w", ErrNotFound)
	}
	return v, err
}

func (r *SQLitePricingConfigRepo) GetByVersion(ctx context.Context, version int) (*pricing.Version, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+pricingConfigColumns+` FROM pricing_configs WHERE version = ?`, version)
	v, err := scanPricingConfig(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("pricing config v%d: %w", version, ErrNotFound)
	}
	return v, err
}

func (r *SQLitePricingConfigRepo) List(ctx context.Context) ([]*pricing.Version, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+pricingConfigColumns+` FROM pricing_configs ORDER BY version DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing pricing configs: %w", err)
	}
	defer rows.Close()

	var out []*pricing.Version
	for rows.Next() {
		v, err := scanPricingConfig(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating pricing configs: %w", err)
	}
	return out, nil
}

func (r *SQLitePricingConfigRepo) Activate(ctx context.Context, version int) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE pricing_configs SET active = 0 WHERE active = 1 AND version <> ?`, version); err != nil {
		return fmt.Errorf("clearing active pricing config: %w", err)
	}
	res, err := r.db.ExecContext(ctx, `UPDATE pricing_configs SET active = 1 WHERE version = ?`, version)
	if err != nil {
		return fmt.Errorf("activating pricing config: %w", err)
	}
	return requireAffected(res, "pricing config", fmt.Sprintf("v%d", version))
}

func (r *SQLitePricingConfigRepo) ClearActive(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `UPDATE pricing_configs SET active = 0 WHERE active = 1`); err != nil {
		return fmt.Errorf("clearing active pricing config: %w", err)
	}
	return nil
}

func scanPricingConfig(s scanner) (*pricing.Version, error) {
	var (
		v         pricing.Version
		payload   string
		active    int
		createdAt string
	)
	if err := s.Scan(&v.Version, &v.Label, &payload, &active, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning pricing config: %w", err)
	}
	if err := unmarshalJSON("payload", payload, &v.Override); err != nil {
		return nil, err
	}
	v.Active = active != 0
	var err error
	if v.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created_at: %w", err)
	}
	return &v, nil
}
