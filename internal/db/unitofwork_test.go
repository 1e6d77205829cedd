package db_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/alexanderramin/quoteforge/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUoW(t *testing.T) (*sql.DB, *db.SQLiteUnitOfWork) {
	t.Helper()
	database, err := db.OpenDB(db.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database, db.NewSQLiteUnitOfWork(database)
}

func insertConfig(ctx context.Context, tx db.DBTX, label string) error {
	_, err := tx.ExecContext(ctx,
		`INSERT INTO pricing_configs (label, payload, created_at) VALUES (?, '{}', '2026-01-01T00:00:00Z')`, label)
	return err
}

func countConfigs(t *testing.T, database *sql.DB) int {
	t.Helper()
	var n int
	require.NoError(t, database.QueryRow(`SELECT COUNT(*) FROM pricing_configs`).Scan(&n))
	return n
}

func TestWithinTx(t *testing.T) {
	boom := errors.New("boom")
	tests := []struct {
		name    string
		fn      func(ctx context.Context, tx db.DBTX) error
		wantErr error
		rows    int
	}{
		{
			name: "commits on success",
			fn: func(ctx context.Context, tx db.DBTX) error {
				return insertConfig(ctx, tx, "a")
			},
			rows: 1,
		},
		{
			name: "rolls back on error",
			fn: func(ctx context.Context, tx db.DBTX) error {
				if err := insertConfig(ctx, tx, "a"); err != nil {
					return err
				}
				return boom
			},
			wantErr: boom,
			rows:    0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			database, uow := newUoW(t)
			err := uow.WithinTx(context.Background(), tt.fn)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.rows, countConfigs(t, database))
		})
	}
}

func TestWithinTx_RollsBackOnPanic(t *testing.T) {
	database, uow := newUoW(t)

	assert.Panics(t, func() {
		_ = uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
			_ = insertConfig(ctx, tx, "a")
			panic("boom")
		})
	})
	assert.Equal(t, 0, countConfigs(t, database))
}

func TestWithinTx_NestedCallJoinsOuter(t *testing.T) {
	database, uow := newUoW(t)
	boom := errors.New("outer failed")

	err := uow.WithinTx(context.Background(), func(ctx context.Context, tx db.DBTX) error {
		outer, ok := db.TxFrom(ctx)
		require.True(t, ok)

		require.NoError(t, uow.WithinTx(ctx, func(ctx context.Context, inner db.DBTX) error {
			assert.Same(t, outer, inner)
			return insertConfig(ctx, inner, "inner")
		}))
		return boom
	})

	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 0, countConfigs(t, database), "inner write rolls back with the outer transaction")
}

func TestTxFrom_OutsideTransaction(t *testing.T) {
	_, ok := db.TxFrom(context.Background())
	assert.False(t, ok)
}
