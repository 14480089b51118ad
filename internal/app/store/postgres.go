package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSnapshotter persists the aggregate as a single JSONB snapshot row.
// The whole state is small (one cohort of companies, students and slots) and
// every registry operation is a whole-aggregate transaction, so one
// versioned row is simpler and safer than a relational decomposition.
type PostgresSnapshotter struct {
	pool *pgxpool.Pool
}

// NewPostgresSnapshotter creates the snapshot table if needed and returns
// the snapshotter
func NewPostgresSnapshotter(ctx context.Context, pool *pgxpool.Pool) (*PostgresSnapshotter, error) {
	_, err := pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS placement_snapshots (
			id         smallint PRIMARY KEY DEFAULT 1 CHECK (id = 1),
			data       jsonb NOT NULL,
			updated_at timestamptz NOT NULL DEFAULT now()
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to create snapshot table: %w", err)
	}

	return &PostgresSnapshotter{pool: pool}, nil
}

// Load reads the latest snapshot, returning an empty state when none exists
func (p *PostgresSnapshotter) Load(ctx context.Context) (*State, error) {
	var data []byte
	err := p.pool.QueryRow(ctx, `SELECT data FROM placement_snapshots WHERE id = 1`).Scan(&data)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return NewState(), nil
		}
		return nil, fmt.Errorf("error loading snapshot: %w", err)
	}

	state := NewState()
	if err := json.Unmarshal(data, state); err != nil {
		return nil, fmt.Errorf("error decoding snapshot: %w", err)
	}
	return state, nil
}

// Save upserts the snapshot row
func (p *PostgresSnapshotter) Save(ctx context.Context, state *State) error {
	data, err := json.Marshal(state)
	if err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO placement_snapshots (id, data, updated_at)
		VALUES (1, $1, $2)
		ON CONFLICT (id) DO UPDATE SET data = EXCLUDED.data, updated_at = EXCLUDED.updated_at
	`, data, time.Now())
	if err != nil {
		return fmt.Errorf("error saving snapshot: %w", err)
	}
	return nil
}
