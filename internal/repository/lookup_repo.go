package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Lookup is one computed cross-rate as stored in the history table.
type Lookup struct {
	ID        string
	From      string
	To        string
	Date      string
	Rate      float64
	CreatedAt time.Time
}

// LookupRepository defines DB operations for the lookup history.
type LookupRepository interface {
	Record(ctx context.Context, l *Lookup) error
	ListRecent(ctx context.Context, limit int) ([]*Lookup, error)
}

// PostgresLookupRepository is an implementation of LookupRepository using PostgreSQL.
type PostgresLookupRepository struct {
	db *sql.DB
}

// NewPostgresLookupRepository creates a new PostgresLookupRepository.
func NewPostgresLookupRepository(db *sql.DB) *PostgresLookupRepository {
	return &PostgresLookupRepository{db: db}
}

var _ LookupRepository = (*PostgresLookupRepository)(nil)

// Record inserts a lookup and fills in its server-side creation time.
func (r *PostgresLookupRepository) Record(ctx context.Context, l *Lookup) error {
	query := `INSERT INTO rate_lookups (id, from_currency, to_currency, rate_date, rate, created_at)
              VALUES ($1::uuid, $2, $3, $4, $5, NOW())
              RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, l.ID, l.From, l.To, l.Date, l.Rate).Scan(&l.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to record lookup: %w", err)
	}
	return nil
}

// ListRecent returns up to limit lookups, newest first.
func (r *PostgresLookupRepository) ListRecent(ctx context.Context, limit int) ([]*Lookup, error) {
	query := `SELECT id::text, from_currency, to_currency, rate_date, rate, created_at
              FROM rate_lookups
              ORDER BY created_at DESC, id
              LIMIT $1`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list lookups: %w", err)
	}
	defer rows.Close() //nolint:errcheck // best-effort close

	var out []*Lookup
	for rows.Next() {
		var l Lookup
		if err := rows.Scan(&l.ID, &l.From, &l.To, &l.Date, &l.Rate, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan lookup: %w", err)
		}
		out = append(out, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate lookups: %w", err)
	}
	return out, nil
}
