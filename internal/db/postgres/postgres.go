package postgres

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jusunglee/sutja/internal/db"
)

//go:embed schema.sql
var schemaSQL string

type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Repository implements db.Repository using PostgreSQL via pgx
type Repository struct {
	pool *pgxpool.Pool
	q    querier
}

// New creates a new PostgreSQL repository
func New(ctx context.Context, databaseURL string) (*Repository, error) {
	config, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database URL: %w", err)
	}

	// Reads are served from memory; the pool only sees seeding and edits
	config.MaxConns = 5
	config.MinConns = 1
	config.MaxConnLifetime = 5 * time.Minute
	config.MaxConnIdleTime = 30 * time.Second
	config.HealthCheckPeriod = 1 * time.Minute

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to create connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("unable to ping database: %w", err)
	}

	if _, err := pool.Exec(ctx, schemaSQL); err != nil {
		pool.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{pool: pool, q: pool}, nil
}

func (r *Repository) Close() error {
	r.pool.Close()
	return nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// PoolStats exposes pool counters for metrics export.
func (r *Repository) PoolStats() *pgxpool.Stat {
	return r.pool.Stat()
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	// recover() releases the connection before re-panicking
	defer func() {
		if p := recover(); p != nil {
			tx.Rollback(ctx)
			panic(p)
		}
	}()

	err = fn(&Repository{pool: r.pool, q: tx})
	if err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Digit entry methods

func (r *Repository) UpsertDigitEntry(ctx context.Context, arg db.UpsertDigitEntryParams) (db.DigitEntry, error) {
	row := r.q.QueryRow(ctx, `
		INSERT INTO digit_entries (code, keywords)
		VALUES ($1, $2)
		ON CONFLICT (code) DO UPDATE SET
			keywords = EXCLUDED.keywords,
			updated_at = now()
		RETURNING code, keywords, updated_at
	`, arg.Code, arg.Keywords)
	return scanDigitEntry(row)
}

func (r *Repository) GetDigitEntry(ctx context.Context, code string) (db.DigitEntry, error) {
	row := r.q.QueryRow(ctx, `
		SELECT code, keywords, updated_at FROM digit_entries WHERE code = $1
	`, code)
	return scanDigitEntry(row)
}

func (r *Repository) ListDigitEntries(ctx context.Context) ([]db.DigitEntry, error) {
	rows, err := r.q.Query(ctx, `
		SELECT code, keywords, updated_at FROM digit_entries
		ORDER BY char_length(code), code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []db.DigitEntry
	for rows.Next() {
		e, err := scanDigitEntry(rows)
		if err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (r *Repository) CountDigitEntries(ctx context.Context) (int64, error) {
	var count int64
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM digit_entries`).Scan(&count)
	return count, err
}

func (r *Repository) DeleteDigitEntry(ctx context.Context, code string) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM digit_entries WHERE code = $1`, code)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (r *Repository) DeleteAllDigitEntries(ctx context.Context) (int64, error) {
	tag, err := r.q.Exec(ctx, `DELETE FROM digit_entries`)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func scanDigitEntry(row pgx.Row) (db.DigitEntry, error) {
	var e db.DigitEntry
	err := row.Scan(&e.Code, &e.Keywords, &e.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return db.DigitEntry{}, db.ErrNoRows
	}
	if err != nil {
		return db.DigitEntry{}, err
	}
	return e, nil
}
