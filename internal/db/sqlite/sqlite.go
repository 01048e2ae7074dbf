package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jusunglee/sutja/internal/db"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Repository implements db.Repository using SQLite
type Repository struct {
	db *sql.DB
	q  querier
}

// New creates a new SQLite repository
func New(ctx context.Context, dbPath string) (*Repository, error) {
	// Strip sqlite:// prefix if present
	dbPath = strings.TrimPrefix(dbPath, "sqlite://")

	sqliteDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening SQLite database: %w", err)
	}

	// One connection keeps :memory: databases and transactions consistent
	sqliteDB.SetMaxOpenConns(1)

	if _, err := sqliteDB.ExecContext(ctx, "PRAGMA journal_mode=WAL"); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("setting WAL mode: %w", err)
	}

	if _, err := sqliteDB.ExecContext(ctx, schemaSQL); err != nil {
		sqliteDB.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	return &Repository{db: sqliteDB, q: sqliteDB}, nil
}

func (r *Repository) Close() error {
	return r.db.Close()
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

func (r *Repository) WithTx(ctx context.Context, fn func(repo db.Repository) error) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(&Repository{db: r.db, q: tx}); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("transaction error: %w, rollback error: %v", err, rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

// Digit entry methods

func (r *Repository) UpsertDigitEntry(ctx context.Context, arg db.UpsertDigitEntryParams) (db.DigitEntry, error) {
	keywords, err := json.Marshal(arg.Keywords)
	if err != nil {
		return db.DigitEntry{}, fmt.Errorf("encoding keywords: %w", err)
	}

	_, err = r.q.ExecContext(ctx, `
		INSERT INTO digit_entries (code, keywords)
		VALUES (?, ?)
		ON CONFLICT (code) DO UPDATE SET
			keywords = excluded.keywords,
			updated_at = strftime('%Y-%m-%dT%H:%M:%SZ', 'now')
	`, arg.Code, string(keywords))
	if err != nil {
		return db.DigitEntry{}, err
	}

	return r.GetDigitEntry(ctx, arg.Code)
}

func (r *Repository) GetDigitEntry(ctx context.Context, code string) (db.DigitEntry, error) {
	row := r.q.QueryRowContext(ctx, `
		SELECT code, keywords, updated_at FROM digit_entries WHERE code = ?
	`, code)
	return scanDigitEntry(row)
}

func (r *Repository) ListDigitEntries(ctx context.Context) ([]db.DigitEntry, error) {
	rows, err := r.q.QueryContext(ctx, `
		SELECT code, keywords, updated_at FROM digit_entries
		ORDER BY length(code), code
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
	err := r.q.QueryRowContext(ctx, `SELECT COUNT(*) FROM digit_entries`).Scan(&count)
	return count, err
}

func (r *Repository) DeleteDigitEntry(ctx context.Context, code string) (int64, error) {
	result, err := r.q.ExecContext(ctx, `DELETE FROM digit_entries WHERE code = ?`, code)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *Repository) DeleteAllDigitEntries(ctx context.Context) (int64, error) {
	result, err := r.q.ExecContext(ctx, `DELETE FROM digit_entries`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanDigitEntry(row scanner) (db.DigitEntry, error) {
	var e db.DigitEntry
	var keywordsJSON, updatedAtStr string
	err := row.Scan(&e.Code, &keywordsJSON, &updatedAtStr)
	if errors.Is(err, sql.ErrNoRows) {
		return db.DigitEntry{}, db.ErrNoRows
	}
	if err != nil {
		return db.DigitEntry{}, err
	}
	if err := json.Unmarshal([]byte(keywordsJSON), &e.Keywords); err != nil {
		return db.DigitEntry{}, fmt.Errorf("decoding keywords for %s: %w", e.Code, err)
	}
	e.UpdatedAt, _ = time.Parse(time.RFC3339, updatedAtStr)
	return e, nil
}
