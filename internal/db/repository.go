package db

import (
	"context"
	"time"
)

// DigitEntry is a stored keyword list for one 2- or 3-digit code.
type DigitEntry struct {
	Code      string
	Keywords  []string
	UpdatedAt time.Time
}

type UpsertDigitEntryParams struct {
	Code     string
	Keywords []string
}

// Repository defines the interface for database operations
type Repository interface {
	// Digit entries
	UpsertDigitEntry(ctx context.Context, arg UpsertDigitEntryParams) (DigitEntry, error)
	GetDigitEntry(ctx context.Context, code string) (DigitEntry, error)
	ListDigitEntries(ctx context.Context) ([]DigitEntry, error)
	CountDigitEntries(ctx context.Context) (int64, error)
	DeleteDigitEntry(ctx context.Context, code string) (int64, error)
	DeleteAllDigitEntries(ctx context.Context) (int64, error)

	// Transaction support
	WithTx(ctx context.Context, fn func(repo Repository) error) error

	// Lifecycle
	Ping(ctx context.Context) error
	Close() error
}
