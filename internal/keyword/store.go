package keyword

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/jusunglee/sutja/internal/db"
	"github.com/samber/lo"
)

// Seed writes entries into repo in a single transaction and returns how many
// were written.
func Seed(ctx context.Context, repo db.Repository, entries []Entry) (int, error) {
	valid := make([]Entry, 0, len(entries))
	for _, raw := range entries {
		e, err := Validate(raw)
		if err != nil {
			return 0, err
		}
		valid = append(valid, e)
	}

	err := repo.WithTx(ctx, func(tx db.Repository) error {
		for _, e := range valid {
			if _, err := tx.UpsertDigitEntry(ctx, db.UpsertDigitEntryParams{
				Code:     e.Code,
				Keywords: e.Keywords,
			}); err != nil {
				return fmt.Errorf("upserting %s: %w", e.Code, err)
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return len(valid), nil
}

// SeedIfEmpty seeds the embedded dataset when repo holds no entries.
func SeedIfEmpty(ctx context.Context, repo db.Repository) (int, error) {
	count, err := repo.CountDigitEntries(ctx)
	if err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	if count > 0 {
		return 0, nil
	}
	entries, err := Dataset()
	if err != nil {
		return 0, err
	}
	return Seed(ctx, repo, entries)
}

// FromRepository builds a dictionary from every stored entry.
func FromRepository(ctx context.Context, repo db.Repository) (*Static, error) {
	rows, err := repo.ListDigitEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing entries: %w", err)
	}
	return New(lo.Map(rows, func(r db.DigitEntry, _ int) Entry {
		return Entry{Code: r.Code, Keywords: r.Keywords}
	}))
}

// Live is a dictionary that can be swapped wholesale while readers keep
// using it.
type Live struct {
	current atomic.Pointer[Static]
}

func NewLive(initial *Static) *Live {
	l := &Live{}
	l.current.Store(initial)
	return l
}

func (l *Live) Lookup(code string) []string {
	return l.current.Load().Lookup(code)
}

func (l *Live) Len() int {
	return l.current.Load().Len()
}

// Snapshot returns the dictionary currently in use.
func (l *Live) Snapshot() *Static {
	return l.current.Load()
}

// Reload rebuilds the dictionary from repo and swaps it in. On error the
// previous dictionary stays in place.
func (l *Live) Reload(ctx context.Context, repo db.Repository) error {
	next, err := FromRepository(ctx, repo)
	if err != nil {
		return err
	}
	l.current.Store(next)
	return nil
}
