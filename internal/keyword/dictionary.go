// Package keyword holds the digit-code keyword dictionary: the embedded
// dataset, an immutable in-memory index over it, and the glue that mirrors
// it into a SQL store.
package keyword

import (
	"cmp"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
)

//go:embed keywords.json
var datasetJSON []byte

var (
	ErrInvalidCode   = errors.New("code must be 2 or 3 ASCII digits")
	ErrNoKeywords    = errors.New("entry has no keywords")
	ErrDuplicateCode = errors.New("duplicate code")
)

// Entry is one dataset record.
type Entry struct {
	Code     string   `json:"code"`
	Keywords []string `json:"keywords"`
}

// ValidCode reports whether code is a 2- or 3-digit dictionary key.
func ValidCode(code string) bool {
	if len(code) != 2 && len(code) != 3 {
		return false
	}
	for i := 0; i < len(code); i++ {
		if code[i] < '0' || code[i] > '9' {
			return false
		}
	}
	return true
}

// Validate checks a single entry and returns it with blank and repeated
// keywords removed.
func Validate(e Entry) (Entry, error) {
	if !ValidCode(e.Code) {
		return Entry{}, fmt.Errorf("%q: %w", e.Code, ErrInvalidCode)
	}
	words := lo.Uniq(lo.Compact(e.Keywords))
	if len(words) == 0 {
		return Entry{}, fmt.Errorf("%q: %w", e.Code, ErrNoKeywords)
	}
	return Entry{Code: e.Code, Keywords: words}, nil
}

// Static is an immutable code → keywords index.
type Static struct {
	byCode map[string][]string
}

// New builds a dictionary from entries. Codes must be unique.
func New(entries []Entry) (*Static, error) {
	byCode := make(map[string][]string, len(entries))
	for _, raw := range entries {
		e, err := Validate(raw)
		if err != nil {
			return nil, err
		}
		if _, dup := byCode[e.Code]; dup {
			return nil, fmt.Errorf("%q: %w", e.Code, ErrDuplicateCode)
		}
		byCode[e.Code] = e.Keywords
	}
	return &Static{byCode: byCode}, nil
}

// Parse decodes a JSON array of entries.
func Parse(data []byte) (*Static, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("decoding keyword dataset: %w", err)
	}
	return New(entries)
}

// Dataset returns the embedded entries.
func Dataset() ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(datasetJSON, &entries); err != nil {
		return nil, fmt.Errorf("decoding embedded dataset: %w", err)
	}
	return entries, nil
}

// Default returns a dictionary over the embedded dataset.
func Default() (*Static, error) {
	return Parse(datasetJSON)
}

// Lookup returns a copy of the keywords for code, or nil.
func (s *Static) Lookup(code string) []string {
	return slices.Clone(s.byCode[code])
}

// Len is the number of codes in the dictionary.
func (s *Static) Len() int {
	return len(s.byCode)
}

// Entries lists the dictionary ordered by code length, then code.
func (s *Static) Entries() []Entry {
	codes := lo.Keys(s.byCode)
	slices.SortFunc(codes, func(a, b string) int {
		return cmp.Or(len(a)-len(b), strings.Compare(a, b))
	})
	return lo.Map(codes, func(code string, _ int) Entry {
		return Entry{Code: code, Keywords: slices.Clone(s.byCode[code])}
	})
}
