package mnemonic

import "github.com/samber/lo"

// Dictionary resolves a 2- or 3-digit code to candidate keywords. A nil or
// empty result means the code has no entry.
type Dictionary interface {
	Lookup(code string) []string
}

// Chunk pairs a digit group with the keywords that can stand in for it.
type Chunk struct {
	Digits     string   `json:"digits"`
	Candidates []string `json:"keywords"`
	// Fallback is set when the dictionary had no entry and the digits
	// themselves are the only candidate.
	Fallback bool `json:"fallback"`
}

// Resolve looks up one code, falling back to the code itself.
func Resolve(dict Dictionary, code string) Chunk {
	if dict != nil {
		if words := dict.Lookup(code); len(words) > 0 {
			return Chunk{Digits: code, Candidates: words}
		}
	}
	return Chunk{Digits: code, Candidates: []string{code}, Fallback: true}
}

// Convert chunks s and resolves each group against dict.
func Convert(s string, dict Dictionary) []Chunk {
	return lo.Map(ChunkDigits(s), func(code string, _ int) Chunk {
		return Resolve(dict, code)
	})
}
