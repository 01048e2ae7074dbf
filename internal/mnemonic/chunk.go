package mnemonic

import (
	"strings"

	"golang.org/x/text/width"
)

// Digits strips everything but ASCII digits from s, after width folding.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range width.Fold.String(s) {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ChunkDigits splits the digits of s into groups of two, ending with a group of
// three when the length is odd. Inputs of three digits or fewer form a
// single group, and an empty input has no groups.
func ChunkDigits(s string) []string {
	clean := Digits(s)
	n := len(clean)
	if n == 0 {
		return nil
	}
	if n <= 3 {
		return []string{clean}
	}

	chunks := make([]string, 0, n/2)
	i := 0
	for n-i > 3 || n-i == 2 {
		chunks = append(chunks, clean[i:i+2])
		i += 2
	}
	if i < n {
		chunks = append(chunks, clean[i:])
	}
	return chunks
}
