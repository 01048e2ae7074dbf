package mnemonic

import (
	"strings"

	"github.com/jusunglee/sutja/internal/hangul"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// Phone keypad letters, indexed by letter - 'A'.
const keypad = "22233344455566677778889999"

// normalize composes conjoining jamo into syllables and folds full-width
// forms so that "１２" and "12" encode the same.
func normalize(s string) string {
	return width.Fold.String(norm.NFC.String(s))
}

// Encode converts word into its digit string. Digits pass through, Hangul
// syllables and consonants go through the consonant table, Latin letters use
// the phone keypad. Everything else is skipped.
func Encode(word string) string {
	var b strings.Builder
	for _, r := range normalize(word) {
		switch {
		case r >= '0' && r <= '9':
			b.WriteRune(r)
		case hangul.IsSyllable(r):
			cho, _ := hangul.Chosung(r)
			if d, ok := consonantDigit[cho]; ok {
				b.WriteByte(d)
			}
		case hangul.IsInitial(r):
			if d, ok := consonantDigit[r]; ok {
				b.WriteByte(d)
			}
		case r >= 'a' && r <= 'z':
			b.WriteByte(keypad[r-'a'])
		case r >= 'A' && r <= 'Z':
			b.WriteByte(keypad[r-'A'])
		}
	}
	return b.String()
}
