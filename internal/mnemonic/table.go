// Package mnemonic converts words to digit strings and back, chunks digit
// strings for keyword lookup, and composes credentials from the result.
package mnemonic

import "strings"

// Entry binds one digit to its consonant group.
type Entry struct {
	Digit      int
	Consonants []rune // first element is the base consonant
	Label      string
	Example    string
}

var entries = [10]Entry{
	{Digit: 0, Consonants: []rune{'ㅇ'}, Label: "ㅇ", Example: "오리"},
	{Digit: 1, Consonants: []rune{'ㄱ', 'ㄲ'}, Label: "ㄱ·ㄲ", Example: "고래"},
	{Digit: 2, Consonants: []rune{'ㄴ', 'ㄹ'}, Label: "ㄴ·ㄹ", Example: "나비"},
	{Digit: 3, Consonants: []rune{'ㄷ', 'ㄸ', 'ㅌ'}, Label: "ㄷ·ㄸ·ㅌ", Example: "토끼"},
	{Digit: 4, Consonants: []rune{'ㅁ'}, Label: "ㅁ", Example: "모자"},
	{Digit: 5, Consonants: []rune{'ㅅ', 'ㅆ'}, Label: "ㅅ·ㅆ", Example: "사자"},
	{Digit: 6, Consonants: []rune{'ㅂ', 'ㅃ', 'ㅍ'}, Label: "ㅂ·ㅃ·ㅍ", Example: "바다"},
	{Digit: 7, Consonants: []rune{'ㅈ', 'ㅉ'}, Label: "ㅈ·ㅉ", Example: "자두"},
	{Digit: 8, Consonants: []rune{'ㅊ', 'ㅋ'}, Label: "ㅊ·ㅋ", Example: "치즈"},
	{Digit: 9, Consonants: []rune{'ㅎ'}, Label: "ㅎ", Example: "하늘"},
}

var consonantDigit = func() map[rune]byte {
	m := make(map[rune]byte)
	for _, e := range entries {
		for _, c := range e.Consonants {
			m[c] = byte('0' + e.Digit)
		}
	}
	return m
}()

// Entries returns a copy of the digit table, ordered 0 through 9.
func Entries() []Entry {
	out := make([]Entry, len(entries))
	for i, e := range entries {
		e.Consonants = append([]rune(nil), e.Consonants...)
		out[i] = e
	}
	return out
}

// DigitToConsonants returns the consonant group for d.
func DigitToConsonants(d int) ([]rune, bool) {
	if d < 0 || d > 9 {
		return nil, false
	}
	return append([]rune(nil), entries[d].Consonants...), true
}

// ConsonantToDigit returns the digit a compatibility-jamo consonant encodes to.
func ConsonantToDigit(c rune) (int, bool) {
	b, ok := consonantDigit[c]
	if !ok {
		return 0, false
	}
	return int(b - '0'), true
}

// Decode maps each ASCII digit in digits to the base consonant of its group.
// Other characters are dropped.
func Decode(digits string) string {
	var b strings.Builder
	for _, r := range digits {
		if r < '0' || r > '9' {
			continue
		}
		b.WriteRune(entries[r-'0'].Consonants[0])
	}
	return b.String()
}
