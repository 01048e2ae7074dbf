package mnemonic

import (
	"testing"

	"github.com/jusunglee/sutja/internal/hangul"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDigitConsonantRoundTrip(t *testing.T) {
	for d := range 10 {
		group, ok := DigitToConsonants(d)
		require.True(t, ok, "digit %d", d)
		require.NotEmpty(t, group)
		for _, c := range group {
			got, ok := ConsonantToDigit(c)
			require.True(t, ok, "consonant %q", c)
			assert.Equal(t, d, got, "consonant %q", c)
		}
	}
}

func TestEveryInitialHasDigit(t *testing.T) {
	for _, c := range hangul.Initials() {
		_, ok := ConsonantToDigit(c)
		assert.True(t, ok, "initial %q has no digit", c)
	}
}

func TestTenseConsonantsShareBaseDigit(t *testing.T) {
	pairs := map[rune]rune{'ㄲ': 'ㄱ', 'ㄸ': 'ㄷ', 'ㅃ': 'ㅂ', 'ㅆ': 'ㅅ', 'ㅉ': 'ㅈ'}
	for tense, base := range pairs {
		td, _ := ConsonantToDigit(tense)
		bd, _ := ConsonantToDigit(base)
		assert.Equal(t, bd, td, "%q vs %q", tense, base)
	}
}

func TestDigitToConsonantsOutOfRange(t *testing.T) {
	_, ok := DigitToConsonants(-1)
	assert.False(t, ok)
	_, ok = DigitToConsonants(10)
	assert.False(t, ok)
	_, ok = ConsonantToDigit('a')
	assert.False(t, ok)
}

func TestEntriesAreCopies(t *testing.T) {
	es := Entries()
	require.Len(t, es, 10)
	es[5].Consonants[0] = 'x'
	group, _ := DigitToConsonants(5)
	assert.Equal(t, 'ㅅ', group[0])

	for i, e := range Entries() {
		assert.Equal(t, i, e.Digit)
		assert.Equal(t, string(rune('0'+i)), Encode(e.Example)[:1], "example %q", e.Example)
	}
}

func TestDecode(t *testing.T) {
	assert.Equal(t, "ㅅㄴ", Decode("52"))
	assert.Equal(t, "ㅇㄱㄴㄷㅁㅅㅂㅈㅊㅎ", Decode("0123456789"))
	assert.Equal(t, "ㄱㄴ", Decode("1-2"))
	assert.Equal(t, "", Decode(""))
}
