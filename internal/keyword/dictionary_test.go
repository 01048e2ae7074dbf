package keyword

import (
	"testing"

	"github.com/jusunglee/sutja/internal/mnemonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultDataset(t *testing.T) {
	dict, err := Default()
	require.NoError(t, err)
	assert.Equal(t, 188, dict.Len())

	assert.Equal(t, []string{"사랑", "술래", "서리"}, dict.Lookup("52"))
	assert.Equal(t, []string{"오징어"}, dict.Lookup("070"))
	assert.Nil(t, dict.Lookup("27"))
	assert.Nil(t, dict.Lookup("5"))
}

// Every keyword in the dataset must spell its own code.
func TestDatasetKeywordsEncodeToCode(t *testing.T) {
	entries, err := Dataset()
	require.NoError(t, err)
	for _, e := range entries {
		for _, w := range e.Keywords {
			assert.Equal(t, e.Code, mnemonic.Encode(w), "keyword %q under %s", w, e.Code)
		}
	}
}

func TestTwoAndThreeDigitNamespacesAreDisjoint(t *testing.T) {
	dict, err := New([]Entry{
		{Code: "01", Keywords: []string{"안경"}},
		{Code: "010", Keywords: []string{"외계인"}},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"안경"}, dict.Lookup("01"))
	assert.Equal(t, []string{"외계인"}, dict.Lookup("010"))
}

func TestLookupReturnsCopy(t *testing.T) {
	dict, err := New([]Entry{{Code: "52", Keywords: []string{"사랑"}}})
	require.NoError(t, err)

	got := dict.Lookup("52")
	got[0] = "changed"
	assert.Equal(t, []string{"사랑"}, dict.Lookup("52"))
}

func TestNewRejectsBadEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []Entry
		want    error
	}{
		{"one digit", []Entry{{Code: "5", Keywords: []string{"사"}}}, ErrInvalidCode},
		{"four digits", []Entry{{Code: "5252", Keywords: []string{"사랑사랑"}}}, ErrInvalidCode},
		{"letters", []Entry{{Code: "ab", Keywords: []string{"x"}}}, ErrInvalidCode},
		{"no keywords", []Entry{{Code: "52", Keywords: []string{"", ""}}}, ErrNoKeywords},
		{"duplicate", []Entry{{Code: "52", Keywords: []string{"사랑"}}, {Code: "52", Keywords: []string{"서리"}}}, ErrDuplicateCode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestValidateDropsBlankAndRepeatedKeywords(t *testing.T) {
	e, err := Validate(Entry{Code: "52", Keywords: []string{"사랑", "", "사랑", "서리"}})
	require.NoError(t, err)
	assert.Equal(t, []string{"사랑", "서리"}, e.Keywords)
}

func TestParseInvalidJSON(t *testing.T) {
	_, err := Parse([]byte(`{"code":`))
	assert.Error(t, err)
}

func TestEntriesOrder(t *testing.T) {
	dict, err := New([]Entry{
		{Code: "123", Keywords: []string{"a"}},
		{Code: "52", Keywords: []string{"b"}},
		{Code: "01", Keywords: []string{"c"}},
	})
	require.NoError(t, err)

	got := dict.Entries()
	require.Len(t, got, 3)
	assert.Equal(t, "01", got[0].Code)
	assert.Equal(t, "52", got[1].Code)
	assert.Equal(t, "123", got[2].Code)
}

func TestStaticSatisfiesDictionary(t *testing.T) {
	dict, err := Default()
	require.NoError(t, err)

	chunks := mnemonic.Convert("5227", dict)
	require.Len(t, chunks, 2)
	assert.False(t, chunks[0].Fallback)
	assert.True(t, chunks[1].Fallback)
	assert.Equal(t, []string{"27"}, chunks[1].Candidates)
}
