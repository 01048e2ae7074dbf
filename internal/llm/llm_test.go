package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStripMarkdownCodeBlocks(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{`{"title":"a"}`, `{"title":"a"}`},
		{"```json\n{\"title\":\"a\"}\n```", `{"title":"a"}`},
		{"```\n[1,2]\n```\n", "[1,2]"},
		{"  plain  ", "plain"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripMarkdownCodeBlocks(tt.input))
	}
}
