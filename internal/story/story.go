// Package story asks an LLM for a short mnemonic story that strings a
// number's keywords together. The LLM is an external collaborator: this
// package only builds the prompt and parses the reply.
package story

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jusunglee/sutja/internal/llm"
	"github.com/jusunglee/sutja/internal/metrics"
	"github.com/jusunglee/sutja/internal/mnemonic"
)

var ErrNoChunks = errors.New("no digits to tell a story about")

type Story struct {
	Title    string   `json:"title"`
	Story    string   `json:"story"`
	Keywords []string `json:"keywords"`
}

type Teller struct {
	llm llm.Client
}

func NewTeller(client llm.Client) *Teller {
	return &Teller{llm: client}
}

const systemPrompt = `You write short, vivid Korean memory stories that help someone remember a number.
Each part of the number has been turned into a keyword. Use every keyword exactly once,
in the given order, in two to four sentences.

Respond ONLY with a JSON object, no other text. Example:
{"title": "사랑의 오징어", "story": "사랑에 빠진 오징어가 바다를 건넜다."}`

// Prompt lists one keyword per chunk, taking the first candidate.
func Prompt(chunks []mnemonic.Chunk) (string, []string) {
	keywords := make([]string, 0, len(chunks))
	var sb strings.Builder
	sb.WriteString("Keywords in order:\n")
	for _, c := range chunks {
		kw := c.Candidates[0]
		keywords = append(keywords, kw)
		fmt.Fprintf(&sb, "- %s (%s)\n", kw, c.Digits)
	}
	return sb.String(), keywords
}

func (t *Teller) Tell(ctx context.Context, chunks []mnemonic.Chunk) (Story, error) {
	if len(chunks) == 0 {
		return Story{}, ErrNoChunks
	}

	prompt, keywords := Prompt(chunks)

	start := time.Now()
	text, err := t.llm.Complete(ctx, systemPrompt, prompt)
	metrics.StoryDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return Story{}, err
	}

	text = llm.StripMarkdownCodeBlocks(text)

	var s Story
	if err := json.Unmarshal([]byte(text), &s); err != nil {
		return Story{}, fmt.Errorf("failed to parse story response: %w (response: %s)", err, text)
	}
	s.Keywords = keywords
	return s, nil
}
