package google

import (
	"context"
	"fmt"
	"strings"

	"github.com/jusunglee/sutja/internal/llm"
	"google.golang.org/genai"
)

// Model represents a Google AI model identifier
type Model string

const (
	ModelGemma3_27B   Model = "gemma-3-27b-it"
	ModelGemini2Flash Model = "gemini-2.0-flash"
	ModelGemini2_5Pro Model = "gemini-2.5-pro"
)

var DefaultModel Model = ModelGemini2Flash

// Stories read better with some variety.
const temperature float32 = 0.9

type Client struct {
	client *genai.Client
	model  Model
}

func NewClient(ctx context.Context, apiKey string, model Model) (*Client, error) {
	if model == "" {
		model = DefaultModel
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create google client: %w", err)
	}

	return &Client{
		client: client,
		model:  model,
	}, nil
}

func (c *Client) Complete(ctx context.Context, system, prompt string) (string, error) {
	contents, config := c.request(system, prompt)

	result, err := c.client.Models.GenerateContent(ctx, string(c.model), contents, config)
	if err != nil {
		return "", fmt.Errorf("google API call failed: %w", err)
	}

	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from google")
	}

	var sb strings.Builder
	for _, part := range result.Candidates[0].Content.Parts {
		sb.WriteString(part.Text)
	}

	return llm.StripMarkdownCodeBlocks(sb.String()), nil
}

// Gemma models reject system instructions, so for them the system text is
// folded into the user turn.
func (c *Client) request(system, prompt string) ([]*genai.Content, *genai.GenerateContentConfig) {
	config := &genai.GenerateContentConfig{Temperature: genai.Ptr(temperature)}
	if strings.HasPrefix(string(c.model), "gemma") {
		prompt = system + "\n\n" + prompt
	} else {
		config.SystemInstruction = &genai.Content{Parts: []*genai.Part{{Text: system}}}
	}
	return []*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: prompt}}}}, config
}
