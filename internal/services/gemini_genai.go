package services

import (
	"context"
	"fmt"
	"strings"

	genai "google.golang.org/genai"
)

// GenAIClient talks to Gemini through the google.golang.org/genai SDK.
type GenAIClient struct {
	cli *genai.Client
}

func NewGenAIClient(ctx context.Context, apiKey string) (*GenAIClient, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	return &GenAIClient{cli: cli}, nil
}

func (g *GenAIClient) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	resp, err := g.cli.Models.GenerateContent(ctx, model,
		[]*genai.Content{{Role: "user", Parts: []*genai.Part{{Text: prompt}}}},
		nil,
	)
	if err != nil {
		return "", fmt.Errorf("genai GenerateContent: %w", err)
	}
	return responseText(resp), nil
}

// Close is a no-op; the genai client holds no resources that need releasing.
func (g *GenAIClient) Close() error { return nil }

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var text strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			text.WriteString(part.Text)
		}
	}
	return text.String()
}
