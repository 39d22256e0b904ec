package ai

import (
	"context"
	"fmt"

	"commentscope/shared/config"

	"google.golang.org/genai"
)

// TextGenerator is the narrow contract the pipeline needs from a
// text-generation service: one single-turn prompt in, one response out. No
// streaming, no conversation state between calls.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Gemini implements TextGenerator on top of the Google genai client.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(cfg *config.Config) (*Gemini, error) {
	ctx := context.Background()

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: cfg.AI.GeminiAPIKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Gemini{client: client, model: cfg.AI.Model}, nil
}

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	parts := []*genai.Part{
		genai.NewPartFromText(prompt),
	}
	contents := []*genai.Content{
		genai.NewContentFromParts(parts, genai.RoleUser),
	}

	result, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("generation request failed: %w", err)
	}

	text := result.Text()
	if text == "" {
		return "", fmt.Errorf("empty response from model %s", g.model)
	}
	return text, nil
}
