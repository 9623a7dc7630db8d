package ai

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"
)

// GeminiClient calls the Gemini API through the genai SDK.
type GeminiClient struct {
	client *genai.Client
	model  string
}

func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("configure gemini client: %w", err)
	}

	return &GeminiClient{client: client, model: model}, nil
}

func (g *GeminiClient) Model() string {
	return g.model
}

// GenerateText sends prompt as a single user turn and returns the text parts
// of the first candidate.
func (g *GeminiClient) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate content failed: %w", err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", errors.New("gemini returned no candidates")
	}

	return resp.Text(), nil
}
