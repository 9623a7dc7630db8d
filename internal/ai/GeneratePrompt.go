package ai

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/ai/prompts"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/logger"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/types"
)

// GeneratePrompt assembles the optimizer prompt from req and submits it in a
// single call. There are no retries: any failure ends the request.
func (g *Generator) GeneratePrompt(ctx context.Context, req types.PromptRequest, apiKey string) (*types.GeneratedPrompt, error) {
	apiKey = strings.TrimSpace(apiKey)
	if err := validateAPIKey(apiKey); err != nil {
		return nil, err
	}

	if strings.TrimSpace(req.ProjectIdea) == "" {
		return nil, ErrMissingProjectIdea
	}

	log := logger.FromContext(ctx)
	promptID := uuid.New().String()

	// 1. Apply the credential
	client, err := g.newClient(ctx, apiKey)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredential, err)
	}

	// 2. Construct the prompt using the template
	fullPrompt := prompts.BuildOptimizerPrompt(req)
	log.Debug("full prompt for LLM", "prompt_id", promptID, "prompt", fullPrompt)
	log.Info("generating prompt",
		"prompt_id", promptID,
		"provider", g.provider,
		"model", client.Model(),
		"file_count", req.FileCount,
		"prompt_chars", len(fullPrompt),
	)

	// 3. One call to the model
	text, err := client.GenerateText(ctx, fullPrompt)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: model returned empty response", ErrGenerationFailed)
	}

	log.Info("prompt generated", "prompt_id", promptID, "response_chars", len(text))

	return &types.GeneratedPrompt{
		ID:        promptID,
		Text:      text,
		Provider:  g.provider,
		Model:     client.Model(),
		FileCount: req.FileCount,
		CreatedAt: time.Now().UTC(),
	}, nil
}
