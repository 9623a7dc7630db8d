package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"
)

const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

var (
	// ErrMissingCredential is returned before any client is created.
	ErrMissingCredential = errors.New("api key is required")
	// ErrInvalidCredential covers a key that could not be applied to a client.
	ErrInvalidCredential = errors.New("api key could not be applied")
	// ErrMissingProjectIdea is returned when there is nothing to build a prompt for.
	ErrMissingProjectIdea = errors.New("project idea is required")
	// ErrGenerationFailed wraps any failure of the generation call itself.
	ErrGenerationFailed = errors.New("prompt generation failed")
)

// TextGenerator is one configured client of a hosted text-generation service.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
	Model() string
}

// ClientFactory applies a credential and returns a ready client.
type ClientFactory func(ctx context.Context, apiKey string) (TextGenerator, error)

type Generator struct {
	provider  string
	model     string
	newClient ClientFactory
}

// NewGenerator builds a Generator for one of the supported providers.
// baseURL is only used by the openai provider and may be empty.
func NewGenerator(provider, model, baseURL string) (*Generator, error) {
	var factory ClientFactory

	switch provider {
	case ProviderGemini:
		factory = func(ctx context.Context, apiKey string) (TextGenerator, error) {
			return NewGeminiClient(ctx, apiKey, model)
		}
	case ProviderOpenAI:
		factory = func(_ context.Context, apiKey string) (TextGenerator, error) {
			return NewOpenAIClient(apiKey, model, baseURL), nil
		}
	default:
		return nil, fmt.Errorf("invalid provider: %s", provider)
	}

	return NewGeneratorWithFactory(provider, model, factory), nil
}

// NewGeneratorWithFactory lets callers supply their own client construction.
func NewGeneratorWithFactory(provider, model string, factory ClientFactory) *Generator {
	return &Generator{
		provider:  provider,
		model:     model,
		newClient: factory,
	}
}

func (g *Generator) Provider() string {
	return g.provider
}

func (g *Generator) Model() string {
	return g.model
}

// validateAPIKey rejects keys no provider would accept, without a network call.
func validateAPIKey(apiKey string) error {
	if apiKey == "" {
		return ErrMissingCredential
	}

	if strings.IndexFunc(apiKey, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsControl(r)
	}) >= 0 {
		return fmt.Errorf("%w: key contains whitespace or control characters", ErrInvalidCredential)
	}

	return nil
}
