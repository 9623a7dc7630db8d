package ai

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/ai/prompts"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/types"
)

// implements TextGenerator for testing
type mockLLM struct {
	generateTextFunc func(ctx context.Context, prompt string) (string, error)
	prompts          []string
}

func (m *mockLLM) GenerateText(ctx context.Context, prompt string) (string, error) {
	m.prompts = append(m.prompts, prompt)
	if m.generateTextFunc != nil {
		return m.generateTextFunc(ctx, prompt)
	}

	return "You are a senior engineer. Build a todo app...", nil
}

func (m *mockLLM) Model() string {
	return "mock-model"
}

func newTestGenerator(mock *mockLLM, factoryErr error) (*Generator, *int) {
	calls := 0
	gen := NewGeneratorWithFactory(ProviderGemini, "mock-model", func(_ context.Context, _ string) (TextGenerator, error) {
		calls++
		if factoryErr != nil {
			return nil, factoryErr
		}
		return mock, nil
	})
	return gen, &calls
}

func TestGeneratePrompt_TodoAppScenario(t *testing.T) {
	mock := &mockLLM{}
	gen, calls := newTestGenerator(mock, nil)

	out, err := gen.GeneratePrompt(context.Background(), types.PromptRequest{
		GuideText:   "guide",
		ProjectIdea: "build a todo app",
	}, "valid-key")

	require.NoError(t, err)
	assert.Equal(t, "You are a senior engineer. Build a todo app...", out.Text)
	assert.Equal(t, 1, *calls)
	require.Len(t, mock.prompts, 1)
	assert.Contains(t, mock.prompts[0], "build a todo app")
	assert.Contains(t, mock.prompts[0], prompts.NoCodePlaceholder)
	assert.NotContains(t, mock.prompts[0], "code file(s) as additional context")
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, ProviderGemini, out.Provider)
	assert.Equal(t, "mock-model", out.Model)
	assert.False(t, out.CreatedAt.IsZero())
}

func TestGeneratePrompt_ForwardsFileCount(t *testing.T) {
	mock := &mockLLM{}
	gen, _ := newTestGenerator(mock, nil)

	out, err := gen.GeneratePrompt(context.Background(), types.PromptRequest{
		ProjectIdea: "refactor the parser",
		CodeContext: "\n\n--- FILE: a.py ---\nx = 1",
		FileCount:   3,
	}, "valid-key")

	require.NoError(t, err)
	assert.Equal(t, 3, out.FileCount)
	assert.Contains(t, mock.prompts[0], "The user provided 3 code file(s)")
	assert.Contains(t, mock.prompts[0], "--- FILE: a.py ---")
}

func TestGeneratePrompt_EmptyCredentialMakesNoCall(t *testing.T) {
	mock := &mockLLM{}
	gen, calls := newTestGenerator(mock, nil)

	for _, key := range []string{"", "   "} {
		_, err := gen.GeneratePrompt(context.Background(), types.PromptRequest{ProjectIdea: "build a todo app"}, key)

		assert.ErrorIs(t, err, ErrMissingCredential)
	}
	assert.Equal(t, 0, *calls, "no client should be created without a credential")
	assert.Empty(t, mock.prompts)
}

func TestGeneratePrompt_MalformedCredential(t *testing.T) {
	mock := &mockLLM{}
	gen, calls := newTestGenerator(mock, nil)

	_, err := gen.GeneratePrompt(context.Background(), types.PromptRequest{ProjectIdea: "x"}, "abc def")

	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.Equal(t, 0, *calls)
}

func TestGeneratePrompt_MissingProjectIdea(t *testing.T) {
	mock := &mockLLM{}
	gen, calls := newTestGenerator(mock, nil)

	_, err := gen.GeneratePrompt(context.Background(), types.PromptRequest{ProjectIdea: " \n"}, "valid-key")

	assert.ErrorIs(t, err, ErrMissingProjectIdea)
	assert.Equal(t, 0, *calls)
}

func TestGeneratePrompt_ClientConfigurationFailure(t *testing.T) {
	mock := &mockLLM{}
	gen, calls := newTestGenerator(mock, errors.New("bad key format"))

	_, err := gen.GeneratePrompt(context.Background(), types.PromptRequest{ProjectIdea: "x"}, "valid-key")

	assert.ErrorIs(t, err, ErrInvalidCredential)
	assert.Contains(t, err.Error(), "bad key format")
	assert.Equal(t, 1, *calls, "configuration is attempted once, never retried")
	assert.Empty(t, mock.prompts)
}

func TestGeneratePrompt_CallFailureIsNotRetried(t *testing.T) {
	upstream := errors.New("503 service unavailable")
	mock := &mockLLM{
		generateTextFunc: func(context.Context, string) (string, error) {
			return "", upstream
		},
	}
	gen, _ := newTestGenerator(mock, nil)

	out, err := gen.GeneratePrompt(context.Background(), types.PromptRequest{ProjectIdea: "x"}, "valid-key")

	assert.Nil(t, out)
	assert.ErrorIs(t, err, ErrGenerationFailed)
	assert.ErrorIs(t, err, upstream)
	assert.Len(t, mock.prompts, 1)
}

func TestGeneratePrompt_EmptyResponseIsFailure(t *testing.T) {
	mock := &mockLLM{
		generateTextFunc: func(context.Context, string) (string, error) {
			return "  \n", nil
		},
	}
	gen, _ := newTestGenerator(mock, nil)

	_, err := gen.GeneratePrompt(context.Background(), types.PromptRequest{ProjectIdea: "x"}, "valid-key")

	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestNewGenerator(t *testing.T) {
	gen, err := NewGenerator(ProviderOpenAI, "gpt-4o-mini", "")
	require.NoError(t, err)
	assert.Equal(t, ProviderOpenAI, gen.Provider())
	assert.Equal(t, "gpt-4o-mini", gen.Model())

	_, err = NewGenerator("claude", "x", "")
	assert.Error(t, err)
}
