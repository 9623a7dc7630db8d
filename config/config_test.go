package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, DefaultServerAddress, cfg.ServerAddress)
	assert.Equal(t, "gemini", cfg.LLMProvider)
	assert.Equal(t, DefaultGeminiModel, cfg.Model())
	assert.Equal(t, DefaultGuidePath, cfg.GuidePath)
	assert.Equal(t, int64(DefaultMaxUploadBytes), cfg.MaxUploadBytes)
	assert.Nil(t, cfg.AllowedOrigins())
	assert.False(t, cfg.IsProduction())
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("LLM_PROVIDER", " OpenAI ")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
	t.Setenv("SERVER_ADDRESS", ":9999")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://localhost:3000, https://prompts.example.com,")

	cfg, err := LoadConfig(t.TempDir())

	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLMProvider)
	assert.Equal(t, "gpt-4o", cfg.Model())
	assert.Equal(t, ":9999", cfg.ServerAddress)
	assert.Equal(t, []string{"http://localhost:3000", "https://prompts.example.com"}, cfg.AllowedOrigins())
}

func TestLoadConfig_File(t *testing.T) {
	dir := t.TempDir()
	content := "GUIDE_PATH: docs/guide.md\nGENERATE_RATE_LIMIT: 5-M\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(content), 0o644))

	cfg, err := LoadConfig(dir)

	require.NoError(t, err)
	assert.Equal(t, "docs/guide.md", cfg.GuidePath)
	assert.Equal(t, "5-M", cfg.GenerateRateLimit)
}

func TestLoadConfig_InvalidProvider(t *testing.T) {
	t.Setenv("LLM_PROVIDER", "claude")

	_, err := LoadConfig(t.TempDir())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_PROVIDER")
}

func TestLoadConfig_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("SERVER_ADDRESS: [unclosed"), 0o644))

	_, err := LoadConfig(dir)

	assert.Error(t, err)
}
