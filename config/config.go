package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/logger"
)

// Config holds all configuration for the application.
// Mapstructure tags map environment variables and config file keys.
// The LLM credential is deliberately absent: it always arrives with the request.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches gin and the logger to release mode

	// AI Configuration
	LLMProvider   string `mapstructure:"LLM_PROVIDER"`    // "gemini" or "openai"
	GeminiModel   string `mapstructure:"GEMINI_MODEL"`    // e.g., "gemini-2.5-flash-lite-preview-06-17"
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`    // e.g., "gpt-4o-mini"
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"` // optional, for OpenAI-compatible gateways

	// Prompt inputs
	GuidePath      string `mapstructure:"GUIDE_PATH"`       // best-practices markdown, optional on disk
	MaxUploadBytes int64  `mapstructure:"MAX_UPLOAD_BYTES"` // whole multipart body

	// HTTP policies
	GenerateRateLimit  string `mapstructure:"GENERATE_RATE_LIMIT"`  // ulule format, e.g. "30-M"
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"` // comma separated, empty allows all
}

const (
	DefaultServerAddress     = ":8080"
	DefaultLLMProvider       = "gemini"
	DefaultGeminiModel       = "gemini-2.5-flash-lite-preview-06-17"
	DefaultOpenAIModel       = "gpt-4o-mini"
	DefaultGuidePath         = "guide.md"
	DefaultMaxUploadBytes    = 10 << 20
	DefaultGenerateRateLimit = "30-M"
)

// LoadConfig reads configuration from config.yaml in path and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// Unmarshal only sees env vars for keys viper already knows about,
	// so every key gets a default.
	v.SetDefault("SERVER_ADDRESS", DefaultServerAddress)
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("LLM_PROVIDER", DefaultLLMProvider)
	v.SetDefault("GEMINI_MODEL", DefaultGeminiModel)
	v.SetDefault("OPENAI_MODEL", DefaultOpenAIModel)
	v.SetDefault("OPENAI_BASE_URL", "")
	v.SetDefault("GUIDE_PATH", DefaultGuidePath)
	v.SetDefault("MAX_UPLOAD_BYTES", DefaultMaxUploadBytes)
	v.SetDefault("GENERATE_RATE_LIMIT", DefaultGenerateRateLimit)
	v.SetDefault("CORS_ALLOWED_ORIGINS", "")

	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logger.Info("config.yaml not found, relying on environment variables", "path", path)
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		logger.Info("using configuration file", "file", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.LLMProvider = strings.ToLower(strings.TrimSpace(config.LLMProvider))
	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate rejects values the server cannot start with.
func (c Config) Validate() error {
	switch c.LLMProvider {
	case "gemini", "openai":
	default:
		return fmt.Errorf("LLM_PROVIDER must be gemini or openai, got %q", c.LLMProvider)
	}

	if c.MaxUploadBytes <= 0 {
		return fmt.Errorf("MAX_UPLOAD_BYTES must be positive, got %d", c.MaxUploadBytes)
	}

	return nil
}

// Model returns the model name configured for the active provider.
func (c Config) Model() string {
	if c.LLMProvider == "openai" {
		return c.OpenAIModel
	}

	return c.GeminiModel
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS; nil means every origin.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	return origins
}

// IsProduction reports whether APP_ENV selects release behaviour.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
