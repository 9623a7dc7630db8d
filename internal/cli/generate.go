package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Felipecataneo/Gerador-de-Prompts/config"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/ai"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/ai/utils"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/files"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/guide"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/types"
)

func GenerateCmd() *cobra.Command {
	var (
		idea      string
		code      string
		filePaths []string
		apiKey    string
		provider  string
		model     string
		guidePath string
		outPath   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate an optimized prompt",
		RunE: func(cmd *cobra.Command, args []string) error {
			if apiKey == "" {
				apiKey = os.Getenv(APIKeyEnv)
			}
			if strings.TrimSpace(apiKey) == "" {
				return fmt.Errorf("%w: pass --api-key or set %s", ai.ErrMissingCredential, APIKeyEnv)
			}
			if strings.TrimSpace(idea) == "" {
				return ai.ErrMissingProjectIdea
			}

			provider = resolveProvider(provider)
			if model == "" {
				model = defaultModel(provider)
			}
			gen, err := newGenerator(provider, model)
			if err != nil {
				return err
			}

			uploads, closeAll, err := openUploads(filePaths)
			if err != nil {
				return err
			}
			defer closeAll()

			agg := files.AggregateUploads(uploads)
			printFailures(cmd.ErrOrStderr(), agg.Failures)

			out, err := gen.GeneratePrompt(cmd.Context(), types.PromptRequest{
				GuideText:   guide.LoadFrom(guidePath),
				ProjectIdea: idea,
				CodeContext: code + agg.Text,
				FileCount:   agg.Count(),
			}, apiKey)
			if err != nil {
				if errors.Is(err, ai.ErrInvalidCredential) {
					return fmt.Errorf("the API key was rejected: %w", err)
				}
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), out.Text)

			written, err := utils.SavePromptFile(outPath, out.Text)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "saved to %s\n", written)
			return nil
		},
	}

	cmd.Flags().StringVar(&idea, "idea", "", "Project idea or goal")
	cmd.Flags().StringVar(&code, "code", "", "Code pasted as context")
	cmd.Flags().StringArrayVarP(&filePaths, "file", "f", nil, "Code file to include (repeatable)")
	cmd.Flags().StringVar(&apiKey, "api-key", "", "API key for the provider (default $"+APIKeyEnv+")")
	cmd.Flags().StringVar(&provider, "provider", "", "gemini or openai (default $"+ProviderEnv+", then "+config.DefaultLLMProvider+")")
	cmd.Flags().StringVar(&model, "model", "", "Model name (default depends on provider)")
	cmd.Flags().StringVar(&guidePath, "guide", guide.DefaultPath, "Best-practices guide")
	cmd.Flags().StringVarP(&outPath, "out", "o", types.DownloadFileName, "Where to save the prompt")
	return cmd
}

// resolveProvider normalizes the flag value the same way config.LoadConfig
// does, falling back to the environment and then the server default.
func resolveProvider(flag string) string {
	p := strings.ToLower(strings.TrimSpace(flag))
	if p == "" {
		p = strings.ToLower(strings.TrimSpace(os.Getenv(ProviderEnv)))
	}
	if p == "" {
		p = config.DefaultLLMProvider
	}
	return p
}

func defaultModel(provider string) string {
	if provider == ai.ProviderOpenAI {
		return config.DefaultOpenAIModel
	}
	return config.DefaultGeminiModel
}
