package cli

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/ai"
)

const (
	// APIKeyEnv is read when --api-key is not given.
	APIKeyEnv = "PROMPT_API_KEY"
	// ProviderEnv is read when --provider is not given; the server uses it too.
	ProviderEnv = "LLM_PROVIDER"
)

func Execute() error {
	return NewRoot().Execute()
}

// swapped in tests
var newGenerator = func(provider, model string) (*ai.Generator, error) {
	return ai.NewGenerator(provider, model, os.Getenv("OPENAI_BASE_URL"))
}

func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:          "promptctl",
		Short:        "Turn a project idea and local code into an optimized prompt",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load() // optional
		},
	}
	root.AddCommand(
		GenerateCmd(),
		FilesCmd(),
	)
	return root
}
