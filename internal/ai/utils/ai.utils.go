package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/logger"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/types"
)

// SavePromptFile writes a generated prompt to path, creating parent
// directories. An empty path means types.DownloadFileName in the working
// directory. It returns the path written.
func SavePromptFile(path, text string) (string, error) {
	if path == "" {
		path = types.DownloadFileName
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", path, err)
	}

	logger.Debug("prompt saved", "path", path, "bytes", len(text))
	return path, nil
}
