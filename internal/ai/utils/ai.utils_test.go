package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/types"
)

func TestSavePromptFile_CreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", "prompt.txt")

	written, err := SavePromptFile(path, "final prompt")
	require.NoError(t, err)
	assert.Equal(t, path, written)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "final prompt", string(data))
}

func TestSavePromptFile_DefaultName(t *testing.T) {
	t.Chdir(t.TempDir())

	written, err := SavePromptFile("", "x")
	require.NoError(t, err)
	assert.Equal(t, types.DownloadFileName, written)
	assert.FileExists(t, types.DownloadFileName)
}

func TestSavePromptFile_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "p.txt")
	require.NoError(t, os.WriteFile(path, []byte("old content that is longer"), 0o644))

	_, err := SavePromptFile(path, "new")
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
