package guide

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFrom_FilePresent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "guide.md")
	content := "# House rules\n\n- always state the output format\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	res := Resolve(path)

	assert.Equal(t, content, res.Text)
	assert.Equal(t, SourceFile, res.Source)
	assert.Equal(t, content, LoadFrom(path))
}

func TestLoadFrom_FileAbsent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.md")

	res := Resolve(path)

	assert.Equal(t, SourceDefault, res.Source)
	assert.Equal(t, Fallback, res.Text)

	sections := regexp.MustCompile(`(?m)^[1-5]\. `).FindAllString(res.Text, -1)
	assert.Len(t, sections, 5, "fallback guide should enumerate five structural sections")
	assert.Contains(t, res.Text, "Context and goal")
	assert.Contains(t, res.Text, "Constraints or special considerations")
}

func TestLoadFrom_UnreadableReturnsEmpty(t *testing.T) {
	// a directory exists but cannot be read as a file
	dir := t.TempDir()

	res := Resolve(dir)

	assert.Equal(t, SourceError, res.Source)
	assert.Empty(t, res.Text)
	assert.NotPanics(t, func() { LoadFrom(dir) })
}

func TestLoad_UsesWorkingDirectory(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd) //nolint:errcheck // test cleanup

	assert.Equal(t, Fallback, Load())

	require.NoError(t, os.WriteFile(filepath.Join(dir, DefaultPath), []byte("local guide"), 0o644))
	assert.Equal(t, "local guide", Load())
}
