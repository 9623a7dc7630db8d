// Package guide loads the prompt-engineering best-practices document that is
// embedded verbatim into every generated prompt.
package guide

import (
	"errors"
	"io/fs"
	"os"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/logger"
)

// DefaultPath is the fixed resource name, relative to the working directory.
const DefaultPath = "guide.md"

// Source says where the guide text came from.
type Source string

const (
	SourceFile    Source = "file"
	SourceDefault Source = "default"
	SourceError   Source = "error"
)

// Result is the resolved guide plus its origin.
type Result struct {
	Text   string `json:"text"`
	Source Source `json:"source"`
	Path   string `json:"path"`
}

// Fallback is returned when no guide file exists.
const Fallback = `
# Prompt Best Practices Guide

## Core Principles
- Be specific and clear
- Provide enough context
- Use examples when appropriate
- Define the desired output format

## Recommended Structure
1. Context and goal
2. Specific instructions
3. Examples (if needed)
4. Output format
5. Constraints or special considerations
`

// Load reads DefaultPath.
func Load() string {
	return LoadFrom(DefaultPath)
}

// LoadFrom returns the file at path verbatim, Fallback when it does not
// exist, and "" on any other read failure. It never returns an error; failures
// are logged.
func LoadFrom(path string) string {
	return Resolve(path).Text
}

// Resolve is LoadFrom with the source attached.
func Resolve(path string) Result {
	if path == "" {
		path = DefaultPath
	}

	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Result{Text: Fallback, Source: SourceDefault, Path: path}
		}
		logger.Warn("failed to stat guide", "path", path, "error", err)
		return Result{Source: SourceError, Path: path}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("failed to load guide", "path", path, "error", err)
		return Result{Source: SourceError, Path: path}
	}

	return Result{Text: string(data), Source: SourceFile, Path: path}
}
