package utils

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/sashabaranov/go-openai"
	"google.golang.org/genai"
)

// UpstreamStatus maps an error from the text-generation service to the HTTP
// status the caller should answer with. Nothing is retried; this only decides
// how the failure is surfaced.
func UpstreamStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}

	var openAIErr *openai.APIError
	if errors.As(err, &openAIErr) {
		return statusFromCode(openAIErr.HTTPStatusCode,
			credentialRejected(fmt.Sprint(openAIErr.Code), openAIErr.Type, openAIErr.Message))
	}

	var reqErr *openai.RequestError
	if errors.As(err, &reqErr) {
		return statusFromCode(reqErr.HTTPStatusCode,
			credentialRejected(string(reqErr.Body), reqErr.Error()))
	}

	var geminiErr genai.APIError
	if errors.As(err, &geminiErr) {
		return statusFromCode(geminiErr.Code,
			credentialRejected(geminiErr.Message, geminiErr.Status, fmt.Sprint(geminiErr.Details)))
	}

	errMsg := strings.ToLower(err.Error())
	switch {
	case credentialRejected(errMsg):
		return http.StatusUnauthorized
	case strings.Contains(errMsg, "resource_exhausted") ||
		strings.Contains(errMsg, "rate limit") ||
		strings.Contains(errMsg, "quota"):
		return http.StatusTooManyRequests
	case strings.Contains(errMsg, "context deadline exceeded") ||
		strings.Contains(errMsg, "timeout"):
		return http.StatusGatewayTimeout
	}

	return http.StatusBadGateway
}

// statusFromCode maps an upstream status. A 400 only counts as a rejected
// credential when the provider says so; token limits and bad arguments are 502.
func statusFromCode(code int, badCredential bool) int {
	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		return http.StatusUnauthorized
	case code == http.StatusBadRequest && badCredential:
		return http.StatusUnauthorized
	case code == http.StatusTooManyRequests:
		return http.StatusTooManyRequests
	case code == http.StatusGatewayTimeout || code == http.StatusRequestTimeout:
		return http.StatusGatewayTimeout
	}

	return http.StatusBadGateway
}

// credentialRejected looks for the key-rejection markers of Gemini
// (API_KEY_INVALID, "API key not valid") and OpenAI (invalid_api_key).
func credentialRejected(parts ...string) bool {
	for _, p := range parts {
		p = strings.ToLower(p)
		if strings.Contains(p, "api_key_invalid") ||
			strings.Contains(p, "invalid_api_key") ||
			strings.Contains(p, "api key not valid") ||
			strings.Contains(p, "invalid api key") ||
			strings.Contains(p, "incorrect api key") {
			return true
		}
	}
	return false
}

// Language provides a display label for a file extension (without the dot).
func Language(ext string) string {
	switch strings.ToLower(strings.TrimPrefix(ext, ".")) {
	case "py":
		return "Python"
	case "js":
		return "JavaScript"
	case "jsx":
		return "JSX"
	case "ts":
		return "TypeScript"
	case "tsx":
		return "TSX"
	case "html":
		return "HTML"
	case "css":
		return "CSS"
	case "json":
		return "JSON"
	case "md":
		return "Markdown"
	case "txt":
		return "Text"
	case "php":
		return "PHP"
	case "java":
		return "Java"
	case "cpp":
		return "C++"
	case "c":
		return "C"
	case "sql":
		return "SQL"
	case "yaml", "yml":
		return "YAML"
	case "xml":
		return "XML"
	case "sh":
		return "Shell"
	case "bat":
		return "Batch"
	case "go":
		return "Go"
	case "toml":
		return "TOML"
	default:
		return "Unknown"
	}
}
