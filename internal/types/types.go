package types

import "time"

// DownloadFileName is the name offered for the generated prompt download.
const DownloadFileName = "prompt_otimizado.txt"

// PromptRequest carries everything one generation needs. It is built fresh for
// every request and dropped once the response is obtained.
type PromptRequest struct {
	GuideText   string `json:"guide_text"`
	ProjectIdea string `json:"project_idea"`
	CodeContext string `json:"code_context"`
	FileCount   int    `json:"file_count"`
}

// GeneratedPrompt is the model output, held only long enough to return it.
type GeneratedPrompt struct {
	ID        string    `json:"id"`
	Text      string    `json:"prompt"`
	Provider  string    `json:"provider"`
	Model     string    `json:"model"`
	FileCount int       `json:"file_count"`
	CreatedAt time.Time `json:"created_at"`
}
