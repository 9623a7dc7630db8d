package api

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/ai"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/apierrors"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/files"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/guide"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/logger"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/types"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/utils"
)

const (
	// APIKeyHeader may carry the credential instead of the api_key field.
	APIKeyHeader = "X-API-Key"

	fieldAPIKey      = "api_key"
	fieldProjectIdea = "project_idea"
	fieldCode        = "code"
	fieldFiles       = "files"
)

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator      *ai.Generator
	guidePath      string
	maxUploadBytes int64
}

// NewAPIHandler initializes a new API handler with its dependencies.
func NewAPIHandler(gen *ai.Generator, guidePath string, maxUploadBytes int64) *APIHandler {
	if guidePath == "" {
		guidePath = guide.DefaultPath
	}

	return &APIHandler{
		generator:      gen,
		guidePath:      guidePath,
		maxUploadBytes: maxUploadBytes,
	}
}

// --- Structs for API Requests/Responses ---

type FileInfo struct {
	Name     string `json:"name"`
	Size     int    `json:"size"`
	Type     string `json:"type"`
	Language string `json:"language"`
	Preview  string `json:"preview"`
}

type GenerateResponse struct {
	types.GeneratedPrompt
	Files    []FileInfo `json:"files"`
	Warnings []string   `json:"warnings,omitempty"`
}

type DownloadRequest struct {
	Prompt string `form:"prompt" json:"prompt" binding:"required"`
}

type FilesResponse struct {
	Summary  files.Summary `json:"summary"`
	Files    []FileInfo    `json:"files"`
	Warnings []string      `json:"warnings,omitempty"`
}

type GuideResponse struct {
	Source guide.Source `json:"source"`
	Path   string       `json:"path"`
	Text   string       `json:"text"`
}

// promptForm is one request's worth of input. Nothing outlives the request.
type promptForm struct {
	apiKey      string
	projectIdea string
	code        string
	uploads     []files.Upload
	handles     []multipart.File
}

func (f *promptForm) close() {
	for _, h := range f.handles {
		h.Close() //nolint:errcheck,gosec // temp files of a finished request
	}
}

// --- API Handlers ---

// POST /prompt/generate
func (h *APIHandler) GeneratePrompt(c *gin.Context) {
	form, ok := h.readPromptForm(c)
	if !ok {
		return
	}
	defer form.close()

	if strings.TrimSpace(form.apiKey) == "" {
		apierrors.MissingCredential(c)
		return
	}
	if strings.TrimSpace(form.projectIdea) == "" {
		apierrors.ValidationError(c, "project_idea is required")
		return
	}

	log := logger.FromContext(c.Request.Context())

	agg := files.AggregateUploads(form.uploads)
	warnings := failureWarnings(agg.Failures)
	for _, f := range agg.Failures {
		log.Warn("skipping uploaded file", "file", f.Name, "error", f.Err)
	}

	req := types.PromptRequest{
		GuideText:   guide.LoadFrom(h.guidePath),
		ProjectIdea: form.projectIdea,
		CodeContext: form.code + agg.Text,
		FileCount:   agg.Count(),
	}

	out, err := h.generator.GeneratePrompt(c.Request.Context(), req, form.apiKey)
	if err != nil {
		respondGenerateError(c, err)
		return
	}

	if c.Query("format") == "text" {
		sendAttachment(c, out.Text)
		return
	}

	c.JSON(http.StatusOK, GenerateResponse{
		GeneratedPrompt: *out,
		Files:           fileInfos(agg.Records),
		Warnings:        warnings,
	})
}

// POST /prompt/download
func (h *APIHandler) DownloadPrompt(c *gin.Context) {
	var req DownloadRequest
	if err := c.ShouldBind(&req); err != nil {
		apierrors.BadRequest(c, "prompt is required", err)
		return
	}

	sendAttachment(c, req.Prompt)
}

// POST /prompt/files
func (h *APIHandler) PreviewFiles(c *gin.Context) {
	form, ok := h.readPromptForm(c)
	if !ok {
		return
	}
	defer form.close()

	agg := files.AggregateUploads(form.uploads)

	c.JSON(http.StatusOK, FilesResponse{
		Summary:  files.Stats(agg.Records),
		Files:    fileInfos(agg.Records),
		Warnings: failureWarnings(agg.Failures),
	})
}

// GET /prompt/extensions
func (h *APIHandler) ListExtensions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"extensions": files.AllowedExtensions})
}

// GET /guide
func (h *APIHandler) GetGuide(c *gin.Context) {
	res := guide.Resolve(h.guidePath)
	c.JSON(http.StatusOK, GuideResponse{
		Source: res.Source,
		Path:   res.Path,
		Text:   res.Text,
	})
}

// readPromptForm parses the form and opens every upload. On failure the error
// response has already been written.
func (h *APIHandler) readPromptForm(c *gin.Context) (*promptForm, bool) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	mf, err := c.MultipartForm()
	if err != nil && !errors.Is(err, http.ErrNotMultipart) {
		if isTooLarge(err) {
			apierrors.PayloadTooLarge(c, h.maxUploadBytes)
			return nil, false
		}
		apierrors.BadRequest(c, "could not parse form", err)
		return nil, false
	}

	form := &promptForm{
		apiKey:      c.PostForm(fieldAPIKey),
		projectIdea: c.PostForm(fieldProjectIdea),
		code:        c.PostForm(fieldCode),
	}
	if form.apiKey == "" {
		form.apiKey = c.GetHeader(APIKeyHeader)
	}

	if mf == nil {
		return form, true
	}

	headers := mf.File[fieldFiles]
	for _, fh := range headers {
		if !files.IsAllowed(fh.Filename) {
			apierrors.UnsupportedFile(c, fh.Filename)
			return nil, false
		}
	}

	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			form.close()
			apierrors.InternalError(c, "could not open uploaded file", fmt.Errorf("open %s: %w", fh.Filename, err))
			return nil, false
		}
		form.handles = append(form.handles, f)
		form.uploads = append(form.uploads, files.Upload{Name: fh.Filename, Stream: f})
	}

	return form, true
}

func respondGenerateError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, ai.ErrMissingCredential):
		apierrors.MissingCredential(c)
	case errors.Is(err, ai.ErrInvalidCredential):
		apierrors.InvalidCredential(c, err)
	case errors.Is(err, ai.ErrMissingProjectIdea):
		apierrors.ValidationError(c, err.Error())
	case errors.Is(err, ai.ErrGenerationFailed):
		status := utils.UpstreamStatus(err)
		if status == http.StatusUnauthorized {
			apierrors.InvalidCredential(c, err)
			return
		}
		apierrors.GenerationFailed(c, status, err)
	default:
		apierrors.InternalError(c, "failed to generate the prompt", err)
	}
}

func sendAttachment(c *gin.Context, text string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", types.DownloadFileName))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(text))
}

func isTooLarge(err error) bool {
	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return true
	}
	return strings.Contains(err.Error(), "request body too large")
}

func fileInfos(records []files.FileRecord) []FileInfo {
	out := make([]FileInfo, 0, len(records))
	for _, r := range records {
		out = append(out, FileInfo{
			Name:     r.Name,
			Size:     r.Size,
			Type:     r.Extension,
			Language: r.Language(),
			Preview:  r.Preview(),
		})
	}
	return out
}

func failureWarnings(failures []files.Failure) []string {
	if len(failures) == 0 {
		return nil
	}

	out := make([]string, 0, len(failures))
	for _, f := range failures {
		out = append(out, f.Error())
	}
	return out
}
