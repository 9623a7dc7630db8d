package apierrors

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/logger"
)

// Handlers respond through these helpers. Internal packages only wrap and
// return errors; the handler decides how to log and respond.

// ErrorResponse is the JSON body of every non-2xx response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
}

const (
	CodeBadRequest        = "bad_request"
	CodeValidationError   = "validation_error"
	CodeMissingCredential = "missing_credential"
	CodeInvalidCredential = "invalid_credential"
	CodeUnsupportedFile   = "unsupported_file"
	CodePayloadTooLarge   = "payload_too_large"
	CodeTooManyRequests   = "too_many_requests"
	CodeGenerationFailed  = "generation_failed"
	CodeServerError       = "server_error"
)

func BadRequest(c *gin.Context, message string, err error) {
	if message == "" {
		message = "invalid request"
	}

	resp := ErrorResponse{Error: CodeBadRequest, Message: message}
	if err != nil {
		resp.Details = sanitizeError(err)
	}

	c.JSON(http.StatusBadRequest, resp)
}

func ValidationError(c *gin.Context, message string) {
	if message == "" {
		message = "validation failed"
	}

	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeValidationError,
		Message: message,
	})
}

func MissingCredential(c *gin.Context) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeMissingCredential,
		Message: "an API key is required to generate a prompt",
	})
}

func InvalidCredential(c *gin.Context, err error) {
	c.JSON(http.StatusUnauthorized, ErrorResponse{
		Error:   CodeInvalidCredential,
		Message: "the API key was rejected",
		Details: sanitizeError(err),
	})
}

func UnsupportedFile(c *gin.Context, name string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{
		Error:   CodeUnsupportedFile,
		Message: "file type not accepted: " + name,
	})
}

func PayloadTooLarge(c *gin.Context, limit int64) {
	c.JSON(http.StatusRequestEntityTooLarge, ErrorResponse{
		Error:   CodePayloadTooLarge,
		Message: "upload exceeds the size limit",
		Details: humanBytes(limit),
	})
}

func TooManyRequests(c *gin.Context, message string) {
	if message == "" {
		message = "too many requests"
	}

	c.JSON(http.StatusTooManyRequests, ErrorResponse{
		Error:   CodeTooManyRequests,
		Message: message,
	})
}

// GenerationFailed reports a failed call to the text-generation service with
// the status chosen by the caller (502 by default).
func GenerationFailed(c *gin.Context, status int, err error) {
	if status == 0 {
		status = http.StatusBadGateway
	}

	logger.ErrorErr(err, "prompt generation failed",
		"path", c.Request.URL.Path,
		"request_id", c.GetString("request_id"),
		"status", status,
	)

	c.JSON(status, ErrorResponse{
		Error:   CodeGenerationFailed,
		Message: "failed to generate the prompt",
		Details: sanitizeError(err),
	})
}

func InternalError(c *gin.Context, message string, err error) {
	if message == "" {
		message = "an error occurred"
	}

	logger.ErrorErr(err, message,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", c.GetString("request_id"),
	)

	c.JSON(http.StatusInternalServerError, ErrorResponse{
		Error:   CodeServerError,
		Message: message,
		Details: sanitizeError(err),
	})
}

var production bool

// SetProduction selects sanitized error details. main calls it once with the
// loaded config, before serving.
func SetProduction(on bool) {
	production = on
}

// production hides upstream error text, which can echo request data
func sanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	if !production {
		return msg
	}

	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "api key") || strings.Contains(lower, "unauthorized") || strings.Contains(lower, "permission"):
		return "credential rejected"
	case strings.Contains(lower, "quota") || strings.Contains(lower, "rate limit"):
		return "quota exceeded"
	case strings.Contains(lower, "timeout") || strings.Contains(lower, "deadline"):
		return "request timed out"
	case strings.Contains(lower, "connection") || strings.Contains(lower, "network"):
		return "connection error occurred"
	}

	return "an error occurred"
}

func humanBytes(n int64) string {
	const mib = 1 << 20
	if n >= mib && n%mib == 0 {
		return strconv.FormatInt(n/mib, 10) + " MiB"
	}

	return strconv.FormatInt(n, 10) + " bytes"
}
