package apierrors

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withProduction(t *testing.T, on bool) {
	t.Helper()
	prev := production
	SetProduction(on)
	t.Cleanup(func() { SetProduction(prev) })
}

func TestSanitizeError(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		err        error
		want       string
	}{
		{"nil", true, nil, ""},
		{"development keeps text", false, errors.New("dial tcp 10.0.0.1: connection refused"), "dial tcp 10.0.0.1: connection refused"},
		{"credential", true, errors.New("API key not valid"), "credential rejected"},
		{"quota", true, errors.New("quota exceeded for project 123"), "quota exceeded"},
		{"timeout", true, errors.New("context deadline exceeded"), "request timed out"},
		{"network", true, errors.New("dial tcp 10.0.0.1: connection refused"), "connection error occurred"},
		{"anything else", true, errors.New("model said: secret prompt text"), "an error occurred"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withProduction(t, tt.production)
			assert.Equal(t, tt.want, sanitizeError(tt.err))
		})
	}
}

func TestGenerationFailed_HidesDetailsInProduction(t *testing.T) {
	gin.SetMode(gin.TestMode)
	withProduction(t, true)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodPost, "/prompt/generate", nil)

	GenerationFailed(c, 0, errors.New("upstream echoed: build a todo app"))

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, CodeGenerationFailed, resp.Error)
	assert.Equal(t, "an error occurred", resp.Details)
}

func TestPayloadTooLarge(t *testing.T) {
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)

	PayloadTooLarge(c, 10<<20)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "10 MiB", resp.Details)
}
