package api

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"

	"github.com/Felipecataneo/Gerador-de-Prompts/internal/apierrors"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/logger"
)

const RequestIDHeader = "X-Request-ID"

// RouteOptions are the HTTP policies applied around the handlers.
type RouteOptions struct {
	AllowedOrigins []string // empty allows every origin
	GenerateRate   string   // ulule format, e.g. "30-M"; empty disables limiting
}

// RegisterRoutes sets up the API endpoints and groups them logically.
func RegisterRoutes(router *gin.Engine, h *APIHandler, opts RouteOptions) error {
	router.Use(requestID())
	router.Use(cors.New(corsConfig(opts.AllowedOrigins)))

	generateLimit, err := rateLimit(opts.GenerateRate)
	if err != nil {
		return err
	}

	// --- Prompt generation ---
	promptGroup := router.Group("/prompt")
	{
		promptGroup.POST("/generate", generateLimit, h.GeneratePrompt) // Build and submit the optimizer prompt
		promptGroup.POST("/download", h.DownloadPrompt)                // Return a prompt as prompt_otimizado.txt
		promptGroup.POST("/files", h.PreviewFiles)                     // Aggregate uploads without generating
		promptGroup.GET("/extensions", h.ListExtensions)
	}

	router.GET("/guide", h.GetGuide)

	// --- Simple Health Check ---
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	return nil
}

// requestID tags each request with an id and a logger carrying it.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Set("request_id", id)
		c.Header(RequestIDHeader, id)

		ctx := logger.WithContext(c.Request.Context(), logger.With("request_id", id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.DefaultConfig()
	if len(origins) > 0 {
		cfg.AllowOrigins = origins
	} else {
		cfg.AllowAllOrigins = true
	}
	cfg.AllowHeaders = append(cfg.AllowHeaders, APIKeyHeader, RequestIDHeader)
	cfg.ExposeHeaders = []string{"Content-Disposition", RequestIDHeader}

	return cfg
}

// rateLimit builds a per-client limiter backed by an in-memory store.
func rateLimit(formatted string) (gin.HandlerFunc, error) {
	if formatted == "" {
		return func(c *gin.Context) { c.Next() }, nil
	}

	rate, err := limiter.NewRateFromFormatted(formatted)
	if err != nil {
		return nil, fmt.Errorf("invalid rate limit %q: %w", formatted, err)
	}

	return mgin.NewMiddleware(
		limiter.New(memory.NewStore(), rate),
		mgin.WithLimitReachedHandler(func(c *gin.Context) {
			apierrors.TooManyRequests(c, "too many generation requests, try again later")
		}),
	), nil
}
