package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/Felipecataneo/Gerador-de-Prompts/config"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/ai"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/api"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/apierrors"
	"github.com/Felipecataneo/Gerador-de-Prompts/internal/logger"
)

func main() {
	// --- Load .env file ---
	// Must happen before viper reads the environment.
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			logger.Warn("error loading .env file", "error", err)
		} else {
			logger.Info(".env file not found, relying on system environment variables")
		}
	} else {
		logger.Info("loaded environment variables from .env file")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		logger.Fatal("cannot load config", "error", err)
	}

	logger.SetDefault(logger.New(cfg.AppEnv))
	apierrors.SetProduction(cfg.IsProduction())

	// --- Dependency Initialization ---
	// The API key is not configured here: every request brings its own.
	generator, err := ai.NewGenerator(cfg.LLMProvider, cfg.Model(), cfg.OpenAIBaseURL)
	if err != nil {
		logger.Fatal("cannot create generator", "error", err)
	}

	apiHandler := api.NewAPIHandler(generator, cfg.GuidePath, cfg.MaxUploadBytes)

	// --- Start API Server ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		logger.Debug("running in gin debug mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.MaxMultipartMemory = cfg.MaxUploadBytes

	err = api.RegisterRoutes(router, apiHandler, api.RouteOptions{
		AllowedOrigins: cfg.AllowedOrigins(),
		GenerateRate:   cfg.GenerateRateLimit,
	})
	if err != nil {
		logger.Fatal("cannot register routes", "error", err)
	}

	server := &http.Server{
		Addr:        cfg.ServerAddress,
		Handler:     router,
		ReadTimeout: 30 * time.Second,
		// the generation call has no deadline of its own
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting API server",
			"address", cfg.ServerAddress,
			"provider", generator.Provider(),
			"model", generator.Model(),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("API server listen error", "error", err)
		}
		logger.Info("API server has stopped listening")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	logger.Info("shutting down server", "signal", sig.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.ErrorErr(err, "API server forced shutdown")
	} else {
		logger.Info("API server gracefully stopped")
	}
}
