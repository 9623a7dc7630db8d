package logger

import (
	"context"
	"log/slog"
	"os"
)

var defaultLogger *slog.Logger

// production gets JSON at INFO, everything else human-readable text at DEBUG
func init() {
	defaultLogger = New(os.Getenv("APP_ENV"))
}

// builds a logger for the given environment name
func New(env string) *slog.Logger {
	if env == "production" {
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

// replaces the default logger, used by main once config is loaded
func SetDefault(l *slog.Logger) {
	if l != nil {
		defaultLogger = l
	}
}

func Default() *slog.Logger {
	return defaultLogger
}

// creates a logger with additional context fields
func With(args ...any) *slog.Logger {
	return defaultLogger.With(args...)
}

// returns the request-scoped logger if one was stored, else the default
func FromContext(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return Default()
	}

	if l, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return l
	}

	return Default()
}

func WithContext(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, l)
}

type loggerKey struct{}

func Debug(msg string, args ...any) {
	defaultLogger.Debug(msg, args...)
}

func Info(msg string, args ...any) {
	defaultLogger.Info(msg, args...)
}

func Warn(msg string, args ...any) {
	defaultLogger.Warn(msg, args...)
}

func Error(msg string, args ...any) {
	defaultLogger.Error(msg, args...)
}

// logs an error under the "error" key
func ErrorErr(err error, msg string, args ...any) {
	args = append(args, "error", err)
	Error(msg, args...)
}

// logs and exits, for main and the CLI
func Fatal(msg string, args ...any) {
	Error(msg, args...)
	os.Exit(1)
}
