// Package cli provides common process initialization utilities:
// logger setup, .env loading, configuration, and backend selection.
package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"

	"spend/internal/config"
	"spend/internal/expenses"
	"spend/internal/expenses/memory"
	"spend/internal/expenses/rest"
	applog "spend/internal/log"
)

// LoadEnvFile loads the .env file for local development.
// Errors are ignored silently as this is optional in production.
func LoadEnvFile() {
	_ = godotenv.Load()
}

// ParseLogLevel maps a config string to a slog level, defaulting to Info.
func ParseLogLevel(s string) slog.Level {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// SetupLogger initializes structured logging at the given level and
// sets it as the process default. Logs go to stderr so they do not
// interleave with the rendered screen on stdout.
func SetupLogger(level slog.Level) *applog.Logger {
	logger := applog.New(applog.Config{
		Level:     level,
		Component: applog.ComponentApp,
		Handler:   slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}),
	})
	applog.SetDefault(logger)
	return logger
}

// LoadAndValidateConfig loads configuration and validates it.
// Returns the config or exits the process on validation failure.
func LoadAndValidateConfig(logger *applog.Logger) *config.Config {
	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", applog.FieldError, err)
		os.Exit(1)
	}
	return cfg
}

// NewService selects the expense backend from configuration: the REST
// client against the remote collection, or the in-process store for
// offline demo runs.
func NewService(logger *applog.Logger, cfg *config.Config) (expenses.Service, error) {
	switch cfg.DataBackend {
	case "memory":
		logger.Info("Initialized memory backend", applog.FieldBackend, cfg.DataBackend)
		return memory.New(), nil
	default:
		client, err := rest.New(cfg.APIBaseURL, cfg.HTTPTimeout, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Initialized rest backend",
			applog.FieldBackend, cfg.DataBackend, applog.FieldBaseURL, cfg.APIBaseURL)
		return client, nil
	}
}

// SignalContext returns a context cancelled on SIGINT or SIGTERM.
func SignalContext(logger *applog.Logger) (context.Context, context.CancelFunc) {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	context.AfterFunc(ctx, func() {
		logger.Info("Shutdown signal received", applog.FieldOperation, applog.OpShutdown)
	})
	return ctx, cancel
}
