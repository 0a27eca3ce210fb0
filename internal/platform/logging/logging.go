// Package logging builds the application logger and carries a scoped
// logger through context.Context.
package logging

import (
	"context"
	"io"
	"log/slog"

	"github.com/SscSPs/household_finance/internal/platform/config"
	"github.com/google/uuid"
)

// contextKey is the key used to store the logger in a context.
// Using a custom type prevents collisions.
type contextKey string

const loggerKey = contextKey("logger")

// NewLogger creates a structured logger writing to w with the configured level and format.
func NewLogger(w io.Writer, cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.LogFormat == config.LogFormatText {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}

// WithOperation stores a logger enriched with an operation name and a fresh
// operation id, so every line logged for one call can be correlated.
func WithOperation(ctx context.Context, base *slog.Logger, operation string) context.Context {
	opLogger := base.With(
		slog.String("operation_id", uuid.NewString()),
		slog.String("operation", operation),
	)
	return WithLogger(ctx, opLogger)
}

// GetLoggerFromCtx retrieves the scoped logger from ctx, or nil if none is set.
func GetLoggerFromCtx(ctx context.Context) *slog.Logger {
	logger, ok := ctx.Value(loggerKey).(*slog.Logger)
	if !ok {
		return nil
	}
	return logger
}
