package logger

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ContextKey is the type for context keys
type ContextKey string

// RunIDKey is the context key for the per-invocation run ID
const RunIDKey ContextKey = "run_id"

// NewRunID generates the identifier attached to a single tool invocation.
func NewRunID() string {
	return uuid.New().String()
}

// WithRunID returns a context carrying a fresh run ID.
func WithRunID(ctx context.Context) context.Context {
	return context.WithValue(ctx, RunIDKey, NewRunID())
}

// WithContext creates a logger that stamps the context's run ID on every entry.
func WithContext(ctx context.Context, logger *zap.Logger) *zap.Logger {
	if id := GetRunID(ctx); id != "" {
		return logger.With(zap.String("run_id", id))
	}
	return logger
}

// GetRunID extracts the run ID from context
func GetRunID(ctx context.Context) string {
	if runID := ctx.Value(RunIDKey); runID != nil {
		if id, ok := runID.(string); ok {
			return id
		}
	}
	return ""
}
