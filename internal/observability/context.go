package observability

import (
	"context"

	"github.com/rs/zerolog"
)

// Context keys for observability data.
type contextKey string

const (
	runIDKey   contextKey = "run_id"
	commandKey contextKey = "command"
	pathKey    contextKey = "path"
)

// WithRunID adds a run ID and the command being run to the context.
func WithRunID(ctx context.Context, runID, command string) context.Context {
	ctx = context.WithValue(ctx, runIDKey, runID)
	ctx = context.WithValue(ctx, commandKey, command)
	return ctx
}

// RunIDFromContext retrieves the run ID and command from context.
// Returns empty strings if not present.
func RunIDFromContext(ctx context.Context) (runID, command string) {
	if v := ctx.Value(runIDKey); v != nil {
		if id, ok := v.(string); ok {
			runID = id
		}
	}
	if v := ctx.Value(commandKey); v != nil {
		if c, ok := v.(string); ok {
			command = c
		}
	}
	return runID, command
}

// WithDocumentPath adds the path of the document being processed to the context.
func WithDocumentPath(ctx context.Context, path string) context.Context {
	return context.WithValue(ctx, pathKey, path)
}

// DocumentPathFromContext retrieves the document path from context.
// Returns empty string if not present.
func DocumentPathFromContext(ctx context.Context) string {
	if v := ctx.Value(pathKey); v != nil {
		if p, ok := v.(string); ok {
			return p
		}
	}
	return ""
}

// LoggerFromContext returns the logger stored in ctx by zerolog, enriched with
// any run and document fields found in ctx.
func LoggerFromContext(ctx context.Context) zerolog.Logger {
	logger := *zerolog.Ctx(ctx)

	fields := logger.With()
	if runID, command := RunIDFromContext(ctx); runID != "" {
		fields = fields.Str("run_id", runID).Str("command", command)
	}
	if path := DocumentPathFromContext(ctx); path != "" {
		fields = fields.Str("path", path)
	}
	return fields.Logger()
}
