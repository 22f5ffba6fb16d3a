package logger

import (
	"context"

	"github.com/rs/xid"
)

const RunIDKey LoggerKeys = "runID"

// WithRunID returns a context carrying a suite run id. An id already present is kept.
func WithRunID(ctx context.Context) context.Context {
	if ctx.Value(RunIDKey) != nil {
		return ctx
	}
	return context.WithValue(ctx, RunIDKey, xid.New().String())
}

// GetRunID returns the run id stored in the context, or an empty string.
func GetRunID(ctx context.Context) string {
	if runID, ok := ctx.Value(RunIDKey).(string); ok {
		return runID
	}
	return ""
}
