package observability

import (
	"context"

	"go.uber.org/zap"
)

// RequestIDField is the log field carrying the per-request correlation ID.
const RequestIDField = "request_id"

type requestIDContextKey struct{}
type loggerContextKey struct{}

// WithRequestID attaches the correlation ID to ctx. Each inbound request
// gets its own context chain, so IDs never bleed between requests that
// happen to share a goroutine pool.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, id)
}

// RequestIDFromContext returns the correlation ID bound to ctx, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDContextKey{}).(string)
	return id
}

// WithLogger attaches a request-scoped logger to ctx. The logger already
// carries the request_id field, so every emission through Ctx is correlated
// without threading the ID through call signatures.
func WithLogger(ctx context.Context, logger *zap.Logger) context.Context {
	return context.WithValue(ctx, loggerContextKey{}, logger)
}

// Ctx returns the request-scoped logger bound to ctx. Outside a request
// lifecycle it falls back to a no-op logger so callers never nil-check.
func Ctx(ctx context.Context) *zap.Logger {
	if ctx == nil {
		return zap.NewNop()
	}
	if logger, ok := ctx.Value(loggerContextKey{}).(*zap.Logger); ok && logger != nil {
		return logger
	}
	return zap.NewNop()
}
