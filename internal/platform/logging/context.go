package logging

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// Attribute keys shared by request-scoped loggers and log call sites.
const (
	KeyRequestID     = "request_id"
	KeyCorrelationID = "correlation_id"
	KeyTraceID       = "trace_id"
	KeyQuoteID       = "quote_id"
)

type loggerKey struct{}

var processLogger atomic.Pointer[slog.Logger]

func init() {
	processLogger.Store(slog.Default())
}

// Default returns the process logger used when a context carries none.
func Default() *slog.Logger {
	return processLogger.Load()
}

// SetDefault replaces the process logger and slog's default with logger.
func SetDefault(logger *slog.Logger) {
	processLogger.Store(logger)
	slog.SetDefault(logger)
}

// FromContext returns the request logger stored in ctx, or Default.
func FromContext(ctx context.Context) *slog.Logger {
	return FromContextOr(ctx, Default())
}

// FromContextOr returns the request logger stored in ctx, or fallback.
// Services pass their own logger so tests without a request logger still
// capture output.
func FromContextOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if ctx == nil {
		return fallback
	}

	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok {
		return logger
	}

	return fallback
}

// WithContext stores logger in ctx.
func WithContext(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// With returns a context whose logger carries attrs on every record.
func With(ctx context.Context, attrs ...slog.Attr) context.Context {
	if len(attrs) == 0 {
		return ctx
	}

	args := make([]any, len(attrs))
	for i, a := range attrs {
		args[i] = a
	}

	return WithContext(ctx, FromContext(ctx).With(args...))
}

// WithRequestID tags the context logger with the request ID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return With(ctx, slog.String(KeyRequestID, requestID))
}

// WithCorrelationID tags the context logger with the caller's correlation ID.
func WithCorrelationID(ctx context.Context, correlationID string) context.Context {
	return With(ctx, slog.String(KeyCorrelationID, correlationID))
}

// WithTraceID tags the context logger with the trace ID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return With(ctx, slog.String(KeyTraceID, traceID))
}

// WithQuoteID tags the context logger with a stored quote's ID.
func WithQuoteID(ctx context.Context, quoteID string) context.Context {
	return With(ctx, slog.String(KeyQuoteID, quoteID))
}
