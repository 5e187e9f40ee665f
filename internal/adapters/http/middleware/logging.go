package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-request-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-request-service/internal/platform/logging"
)

// healthPrefix marks operational endpoints that are never logged.
const healthPrefix = "/-/"

// ContextLogger returns middleware that stores logger in the request
// context. Apply it before RequestID and CorrelationID so they enrich
// this logger rather than the process default.
func ContextLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request = c.Request.WithContext(logging.WithContext(c.Request.Context(), logger))
		c.Next()
	}
}

// Logging returns middleware that logs each HTTP request on completion with
// method, path, status, latency and size, plus the request and correlation
// IDs carried by the context logger. The trace ID of the active span is
// added to the context logger before the handler runs. The level follows the status: 5xx at
// ERROR, 4xx at WARN, everything else at INFO.
//
// Paths under /-/ and any listed in skipPaths are not logged.
func Logging(logger *slog.Logger, skipPaths ...string) gin.HandlerFunc {
	skip := make(map[string]struct{}, len(skipPaths))
	for _, path := range skipPaths {
		skip[path] = struct{}{}
	}

	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if _, ok := skip[path]; ok || strings.HasPrefix(path, healthPrefix) {
			c.Next()
			return
		}

		if traceID := dto.GetTraceID(c); traceID != "" {
			c.Request = c.Request.WithContext(logging.WithTraceID(c.Request.Context(), traceID))
		}

		start := time.Now()

		c.Next()

		ctx := c.Request.Context()
		latency := time.Since(start)
		status := c.Writer.Status()

		level := slog.LevelInfo
		if status >= http.StatusInternalServerError {
			level = slog.LevelError
		} else if status >= http.StatusBadRequest {
			level = slog.LevelWarn
		}

		attrs := []slog.Attr{
			slog.String("method", c.Request.Method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("latency", latency),
			slog.Int("bytes", c.Writer.Size()),
			slog.String("client_ip", c.ClientIP()),
		}

		if route := c.FullPath(); route != "" {
			attrs = append(attrs, slog.String("route", route))
		}

		if errs := c.Errors.ByType(gin.ErrorTypeAny); len(errs) > 0 {
			attrs = append(attrs, slog.String("errors", errs.String()))
		}

		logging.FromContextOr(ctx, logger).LogAttrs(ctx, level, "request completed", attrs...)
	}
}
