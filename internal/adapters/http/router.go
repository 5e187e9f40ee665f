package http

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-request-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-request-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-request-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen/quote-request-service/internal/domain"
	"github.com/jsamuelsen/quote-request-service/internal/platform/config"
	"github.com/jsamuelsen/quote-request-service/internal/platform/telemetry"
)

// RouterConfig contains configuration for setting up the router.
type RouterConfig struct {
	// Logger is the structured logger for request logging.
	Logger *slog.Logger

	// ServiceName names the server spans.
	ServiceName string

	// Server provides the API base path and request timeout.
	Server *config.ServerConfig

	// CORS controls cross-origin access to the API. Nil disables it.
	CORS *config.CORSConfig

	// HealthHandler handles the /-/ endpoints. Optional.
	HealthHandler *handlers.HealthHandler

	// QuoteHandler handles the quote endpoints.
	QuoteHandler *handlers.QuoteHandler
}

// SetupRouter configures all routes and middleware on the Gin engine.
// Middleware is applied in the following order (first to last):
//  1. Recovery - catch panics first
//  2. Context logger - request-scoped logger
//  3. Request ID - generate/extract request ID
//  4. Correlation ID - propagate correlation across requests
//  5. OpenTelemetry - tracing, metrics and X-Trace-ID
//  6. Logging - request logging (skips health endpoints)
//  7. CORS - browser origins, when enabled
//  8. Timeout - request deadline on the API group only
//
// Route groups:
//   - /-/ (internal): health, build info and metrics, no timeout
//   - {base_path}/quotes (public API): quote requests
//
// Unknown routes get a 404 envelope and known routes called with the wrong
// method get a 405 envelope.
func SetupRouter(engine *gin.Engine, cfg RouterConfig) {
	engine.HandleMethodNotAllowed = true

	engine.Use(
		middleware.Recovery(cfg.Logger),
		middleware.ContextLogger(cfg.Logger),
		middleware.RequestID(),
		middleware.CorrelationID(),
		telemetry.TracingMiddleware(cfg.ServiceName),
		telemetry.Middleware(),
		middleware.Logging(cfg.Logger),
	)

	if cfg.CORS != nil && cfg.CORS.Enabled {
		engine.Use(middleware.CORS(cfg.CORS))
	}

	engine.NoRoute(func(c *gin.Context) {
		dto.HandleError(c, domain.NewNotFoundError("route", c.Request.URL.Path))
	})

	engine.NoMethod(handlers.MethodNotAllowed(engine))

	if cfg.HealthHandler != nil {
		cfg.HealthHandler.RegisterHealthRoutes(engine)
	}

	api := engine.Group(cfg.Server.BasePath)
	if cfg.Server.RequestTimeout > 0 {
		api.Use(middleware.Timeout(cfg.Server.RequestTimeout))
	}

	cfg.QuoteHandler.RegisterQuoteRoutes(api)
}
