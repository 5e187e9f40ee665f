package middleware

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-request-service/internal/platform/config"
)

// CORS returns middleware that lets the configured browser origins call the
// API. Preflight requests are answered here and never reach the handlers.
func CORS(cfg *config.CORSConfig) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:  cfg.AllowOrigins,
		AllowMethods:  cfg.AllowMethods,
		AllowHeaders:  cfg.AllowHeaders,
		ExposeHeaders: []string{HeaderRequestID, HeaderCorrelationID, "X-Trace-ID"},
		MaxAge:        cfg.MaxAge,
	})
}
