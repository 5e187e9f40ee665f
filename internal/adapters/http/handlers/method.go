package handlers

import (
	"slices"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-request-service/internal/adapters/http/dto"
	"github.com/jsamuelsen/quote-request-service/internal/domain"
)

// MethodNotAllowed returns the engine's NoMethod handler. The Allow header
// lists exactly the methods registered on the request path, so it stays in
// step with whatever routes the engine serves.
func MethodNotAllowed(engine *gin.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		dto.HandleError(c, domain.NewMethodNotAllowedError(c.Request.Method, path, allowedMethods(engine.Routes(), path)...))
	}
}

func allowedMethods(routes gin.RoutesInfo, path string) []string {
	var allowed []string
	for _, r := range routes {
		if r.Path == path && !slices.Contains(allowed, r.Method) {
			allowed = append(allowed, r.Method)
		}
	}
	slices.Sort(allowed)

	return allowed
}
