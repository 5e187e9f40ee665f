package middleware

import (
	"context"
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-request-service/internal/adapters/http/dto"
)

// Timeout returns middleware that sets a deadline on the request context.
// Handlers run on the request goroutine and must respect ctx.Done(); a
// handler that fails with the deadline error gets the 504 envelope from
// dto.HandleError. If the deadline passed and the handler wrote nothing, the
// same 504 envelope is written on its behalf.
func Timeout(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if !errors.Is(ctx.Err(), context.DeadlineExceeded) || c.Writer.Written() {
			return
		}

		dto.AbortWithError(c, ctx.Err())
	}
}
