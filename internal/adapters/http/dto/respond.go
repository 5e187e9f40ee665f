package dto

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-request-service/internal/domain"
	"github.com/jsamuelsen/quote-request-service/internal/platform/logging"
)

// Generic messages used where the underlying error must not leak.
const (
	MessageInternalError    = "Internal Server Error"
	MessageMethodNotAllowed = "Method Not Allowed"
	MessageTimeout          = "request timeout exceeded"
)

// MapDomainError maps a domain error to an HTTP status code and error envelope.
// Unknown errors are mapped to 500 Internal Server Error with a generic message.
func MapDomainError(err error) (int, *Envelope) {
	switch {
	case domain.IsValidation(err):
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			return http.StatusBadRequest, NewErrorWithDetails(
				ErrorCodeValidation,
				validationErr.Error(),
				validationErr.Details(),
			)
		}

		return http.StatusBadRequest, NewError(ErrorCodeValidation, err.Error())

	case domain.IsMethodNotAllowed(err):
		return http.StatusMethodNotAllowed, NewError(ErrorCodeMethodNotAllowed, MessageMethodNotAllowed)

	case domain.IsNotFound(err):
		return http.StatusNotFound, NewError(ErrorCodeNotFound, err.Error())

	case domain.IsConflict(err):
		return http.StatusConflict, NewError(ErrorCodeConflict, err.Error())

	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, NewError(ErrorCodeTimeout, MessageTimeout)

	default:
		return http.StatusInternalServerError, NewError(ErrorCodeInternal, MessageInternalError)
	}
}

// HandleError writes the error envelope for err, with the trace ID when one
// is available. Internal errors are logged with full details and timeouts
// at warn.
func HandleError(c *gin.Context, err error) {
	status, envelope := respond(c, err)
	c.JSON(status, envelope)
}

// AbortWithError aborts the handler chain and writes the error envelope for err.
func AbortWithError(c *gin.Context, err error) {
	status, envelope := respond(c, err)
	c.AbortWithStatusJSON(status, envelope)
}

func respond(c *gin.Context, err error) (int, *Envelope) {
	status, envelope := MapDomainError(err)
	envelope.WithTraceID(GetTraceID(c))

	var methodErr *domain.MethodNotAllowedError
	if errors.As(err, &methodErr) && len(methodErr.Allowed) > 0 {
		c.Header("Allow", strings.Join(methodErr.Allowed, ", "))
	}

	ctx := c.Request.Context()
	attrs := []slog.Attr{
		slog.Any("error", err),
		slog.String(logging.KeyTraceID, envelope.TraceID),
		slog.String("path", c.Request.URL.Path),
	}

	switch status {
	case http.StatusGatewayTimeout:
		logging.FromContext(ctx).LogAttrs(ctx, slog.LevelWarn, "request timeout", attrs...)
	case http.StatusInternalServerError:
		logging.FromContext(ctx).LogAttrs(ctx, slog.LevelError, "internal error", attrs...)
	}

	return status, envelope
}
