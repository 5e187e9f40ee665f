// Package dto provides Data Transfer Objects for HTTP request/response handling.
package dto

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// Envelope is the body of every API response, successful or not.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`

	// Data is always set on success. A list response carries a non-nil
	// slice so an empty result encodes as [].
	Data any `json:"data,omitempty"`

	// Error is a human-readable summary of the failure.
	Error string `json:"error,omitempty"`

	// Code is a machine-readable error code (e.g., "NOT_FOUND", "VALIDATION_ERROR").
	Code string `json:"code,omitempty"`

	// Details holds field-level messages for validation failures.
	Details map[string]string `json:"details,omitempty"`

	TraceID string `json:"traceId,omitempty"`
}

// Error codes for machine-readable error identification.
const (
	// ErrorCodeNotFound indicates the requested resource was not found.
	ErrorCodeNotFound = "NOT_FOUND"

	// ErrorCodeConflict indicates a state conflict such as a duplicate id.
	ErrorCodeConflict = "CONFLICT"

	// ErrorCodeValidation indicates request validation failed.
	ErrorCodeValidation = "VALIDATION_ERROR"

	// ErrorCodeMethodNotAllowed indicates the resource does not support the method.
	ErrorCodeMethodNotAllowed = "METHOD_NOT_ALLOWED"

	// ErrorCodeInternal indicates an internal server error.
	ErrorCodeInternal = "INTERNAL_ERROR"

	// ErrorCodeTimeout indicates the request timed out.
	ErrorCodeTimeout = "TIMEOUT"
)

// NewSuccess creates a successful envelope.
func NewSuccess(message string, data any) *Envelope {
	return &Envelope{Success: true, Message: message, Data: data}
}

// NewError creates an error envelope with the given code and message.
func NewError(code, message string) *Envelope {
	return &Envelope{Error: message, Code: code}
}

// NewErrorWithDetails creates an error envelope with field-level details.
func NewErrorWithDetails(code, message string, details map[string]string) *Envelope {
	return &Envelope{Error: message, Code: code, Details: details}
}

// WithTraceID adds a trace ID to the envelope.
func (e *Envelope) WithTraceID(traceID string) *Envelope {
	e.TraceID = traceID
	return e
}

// HTTPStatusFromCode maps error codes to HTTP status codes.
func HTTPStatusFromCode(code string) int {
	switch code {
	case ErrorCodeNotFound:
		return http.StatusNotFound
	case ErrorCodeConflict:
		return http.StatusConflict
	case ErrorCodeValidation:
		return http.StatusBadRequest
	case ErrorCodeMethodNotAllowed:
		return http.StatusMethodNotAllowed
	case ErrorCodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}

// traceIDKey is the gin context key a trace ID may be stored under.
const traceIDKey = "trace_id"

// GetTraceID returns the trace ID of the request: the active OpenTelemetry
// span first, then a trace ID stored on the gin context. Empty if neither.
func GetTraceID(c *gin.Context) string {
	if c.Request != nil {
		if sc := trace.SpanFromContext(c.Request.Context()).SpanContext(); sc.HasTraceID() {
			return sc.TraceID().String()
		}
	}

	if id, ok := c.Get(traceIDKey); ok {
		if s, ok := id.(string); ok {
			return s
		}
	}

	return ""
}
