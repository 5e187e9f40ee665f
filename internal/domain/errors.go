// Package domain contains business logic types and errors.
// Domain errors represent business-level failures, NOT HTTP errors.
// They are infrastructure-agnostic and can be mapped to HTTP/gRPC/etc by adapters.
package domain

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrNotFound indicates the requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict indicates a state conflict such as a duplicate identifier.
	ErrConflict = errors.New("conflict")

	// ErrValidation indicates the input does not have the required shape.
	ErrValidation = errors.New("validation failed")

	// ErrMethodNotAllowed indicates an unsupported operation on a known resource.
	ErrMethodNotAllowed = errors.New("method not allowed")
)

// NotFoundError provides context for not found errors.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("%s with id %q not found", e.Entity, e.ID)
	}

	return e.Entity + " not found"
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// NewNotFoundError creates a not found error with context.
func NewNotFoundError(entity, id string) error {
	return &NotFoundError{Entity: entity, ID: id}
}

// ConflictError provides context for conflict errors.
type ConflictError struct {
	Entity  string
	Reason  string
	Details string
}

// Error implements the error interface.
func (e *ConflictError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s conflict: %s (%s)", e.Entity, e.Reason, e.Details)
	}

	return fmt.Sprintf("%s conflict: %s", e.Entity, e.Reason)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ConflictError) Unwrap() error {
	return ErrConflict
}

// NewConflictError creates a conflict error with context.
func NewConflictError(entity, reason string) error {
	return &ConflictError{Entity: entity, Reason: reason}
}

// NewConflictErrorWithDetails creates a conflict error with additional details.
func NewConflictErrorWithDetails(entity, reason, details string) error {
	return &ConflictError{Entity: entity, Reason: reason, Details: details}
}

// ValidationError provides context for validation errors.
// Field/Message describe a single violation; Fields holds one message per
// offending field when several are reported at once.
type ValidationError struct {
	Field   string
	Message string
	Value   any
	Fields  map[string]string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	if len(e.Fields) > 0 {
		names := make([]string, 0, len(e.Fields))
		for name := range e.Fields {
			names = append(names, name)
		}

		slices.Sort(names)

		if e.Message == "" {
			return "validation failed for " + strings.Join(names, ", ")
		}

		return fmt.Sprintf("validation failed: %s (%s)", e.Message, strings.Join(names, ", "))
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Details returns the field-level messages of the error.
func (e *ValidationError) Details() map[string]string {
	if len(e.Fields) > 0 {
		return e.Fields
	}

	if e.Field != "" {
		return map[string]string{e.Field: e.Message}
	}

	return nil
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// NewFieldsValidationError creates a validation error covering several fields.
func NewFieldsValidationError(message string, fields map[string]string) error {
	return &ValidationError{Message: message, Fields: fields}
}

// MethodNotAllowedError reports an unsupported method on a known resource.
type MethodNotAllowedError struct {
	Method   string
	Resource string
	Allowed  []string
}

// Error implements the error interface.
func (e *MethodNotAllowedError) Error() string {
	return fmt.Sprintf("method %s not allowed on %s", e.Method, e.Resource)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *MethodNotAllowedError) Unwrap() error {
	return ErrMethodNotAllowed
}

// NewMethodNotAllowedError creates a method-not-allowed error.
func NewMethodNotAllowedError(method, resource string, allowed ...string) error {
	return &MethodNotAllowedError{Method: method, Resource: resource, Allowed: allowed}
}

// IsNotFound checks if an error is a not found error.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsConflict checks if an error is a conflict error.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConflict)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}

// IsMethodNotAllowed checks if an error is a method-not-allowed error.
func IsMethodNotAllowed(err error) bool {
	return errors.Is(err, ErrMethodNotAllowed)
}
