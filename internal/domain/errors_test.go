package domain

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSentinelErrors_AreDistinct(t *testing.T) {
	sentinels := []error{
		ErrNotFound,
		ErrConflict,
		ErrValidation,
		ErrMethodNotAllowed,
	}

	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j {
				assert.NotErrorIs(t, a, b,
					"sentinels should be distinct: %v vs %v", a, b)
			}
		}
	}
}

func TestNotFoundError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		id          string
		expectedMsg string
	}{
		{
			name:        "with entity and ID",
			entity:      "quote",
			id:          "123",
			expectedMsg: `quote with id "123" not found`,
		},
		{
			name:        "with entity only",
			entity:      "route",
			id:          "",
			expectedMsg: "route not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewNotFoundError(tt.entity, tt.id)

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrNotFound)

			var notFound *NotFoundError
			require.ErrorAs(t, err, &notFound)
			assert.Equal(t, tt.entity, notFound.Entity)
			assert.Equal(t, tt.id, notFound.ID)
		})
	}
}

func TestConflictError(t *testing.T) {
	tests := []struct {
		name        string
		entity      string
		reason      string
		details     string
		useDetails  bool
		expectedMsg string
	}{
		{
			name:        "basic conflict",
			entity:      "quote",
			reason:      "duplicate id",
			expectedMsg: "quote conflict: duplicate id",
		},
		{
			name:        "with details",
			entity:      "quote",
			reason:      "duplicate id",
			details:     "abc",
			useDetails:  true,
			expectedMsg: "quote conflict: duplicate id (abc)",
		},
		{
			name:        "empty details uses basic format",
			entity:      "quote",
			reason:      "duplicate id",
			useDetails:  true,
			expectedMsg: "quote conflict: duplicate id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.useDetails {
				err = NewConflictErrorWithDetails(tt.entity, tt.reason, tt.details)
			} else {
				err = NewConflictError(tt.entity, tt.reason)
			}

			assert.Equal(t, tt.expectedMsg, err.Error())
			require.ErrorIs(t, err, ErrConflict)
		})
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name            string
		err             error
		expectedMsg     string
		expectedDetails map[string]string
	}{
		{
			name:            "single field",
			err:             NewValidationError("name", "this field is required"),
			expectedMsg:     "validation failed for name: this field is required",
			expectedDetails: map[string]string{"name": "this field is required"},
		},
		{
			name:            "without field",
			err:             NewValidationError("", "request body must be a JSON object"),
			expectedMsg:     "validation failed: request body must be a JSON object",
			expectedDetails: nil,
		},
		{
			name: "several fields are listed in order",
			err: NewFieldsValidationError("quote request is incomplete", map[string]string{
				"message": "this field is required",
				"name":    "this field is required",
			}),
			expectedMsg: "validation failed: quote request is incomplete (message, name)",
			expectedDetails: map[string]string{
				"message": "this field is required",
				"name":    "this field is required",
			},
		},
		{
			name:            "fields without message",
			err:             NewFieldsValidationError("", map[string]string{"phone": "too long"}),
			expectedMsg:     "validation failed for phone",
			expectedDetails: map[string]string{"phone": "too long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expectedMsg, tt.err.Error())
			require.ErrorIs(t, tt.err, ErrValidation)

			var validation *ValidationError
			require.ErrorAs(t, tt.err, &validation)
			assert.Equal(t, tt.expectedDetails, validation.Details())
		})
	}
}

func TestValidationErrorWithValue(t *testing.T) {
	err := NewValidationErrorWithValue("name", "must be a string", 42)

	var validation *ValidationError
	require.ErrorAs(t, err, &validation)
	assert.Equal(t, 42, validation.Value)
}

func TestMethodNotAllowedError(t *testing.T) {
	err := NewMethodNotAllowedError(http.MethodDelete, "/api/quotes", http.MethodGet, http.MethodPost)

	assert.Equal(t, "method DELETE not allowed on /api/quotes", err.Error())
	require.ErrorIs(t, err, ErrMethodNotAllowed)

	var notAllowed *MethodNotAllowedError
	require.ErrorAs(t, err, &notAllowed)
	assert.Equal(t, []string{http.MethodGet, http.MethodPost}, notAllowed.Allowed)
}

func TestIsHelpers(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		isFunc   func(error) bool
		expected bool
	}{
		{"IsNotFound with NotFoundError", NewNotFoundError("quote", "1"), IsNotFound, true},
		{"IsNotFound with wrapped", fmt.Errorf("wrapped: %w", ErrNotFound), IsNotFound, true},
		{"IsNotFound with other error", ErrConflict, IsNotFound, false},
		{"IsNotFound with nil", nil, IsNotFound, false},

		{"IsConflict with ConflictError", NewConflictError("quote", "dup"), IsConflict, true},
		{"IsConflict with other error", ErrValidation, IsConflict, false},

		{"IsValidation with ValidationError", NewValidationError("name", "required"), IsValidation, true},
		{"IsValidation with wrapped", fmt.Errorf("creating quote: %w", NewValidationError("name", "x")), IsValidation, true},
		{"IsValidation with nil", nil, IsValidation, false},

		{"IsMethodNotAllowed with error", NewMethodNotAllowedError("PUT", "/q"), IsMethodNotAllowed, true},
		{"IsMethodNotAllowed with other error", ErrNotFound, IsMethodNotAllowed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.isFunc(tt.err))
		})
	}
}
