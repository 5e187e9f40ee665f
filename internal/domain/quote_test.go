package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestQuoteRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		req           QuoteRequest
		invalidFields []string
	}{
		{
			name: "email only",
			req:  QuoteRequest{Name: "Ada", Email: "ada@example.com", Message: "LED sign"},
		},
		{
			name: "phone only",
			req:  QuoteRequest{Name: "Ada", Phone: "555-0100", Message: "LED sign"},
		},
		{
			name:          "missing name",
			req:           QuoteRequest{Email: "ada@example.com", Message: "LED sign"},
			invalidFields: []string{"name"},
		},
		{
			name:          "blank name",
			req:           QuoteRequest{Name: "   ", Email: "ada@example.com", Message: "LED sign"},
			invalidFields: []string{"name"},
		},
		{
			name:          "no contact method",
			req:           QuoteRequest{Name: "Ada", Message: "LED sign"},
			invalidFields: []string{"email", "phone"},
		},
		{
			name:          "empty request",
			req:           QuoteRequest{},
			invalidFields: []string{"email", "message", "name", "phone"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if len(tt.invalidFields) == 0 {
				require.NoError(t, err)
				return
			}

			require.Error(t, err)
			assert.True(t, IsValidation(err))

			var validation *ValidationError
			require.ErrorAs(t, err, &validation)

			fields := make([]string, 0, len(validation.Fields))
			for f := range validation.Fields {
				fields = append(fields, f)
			}

			assert.ElementsMatch(t, tt.invalidFields, fields)
		})
	}
}

func TestNormalizeService(t *testing.T) {
	tests := []struct {
		name     string
		input    *string
		expected *string
	}{
		{"nil stays nil", nil, nil},
		{"empty becomes nil", strPtr(""), nil},
		{"blank becomes nil", strPtr("  \t"), nil},
		{"value is trimmed", strPtr("  LED Signage "), strPtr("LED Signage")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeService(tt.input))
		})
	}
}

func TestQuote_ServiceOrEmpty(t *testing.T) {
	assert.Empty(t, (&Quote{}).ServiceOrEmpty())
	assert.Equal(t, "Laser Cutting", (&Quote{Service: strPtr("Laser Cutting")}).ServiceOrEmpty())
}

func TestQuote_Clone(t *testing.T) {
	original := &Quote{
		ID:        "q-1",
		Name:      "Ada",
		Service:   strPtr("Fabrication"),
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	clone := original.Clone()
	require.Equal(t, original, clone)

	*clone.Service = "changed"
	clone.Name = "changed"

	assert.Equal(t, "Fabrication", *original.Service)
	assert.Equal(t, "Ada", original.Name)
}
