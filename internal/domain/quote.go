// Package domain contains core business entities and rules.
package domain

import (
	"strings"
	"time"
)

// Quote is a customer's request for a quotation, as stored by the service.
// This is a domain entity - it has no knowledge of external systems.
type Quote struct {
	// ID is the unique identifier assigned when the quote was created.
	ID string

	// Name is the name of the person requesting the quote.
	Name string

	// Email is a contact method. Either Email or Phone is set.
	Email string

	// Phone is a contact method. Either Email or Phone is set.
	Phone string

	// Company is the requester's organization, empty when not given.
	Company string

	// Service is the service the requester is interested in.
	// Nil means no service was selected.
	Service *string

	// Message describes the job to be quoted.
	Message string

	// CreatedAt is set once when the quote is stored.
	CreatedAt time.Time
}

// QuoteRequest carries the fields needed to create a Quote.
type QuoteRequest struct {
	Name    string
	Email   string
	Phone   string
	Company string
	Service *string
	Message string
}

// Validate checks the structural invariants of a quote request.
// It does not check e-mail or phone formats.
func (r *QuoteRequest) Validate() error {
	fields := make(map[string]string)

	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "this field is required"
	}

	if strings.TrimSpace(r.Email) == "" && strings.TrimSpace(r.Phone) == "" {
		fields["email"] = "email or phone is required"
		fields["phone"] = "email or phone is required"
	}

	if strings.TrimSpace(r.Message) == "" {
		fields["message"] = "this field is required"
	}

	if len(fields) > 0 {
		return NewFieldsValidationError("quote request is incomplete", fields)
	}

	return nil
}

// NormalizeService returns nil for an absent or blank service, otherwise
// a pointer to the trimmed value.
func NormalizeService(service *string) *string {
	if service == nil {
		return nil
	}

	trimmed := strings.TrimSpace(*service)
	if trimmed == "" {
		return nil
	}

	return &trimmed
}

// ServiceOrEmpty returns the service name or an empty string when unset.
func (q *Quote) ServiceOrEmpty() string {
	if q.Service == nil {
		return ""
	}

	return *q.Service
}

// Clone returns a deep copy of the quote.
func (q *Quote) Clone() *Quote {
	c := *q
	if q.Service != nil {
		s := *q.Service
		c.Service = &s
	}

	return &c
}
