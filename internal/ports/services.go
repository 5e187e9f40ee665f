// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrValidation, ErrConflict, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"
	"time"

	"github.com/jsamuelsen/quote-request-service/internal/domain"
)

// QuoteStore persists quote requests submitted through the website.
//
// Example usage in application layer:
//
//	type QuoteService struct {
//	    store ports.QuoteStore
//	}
type QuoteStore interface {
	// CreateQuote assigns a fresh ID and creation time, stores the quote and
	// returns the stored record. Service is normalized to nil when absent.
	// Returns domain.ErrConflict if the generated ID is already taken.
	CreateQuote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error)

	// ListQuotes returns every stored quote, most recent first.
	// Returns an empty slice when nothing has been stored.
	ListQuotes(ctx context.Context) ([]*domain.Quote, error)
}

// IDGenerator returns a new opaque identifier on every call.
type IDGenerator func() string

// Clock returns the current time.
type Clock func() time.Time
