// Package memory provides process-local implementations of the storage ports.
// Nothing stored here survives a restart.
package memory

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jsamuelsen/quote-request-service/internal/domain"
	"github.com/jsamuelsen/quote-request-service/internal/ports"
)

// healthCheckName identifies the store in readiness responses.
const healthCheckName = "quote-store"

// Compile-time interface checks.
var (
	_ ports.QuoteStore    = (*QuoteStore)(nil)
	_ ports.HealthChecker = (*QuoteStore)(nil)
)

// QuoteStoreConfig holds the injectable collaborators of a QuoteStore.
// Zero values fall back to random UUIDs and the wall clock.
type QuoteStoreConfig struct {
	IDGenerator ports.IDGenerator
	Clock       ports.Clock
}

// entry pairs a stored quote with its insertion sequence for tie-breaking.
type entry struct {
	quote *domain.Quote
	seq   uint64
}

// QuoteStore keeps quotes in a map guarded by a RWMutex.
type QuoteStore struct {
	mu      sync.RWMutex
	quotes  map[string]entry
	nextSeq uint64

	newID ports.IDGenerator
	now   ports.Clock
}

// NewQuoteStore creates an empty store.
func NewQuoteStore(cfg QuoteStoreConfig) *QuoteStore {
	newID := cfg.IDGenerator
	if newID == nil {
		newID = uuid.NewString
	}

	now := cfg.Clock
	if now == nil {
		now = time.Now
	}

	return &QuoteStore{
		quotes: make(map[string]entry),
		newID:  newID,
		now:    now,
	}
}

// CreateQuote stores a new quote and returns a copy of the stored record.
func (s *QuoteStore) CreateQuote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	id := s.newID()

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.quotes[id]; exists {
		return nil, domain.NewConflictErrorWithDetails("quote", "generated id already in use", id)
	}

	quote := &domain.Quote{
		ID:        id,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Company:   req.Company,
		Service:   domain.NormalizeService(req.Service),
		Message:   req.Message,
		CreatedAt: s.now(),
	}

	s.nextSeq++
	s.quotes[id] = entry{quote: quote, seq: s.nextSeq}

	return quote.Clone(), nil
}

// ListQuotes returns copies of all quotes, newest first. Quotes created at
// the same instant are ordered by reverse insertion.
func (s *QuoteStore) ListQuotes(ctx context.Context) ([]*domain.Quote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	entries := make([]entry, 0, len(s.quotes))
	for _, e := range s.quotes {
		entries = append(entries, e)
	}
	s.mu.RUnlock()

	slices.SortFunc(entries, func(a, b entry) int {
		if c := b.quote.CreatedAt.Compare(a.quote.CreatedAt); c != 0 {
			return c
		}

		return cmp.Compare(b.seq, a.seq)
	})

	quotes := make([]*domain.Quote, len(entries))
	for i, e := range entries {
		quotes[i] = e.quote.Clone()
	}

	return quotes, nil
}

// Count returns the number of stored quotes.
func (s *QuoteStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.quotes)
}

// Name implements ports.HealthChecker.
func (s *QuoteStore) Name() string {
	return healthCheckName
}

// Check implements ports.HealthChecker. An in-process map is healthy for as
// long as the process is serving.
func (s *QuoteStore) Check(ctx context.Context) error {
	return ctx.Err()
}
