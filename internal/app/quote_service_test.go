package app

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/quote-request-service/internal/domain"
	"github.com/jsamuelsen/quote-request-service/internal/mocks"
)

// discardLogger returns a logger that discards all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestService(t *testing.T, store *mocks.MockQuoteStore) (*QuoteService, *prometheus.Registry) {
	t.Helper()

	reg := prometheus.NewRegistry()

	return NewQuoteService(QuoteServiceConfig{
		Store:      store,
		Logger:     discardLogger(),
		Registerer: reg,
	}), reg
}

func strPtr(s string) *string { return &s }

func TestNewQuoteService_PanicsWithoutStore(t *testing.T) {
	assert.Panics(t, func() {
		NewQuoteService(QuoteServiceConfig{Logger: slog.Default()})
	})
}

func TestNewQuoteService_SharesRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	cfg := QuoteServiceConfig{Store: mocks.NewMockQuoteStore(t), Registerer: reg}

	first := NewQuoteService(cfg)

	assert.NotPanics(t, func() {
		second := NewQuoteService(cfg)
		assert.Same(t, first.metrics.stored, second.metrics.stored)
	})
}

func TestQuoteService_CreateQuote(t *testing.T) {
	createdAt := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)

	tests := []struct {
		name        string
		req         domain.QuoteRequest
		setupMock   func(*mocks.MockQuoteStore)
		wantErr     func(error) bool
		wantService string
	}{
		{
			name: "stores a request with a service",
			req: domain.QuoteRequest{
				Name: "Ada", Email: "ada@example.com", Message: "Need a sign", Service: strPtr("LED Signage"),
			},
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().CreateQuote(mock.Anything, mock.AnythingOfType("domain.QuoteRequest")).
					RunAndReturn(func(_ context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
						return &domain.Quote{
							ID: "q-1", Name: req.Name, Email: req.Email, Message: req.Message,
							Service: req.Service, CreatedAt: createdAt,
						}, nil
					})
			},
			wantService: "true",
		},
		{
			name: "stores a request without a service",
			req:  domain.QuoteRequest{Name: "Grace", Phone: "555-0100", Message: "Call me"},
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().CreateQuote(mock.Anything, mock.Anything).
					Return(&domain.Quote{ID: "q-2", Name: "Grace", Phone: "555-0100", Message: "Call me"}, nil)
			},
			wantService: "false",
		},
		{
			name:    "rejects an incomplete request without touching the store",
			req:     domain.QuoteRequest{Email: "ada@example.com"},
			wantErr: domain.IsValidation,
		},
		{
			name: "wraps store failures",
			req:  domain.QuoteRequest{Name: "Ada", Email: "ada@example.com", Message: "hi"},
			setupMock: func(m *mocks.MockQuoteStore) {
				m.EXPECT().CreateQuote(mock.Anything, mock.Anything).Return(nil, errors.New("store closed"))
			},
			wantErr: func(err error) bool { return err != nil && !domain.IsValidation(err) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := mocks.NewMockQuoteStore(t)
			if tt.setupMock != nil {
				tt.setupMock(store)
			}

			svc, _ := newTestService(t, store)

			quote, err := svc.CreateQuote(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, tt.wantErr(err), "unexpected error: %v", err)
				assert.Nil(t, quote)
				assert.Zero(t, testutil.ToFloat64(svc.metrics.stored))

				return
			}

			require.NoError(t, err)
			require.NotNil(t, quote)
			assert.Equal(t, tt.req.Name, quote.Name)
			assert.InDelta(t, 1, testutil.ToFloat64(svc.metrics.created.WithLabelValues(tt.wantService)), 0)
			assert.InDelta(t, 1, testutil.ToFloat64(svc.metrics.stored), 0)
		})
	}
}

func TestQuoteService_CreateQuote_ValidationDetails(t *testing.T) {
	svc, _ := newTestService(t, mocks.NewMockQuoteStore(t))

	_, err := svc.CreateQuote(context.Background(), domain.QuoteRequest{Name: "  "})

	var validationErr *domain.ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Contains(t, validationErr.Details(), "name")
	assert.Contains(t, validationErr.Details(), "email")
	assert.Contains(t, validationErr.Details(), "message")
}

func TestQuoteService_ListQuotes(t *testing.T) {
	t.Run("returns the store's quotes", func(t *testing.T) {
		store := mocks.NewMockQuoteStore(t)
		quotes := []*domain.Quote{{ID: "q-2"}, {ID: "q-1"}}
		store.EXPECT().ListQuotes(mock.Anything).Return(quotes, nil)

		svc, _ := newTestService(t, store)

		got, err := svc.ListQuotes(context.Background())

		require.NoError(t, err)
		assert.Equal(t, quotes, got)
	})

	t.Run("wraps store failures", func(t *testing.T) {
		store := mocks.NewMockQuoteStore(t)
		storeErr := errors.New("store closed")
		store.EXPECT().ListQuotes(mock.Anything).Return(nil, storeErr)

		svc, _ := newTestService(t, store)

		got, err := svc.ListQuotes(context.Background())

		require.ErrorIs(t, err, storeErr)
		assert.Nil(t, got)
	})
}

func TestQuoteService_MetricsExposedOnRegistry(t *testing.T) {
	store := mocks.NewMockQuoteStore(t)
	store.EXPECT().CreateQuote(mock.Anything, mock.Anything).Return(&domain.Quote{ID: "q-1"}, nil)

	svc, reg := newTestService(t, store)

	_, err := svc.CreateQuote(context.Background(), domain.QuoteRequest{Name: "Ada", Phone: "1", Message: "m"})
	require.NoError(t, err)

	count, err := testutil.GatherAndCount(reg, "quote_requests_created_total", "quote_requests_stored")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
