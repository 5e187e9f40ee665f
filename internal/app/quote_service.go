package app

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/jsamuelsen/quote-request-service/internal/domain"
	"github.com/jsamuelsen/quote-request-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-request-service/internal/ports"
)

// tracerName is the instrumentation scope for spans started by this package.
const tracerName = "github.com/jsamuelsen/quote-request-service/internal/app"

// QuoteService orchestrates the quote-request use cases.
// It depends on port interfaces, not concrete implementations.
type QuoteService struct {
	store   ports.QuoteStore
	logger  *slog.Logger
	tracer  trace.Tracer
	metrics *quoteMetrics
}

// QuoteServiceConfig contains the dependencies of the quote service.
type QuoteServiceConfig struct {
	// Store persists quotes. Required.
	Store ports.QuoteStore

	// Logger defaults to slog.Default() when nil.
	Logger *slog.Logger

	// Registerer receives the service's Prometheus collectors.
	// Defaults to prometheus.DefaultRegisterer when nil.
	Registerer prometheus.Registerer
}

// NewQuoteService creates a new quote service. It panics if no store is
// provided, since the service cannot do anything without one.
func NewQuoteService(cfg QuoteServiceConfig) *QuoteService {
	if cfg.Store == nil {
		panic("app: QuoteServiceConfig.Store is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	reg := cfg.Registerer
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}

	return &QuoteService{
		store:   cfg.Store,
		logger:  logger.With(slog.String("component", "app.QuoteService")),
		tracer:  otel.Tracer(tracerName),
		metrics: newQuoteMetrics(reg),
	}
}

// CreateQuote validates and stores a quote request.
func (s *QuoteService) CreateQuote(ctx context.Context, req domain.QuoteRequest) (*domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.CreateQuote")
	defer span.End()

	logger := logging.FromContextOr(ctx, s.logger)

	if err := req.Validate(); err != nil {
		span.SetStatus(codes.Error, "invalid quote request")
		logger.DebugContext(ctx, "rejected quote request", slog.Any("error", err))

		return nil, fmt.Errorf("creating quote: %w", err)
	}

	quote, err := s.store.CreateQuote(ctx, req)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failed")
		logger.ErrorContext(ctx, "failed to store quote request", slog.Any("error", err))

		return nil, fmt.Errorf("creating quote: %w", err)
	}

	hasService := quote.Service != nil
	s.metrics.created.WithLabelValues(strconv.FormatBool(hasService)).Inc()
	s.metrics.stored.Inc()

	span.SetAttributes(
		attribute.String("quote.id", quote.ID),
		attribute.Bool("quote.has_service", hasService),
	)

	logger.InfoContext(ctx, "quote request created",
		slog.String(logging.KeyQuoteID, quote.ID),
		slog.String("service", quote.ServiceOrEmpty()),
	)

	return quote, nil
}

// ListQuotes returns all stored quotes, most recent first.
func (s *QuoteService) ListQuotes(ctx context.Context) ([]*domain.Quote, error) {
	ctx, span := s.tracer.Start(ctx, "QuoteService.ListQuotes")
	defer span.End()

	logger := logging.FromContextOr(ctx, s.logger)

	quotes, err := s.store.ListQuotes(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "store failed")
		logger.ErrorContext(ctx, "failed to list quote requests", slog.Any("error", err))

		return nil, fmt.Errorf("listing quotes: %w", err)
	}

	span.SetAttributes(attribute.Int("quote.count", len(quotes)))
	logger.DebugContext(ctx, "listed quote requests", slog.Int("count", len(quotes)))

	return quotes, nil
}
