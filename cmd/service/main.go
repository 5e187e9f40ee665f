// Package main is the entry point for the quote request service.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/jsamuelsen/quote-request-service/internal/adapters/http"
	"github.com/jsamuelsen/quote-request-service/internal/adapters/http/handlers"
	"github.com/jsamuelsen/quote-request-service/internal/adapters/store/memory"
	"github.com/jsamuelsen/quote-request-service/internal/app"
	"github.com/jsamuelsen/quote-request-service/internal/platform/config"
	"github.com/jsamuelsen/quote-request-service/internal/platform/logging"
	"github.com/jsamuelsen/quote-request-service/internal/platform/telemetry"
	"github.com/jsamuelsen/quote-request-service/internal/ports"
)

// Build-time variables, injected via ldflags.
// Example: go build -ldflags "-X main.Version=1.0.0 -X main.Commit=$(git rev-parse HEAD) -X main.BuildTime=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
var (
	// Version is the semantic version of the service.
	Version = "dev"

	// Commit is the git commit SHA.
	Commit = "unknown"

	// BuildTime is the timestamp when the binary was built.
	BuildTime = "unknown"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()

	// 1. Determine profile from environment
	profile := os.Getenv("APP_ENVIRONMENT")
	if profile == "" {
		profile = "local"
	}

	// 2. Load and validate configuration (fail fast)
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	// 3. Initialize logging
	logger := logging.New(&logging.Config{
		Level:   cfg.Log.Level,
		Format:  cfg.Log.Format,
		Service: cfg.App.Name,
		Version: cfg.App.Version,
		File: logging.FileConfig{
			Enabled:    cfg.Log.File.Enabled,
			Path:       cfg.Log.File.Path,
			MaxSizeMB:  cfg.Log.File.MaxSizeMB,
			MaxBackups: cfg.Log.File.MaxBackups,
			MaxAgeDays: cfg.Log.File.MaxAgeDays,
			Compress:   cfg.Log.File.Compress,
		},
	})
	logging.SetDefault(logger)

	logger.Info("starting service",
		slog.String("version", Version),
		slog.String("commit", Commit),
		slog.String("environment", cfg.App.Environment),
	)

	// 4. Initialize telemetry (noop if disabled)
	telProvider, err := telemetry.New(ctx, &telemetry.Config{
		Enabled:      cfg.Telemetry.Enabled,
		Endpoint:     cfg.Telemetry.Endpoint,
		ServiceName:  cfg.Telemetry.ServiceName,
		Version:      cfg.App.Version,
		Environment:  cfg.App.Environment,
		SamplingRate: cfg.Telemetry.SamplingRate,
	})
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	defer func() {
		if shutdownErr := telProvider.Shutdown(ctx); shutdownErr != nil {
			logger.Error("telemetry shutdown error", slog.Any("error", shutdownErr))
		}
	}()

	// 5. Create the quote store and register it as a health checker
	healthRegistry := ports.NewHealthRegistry()
	quoteStore := memory.NewQuoteStore(memory.QuoteStoreConfig{})

	if err := healthRegistry.Register(quoteStore); err != nil {
		return fmt.Errorf("registering quote store health check: %w", err)
	}

	// 6. Create quote service (application layer)
	quoteService := app.NewQuoteService(app.QuoteServiceConfig{
		Store:      quoteStore,
		Logger:     logger,
		Registerer: prometheus.DefaultRegisterer,
	})

	// 7. Create handlers
	buildInfo := handlers.NewBuildInfo(Version, Commit, BuildTime)
	healthHandler := handlers.NewHealthHandler(healthRegistry, buildInfo)
	quoteHandler := handlers.NewQuoteHandler(quoteService)

	// 8. Create HTTP server
	server := http.New(&cfg.Server, logger)

	// 9. Setup router with all middleware and routes
	http.SetupRouter(server.Engine(), http.RouterConfig{
		Logger:        logger,
		ServiceName:   cfg.Telemetry.ServiceName,
		Server:        &cfg.Server,
		CORS:          &cfg.CORS,
		HealthHandler: healthHandler,
		QuoteHandler:  quoteHandler,
	})

	// 10. Serve until SIGINT or SIGTERM, then drain in-flight requests
	sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := server.Run(sigCtx); err != nil {
		return fmt.Errorf("serving: %w", err)
	}

	logger.Info("shutdown complete")

	return nil
}
