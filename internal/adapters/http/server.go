// Package http provides the HTTP adapter layer using Gin.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/quote-request-service/internal/platform/config"
)

// Server serves the quote API until its context is canceled, then drains
// in-flight requests within the configured shutdown timeout.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	config     *config.ServerConfig
	logger     *slog.Logger

	ready chan struct{}
	addr  string
}

// New creates a server for cfg. Request bodies larger than
// cfg.MaxRequestSize are rejected while reading.
func New(cfg *config.ServerConfig, logger *slog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()
	engine.Use(maxBodySize(cfg.MaxRequestSize))

	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
			Handler:      engine,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		config: cfg,
		logger: logger.With(slog.String("component", "http.Server")),
		ready:  make(chan struct{}),
	}
}

// Engine returns the Gin engine for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Config returns the server configuration.
func (s *Server) Config() *config.ServerConfig {
	return s.config
}

// Ready is closed once Run has bound its listener.
func (s *Server) Ready() <-chan struct{} {
	return s.ready
}

// Addr returns the bound address once Ready is closed, and the configured
// address before that. With port 0 only the bound address is dialable.
func (s *Server) Addr() string {
	select {
	case <-s.ready:
		return s.addr
	default:
		return s.httpServer.Addr
	}
}

// Run binds the listener and serves until ctx is canceled or serving fails.
// Cancellation triggers a graceful shutdown bounded by ShutdownTimeout; a
// clean drain returns nil. Run may be called once.
func (s *Server) Run(ctx context.Context) error {
	var lc net.ListenConfig

	ln, err := lc.Listen(ctx, "tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.httpServer.Addr, err)
	}

	s.addr = ln.Addr().String()
	close(s.ready)

	s.logger.Info("serving quote API",
		slog.String("addr", s.addr),
		slog.String("base_path", s.config.BasePath),
		slog.Duration("request_timeout", s.config.RequestTimeout),
		slog.Int64("max_request_size", s.config.MaxRequestSize),
	)

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.Serve(ln)
	}()

	select {
	case err := <-serveErr:
		return fmt.Errorf("http server error: %w", err)
	case <-ctx.Done():
	}

	return s.drain(context.WithoutCancel(ctx), serveErr)
}

func (s *Server) drain(ctx context.Context, serveErr <-chan error) error {
	ctx, cancel := context.WithTimeout(ctx, s.config.ShutdownTimeout)
	defer cancel()

	s.logger.Info("draining in-flight requests", slog.Duration("timeout", s.config.ShutdownTimeout))

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}

	if err := <-serveErr; !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("http server error: %w", err)
	}

	s.logger.Info("HTTP server stopped")

	return nil
}

// maxBodySize limits the request body size. Reading past the limit fails
// with *http.MaxBytesError, which the quote handler reports as a validation
// error on the body.
func maxBodySize(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}
