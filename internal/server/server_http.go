package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/server"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/auth"
	"github.com/digiti/google-ads-mcp/internal/config"
)

// HTTPServer handles streamable HTTP mode. Each request may carry its own
// OAuth bearer token; requests without one fall back to the server
// credentials.
type HTTPServer struct {
	mcpServer  *server.MCPServer
	httpServer *server.StreamableHTTPServer
	config     *config.Config
	resolver   *ads.Resolver
	logger     *slog.Logger
}

// NewHTTPServer creates a new streamable HTTP mode server
func NewHTTPServer(cfg *config.Config, logger *slog.Logger) (*HTTPServer, error) {
	mcpServer, err := newMCPServer(logger)
	if err != nil {
		return nil, err
	}

	s := &HTTPServer{
		mcpServer: mcpServer,
		config:    cfg,
		resolver:  newResolver(cfg),
		logger:    logger,
	}
	s.httpServer = server.NewStreamableHTTPServer(
		mcpServer,
		server.WithHTTPContextFunc(s.requestContext),
	)

	logger.Info("HTTP server initialized", "port", cfg.HTTPPort)
	return s, nil
}

// requestContext injects per-request state: the credential resolver, a
// request ID for log correlation, and the caller's bearer token if present.
func (s *HTTPServer) requestContext(ctx context.Context, r *http.Request) context.Context {
	ctx = ads.WithResolver(ctx, s.resolver)

	requestID := uuid.New().String()
	ctx = auth.WithRequestID(ctx, requestID)

	if token, ok := auth.BearerToken(r.Header.Get("Authorization")); ok {
		ctx = auth.WithAccessToken(ctx, token)
		s.logger.Debug("Request authenticated via bearer token", "request_id", requestID)
	}
	return ctx
}

// Serve starts the HTTP server and blocks until it stops or the context is
// cancelled.
func (s *HTTPServer) Serve(ctx context.Context) error {
	addr := fmt.Sprintf(":%d", s.config.HTTPPort)
	s.logger.Info("Serving via HTTP", "addr", addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Start(addr)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx := context.Background()
		if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("HTTP server shutdown error", "error", err)
		}
		return nil
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}
}

// Close gracefully shuts down the HTTP server and releases resources
func (s *HTTPServer) Close() error {
	s.logger.Info("Shutting down HTTP server")
	if s.resolver != nil {
		if err := s.resolver.Close(); err != nil {
			s.logger.Warn("Failed to close Ads client", "error", err)
		}
	}
	return nil
}
