package server

import (
	"context"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/config"
)

// STDIOServer handles STDIO mode. Credentials come from the environment or
// the credentials file; there is no per-request authentication.
type STDIOServer struct {
	mcpServer *server.MCPServer
	config    *config.Config
	resolver  *ads.Resolver
	logger    *slog.Logger
}

// NewSTDIOServer creates a new STDIO mode server
func NewSTDIOServer(cfg *config.Config, logger *slog.Logger) (*STDIOServer, error) {
	mcpServer, err := newMCPServer(logger)
	if err != nil {
		return nil, err
	}

	s := &STDIOServer{
		mcpServer: mcpServer,
		config:    cfg,
		resolver:  newResolver(cfg),
		logger:    logger,
	}

	logger.Info("STDIO server initialized")
	return s, nil
}

// Serve starts the STDIO server
func (s *STDIOServer) Serve(ctx context.Context) error {
	s.logger.Info("Serving via STDIO")

	// Inject the resolver into every request context so tool handlers can
	// reach the Ads API client.
	contextFunc := func(reqCtx context.Context) context.Context {
		return ads.WithResolver(reqCtx, s.resolver)
	}

	return server.ServeStdio(s.mcpServer, server.WithStdioContextFunc(contextFunc))
}

// Close gracefully shuts down the STDIO server and releases resources
func (s *STDIOServer) Close() error {
	s.logger.Info("Shutting down STDIO server")
	if s.resolver != nil {
		if err := s.resolver.Close(); err != nil {
			s.logger.Warn("Failed to close Ads client", "error", err)
		}
	}
	return nil
}
