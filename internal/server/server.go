package server

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/server"

	"github.com/digiti/google-ads-mcp/internal/ads"
	"github.com/digiti/google-ads-mcp/internal/config"
	"github.com/digiti/google-ads-mcp/internal/tools"
)

const (
	serverName    = "Google Ads MCP Server"
	serverVersion = "1.0.0"
)

// Server runs the MCP server in the configured transport mode.
type Server struct {
	stdioServer *STDIOServer
	httpServer  *HTTPServer
	config      *config.Config
	logger      *slog.Logger
}

// New creates a server for the configured mode.
func New(cfg *config.Config, logger *slog.Logger) (*Server, error) {
	s := &Server{
		config: cfg,
		logger: logger,
	}

	switch cfg.Mode {
	case "stdio":
		stdioSrv, err := NewSTDIOServer(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create STDIO server: %w", err)
		}
		s.stdioServer = stdioSrv
	case "http":
		httpSrv, err := NewHTTPServer(cfg, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create HTTP server: %w", err)
		}
		s.httpServer = httpSrv
	default:
		return nil, fmt.Errorf("unknown server mode: %s", cfg.Mode)
	}

	logger.Info("Google Ads MCP server initialized", "mode", cfg.Mode)
	return s, nil
}

// Serve starts the server and blocks until it stops.
func (s *Server) Serve(ctx context.Context) error {
	s.logger.Info("Starting server", "mode", s.config.Mode)
	if s.stdioServer != nil {
		return s.stdioServer.Serve(ctx)
	}
	return s.httpServer.Serve(ctx)
}

// Close gracefully shuts down the server and releases resources.
func (s *Server) Close() error {
	if s.stdioServer != nil {
		return s.stdioServer.Close()
	}
	return s.httpServer.Close()
}

// newMCPServer creates the MCP server with all registered tools added.
func newMCPServer(logger *slog.Logger) (*server.MCPServer, error) {
	mcpServer := server.NewMCPServer(
		serverName,
		serverVersion,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
	)
	if err := tools.AddToolsToServer(mcpServer); err != nil {
		return nil, fmt.Errorf("failed to register tools: %w", err)
	}
	logger.Info("Registered tools", "count", len(tools.ToolNames()))
	return mcpServer, nil
}

// newResolver builds the credential resolver shared by all requests.
func newResolver(cfg *config.Config) *ads.Resolver {
	return ads.NewResolver(cfg.AdsCredentials, cfg.CredentialsFile)
}
