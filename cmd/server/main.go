package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/digiti/google-ads-mcp/internal/config"
	"github.com/digiti/google-ads-mcp/internal/server"

	// Import tool packages to trigger init() registration
	_ "github.com/digiti/google-ads-mcp/internal/tools/accounts"
	_ "github.com/digiti/google-ads-mcp/internal/tools/adgroups"
	_ "github.com/digiti/google-ads-mcp/internal/tools/ads"
	_ "github.com/digiti/google-ads-mcp/internal/tools/audiences"
	_ "github.com/digiti/google-ads-mcp/internal/tools/campaigns"
	_ "github.com/digiti/google-ads-mcp/internal/tools/changes"
	_ "github.com/digiti/google-ads-mcp/internal/tools/conversions"
	_ "github.com/digiti/google-ads-mcp/internal/tools/keywords"
	_ "github.com/digiti/google-ads-mcp/internal/tools/planner"
	_ "github.com/digiti/google-ads-mcp/internal/tools/recommendations"
	_ "github.com/digiti/google-ads-mcp/internal/tools/reporting"
)

// parseLogLevel converts a string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func main() {
	// Load configuration first to determine log level
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Logs go to stderr; stdout is reserved for the MCP protocol in STDIO mode.
	level := parseLogLevel(cfg.LogLevel)
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	logger.Info("Starting Google Ads MCP Server", "mode", cfg.Mode)

	srv, err := server.New(cfg, logger)
	if err != nil {
		logger.Error("Failed to create server", "error", err)
		os.Exit(1)
	}

	defer func() {
		if err := srv.Close(); err != nil {
			logger.Error("Error during server cleanup", "error", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-sigCh
		logger.Info("Received shutdown signal")
		cancel()
	}()

	if err := srv.Serve(ctx); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	logger.Info("Server stopped")
}
