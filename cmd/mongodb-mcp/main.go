package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/mongodb/mcp/internal/analytics"
	"github.com/mongodb/mcp/internal/cli"
	"github.com/mongodb/mcp/internal/config"
	"github.com/mongodb/mcp/internal/database"
	"github.com/mongodb/mcp/internal/logger"
	"github.com/mongodb/mcp/internal/server"
)

// Analytics credentials are injected at build time via -ldflags. Builds
// without them run with telemetry disabled regardless of configuration.
var (
	analyticsToken    = ""
	analyticsEndpoint = ""
)

func main() {
	// Handle help/version flags and reject unknown arguments before the
	// flag package sees them.
	cli.HandleArgs(server.Version)

	uri := flag.String("mongodb-uri", "", "MongoDB connection URI (overrides MONGODB_URI)")
	db := flag.String("mongodb-database", "", "Database name (overrides MONGODB_DATABASE)")
	transport := flag.String("transport", "", "Transport mode: stdio or http (overrides MONGODB_MCP_TRANSPORT)")
	host := flag.String("http-host", "", "HTTP listen host (overrides MONGODB_MCP_HTTP_HOST)")
	port := flag.String("http-port", "", "HTTP listen port (overrides MONGODB_MCP_HTTP_PORT)")
	flag.Parse()

	cfg, err := config.LoadConfig(&config.CLIOverrides{
		URI:           *uri,
		Database:      *db,
		TransportMode: *transport,
		Host:          *host,
		Port:          *port,
	})
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	lg := logger.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	dbService, err := database.NewMongoService(cfg.URI, cfg.Database, lg)
	if err != nil {
		log.Fatalf("Failed to create database service: %v", err)
	}

	asService, err := analytics.NewMixPanelService(analyticsToken, analyticsEndpoint, nil, lg)
	if err != nil {
		log.Fatalf("Failed to create analytics service: %v", err)
	}
	if !cfg.Telemetry {
		asService.Disable()
	}

	mcpServer := server.NewMongoDBMCPServer(server.Version, cfg, dbService, asService, lg)

	ctx := context.Background()
	defer func() {
		if err := mcpServer.Stop(ctx); err != nil {
			lg.Error("error stopping server", "error", err)
		}
		if err := dbService.Close(ctx); err != nil {
			lg.Error("error closing database service", "error", err)
		}
	}()

	// Start blocks until the server is stopped.
	if err := mcpServer.Start(ctx); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
