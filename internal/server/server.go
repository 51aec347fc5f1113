package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mongodb/mcp/internal/analytics"
	"github.com/mongodb/mcp/internal/config"
	"github.com/mongodb/mcp/internal/database"
	"github.com/mongodb/mcp/internal/logger"
)

const httpReadHeaderTimeout = 10 * time.Second

// Version is the server version string, overridable at build time.
var Version = "dev"

// MongoDBMCPServer represents the MCP server instance
type MongoDBMCPServer struct {
	MCPServer  *server.MCPServer
	httpServer *http.Server
	config     *config.Config
	dbService  database.Service
	asService  analytics.Service
	log        *logger.Service
	version    string
}

// NewMongoDBMCPServer creates a new MCP server instance.
// The config parameter is expected to be already validated.
func NewMongoDBMCPServer(version string, cfg *config.Config, dbService database.Service, asService analytics.Service, log *logger.Service) *MongoDBMCPServer {
	s := &MongoDBMCPServer{
		config:    cfg,
		dbService: dbService,
		asService: asService,
		log:       log,
		version:   version,
	}

	hooks := &server.Hooks{}
	hooks.AddAfterSetLevel(s.onAfterSetLevelHook)

	s.MCPServer = server.NewMCPServer(
		"mongodb-mcp",
		version,
		server.WithToolCapabilities(true),
		server.WithLogging(),
		server.WithHooks(hooks),
		server.WithInstructions("This MCP server provides tool calling to interact with a MongoDB database: "+
			"infer the schema of collections with get-schema, check filters with validate-query-syntax and validate-query, "+
			"and run find queries with execute-query."),
	)

	return s
}

// Start initializes and starts the MCP server using the configured transport.
// It blocks until the server is stopped.
func (s *MongoDBMCPServer) Start(ctx context.Context) error {
	s.log.Info("starting MongoDB MCP server", "version", s.version, "transport", s.config.TransportMode)

	if err := s.RegisterTools(); err != nil {
		return fmt.Errorf("failed to register tools: %w", err)
	}

	if s.asService != nil {
		s.asService.EmitEvent(s.asService.NewStartupEvent())
		s.asService.EmitEvent(s.asService.NewOSInfoEvent(s.config.URI))
	}

	switch s.config.TransportMode {
	case config.TransportModeHTTP:
		return s.startHTTP(ctx)
	case config.TransportModeStdio:
		s.log.Info("listening for MCP input on stdio")
		return server.ServeStdio(s.MCPServer)
	default:
		return fmt.Errorf("unsupported transport mode: %s", s.config.TransportMode)
	}
}

// startHTTP initializes and starts the streamable HTTP server
func (s *MongoDBMCPServer) startHTTP(_ context.Context) error {
	addr := fmt.Sprintf("%s:%s", s.config.HTTPHost, s.config.HTTPPort)

	streamable := server.NewStreamableHTTPServer(
		s.MCPServer,
		server.WithEndpointPath(s.config.HTTPPath),
		server.WithStateLess(true),
	)

	allowedOrigins := parseAllowedOrigins(s.config.HTTPAllowedOrigins)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           chainMiddleware(s.config.HTTPPath, allowedOrigins, s.log, streamable),
		ReadHeaderTimeout: httpReadHeaderTimeout,
	}

	s.log.Info("started MongoDB MCP HTTP server", "addr", addr, "path", s.config.HTTPPath, "allowed_origins", len(allowedOrigins))

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Stop gracefully stops the server. Database service cleanup is handled by
// the caller.
func (s *MongoDBMCPServer) Stop(ctx context.Context) error {
	s.log.Info("stopping MongoDB MCP server")
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}

func parseAllowedOrigins(raw string) []string {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
