package server

import (
	"github.com/mark3labs/mcp-go/server"

	"github.com/mongodb/mcp/internal/tools"
	"github.com/mongodb/mcp/internal/tools/mongo"
)

// RegisterTools registers all MCP tools and adds them to the provided MCP server.
// Every tool exposed by this server is read-only; write access to the database
// is intentionally not offered over MCP.
func (s *MongoDBMCPServer) RegisterTools() error {
	deps := &tools.ToolDependencies{
		Config:           s.config,
		DBService:        s.dbService,
		AnalyticsService: s.asService,
		Log:              s.log,
	}

	s.MCPServer.AddTools(getAllTools(deps)...)
	return nil
}

// getAllTools returns all available tools with their specs and handlers
func getAllTools(deps *tools.ToolDependencies) []server.ServerTool {
	return []server.ServerTool{
		{
			Tool:    mongo.GetSchemaSpec(),
			Handler: mongo.GetSchemaHandler(deps),
		},
		{
			Tool:    mongo.ListCollectionsSpec(),
			Handler: mongo.ListCollectionsHandler(deps),
		},
		{
			Tool:    mongo.ValidateQuerySyntaxSpec(),
			Handler: mongo.ValidateQuerySyntaxHandler(deps),
		},
		{
			Tool:    mongo.ValidateQuerySpec(),
			Handler: mongo.ValidateQueryHandler(deps),
		},
		{
			Tool:    mongo.ExecuteQuerySpec(),
			Handler: mongo.ExecuteQueryHandler(deps),
		},
	}
}
