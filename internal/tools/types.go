package tools

import (
	"github.com/mongodb/mcp/internal/analytics"
	"github.com/mongodb/mcp/internal/config"
	"github.com/mongodb/mcp/internal/database"
	"github.com/mongodb/mcp/internal/logger"
)

// ToolDependencies contains all dependencies needed by tools
type ToolDependencies struct {
	Config           *config.Config
	DBService        database.Service
	AnalyticsService analytics.Service
	Log              *logger.Service
}
