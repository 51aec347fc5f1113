package mongo

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mongodb/mcp/internal/tools"
)

// ListCollectionsHandler returns a handler function for the list-collections tool
func ListCollectionsHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleListCollections(ctx, deps)
	}
}

func handleListCollections(ctx context.Context, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("list-collections"))
	}

	names, err := deps.DBService.ListCollectionNames(ctx)
	if err != nil {
		deps.Log.Error("failed to list collections", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(names) == 0 {
		return mcp.NewToolResultText("The database contains no collections."), nil
	}

	response, err := tools.CreateLLMResponse(tools.SummaryCollectionsListed, names, tools.NextStepsAfterListCollections...).ToJSON()
	if err != nil {
		deps.Log.Error("failed to build list-collections response", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(response), nil
}
