package mongo

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mongodb/mcp/internal/database"
	"github.com/mongodb/mcp/internal/tools"
)

// ExecuteQueryHandler returns a handler function for the execute-query tool
func ExecuteQueryHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleExecuteQuery(ctx, request, deps)
	}
}

func handleExecuteQuery(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("execute-query"))
	}

	var args ExecuteQueryInput
	if err := BindArguments(request, &args); err != nil {
		deps.Log.Error("failed to bind execute-query arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Collection == "" {
		errMessage := "collection parameter is required and cannot be empty"
		deps.Log.Warn(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if args.Limit < 0 {
		return mcp.NewToolResultError("limit cannot be negative"), nil
	}
	if args.Skip < 0 {
		return mcp.NewToolResultError("skip cannot be negative"), nil
	}

	findQuery := database.FindQuery{
		Filter:     args.Filter,
		Projection: args.Projection,
		Skip:       args.Skip,
		Limit:      args.Limit,
	}
	for _, item := range args.Sort {
		if item.Direction != 1 && item.Direction != -1 {
			errMessage := fmt.Sprintf("invalid sort direction %d for field %q, must be 1 (ascending) or -1 (descending)", item.Direction, item.Field)
			deps.Log.Warn(errMessage)
			return mcp.NewToolResultError(errMessage), nil
		}
		findQuery.Sort = append(findQuery.Sort, database.SortField{Field: item.Field, Direction: item.Direction})
	}

	deps.Log.Info("executing find query", "collection", args.Collection, "skip", args.Skip, "limit", args.Limit)

	docs, err := deps.DBService.Find(ctx, args.Collection, findQuery)
	if err != nil {
		deps.Log.Error("failed to execute find query", "collection", args.Collection, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	rawJSON, err := deps.DBService.DocumentsToJSON(docs)
	if err != nil {
		deps.Log.Error("failed to format query results", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	summary := fmt.Sprintf("%s Found %d document(s).", tools.SummaryQueryExecuted, len(docs))
	response, err := tools.CreateLLMResponse(summary, tools.NewQueryResult(rawJSON), tools.NextStepsAfterQuery...).ToJSON()
	if err != nil {
		deps.Log.Error("failed to build execute-query response", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(response), nil
}
