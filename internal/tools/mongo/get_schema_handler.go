package mongo

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mongodb/mcp/internal/config"
	"github.com/mongodb/mcp/internal/schema"
	"github.com/mongodb/mcp/internal/tools"
)

// GetSchemaHandler returns a handler function for the get-schema tool
func GetSchemaHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleGetSchema(ctx, request, deps)
	}
}

// handleGetSchema samples documents per collection and infers a merged
// field-type schema.
func handleGetSchema(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("get-schema"))
	}

	var args GetSchemaInput
	if err := BindArguments(request, &args); err != nil {
		deps.Log.Error("failed to bind get-schema arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	sampleSize := args.SampleSize
	if sampleSize <= 0 {
		sampleSize = config.DefaultSchemaSampleSize
		if deps.Config != nil {
			sampleSize = deps.Config.SchemaSampleSize
		}
	}

	names, err := deps.DBService.ListCollectionNames(ctx)
	if err != nil {
		deps.Log.Error("failed to list collections", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	var targets []string
	if args.Collection != "" {
		if !slices.Contains(names, args.Collection) {
			errMessage := fmt.Sprintf("collection %q not found in the database", args.Collection)
			deps.Log.Warn(errMessage)
			return mcp.NewToolResultError(errMessage), nil
		}
		targets = []string{args.Collection}
	} else {
		if len(names) == 0 {
			return mcp.NewToolResultText("The get-schema tool executed successfully; however, the database contains no collections, so no schema information was returned."), nil
		}
		targets = names
	}

	deps.Log.Info("inferring schema", "collections", len(targets), "sample_size", sampleSize)

	databaseSchema := make(map[string]schema.CollectionSchema)
	for _, name := range targets {
		docs, err := deps.DBService.SampleDocuments(ctx, name, sampleSize)
		if err != nil {
			deps.Log.Error("failed to sample collection", "collection", name, "error", err)
			return mcp.NewToolResultError(err.Error()), nil
		}
		if len(docs) == 0 {
			deps.Log.Debug("collection is empty, skipping", "collection", name)
			continue
		}
		databaseSchema[name] = schema.InferCollection(docs)
	}

	data, err := json.Marshal(databaseSchema)
	if err != nil {
		deps.Log.Error("failed to format schema as JSON", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	response, err := tools.CreateLLMResponse(tools.SummarySchemaInferred, json.RawMessage(data), tools.NextStepsAfterSchema...).ToJSON()
	if err != nil {
		deps.Log.Error("failed to build schema response", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(response), nil
}
