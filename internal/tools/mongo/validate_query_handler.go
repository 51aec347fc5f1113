package mongo

import (
	"context"
	"fmt"
	"slices"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mongodb/mcp/internal/config"
	"github.com/mongodb/mcp/internal/query"
	"github.com/mongodb/mcp/internal/schema"
	"github.com/mongodb/mcp/internal/tools"
)

// ValidateQueryHandler returns a handler function for the validate-query tool
func ValidateQueryHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleValidateQuery(ctx, request, deps)
	}
}

// handleValidateQuery infers the collection schema from sampled documents
// and validates the filter against it. Syntax problems are reported
// together with the schema findings so the agent can fix everything in one
// round trip.
func handleValidateQuery(ctx context.Context, request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.DBService == nil {
		errMessage := "database service is not initialized"
		deps.Log.Error(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("validate-query"))
	}

	var args ValidateQueryInput
	if err := BindArguments(request, &args); err != nil {
		deps.Log.Error("failed to bind validate-query arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Collection == "" {
		errMessage := "collection parameter is required and cannot be empty"
		deps.Log.Warn(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}
	if args.Filter == nil {
		errMessage := "filter parameter is required and must be a document"
		deps.Log.Warn(errMessage)
		return mcp.NewToolResultError(errMessage), nil
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
	if !slices.Contains(names, args.Collection) {
		errMessage := fmt.Sprintf("collection %q not found in the database", args.Collection)
		deps.Log.Warn(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	docs, err := deps.DBService.SampleDocuments(ctx, args.Collection, sampleSize)
	if err != nil {
		deps.Log.Error("failed to sample collection", "collection", args.Collection, "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}
	if len(docs) == 0 {
		errMessage := fmt.Sprintf("collection %q is empty, no schema available to validate against", args.Collection)
		deps.Log.Warn(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	collectionSchema := schema.InferCollection(docs)

	findings := query.ValidateSyntax(args.Filter)
	findings = append(findings, query.ValidateAgainstSchema(args.Filter, collectionSchema)...)

	if len(findings) == 0 {
		return mcp.NewToolResultText(tools.SummaryQueryValid), nil
	}

	deps.Log.Info("query validation found problems", "collection", args.Collection, "findings", len(findings))
	return mcp.NewToolResultText(formatFindings("Query validation errors found:", findings)), nil
}
