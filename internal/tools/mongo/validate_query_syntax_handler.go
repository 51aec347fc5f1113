package mongo

import (
	"context"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mongodb/mcp/internal/query"
	"github.com/mongodb/mcp/internal/tools"
)

// ValidateQuerySyntaxHandler returns a handler function for the validate-query-syntax tool
func ValidateQuerySyntaxHandler(deps *tools.ToolDependencies) func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handleValidateQuerySyntax(request, deps)
	}
}

// handleValidateQuerySyntax is purely local: it never touches the database.
func handleValidateQuerySyntax(request mcp.CallToolRequest, deps *tools.ToolDependencies) (*mcp.CallToolResult, error) {
	if deps.AnalyticsService != nil {
		deps.AnalyticsService.EmitEvent(deps.AnalyticsService.NewToolsEvent("validate-query-syntax"))
	}

	var args ValidateQuerySyntaxInput
	if err := BindArguments(request, &args); err != nil {
		deps.Log.Error("failed to bind validate-query-syntax arguments", "error", err)
		return mcp.NewToolResultError(err.Error()), nil
	}

	if args.Filter == nil {
		errMessage := "filter parameter is required and must be a document"
		deps.Log.Warn(errMessage)
		return mcp.NewToolResultError(errMessage), nil
	}

	findings := query.ValidateSyntax(args.Filter)
	if len(findings) == 0 {
		return mcp.NewToolResultText(tools.SummarySyntaxValid), nil
	}

	deps.Log.Info("query syntax validation found problems", "findings", len(findings))
	return mcp.NewToolResultText(formatFindings("Syntax validation errors found:", findings)), nil
}

// formatFindings renders a validation finding list as a bulleted block.
func formatFindings(header string, findings []string) string {
	var b strings.Builder
	b.WriteString(header)
	for _, finding := range findings {
		b.WriteString("\n- ")
		b.WriteString(finding)
	}
	return b.String()
}
