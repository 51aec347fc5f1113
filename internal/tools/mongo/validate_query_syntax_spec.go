package mongo

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type ValidateQuerySyntaxInput struct {
	Filter Document `json:"filter" jsonschema:"description=The MongoDB query filter document to validate"`
}

func ValidateQuerySyntaxSpec() mcp.Tool {
	return mcp.NewTool("validate-query-syntax",
		mcp.WithDescription(`
		Validate the basic syntax of a MongoDB query filter document before execution.
		Checks for known query operators and the expected argument shape of each operator.
		Returns "Syntax is valid." or a list of the problems found. Field names and value types are not checked; use validate-query for that.`),
		mcp.WithInputSchema[ValidateQuerySyntaxInput](),
		mcp.WithTitleAnnotation("Validate Query Syntax"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(false),
	)
}
