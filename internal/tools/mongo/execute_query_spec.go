package mongo

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// SortItem is a single sort criterion: a field name and a direction,
// 1 for ascending or -1 for descending.
type SortItem struct {
	Field     string `json:"field" jsonschema:"description=Field name to sort by"`
	Direction int    `json:"direction" jsonschema:"description=Sort direction: 1 for ascending or -1 for descending"`
}

type ExecuteQueryInput struct {
	Collection string     `json:"collection" jsonschema:"description=The name of the collection to query"`
	Filter     Document   `json:"filter" jsonschema:"default={},description=The filter document for the find query"`
	Projection Document   `json:"projection,omitempty" jsonschema:"description=Optional projection document selecting the fields to include or exclude (e.g. {\"_id\": 0, \"name\": 1})"`
	Limit      int64      `json:"limit,omitempty" jsonschema:"description=Maximum number of documents to return (0 for no limit)"`
	Skip       int64      `json:"skip,omitempty" jsonschema:"description=Number of documents to skip before returning results"`
	Sort       []SortItem `json:"sort,omitempty" jsonschema:"description=Optional list of sort criteria applied in order"`
}

func ExecuteQuerySpec() mcp.Tool {
	return mcp.NewTool("execute-query",
		mcp.WithDescription(`
		Execute a MongoDB find query against a collection, ideally after validating the filter with validate-query-syntax or validate-query.
		Supports an optional projection, limit, skip, and sort. Returns the matching documents as a JSON array.`),
		mcp.WithInputSchema[ExecuteQueryInput](),
		mcp.WithTitleAnnotation("Execute Find Query"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
