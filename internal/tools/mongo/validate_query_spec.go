package mongo

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type ValidateQueryInput struct {
	Collection string   `json:"collection" jsonschema:"description=The name of the collection whose schema the filter is validated against"`
	Filter     Document `json:"filter" jsonschema:"description=The MongoDB query filter document to validate"`
	SampleSize int64    `json:"sampleSize,omitempty" jsonschema:"description=Number of documents to sample when inferring the collection schema"`
}

func ValidateQuerySpec() mcp.Tool {
	return mcp.NewTool("validate-query",
		mcp.WithDescription(`
		Validate a MongoDB query filter against the inferred schema of a collection.
		Checks that every referenced field (including dotted paths) exists and that queried values are compatible with the observed field types.
		Returns a confirmation or a list of the problems found.`),
		mcp.WithInputSchema[ValidateQueryInput](),
		mcp.WithTitleAnnotation("Validate Query Against Schema"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
