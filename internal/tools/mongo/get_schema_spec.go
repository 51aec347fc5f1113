package mongo

import (
	"github.com/mark3labs/mcp-go/mcp"
)

type GetSchemaInput struct {
	Collection string `json:"collection,omitempty" jsonschema:"description=Optional name of a specific collection to infer the schema for. If omitted the schemas of all collections are returned"`
	SampleSize int64  `json:"sampleSize,omitempty" jsonschema:"description=Number of documents to sample per collection for schema inference. A larger number gives a more accurate schema but takes longer"`
}

func GetSchemaSpec() mcp.Tool {
	return mcp.NewTool("get-schema",
		mcp.WithDescription(`
		Infer the schema of collections in the MongoDB database by sampling documents.
		Each field reports the BSON types observed for it; embedded documents and array elements are described recursively.
		Empty collections are skipped and contribute no schema information.`),
		mcp.WithInputSchema[GetSchemaInput](),
		mcp.WithTitleAnnotation("Get MongoDB Schema"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
