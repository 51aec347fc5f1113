package mongo

import (
	"github.com/mark3labs/mcp-go/mcp"
)

func ListCollectionsSpec() mcp.Tool {
	return mcp.NewTool("list-collections",
		mcp.WithDescription("List the names of the collections in the MongoDB database."),
		mcp.WithTitleAnnotation("List MongoDB Collections"),
		mcp.WithReadOnlyHintAnnotation(true),
		mcp.WithIdempotentHintAnnotation(true),
		mcp.WithDestructiveHintAnnotation(false),
		mcp.WithOpenWorldHintAnnotation(true),
	)
}
