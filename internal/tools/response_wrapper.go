package tools

import (
	"encoding/json"
	"fmt"
)

// LLMResponseWrapper provides a standardized response format for all MCP tools
// This ensures consistent structure across all tools with Summary, Data, and Next_steps fields
type LLMResponseWrapper[T any] struct {
	Summary   string   `json:"summary"`
	Data      T        `json:"data"`
	NextSteps []string `json:"next_steps,omitempty"`
}

// CreateLLMResponse creates a standardized LLM response with the given data
func CreateLLMResponse[T any](summary string, data T, nextSteps ...string) LLMResponseWrapper[T] {
	return LLMResponseWrapper[T]{
		Summary:   summary,
		Data:      data,
		NextSteps: nextSteps,
	}
}

// ToJSON converts the LLMResponseWrapper to pretty JSON for LLM consumption
func (r LLMResponseWrapper[T]) ToJSON() (string, error) {
	bytes, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal LLM response to JSON: %w", err)
	}
	return string(bytes), nil
}

// QueryResult wraps the raw JSON string produced by dbService.DocumentsToJSON
type QueryResult struct {
	RawJSON string `json:"raw_json"`
}

// NewQueryResult creates a new QueryResult from a JSON string
func NewQueryResult(jsonStr string) QueryResult {
	return QueryResult{RawJSON: jsonStr}
}

// Common response summaries that can be reused across tools
const (
	SummarySchemaInferred     = "The schema has been inferred from sampled documents of the MongoDB database."
	SummaryCollectionsListed  = "The collection names have been retrieved from the MongoDB database."
	SummaryQueryExecuted      = "The find query has been successfully executed and the matching documents are available."
	SummarySyntaxValid        = "Syntax is valid."
	SummaryQueryValid         = "The query is consistent with the inferred collection schema."
	SummaryValidationFindings = "Validation found problems with the query."
)

// Common next steps that can be reused across tools
var (
	NextStepsAfterSchema = []string{
		"Examine the schema to understand the available collections, fields, and their BSON types",
		"Use validate-query-syntax or validate-query to check a filter before running it",
		"Use execute-query to run a find query against a collection",
	}

	NextStepsAfterListCollections = []string{
		"Use get-schema to inspect the fields of a collection you are interested in",
		"Use execute-query to run a find query against one of the collections",
	}

	NextStepsAfterQuery = []string{
		"Analyze the returned documents to understand the results",
		"Refine the filter, projection, or sort if needed to get more specific results",
		"Use get-schema if unexpected fields or types appear in the results",
	}

	NextStepsAfterValidationFailure = []string{
		"Fix each reported problem in the filter document",
		"Re-run the validation until no findings remain",
		"Use get-schema to check the available fields and their types",
	}
)
