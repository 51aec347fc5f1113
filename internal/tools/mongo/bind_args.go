package mongo

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// BindArguments unmarshals the tool call arguments into target, decoding
// numbers as json.Number so that whole numbers survive as int64 instead of
// being flattened to float64. Document-typed fields finish the conversion
// in their own UnmarshalJSON.
func BindArguments(request mcp.CallToolRequest, target any) error {
	jsonBytes, err := json.Marshal(request.Params.Arguments)
	if err != nil {
		return fmt.Errorf("failed to marshal tool arguments to JSON: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(jsonBytes))
	decoder.UseNumber()
	if err := decoder.Decode(target); err != nil {
		return fmt.Errorf("failed to unmarshal tool arguments: %w", err)
	}

	return nil
}
