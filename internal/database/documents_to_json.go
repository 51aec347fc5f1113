package database

import (
	"encoding/json"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// DocumentsToJSON converts documents to a relaxed extended JSON array
// string. Relaxed extended JSON keeps plain numbers and strings readable
// for the LLM while still round-tripping BSON-only types such as ObjectId
// and dates.
func (s *MongoService) DocumentsToJSON(docs []bson.M) (string, error) {
	raw := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		b, err := bson.MarshalExtJSON(doc, false, false)
		if err != nil {
			return "", &ExecutionError{Msg: "failed to format document as JSON", Err: err}
		}
		raw = append(raw, json.RawMessage(b))
	}

	formatted, err := json.MarshalIndent(raw, "", "  ")
	if err != nil {
		return "", &ExecutionError{Msg: "failed to format documents as JSON array", Err: err}
	}
	return string(formatted), nil
}

// redactURI removes the credential portion of a MongoDB connection URI so
// it can appear in error messages and logs.
func redactURI(uri string) string {
	schemeEnd := -1
	for i := 0; i+2 < len(uri); i++ {
		if uri[i] == ':' && uri[i+1] == '/' && uri[i+2] == '/' {
			schemeEnd = i + 3
			break
		}
	}
	if schemeEnd == -1 {
		return uri
	}
	for i := schemeEnd; i < len(uri); i++ {
		if uri[i] == '@' {
			return fmt.Sprintf("%s***@%s", uri[:schemeEnd], uri[i+1:])
		}
		if uri[i] == '/' {
			break
		}
	}
	return uri
}
