package schema

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// BSON type names used in inferred schemas, matching the aliases accepted
// by the $type query operator.
const (
	TypeString     = "string"
	TypeBool       = "bool"
	TypeInt        = "int"
	TypeLong       = "long"
	TypeDouble     = "double"
	TypeDecimal    = "decimal"
	TypeArray      = "array"
	TypeObject     = "object"
	TypeObjectID   = "objectId"
	TypeDate       = "date"
	TypeTimestamp  = "timestamp"
	TypeNull       = "null"
	TypeMinKey     = "minKey"
	TypeMaxKey     = "maxKey"
	TypeBinData    = "binData"
	TypeJavaScript = "javascript"
	TypeRegex      = "regex"
	TypeDBRef      = "dbRef"
	TypeSymbol     = "symbol"
	TypeUndefined  = "undefined"

	// TypeEmptyArray marks an array field for which no element type has
	// been observed yet. It is dropped as soon as a sampled sibling array
	// contributes element types.
	TypeEmptyArray = "empty_array"
)

// TypeName maps a decoded BSON value (or a plain JSON-decoded value, as
// seen in tool arguments) to its BSON type name.
func TypeName(value any) string {
	switch v := value.(type) {
	case nil, primitive.Null:
		return TypeNull
	case string:
		return TypeString
	case bool:
		return TypeBool
	case int32, int:
		return TypeInt
	case int64:
		return TypeLong
	case float32, float64:
		return TypeDouble
	case primitive.Decimal128:
		return TypeDecimal
	case primitive.A, []any:
		return TypeArray
	case bson.M, bson.D, map[string]any:
		return TypeObject
	case primitive.ObjectID:
		return TypeObjectID
	case primitive.DateTime, time.Time:
		return TypeDate
	case primitive.Timestamp:
		return TypeTimestamp
	case primitive.MinKey:
		return TypeMinKey
	case primitive.MaxKey:
		return TypeMaxKey
	case primitive.Binary, []byte:
		return TypeBinData
	case primitive.JavaScript, primitive.CodeWithScope:
		return TypeJavaScript
	case primitive.Regex:
		return TypeRegex
	case primitive.DBPointer:
		return TypeDBRef
	case primitive.Symbol:
		return TypeSymbol
	case primitive.Undefined:
		return TypeUndefined
	default:
		return fmt.Sprintf("%T", v)
	}
}

// asDocument returns the key/value pairs of a document-typed value.
// bson.D preserves the stored field order; maps iterate in Go map order,
// which is fine because inference merges commutatively.
func asDocument(value any) ([]docEntry, bool) {
	switch v := value.(type) {
	case bson.M:
		entries := make([]docEntry, 0, len(v))
		for key, val := range v {
			entries = append(entries, docEntry{key, val})
		}
		return entries, true
	case map[string]any:
		entries := make([]docEntry, 0, len(v))
		for key, val := range v {
			entries = append(entries, docEntry{key, val})
		}
		return entries, true
	case bson.D:
		entries := make([]docEntry, 0, len(v))
		for _, elem := range v {
			entries = append(entries, docEntry{elem.Key, elem.Value})
		}
		return entries, true
	default:
		return nil, false
	}
}

type docEntry struct {
	key   string
	value any
}

// asArray returns the elements of an array-typed value.
func asArray(value any) ([]any, bool) {
	switch v := value.(type) {
	case primitive.A:
		return v, true
	case []any:
		return v, true
	default:
		return nil, false
	}
}
