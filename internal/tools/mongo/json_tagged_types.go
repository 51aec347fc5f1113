package mongo

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Document is a filter/projection document with custom JSON unmarshaling
// that preserves numeric types correctly for MongoDB.
//
// When unmarshaling from JSON:
//   - Whole numbers (e.g., 1, 42, -10) become int64
//   - Numbers with fractional parts (e.g., 1.5, 3.14) become float64
//   - Numbers with decimal notation but no fraction (e.g., 10.0) become float64
//   - Other types (strings, booleans, null) are preserved as-is
type Document map[string]any

func (d *Document) UnmarshalJSON(data []byte) error {
	decoder := json.NewDecoder(bytes.NewReader(data))

	decoder.UseNumber()

	var temp map[string]any
	if err := decoder.Decode(&temp); err != nil {
		return err
	}
	converted, ok := ConvertNumbers(temp).(map[string]any)
	if !ok {
		return fmt.Errorf("error during unmarshaling of Document")
	}
	*d = converted
	return nil
}

// ConvertNumbers recursively replaces json.Number values with int64 where
// possible, falling back to float64.
func ConvertNumbers(input any) any {
	switch v := input.(type) {
	case json.Number:
		// Try to parse as Int64 first
		if i, err := v.Int64(); err == nil {
			return i
		}
		// If it fails (because of decimal point), parse as Float64
		if f, err := v.Float64(); err == nil {
			return f
		}
		return v.String() // Fallback

	case map[string]any:
		for k, val := range v {
			v[k] = ConvertNumbers(val)
		}
		return v

	case []any:
		for i, val := range v {
			v[i] = ConvertNumbers(val)
		}
		return v
	}
	return input
}
