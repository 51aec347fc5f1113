package query

import (
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ValidateSyntax checks the basic structure of a query filter document
// without consulting a schema: known operators only, and the expected
// argument shape for each operator. It returns a list of human-readable
// findings with dotted paths; an empty list means the syntax is valid.
//
// Field names are not resolved and value types are not checked against
// any schema; use ValidateAgainstSchema for that.
func ValidateSyntax(filter map[string]any) []string {
	var errs []string
	validateSyntaxPart(filter, &errs, "")
	return errs
}

func validateSyntaxPart(part any, errs *[]string, path string) {
	doc, ok := asFilterDocument(part)
	if !ok {
		*errs = append(*errs, fmt.Sprintf("Invalid structure at '%s': expected a document, but found %s.", path, describeValue(part)))
		return
	}

	for key, value := range doc {
		currentPath := joinPath(path, key)

		if strings.HasPrefix(key, "$") {
			validateOperatorSyntax(key, value, errs, currentPath)
			continue
		}

		// Key is a field name.
		if key == "" {
			*errs = append(*errs, fmt.Sprintf("Empty field name found at '%s'.", path))
			continue
		}
		if fieldDoc, ok := asFilterDocument(value); ok {
			hasOperators, hasFields := false, false
			for subKey := range fieldDoc {
				if strings.HasPrefix(subKey, "$") {
					hasOperators = true
				} else {
					hasFields = true
				}
			}
			switch {
			case hasOperators && hasFields:
				*errs = append(*errs, fmt.Sprintf("Invalid query structure at '%s': cannot mix operators and field names at the same level within a field's value.", currentPath))
			case hasOperators || hasFields:
				validateSyntaxPart(value, errs, currentPath)
			}
			// An empty document value ({field: {}}) is syntactically fine.
		}
		// Arrays, primitives and regexes are valid as implicit equality matches.
	}
}

// validateOperatorSyntax checks the structural type of an operator's value.
// Comparison operators accept any value, so only operators with a fixed
// argument shape are checked here.
func validateOperatorSyntax(op string, value any, errs *[]string, path string) {
	if !IsKnownOperator(op) {
		*errs = append(*errs, fmt.Sprintf("Unknown operator '%s' used at '%s'.", op, path))
		return
	}

	switch op {
	case "$and", "$or", "$nor":
		elements, ok := asFilterArray(value)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("Invalid value type for operator '%s' at '%s': expected an array of query documents.", op, path))
			return
		}
		if len(elements) == 0 {
			*errs = append(*errs, fmt.Sprintf("Operator '%s' at '%s' has an empty array.", op, path))
			return
		}
		for i, subDoc := range elements {
			validateSyntaxPart(subDoc, errs, fmt.Sprintf("%s[%d]", path, i))
		}

	case "$not":
		if isRegexValue(value) {
			return
		}
		if _, ok := asFilterDocument(value); !ok {
			*errs = append(*errs, fmt.Sprintf("Invalid value type for operator '%s' at '%s': expected an operator expression document or a regex pattern.", op, path))
			return
		}
		validateSyntaxPart(value, errs, path)

	case "$in", "$nin", "$all":
		if _, ok := asFilterArray(value); !ok {
			*errs = append(*errs, fmt.Sprintf("Invalid value type for operator '%s' at '%s': expected an array.", op, path))
		}

	case "$elemMatch":
		if _, ok := asFilterDocument(value); !ok {
			*errs = append(*errs, fmt.Sprintf("Invalid value type for operator '%s' at '%s': expected a query document.", op, path))
			return
		}
		validateSyntaxPart(value, errs, path)

	case "$exists":
		if _, ok := value.(bool); !ok {
			*errs = append(*errs, fmt.Sprintf("Invalid value type for operator '%s' at '%s': expected a boolean (true/false).", op, path))
		}

	case "$type":
		if !isTypeSpec(value) {
			*errs = append(*errs, fmt.Sprintf("Invalid value type for operator '%s' at '%s': expected a BSON type string, number, or an array of strings/numbers.", op, path))
		}

	case "$size":
		if !isInteger(value) {
			*errs = append(*errs, fmt.Sprintf("Invalid value type for operator '%s' at '%s': expected an integer.", op, path))
		}

	case "$regex":
		if _, ok := value.(string); !ok && !isRegexValue(value) {
			*errs = append(*errs, fmt.Sprintf("Invalid value type for operator '%s' at '%s': expected a string or regex pattern.", op, path))
		}

	case "$mod":
		elements, ok := asFilterArray(value)
		if !ok || len(elements) != 2 || !isNumber(elements[0]) || !isNumber(elements[1]) {
			*errs = append(*errs, fmt.Sprintf("Invalid value type for operator '%s' at '%s': expected an array of two numbers [divisor, remainder].", op, path))
		}
	}
	// Remaining operators ($gt, $lt, geo operators, $text, $where, ...)
	// accept values whose shape cannot be checked without a schema.
}

// asFilterDocument normalizes the document representations seen in tool
// arguments and decoded BSON.
func asFilterDocument(value any) (map[string]any, bool) {
	switch v := value.(type) {
	case map[string]any:
		return v, true
	default:
		return nil, false
	}
}

func asFilterArray(value any) ([]any, bool) {
	switch v := value.(type) {
	case []any:
		return v, true
	case primitive.A:
		return v, true
	default:
		return nil, false
	}
}

func isRegexValue(value any) bool {
	_, ok := value.(primitive.Regex)
	return ok
}

func isInteger(value any) bool {
	switch value.(type) {
	case int, int32, int64:
		return true
	default:
		return false
	}
}

func isNumber(value any) bool {
	switch value.(type) {
	case int, int32, int64, float32, float64:
		return true
	default:
		return false
	}
}

// isTypeSpec reports whether value is a valid $type argument: a BSON type
// alias, a BSON type number, or an array of those.
func isTypeSpec(value any) bool {
	if _, ok := value.(string); ok {
		return true
	}
	if isInteger(value) {
		return true
	}
	if elements, ok := asFilterArray(value); ok {
		for _, element := range elements {
			if _, isStr := element.(string); !isStr && !isInteger(element) {
				return false
			}
		}
		return true
	}
	return false
}

func joinPath(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func describeValue(value any) string {
	if value == nil {
		return "null"
	}
	return fmt.Sprintf("%T", value)
}
