package query

import (
	"fmt"
	"strings"

	"github.com/mongodb/mcp/internal/schema"
)

// numericTypes are treated as interchangeable when matching query values
// against schema types, mirroring MongoDB's numeric comparison semantics.
var numericTypes = map[string]struct{}{
	schema.TypeInt:     {},
	schema.TypeLong:    {},
	schema.TypeDouble:  {},
	schema.TypeDecimal: {},
}

// ValidateAgainstSchema validates a query filter against an inferred
// collection schema: every referenced field (including dotted paths) must
// exist, and queried values must be compatible with the field's observed
// types. It returns a list of findings; an empty list means the query is
// consistent with the schema.
func ValidateAgainstSchema(filter map[string]any, collectionSchema schema.CollectionSchema) []string {
	var errs []string
	validateDocAgainstSchema(filter, collectionSchema, &errs, "", collectionSchema)
	return errs
}

func validateDocAgainstSchema(part any, schemaPart schema.CollectionSchema, errs *[]string, path string, full schema.CollectionSchema) {
	doc, ok := asFilterDocument(part)
	if !ok {
		*errs = append(*errs, fmt.Sprintf("Invalid query structure at '%s': expected a document, got %s.", path, describeValue(part)))
		return
	}

	for key, value := range doc {
		currentPath := joinPath(path, key)

		switch {
		case key == "$and" || key == "$or" || key == "$nor":
			elements, ok := asFilterArray(value)
			if !ok {
				*errs = append(*errs, fmt.Sprintf("Invalid value for operator '%s' at '%s': expected an array of query documents.", key, currentPath))
				continue
			}
			if len(elements) == 0 {
				*errs = append(*errs, fmt.Sprintf("Operator '%s' at '%s' has an empty array.", key, currentPath))
				continue
			}
			// Each branch is an independent query against the full schema.
			for i, subQuery := range elements {
				subPath := fmt.Sprintf("%s[%d]", currentPath, i)
				if _, ok := asFilterDocument(subQuery); !ok {
					*errs = append(*errs, fmt.Sprintf("Invalid element in '%s' array at '%s': expected a query document.", key, subPath))
					continue
				}
				validateDocAgainstSchema(subQuery, full, errs, subPath, full)
			}

		case key == "$not":
			// Without the field context of the negated expression, only the
			// shape can be checked here.
			inner, ok := asFilterDocument(value)
			if !ok {
				*errs = append(*errs, fmt.Sprintf("Invalid value for operator '$not' at '%s': expected an operator expression document.", currentPath))
				continue
			}
			for innerKey := range inner {
				if !strings.HasPrefix(innerKey, "$") {
					*errs = append(*errs, fmt.Sprintf("Value for '$not' at '%s' contains non-operator key '%s'; validation may be incomplete.", currentPath, innerKey))
				}
			}

		case strings.HasPrefix(key, "$"):
			*errs = append(*errs, fmt.Sprintf("Operator '%s' at '%s' is not valid at the top level of a schema-validated query.", key, currentPath))

		default:
			fieldSchema, ok := resolveFieldPath(key, schemaPart, errs, path)
			if !ok {
				continue
			}
			validateFieldPredicate(value, fieldSchema, errs, currentPath, full)
		}
	}
}

// resolveFieldPath walks a (possibly dotted) field path through the nested
// object schemas and returns the schema of the final segment.
func resolveFieldPath(key string, schemaPart schema.CollectionSchema, errs *[]string, pathPrefix string) (*schema.FieldSchema, bool) {
	fullPath := joinPath(pathPrefix, key)
	parts := strings.Split(key, ".")

	currentLevel := schemaPart
	walked := pathPrefix
	var fieldSchema *schema.FieldSchema

	for i, part := range parts {
		fs, found := currentLevel[part]
		if !found {
			if strings.HasPrefix(part, "$") {
				*errs = append(*errs, fmt.Sprintf("Invalid query key '%s': field '%s' not found in schema at '%s'. Is it a misplaced operator?", fullPath, part, walked))
			} else {
				*errs = append(*errs, fmt.Sprintf("Invalid query key '%s': field '%s' not found in schema at '%s'.", fullPath, part, walked))
			}
			return nil, false
		}
		fieldSchema = fs

		if i < len(parts)-1 {
			walked = joinPath(walked, part)
			if !fs.HasType(schema.TypeObject) {
				*errs = append(*errs, fmt.Sprintf("Invalid query path '%s': field '%s' at '%s' is not an object in the schema, cannot traverse further.", fullPath, part, walked))
				return nil, false
			}
			if fs.Fields == nil {
				*errs = append(*errs, fmt.Sprintf("Schema definition error: field '%s' at '%s' is an object but has no nested schema.", part, walked))
				return nil, false
			}
			currentLevel = fs.Fields
		}
	}

	return fieldSchema, true
}

// validateFieldPredicate checks a field's queried value, which is either a
// document of operators or a direct (implicit $eq) match.
func validateFieldPredicate(value any, fieldSchema *schema.FieldSchema, errs *[]string, path string, full schema.CollectionSchema) {
	if opDoc, ok := asFilterDocument(value); ok && containsOperator(opDoc) {
		for op, opValue := range opDoc {
			validateOperatorAgainstSchema(op, opValue, fieldSchema, errs, joinPath(path, op), path, full)
		}
		return
	}

	// Direct match (implicit $eq).
	valueType := schema.TypeName(value)
	if !typeMatches(valueType, fieldSchema) {
		*errs = append(*errs, fmt.Sprintf("Type mismatch for field '%s': query uses type '%s', but schema expects %v.", path, valueType, fieldSchema.Types))
	}
}

func validateOperatorAgainstSchema(op string, opValue any, fieldSchema *schema.FieldSchema, errs *[]string, opPath, fieldPath string, full schema.CollectionSchema) {
	if !IsKnownOperator(op) {
		*errs = append(*errs, fmt.Sprintf("Unknown operator '%s' used at '%s'.", op, opPath))
		return
	}

	switch op {
	case "$eq", "$ne", "$gt", "$gte", "$lt", "$lte":
		valueType := schema.TypeName(opValue)
		if !typeMatches(valueType, fieldSchema) {
			*errs = append(*errs, fmt.Sprintf("Type mismatch for operator '%s' at '%s': query uses type '%s', but schema expects %v.", op, opPath, valueType, fieldSchema.Types))
		}

	case "$in", "$nin":
		elements, ok := asFilterArray(opValue)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("Invalid value for operator '%s' at '%s': expected an array.", op, opPath))
			return
		}
		for i, element := range elements {
			elementType := schema.TypeName(element)
			if !typeMatches(elementType, fieldSchema) {
				*errs = append(*errs, fmt.Sprintf("Type mismatch for item in '%s' array at '%s[%d]': item type is '%s', but schema expects %v.", op, opPath, i, elementType, fieldSchema.Types))
			}
		}

	case "$exists":
		if _, ok := opValue.(bool); !ok {
			*errs = append(*errs, fmt.Sprintf("Invalid value for operator '%s' at '%s': expected a boolean (true/false).", op, opPath))
		}

	case "$type":
		if !isTypeSpec(opValue) {
			*errs = append(*errs, fmt.Sprintf("Invalid value for operator '%s' at '%s': expected a BSON type string or number.", op, opPath))
			return
		}
		if typeAlias, ok := opValue.(string); ok && !fieldSchema.HasType(typeAlias) {
			*errs = append(*errs, fmt.Sprintf("Operator '%s' at '%s' checks for type '%s', which is not among the expected schema types %v.", op, opPath, typeAlias, fieldSchema.Types))
		}

	case "$regex":
		if !fieldSchema.HasType(schema.TypeString) {
			*errs = append(*errs, fmt.Sprintf("Usage warning for operator '%s' at '%s': field type is not 'string' in schema (%v), $regex may not match as expected.", op, opPath, fieldSchema.Types))
		}
		if _, ok := opValue.(string); !ok && !isRegexValue(opValue) {
			*errs = append(*errs, fmt.Sprintf("Invalid value for operator '%s' at '%s': expected a string or regex pattern.", op, opPath))
		}

	case "$options":
		// Modifier for $regex in the same document; nothing to check
		// against the schema.

	case "$size":
		if !fieldSchema.HasType(schema.TypeArray) {
			*errs = append(*errs, fmt.Sprintf("Usage error for operator '%s' at '%s': field type is not 'array' in schema (%v).", op, opPath, fieldSchema.Types))
		}
		if !isInteger(opValue) {
			*errs = append(*errs, fmt.Sprintf("Invalid value for operator '%s' at '%s': expected an integer size.", op, opPath))
		}

	case "$all":
		if !fieldSchema.HasType(schema.TypeArray) {
			*errs = append(*errs, fmt.Sprintf("Usage error for operator '%s' at '%s': field type is not 'array' in schema (%v).", op, opPath, fieldSchema.Types))
			return
		}
		elements, ok := asFilterArray(opValue)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("Invalid value for operator '%s' at '%s': expected an array of elements.", op, opPath))
			return
		}
		if fieldSchema.Element == nil {
			*errs = append(*errs, fmt.Sprintf("Schema definition error at '%s': array field has no element schema needed to validate '%s'.", fieldPath, op))
			return
		}
		for i, element := range elements {
			elementType := schema.TypeName(element)
			if !typeMatches(elementType, fieldSchema.Element) {
				*errs = append(*errs, fmt.Sprintf("Type mismatch for item in '%s' array at '%s[%d]': item type is '%s', but array element schema expects %v.", op, opPath, i, elementType, fieldSchema.Element.Types))
			}
		}

	case "$elemMatch":
		if !fieldSchema.HasType(schema.TypeArray) {
			*errs = append(*errs, fmt.Sprintf("Usage error for operator '%s' at '%s': field type is not 'array' in schema (%v).", op, opPath, fieldSchema.Types))
			return
		}
		matchDoc, ok := asFilterDocument(opValue)
		if !ok {
			*errs = append(*errs, fmt.Sprintf("Invalid value for operator '%s' at '%s': expected a query document for element matching.", op, opPath))
			return
		}
		element := fieldSchema.Element
		if element == nil {
			*errs = append(*errs, fmt.Sprintf("Schema definition error at '%s': array field has no element schema needed to validate '%s'.", fieldPath, op))
			return
		}
		if element.HasType(schema.TypeObject) {
			if element.Fields == nil {
				*errs = append(*errs, fmt.Sprintf("Schema definition error at '%s': array element is an object but has no nested schema.", fieldPath))
				return
			}
			validateDocAgainstSchema(matchDoc, element.Fields, errs, opPath, full)
			return
		}
		// Primitive elements: the $elemMatch document is an operator block
		// applied to each element.
		for innerOp, innerValue := range matchDoc {
			if !strings.HasPrefix(innerOp, "$") {
				*errs = append(*errs, fmt.Sprintf("Invalid query key '%s.%s': field '%s' not found in schema of primitive array elements.", opPath, innerOp, innerOp))
				continue
			}
			validateOperatorAgainstSchema(innerOp, innerValue, element, errs, joinPath(opPath, innerOp), opPath, full)
		}
	}
	// Remaining operators ($mod, $text, $where, geo, bitwise, $comment)
	// pass schema validation once their syntax is valid.
}

func containsOperator(doc map[string]any) bool {
	for key := range doc {
		if strings.HasPrefix(key, "$") {
			return true
		}
	}
	return false
}

// typeMatches reports whether a queried value type is compatible with the
// field's observed types: an exact match, a null match when null was
// observed, or any numeric type when the field holds numerics.
func typeMatches(valueType string, fieldSchema *schema.FieldSchema) bool {
	if fieldSchema == nil || len(fieldSchema.Types) == 0 {
		return false
	}
	if fieldSchema.HasType(valueType) {
		return true
	}
	if valueType == schema.TypeNull && fieldSchema.HasType(schema.TypeNull) {
		return true
	}
	if _, numeric := numericTypes[valueType]; numeric {
		for _, typeName := range fieldSchema.Types {
			if _, ok := numericTypes[typeName]; ok {
				return true
			}
		}
	}
	return false
}
