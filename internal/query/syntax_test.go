package query

import (
	"strings"
	"testing"
)

func TestValidateSyntaxValidQueries(t *testing.T) {
	tests := []struct {
		name   string
		filter map[string]any
	}{
		{"empty filter", map[string]any{}},
		{"implicit equality", map[string]any{"name": "Alice"}},
		{"comparison operators", map[string]any{"age": map[string]any{"$gte": int64(18), "$lt": int64(65)}}},
		{"in operator", map[string]any{"status": map[string]any{"$in": []any{"active", "pending"}}}},
		{"logical and", map[string]any{"$and": []any{
			map[string]any{"age": map[string]any{"$gt": int64(18)}},
			map[string]any{"name": "Bob"},
		}}},
		{"logical or with nested not", map[string]any{"$or": []any{
			map[string]any{"score": map[string]any{"$not": map[string]any{"$lt": int64(10)}}},
			map[string]any{"score": nil},
		}}},
		{"exists", map[string]any{"email": map[string]any{"$exists": true}}},
		{"type string alias", map[string]any{"age": map[string]any{"$type": "int"}}},
		{"type number", map[string]any{"age": map[string]any{"$type": int64(16)}}},
		{"type array of aliases", map[string]any{"age": map[string]any{"$type": []any{"int", "long"}}}},
		{"size", map[string]any{"tags": map[string]any{"$size": int64(3)}}},
		{"regex string", map[string]any{"name": map[string]any{"$regex": "^A", "$options": "i"}}},
		{"mod", map[string]any{"qty": map[string]any{"$mod": []any{int64(4), int64(0)}}}},
		{"elemMatch", map[string]any{"results": map[string]any{"$elemMatch": map[string]any{"$gte": int64(80)}}}},
		{"all", map[string]any{"tags": map[string]any{"$all": []any{"red", "blue"}}}},
		{"empty document value", map[string]any{"meta": map[string]any{}}},
		{"array as implicit equality", map[string]any{"tags": []any{"a", "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if errs := ValidateSyntax(tt.filter); len(errs) != 0 {
				t.Errorf("expected no findings, got %v", errs)
			}
		})
	}
}

func TestValidateSyntaxInvalidQueries(t *testing.T) {
	tests := []struct {
		name    string
		filter  map[string]any
		wantErr string
	}{
		{
			"unknown operator",
			map[string]any{"age": map[string]any{"$gte_typo": int64(18)}},
			"Unknown operator '$gte_typo'",
		},
		{
			"and with non-array value",
			map[string]any{"$and": map[string]any{"age": int64(1)}},
			"expected an array of query documents",
		},
		{
			"or with empty array",
			map[string]any{"$or": []any{}},
			"has an empty array",
		},
		{
			"and with non-document element",
			map[string]any{"$and": []any{"not a document"}},
			"expected a document",
		},
		{
			"in with non-array value",
			map[string]any{"status": map[string]any{"$in": "active"}},
			"expected an array",
		},
		{
			"exists with non-boolean",
			map[string]any{"email": map[string]any{"$exists": "yes"}},
			"expected a boolean",
		},
		{
			"size with non-integer",
			map[string]any{"tags": map[string]any{"$size": "three"}},
			"expected an integer",
		},
		{
			"type with invalid spec",
			map[string]any{"age": map[string]any{"$type": true}},
			"expected a BSON type string, number, or an array",
		},
		{
			"regex with non-string",
			map[string]any{"name": map[string]any{"$regex": int64(1)}},
			"expected a string or regex pattern",
		},
		{
			"mod with wrong arity",
			map[string]any{"qty": map[string]any{"$mod": []any{int64(4)}}},
			"expected an array of two numbers",
		},
		{
			"mod with non-numeric members",
			map[string]any{"qty": map[string]any{"$mod": []any{"four", int64(0)}}},
			"expected an array of two numbers",
		},
		{
			"not with scalar value",
			map[string]any{"score": map[string]any{"$not": int64(5)}},
			"expected an operator expression document or a regex pattern",
		},
		{
			"elemMatch with non-document",
			map[string]any{"results": map[string]any{"$elemMatch": []any{int64(1)}}},
			"expected a query document",
		},
		{
			"mixed operators and fields",
			map[string]any{"age": map[string]any{"$gt": int64(18), "name": "Bob"}},
			"cannot mix operators and field names",
		},
		{
			"empty field name",
			map[string]any{"": "value"},
			"Empty field name",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateSyntax(tt.filter)
			if len(errs) == 0 {
				t.Fatalf("expected findings containing %q, got none", tt.wantErr)
			}
			found := false
			for _, msg := range errs {
				if strings.Contains(msg, tt.wantErr) {
					found = true
					break
				}
			}
			if !found {
				t.Errorf("expected a finding containing %q, got %v", tt.wantErr, errs)
			}
		})
	}
}

func TestValidateSyntaxReportsNestedPaths(t *testing.T) {
	filter := map[string]any{
		"$and": []any{
			map[string]any{"a": int64(1)},
			map[string]any{"b": map[string]any{"$bogus": int64(2)}},
		},
	}

	errs := ValidateSyntax(filter)
	if len(errs) != 1 {
		t.Fatalf("expected exactly one finding, got %v", errs)
	}
	if !strings.Contains(errs[0], "$and[1].b.$bogus") {
		t.Errorf("expected finding to carry the nested path, got %q", errs[0])
	}
}

func TestIsKnownOperator(t *testing.T) {
	for _, op := range []string{"$eq", "$gt", "$and", "$elemMatch", "$exists", "$regex", "$geoWithin", "$bitsAllSet"} {
		if !IsKnownOperator(op) {
			t.Errorf("expected %q to be a known operator", op)
		}
	}
	for _, op := range []string{"$bogus", "$GT", "eq"} {
		if IsKnownOperator(op) {
			t.Errorf("expected %q to be unknown", op)
		}
	}
}
