package schema

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestTypeName(t *testing.T) {
	oid := primitive.NewObjectID()
	dec, err := primitive.ParseDecimal128("1.5")
	if err != nil {
		t.Fatalf("failed to parse decimal: %v", err)
	}

	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"string", "hello", TypeString},
		{"bool", true, TypeBool},
		{"int32", int32(1), TypeInt},
		{"plain int", 1, TypeInt},
		{"int64", int64(1), TypeLong},
		{"float64", 1.5, TypeDouble},
		{"decimal128", dec, TypeDecimal},
		{"objectId", oid, TypeObjectID},
		{"datetime", primitive.DateTime(0), TypeDate},
		{"timestamp", primitive.Timestamp{T: 1, I: 1}, TypeTimestamp},
		{"nil", nil, TypeNull},
		{"null wrapper", primitive.Null{}, TypeNull},
		{"binary", primitive.Binary{}, TypeBinData},
		{"regex", primitive.Regex{Pattern: "a"}, TypeRegex},
		{"minKey", primitive.MinKey{}, TypeMinKey},
		{"maxKey", primitive.MaxKey{}, TypeMaxKey},
		{"bson.M", bson.M{}, TypeObject},
		{"map", map[string]any{}, TypeObject},
		{"bson.D", bson.D{}, TypeObject},
		{"primitive.A", primitive.A{}, TypeArray},
		{"slice", []any{}, TypeArray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TypeName(tt.value); got != tt.want {
				t.Errorf("TypeName(%v) = %q, want %q", tt.value, got, tt.want)
			}
		})
	}
}
