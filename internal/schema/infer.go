// Package schema infers a merged field-type schema for MongoDB
// collections by walking sampled documents.
package schema

import (
	"slices"

	"go.mongodb.org/mongo-driver/bson"
)

// FieldSchema describes the observed shape of a single field across the
// sampled documents.
//
// Types holds the BSON type names seen for the field, sorted. Fields is
// populated when the field was seen as an embedded document; Element when
// it was seen as an array, merged across all elements of all sampled
// arrays.
type FieldSchema struct {
	Types   []string                `json:"types"`
	Fields  map[string]*FieldSchema `json:"schema,omitempty"`
	Element *FieldSchema            `json:"element_schema,omitempty"`
}

// CollectionSchema maps top-level field names to their inferred schemas.
type CollectionSchema map[string]*FieldSchema

// HasType reports whether the field was observed with the given BSON type.
func (f *FieldSchema) HasType(name string) bool {
	return f != nil && slices.Contains(f.Types, name)
}

// addType inserts a type name keeping Types sorted and deduplicated.
func (f *FieldSchema) addType(name string) {
	idx, found := slices.BinarySearch(f.Types, name)
	if found {
		return
	}
	f.Types = slices.Insert(f.Types, idx, name)
}

// dropType removes a type name if present.
func (f *FieldSchema) dropType(name string) {
	idx, found := slices.BinarySearch(f.Types, name)
	if found {
		f.Types = slices.Delete(f.Types, idx, idx+1)
	}
}

// InferValue recursively infers the schema of a single value.
func InferValue(value any) *FieldSchema {
	fs := &FieldSchema{}
	typeName := TypeName(value)
	fs.addType(typeName)

	switch typeName {
	case TypeObject:
		entries, _ := asDocument(value)
		fs.Fields = make(map[string]*FieldSchema, len(entries))
		for _, entry := range entries {
			fs.Fields[entry.key] = InferValue(entry.value)
		}
	case TypeArray:
		elements, _ := asArray(value)
		if len(elements) == 0 {
			fs.Element = &FieldSchema{Types: []string{TypeEmptyArray}}
			break
		}
		var merged *FieldSchema
		for _, element := range elements {
			merged = Merge(merged, InferValue(element))
		}
		fs.Element = merged
	}

	return fs
}

// Merge combines two field schemas into one, unioning the observed types
// and recursively merging nested document and array element schemas.
// Either argument may be nil.
func Merge(existing, incoming *FieldSchema) *FieldSchema {
	if existing == nil {
		return incoming
	}
	if incoming == nil {
		return existing
	}

	for _, typeName := range incoming.Types {
		existing.addType(typeName)
	}

	if incoming.Fields != nil {
		if existing.Fields == nil {
			existing.Fields = incoming.Fields
		} else {
			for key, fieldSchema := range incoming.Fields {
				existing.Fields[key] = Merge(existing.Fields[key], fieldSchema)
			}
		}
	}

	if incoming.Element != nil {
		existing.Element = Merge(existing.Element, incoming.Element)
		// An empty-array marker is only meaningful while no element type
		// has been seen.
		if len(existing.Element.Types) > 1 {
			existing.Element.dropType(TypeEmptyArray)
		}
	}

	return existing
}

// InferCollection merges the schemas of all sampled documents into a
// single collection schema, field by field. Documents are expected to be
// top-level BSON documents; a nil or empty slice yields an empty schema.
func InferCollection(docs []bson.M) CollectionSchema {
	collection := make(CollectionSchema)
	for _, doc := range docs {
		docSchema := InferValue(doc)
		for key, fieldSchema := range docSchema.Fields {
			collection[key] = Merge(collection[key], fieldSchema)
		}
	}
	return collection
}
