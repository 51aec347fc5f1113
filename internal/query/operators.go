// Package query validates MongoDB query filter documents, both against a
// fixed table of known query operators (syntax) and against an inferred
// collection schema (field names and value types).
package query

// knownOperators is the table of query operators accepted in filter
// documents. See https://www.mongodb.com/docs/manual/reference/operator/query/
var knownOperators = map[string]struct{}{
	// Comparison
	"$eq": {}, "$gt": {}, "$gte": {}, "$in": {}, "$lt": {}, "$lte": {}, "$ne": {}, "$nin": {},
	// Logical
	"$and": {}, "$or": {}, "$not": {}, "$nor": {},
	// Element
	"$exists": {}, "$type": {},
	// Evaluation
	"$expr": {}, "$jsonSchema": {}, "$mod": {}, "$regex": {}, "$options": {}, "$text": {}, "$where": {}, "$search": {},
	// Geospatial
	"$geoIntersects": {}, "$geoWithin": {}, "$near": {}, "$nearSphere": {}, "$box": {}, "$center": {},
	"$centerSphere": {}, "$geometry": {}, "$maxDistance": {}, "$minDistance": {}, "$polygon": {},
	// Array
	"$all": {}, "$elemMatch": {}, "$size": {},
	// Bitwise
	"$bitsAllClear": {}, "$bitsAllSet": {}, "$bitsAnyClear": {}, "$bitsAnySet": {},
	// Comments
	"$comment": {},
}

// IsKnownOperator reports whether op is a recognized query operator.
func IsKnownOperator(op string) bool {
	_, ok := knownOperators[op]
	return ok
}
