package database

//go:generate mockgen -destination=mocks/mock_database.go -package=mocks -typed github.com/mongodb/mcp/internal/database Service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
)

// SortField is a single (field, direction) pair of a sort specification.
// Direction is 1 for ascending and -1 for descending.
type SortField struct {
	Field     string
	Direction int
}

// FindQuery describes a find operation against a single collection.
// A zero Limit means no limit.
type FindQuery struct {
	Filter     map[string]any
	Projection map[string]any
	Sort       []SortField
	Skip       int64
	Limit      int64
}

// QueryExecutor defines the interface for running find queries
type QueryExecutor interface {
	// Find executes a find query against the named collection and returns the matching documents
	Find(ctx context.Context, collection string, query FindQuery) ([]bson.M, error)

	// SampleDocuments returns up to sampleSize documents from the named collection
	SampleDocuments(ctx context.Context, collection string, sampleSize int64) ([]bson.M, error)
}

// CollectionLister defines the interface for collection discovery
type CollectionLister interface {
	// ListCollectionNames returns the names of the collections in the configured database
	ListCollectionNames(ctx context.Context) ([]string, error)
}

// DocumentFormatter defines the interface for formatting documents for tool output
type DocumentFormatter interface {
	// DocumentsToJSON converts documents to a relaxed extended JSON array string
	DocumentsToJSON(docs []bson.M) (string, error)
}

// Service combines query execution, collection discovery and document formatting
type Service interface {
	QueryExecutor
	CollectionLister
	DocumentFormatter

	// VerifyConnectivity checks that a connection to the MongoDB deployment can be established
	VerifyConnectivity(ctx context.Context) error

	// Close releases the underlying client connection, if one was opened
	Close(ctx context.Context) error
}
