package database

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mongodb/mcp/internal/logger"
)

// serverSelectionTimeout bounds the initial connection attempt. Pooling and
// retry beyond this are left entirely to the driver.
const serverSelectionTimeout = 5 * time.Second

// MongoService is the concrete implementation of Service.
//
// It holds the connection settings and opens a single driver client lazily
// on first use. The client is reused for the lifetime of the service and
// released by Close.
type MongoService struct {
	uri      string
	database string
	log      *logger.Service

	mu     sync.Mutex
	client *mongo.Client
	db     *mongo.Database
}

// NewMongoService creates a new MongoService instance. No connection is
// established until the first operation needs one.
func NewMongoService(uri, database string, log *logger.Service) (*MongoService, error) {
	if uri == "" {
		return nil, &ConfigurationError{Msg: "MongoDB URI cannot be empty"}
	}
	if database == "" {
		return nil, &ConfigurationError{Msg: "MongoDB database name cannot be empty"}
	}

	return &MongoService{
		uri:      uri,
		database: database,
		log:      log,
	}, nil
}

// getDB establishes the connection if needed and returns the database handle.
func (s *MongoService) getDB(ctx context.Context) (*mongo.Database, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db != nil {
		return s.db, nil
	}

	s.log.Debug("establishing MongoDB connection", "database", s.database)

	opts := options.Client().
		ApplyURI(s.uri).
		SetServerSelectionTimeout(serverSelectionTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, &ConfigurationError{Msg: "invalid MongoDB URI configuration", Err: err}
	}

	// Ping is cheap and verifies the deployment is actually reachable.
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(ctx)
		return nil, &ConfigurationError{Msg: fmt.Sprintf("could not connect to MongoDB at %s", redactURI(s.uri)), Err: err}
	}

	s.client = client
	s.db = client.Database(s.database)
	s.log.Info("MongoDB connection established", "database", s.database)
	return s.db, nil
}

// VerifyConnectivity checks that a connection with the MongoDB deployment
// can be established, opening one if necessary.
func (s *MongoService) VerifyConnectivity(ctx context.Context) error {
	_, err := s.getDB(ctx)
	return err
}

// Close releases the underlying client connection, if one was opened.
func (s *MongoService) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.client == nil {
		return nil
	}
	err := s.client.Disconnect(ctx)
	s.client = nil
	s.db = nil
	if err != nil {
		return &ExecutionError{Msg: "failed to close MongoDB connection", Err: err}
	}
	return nil
}

// ListCollectionNames returns the sorted names of the collections in the
// configured database.
func (s *MongoService) ListCollectionNames(ctx context.Context) ([]string, error) {
	db, err := s.getDB(ctx)
	if err != nil {
		return nil, err
	}

	names, err := db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, &ExecutionError{Msg: "failed to list collections", Err: err}
	}
	sort.Strings(names)
	return names, nil
}

// SampleDocuments returns up to sampleSize documents from the named
// collection, in natural order.
func (s *MongoService) SampleDocuments(ctx context.Context, collection string, sampleSize int64) ([]bson.M, error) {
	if collection == "" {
		return nil, &SchemaError{Msg: "collection name cannot be empty"}
	}
	if sampleSize <= 0 {
		return nil, &SchemaError{Msg: fmt.Sprintf("sample size must be positive, got %d", sampleSize)}
	}

	db, err := s.getDB(ctx)
	if err != nil {
		return nil, err
	}

	cursor, err := db.Collection(collection).Find(ctx, bson.D{}, options.Find().SetLimit(sampleSize))
	if err != nil {
		return nil, &SchemaError{Msg: fmt.Sprintf("failed to sample collection %q", collection), Err: err}
	}

	var docs []bson.M
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &SchemaError{Msg: fmt.Sprintf("failed to read sampled documents from %q", collection), Err: err}
	}
	return docs, nil
}

// Find executes a find query against the named collection and returns the
// matching documents.
func (s *MongoService) Find(ctx context.Context, collection string, query FindQuery) ([]bson.M, error) {
	if collection == "" {
		return nil, &ExecutionError{Msg: "collection name cannot be empty"}
	}
	if query.Limit < 0 {
		return nil, &ExecutionError{Msg: "limit cannot be negative"}
	}
	if query.Skip < 0 {
		return nil, &ExecutionError{Msg: "skip cannot be negative"}
	}

	db, err := s.getDB(ctx)
	if err != nil {
		return nil, err
	}

	filter := any(query.Filter)
	if query.Filter == nil {
		filter = bson.D{}
	}

	findOpts := options.Find()
	if query.Projection != nil {
		findOpts.SetProjection(query.Projection)
	}
	if len(query.Sort) > 0 {
		sortDoc := make(bson.D, 0, len(query.Sort))
		for _, sf := range query.Sort {
			if sf.Direction != 1 && sf.Direction != -1 {
				return nil, &ExecutionError{Msg: fmt.Sprintf("invalid sort direction %d for field %q, must be 1 or -1", sf.Direction, sf.Field)}
			}
			sortDoc = append(sortDoc, bson.E{Key: sf.Field, Value: sf.Direction})
		}
		findOpts.SetSort(sortDoc)
	}
	if query.Skip > 0 {
		findOpts.SetSkip(query.Skip)
	}
	if query.Limit > 0 {
		findOpts.SetLimit(query.Limit)
	}

	s.log.Debug("executing find", "database", s.database, "collection", collection, "skip", query.Skip, "limit", query.Limit)

	cursor, err := db.Collection(collection).Find(ctx, filter, findOpts)
	if err != nil {
		return nil, &ExecutionError{Msg: fmt.Sprintf("find on %q failed", collection), Err: err}
	}

	docs := make([]bson.M, 0)
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &ExecutionError{Msg: fmt.Sprintf("failed to read find results from %q", collection), Err: err}
	}
	return docs, nil
}
