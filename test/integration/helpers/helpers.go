//go:build integration

// Package helpers provides shared infrastructure for integration tests:
// a MongoDB test container, a shared driver client, and a per-test
// context with automatic cleanup of seeded collections.
package helpers

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/mongodb/mcp/internal/config"
	"github.com/mongodb/mcp/internal/database"
	"github.com/mongodb/mcp/internal/logger"
	"github.com/mongodb/mcp/internal/tools"
)

// TestContext holds common test dependencies
type TestContext struct {
	Ctx                context.Context
	T                  *testing.T
	TestID             string
	Service            database.Service
	Deps               *tools.ToolDependencies
	createdCollections map[string]bool
	collectionMutex    sync.Mutex
}

var (
	cfg       *config.Config
	container testcontainers.Container
	client    *mongo.Client
	once      sync.Once
)

// Start initializes shared resources for integration tests
func Start(ctx context.Context) {
	once.Do(func() {
		startOnce(ctx)
	})
}

func startOnce(ctx context.Context) {
	ctr, uri, err := createMongoContainer(ctx)
	if err != nil {
		log.Fatalf("failed to start shared mongodb container: %v", err)
	}
	container = ctr

	cfg = &config.Config{
		URI:              uri,
		Database:         config.GetEnvWithDefault("MONGODB_DATABASE", "integration"),
		SchemaSampleSize: config.DefaultSchemaSampleSize,
	}

	cl, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		_ = ctr.Terminate(ctx)
		log.Fatalf("failed to create driver client: %v", err)
	}
	client = cl

	if err := waitForConnectivity(ctx, ctr, client); err != nil {
		_ = client.Disconnect(ctx)
		_ = ctr.Terminate(ctx)
		log.Fatalf("failed to verify connectivity: %v", err)
	}
}

// Close cleans up shared resources used in integration tests
func Close(ctx context.Context) {
	if err := client.Disconnect(ctx); err != nil {
		log.Printf("Warning: failed to close driver client: %v", err)
	}
	if err := container.Terminate(ctx); err != nil {
		log.Printf("Warning: failed to terminate container: %v", err)
	}
}

// NewTestContext creates a new test context with automatic cleanup
func NewTestContext(t *testing.T) *TestContext {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	testID := makeTestID()

	tc := &TestContext{
		Ctx:                ctx,
		T:                  t,
		TestID:             testID,
		createdCollections: make(map[string]bool),
	}

	t.Cleanup(func() {
		tc.Cleanup()
		cancel()
	})

	testLog := logger.New("error", "text", io.Discard)
	svc, err := database.NewMongoService(cfg.URI, cfg.Database, testLog)
	if err != nil {
		t.Fatalf("failed to create MongoDB service: %v", err)
	}
	t.Cleanup(func() {
		_ = svc.Close(context.Background())
	})

	tc.Service = svc
	tc.Deps = &tools.ToolDependencies{Config: cfg, DBService: svc, Log: testLog}

	return tc
}

// Cleanup drops all collections created during the test
func (tc *TestContext) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	tc.collectionMutex.Lock()
	collections := make([]string, 0, len(tc.createdCollections))
	for name := range tc.createdCollections {
		collections = append(collections, name)
	}
	tc.collectionMutex.Unlock()

	for _, name := range collections {
		if err := client.Database(cfg.Database).Collection(name).Drop(ctx); err != nil {
			log.Printf("Warning: cleanup failed for collection=%s: %v", name, err)
		}
	}
}

// UniqueCollection returns a collection name unique to this test and tracks
// it for cleanup.
func (tc *TestContext) UniqueCollection(base string) string {
	if tc.TestID == "" {
		panic("UniqueCollection: TestID is not set in TestContext. Did you forget to use NewTestContext?")
	}

	name := fmt.Sprintf("%s_%s", base, tc.TestID)

	tc.collectionMutex.Lock()
	tc.createdCollections[name] = true
	tc.collectionMutex.Unlock()

	return name
}

// SeedDocuments inserts documents into a collection with a unique name and
// returns that name.
func (tc *TestContext) SeedDocuments(base string, docs []any) (string, error) {
	tc.T.Helper()

	name := tc.UniqueCollection(base)
	_, err := client.Database(cfg.Database).Collection(name).InsertMany(tc.Ctx, docs)
	return name, err
}

// CallTool invokes an MCP tool and returns the response
func (tc *TestContext) CallTool(handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	tc.T.Helper()

	res, err := handler(tc.Ctx, newToolRequest(args))
	if err != nil {
		tc.T.Fatalf("tool call failed: %v", err)
	}
	if res == nil {
		tc.T.Fatal("tool returned nil response")
	}
	if res.IsError {
		tc.T.Fatalf("tool returned error: %+v", res)
	}

	return res
}

// CallToolExpectError invokes an MCP tool and asserts the result is an error
func (tc *TestContext) CallToolExpectError(handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args map[string]any) *mcp.CallToolResult {
	tc.T.Helper()

	res, err := handler(tc.Ctx, newToolRequest(args))
	if err != nil {
		tc.T.Fatalf("tool call failed: %v", err)
	}
	if res == nil {
		tc.T.Fatal("tool returned nil response")
	}
	if !res.IsError {
		tc.T.Fatalf("expected tool error result, got: %+v", res)
	}

	return res
}

// ResultText returns the text of the first content item of the response
func (tc *TestContext) ResultText(res *mcp.CallToolResult) string {
	tc.T.Helper()

	if len(res.Content) == 0 {
		tc.T.Fatal("response has no content")
	}

	textContent, ok := mcp.AsTextContent(res.Content[0])
	if !ok {
		tc.T.Fatalf("expected TextContent, got %T", res.Content[0])
	}
	return textContent.Text
}

// ParseJSONResponse parses JSON response into the provided interface
func (tc *TestContext) ParseJSONResponse(res *mcp.CallToolResult, v any) {
	tc.T.Helper()

	text := tc.ResultText(res)
	if err := json.Unmarshal([]byte(text), v); err != nil {
		tc.T.Fatalf("failed to parse JSON response: %v\nraw: %s", err, text)
	}
}

func newToolRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// makeTestID returns a unique test id suitable for tagging resources created by tests.
func makeTestID() string {
	id := fmt.Sprintf("test-%s", uuid.NewString())
	return strings.ReplaceAll(id, "-", "_")
}

// waitForConnectivity waits for MongoDB connectivity with exponential backoff.
func waitForConnectivity(ctx context.Context, ctr testcontainers.Container, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	backoff := 100 * time.Millisecond
	maxBackoff := 2 * time.Second

	var lastErr error
	for {
		if err := client.Ping(ctx, readpref.Primary()); err == nil {
			return nil
		} else {
			lastErr = err
		}

		if ctx.Err() != nil {
			break
		}

		time.Sleep(backoff)
		backoff *= 2
		if backoff > maxBackoff {
			backoff = maxBackoff
		}
	}

	var logs string
	if ctr != nil {
		rc, err := ctr.Logs(context.Background())
		if err == nil && rc != nil {
			b, rerr := io.ReadAll(rc)
			_ = rc.Close()
			if rerr == nil {
				logs = string(b)
			}
		}
	}

	if logs != "" {
		return fmt.Errorf("mongodb connectivity not ready: %v\ncontainer logs:\n%s", lastErr, logs)
	}
	return fmt.Errorf("mongodb connectivity not ready: %v", lastErr)
}

// createMongoContainer starts a MongoDB container for testing
func createMongoContainer(ctx context.Context) (testcontainers.Container, string, error) {
	req := testcontainers.ContainerRequest{
		Image:        config.GetEnvWithDefault("MONGODB_IMAGE", "mongo:7"),
		ExposedPorts: []string{"27017/tcp"},
		WaitingFor:   wait.ForListeningPort("27017/tcp").WithStartupTimeout(119 * time.Second),
	}

	ctr, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, "", err
	}

	host, err := ctr.Host(ctx)
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, "", err
	}
	port, err := ctr.MappedPort(ctx, "27017/tcp")
	if err != nil {
		_ = ctr.Terminate(ctx)
		return nil, "", err
	}

	uri := fmt.Sprintf("mongodb://%s:%s", host, port.Port())

	return ctr, uri, nil
}
