package mongo_test

import (
	"context"
	"os"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/mock/gomock"

	analytics "github.com/mongodb/mcp/internal/analytics/mocks"
	db "github.com/mongodb/mcp/internal/database/mocks"
	"github.com/mongodb/mcp/internal/logger"
	"github.com/mongodb/mcp/internal/tools"
	"github.com/mongodb/mcp/internal/tools/mongo"
)

func TestValidateQueryHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	analyticsService := analytics.NewMockService(ctrl)
	analyticsService.EXPECT().NewToolsEvent("validate-query").AnyTimes()
	analyticsService.EXPECT().EmitEvent(gomock.Any()).AnyTimes()
	defer ctrl.Finish()

	log := logger.New("debug", "text", os.Stderr)

	sampled := []bson.M{
		{"name": "Alice", "age": int32(30)},
		{"name": "Bob", "age": int64(41)},
	}

	t.Run("query consistent with schema", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ListCollectionNames(gomock.Any()).Return([]string{"users"}, nil)
		mockDB.EXPECT().
			SampleDocuments(gomock.Any(), "users", int64(100)).
			Return(sampled, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := mongo.ValidateQueryHandler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"collection": "users",
					"filter": map[string]any{
						"age": map[string]any{"$gte": 18},
					},
				},
			},
		})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result")
		}
		if got := resultText(t, result); !strings.Contains(got, "consistent with the inferred collection schema") {
			t.Errorf("expected valid-query message, got %q", got)
		}
	})

	t.Run("reports syntax and schema findings together", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ListCollectionNames(gomock.Any()).Return([]string{"users"}, nil)
		mockDB.EXPECT().
			SampleDocuments(gomock.Any(), "users", int64(100)).
			Return(sampled, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := mongo.ValidateQueryHandler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"collection": "users",
					"filter": map[string]any{
						"age":      map[string]any{"$gte_typo": 18},
						"nickname": "Al",
					},
				},
			},
		})

		if err != nil {
			t.Errorf("Expected no error, got: %v", err)
		}
		if result == nil || result.IsError {
			t.Fatal("Expected success result carrying the findings")
		}
		text := resultText(t, result)
		if !strings.Contains(text, "Query validation errors found:") {
			t.Errorf("expected findings header, got:\n%s", text)
		}
		if !strings.Contains(text, "Unknown operator '$gte_typo'") {
			t.Errorf("expected syntax finding, got:\n%s", text)
		}
		if !strings.Contains(text, "field 'nickname' not found in schema") {
			t.Errorf("expected schema finding, got:\n%s", text)
		}
	})

	t.Run("collection not found", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ListCollectionNames(gomock.Any()).Return([]string{"users"}, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := mongo.ValidateQueryHandler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"collection": "missing",
					"filter":     map[string]any{},
				},
			},
		})

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for unknown collection")
		}
	})

	t.Run("empty collection cannot be validated against", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)
		mockDB.EXPECT().ListCollectionNames(gomock.Any()).Return([]string{"users"}, nil)
		mockDB.EXPECT().
			SampleDocuments(gomock.Any(), "users", int64(100)).
			Return([]bson.M{}, nil)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := mongo.ValidateQueryHandler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"collection": "users",
					"filter":     map[string]any{},
				},
			},
		})

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for empty collection")
		}
	})

	t.Run("missing collection parameter", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := mongo.ValidateQueryHandler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"filter": map[string]any{},
				},
			},
		})

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for missing collection")
		}
	})

	t.Run("missing filter parameter", func(t *testing.T) {
		mockDB := db.NewMockService(ctrl)

		deps := &tools.ToolDependencies{
			DBService:        mockDB,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := mongo.ValidateQueryHandler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Arguments: map[string]any{
					"collection": "users",
				},
			},
		})

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for missing filter")
		}
	})

	t.Run("nil database service", func(t *testing.T) {
		deps := &tools.ToolDependencies{
			DBService:        nil,
			Log:              log,
			AnalyticsService: analyticsService,
		}

		handler := mongo.ValidateQueryHandler(deps)
		result, err := handler(context.Background(), mcp.CallToolRequest{})

		if err != nil {
			t.Errorf("Expected no error from handler, got: %v", err)
		}
		if result == nil || !result.IsError {
			t.Error("Expected error result for nil database service")
		}
	})
}
