package analytics_test

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mongodb/mcp/internal/analytics"
	"github.com/mongodb/mcp/internal/logger"
)

type MockHTTPClient struct {
	PostFunc func(url, contentType string, body io.Reader) (*http.Response, error)
}

func (m *MockHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	if m.PostFunc != nil {
		return m.PostFunc(url, contentType, body)
	}
	return nil, nil
}

func okResponse() *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader("1")),
	}
}

func TestAnalytics(t *testing.T) {
	log := logger.New("info", "text", io.Discard)

	t.Run("EmitEvent should send event if enabled", func(t *testing.T) {
		called := false
		mockClient := &MockHTTPClient{
			PostFunc: func(url, contentType string, body io.Reader) (*http.Response, error) {
				called = true
				assert.Equal(t, "http://localhost/track", url)
				return okResponse(), nil
			},
		}

		svc, err := analytics.NewMixPanelService("test_token", "http://localhost", mockClient, log)
		assert.NoError(t, err)

		svc.EmitEvent(svc.NewStartupEvent())
		assert.True(t, called)
	})

	t.Run("EmitEvent sends event name with prefix", func(t *testing.T) {
		var payload []analytics.TrackEvent
		mockClient := &MockHTTPClient{
			PostFunc: func(url, contentType string, body io.Reader) (*http.Response, error) {
				b, readErr := io.ReadAll(body)
				assert.NoError(t, readErr)
				assert.NoError(t, json.Unmarshal(b, &payload))
				return okResponse(), nil
			},
		}

		svc, err := analytics.NewMixPanelService("test_token", "http://localhost", mockClient, log)
		assert.NoError(t, err)

		svc.EmitEvent(svc.NewToolsEvent("get-schema"))
		assert.Len(t, payload, 1)
		assert.Equal(t, "MCP4MONGODB_TOOL_USED", payload[0].Event)
	})

	t.Run("service starts disabled without a token", func(t *testing.T) {
		called := false
		mockClient := &MockHTTPClient{
			PostFunc: func(url, contentType string, body io.Reader) (*http.Response, error) {
				called = true
				return okResponse(), nil
			},
		}

		svc, err := analytics.NewMixPanelService("", "http://localhost", mockClient, log)
		assert.NoError(t, err)

		svc.EmitEvent(svc.NewStartupEvent())
		assert.False(t, called)

		// Enable is a no-op without a token
		svc.Enable()
		svc.EmitEvent(svc.NewStartupEvent())
		assert.False(t, called)
	})

	t.Run("Disable stops event delivery", func(t *testing.T) {
		called := false
		mockClient := &MockHTTPClient{
			PostFunc: func(url, contentType string, body io.Reader) (*http.Response, error) {
				called = true
				return okResponse(), nil
			},
		}

		svc, err := analytics.NewMixPanelService("test_token", "http://localhost", mockClient, log)
		assert.NoError(t, err)

		svc.Disable()
		svc.EmitEvent(svc.NewStartupEvent())
		assert.False(t, called)

		svc.Enable()
		svc.EmitEvent(svc.NewStartupEvent())
		assert.True(t, called)
	})

	t.Run("OS info event flags Atlas URIs", func(t *testing.T) {
		svc, err := analytics.NewMixPanelService("test_token", "http://localhost", &MockHTTPClient{}, log)
		assert.NoError(t, err)

		event := svc.NewOSInfoEvent("mongodb+srv://cluster0.example.mongodb.net")
		assert.Equal(t, "MCP4MONGODB_OS_INFO", event.Event)

		b, err := json.Marshal(event.Properties)
		assert.NoError(t, err)

		var props map[string]any
		assert.NoError(t, json.Unmarshal(b, &props))
		assert.Equal(t, true, props["atlas"])

		event = svc.NewOSInfoEvent("mongodb://localhost:27017")
		b, err = json.Marshal(event.Properties)
		assert.NoError(t, err)
		assert.NoError(t, json.Unmarshal(b, &props))
		assert.Equal(t, false, props["atlas"])
	})
}
