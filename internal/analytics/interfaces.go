package analytics

import (
	"io"
	"net/http"
)

//go:generate mockgen -destination=mocks/mock_analytics.go -package=analytics_mocks -typed github.com/mongodb/mcp/internal/analytics Service,HTTPClient

// Service emits anonymous usage events for the MCP server.
type Service interface {
	Disable()
	Enable()
	EmitEvent(event TrackEvent)
	NewOSInfoEvent(dbURI string) TrackEvent
	NewStartupEvent() TrackEvent
	NewToolsEvent(toolUsed string) TrackEvent
}

// HTTPClient is the minimal HTTP surface used to deliver events, kept as
// an interface so tests can intercept the outgoing request.
type HTTPClient interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
}
