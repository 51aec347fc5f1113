// Package analytics abstracts usage telemetry for the repository.
// Currently implemented for MixPanel.
package analytics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mongodb/mcp/internal/logger"
)

// MixPanelService is the concrete Service implementation delivering track
// events to a MixPanel-compatible endpoint. The zero value is unusable;
// construct it with NewMixPanelService.
type MixPanelService struct {
	token       string
	endpoint    string
	distinctID  string
	startupTime int64
	disabled    bool
	client      HTTPClient
	log         *logger.Service
}

// NewMixPanelService creates an analytics service. When token or endpoint
// is empty the service starts disabled and EmitEvent becomes a no-op.
func NewMixPanelService(token, endpoint string, client HTTPClient, log *logger.Service) (*MixPanelService, error) {
	distinctID, err := uuid.NewV6()
	if err != nil {
		return nil, fmt.Errorf("error while generating distinct id for analytics purpose: %w", err)
	}

	if client == nil {
		client = http.DefaultClient
	}

	return &MixPanelService{
		token:       token,
		endpoint:    endpoint,
		distinctID:  distinctID.String(),
		startupTime: time.Now().Unix(),
		disabled:    token == "" || endpoint == "",
		client:      client,
		log:         log,
	}, nil
}

// Disable turns event delivery off.
func (s *MixPanelService) Disable() { s.disabled = true }

// Enable turns event delivery back on, provided the service was
// constructed with a token and endpoint.
func (s *MixPanelService) Enable() {
	if s.token != "" && s.endpoint != "" {
		s.disabled = false
	}
}

// EmitEvent delivers a single track event. Delivery failures are logged
// and never propagate; telemetry must not affect tool execution.
func (s *MixPanelService) EmitEvent(event TrackEvent) {
	if s.disabled {
		return
	}

	s.log.Debug("sending analytics event", "event", event.Event)
	if err := s.sendTrackEvents([]TrackEvent{event}); err != nil {
		s.log.Warn("failed to send analytics event", "event", event.Event, "error", err)
	}
}

func (s *MixPanelService) sendTrackEvents(events []TrackEvent) error {
	b, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("error while marshalling track event: %w", err)
	}
	url := strings.TrimRight(s.endpoint, "/") + "/track"

	resp, err := s.client.Post(url, "application/json; charset=utf-8", bytes.NewBuffer(b))
	if err != nil {
		return fmt.Errorf("error while emitting analytics event: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	s.log.Debug("analytics endpoint response", "status", resp.Status, "body", string(body))
	return nil
}
