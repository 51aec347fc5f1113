package analytics

import (
	"runtime"
	"strings"
	"time"

	"github.com/google/uuid"
)

const eventNamePrefix = "MCP4MONGODB"

// baseProperties are the base properties attached to a MixPanel "track" event.
// DistinctID identifies a single execution of the server rather than a user.
// InsertID is used by the endpoint to deduplicate messages.
type baseProperties struct {
	Token      string `json:"token"`
	Time       int64  `json:"time"`
	DistinctID string `json:"distinct_id"`
	InsertID   string `json:"$insert_id"`
	Uptime     int64  `json:"uptime"`
}

type osInfoProperties struct {
	baseProperties
	OS     string `json:"os"`
	OSArch string `json:"os_arch"`
	Atlas  bool   `json:"atlas"`
}

type toolsProperties struct {
	baseProperties
	ToolUsed string `json:"tools_used"`
}

type TrackEvent struct {
	Event      string      `json:"event"`
	Properties interface{} `json:"properties"`
}

// NewStartupEvent reports a server start.
func (s *MixPanelService) NewStartupEvent() TrackEvent {
	return TrackEvent{
		Event:      strings.Join([]string{eventNamePrefix, "MCP_STARTUP"}, "_"),
		Properties: s.baseProperties(),
	}
}

// NewOSInfoEvent reports the host platform. An mongodb+srv URI is taken
// as a hint that the deployment is Atlas.
func (s *MixPanelService) NewOSInfoEvent(dbURI string) TrackEvent {
	return TrackEvent{
		Event: strings.Join([]string{eventNamePrefix, "OS_INFO"}, "_"),
		Properties: osInfoProperties{
			baseProperties: s.baseProperties(),
			OS:             runtime.GOOS,
			OSArch:         runtime.GOARCH,
			Atlas:          strings.HasPrefix(dbURI, "mongodb+srv://"),
		},
	}
}

// NewToolsEvent reports a single tool invocation.
func (s *MixPanelService) NewToolsEvent(toolUsed string) TrackEvent {
	return TrackEvent{
		Event: strings.Join([]string{eventNamePrefix, "TOOL_USED"}, "_"),
		Properties: toolsProperties{
			baseProperties: s.baseProperties(),
			ToolUsed:       toolUsed,
		},
	}
}

func (s *MixPanelService) baseProperties() baseProperties {
	return baseProperties{
		Token:      s.token,
		DistinctID: s.distinctID,
		Time:       time.Now().UnixMilli(),
		InsertID:   s.newInsertID(),
		Uptime:     time.Now().Unix() - s.startupTime,
	}
}

func (s *MixPanelService) newInsertID() string {
	insertID, err := uuid.NewV6()
	if err != nil {
		s.log.Warn("failed to generate analytics insert id", "error", err)
		return ""
	}
	return insertID.String()
}
