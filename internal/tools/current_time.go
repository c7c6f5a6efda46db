package tools

import (
	"context"
	"encoding/json"
	"time"

	"github.com/nlrail/ns-mcp-server/internal/mcp"
	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// currentTimeZone is the fixed zone label reported with every reading.
const currentTimeZone = "Europe/Amsterdam"

// currentTimeTool reports the current time. It is the one tool without
// an upstream collaborator: no network call is ever made.
type currentTimeTool struct {
	loc *time.Location
	now func() time.Time
}

// CurrentTime constructs the tool.
func CurrentTime() *currentTimeTool {
	loc, err := time.LoadLocation(currentTimeZone)
	if err != nil {
		loc = time.Local
	}
	return &currentTimeTool{loc: loc, now: time.Now}
}

func (t *currentTimeTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_current_time_in_rfc3339",
		Description: "Get the current server date and time in RFC 3339 format, in the Europe/Amsterdam timezone used by the Dutch railway.",
		InputSchema: &protocol.JSONSchema{
			Type:       "object",
			Properties: map[string]protocol.JSONSchema{},
			Required:   []string{},
		},
	}
}

func (t *currentTimeTool) Invoke(_ context.Context, _ json.RawMessage) protocol.CallResult {
	return mcp.FormatSuccess(map[string]string{
		"currentTime": t.now().In(t.loc).Format(time.RFC3339),
		"timezone":    currentTimeZone,
	})
}
