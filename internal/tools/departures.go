package tools

import (
	"context"
	"encoding/json"

	"github.com/nlrail/ns-mcp-server/internal/mcp"
	"github.com/nlrail/ns-mcp-server/internal/ns"
	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// departuresTool returns the live departure board for a station.
type departuresTool struct {
	client *ns.Client
}

// Departures constructs the tool.
func Departures(c *ns.Client) *departuresTool {
	return &departuresTool{client: c}
}

func (t *departuresTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_departures",
		Description: "Get real-time departure information for a train station, including platform numbers, delays, route details and status.",
		InputSchema: boardSchema("departures"),
	}
}

func (t *departuresTool) Invoke(ctx context.Context, raw json.RawMessage) protocol.CallResult {
	v := decodeArgs(raw)
	if !validBoardArgs(v) {
		return mcp.FormatError(mcp.InvalidArguments("get_departures", raw))
	}
	m, _ := asObject(v)

	data, err := t.client.Departures(ctx, buildBoardParams(m))
	if err != nil {
		return mcp.FormatError(err)
	}
	return mcp.FormatSuccess(data)
}
