package tools

import (
	"context"
	"encoding/json"

	"github.com/nlrail/ns-mcp-server/internal/mcp"
	"github.com/nlrail/ns-mcp-server/internal/ns"
	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// arrivalsTool returns the live arrival board for a station.
type arrivalsTool struct {
	client *ns.Client
}

// Arrivals constructs the tool.
func Arrivals(c *ns.Client) *arrivalsTool {
	return &arrivalsTool{client: c}
}

func (t *arrivalsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_arrivals",
		Description: "Get real-time arrival information for a train station, including platform numbers, delays, origin and status.",
		InputSchema: boardSchema("arrivals"),
	}
}

func (t *arrivalsTool) Invoke(ctx context.Context, raw json.RawMessage) protocol.CallResult {
	v := decodeArgs(raw)
	if !validBoardArgs(v) {
		return mcp.FormatError(mcp.InvalidArguments("get_arrivals", raw))
	}
	m, _ := asObject(v)

	data, err := t.client.Arrivals(ctx, buildBoardParams(m))
	if err != nil {
		return mcp.FormatError(err)
	}
	return mcp.FormatSuccess(data)
}
