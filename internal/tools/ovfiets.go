package tools

import (
	"context"
	"encoding/json"

	"github.com/nlrail/ns-mcp-server/internal/mcp"
	"github.com/nlrail/ns-mcp-server/internal/ns"
	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// ovFietsTool reports OV-fiets rental bicycle availability.
type ovFietsTool struct {
	client *ns.Client
}

// OVFiets constructs the tool.
func OVFiets(c *ns.Client) *ovFietsTool {
	return &ovFietsTool{client: c}
}

func (t *ovFietsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_ovfiets",
		Description: "Get OV-fiets (public transport rental bicycle) availability at a train station.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"stationCode": {Type: "string", Description: "Station code to check OV-fiets availability for (e.g. ASD)"},
			},
			Required: []string{"stationCode"},
		},
	}
}

// validOVFietsArgs is the pure argument predicate for get_ovfiets.
func validOVFietsArgs(v any) bool {
	m, ok := asObject(v)
	if !ok {
		return false
	}
	return reqString(m, "stationCode")
}

func (t *ovFietsTool) Invoke(ctx context.Context, raw json.RawMessage) protocol.CallResult {
	v := decodeArgs(raw)
	if !validOVFietsArgs(v) {
		return mcp.FormatError(mcp.InvalidArguments("get_ovfiets", raw))
	}
	m, _ := asObject(v)

	code, _ := getString(m, "stationCode")
	data, err := t.client.OVFiets(ctx, code)
	if err != nil {
		return mcp.FormatError(err)
	}
	return mcp.FormatSuccess(data)
}
