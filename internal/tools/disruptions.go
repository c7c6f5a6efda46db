package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/nlrail/ns-mcp-server/internal/mcp"
	"github.com/nlrail/ns-mcp-server/internal/ns"
	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// disruptionsTool lists current and planned disruptions on the network.
type disruptionsTool struct {
	client *ns.Client
}

// Disruptions constructs the tool.
func Disruptions(c *ns.Client) *disruptionsTool {
	return &disruptionsTool{client: c}
}

func (t *disruptionsTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_disruptions",
		Description: "Get comprehensive information about current and planned disruptions on the Dutch railway network, including maintenance windows and unplanned outages.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"isActive": {
					Type:        "boolean",
					Description: "Filter to active disruptions only; the strings \"true\" and \"false\" are accepted as well",
					Default:     true,
				},
				"type": {
					Type:        "string",
					Description: "Restrict to one disruption type",
					Enum:        []string{"MAINTENANCE", "DISRUPTION"},
				},
			},
			Required: []string{},
		},
	}
}

// normalizeIsActive coerces a non-boolean isActive value by comparing it
// case-insensitively to the literal "true". Runs once, before the
// validator. Only this tool shapes a boolean this way; every other
// boolean argument must arrive as an actual boolean.
func normalizeIsActive(m map[string]any) {
	v, ok := m["isActive"]
	if !ok {
		return
	}
	if _, isBool := v.(bool); isBool {
		return
	}
	m["isActive"] = strings.EqualFold(fmt.Sprint(v), "true")
}

// validDisruptionsArgs is the pure argument predicate for get_disruptions.
func validDisruptionsArgs(v any) bool {
	m, ok := asObject(v)
	if !ok {
		return false
	}
	return optBool(m, "isActive") && optEnum(m, "type", "MAINTENANCE", "DISRUPTION")
}

func (t *disruptionsTool) Invoke(ctx context.Context, raw json.RawMessage) protocol.CallResult {
	v := decodeArgs(raw)
	if m, ok := asObject(v); ok {
		normalizeIsActive(m)
	}
	if !validDisruptionsArgs(v) {
		return mcp.FormatError(mcp.InvalidArguments("get_disruptions", raw))
	}
	m, _ := asObject(v)

	params := ns.DisruptionsParams{IsActive: true}
	if b, ok := getBool(m, "isActive"); ok {
		params.IsActive = b
	}
	if s, ok := getString(m, "type"); ok {
		params.Type = s
	}

	data, err := t.client.Disruptions(ctx, params)
	if err != nil {
		return mcp.FormatError(err)
	}
	return mcp.FormatSuccess(data)
}
