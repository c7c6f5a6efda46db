package tools

import (
	"context"
	"encoding/json"

	"github.com/nlrail/ns-mcp-server/internal/mcp"
	"github.com/nlrail/ns-mcp-server/internal/ns"
	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// travelAdviceTool plans journeys between two stations.
type travelAdviceTool struct {
	client *ns.Client
}

// TravelAdvice constructs the tool.
func TravelAdvice(c *ns.Client) *travelAdviceTool {
	return &travelAdviceTool{client: c}
}

func (t *travelAdviceTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_travel_advice",
		Description: "Get travel routes between two train stations, including transfers, platforms and real-time updates.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"fromStation": {Type: "string", Description: "Name or code of the departure station"},
				"toStation":   {Type: "string", Description: "Name or code of the destination station"},
				"dateTime": {
					Type:        "string",
					Description: "RFC 3339 date-time to plan around; defaults to now",
				},
				"searchForArrival": {
					Type:        "boolean",
					Description: "Treat dateTime as the desired arrival time instead of departure",
					Default:     false,
				},
			},
			Required: []string{"fromStation", "toStation"},
		},
	}
}

// validTravelAdviceArgs is the pure argument predicate for get_travel_advice.
func validTravelAdviceArgs(v any) bool {
	m, ok := asObject(v)
	if !ok {
		return false
	}
	return reqString(m, "fromStation") && reqString(m, "toStation") &&
		optString(m, "dateTime") && optBool(m, "searchForArrival")
}

func (t *travelAdviceTool) Invoke(ctx context.Context, raw json.RawMessage) protocol.CallResult {
	v := decodeArgs(raw)
	if !validTravelAdviceArgs(v) {
		return mcp.FormatError(mcp.InvalidArguments("get_travel_advice", raw))
	}
	m, _ := asObject(v)

	params := ns.TripParams{}
	params.FromStation, _ = getString(m, "fromStation")
	params.ToStation, _ = getString(m, "toStation")
	if s, ok := getString(m, "dateTime"); ok {
		params.DateTime = s
	}
	if b, ok := getBool(m, "searchForArrival"); ok {
		params.SearchForArrival = b
	}

	data, err := t.client.TravelAdvice(ctx, params)
	if err != nil {
		return mcp.FormatError(err)
	}
	return mcp.FormatSuccess(data)
}
