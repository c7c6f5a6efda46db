package tools

import (
	"context"
	"encoding/json"

	"github.com/nlrail/ns-mcp-server/internal/mcp"
	"github.com/nlrail/ns-mcp-server/internal/ns"
	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

const defaultStationLimit = 10

// stationInfoTool searches stations by name or code.
type stationInfoTool struct {
	client *ns.Client
}

// StationInfo constructs the tool.
func StationInfo(c *ns.Client) *stationInfoTool {
	return &stationInfoTool{client: c}
}

func (t *stationInfoTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{
		Name:        "get_station_info",
		Description: "Search train stations by name or code and get detailed station information.",
		InputSchema: &protocol.JSONSchema{
			Type: "object",
			Properties: map[string]protocol.JSONSchema{
				"query": {Type: "string", Description: "Station name or code to search for"},
				"includeNonPlannableStations": {
					Type:        "boolean",
					Description: "Include stations that cannot be planned to or from (e.g. freight yards)",
					Default:     false,
				},
				"limit": {
					Type:        "integer",
					Description: "Maximum number of stations to return",
					Minimum:     num(1),
					Maximum:     num(50),
					Default:     defaultStationLimit,
				},
			},
			Required: []string{"query"},
		},
	}
}

// validStationInfoArgs is the pure argument predicate for get_station_info.
func validStationInfoArgs(v any) bool {
	m, ok := asObject(v)
	if !ok {
		return false
	}
	return reqString(m, "query") &&
		optBool(m, "includeNonPlannableStations") &&
		optIntIn(m, "limit", 1, 50)
}

func (t *stationInfoTool) Invoke(ctx context.Context, raw json.RawMessage) protocol.CallResult {
	v := decodeArgs(raw)
	if !validStationInfoArgs(v) {
		return mcp.FormatError(mcp.InvalidArguments("get_station_info", raw))
	}
	m, _ := asObject(v)

	params := ns.StationSearchParams{Limit: defaultStationLimit}
	params.Query, _ = getString(m, "query")
	if b, ok := getBool(m, "includeNonPlannableStations"); ok {
		params.IncludeNonPlannable = b
	}
	if n, ok := getInt(m, "limit"); ok {
		params.Limit = n
	}

	data, err := t.client.Stations(ctx, params)
	if err != nil {
		return mcp.FormatError(err)
	}
	return mcp.FormatSuccess(data)
}
