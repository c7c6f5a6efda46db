package tools

import (
	"github.com/nlrail/ns-mcp-server/internal/ns"
	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// Departure and arrival boards share one argument shape: a station given
// as a short code or name, or as a UIC registry code, plus paging and
// language options.

const (
	defaultMaxJourneys = 40
	defaultLang        = "nl"
)

func boardSchema(direction string) *protocol.JSONSchema {
	return &protocol.JSONSchema{
		Type: "object",
		Properties: map[string]protocol.JSONSchema{
			"station": {
				Type:        "string",
				Description: "NS station code or name (e.g. ASD for Amsterdam Centraal); provide this or uicCode",
			},
			"uicCode": {
				Type:        "string",
				Description: "UIC code of the station (e.g. 8400058); provide this or station",
			},
			"dateTime": {
				Type:        "string",
				Description: "RFC 3339 date-time to list " + direction + " from; defaults to now",
			},
			"maxJourneys": {
				Type:        "integer",
				Description: "Number of " + direction + " to return",
				Minimum:     num(1),
				Maximum:     num(100),
				Default:     defaultMaxJourneys,
			},
			"lang": {
				Type:        "string",
				Description: "Language for localized fields",
				Enum:        []string{"nl", "en"},
				Default:     defaultLang,
			},
		},
		Required: []string{},
	}
}

// validBoardArgs is the pure argument predicate shared by get_departures
// and get_arrivals. At least one of station and uicCode must be present,
// and every present field must be well typed.
func validBoardArgs(v any) bool {
	m, ok := asObject(v)
	if !ok {
		return false
	}
	if !hasAny(m, "station", "uicCode") {
		return false
	}
	return optString(m, "station") && optString(m, "uicCode") &&
		optString(m, "dateTime") &&
		optIntIn(m, "maxJourneys", 1, 100) &&
		optEnum(m, "lang", "nl", "en")
}

// buildBoardParams lifts a validated bag into typed parameters, applying
// the documented defaults for absent fields.
func buildBoardParams(m map[string]any) ns.BoardParams {
	p := ns.BoardParams{MaxJourneys: defaultMaxJourneys, Lang: defaultLang}
	if s, ok := getString(m, "station"); ok {
		p.Station = s
	}
	if s, ok := getString(m, "uicCode"); ok {
		p.UICCode = s
	}
	if s, ok := getString(m, "dateTime"); ok {
		p.DateTime = s
	}
	if n, ok := getInt(m, "maxJourneys"); ok {
		p.MaxJourneys = n
	}
	if s, ok := getString(m, "lang"); ok {
		p.Lang = s
	}
	return p
}
