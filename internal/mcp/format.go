package mcp

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/nlrail/ns-mcp-server/internal/ns"
	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// ToolError is a dispatch-level failure: an unknown tool name or an
// argument bag that failed a tool's validator.
type ToolError struct {
	Message string
}

func (e *ToolError) Error() string { return e.Message }

// UnknownTool builds the error for a name outside the catalog.
func UnknownTool(name string) *ToolError {
	return &ToolError{Message: fmt.Sprintf("unknown tool: %s", name)}
}

// InvalidArguments builds the error for an argument bag rejected by a
// tool's validator, echoing the offending arguments when there are any.
func InvalidArguments(tool string, raw json.RawMessage) *ToolError {
	msg := fmt.Sprintf("invalid arguments for %s", tool)
	if len(raw) > 0 {
		msg += ": " + string(raw)
	}
	return &ToolError{Message: msg}
}

// FormatSuccess wraps data in a text envelope holding its pretty-printed
// JSON serialization.
func FormatSuccess(data any) protocol.CallResult {
	pretty, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return FormatError(fmt.Errorf("encode result: %w", err))
	}
	return protocol.CallResult{Content: []protocol.ContentPart{{Type: "text", Text: string(pretty)}}}
}

// FormatError converts any failure into an error envelope. Dispatch
// errors pass their message through, upstream failures get an NS API
// prefix, anything else degrades to its message or a generic fallback.
// This function never fails.
func FormatError(err error) protocol.CallResult {
	msg := "unknown error"

	var toolErr *ToolError
	var apiErr *ns.APIError
	switch {
	case errors.As(err, &toolErr):
		msg = toolErr.Message
	case errors.As(err, &apiErr):
		msg = "NS API error: " + apiErr.Error()
	case err != nil:
		msg = err.Error()
	}

	return protocol.CallResult{
		IsError: true,
		Content: []protocol.ContentPart{{Type: "text", Text: msg}},
	}
}
