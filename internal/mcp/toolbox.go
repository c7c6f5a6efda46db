package mcp

import (
	"context"
	"encoding/json"

	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// Tool defines the behavior of a single MCP tool. Invoke always returns
// an envelope: failures come back with IsError set, never as a panic or
// a JSON-RPC error.
type Tool interface {
	Descriptor() protocol.ToolDescriptor
	Invoke(ctx context.Context, raw json.RawMessage) protocol.CallResult
}

// Toolbox stores and dispatches tools by name. The catalog is fixed at
// construction and never mutated.
type Toolbox struct {
	order []string
	tools map[string]Tool
}

// NewToolbox constructs a toolbox with the provided tools, preserving
// registration order for tools/list.
func NewToolbox(tools ...Tool) *Toolbox {
	tb := &Toolbox{tools: make(map[string]Tool, len(tools))}
	for _, t := range tools {
		name := t.Descriptor().Name
		if _, exists := tb.tools[name]; !exists {
			tb.order = append(tb.order, name)
		}
		tb.tools[name] = t
	}
	return tb
}

// Describe returns all tool descriptors in registration order.
func (tb *Toolbox) Describe() []protocol.ToolDescriptor {
	list := make([]protocol.ToolDescriptor, 0, len(tb.order))
	for _, name := range tb.order {
		list = append(list, tb.tools[name].Descriptor())
	}
	return list
}

// Call invokes a named tool. Nothing escapes this boundary: an unknown
// name or a panicking tool both come back as error envelopes.
func (tb *Toolbox) Call(ctx context.Context, name string, args json.RawMessage) (result protocol.CallResult) {
	defer func() {
		if r := recover(); r != nil {
			result = FormatError(&ToolError{Message: "unknown error"})
		}
	}()

	tool, ok := tb.tools[name]
	if !ok {
		return FormatError(UnknownTool(name))
	}
	return tool.Invoke(ctx, args)
}
