package mcp

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// stubTool is a minimal Tool for dispatch tests.
type stubTool struct {
	name   string
	invoke func(ctx context.Context, raw json.RawMessage) protocol.CallResult
}

func (s *stubTool) Descriptor() protocol.ToolDescriptor {
	return protocol.ToolDescriptor{Name: s.name, Description: "stub"}
}

func (s *stubTool) Invoke(ctx context.Context, raw json.RawMessage) protocol.CallResult {
	return s.invoke(ctx, raw)
}

func okTool(name string) *stubTool {
	return &stubTool{name: name, invoke: func(context.Context, json.RawMessage) protocol.CallResult {
		return FormatSuccess(map[string]any{"tool": name})
	}}
}

func TestDescribePreservesOrder(t *testing.T) {
	tb := NewToolbox(okTool("get_disruptions"), okTool("get_travel_advice"), okTool("get_departures"))

	descs := tb.Describe()
	want := []string{"get_disruptions", "get_travel_advice", "get_departures"}
	if len(descs) != len(want) {
		t.Fatalf("expected %d descriptors, got %d", len(want), len(descs))
	}
	for i, name := range want {
		if descs[i].Name != name {
			t.Fatalf("descriptor %d: expected %s got %s", i, name, descs[i].Name)
		}
	}
}

func TestCallUnknownTool(t *testing.T) {
	tb := NewToolbox(okTool("get_departures"))

	res := tb.Call(context.Background(), "get_unicorn", json.RawMessage(`{"whatever":1}`))
	if !res.IsError {
		t.Fatalf("expected error envelope, got %+v", res)
	}
	if !strings.Contains(res.Content[0].Text, "unknown tool: get_unicorn") {
		t.Fatalf("expected unknown-tool message, got %q", res.Content[0].Text)
	}
}

func TestCallDispatchesByName(t *testing.T) {
	tb := NewToolbox(okTool("a"), okTool("b"))

	res := tb.Call(context.Background(), "b", nil)
	if res.IsError {
		t.Fatalf("unexpected error envelope: %+v", res)
	}
	if !strings.Contains(res.Content[0].Text, `"b"`) {
		t.Fatalf("wrong tool dispatched: %q", res.Content[0].Text)
	}

	// Names match case-sensitively.
	if res := tb.Call(context.Background(), "B", nil); !res.IsError {
		t.Fatalf("expected case-sensitive lookup to miss, got %+v", res)
	}
}

func TestCallRecoversPanic(t *testing.T) {
	panicky := &stubTool{name: "boom", invoke: func(context.Context, json.RawMessage) protocol.CallResult {
		panic("tool exploded")
	}}
	tb := NewToolbox(panicky)

	res := tb.Call(context.Background(), "boom", nil)
	if !res.IsError {
		t.Fatalf("expected error envelope after panic, got %+v", res)
	}
	if res.Content[0].Text != "unknown error" {
		t.Fatalf("expected generic message, got %q", res.Content[0].Text)
	}
}
