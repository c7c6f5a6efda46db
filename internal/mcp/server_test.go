package mcp

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"

	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

func testLogger() *logrus.Entry {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l.WithField("component", "test")
}

func testServer() *Server {
	return NewServer(NewToolbox(okTool("get_departures"), okTool("get_arrivals")))
}

func handle(t *testing.T, s *Server, method, params string) protocol.Response {
	t.Helper()
	req := protocol.Request{JSONRPC: "2.0", ID: "1", Method: method}
	if params != "" {
		req.Params = json.RawMessage(params)
	}
	resp, err := s.Handle(context.Background(), req)
	if err != nil {
		t.Fatalf("%s: unexpected handler error: %v", method, err)
	}
	return resp
}

func TestHandleInitialize(t *testing.T) {
	resp := handle(t, testServer(), "initialize", "")
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(map[string]any)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	if result["protocolVersion"] != protocolVersion {
		t.Fatalf("unexpected protocol version: %v", result["protocolVersion"])
	}
	info, ok := result["serverInfo"].(map[string]string)
	if !ok || info["name"] != "ns-mcp-server" {
		t.Fatalf("unexpected serverInfo: %v", result["serverInfo"])
	}
}

func TestHandleToolsList(t *testing.T) {
	resp := handle(t, testServer(), "tools/list", "")
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	list, ok := resp.Result.(protocol.ListResult)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	if len(list.Tools) != 2 || list.Tools[0].Name != "get_departures" || list.Tools[1].Name != "get_arrivals" {
		t.Fatalf("unexpected tool list: %+v", list.Tools)
	}
}

func TestHandleToolsCall(t *testing.T) {
	resp := handle(t, testServer(), "tools/call", `{"name":"get_departures","arguments":{}}`)
	if resp.Error != nil {
		t.Fatalf("unexpected error: %+v", resp.Error)
	}
	result, ok := resp.Result.(protocol.CallResult)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	if result.IsError {
		t.Fatalf("unexpected error envelope: %+v", result)
	}
}

func TestHandleToolsCallUnknownTool(t *testing.T) {
	resp := handle(t, testServer(), "tools/call", `{"name":"get_unicorn","arguments":{"x":1}}`)
	if resp.Error != nil {
		t.Fatalf("unknown tool must not be a JSON-RPC error: %+v", resp.Error)
	}
	result, ok := resp.Result.(protocol.CallResult)
	if !ok {
		t.Fatalf("unexpected result type %T", resp.Result)
	}
	if !result.IsError || !strings.Contains(result.Content[0].Text, "get_unicorn") {
		t.Fatalf("expected unknown-tool envelope, got %+v", result)
	}
}

func TestHandleToolsCallRequiresName(t *testing.T) {
	resp := handle(t, testServer(), "tools/call", `{"arguments":{}}`)
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Fatalf("expected -32602, got %+v", resp.Error)
	}
}

func TestHandleMethodNotFound(t *testing.T) {
	resp := handle(t, testServer(), "resources/list", "")
	if resp.Error == nil || resp.Error.Code != -32601 {
		t.Fatalf("expected -32601, got %+v", resp.Error)
	}
}

func TestHandleRejectsBadVersion(t *testing.T) {
	resp, err := testServer().Handle(context.Background(), protocol.Request{JSONRPC: "1.0", ID: "1", Method: "ping"})
	if err != nil {
		t.Fatalf("unexpected handler error: %v", err)
	}
	if resp.Error == nil || resp.Error.Code != -32600 {
		t.Fatalf("expected -32600, got %+v", resp.Error)
	}
}

func TestRouterServesJSONRPC(t *testing.T) {
	srv := httptest.NewServer(Router(testServer(), testLogger()))
	defer srv.Close()

	resp, err := http.Post(srv.URL+"/", "application/json", strings.NewReader(`{"jsonrpc":"2.0","id":1,"method":"ping"}`))
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var rpcResp protocol.Response
	if err := json.NewDecoder(resp.Body).Decode(&rpcResp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if rpcResp.Error != nil {
		t.Fatalf("unexpected error: %+v", rpcResp.Error)
	}
}

func TestRouterHealth(t *testing.T) {
	srv := httptest.NewServer(Router(testServer(), testLogger()))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
}
