package mcp

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

func TestRunStdioServesUntilEOF(t *testing.T) {
	in := strings.NewReader(strings.Join([]string{
		`{"jsonrpc":"2.0","id":1,"method":"initialize"}`,
		`{"jsonrpc":"2.0","method":"notifications/initialized"}`,
		`{"jsonrpc":"2.0","id":2,"method":"tools/list"}`,
		`not json at all`,
		``,
	}, "\n") + "\n")
	var out bytes.Buffer

	if err := RunStdio(context.Background(), testServer(), in, &out, testLogger()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var responses []protocol.Response
	dec := json.NewDecoder(&out)
	for {
		var resp protocol.Response
		if err := dec.Decode(&resp); err == io.EOF {
			break
		} else if err != nil {
			t.Fatalf("decode output: %v", err)
		}
		responses = append(responses, resp)
	}

	// initialize, tools/list, parse error; the notification gets no reply.
	if len(responses) != 3 {
		t.Fatalf("expected 3 responses, got %d: %+v", len(responses), responses)
	}
	if responses[0].Error != nil || responses[1].Error != nil {
		t.Fatalf("unexpected errors: %+v", responses)
	}
	if responses[2].Error == nil || responses[2].Error.Code != -32700 {
		t.Fatalf("expected parse error last, got %+v", responses[2])
	}
}

func TestRunStdioStopsOnCancel(t *testing.T) {
	blocked, _ := io.Pipe() // never delivers a line
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() {
		done <- RunStdio(ctx, testServer(), blocked, io.Discard, testLogger())
	}()

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected clean shutdown, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("stdio loop did not stop on cancellation")
	}
}
