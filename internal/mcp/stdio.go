package mcp

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/nlrail/ns-mcp-server/internal/protocol"
)

// RunStdio serves MCP over newline-delimited JSON-RPC: one request per
// line on in, one response per line on out. Notifications (requests
// without an id) get no reply. Returns when in reaches EOF or ctx is
// canceled, whichever comes first.
func RunStdio(ctx context.Context, server *Server, in io.Reader, out io.Writer, log *logrus.Entry) error {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)

	lines := make(chan []byte)
	scanErr := make(chan error, 1)
	go func() {
		sc := bufio.NewScanner(in)
		sc.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
		for sc.Scan() {
			line := make([]byte, len(sc.Bytes()))
			copy(line, sc.Bytes())
			lines <- line
		}
		scanErr <- sc.Err()
		close(lines)
	}()

	log.Info("stdio transport ready")
	for {
		select {
		case <-ctx.Done():
			log.Info("interrupt received, closing stdio transport")
			return nil
		case line, ok := <-lines:
			if !ok {
				if err := <-scanErr; err != nil {
					return fmt.Errorf("read stdin: %w", err)
				}
				log.Info("stdin closed, shutting down")
				return nil
			}
			if len(strings.TrimSpace(string(line))) == 0 {
				continue
			}
			if err := serveLine(ctx, server, enc, log, line); err != nil {
				return fmt.Errorf("write stdout: %w", err)
			}
		}
	}
}

func serveLine(ctx context.Context, server *Server, enc *json.Encoder, log *logrus.Entry, line []byte) error {
	var req protocol.Request
	if err := json.Unmarshal(line, &req); err != nil {
		log.WithError(err).Warn("unparseable request line")
		return enc.Encode(WriteError(nil, -32700, "invalid JSON", nil))
	}

	resp, err := server.Handle(ctx, req)
	if err != nil {
		resp = WriteError(req.ID, -32603, "internal error", err)
	}

	// A notification carries no id and expects no response.
	if req.ID == nil && strings.HasPrefix(req.Method, "notifications/") {
		return nil
	}
	return enc.Encode(resp)
}
