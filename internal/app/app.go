package app

import (
	"context"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/nlrail/ns-mcp-server/internal/config"
	"github.com/nlrail/ns-mcp-server/internal/mcp"
	"github.com/nlrail/ns-mcp-server/internal/ns"
	"github.com/nlrail/ns-mcp-server/internal/tools"
)

// NewToolbox builds the NS MCP toolbox: every tool shares one upstream
// client constructed from the process configuration.
func NewToolbox(cfg *config.Config) *mcp.Toolbox {
	client := ns.New(cfg.BaseURL, cfg.APIKey, nil)
	return mcp.NewToolbox(
		// Disruption and journey planning tools
		tools.Disruptions(client),
		tools.TravelAdvice(client),

		// Station board tools
		tools.Departures(client),
		tools.Arrivals(client),

		// Station and facility tools
		tools.OVFiets(client),
		tools.StationInfo(client),

		// Local-only tools
		tools.CurrentTime(),
	)
}

// NewMCPServer constructs an MCP server with the full toolbox.
func NewMCPServer(cfg *config.Config) *mcp.Server {
	return mcp.NewServer(NewToolbox(cfg))
}

// RunStdio serves MCP over the given stdio streams until EOF or
// cancellation.
func RunStdio(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, log *logrus.Entry) error {
	return mcp.RunStdio(ctx, NewMCPServer(cfg), in, out, log)
}

// RunHTTP starts the MCP HTTP server on the provided address.
func RunHTTP(cfg *config.Config, addr string, log *logrus.Entry) error {
	return mcp.RunHTTP(NewMCPServer(cfg), addr, log)
}
