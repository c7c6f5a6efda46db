package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"github.com/nlrail/ns-mcp-server/internal/app"
	"github.com/nlrail/ns-mcp-server/internal/config"
	"github.com/nlrail/ns-mcp-server/internal/logging"
	"github.com/nlrail/ns-mcp-server/internal/mcp"
)

// Combined runner: serves the MCP HTTP transport with graceful shutdown
// on interrupt. The stdio transport lives in cmd/ns-mcp.
func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", envOr("MCP_HTTP_ADDR", ":3333"), "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger, cleanup, err := logging.New("ns-mcp-server")
	if err != nil {
		log.Fatalf("logging setup error: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	srv := &http.Server{
		Addr:              *httpAddr,
		Handler:           mcp.Router(app.NewMCPServer(cfg), logger),
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Infof("MCP HTTP server listening on %s", *httpAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutCtx)
	})

	if err := g.Wait(); err != nil {
		logger.WithError(err).Error("server exited with error")
		log.Fatalf("MCP server error: %v", err)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
