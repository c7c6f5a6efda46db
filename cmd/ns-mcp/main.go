package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/nlrail/ns-mcp-server/internal/app"
	"github.com/nlrail/ns-mcp-server/internal/config"
	"github.com/nlrail/ns-mcp-server/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger, cleanup, err := logging.New("ns-mcp")
	if err != nil {
		log.Fatalf("logging setup error: %v", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunStdio(ctx, cfg, os.Stdin, os.Stdout, logger); err != nil {
		logger.WithError(err).Error("stdio transport failed")
		log.Fatalf("stdio transport error: %v", err)
	}
}
