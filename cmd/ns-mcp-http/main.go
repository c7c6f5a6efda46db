package main

import (
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/nlrail/ns-mcp-server/internal/app"
	"github.com/nlrail/ns-mcp-server/internal/config"
	"github.com/nlrail/ns-mcp-server/internal/logging"
)

func main() {
	_ = godotenv.Load()

	httpAddr := flag.String("http", ":3333", "MCP HTTP listen address (e.g., :3333)")
	flag.Parse()

	cfg, err := config.FromEnv()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	logger, cleanup, err := logging.New("ns-mcp-http")
	if err != nil {
		log.Fatalf("logging setup error: %v", err)
	}
	defer cleanup()

	log.Printf("MCP HTTP server listening on %s", *httpAddr)
	if err := app.RunHTTP(cfg, *httpAddr, logger); err != nil {
		log.Fatalf("MCP server error: %v", err)
	}
}
