// Command mcp-server exposes the gopoly tools over MCP.
//
// Usage:
//
//	mcp-server -transport stdio
//	mcp-server -transport http -http-addr localhost:8081
//
// The HTTP transport serves the streamable MCP endpoint on /mcp and a
// liveness check on /mcp/health.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/njchilds90/gopoly/internal/mcpserver"
)

func main() {
	cfg, err := mcpserver.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix("[MCP] ")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("gopoly MCP server starting (transport=%s)", cfg.Transport)
	if err := mcpserver.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve MCP: %v", err)
	}
}
