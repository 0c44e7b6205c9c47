// Package mcpserver exposes the gopoly tool surface as an MCP server over
// stdio or streamable HTTP.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/njchilds90/gopoly"
	"golang.org/x/text/language"
)

const shutdownTimeout = 5 * time.Second

// NewServer builds an MCP server with every gopoly tool registered.
func NewServer(cfg Config) (*mcp.Server, error) {
	if cfg.Locale != "" {
		if _, err := language.Parse(cfg.Locale); err != nil {
			return nil, fmt.Errorf("locale %q: %w", cfg.Locale, err)
		}
	}
	server := mcp.NewServer(&mcp.Implementation{Name: "gopoly", Version: gopoly.Version}, nil)
	if err := registerTools(server, cfg.Locale); err != nil {
		return nil, err
	}
	return server, nil
}

// Run serves MCP on the configured transport and blocks until ctx ends.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}
	switch cfg.Transport {
	case TransportStdio, TransportHTTP:
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}

	server, err := NewServer(cfg)
	if err != nil {
		return err
	}
	if cfg.Transport == TransportHTTP {
		return runHTTP(ctx, server, cfg.HTTPAddr)
	}
	return serve(ctx, server, &mcp.StdioTransport{})
}

// serve runs server on transport. Context cancellation is a clean stop.
func serve(ctx context.Context, server *mcp.Server, transport mcp.Transport) error {
	err := server.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

func runHTTP(ctx context.Context, server *mcp.Server, addr string) error {
	if addr == "" {
		addr = "localhost:8081"
	}

	mux := http.NewServeMux()
	mux.Handle("/mcp", mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server { return server }, nil))
	mux.HandleFunc("/mcp/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{
			"status": "ok",
			"time":   time.Now().UTC().Format(time.RFC3339),
		})
	})

	httpServer := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Printf("Starting MCP HTTP server on %s", addr)
	errChan := make(chan error, 1)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Printf("Shutting down MCP HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown HTTP server: %w", err)
		}
		return nil
	case err := <-errChan:
		return fmt.Errorf("HTTP server error: %w", err)
	}
}
