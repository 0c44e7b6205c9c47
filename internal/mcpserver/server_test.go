package mcpserver

import (
	"context"
	"encoding/json"
	"flag"
	"strings"
	"testing"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

func connect(t *testing.T, cfg Config) *mcp.ClientSession {
	t.Helper()
	server, err := NewServer(cfg)
	if err != nil {
		t.Fatalf("new server: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	serverTransport, clientTransport := mcp.NewInMemoryTransports()
	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("connect server: %v", err)
	}
	t.Cleanup(func() { _ = serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	t.Cleanup(func() { _ = session.Close() })
	return session
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	res, err := session.CallTool(ctx, &mcp.CallToolParams{Name: name, Arguments: args})
	if err != nil {
		t.Fatalf("call %s: %v", name, err)
	}
	return res
}

func decodeOutput(t *testing.T, content any) ToolOutput {
	t.Helper()
	data, err := json.Marshal(content)
	if err != nil {
		t.Fatalf("marshal structured content: %v", err)
	}
	var out ToolOutput
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("unmarshal structured content: %v", err)
	}
	return out
}

func TestListToolsRegistersEveryTool(t *testing.T) {
	session := connect(t, Config{})
	res, err := session.ListTools(context.Background(), nil)
	if err != nil {
		t.Fatalf("list tools: %v", err)
	}
	names := map[string]bool{}
	for _, tool := range res.Tools {
		names[tool.Name] = true
	}
	for _, want := range []string{
		"simplify", "add", "subtract", "multiply", "divide", "power", "reduce",
		"mod", "derivative", "second_derivative", "substitute", "evaluate", "variables",
	} {
		if !names[want] {
			t.Errorf("expected tool %q to be registered", want)
		}
	}
}

func TestToolCalls(t *testing.T) {
	session := connect(t, Config{})
	tests := []struct {
		name string
		tool string
		args map[string]any
		want string
	}{
		{"simplify", "simplify", map[string]any{"expr": "x+x+1-1"}, "2x"},
		{"multiply", "multiply", map[string]any{"a": "x+1", "b": "x-1"}, "x²-1"},
		{"divide exact", "divide", map[string]any{"a": "x²-1", "b": "x+1"}, "x-1"},
		{"power", "power", map[string]any{"expr": "x+1", "n": 2}, "x²+2x+1"},
		{"derivative", "derivative", map[string]any{"expr": "2.1ac³", "var": "c"}, "6.3ac²"},
		{"self substitution", "substitute", map[string]any{"expr": "x²", "var": "x", "value": "x+1"}, "x²+2x+1"},
		{"evaluate", "evaluate", map[string]any{"expr": "x²+y", "bindings": map[string]any{"x": 3, "y": 1}}, "10"},
		{"reduce", "mod", map[string]any{"expr": "x²+1", "divisor": "x+1"}, "2"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, session, tt.tool, tt.args)
			if res.IsError {
				t.Fatalf("expected success, got tool error: %+v", res.Content)
			}
			out := decodeOutput(t, res.StructuredContent)
			if out.Text != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, out.Text)
			}
		})
	}
}

func TestToolCallLocale(t *testing.T) {
	session := connect(t, Config{Locale: "de"})
	res := callTool(t, session, "simplify", map[string]any{"expr": "2.1ac³"})
	if res.IsError {
		t.Fatalf("expected success, got tool error: %+v", res.Content)
	}
	if out := decodeOutput(t, res.StructuredContent); out.Text != "2,1ac³" {
		t.Fatalf("expected German rendering, got %q", out.Text)
	}

	res = callTool(t, session, "simplify", map[string]any{"expr": "2.1ac³", "locale": "en"})
	if out := decodeOutput(t, res.StructuredContent); out.Text != "2.1ac³" {
		t.Fatalf("expected per-call locale to win, got %q", out.Text)
	}
}

func TestToolCallErrors(t *testing.T) {
	session := connect(t, Config{})
	tests := []struct {
		name string
		tool string
		args map[string]any
	}{
		{"division by zero", "divide", map[string]any{"a": "x", "b": "0"}},
		{"syntax", "simplify", map[string]any{"expr": "x+*"}},
		{"unbound", "evaluate", map[string]any{"expr": "x+y", "bindings": map[string]any{"x": 1}}},
		{"reserved", "derivative", map[string]any{"expr": "x", "var": "$"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := callTool(t, session, tt.tool, tt.args)
			if !res.IsError {
				t.Fatalf("expected tool error for %s", tt.name)
			}
		})
	}
}

func TestNewServerRejectsBadLocale(t *testing.T) {
	if _, err := NewServer(Config{Locale: "not a locale!"}); err == nil {
		t.Fatal("expected error for invalid locale")
	}
}

func TestServeStopsOnCancel(t *testing.T) {
	server, err := NewServer(Config{})
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	serverTransport, clientTransport := mcp.NewInMemoryTransports()

	serveErr := make(chan error, 1)
	go func() { serveErr <- serve(ctx, server, serverTransport) }()

	client := mcp.NewClient(&mcp.Implementation{Name: "client", Version: "v0.0.1"}, nil)
	session, err := client.Connect(context.Background(), clientTransport, nil)
	if err != nil {
		t.Fatalf("connect client: %v", err)
	}
	defer session.Close()

	cancel()
	select {
	case err := <-serveErr:
		if err != nil {
			t.Fatalf("serve returned error: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("serve did not stop after cancel")
	}
}

func TestRunUnsupportedTransport(t *testing.T) {
	err := Run(context.Background(), Config{Transport: "websocket"})
	if err == nil {
		t.Fatal("expected error for unsupported transport")
	}
	if !strings.Contains(err.Error(), "not supported") {
		t.Errorf("expected 'not supported' in error, got: %v", err)
	}
}

func TestParseConfigDefaults(t *testing.T) {
	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "localhost:8081" {
		t.Fatalf("expected default http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != TransportStdio {
		t.Fatalf("expected default transport stdio, got %q", cfg.Transport)
	}
}

func TestParseConfigOverrides(t *testing.T) {
	t.Setenv("GOPOLY_MCP_HTTP_ADDR", "env-http")
	t.Setenv("GOPOLY_LOCALE", "fr")

	fs := flag.NewFlagSet("mcp", flag.ContinueOnError)
	cfg, err := ParseConfig(fs, []string{"-transport", "http"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.HTTPAddr != "env-http" {
		t.Fatalf("expected env http addr, got %q", cfg.HTTPAddr)
	}
	if cfg.Transport != TransportHTTP {
		t.Fatalf("expected transport http, got %q", cfg.Transport)
	}
	if cfg.Locale != "fr" {
		t.Fatalf("expected locale fr, got %q", cfg.Locale)
	}
}
