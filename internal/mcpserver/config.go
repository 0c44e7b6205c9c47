package mcpserver

import (
	"flag"

	"github.com/njchilds90/gopoly/internal/config"
)

const (
	TransportStdio = "stdio"
	TransportHTTP  = "http"
)

// Config holds MCP server configuration.
type Config struct {
	HTTPAddr  string `env:"GOPOLY_MCP_HTTP_ADDR" envDefault:"localhost:8081"`
	Transport string `env:"GOPOLY_MCP_TRANSPORT" envDefault:"stdio"`
	// Locale is the default rendering locale for tool results, e.g. "de".
	Locale string `env:"GOPOLY_LOCALE"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	fs.StringVar(&cfg.Locale, "locale", cfg.Locale, "Default locale for rendered results")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
