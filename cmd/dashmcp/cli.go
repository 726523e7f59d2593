package main

import (
	"log/slog"
	"time"
)

// CLI defines the command-line flags. Every flag can also be set through
// a DASH_MCP_* environment variable, which is how MCP client configs
// usually pass settings.
type CLI struct {
	StatusFile    string        `help:"Path to Dash's API server status file. Defaults to the well-known location under ~/Library/Application Support." env:"DASH_MCP_STATUS_FILE"`
	HealthTimeout time.Duration `help:"Timeout for health probes against the Dash API server." default:"5s" env:"DASH_MCP_HEALTH_TIMEOUT"`
	DataTimeout   time.Duration `help:"Timeout for data requests (list, search, enable FTS)." default:"30s" env:"DASH_MCP_DATA_TIMEOUT"`
	FetchTimeout  time.Duration `help:"Timeout for documentation page fetches." default:"30s" env:"DASH_MCP_FETCH_TIMEOUT"`
	LaunchSettle  time.Duration `help:"How long to wait for Dash to start after launching it." default:"4s" env:"DASH_MCP_LAUNCH_SETTLE"`
	EnableSettle  time.Duration `help:"How long to wait after enabling the API server preference." default:"2s" env:"DASH_MCP_ENABLE_SETTLE"`
	LogLevel      string        `help:"Log level." enum:"debug,info,warn,error" default:"info" env:"DASH_MCP_LOG_LEVEL"`

	Version bool `help:"Print the version and exit."`
}

// slogLevel maps the flag value to a slog level.
func (c *CLI) slogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
