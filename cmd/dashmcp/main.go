package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/mark3labs/mcp-go/server"

	"github.com/fwojciec/dashmcp/fs"
	"github.com/fwojciec/dashmcp/goquery"
	"github.com/fwojciec/dashmcp/htmltomarkdown"
	dashhttp "github.com/fwojciec/dashmcp/http"
	"github.com/fwojciec/dashmcp/lifecycle"
	"github.com/fwojciec/dashmcp/macos"
	dashmcptools "github.com/fwojciec/dashmcp/mcp"
	dashslog "github.com/fwojciec/dashmcp/slog"
)

// Version is set at build time via -ldflags.
var Version = "dev"

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// serve runs the MCP server over stdio. Replaceable in tests.
	serve func(s *server.MCPServer) error
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		serve: func(s *server.MCPServer) error {
			return server.ServeStdio(s)
		},
	}
}

// Run executes the server with the given arguments. All logging goes to
// stderr: stdout carries the MCP protocol.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("dashmcp"),
		kong.Description("MCP server exposing Dash documentation to AI agents"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h" || args[0] == "help") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	if cli.Version {
		fmt.Fprintln(stdout, Version)
		return nil
	}

	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: cli.slogLevel(),
	}))

	statusPath := cli.StatusFile
	if statusPath == "" {
		statusPath, err = fs.DefaultStatusPath()
		if err != nil {
			return fmt.Errorf("failed to locate Dash status file: %w", err)
		}
	}

	client := dashhttp.NewClient(
		dashhttp.WithHealthTimeout(cli.HealthTimeout),
		dashhttp.WithDataTimeout(cli.DataTimeout),
	)
	ports := fs.NewStatusDiscoverer(statusPath, client)
	apps := macos.NewAppController(logger)
	manager := lifecycle.NewManager(apps, ports, logger,
		lifecycle.WithLaunchSettle(cli.LaunchSettle),
		lifecycle.WithEnableSettle(cli.EnableSettle),
	)

	deps := dashmcptools.Deps{
		Ready:     dashslog.NewLoggingReadyChecker(manager, logger),
		API:       dashslog.NewLoggingAPIClient(client, logger),
		Fetcher:   dashhttp.NewFetcher(dashhttp.WithFetchTimeout(cli.FetchTimeout)),
		Extractor: goquery.NewExtractor(),
		Converter: htmltomarkdown.NewConverter(),
		Logger:    logger,
	}

	logger.Info("starting dashmcp", "version", Version, "status_file", statusPath)

	return m.serve(dashmcptools.NewServer(Version, deps))
}
