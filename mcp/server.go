package mcp

import (
	"log/slog"

	"github.com/fwojciec/dashmcp"
	"github.com/mark3labs/mcp-go/server"
)

// Deps holds the collaborators shared by the tools. Every field is an
// interface so tests (and alternate wirings) can substitute fakes.
type Deps struct {
	Ready     dashmcp.ReadyChecker
	API       dashmcp.APIClient
	Fetcher   dashmcp.Fetcher
	Extractor dashmcp.Extractor
	Converter dashmcp.Converter
	Logger    *slog.Logger
}

// NewServer creates the MCP server with all Dash tools registered.
func NewServer(version string, deps Deps) *server.MCPServer {
	s := server.NewMCPServer(
		"dashmcp",
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(
			"Access the user's offline documentation through Dash. "+
				"Start with list_installed_docsets to see what is available, "+
				"search with search_documentation, and read full pages with "+
				"fetch_documentation_content.",
		),
	)

	listTool := NewListDocsetsTool(deps.Ready, deps.API, deps.Logger)
	s.AddTool(listTool.Definition(), listTool.Handle)

	searchTool := NewSearchTool(deps.Ready, deps.API, deps.Logger)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	ftsTool := NewEnableFTSTool(deps.Ready, deps.API, deps.Logger)
	s.AddTool(ftsTool.Definition(), ftsTool.Handle)

	contentTool := NewFetchContentTool(deps.Ready, deps.Fetcher, deps.Extractor, deps.Converter, deps.Logger)
	s.AddTool(contentTool.Definition(), contentTool.Handle)

	return s
}
