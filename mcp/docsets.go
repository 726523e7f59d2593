package mcp

import (
	"context"
	"log/slog"

	"github.com/fwojciec/dashmcp"
	"github.com/mark3labs/mcp-go/mcp"
)

// ListDocsetsTool handles the list_installed_docsets MCP tool.
type ListDocsetsTool struct {
	ready  dashmcp.ReadyChecker
	api    dashmcp.APIClient
	logger *slog.Logger
}

// NewListDocsetsTool creates a ListDocsetsTool.
func NewListDocsetsTool(ready dashmcp.ReadyChecker, api dashmcp.APIClient, logger *slog.Logger) *ListDocsetsTool {
	return &ListDocsetsTool{ready: ready, api: api, logger: logger}
}

// docsetListResult is the JSON shape returned to the agent.
type docsetListResult struct {
	Docsets   []dashmcp.Docset `json:"docsets"`
	Truncated bool             `json:"truncated,omitempty"`
	Returned  int              `json:"returned_count,omitempty"`
	Total     int              `json:"total_count,omitempty"`
	Error     string           `json:"error,omitempty"`
}

// Definition returns the MCP tool definition for registration.
func (t *ListDocsetsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_installed_docsets",
		mcp.WithDescription(
			"List all documentation sets the user has installed in Dash. "+
				"Dash stores offline documentation for programming languages, frameworks, and tools; "+
				"the installed docsets reflect the user's development environment and preferences. "+
				"Call this FIRST before searching; search_documentation needs docset identifiers from here. "+
				"Each docset includes a name, an identifier (use it for search_documentation's "+
				"docset_identifiers parameter), and a full_text_search status "+
				"('enabled', 'disabled', 'indexing', or 'not supported'). "+
				"An empty list means no docsets are installed. "+
				"Results are truncated if they would exceed 25,000 tokens.",
		),
	)
}

// Handle processes the list_installed_docsets tool call.
func (t *ListDocsetsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	baseURL, err := t.ready.EnsureReady(ctx)
	if err != nil {
		t.logger.Error("list docsets: not ready", "err", err)
		return jsonResult(docsetListResult{Docsets: []dashmcp.Docset{}, Error: dashmcp.ErrorMessage(err)})
	}

	docsets, err := t.api.ListDocsets(ctx, baseURL)
	if err != nil {
		t.logger.Error("list docsets failed", "err", err)
		return jsonResult(docsetListResult{Docsets: []dashmcp.Docset{}, Error: dashmcp.ErrorMessage(err)})
	}
	t.logger.Info("listed docsets", "count", len(docsets))

	b := dashmcp.BudgetItems(docsets, dashmcp.DefaultTokenLimit, dashmcp.DefaultBaseOverhead)
	if b.Truncated {
		t.logger.Warn("docset list truncated to stay under the token budget",
			"returned", b.Returned, "total", b.Total)
	}

	return jsonResult(docsetListResult{
		Docsets:   b.Items,
		Truncated: b.Truncated,
		Returned:  b.Returned,
		Total:     b.Total,
	})
}
