package mcp

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/dashmcp"
	"github.com/mark3labs/mcp-go/mcp"
)

// EnableFTSTool handles the enable_docset_fts MCP tool.
type EnableFTSTool struct {
	ready  dashmcp.ReadyChecker
	api    dashmcp.APIClient
	logger *slog.Logger
}

// NewEnableFTSTool creates an EnableFTSTool.
func NewEnableFTSTool(ready dashmcp.ReadyChecker, api dashmcp.APIClient, logger *slog.Logger) *EnableFTSTool {
	return &EnableFTSTool{ready: ready, api: api, logger: logger}
}

// enableFTSResult reports success as a boolean, with the failure reason
// in Error when enabling did not happen.
type enableFTSResult struct {
	Enabled bool   `json:"enabled"`
	Error   string `json:"error,omitempty"`
}

// Definition returns the MCP tool definition for registration.
func (t *EnableFTSTool) Definition() mcp.Tool {
	return mcp.NewTool("enable_docset_fts",
		mcp.WithDescription(
			"Enable full-text search for a specific docset. "+
				"By default, search_documentation only matches API/symbol names; with full-text search enabled, "+
				"search also finds pages that mention concepts or terms in their content. "+
				"Check list_installed_docsets first; the full_text_search field shows the current status: "+
				"'enabled' (already active), 'disabled' (can be enabled with this tool), "+
				"'indexing' (index is being built, wait and retry), or 'not supported'. "+
				"Returns enabled=true on success, enabled=false otherwise.",
		),
		mcp.WithString("identifier",
			mcp.Required(),
			mcp.Description("The docset identifier from list_installed_docsets"),
		),
	)
}

// Handle processes the enable_docset_fts tool call.
func (t *EnableFTSTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	identifier := req.GetString("identifier", "")
	if strings.TrimSpace(identifier) == "" {
		t.logger.Error("enable fts: identifier cannot be empty")
		return jsonResult(enableFTSResult{Error: "identifier cannot be empty"})
	}

	baseURL, err := t.ready.EnsureReady(ctx)
	if err != nil {
		t.logger.Error("enable fts: not ready", "err", err)
		return jsonResult(enableFTSResult{Error: dashmcp.ErrorMessage(err)})
	}

	if err := t.api.EnableFTS(ctx, baseURL, identifier); err != nil {
		t.logger.Error("enable fts failed", "identifier", identifier, "err", err)
		return jsonResult(enableFTSResult{Error: dashmcp.ErrorMessage(err)})
	}

	t.logger.Info("full-text search enabled", "identifier", identifier)
	return jsonResult(enableFTSResult{Enabled: true})
}
