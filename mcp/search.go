package mcp

import (
	"context"
	"log/slog"

	"github.com/fwojciec/dashmcp"
	"github.com/mark3labs/mcp-go/mcp"
)

// SearchTool handles the search_documentation MCP tool.
type SearchTool struct {
	ready  dashmcp.ReadyChecker
	api    dashmcp.APIClient
	logger *slog.Logger
}

// NewSearchTool creates a SearchTool.
func NewSearchTool(ready dashmcp.ReadyChecker, api dashmcp.APIClient, logger *slog.Logger) *SearchTool {
	return &SearchTool{ready: ready, api: api, logger: logger}
}

// searchResult is the JSON shape returned to the agent. Error doubles as
// the advisory channel: a non-fatal upstream message (e.g., a docset
// still indexing) is surfaced here alongside the hits.
type searchResult struct {
	Results   []dashmcp.SearchResult `json:"results"`
	Truncated bool                   `json:"truncated,omitempty"`
	Returned  int                    `json:"returned_count,omitempty"`
	Total     int                    `json:"total_count,omitempty"`
	Error     string                 `json:"error,omitempty"`
}

// Definition returns the MCP tool definition for registration.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("search_documentation",
		mcp.WithDescription(
			"Search the user's installed documentation for API references, classes, functions, guides, and more. "+
				"Results include a load_url field; pass it to fetch_documentation_content to retrieve the full page. "+
				"By default, search matches API/symbol names (e.g., 'useState', 'DataFrame.merge'); searching within "+
				"page content requires full-text search on the docset (see the full_text_search field from "+
				"list_installed_docsets, and enable_docset_fts to turn it on). "+
				"Typical workflow: list_installed_docsets -> search_documentation -> fetch_documentation_content. "+
				"Results are truncated if they would exceed 25,000 tokens.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("The search query (API names, function names, concepts, etc.)"),
		),
		mcp.WithString("docset_identifiers",
			mcp.Required(),
			mcp.Description("Comma-separated docset identifiers from list_installed_docsets (e.g., 'python3,react,typescript')"),
		),
		mcp.WithBoolean("search_snippets",
			mcp.Description("Include user-saved code snippets from Dash in results (default: true)"),
			mcp.DefaultBool(true),
		),
		mcp.WithNumber("max_results",
			mcp.Description("Maximum results to return, 1-1000 (default: 100)"),
			mcp.DefaultNumber(100),
		),
	)
}

// Handle processes the search_documentation tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	searchReq := dashmcp.SearchRequest{
		Query:             req.GetString("query", ""),
		DocsetIdentifiers: req.GetString("docset_identifiers", ""),
		SearchSnippets:    req.GetBool("search_snippets", true),
		MaxResults:        req.GetInt("max_results", 100),
	}

	// Validation failures never reach the network.
	if err := searchReq.Validate(); err != nil {
		t.logger.Error("search validation failed", "err", err)
		return jsonResult(searchResult{Results: []dashmcp.SearchResult{}, Error: dashmcp.ErrorMessage(err)})
	}

	baseURL, err := t.ready.EnsureReady(ctx)
	if err != nil {
		t.logger.Error("search: not ready", "err", err)
		return jsonResult(searchResult{Results: []dashmcp.SearchResult{}, Error: dashmcp.ErrorMessage(err)})
	}

	resp, err := t.api.Search(ctx, baseURL, searchReq)
	if err != nil {
		t.logger.Error("search failed", "query", searchReq.Query, "err", err)
		return jsonResult(searchResult{Results: []dashmcp.SearchResult{}, Error: dashmcp.ErrorMessage(err)})
	}
	if resp.Message != "" {
		t.logger.Warn("search advisory", "message", resp.Message)
	}
	t.logger.Info("search completed", "query", searchReq.Query, "count", len(resp.Results))

	b := dashmcp.BudgetItems(resp.Results, dashmcp.DefaultTokenLimit, dashmcp.DefaultBaseOverhead)
	if b.Truncated {
		t.logger.Warn("search results truncated to stay under the token budget",
			"returned", b.Returned, "total", b.Total)
	}

	return jsonResult(searchResult{
		Results:   b.Items,
		Truncated: b.Truncated,
		Returned:  b.Returned,
		Total:     b.Total,
		Error:     resp.Message,
	})
}
