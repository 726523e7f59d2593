package mcp

import (
	"context"
	"log/slog"
	"strings"

	"github.com/fwojciec/dashmcp"
	"github.com/mark3labs/mcp-go/mcp"
)

// errorTitle is returned in place of a page title when the fetch fails.
const errorTitle = "Error"

// FetchContentTool handles the fetch_documentation_content MCP tool.
type FetchContentTool struct {
	ready     dashmcp.ReadyChecker
	fetcher   dashmcp.Fetcher
	extractor dashmcp.Extractor
	converter dashmcp.Converter
	logger    *slog.Logger
}

// NewFetchContentTool creates a FetchContentTool.
func NewFetchContentTool(
	ready dashmcp.ReadyChecker,
	fetcher dashmcp.Fetcher,
	extractor dashmcp.Extractor,
	converter dashmcp.Converter,
	logger *slog.Logger,
) *FetchContentTool {
	return &FetchContentTool{
		ready:     ready,
		fetcher:   fetcher,
		extractor: extractor,
		converter: converter,
		logger:    logger,
	}
}

// pageContentResult is the JSON shape returned to the agent.
type pageContentResult struct {
	dashmcp.PageContent
	Error string `json:"error,omitempty"`
}

func contentError(loadURL string, message string) pageContentResult {
	return pageContentResult{
		PageContent: dashmcp.PageContent{LoadURL: loadURL, Title: errorTitle},
		Error:       message,
	}
}

// Definition returns the MCP tool definition for registration.
func (t *FetchContentTool) Definition() mcp.Tool {
	return mcp.NewTool("fetch_documentation_content",
		mcp.WithDescription(
			"Fetch the full documentation content for a specific entry. "+
				"Retrieves the complete page and converts it to Markdown. Unlike search results, which only "+
				"carry metadata, this returns the actual documentation text with descriptions, parameters, "+
				"code examples, and detailed explanations. "+
				"No content limits: the complete page is always returned, since it is a single user-selected document. "+
				"Typical workflow: search_documentation to find entries, then this tool with a result's load_url.",
		),
		mcp.WithString("load_url",
			mcp.Required(),
			mcp.Description("The load_url from a search result (obtained via search_documentation)"),
		),
	)
}

// Handle processes the fetch_documentation_content tool call.
func (t *FetchContentTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	loadURL := req.GetString("load_url", "")
	if strings.TrimSpace(loadURL) == "" {
		t.logger.Error("fetch content: load_url cannot be empty")
		return jsonResult(contentError(loadURL, "load_url cannot be empty"))
	}

	// load_url is served by Dash's local server, so a dead Dash fails
	// here before any network call.
	if _, err := t.ready.EnsureReady(ctx); err != nil {
		t.logger.Error("fetch content: not ready", "err", err)
		return jsonResult(contentError(loadURL, dashmcp.ErrorMessage(err)))
	}

	html, err := t.fetcher.Fetch(ctx, loadURL)
	if err != nil {
		t.logger.Error("fetch content failed", "load_url", loadURL, "err", err)
		return jsonResult(contentError(loadURL, dashmcp.ErrorMessage(err)))
	}
	t.logger.Debug("fetched page", "load_url", loadURL, "bytes", len(html))

	extracted, err := t.extractor.Extract(html)
	if err != nil {
		t.logger.Error("content extraction failed", "load_url", loadURL, "err", err)
		return jsonResult(contentError(loadURL, dashmcp.ErrorMessage(err)))
	}

	markdown, err := t.converter.Convert(extracted.ContentHTML)
	if err != nil {
		t.logger.Error("markdown conversion failed", "load_url", loadURL, "err", err)
		return jsonResult(contentError(loadURL, dashmcp.ErrorMessage(err)))
	}
	t.logger.Info("converted page to markdown", "load_url", loadURL, "chars", len(markdown))

	return jsonResult(pageContentResult{
		PageContent: dashmcp.PageContent{
			LoadURL: loadURL,
			Title:   extracted.Title,
			Content: markdown,
		},
	})
}
