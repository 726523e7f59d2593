package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/dashmcp"
)

// Ensure LoggingAPIClient implements dashmcp.APIClient.
var _ dashmcp.APIClient = (*LoggingAPIClient)(nil)

// LoggingAPIClient wraps an APIClient with debug logging.
type LoggingAPIClient struct {
	next   dashmcp.APIClient
	logger *slog.Logger
}

// NewLoggingAPIClient creates a new LoggingAPIClient.
func NewLoggingAPIClient(next dashmcp.APIClient, logger *slog.Logger) *LoggingAPIClient {
	return &LoggingAPIClient{next: next, logger: logger}
}

// ListDocsets delegates to the wrapped client and logs the operation.
func (c *LoggingAPIClient) ListDocsets(ctx context.Context, baseURL string) (docsets []dashmcp.Docset, err error) {
	defer func(begin time.Time) {
		c.logger.Debug("dash api: list docsets",
			"count", len(docsets),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.ListDocsets(ctx, baseURL)
}

// Search delegates to the wrapped client and logs the operation.
func (c *LoggingAPIClient) Search(ctx context.Context, baseURL string, req dashmcp.SearchRequest) (resp *dashmcp.SearchResponse, err error) {
	defer func(begin time.Time) {
		count := 0
		if resp != nil {
			count = len(resp.Results)
		}
		c.logger.Debug("dash api: search",
			"query", req.Query,
			"docsets", req.DocsetIdentifiers,
			"count", count,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.Search(ctx, baseURL, req)
}

// EnableFTS delegates to the wrapped client and logs the operation.
func (c *LoggingAPIClient) EnableFTS(ctx context.Context, baseURL string, identifier string) (err error) {
	defer func(begin time.Time) {
		c.logger.Debug("dash api: enable fts",
			"identifier", identifier,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return c.next.EnableFTS(ctx, baseURL, identifier)
}
