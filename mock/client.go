package mock

import (
	"context"

	"github.com/fwojciec/dashmcp"
)

var _ dashmcp.APIClient = (*APIClient)(nil)

// APIClient is a mock implementation of dashmcp.APIClient.
type APIClient struct {
	ListDocsetsFn      func(ctx context.Context, baseURL string) ([]dashmcp.Docset, error)
	ListDocsetsInvoked int

	SearchFn      func(ctx context.Context, baseURL string, req dashmcp.SearchRequest) (*dashmcp.SearchResponse, error)
	SearchInvoked int

	EnableFTSFn      func(ctx context.Context, baseURL string, identifier string) error
	EnableFTSInvoked int
}

func (c *APIClient) ListDocsets(ctx context.Context, baseURL string) ([]dashmcp.Docset, error) {
	c.ListDocsetsInvoked++
	return c.ListDocsetsFn(ctx, baseURL)
}

func (c *APIClient) Search(ctx context.Context, baseURL string, req dashmcp.SearchRequest) (*dashmcp.SearchResponse, error) {
	c.SearchInvoked++
	return c.SearchFn(ctx, baseURL, req)
}

func (c *APIClient) EnableFTS(ctx context.Context, baseURL string, identifier string) error {
	c.EnableFTSInvoked++
	return c.EnableFTSFn(ctx, baseURL, identifier)
}
