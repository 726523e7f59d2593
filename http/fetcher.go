package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/fwojciec/dashmcp"
)

// DefaultFetchTimeout is the default timeout for page fetches. Same
// bound as the data calls: a single documentation page is one request.
const DefaultFetchTimeout = 30 * time.Second

// Ensure Fetcher implements dashmcp.Fetcher at compile time.
var _ dashmcp.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves raw page HTML from a load URL. Load URLs come from
// search results and usually point back at Dash's local server, but are
// treated as opaque; whatever they resolve to is fetched as-is.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithFetchTimeout sets the timeout for page fetches.
// Defaults to DefaultFetchTimeout.
func WithFetchTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new page Fetcher.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Fetch retrieves the body of the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", dashmcp.Errorf(dashmcp.EINVALID, "invalid load_url %q: %v", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", dashmcp.Errorf(dashmcp.EUNAVAILABLE, "Failed to fetch content: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", dashmcp.Errorf(dashmcp.EUNAVAILABLE, "HTTP error %d: %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", dashmcp.Errorf(dashmcp.EUNAVAILABLE, "Failed to fetch content: %v", err)
	}

	return string(body), nil
}
