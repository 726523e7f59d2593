// Package http provides net/http-based implementations of the Dash API
// client, the health prober, and the raw page fetcher.
package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/fwojciec/dashmcp"
)

// Default timeouts. Health probes are short so a dead port is rejected
// quickly during discovery; data calls get longer since a search across
// many docsets can take a while.
const (
	DefaultHealthTimeout = 5 * time.Second
	DefaultDataTimeout   = 30 * time.Second
)

// Ensure Client implements the domain interfaces at compile time.
var (
	_ dashmcp.APIClient = (*Client)(nil)
	_ dashmcp.Prober    = (*Client)(nil)
)

// Client talks to Dash's local HTTP API. The base URL is supplied per
// call; there is no connection or session state kept between calls.
type Client struct {
	health *http.Client
	data   *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHealthTimeout sets the timeout for health probes.
// Defaults to DefaultHealthTimeout.
func WithHealthTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.health.Timeout = d
	}
}

// WithDataTimeout sets the timeout for data-bearing API calls.
// Defaults to DefaultDataTimeout.
func WithDataTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.data.Timeout = d
	}
}

// NewClient creates a new Dash API client.
func NewClient(opts ...Option) *Client {
	c := &Client{
		health: &http.Client{Timeout: DefaultHealthTimeout},
		data:   &http.Client{Timeout: DefaultDataTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Probe issues a liveness request against baseURL/health. Any transport
// error, timeout, or non-success status yields false.
func (c *Client) Probe(ctx context.Context, baseURL string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, baseURL+"/health", nil)
	if err != nil {
		return false
	}

	resp, err := c.health.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()

	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

// wire types for Dash's JSON responses.
type docsetListResponse struct {
	Docsets []wireDocset `json:"docsets"`
}

type wireDocset struct {
	Name           string `json:"name"`
	Identifier     string `json:"identifier"`
	Platform       string `json:"platform"`
	FullTextSearch string `json:"full_text_search"`
	Notice         string `json:"notice"`
}

type searchResponse struct {
	Results []wireSearchResult `json:"results"`
	Message string             `json:"message"`
}

type wireSearchResult struct {
	Name        string `json:"name"`
	Type        string `json:"type"`
	Platform    string `json:"platform"`
	LoadURL     string `json:"load_url"`
	Docset      string `json:"docset"`
	Description string `json:"description"`
	Language    string `json:"language"`
	Tags        string `json:"tags"`
}

// ListDocsets returns all docsets installed in Dash.
func (c *Client) ListDocsets(ctx context.Context, baseURL string) ([]dashmcp.Docset, error) {
	body, status, err := c.get(ctx, baseURL+"/docsets/list")
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, dashmcp.Errorf(dashmcp.ENOTFOUND,
			"No docsets found. Instruct the user to install some docsets in Settings > Downloads.")
	}
	if status >= 400 {
		return nil, mapAPIError(status, string(body))
	}

	var decoded docsetListResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, dashmcp.Errorf(dashmcp.EINTERNAL, "Unexpected response from the Dash API: %v", err)
	}

	docsets := make([]dashmcp.Docset, 0, len(decoded.Docsets))
	for _, d := range decoded.Docsets {
		docsets = append(docsets, dashmcp.Docset{
			Name:           d.Name,
			Identifier:     d.Identifier,
			Platform:       d.Platform,
			FullTextSearch: d.FullTextSearch,
			Notice:         d.Notice,
		})
	}
	return docsets, nil
}

// Search queries the Dash API for documentation entries.
func (c *Client) Search(ctx context.Context, baseURL string, req dashmcp.SearchRequest) (*dashmcp.SearchResponse, error) {
	params := url.Values{
		"query":              {req.Query},
		"docset_identifiers": {req.DocsetIdentifiers},
		"search_snippets":    {strconv.FormatBool(req.SearchSnippets)},
		"max_results":        {strconv.Itoa(req.MaxResults)},
	}

	body, status, err := c.get(ctx, baseURL+"/search?"+params.Encode())
	if err != nil {
		return nil, err
	}
	if status >= 400 {
		return nil, mapAPIError(status, string(body))
	}

	var decoded searchResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, dashmcp.Errorf(dashmcp.EINTERNAL, "Unexpected response from the Dash API: %v", err)
	}

	results := make([]dashmcp.SearchResult, 0, len(decoded.Results))
	for _, r := range decoded.Results {
		results = append(results, dashmcp.SearchResult{
			Name:        r.Name,
			Type:        r.Type,
			Platform:    r.Platform,
			LoadURL:     r.LoadURL,
			Docset:      r.Docset,
			Description: r.Description,
			Language:    r.Language,
			Tags:        r.Tags,
		})
	}
	return &dashmcp.SearchResponse{Results: results, Message: decoded.Message}, nil
}

// EnableFTS turns on full-text search indexing for one docset.
func (c *Client) EnableFTS(ctx context.Context, baseURL string, identifier string) error {
	params := url.Values{"identifier": {identifier}}

	body, status, err := c.get(ctx, baseURL+"/docsets/enable_fts?"+params.Encode())
	if err != nil {
		return err
	}
	if status == http.StatusNotFound {
		return dashmcp.Errorf(dashmcp.ENOTFOUND, "Docset not found: %s", identifier)
	}
	if status >= 400 {
		return mapAPIError(status, string(body))
	}
	return nil
}

// get performs a data-bearing GET and returns the body and status code.
// Transport failures are mapped to EUNAVAILABLE since they almost always
// mean Dash went away between discovery and the call.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, 0, dashmcp.Errorf(dashmcp.EINVALID, "invalid request URL %q: %v", rawURL, err)
	}

	resp, err := c.data.Do(req)
	if err != nil {
		return nil, 0, dashmcp.Errorf(dashmcp.EUNAVAILABLE,
			"Failed to reach the Dash API Server: %v. %s", err, remediationHint)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, dashmcp.Errorf(dashmcp.EUNAVAILABLE,
			"Failed to read the Dash API response: %v. %s", err, remediationHint)
	}
	return body, resp.StatusCode, nil
}
