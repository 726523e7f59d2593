package dashmcp

import "context"

// Full-text search states Dash reports for a docset.
const (
	FTSNotSupported = "not supported"
	FTSDisabled     = "disabled"
	FTSIndexing     = "indexing"
	FTSEnabled      = "enabled"
)

// Docset describes one documentation set installed in Dash.
type Docset struct {
	// Name is the display name (e.g., "Python 3", "React").
	Name string `json:"name"`

	// Identifier is the unique key used in search requests.
	Identifier string `json:"identifier"`

	// Platform is the platform/type of the docset.
	Platform string `json:"platform"`

	// FullTextSearch is one of the FTS* constants above.
	FullTextSearch string `json:"full_text_search"`

	// Notice is an optional notice about the docset's status.
	Notice string `json:"notice,omitempty"`
}

// APIClient talks to Dash's local HTTP API. The base URL is passed on
// every call because Dash may restart on a different port between
// invocations; callers obtain it from a ReadyChecker each time.
type APIClient interface {
	// ListDocsets returns all installed docsets. An empty slice is a
	// valid result, not an error.
	ListDocsets(ctx context.Context, baseURL string) ([]Docset, error)

	// Search queries the given docsets for documentation entries.
	Search(ctx context.Context, baseURL string, req SearchRequest) (*SearchResponse, error)

	// EnableFTS turns on full-text search indexing for one docset.
	EnableFTS(ctx context.Context, baseURL string, identifier string) error
}
