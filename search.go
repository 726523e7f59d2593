package dashmcp

import "strings"

// Search request bounds.
const (
	MinSearchResults = 1
	MaxSearchResults = 1000
)

// SearchRequest describes one search against the Dash API.
type SearchRequest struct {
	// Query is the search query (API names, concepts, etc.). Must be
	// non-blank.
	Query string

	// DocsetIdentifiers is a comma-separated list of docset identifiers
	// from ListDocsets. Must be non-blank.
	DocsetIdentifiers string

	// SearchSnippets includes user-saved code snippets in results.
	SearchSnippets bool

	// MaxResults caps the number of results, MinSearchResults to
	// MaxSearchResults inclusive.
	MaxResults int
}

// Validate returns an error if the request contains invalid fields.
func (r *SearchRequest) Validate() error {
	if strings.TrimSpace(r.Query) == "" {
		return Errorf(EINVALID, "Query cannot be empty")
	}
	if strings.TrimSpace(r.DocsetIdentifiers) == "" {
		return Errorf(EINVALID, "docset_identifiers cannot be empty. Get the docset identifiers using list_installed_docsets")
	}
	if r.MaxResults < MinSearchResults || r.MaxResults > MaxSearchResults {
		return Errorf(EINVALID, "max_results must be between %d and %d", MinSearchResults, MaxSearchResults)
	}
	return nil
}

// SearchResult is one documentation entry returned by search.
type SearchResult struct {
	// Name of the documentation entry.
	Name string `json:"name"`

	// Type of result (Function, Class, Guide, etc.).
	Type string `json:"type"`

	// Platform of the result, when known.
	Platform string `json:"platform,omitempty"`

	// LoadURL is an opaque locator for the full page content. It is
	// only guaranteed to be usable as input to the fetch operation.
	LoadURL string `json:"load_url"`

	// Docset is the name of the docset the entry came from.
	Docset string `json:"docset,omitempty"`

	// Description is an additional description, when present.
	Description string `json:"description,omitempty"`

	// Language is the programming language (snippet results only).
	Language string `json:"language,omitempty"`

	// Tags are snippet tags (snippet results only).
	Tags string `json:"tags,omitempty"`
}

// SearchResponse is the upstream answer to one SearchRequest.
type SearchResponse struct {
	Results []SearchResult

	// Message is an advisory from Dash (e.g., about docsets that were
	// skipped). It is surfaced to the agent but is not fatal: Results
	// may still contain hits.
	Message string
}
