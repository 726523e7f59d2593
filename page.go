package dashmcp

import "context"

// PageContent is a fetched documentation page after sanitization.
type PageContent struct {
	// LoadURL is the locator the page was fetched from.
	LoadURL string `json:"load_url"`

	// Title is the page title, or a fixed placeholder if the page has
	// no title element.
	Title string `json:"title"`

	// Content is the page body as clean Markdown.
	Content string `json:"content"`
}

// Fetcher retrieves raw HTML from a load URL.
type Fetcher interface {
	// Fetch returns the response body for the given URL.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (html string, err error)
}

// ExtractResult holds the extracted content from an HTML page.
type ExtractResult struct {
	// Title is the text of the page's title element, or a placeholder
	// when absent.
	Title string

	// ContentHTML is the page markup with non-content elements
	// (script, style, nav, header) removed.
	ContentHTML string
}

// Extractor prepares raw HTML for conversion. Implementations must
// tolerate malformed HTML: it is repaired, never rejected.
type Extractor interface {
	Extract(html string) (*ExtractResult, error)
}

// Converter converts clean HTML to normalized Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown with ATX headings
	// and hyphen bullets, collapses runs of blank lines, and trims
	// trailing whitespace. The normalization is idempotent.
	Convert(html string) (string, error)
}
