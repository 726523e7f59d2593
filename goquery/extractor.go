// Package goquery provides a goquery-based implementation of
// dashmcp.Extractor.
package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/dashmcp"
)

// DefaultTitle is used when a page has no title element.
const DefaultTitle = "Documentation"

// Ensure Extractor implements dashmcp.Extractor at compile time.
var _ dashmcp.Extractor = (*Extractor)(nil)

// Extractor pulls the page title and removes elements that are never
// documentation content: script, style, nav, and header. Everything else
// is left intact for the Markdown converter. Malformed HTML is repaired
// by the underlying parser, never rejected.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the title and content markup.
func (e *Extractor) Extract(rawHTML string) (*dashmcp.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, dashmcp.Errorf(dashmcp.EINVALID, "failed to parse HTML: %v", err)
	}

	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		title = DefaultTitle
	}

	doc.Find("script, style, nav, header").Remove()

	contentHTML, err := doc.Html()
	if err != nil {
		return nil, dashmcp.Errorf(dashmcp.EINTERNAL, "failed to serialize HTML: %v", err)
	}

	return &dashmcp.ExtractResult{
		Title:       title,
		ContentHTML: contentHTML,
	}, nil
}
