// Package htmltomarkdown provides an html-to-markdown based
// implementation of dashmcp.Converter.
package htmltomarkdown

import (
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/dashmcp"
)

// Ensure Converter implements dashmcp.Converter at compile time.
var _ dashmcp.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown to convert HTML to Markdown. The
// commonmark plugin emits ATX headings and hyphen bullets.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms HTML content into normalized Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", dashmcp.Errorf(dashmcp.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", err
	}

	return Normalize(result), nil
}

var (
	trailingWS = regexp.MustCompile(`(?m)[ \t]+$`)
	blankRuns  = regexp.MustCompile(`\n{3,}`)
)

// Normalize strips trailing whitespace per line, collapses runs of three
// or more newlines to a single blank line, and trims the document.
// Paragraph breaks survive; converter noise does not. Normalize is
// idempotent: running it on its own output changes nothing.
func Normalize(markdown string) string {
	out := trailingWS.ReplaceAllString(markdown, "")
	out = blankRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}
