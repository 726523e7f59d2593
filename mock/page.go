package mock

import (
	"context"

	"github.com/fwojciec/dashmcp"
)

var (
	_ dashmcp.Fetcher   = (*Fetcher)(nil)
	_ dashmcp.Extractor = (*Extractor)(nil)
	_ dashmcp.Converter = (*Converter)(nil)
)

// Fetcher is a mock implementation of dashmcp.Fetcher.
type Fetcher struct {
	FetchFn      func(ctx context.Context, url string) (string, error)
	FetchInvoked int
}

func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	f.FetchInvoked++
	return f.FetchFn(ctx, url)
}

// Extractor is a mock implementation of dashmcp.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*dashmcp.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*dashmcp.ExtractResult, error) {
	return e.ExtractFn(html)
}

// Converter is a mock implementation of dashmcp.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
