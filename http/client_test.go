package http_test

import (
	"context"
	"net/http/httptest"
	"testing"

	nethttp "net/http"

	"github.com/fwojciec/dashmcp"
	dashhttp "github.com/fwojciec/dashmcp/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_Probe(t *testing.T) {
	t.Parallel()

	t.Run("returns true on success response", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			assert.Equal(t, "/health", r.URL.Path)
			w.WriteHeader(nethttp.StatusOK)
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		assert.True(t, c.Probe(context.Background(), srv.URL))
	})

	t.Run("returns false on non-success status", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusInternalServerError)
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		assert.False(t, c.Probe(context.Background(), srv.URL))
	})

	t.Run("returns false on transport error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {}))
		srv.Close() // connection refused from here on

		c := dashhttp.NewClient()
		assert.False(t, c.Probe(context.Background(), srv.URL))
	})
}

func TestClient_ListDocsets(t *testing.T) {
	t.Parallel()

	t.Run("maps wire docsets to domain docsets", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			assert.Equal(t, "/docsets/list", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"docsets":[
				{"name":"Python 3","identifier":"python3","platform":"python","full_text_search":"enabled"},
				{"name":"React","identifier":"react","platform":"javascript","full_text_search":"disabled","notice":"update available"}
			]}`))
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		docsets, err := c.ListDocsets(context.Background(), srv.URL)

		require.NoError(t, err)
		require.Len(t, docsets, 2)
		assert.Equal(t, "python3", docsets[0].Identifier)
		assert.Equal(t, dashmcp.FTSEnabled, docsets[0].FullTextSearch)
		assert.Equal(t, "update available", docsets[1].Notice)
	})

	t.Run("empty installed set is a valid result", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte(`{"docsets":[]}`))
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		docsets, err := c.ListDocsets(context.Background(), srv.URL)

		require.NoError(t, err)
		assert.Empty(t, docsets)
	})

	t.Run("404 instructs the user to install docsets", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		_, err := c.ListDocsets(context.Background(), srv.URL)

		require.Error(t, err)
		assert.Equal(t, dashmcp.ENOTFOUND, dashmcp.ErrorCode(err))
		assert.Contains(t, dashmcp.ErrorMessage(err), "install some docsets")
	})
}

func TestClient_Search(t *testing.T) {
	t.Parallel()

	t.Run("passes query parameters and maps results", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			q := r.URL.Query()
			assert.Equal(t, "useState", q.Get("query"))
			assert.Equal(t, "react", q.Get("docset_identifiers"))
			assert.Equal(t, "true", q.Get("search_snippets"))
			assert.Equal(t, "100", q.Get("max_results"))
			_, _ = w.Write([]byte(`{"results":[
				{"name":"useState","type":"Function","load_url":"dash-apple-api://load?request_key=abc","docset":"React"}
			]}`))
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		resp, err := c.Search(context.Background(), srv.URL, dashmcp.SearchRequest{
			Query:             "useState",
			DocsetIdentifiers: "react",
			SearchSnippets:    true,
			MaxResults:        100,
		})

		require.NoError(t, err)
		require.Len(t, resp.Results, 1)
		assert.Equal(t, "useState", resp.Results[0].Name)
		assert.Equal(t, "dash-apple-api://load?request_key=abc", resp.Results[0].LoadURL)
		assert.Empty(t, resp.Message)
	})

	t.Run("surfaces the advisory message alongside results", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			_, _ = w.Write([]byte(`{"results":[{"name":"map","type":"Function","load_url":"x"}],"message":"Docset 'foo' is still indexing"}`))
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		resp, err := c.Search(context.Background(), srv.URL, dashmcp.SearchRequest{
			Query:             "map",
			DocsetIdentifiers: "python3",
			MaxResults:        10,
		})

		require.NoError(t, err)
		assert.Len(t, resp.Results, 1)
		assert.Equal(t, "Docset 'foo' is still indexing", resp.Message)
	})

	t.Run("maps unknown identifier 400 to an actionable error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusBadRequest)
			_, _ = w.Write([]byte(`Docset with identifier 'bogus_id' not found`))
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		_, err := c.Search(context.Background(), srv.URL, dashmcp.SearchRequest{
			Query:             "foo",
			DocsetIdentifiers: "bogus_id",
			MaxResults:        10,
		})

		require.Error(t, err)
		assert.Equal(t, dashmcp.ENOTFOUND, dashmcp.ErrorCode(err))
		assert.Contains(t, dashmcp.ErrorMessage(err), "Invalid docset identifier")
	})

	t.Run("maps no-valid-docsets 400", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusBadRequest)
			_, _ = w.Write([]byte(`No docsets found for the given identifiers`))
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		_, err := c.Search(context.Background(), srv.URL, dashmcp.SearchRequest{
			Query:             "foo",
			DocsetIdentifiers: "a,b",
			MaxResults:        10,
		})

		require.Error(t, err)
		assert.Equal(t, dashmcp.EINVALID, dashmcp.ErrorCode(err))
		assert.Contains(t, dashmcp.ErrorMessage(err), "No valid docsets found")
	})

	t.Run("maps trial expiration 403", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusForbidden)
			_, _ = w.Write([]byte(`API access blocked due to Dash trial expiration`))
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		_, err := c.Search(context.Background(), srv.URL, dashmcp.SearchRequest{
			Query:             "foo",
			DocsetIdentifiers: "python3",
			MaxResults:        10,
		})

		require.Error(t, err)
		assert.Equal(t, dashmcp.EFORBIDDEN, dashmcp.ErrorCode(err))
		assert.Contains(t, dashmcp.ErrorMessage(err), "trial has expired")
	})

	t.Run("unrecognized upstream errors fall through to the generic message", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusInternalServerError)
			_, _ = w.Write([]byte(`something new and unexpected`))
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		_, err := c.Search(context.Background(), srv.URL, dashmcp.SearchRequest{
			Query:             "foo",
			DocsetIdentifiers: "python3",
			MaxResults:        10,
		})

		require.Error(t, err)
		assert.Equal(t, dashmcp.EUNAVAILABLE, dashmcp.ErrorCode(err))
		assert.Contains(t, dashmcp.ErrorMessage(err), "ensure Dash is running")
	})
}

func TestClient_EnableFTS(t *testing.T) {
	t.Parallel()

	t.Run("sends the identifier", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			assert.Equal(t, "/docsets/enable_fts", r.URL.Path)
			assert.Equal(t, "python3", r.URL.Query().Get("identifier"))
			_, _ = w.Write([]byte(`{}`))
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		err := c.EnableFTS(context.Background(), srv.URL, "python3")

		assert.NoError(t, err)
	})

	t.Run("404 maps to docset not found", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(nethttp.HandlerFunc(func(w nethttp.ResponseWriter, r *nethttp.Request) {
			w.WriteHeader(nethttp.StatusNotFound)
		}))
		defer srv.Close()

		c := dashhttp.NewClient()
		err := c.EnableFTS(context.Background(), srv.URL, "bogus")

		require.Error(t, err)
		assert.Equal(t, dashmcp.ENOTFOUND, dashmcp.ErrorCode(err))
	})
}
