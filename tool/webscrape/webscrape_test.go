package webscrape

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopilot-ai/autopilot/tool"
)

// Interface compliance
var (
	_ tool.WebSearcher = (*Client)(nil)
	_ tool.Scraper     = (*Client)(nil)
)

const articleHTML = `<!DOCTYPE html>
<html>
<head><title>Go (programming language)</title><style>p { color: red }</style></head>
<body>
  <script>console.log("tracking")</script>
  <h1>Go (programming language)</h1>
  <p>Go is a statically typed, compiled language.</p>
  <p>It was designed at Google.</p>
  <ul><li>Fast compilation</li><li>Garbage collected</li></ul>
  <blockquote>Less is exponentially more.</blockquote>
</body>
</html>`

func TestSearch_ReturnsLeadParagraphs(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	c := New(func(o *Options) { o.WikipediaBase = srv.URL + "/wiki/" })

	content, err := c.Search(context.Background(), "Go programming language")
	require.NoError(t, err)
	assert.Equal(t, "/wiki/Go_programming_language", gotPath)
	assert.Contains(t, content, "Go is a statically typed, compiled language.")
	assert.Contains(t, content, "It was designed at Google.")
}

func TestSearch_ParagraphCap(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	c := New(func(o *Options) {
		o.WikipediaBase = srv.URL + "/wiki/"
		o.MaxSearchParagraphs = 1
	})

	content, err := c.Search(context.Background(), "Go")
	require.NoError(t, err)
	assert.Contains(t, content, "statically typed")
	assert.NotContains(t, content, "designed at Google")
}

func TestSearch_NoParagraphs(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div>nothing semantic</div></body></html>`))
	}))
	defer srv.Close()

	c := New(func(o *Options) { o.WikipediaBase = srv.URL + "/wiki/" })

	content, err := c.Search(context.Background(), "Empty")
	require.NoError(t, err)
	assert.Equal(t, "No readable content.", content)
}

func TestScrape_StripsNonContentAndKeepsStructure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	c := New()

	content, err := c.Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Contains(t, content, "# Go (programming language)")
	assert.Contains(t, content, "- Fast compilation")
	assert.Contains(t, content, "> Less is exponentially more.")
	assert.NotContains(t, content, "tracking")
	assert.NotContains(t, content, "color: red")
}

func TestScrape_FallsBackToBodyText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html><body><div>bare div text</div></body></html>`))
	}))
	defer srv.Close()

	c := New()

	content, err := c.Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, "bare div text", content)
}

func TestFetch_NonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	c := New()

	_, err := c.Scrape(context.Background(), srv.URL)
	assert.ErrorContains(t, err, "unexpected status 404")
}

func TestFetch_SetsUserAgent(t *testing.T) {
	var gotUA string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUA = r.Header.Get("User-Agent")
		_, _ = w.Write([]byte(articleHTML))
	}))
	defer srv.Close()

	c := New()

	_, err := c.Scrape(context.Background(), srv.URL)
	require.NoError(t, err)
	assert.Equal(t, userAgent, gotUA)
}
