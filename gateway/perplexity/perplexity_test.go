package perplexity

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/autopilot-ai/autopilot/gateway"
)

// Interface compliance
var _ gateway.SearchGateway = (*Gateway)(nil)

const completionBody = `{
  "id": "cmpl-1",
  "model": "sonar-pro",
  "choices": [
    {
      "index": 0,
      "finish_reason": "stop",
      "message": {"role": "assistant", "content": "Go is a programming language."}
    }
  ],
  "search_results": [
    {"title": "Go homepage", "url": "https://go.dev", "snippet": "Build simple software", "date": "2025-01-01"}
  ]
}`

func newTestServer(t *testing.T, capture *map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		if capture != nil {
			require.NoError(t, json.Unmarshal(body, capture))
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	}))
}

func TestComplete_SendsPromptsAndDisablesSearch(t *testing.T) {
	var captured map[string]any
	srv := newTestServer(t, &captured)
	defer srv.Close()

	gw := New(func(o *Options) {
		o.BaseURL = srv.URL
		o.APIKey = "pplx-test"
	})

	completion, err := gw.Complete(context.Background(), "You are a router.", "schedule lunch")
	require.NoError(t, err)

	text, err := completion.Text()
	require.NoError(t, err)
	assert.Equal(t, "Go is a programming language.", text)
	assert.Empty(t, completion.SearchResults)

	assert.Equal(t, "sonar-pro", captured["model"])
	assert.Equal(t, false, captured["search"])

	messages := captured["messages"].([]any)
	require.Len(t, messages, 2)
	first := messages[0].(map[string]any)
	assert.Equal(t, "system", first["role"])
	assert.Equal(t, "You are a router.", first["content"])
	second := messages[1].(map[string]any)
	assert.Equal(t, "user", second["role"])
	assert.Equal(t, "schedule lunch", second["content"])
}

func TestSearch_EnablesSearchAndParsesResults(t *testing.T) {
	var captured map[string]any
	srv := newTestServer(t, &captured)
	defer srv.Close()

	gw := New(func(o *Options) {
		o.BaseURL = srv.URL
		o.APIKey = "pplx-test"
	})

	completion, err := gw.Search(context.Background(), "golang news")
	require.NoError(t, err)

	assert.Equal(t, true, captured["search"])
	// No system message on the search path.
	messages := captured["messages"].([]any)
	require.Len(t, messages, 1)

	require.Len(t, completion.SearchResults, 1)
	assert.Equal(t, gateway.SearchResult{
		Title:   "Go homepage",
		URL:     "https://go.dev",
		Snippet: "Build simple software",
		Date:    "2025-01-01",
	}, completion.SearchResults[0])
}

func TestComplete_EmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "cmpl-2", "model": "sonar-pro", "choices": []}`))
	}))
	defer srv.Close()

	gw := New(func(o *Options) {
		o.BaseURL = srv.URL
		o.APIKey = "pplx-test"
	})

	_, err := gw.Complete(context.Background(), "s", "u")
	assert.ErrorIs(t, err, gateway.ErrEmptyCompletion)
}

func TestComplete_APIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, `{"error": {"message": "invalid api key"}}`, http.StatusUnauthorized)
	}))
	defer srv.Close()

	gw := New(func(o *Options) {
		o.BaseURL = srv.URL
		o.APIKey = "bad-key"
	})

	_, err := gw.Complete(context.Background(), "s", "u")
	assert.ErrorContains(t, err, "perplexity api error")
}

func TestDefaultOptions(t *testing.T) {
	opts := defaultOptions()
	assert.Equal(t, "sonar-pro", opts.Model)
	assert.Equal(t, float64(0), opts.Temperature)
	assert.Equal(t, int64(4096), opts.MaxTokens)
	assert.Equal(t, DefaultBaseURL, opts.BaseURL)
}
