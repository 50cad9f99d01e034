// Package googlenews implements the news boundary against the Google News
// RSS search feed. No API key is required; results are capped client-side.
package googlenews

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/autopilot-ai/autopilot/tool"
)

// DefaultBaseURL is the Google News RSS search endpoint.
const DefaultBaseURL = "https://news.google.com/rss/search"

// Options configure the news client.
type Options struct {
	HTTPClient *http.Client
	Timeout    time.Duration
	BaseURL    string
	Language   string
	Country    string
}

// Client implements tool.News against the Google News RSS feed.
type Client struct {
	httpClient *http.Client
	baseURL    string
	language   string
	country    string
}

// New constructs a news client with a timeout-bounded HTTP client.
func New(optFns ...func(o *Options)) *Client {
	opts := Options{
		Timeout:  15 * time.Second,
		BaseURL:  DefaultBaseURL,
		Language: "en-US",
		Country:  "US",
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}
	return &Client{
		httpClient: httpClient,
		baseURL:    opts.BaseURL,
		language:   opts.Language,
		country:    opts.Country,
	}
}

// rss mirrors the subset of the RSS 2.0 schema the feed uses.
type rss struct {
	Channel struct {
		Items []rssItem `xml:"item"`
	} `xml:"channel"`
}

type rssItem struct {
	Title       string `xml:"title"`
	Link        string `xml:"link"`
	PubDate     string `xml:"pubDate"`
	Description string `xml:"description"`
}

// Fetch implements tool.News: fetch the latest articles matching query,
// capped at maxResults.
func (c *Client) Fetch(ctx context.Context, query string, maxResults int) ([]tool.Article, error) {
	feedURL := fmt.Sprintf("%s?q=%s&hl=%s&gl=%s&ceid=%s:en",
		c.baseURL, url.QueryEscape(query), c.language, c.country, c.country)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("googlenews: build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("googlenews: fetch feed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("googlenews: fetch feed: unexpected status %d", resp.StatusCode)
	}

	var feed rss
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("googlenews: decode feed: %w", err)
	}

	items := feed.Channel.Items
	if maxResults > 0 && len(items) > maxResults {
		items = items[:maxResults]
	}

	articles := make([]tool.Article, 0, len(items))
	for _, item := range items {
		articles = append(articles, tool.Article{
			Title:   item.Title,
			Link:    item.Link,
			Snippet: item.Description,
			Date:    item.PubDate,
		})
	}
	return articles, nil
}
