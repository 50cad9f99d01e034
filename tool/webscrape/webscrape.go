// Package webscrape implements the web search and scrape boundaries on top
// of plain HTTP fetches. Search extracts the lead paragraphs of the matching
// Wikipedia article (no API key required); Scrape converts an arbitrary page
// into readable text by stripping markup, scripts and styles.
package webscrape

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.77 Safari/537.36"

var blankLines = regexp.MustCompile(`\n{3,}`)

// Options configure the web client.
type Options struct {
	HTTPClient    *http.Client
	Timeout       time.Duration
	WikipediaBase string
	// MaxSearchParagraphs caps how many lead paragraphs Search returns.
	MaxSearchParagraphs int
}

// Client implements tool.WebSearcher and tool.Scraper.
type Client struct {
	httpClient          *http.Client
	wikipediaBase       string
	maxSearchParagraphs int
}

// New constructs a web client with a timeout-bounded HTTP client.
func New(optFns ...func(o *Options)) *Client {
	opts := Options{
		Timeout:             30 * time.Second,
		WikipediaBase:       "https://en.wikipedia.org/wiki/",
		MaxSearchParagraphs: 5,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: opts.Timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		}
	}
	return &Client{
		httpClient:          httpClient,
		wikipediaBase:       opts.WikipediaBase,
		maxSearchParagraphs: opts.MaxSearchParagraphs,
	}
}

// Search implements tool.WebSearcher by fetching the Wikipedia article for
// the query and returning its lead paragraphs as plain text.
func (c *Client) Search(ctx context.Context, query string) (string, error) {
	page := c.wikipediaBase + url.PathEscape(strings.ReplaceAll(query, " ", "_"))

	doc, err := c.fetch(ctx, page)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	doc.Find("p").EachWithBreak(func(i int, s *goquery.Selection) bool {
		if i >= c.maxSearchParagraphs {
			return false
		}
		sb.WriteString(strings.TrimSpace(s.Text()))
		sb.WriteString("\n")
		return true
	})

	content := strings.TrimSpace(sb.String())
	if content == "" {
		return "No readable content.", nil
	}
	return content, nil
}

// Scrape implements tool.Scraper: fetch the page, drop non-content elements
// and emit the remaining text with heading structure preserved.
func (c *Client) Scrape(ctx context.Context, pageURL string) (string, error) {
	doc, err := c.fetch(ctx, pageURL)
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, iframe").Remove()

	var sb strings.Builder
	doc.Find("h1, h2, h3, h4, h5, h6, p, li, blockquote, pre").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if text == "" {
			return
		}
		if prefix := headingPrefix(goquery.NodeName(s)); prefix != "" {
			sb.WriteString(prefix)
			sb.WriteString(" ")
		}
		sb.WriteString(text)
		sb.WriteString("\n\n")
	})

	content := sb.String()
	if strings.TrimSpace(content) == "" {
		// Fall back to whole-body text for pages without semantic markup.
		content = doc.Find("body").Text()
	}
	content = blankLines.ReplaceAllString(content, "\n\n")
	return strings.TrimSpace(content), nil
}

func (c *Client) fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("webscrape: build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webscrape: fetch %s: %w", pageURL, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("webscrape: fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("webscrape: parse %s: %w", pageURL, err)
	}
	return doc, nil
}

func headingPrefix(node string) string {
	switch node {
	case "h1":
		return "#"
	case "h2":
		return "##"
	case "h3":
		return "###"
	case "h4":
		return "####"
	case "h5":
		return "#####"
	case "h6":
		return "######"
	case "li":
		return "-"
	case "blockquote":
		return ">"
	default:
		return ""
	}
}
