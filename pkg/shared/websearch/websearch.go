// Package websearch aggregates best-effort results from DuckDuckGo's HTML
// endpoint. Search failures of any kind degrade to an empty result list so a
// flaky network or a markup change never aborts a research operation.
package websearch

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
)

const (
	defaultEndpoint = "https://html.duckduckgo.com/html/"
	// Browser-like UA; the endpoint serves a challenge page to obvious bots.
	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36"
	defaultTimeout   = 15 * time.Second

	// maxResults caps a single query at the count the source page carries.
	maxResults = 10
)

// Result is a single search hit in source (relevance) order. Link and Snippet
// may be empty; Title never is.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Options override Client defaults. Zero values keep the defaults.
type Options struct {
	HTTPClient *http.Client
	Endpoint   string
	UserAgent  string
	Timeout    time.Duration
}

// Client issues search queries against the HTML endpoint.
type Client struct {
	http      *http.Client
	endpoint  string
	userAgent string
	log       zerolog.Logger
}

// NewClient creates a search client. The underlying HTTP client follows
// redirects and enforces the configured timeout on every call.
func NewClient(log zerolog.Logger, opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = defaultTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	endpoint := opts.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	return &Client{
		http:      httpClient,
		endpoint:  endpoint,
		userAgent: userAgent,
		log:       log.With().Str("component", "websearch").Logger(),
	}
}

// Search runs a single query and returns up to 10 results. Transport errors,
// non-2xx statuses, and parse failures are logged and reported as an empty
// slice, never as an error.
func (c *Client) Search(ctx context.Context, query string) []Result {
	reqURL := c.endpoint + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.log.Error().Err(err).Str("query", query).Msg("Failed to build search request")
		return nil
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("query", query).Msg("Web search request failed")
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.log.Error().Int("status", resp.StatusCode).Str("query", query).Msg("Web search returned non-2xx status")
		return nil
	}

	results, err := parseResults(resp.Body)
	if err != nil {
		c.log.Error().Err(err).Str("query", query).Msg("Failed to parse search results")
		return nil
	}
	c.log.Debug().Str("query", query).Int("results", len(results)).Msg("Web search completed")
	return results
}

// SearchAll runs queries sequentially in declaration order, keeps the first
// perQuery hits of each, and concatenates them. Duplicates across queries are
// kept on purpose: demand validation favors over-reporting signals over
// missing them.
func (c *Client) SearchAll(ctx context.Context, queries []string, perQuery int) []Result {
	var all []Result
	for _, query := range queries {
		results := c.Search(ctx, query)
		if perQuery > 0 && len(results) > perQuery {
			results = results[:perQuery]
		}
		all = append(all, results...)
	}
	return all
}
