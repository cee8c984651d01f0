// Package goquery provides an HTML-scraping search provider backed by the
// DuckDuckGo HTML endpoint. It needs no API key, which makes it the
// simplest real provider to run; results are parsed from the result page
// with goquery CSS selectors.
package goquery

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"time"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
	"github.com/PuerkitoBio/goquery"
)

// ProviderName identifies results produced by this provider.
const ProviderName = "duckduckgo"

// DefaultEndpoint is the DuckDuckGo HTML (no-JavaScript) search endpoint.
const DefaultEndpoint = "https://html.duckduckgo.com/html/"

// DefaultTimeout is the default timeout for search requests.
const DefaultTimeout = 10 * time.Second

// userAgent identifies the client; the HTML endpoint rejects empty agents.
const userAgent = "apidisco/1.0 (+https://github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System)"

// Ensure Provider implements apidisco.SearchProvider at compile time.
var _ apidisco.SearchProvider = (*Provider)(nil)

// Provider implements apidisco.SearchProvider by scraping the DuckDuckGo
// HTML results page.
type Provider struct {
	client   *http.Client
	endpoint string
	timeout  time.Duration
}

// Option configures a Provider.
type Option func(*Provider)

// WithHTTPClient sets the HTTP client used for search requests.
// Tests inject a client with a stub transport to avoid network access.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Provider) {
		p.client = client
	}
}

// WithEndpoint overrides the search endpoint URL.
func WithEndpoint(endpoint string) Option {
	return func(p *Provider) {
		p.endpoint = endpoint
	}
}

// WithTimeout sets the timeout for search requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(p *Provider) {
		p.timeout = d
	}
}

// NewProvider creates a DuckDuckGo HTML search provider.
func NewProvider(opts ...Option) *Provider {
	p := &Provider{
		endpoint: DefaultEndpoint,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.client == nil {
		p.client = &http.Client{Timeout: p.timeout}
	}
	return p
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return ProviderName }

// Search fetches the results page for the query and returns up to limit
// parsed results ranked in page order.
func (p *Provider) Search(ctx context.Context, query string, limit int) ([]*apidisco.SearchResult, error) {
	if limit <= 0 {
		return nil, nil
	}

	reqURL := p.endpoint + "?q=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, apidisco.Errorf(apidisco.EINTERNAL, "failed to build search request: %v", err)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, apidisco.Errorf(apidisco.EINTERNAL, "search request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apidisco.Errorf(apidisco.EINTERNAL, "search returned HTTP %d for %q", resp.StatusCode, query)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, apidisco.Errorf(apidisco.EINTERNAL, "failed to parse results page: %v", err)
	}

	var results []*apidisco.SearchResult
	doc.Find("div.result").EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		anchor := sel.Find("a.result__a").First()
		href, ok := anchor.Attr("href")
		if !ok || href == "" {
			return true
		}

		results = append(results, &apidisco.SearchResult{
			Query:    query,
			Title:    strings.TrimSpace(anchor.Text()),
			URL:      resolveRedirect(href),
			Snippet:  strings.TrimSpace(sel.Find("a.result__snippet").First().Text()),
			Rank:     len(results) + 1,
			Provider: ProviderName,
		})
		return len(results) < limit
	})

	return results, nil
}

// resolveRedirect unwraps DuckDuckGo's /l/?uddg=<encoded> redirect links,
// returning the target URL. Links without the redirect wrapper are returned
// as-is, with scheme-relative links normalized to https.
func resolveRedirect(href string) string {
	u, err := url.Parse(href)
	if err != nil {
		return href
	}
	if target := u.Query().Get("uddg"); target != "" {
		return target
	}
	if strings.HasPrefix(href, "//") {
		return "https:" + href
	}
	return href
}
