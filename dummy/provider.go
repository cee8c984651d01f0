// Package dummy provides a deterministic reference search provider so the
// discovery pipeline is reproducible without network access.
package dummy

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
)

// ProviderName identifies results produced by this provider.
const ProviderName = "dummy"

// maxSlugLen bounds the hostname slug derived from a query.
const maxSlugLen = 30

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Ensure Provider implements apidisco.SearchProvider at compile time.
var _ apidisco.SearchProvider = (*Provider)(nil)

// Provider derives synthetic hostnames from a slug of the query and emits
// fixed-pattern URLs simulating a mix of official documentation hosts and
// third-party aggregators.
type Provider struct{}

// NewProvider creates a dummy Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Name returns the provider identifier.
func (p *Provider) Name() string { return ProviderName }

// Search returns up to limit deterministic results for the query.
func (p *Provider) Search(ctx context.Context, query string, limit int) ([]*apidisco.SearchResult, error) {
	if limit < 0 {
		return nil, apidisco.Errorf(apidisco.EINVALID, "limit cannot be negative: %d", limit)
	}

	base := Slug(query)
	hosts := []string{
		fmt.Sprintf("%s.api-docs.example.com", base),
		fmt.Sprintf("developer.%s.example.com", base),
		fmt.Sprintf("%s.rapidapi.com", base),
		fmt.Sprintf("docs.%s.example.org", base),
		fmt.Sprintf("blog.%s.example.net", base),
	}
	if limit < len(hosts) {
		hosts = hosts[:limit]
	}

	results := make([]*apidisco.SearchResult, 0, len(hosts))
	for i, host := range hosts {
		results = append(results, &apidisco.SearchResult{
			Query:    query,
			Title:    fmt.Sprintf("%s result %d", query, i+1),
			URL:      fmt.Sprintf("https://%s/reference", host),
			Snippet:  fmt.Sprintf("Documentation for %s (%s)", query, host),
			Rank:     i + 1,
			Provider: ProviderName,
		})
	}

	return results, nil
}

// Slug lowercases a query, collapses non-alphanumeric runs to single
// hyphens, trims leading/trailing hyphens, and truncates to 30 characters.
func Slug(query string) string {
	s := nonAlphanumeric.ReplaceAllString(strings.ToLower(query), "-")
	s = strings.Trim(s, "-")
	if len(s) > maxSlugLen {
		s = s[:maxSlugLen]
	}
	return s
}
