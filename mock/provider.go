// Package mock provides hand-written mock implementations of the apidisco
// interfaces for testing.
package mock

import (
	"context"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
)

var _ apidisco.SearchProvider = (*SearchProvider)(nil)

// SearchProvider is a mock implementation of apidisco.SearchProvider.
type SearchProvider struct {
	SearchFn func(ctx context.Context, query string, limit int) ([]*apidisco.SearchResult, error)
	NameFn   func() string
}

func (p *SearchProvider) Search(ctx context.Context, query string, limit int) ([]*apidisco.SearchResult, error) {
	return p.SearchFn(ctx, query, limit)
}

func (p *SearchProvider) Name() string {
	if p.NameFn == nil {
		return "mock"
	}
	return p.NameFn()
}
