// Package slog provides logging decorators for apidisco interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
)

// Ensure LoggingProvider implements apidisco.SearchProvider.
var _ apidisco.SearchProvider = (*LoggingProvider)(nil)

// LoggingProvider wraps a SearchProvider with structured logging of each
// search call.
type LoggingProvider struct {
	next   apidisco.SearchProvider
	logger *slog.Logger
}

// NewLoggingProvider creates a new LoggingProvider.
func NewLoggingProvider(next apidisco.SearchProvider, logger *slog.Logger) *LoggingProvider {
	return &LoggingProvider{next: next, logger: logger}
}

// Search delegates to the wrapped provider and logs the outcome.
func (p *LoggingProvider) Search(ctx context.Context, query string, limit int) ([]*apidisco.SearchResult, error) {
	begin := time.Now()
	results, err := p.next.Search(ctx, query, limit)
	if err != nil {
		p.logger.Error("search failed",
			"provider", p.next.Name(),
			"query", query,
			"duration", time.Since(begin),
			"error", err,
		)
		return nil, err
	}

	p.logger.Info("search",
		"provider", p.next.Name(),
		"query", query,
		"results", len(results),
		"duration", time.Since(begin),
	)
	return results, nil
}

// Name delegates to the wrapped provider.
func (p *LoggingProvider) Name() string {
	return p.next.Name()
}
