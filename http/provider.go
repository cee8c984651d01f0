// Package http provides transport-level middleware for search providers
// that call external services: token-bucket rate limiting and retry with
// backoff. The discovery engine treats both as opaque provider policy.
package http

import (
	"context"
	"time"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
	"golang.org/x/time/rate"
)

// DefaultRetryDelays returns the backoff delays for search retries: 1s, 2s, 4s.
func DefaultRetryDelays() []time.Duration {
	return []time.Duration{1 * time.Second, 2 * time.Second, 4 * time.Second}
}

// Ensure RateLimitedProvider implements apidisco.SearchProvider at compile time.
var _ apidisco.SearchProvider = (*RateLimitedProvider)(nil)

// RateLimitedProvider wraps a SearchProvider with a token-bucket rate limit
// and retries transport-class (EINTERNAL) failures with backoff. Other
// error codes are returned immediately.
type RateLimitedProvider struct {
	next    apidisco.SearchProvider
	limiter *rate.Limiter
	delays  []time.Duration
}

// Option configures a RateLimitedProvider.
type Option func(*RateLimitedProvider)

// WithRetryDelays sets the retry delays for failed searches.
// Defaults to DefaultRetryDelays() if not specified. An empty slice
// disables retries.
func WithRetryDelays(delays []time.Duration) Option {
	return func(p *RateLimitedProvider) {
		p.delays = delays
	}
}

// NewRateLimitedProvider wraps next with a limiter allowing rps requests
// per second (burst of 1, no bursting).
func NewRateLimitedProvider(next apidisco.SearchProvider, rps float64, opts ...Option) *RateLimitedProvider {
	p := &RateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		delays:  DefaultRetryDelays(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Name returns the wrapped provider's identifier.
func (p *RateLimitedProvider) Name() string { return p.next.Name() }

// Search waits for the rate limit, then delegates to the wrapped provider,
// retrying EINTERNAL failures after each configured delay.
func (p *RateLimitedProvider) Search(ctx context.Context, query string, limit int) ([]*apidisco.SearchResult, error) {
	maxAttempts := len(p.delays) + 1

	var lastErr error
	for attempt := 0; attempt < maxAttempts; attempt++ {
		if err := p.limiter.Wait(ctx); err != nil {
			return nil, err
		}

		results, err := p.next.Search(ctx, query, limit)
		if err == nil {
			return results, nil
		}
		lastErr = err

		if apidisco.ErrorCode(err) != apidisco.EINTERNAL {
			return nil, err
		}
		if attempt >= maxAttempts-1 {
			break
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(p.delays[attempt]):
		}
	}

	return nil, lastErr
}
