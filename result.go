package apidisco

import "context"

// SearchResult represents a single ranked result returned by a search
// provider. The engine rewrites URL to its canonical form and assigns
// Score during discovery; results are immutable once emitted.
type SearchResult struct {
	Query    string  `json:"query"`
	Title    string  `json:"title"`
	URL      string  `json:"url"`
	Snippet  string  `json:"snippet,omitempty"`
	Rank     int     `json:"rank"`
	Provider string  `json:"provider"`
	Score    float64 `json:"score"`
}

// Validate returns an error if the result contains invalid fields.
func (r *SearchResult) Validate() error {
	if r.Query == "" {
		return Errorf(EINVALID, "result query required")
	}
	if r.URL == "" {
		return Errorf(EINVALID, "result URL required")
	}
	if r.Provider == "" {
		return Errorf(EINVALID, "result provider required")
	}
	if r.Rank < 1 {
		return Errorf(EINVALID, "result rank must be positive, got %d", r.Rank)
	}
	return nil
}

// SearchProvider returns ranked search results for a query.
// Implementations must rank results 1..limit in their own relevance order,
// return at most limit entries, and tag each result with their Name.
// Providers that call external search APIs own their timeout/retry policy;
// the engine only consumes the returned sequence or propagates the error.
type SearchProvider interface {
	// Search returns up to limit results for the query, ordered by rank.
	Search(ctx context.Context, query string, limit int) ([]*SearchResult, error)

	// Name returns the provider's identifier (e.g., "dummy", "duckduckgo").
	Name() string
}
