package apidisco

import "context"

// Default values for SearchConfig fields absent from the configuration
// file.
const (
	DefaultQueryLimit         = 5
	DefaultDomainsBaseDir     = "domains"
	DefaultQueriesFilename    = "queries.yaml"
	DefaultMaxResultsPerQuery = 5
	DefaultGlobalResultCap    = 15
)

// SearchConfig holds the discovery pipeline configuration.
type SearchConfig struct {
	// DefaultQueryLimit caps the query list when callers pass no limit.
	DefaultQueryLimit int

	// DomainsBaseDir is the directory holding per-domain query files.
	DomainsBaseDir string

	// QueriesFilename is the query file name within each domain directory.
	QueriesFilename string

	// AllowDuplicates disables case-insensitive duplicate dropping during
	// query cleaning.
	AllowDuplicates bool

	// MaxResultsPerQuery is the per-query limit passed to the provider.
	MaxResultsPerQuery int

	// GlobalResultCap bounds the total results collected in one run.
	GlobalResultCap int

	// AllowedDomainKeywords boost result hostnames that contain them.
	AllowedDomainKeywords []string

	// BlockedDomainKeywords penalize result hostnames that contain them.
	BlockedDomainKeywords []string
}

// DefaultSearchConfig returns a SearchConfig populated with defaults.
func DefaultSearchConfig() SearchConfig {
	return SearchConfig{
		DefaultQueryLimit:  DefaultQueryLimit,
		DomainsBaseDir:     DefaultDomainsBaseDir,
		QueriesFilename:    DefaultQueriesFilename,
		MaxResultsPerQuery: DefaultMaxResultsPerQuery,
		GlobalResultCap:    DefaultGlobalResultCap,
	}
}

// Validate returns an error if the configuration contains values the
// pipeline cannot run with.
func (c SearchConfig) Validate() error {
	if c.DefaultQueryLimit < 1 {
		return Errorf(ECONFIG, "default_query_limit must be positive, got %d", c.DefaultQueryLimit)
	}
	if c.MaxResultsPerQuery < 1 {
		return Errorf(ECONFIG, "max_results_per_query must be positive, got %d", c.MaxResultsPerQuery)
	}
	if c.GlobalResultCap < 1 {
		return Errorf(ECONFIG, "global_result_cap must be positive, got %d", c.GlobalResultCap)
	}
	if c.QueriesFilename == "" {
		return Errorf(ECONFIG, "queries_filename required")
	}
	return nil
}

// Settings is the container for all top-level configuration sections.
// It must be treated as read-only after load.
type Settings struct {
	Search SearchConfig
}

// SettingsService loads process configuration. Load returns a cached value
// after the first read; Reload bypasses the cache.
type SettingsService interface {
	// Load returns the settings, reading from disk on first call.
	// Returns ECONFIG if the file is missing or malformed.
	Load(ctx context.Context) (*Settings, error)

	// Reload forces a fresh read from disk, replacing the cached value.
	Reload(ctx context.Context) (*Settings, error)
}
