package apidisco

import (
	"context"
	"strings"
)

// QuerySource produces the search queries for a domain.
// Implementations may load curated files, generate queries dynamically, or
// compose multiple approaches. A limit of 0 means "use the configured
// default".
type QuerySource interface {
	// Queries returns the cleaned, ordered query list for a domain.
	// Returns EQUERYSOURCE if the source is missing, malformed, or yields
	// no valid queries.
	Queries(ctx context.Context, domain string, limit int) ([]string, error)
}

// CleanQueries validates a raw query list: entries are trimmed, empty
// entries are dropped, and case-insensitive duplicates are dropped keeping
// the first occurrence (original order preserved) unless allowDuplicates is
// set. The cleaned list is truncated to limit; a limit <= 0 means no
// truncation.
func CleanQueries(queries []string, limit int, allowDuplicates bool) []string {
	cleaned := make([]string, 0, len(queries))
	seen := make(map[string]struct{}, len(queries))

	for _, q := range queries {
		q = strings.TrimSpace(q)
		if q == "" {
			continue
		}
		key := strings.ToLower(q)
		if !allowDuplicates {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
		}
		cleaned = append(cleaned, q)
		if limit > 0 && len(cleaned) >= limit {
			break
		}
	}

	return cleaned
}
