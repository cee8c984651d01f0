package apidisco

import (
	"net/url"
	"strings"
)

// Scorer computes a relevance score for search results from host-keyword
// matching and the provider-assigned rank. Keyword lists come from
// SearchConfig; the Scorer is an explicit value threaded through
// constructors rather than read from global state.
type Scorer struct {
	// Allowed keywords boost results whose hostname contains them.
	Allowed []string

	// Blocked keywords penalize results whose hostname contains them.
	Blocked []string
}

// NewScorer creates a Scorer from a search configuration.
func NewScorer(cfg SearchConfig) Scorer {
	return Scorer{
		Allowed: cfg.AllowedDomainKeywords,
		Blocked: cfg.BlockedDomainKeywords,
	}
}

// Score computes the relevance score for a result.
//
// Starting at 0.0, every allowed keyword whose lowercase form appears as a
// substring of the lowercase hostname adds +2.0 (cumulative), every blocked
// keyword matched the same way subtracts 3.0, and the rank contributes
// max(0, 1.5 - 0.1*(rank-1)).
func (s Scorer) Score(r *SearchResult) float64 {
	host := ""
	if u, err := url.Parse(r.URL); err == nil {
		host = strings.ToLower(u.Hostname())
	}

	score := 0.0
	for _, kw := range s.Allowed {
		if kw != "" && strings.Contains(host, strings.ToLower(kw)) {
			score += 2.0
		}
	}
	for _, kw := range s.Blocked {
		if kw != "" && strings.Contains(host, strings.ToLower(kw)) {
			score -= 3.0
		}
	}

	bonus := 1.5 - 0.1*float64(r.Rank-1)
	if bonus > 0 {
		score += bonus
	}

	return score
}
