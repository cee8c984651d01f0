// Package discover provides the discovery pipeline orchestration.
// It coordinates query loading, provider search, canonicalization,
// de-duplication, scoring, capping, sorting, and artifact persistence.
package discover

import (
	"context"
	"sort"
	"time"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
)

// Engine orchestrates discovery runs. It is a straight-line pipeline with
// no internal state machine, safe to re-invoke per domain.
type Engine struct {
	Queries   apidisco.QuerySource
	Provider  apidisco.SearchProvider
	Artifacts apidisco.ArtifactStore
	Runs      apidisco.RunService // optional; nil disables run history
	Scorer    apidisco.Scorer
	Config    apidisco.SearchConfig

	// Now supplies artifact timestamps. Defaults to time.Now.
	Now func() time.Time
}

// Discover turns a domain into a ranked, de-duplicated result list.
//
// For each query, in order, the provider is asked for up to
// MaxResultsPerQuery results. Each result's URL is rewritten to its
// canonical form; results whose canonical URL was already seen in this run
// are silently dropped. Collection stops once GlobalResultCap results are
// gathered. The final list is sorted by score descending, ties broken by
// provider rank ascending.
func (e *Engine) Discover(ctx context.Context, domain string) ([]*apidisco.SearchResult, error) {
	queries, err := e.Queries.Queries(ctx, domain, 0)
	if err != nil {
		return nil, err
	}

	collected := make([]*apidisco.SearchResult, 0, e.Config.GlobalResultCap)
	seen := make(map[string]struct{})

	for _, query := range queries {
		batch, err := e.Provider.Search(ctx, query, e.Config.MaxResultsPerQuery)
		if err != nil {
			return nil, err
		}

		for _, r := range batch {
			canonical := apidisco.CanonicalURL(r.URL)
			if _, dup := seen[canonical]; dup {
				continue
			}
			r.URL = canonical
			r.Score = e.Scorer.Score(r)
			collected = append(collected, r)
			seen[canonical] = struct{}{}
			if len(collected) >= e.Config.GlobalResultCap {
				break
			}
		}
		if len(collected) >= e.Config.GlobalResultCap {
			break
		}
	}

	sort.SliceStable(collected, func(i, j int) bool {
		if collected[i].Score != collected[j].Score {
			return collected[i].Score > collected[j].Score
		}
		return collected[i].Rank < collected[j].Rank
	})

	return collected, nil
}

// Persist writes a timestamped artifact for a completed run and returns the
// location written. When a RunService is configured the run is recorded in
// history as well.
func (e *Engine) Persist(ctx context.Context, domain string, results []*apidisco.SearchResult) (string, error) {
	queries, err := e.Queries.Queries(ctx, domain, 0)
	if err != nil {
		return "", err
	}

	artifact := &apidisco.DiscoveryArtifact{
		Domain:      domain,
		GeneratedAt: e.now().UTC().Format(apidisco.TimestampFormat),
		Provider:    e.Provider.Name(),
		QueriesUsed: queries,
		Results:     results,
		Checksum:    apidisco.ResultsChecksum(results),
	}

	path, err := e.Artifacts.Save(ctx, artifact)
	if err != nil {
		return "", err
	}

	if e.Runs != nil {
		run := &apidisco.Run{
			Domain:       domain,
			Provider:     artifact.Provider,
			ArtifactPath: path,
			Checksum:     artifact.Checksum,
			ResultCount:  len(results),
		}
		if err := e.Runs.RecordRun(ctx, run); err != nil {
			return "", err
		}
	}

	return path, nil
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
