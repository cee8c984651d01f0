package apidisco

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/cespare/xxhash/v2"
)

// TimestampFormat is the layout for artifact timestamps (UTC, compact
// ISO 8601, e.g. 20250108T142301Z).
const TimestampFormat = "20060102T150405Z"

// DiscoveryArtifact is the persisted, timestamped record of one discovery
// run. It is created once per run and never mutated after creation.
type DiscoveryArtifact struct {
	Domain      string          `json:"domain"`
	GeneratedAt string          `json:"generated_at"`
	Provider    string          `json:"provider"`
	QueriesUsed []string        `json:"queries_used"`
	Results     []*SearchResult `json:"results"`
	Checksum    string          `json:"checksum,omitempty"`
}

// Validate returns an error if the artifact contains invalid fields.
func (a *DiscoveryArtifact) Validate() error {
	if a.Domain == "" {
		return Errorf(EINVALID, "artifact domain required")
	}
	if a.GeneratedAt == "" {
		return Errorf(EINVALID, "artifact timestamp required")
	}
	if a.Provider == "" {
		return Errorf(EINVALID, "artifact provider required")
	}
	return nil
}

// ResultsChecksum computes a stable xxhash-64 digest over a result list so
// two runs producing identical results can be compared cheaply.
func ResultsChecksum(results []*SearchResult) string {
	h := xxhash.New()
	for _, r := range results {
		b, err := json.Marshal(r)
		if err != nil {
			continue
		}
		_, _ = h.Write(b)
		_, _ = h.Write([]byte{'\n'})
	}
	return fmt.Sprintf("%016x", h.Sum64())
}

// ArtifactStore persists discovery artifacts.
type ArtifactStore interface {
	// Save writes the artifact and returns the location written.
	Save(ctx context.Context, artifact *DiscoveryArtifact) (string, error)
}

// Run records one completed discovery run for later inspection.
type Run struct {
	ID           string    `json:"id"`
	Domain       string    `json:"domain"`
	Provider     string    `json:"provider"`
	ArtifactPath string    `json:"artifactPath"`
	Checksum     string    `json:"checksum"`
	ResultCount  int       `json:"resultCount"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.Domain == "" {
		return Errorf(EINVALID, "run domain required")
	}
	if r.Provider == "" {
		return Errorf(EINVALID, "run provider required")
	}
	return nil
}

// RunService stores and retrieves discovery run history.
type RunService interface {
	// RecordRun persists a run record, assigning ID and CreatedAt.
	RecordRun(ctx context.Context, run *Run) error

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	Domain *string `json:"domain"`

	Limit int `json:"limit"`
}
