// Package fs provides file-based storage for discovery artifacts.
package fs

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
)

// DefaultArtifactDir is where artifacts are written unless overridden.
const DefaultArtifactDir = "apis/_discovery"

// Ensure ArtifactStore implements apidisco.ArtifactStore at compile time.
var _ apidisco.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore writes discovery artifacts as JSON documents named
// {domain}_{generated_at}.json under a base directory.
type ArtifactStore struct {
	baseDir string
}

// NewArtifactStore creates an ArtifactStore writing to baseDir.
// An empty baseDir falls back to DefaultArtifactDir.
func NewArtifactStore(baseDir string) *ArtifactStore {
	if baseDir == "" {
		baseDir = DefaultArtifactDir
	}
	return &ArtifactStore{baseDir: baseDir}
}

// Save writes the artifact to disk, creating intermediate directories as
// needed, and returns the path written.
func (s *ArtifactStore) Save(ctx context.Context, artifact *apidisco.DiscoveryArtifact) (string, error) {
	if err := artifact.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(s.baseDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create artifact directory %q: %w", s.baseDir, err)
	}

	data, err := json.MarshalIndent(artifact, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode artifact: %w", err)
	}

	path := filepath.Join(s.baseDir, fmt.Sprintf("%s_%s.json", artifact.Domain, artifact.GeneratedAt))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write artifact %q: %w", path, err)
	}

	return path, nil
}
