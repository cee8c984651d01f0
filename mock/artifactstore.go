package mock

import (
	"context"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
)

var _ apidisco.ArtifactStore = (*ArtifactStore)(nil)

// ArtifactStore is a mock implementation of apidisco.ArtifactStore.
type ArtifactStore struct {
	SaveFn func(ctx context.Context, artifact *apidisco.DiscoveryArtifact) (string, error)
}

func (s *ArtifactStore) Save(ctx context.Context, artifact *apidisco.DiscoveryArtifact) (string, error) {
	return s.SaveFn(ctx, artifact)
}
