package mock

import (
	"context"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
)

var _ apidisco.QuerySource = (*QuerySource)(nil)

// QuerySource is a mock implementation of apidisco.QuerySource.
type QuerySource struct {
	QueriesFn func(ctx context.Context, domain string, limit int) ([]string, error)
}

func (s *QuerySource) Queries(ctx context.Context, domain string, limit int) ([]string, error) {
	return s.QueriesFn(ctx, domain, limit)
}
