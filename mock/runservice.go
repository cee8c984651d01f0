package mock

import (
	"context"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
)

var _ apidisco.RunService = (*RunService)(nil)

// RunService is a mock implementation of apidisco.RunService.
type RunService struct {
	RecordRunFn func(ctx context.Context, run *apidisco.Run) error
	FindRunsFn  func(ctx context.Context, filter apidisco.RunFilter) ([]*apidisco.Run, error)
}

func (s *RunService) RecordRun(ctx context.Context, run *apidisco.Run) error {
	return s.RecordRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter apidisco.RunFilter) ([]*apidisco.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
