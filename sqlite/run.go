package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ apidisco.RunService = (*RunService)(nil)

// RunService implements apidisco.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// RecordRun persists a run record, assigning ID and CreatedAt.
func (s *RunService) RecordRun(ctx context.Context, run *apidisco.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, domain, provider, artifact_path, checksum, result_count, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Domain, run.Provider, run.ArtifactPath, run.Checksum, run.ResultCount,
		run.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter apidisco.RunFilter) ([]*apidisco.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, domain, provider, artifact_path, checksum, result_count, created_at FROM runs WHERE 1=1")

	if filter.Domain != nil {
		query.WriteString(" AND domain = ?")
		args = append(args, *filter.Domain)
	}

	query.WriteString(" ORDER BY created_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*apidisco.Run
	for rows.Next() {
		var run apidisco.Run
		var createdAt string

		if err := rows.Scan(&run.ID, &run.Domain, &run.Provider, &run.ArtifactPath,
			&run.Checksum, &run.ResultCount, &createdAt); err != nil {
			return nil, err
		}

		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}
