package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
	"github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustOpenDB opens an in-memory database for testing.
func mustOpenDB(t *testing.T) *sqlite.DB {
	t.Helper()

	db := sqlite.NewDB(":memory:")
	require.NoError(t, db.Open())
	t.Cleanup(func() {
		assert.NoError(t, db.Close())
	})
	return db
}

func testRun(domain string) *apidisco.Run {
	return &apidisco.Run{
		Domain:       domain,
		Provider:     "dummy",
		ArtifactPath: "apis/_discovery/" + domain + "_20250108T142301Z.json",
		Checksum:     "00000000deadbeef",
		ResultCount:  12,
	}
}

func TestDB_Open(t *testing.T) {
	t.Parallel()

	t.Run("creates missing parent directories", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "nested", "dir", "history.db")

		db := sqlite.NewDB(path)
		require.NoError(t, db.Open())
		t.Cleanup(func() {
			assert.NoError(t, db.Close())
		})

		assert.FileExists(t, path)
	})
}

func TestRunService_RecordRun(t *testing.T) {
	t.Parallel()

	t.Run("assigns ID and timestamp", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))
		run := testRun("weather")

		err := svc.RecordRun(context.Background(), run)

		require.NoError(t, err)
		assert.NotEmpty(t, run.ID)
		assert.False(t, run.CreatedAt.IsZero())
	})

	t.Run("rejects run without domain", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))
		run := testRun("")

		err := svc.RecordRun(context.Background(), run)

		assert.Equal(t, apidisco.EINVALID, apidisco.ErrorCode(err))
	})
}

func TestRunService_FindRuns(t *testing.T) {
	t.Parallel()

	t.Run("round-trips recorded runs", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))
		run := testRun("weather")
		require.NoError(t, svc.RecordRun(context.Background(), run))

		runs, err := svc.FindRuns(context.Background(), apidisco.RunFilter{})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, run.ID, runs[0].ID)
		assert.Equal(t, "weather", runs[0].Domain)
		assert.Equal(t, "dummy", runs[0].Provider)
		assert.Equal(t, run.ArtifactPath, runs[0].ArtifactPath)
		assert.Equal(t, "00000000deadbeef", runs[0].Checksum)
		assert.Equal(t, 12, runs[0].ResultCount)
	})

	t.Run("filters by domain", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))
		require.NoError(t, svc.RecordRun(context.Background(), testRun("weather")))
		require.NoError(t, svc.RecordRun(context.Background(), testRun("payments")))

		domain := "payments"
		runs, err := svc.FindRuns(context.Background(), apidisco.RunFilter{Domain: &domain})

		require.NoError(t, err)
		require.Len(t, runs, 1)
		assert.Equal(t, "payments", runs[0].Domain)
	})

	t.Run("applies limit", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))
		for i := 0; i < 3; i++ {
			require.NoError(t, svc.RecordRun(context.Background(), testRun("weather")))
		}

		runs, err := svc.FindRuns(context.Background(), apidisco.RunFilter{Limit: 2})

		require.NoError(t, err)
		assert.Len(t, runs, 2)
	})

	t.Run("empty table returns no runs", func(t *testing.T) {
		t.Parallel()

		svc := sqlite.NewRunService(mustOpenDB(t))

		runs, err := svc.FindRuns(context.Background(), apidisco.RunFilter{})

		require.NoError(t, err)
		assert.Empty(t, runs)
	})
}
