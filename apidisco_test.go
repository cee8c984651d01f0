package apidisco_test

import (
	"errors"
	"testing"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := apidisco.Errorf(apidisco.EQUERYSOURCE, "query file not found: %q", "domains/weather/queries.yaml")

	assert.Equal(t, apidisco.EQUERYSOURCE, apidisco.ErrorCode(err))
	assert.Equal(t, "query file not found: \"domains/weather/queries.yaml\"", apidisco.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, apidisco.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, apidisco.EINTERNAL, apidisco.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, apidisco.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", apidisco.ErrorMessage(errors.New("boom")))
}

func TestSearchResult_Validate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		result   apidisco.SearchResult
		wantCode string
	}{
		{
			name: "valid",
			result: apidisco.SearchResult{
				Query:    "weather API",
				Title:    "weather API result 1",
				URL:      "https://weather-api.api-docs.example.com/reference",
				Rank:     1,
				Provider: "dummy",
			},
		},
		{
			name:     "missing query",
			result:   apidisco.SearchResult{URL: "https://example.com", Rank: 1, Provider: "dummy"},
			wantCode: apidisco.EINVALID,
		},
		{
			name:     "missing URL",
			result:   apidisco.SearchResult{Query: "weather API", Rank: 1, Provider: "dummy"},
			wantCode: apidisco.EINVALID,
		},
		{
			name:     "missing provider",
			result:   apidisco.SearchResult{Query: "weather API", URL: "https://example.com", Rank: 1},
			wantCode: apidisco.EINVALID,
		},
		{
			name:     "zero rank",
			result:   apidisco.SearchResult{Query: "weather API", URL: "https://example.com", Rank: 0, Provider: "dummy"},
			wantCode: apidisco.EINVALID,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := tt.result.Validate()

			if tt.wantCode == "" {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, tt.wantCode, apidisco.ErrorCode(err))
		})
	}
}

func TestSearchConfig_Validate(t *testing.T) {
	t.Parallel()

	t.Run("defaults are valid", func(t *testing.T) {
		t.Parallel()

		assert.NoError(t, apidisco.DefaultSearchConfig().Validate())
	})

	t.Run("rejects non-positive caps", func(t *testing.T) {
		t.Parallel()

		cfg := apidisco.DefaultSearchConfig()
		cfg.GlobalResultCap = 0

		assert.Equal(t, apidisco.ECONFIG, apidisco.ErrorCode(cfg.Validate()))
	})
}

func TestResultsChecksum(t *testing.T) {
	t.Parallel()

	a := []*apidisco.SearchResult{
		{Query: "q", Title: "t", URL: "https://a.example.com/reference", Rank: 1, Provider: "dummy", Score: 1.5},
		{Query: "q", Title: "t2", URL: "https://b.example.com/reference", Rank: 2, Provider: "dummy", Score: 1.4},
	}
	b := []*apidisco.SearchResult{
		{Query: "q", Title: "t", URL: "https://a.example.com/reference", Rank: 1, Provider: "dummy", Score: 1.5},
		{Query: "q", Title: "t2", URL: "https://b.example.com/reference", Rank: 2, Provider: "dummy", Score: 1.4},
	}

	t.Run("identical result sets hash identically", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, apidisco.ResultsChecksum(a), apidisco.ResultsChecksum(b))
	})

	t.Run("order changes the hash", func(t *testing.T) {
		t.Parallel()

		reversed := []*apidisco.SearchResult{b[1], b[0]}
		assert.NotEqual(t, apidisco.ResultsChecksum(a), apidisco.ResultsChecksum(reversed))
	})
}
