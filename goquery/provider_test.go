package goquery_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	apidisco "github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System"
	"github.com/CianHerreraQuinn/Jentic-11-LLM-Powered-API-Discovery-System/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// roundTripperFunc adapts a function to http.RoundTripper so tests can
// serve fixture HTML without network access.
type roundTripperFunc func(*http.Request) (*http.Response, error)

func (f roundTripperFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func fixtureClient(t *testing.T, status int, body string, captured **http.Request) *http.Client {
	t.Helper()

	return &http.Client{
		Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
			if captured != nil {
				*captured = req
			}
			return &http.Response{
				StatusCode: status,
				Body:       io.NopCloser(strings.NewReader(body)),
				Header:     make(http.Header),
				Request:    req,
			}, nil
		}),
	}
}

const resultsPage = `<!DOCTYPE html>
<html><body>
<div class="results">
  <div class="result results_links results_links_deep web-result">
    <h2 class="result__title">
      <a class="result__a" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fopenweathermap.org%2Fapi%3Futm_source%3Dddg">OpenWeatherMap API</a>
    </h2>
    <a class="result__snippet" href="//duckduckgo.com/l/?uddg=https%3A%2F%2Fopenweathermap.org%2Fapi">Weather API documentation and guides.</a>
  </div>
  <div class="result results_links results_links_deep web-result">
    <h2 class="result__title">
      <a class="result__a" href="https://docs.tomorrow.io/reference">Tomorrow.io Weather API</a>
    </h2>
    <a class="result__snippet" href="https://docs.tomorrow.io/reference">Developer reference for the weather API.</a>
  </div>
  <div class="result">
    <h2 class="result__title"><a class="result__a" href="">broken result</a></h2>
  </div>
  <div class="result results_links results_links_deep web-result">
    <h2 class="result__title">
      <a class="result__a" href="//weatherstack.com/documentation">Weatherstack Docs</a>
    </h2>
    <a class="result__snippet" href="//weatherstack.com/documentation">Real-time weather REST API.</a>
  </div>
</div>
</body></html>`

func TestProvider_Search(t *testing.T) {
	t.Parallel()

	t.Run("parses results in page order with one-based ranks", func(t *testing.T) {
		t.Parallel()

		var captured *http.Request
		p := goquery.NewProvider(goquery.WithHTTPClient(fixtureClient(t, http.StatusOK, resultsPage, &captured)))

		results, err := p.Search(context.Background(), "weather API docs", 5)

		require.NoError(t, err)
		require.Len(t, results, 3)

		assert.Equal(t, "OpenWeatherMap API", results[0].Title)
		assert.Equal(t, "https://openweathermap.org/api?utm_source=ddg", results[0].URL)
		assert.Equal(t, "Weather API documentation and guides.", results[0].Snippet)
		assert.Equal(t, 1, results[0].Rank)

		assert.Equal(t, "https://docs.tomorrow.io/reference", results[1].URL)
		assert.Equal(t, 2, results[1].Rank)

		// Scheme-relative links are normalized to https.
		assert.Equal(t, "https://weatherstack.com/documentation", results[2].URL)
		assert.Equal(t, 3, results[2].Rank)

		for _, r := range results {
			assert.Equal(t, "duckduckgo", r.Provider)
			assert.Equal(t, "weather API docs", r.Query)
			assert.NoError(t, r.Validate())
		}

		require.NotNil(t, captured)
		assert.Equal(t, "weather API docs", captured.URL.Query().Get("q"))
		assert.NotEmpty(t, captured.Header.Get("User-Agent"))
	})

	t.Run("honors the limit", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProvider(goquery.WithHTTPClient(fixtureClient(t, http.StatusOK, resultsPage, nil)))

		results, err := p.Search(context.Background(), "weather API docs", 2)

		require.NoError(t, err)
		assert.Len(t, results, 2)
	})

	t.Run("zero limit returns nothing without a request", func(t *testing.T) {
		t.Parallel()

		requested := false
		client := &http.Client{
			Transport: roundTripperFunc(func(req *http.Request) (*http.Response, error) {
				requested = true
				return nil, nil
			}),
		}
		p := goquery.NewProvider(goquery.WithHTTPClient(client))

		results, err := p.Search(context.Background(), "weather API docs", 0)

		require.NoError(t, err)
		assert.Empty(t, results)
		assert.False(t, requested)
	})

	t.Run("non-200 response fails with EINTERNAL", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProvider(goquery.WithHTTPClient(fixtureClient(t, http.StatusTooManyRequests, "slow down", nil)))

		_, err := p.Search(context.Background(), "weather API docs", 5)

		assert.Equal(t, apidisco.EINTERNAL, apidisco.ErrorCode(err))
	})

	t.Run("empty page yields no results", func(t *testing.T) {
		t.Parallel()

		p := goquery.NewProvider(goquery.WithHTTPClient(fixtureClient(t, http.StatusOK, "<html><body></body></html>", nil)))

		results, err := p.Search(context.Background(), "weather API docs", 5)

		require.NoError(t, err)
		assert.Empty(t, results)
	})
}

func TestProvider_Name(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "duckduckgo", goquery.NewProvider().Name())
}
