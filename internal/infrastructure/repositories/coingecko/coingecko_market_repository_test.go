//go:build unit

package coingecko_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartops/chartsync/internal/infrastructure/repositories/coingecko"
)

func newTestRepository(serverURL string) *coingecko.CoinGeckoMarketRepository {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = 2
	retryClient.RetryWaitMin = time.Millisecond
	retryClient.RetryWaitMax = 5 * time.Millisecond
	retryClient.Logger = nil
	return coingecko.NewMarketRepositoryForTest(serverURL, retryClient.StandardClient())
}

func TestFetchPriceHistory(t *testing.T) {
	t.Parallel()

	t.Run("should parse the prices payload into an ordered series", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/coins/ethereum/market_chart", r.URL.Path)
				assert.Equal(t, "usd", r.URL.Query().Get("vs_currency"))
				assert.Equal(t, "7", r.URL.Query().Get("days"))
				assert.Equal(t, "daily", r.URL.Query().Get("interval"))

				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(
					`{"prices":[[1756684800000,4321.5],[1756771200000,4400.25]]}`,
				))
			},
		))
		defer server.Close()
		repo := newTestRepository(server.URL)

		// when
		series, err := repo.FetchPriceHistory(context.Background(), "ethereum", 7)

		// then
		require.NoError(t, err)
		require.Len(t, series, 2)
		assert.Equal(t, time.UnixMilli(1756684800000).UTC(), series[0].Time)
		assert.InDelta(t, 4321.5, series[0].Price, 1e-9)
		assert.InDelta(t, 4400.25, series[1].Price, 1e-9)
	})

	t.Run("should retry after a rate limit response", func(t *testing.T) {
		t.Parallel()

		// given
		var calls atomic.Int32
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				if calls.Add(1) == 1 {
					w.WriteHeader(http.StatusTooManyRequests)
					return
				}
				_, _ = w.Write([]byte(`{"prices":[[1756684800000,4321.5]]}`))
			},
		))
		defer server.Close()
		repo := newTestRepository(server.URL)

		// when
		series, err := repo.FetchPriceHistory(context.Background(), "ethereum", 7)

		// then
		require.NoError(t, err)
		assert.Len(t, series, 1)
		assert.Equal(t, int32(2), calls.Load())
	})

	t.Run("should fail when prices are missing from the response", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{}`))
			},
		))
		defer server.Close()
		repo := newTestRepository(server.URL)

		// when
		_, err := repo.FetchPriceHistory(context.Background(), "ethereum", 7)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no prices")
	})

	t.Run("should fail on a non-success status", func(t *testing.T) {
		t.Parallel()

		// given
		server := httptest.NewServer(http.HandlerFunc(
			func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		))
		defer server.Close()
		repo := newTestRepository(server.URL)

		// when
		_, err := repo.FetchPriceHistory(context.Background(), "not-a-coin", 7)

		// then
		require.Error(t, err)
		assert.Contains(t, err.Error(), "404")
	})
}
