package coingecko

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/chartops/chartsync/internal/domain/entities"
	"github.com/chartops/chartsync/internal/domain/repositories"
)

const (
	defaultBaseURL = "https://api.coingecko.com/api/v3"
	retryMax       = 3
	// The free CoinGecko tier rate-limits aggressively; back off hard on 429.
	retryWaitMin   = 10 * time.Second
	retryWaitMax   = 30 * time.Second
	requestTimeout = 30 * time.Second
)

// CoinGeckoMarketRepository implements repositories.MarketRepository against
// the public CoinGecko API. Rate-limited (429) and transient server errors
// are retried by the underlying client.
type CoinGeckoMarketRepository struct {
	baseURL string
	client  *http.Client
}

// NewMarketRepository creates a market repository for the public CoinGecko API.
func NewMarketRepository() repositories.MarketRepository {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = retryMax
	retryClient.RetryWaitMin = retryWaitMin
	retryClient.RetryWaitMax = retryWaitMax
	retryClient.HTTPClient.Timeout = requestTimeout
	retryClient.Logger = nil

	return newMarketRepository(defaultBaseURL, retryClient.StandardClient())
}

func newMarketRepository(baseURL string, client *http.Client) *CoinGeckoMarketRepository {
	return &CoinGeckoMarketRepository{
		baseURL: baseURL,
		client:  client,
	}
}

// marketChartResponse is the subset of the market_chart payload we consume.
// Each price entry is a [unix_ms, price] pair.
type marketChartResponse struct {
	Prices [][2]float64 `json:"prices"`
}

// FetchPriceHistory returns the daily price series for a coin over the last
// `days` days, ordered oldest first.
func (r *CoinGeckoMarketRepository) FetchPriceHistory(
	ctx context.Context,
	coinID string,
	days int,
) (entities.PriceSeries, error) {
	endpoint := fmt.Sprintf(
		"%s/coins/%s/market_chart", r.baseURL, url.PathEscape(coinID),
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %q: %w", coinID, err)
	}

	query := req.URL.Query()
	query.Set("vs_currency", "usd")
	query.Set("days", strconv.Itoa(days))
	query.Set("interval", "daily")
	req.URL.RawQuery = query.Encode()

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch market data for %q: %w", coinID, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf(
			"unexpected status %d fetching market data for %q", resp.StatusCode, coinID,
		)
	}

	var payload marketChartResponse
	if decodeErr := json.NewDecoder(resp.Body).Decode(&payload); decodeErr != nil {
		return nil, fmt.Errorf("failed to decode market data for %q: %w", coinID, decodeErr)
	}

	if len(payload.Prices) == 0 {
		return nil, fmt.Errorf("no prices in response for %q", coinID)
	}

	series := make(entities.PriceSeries, 0, len(payload.Prices))
	for _, point := range payload.Prices {
		series = append(series, entities.PricePoint{
			Time:  time.UnixMilli(int64(point[0])).UTC(),
			Price: point[1],
		})
	}
	return series, nil
}
