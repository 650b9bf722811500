package repositories

import (
	"context"

	"github.com/chartops/chartsync/internal/domain/entities"
)

// MarketRepository provides historical price data for an asset.
type MarketRepository interface {
	// FetchPriceHistory returns the daily price series for the given coin
	// over the last `days` days, ordered oldest first.
	FetchPriceHistory(ctx context.Context, coinID string, days int) (entities.PriceSeries, error)
}
