//go:build unit

package entities_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartops/chartsync/internal/domain/entities"
)

func seriesFromPrices(prices ...float64) entities.PriceSeries {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	series := make(entities.PriceSeries, len(prices))
	for i, price := range prices {
		series[i] = entities.PricePoint{
			Time:  base.Add(time.Duration(i) * 24 * time.Hour),
			Price: price,
		}
	}
	return series
}

func TestPriceSeriesEMA(t *testing.T) {
	t.Parallel()

	t.Run("should seed with the first price", func(t *testing.T) {
		t.Parallel()

		// given
		series := seriesFromPrices(100, 110, 120)

		// when
		ema := series.EMA(10)

		// then
		require.Len(t, ema, 3)
		assert.InDelta(t, 100.0, ema[0], 1e-9)
	})

	t.Run("should follow the recurrence ema[i] = alpha*p + (1-alpha)*prev", func(t *testing.T) {
		t.Parallel()

		// given
		series := seriesFromPrices(10, 20, 30, 40)
		span := 3
		alpha := 2.0 / 4.0

		// when
		ema := series.EMA(span)

		// then
		require.Len(t, ema, 4)
		expected := 10.0
		for i := 1; i < len(series); i++ {
			expected = alpha*series[i].Price + (1-alpha)*expected
			assert.InDelta(t, expected, ema[i], 1e-9, "index %d", i)
		}
	})

	t.Run("should equal the raw prices for span one", func(t *testing.T) {
		t.Parallel()

		// given
		series := seriesFromPrices(5, 7, 11)

		// when
		ema := series.EMA(1)

		// then
		require.Len(t, ema, 3)
		for i, point := range series {
			assert.InDelta(t, point.Price, ema[i], 1e-9)
		}
	})

	t.Run("should return nil for an empty series", func(t *testing.T) {
		t.Parallel()

		// given
		series := entities.PriceSeries{}

		// when
		ema := series.EMA(10)

		// then
		assert.Nil(t, ema)
	})

	t.Run("should return nil for a non-positive span", func(t *testing.T) {
		t.Parallel()

		// given
		series := seriesFromPrices(1, 2, 3)

		// when
		ema := series.EMA(0)

		// then
		assert.Nil(t, ema)
	})
}
