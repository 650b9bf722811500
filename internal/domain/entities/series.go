package entities

import "time"

// PricePoint is one observation in an asset's price history.
type PricePoint struct {
	Time  time.Time
	Price float64
}

// PriceSeries is an ordered price history for one asset.
type PriceSeries []PricePoint

// EMA returns the exponential moving average of the series for the given
// span, using the recurrence ema[i] = alpha*p[i] + (1-alpha)*ema[i-1] with
// alpha = 2/(span+1), seeded with the first price. The result has one value
// per input point. A non-positive span or an empty series yields nil.
func (s PriceSeries) EMA(span int) []float64 {
	if span <= 0 || len(s) == 0 {
		return nil
	}

	alpha := 2.0 / (float64(span) + 1.0)
	result := make([]float64, len(s))
	result[0] = s[0].Price
	for i := 1; i < len(s); i++ {
		result[i] = alpha*s[i].Price + (1-alpha)*result[i-1]
	}
	return result
}

// Chart is the renderable description of one asset's EMA chart.
type Chart struct {
	Symbol       string
	Series       PriceSeries
	EMASpans     []int
	WidthInches  float64
	HeightInches float64
	DPI          int
}
