package coingecko

// NewMarketRepositoryForTest exports newMarketRepository for testing.
var NewMarketRepositoryForTest = newMarketRepository //nolint:gochecknoglobals // test export
