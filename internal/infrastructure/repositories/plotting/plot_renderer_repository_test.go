//go:build unit

package plotting_test

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartops/chartsync/internal/domain/entities"
	"github.com/chartops/chartsync/internal/infrastructure/repositories/plotting"
)

func testChart() entities.Chart {
	base := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)
	series := make(entities.PriceSeries, 7)
	for i := range series {
		series[i] = entities.PricePoint{
			Time:  base.Add(time.Duration(i) * 24 * time.Hour),
			Price: 4000 + float64(i)*50,
		}
	}
	return entities.Chart{
		Symbol:       "ETH",
		Series:       series,
		EMASpans:     []int{10, 20},
		WidthInches:  6,
		HeightInches: 4,
		DPI:          96,
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	t.Run("should write a non-empty PNG file", func(t *testing.T) {
		t.Parallel()

		// given
		repo := plotting.NewRendererRepository()
		outputPath := filepath.Join(t.TempDir(), "eth_chart.png")

		// when
		err := repo.Render(testChart(), outputPath)

		// then
		require.NoError(t, err)
		info, statErr := os.Stat(outputPath)
		require.NoError(t, statErr)
		assert.Positive(t, info.Size())

		// PNG signature
		data, readErr := os.ReadFile(outputPath)
		require.NoError(t, readErr)
		require.GreaterOrEqual(t, len(data), 8)
		assert.Equal(t, []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1a, '\n'}, data[:8])
	})

	t.Run("should raster the configured size at the configured resolution", func(t *testing.T) {
		t.Parallel()

		// given
		repo := plotting.NewRendererRepository()
		chart := testChart()
		chart.WidthInches = 2
		chart.HeightInches = 1
		chart.DPI = 150
		outputPath := filepath.Join(t.TempDir(), "eth_chart.png")

		// when
		err := repo.Render(chart, outputPath)

		// then
		require.NoError(t, err)
		file, openErr := os.Open(outputPath)
		require.NoError(t, openErr)
		defer func() { _ = file.Close() }()

		config, decodeErr := png.DecodeConfig(file)
		require.NoError(t, decodeErr)
		assert.Equal(t, 300, config.Width)
		assert.Equal(t, 150, config.Height)
	})

	t.Run("should fall back to 300 DPI when none is set", func(t *testing.T) {
		t.Parallel()

		// given
		repo := plotting.NewRendererRepository()
		chart := testChart()
		chart.WidthInches = 1
		chart.HeightInches = 1
		chart.DPI = 0
		outputPath := filepath.Join(t.TempDir(), "eth_chart.png")

		// when
		err := repo.Render(chart, outputPath)

		// then
		require.NoError(t, err)
		file, openErr := os.Open(outputPath)
		require.NoError(t, openErr)
		defer func() { _ = file.Close() }()

		config, decodeErr := png.DecodeConfig(file)
		require.NoError(t, decodeErr)
		assert.Equal(t, 300, config.Width)
		assert.Equal(t, 300, config.Height)
	})

	t.Run("should reject an empty series", func(t *testing.T) {
		t.Parallel()

		// given
		repo := plotting.NewRendererRepository()
		chart := entities.Chart{Symbol: "ETH", EMASpans: []int{10}}

		// when
		err := repo.Render(chart, filepath.Join(t.TempDir(), "eth_chart.png"))

		// then
		require.Error(t, err)
	})
}
