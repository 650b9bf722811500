//go:build unit

package entities_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chartops/chartsync/internal/domain/entities"
)

func TestEncodeRelayFile(t *testing.T) {
	t.Parallel()

	t.Run("should render one SYMBOL: URL line per upload in input order", func(t *testing.T) {
		t.Parallel()

		// given
		uploads := []entities.ChartUpload{
			{Symbol: "ETH", URL: "https://i.example.com/eth.png"},
			{Symbol: "AVAX", URL: "https://i.example.com/avax.png"},
		}

		// when
		content := entities.EncodeRelayFile(uploads)

		// then
		assert.Equal(t,
			"ETH: https://i.example.com/eth.png\nAVAX: https://i.example.com/avax.png\n",
			string(content),
		)
	})

	t.Run("should render an empty payload for no uploads", func(t *testing.T) {
		t.Parallel()

		// given
		var uploads []entities.ChartUpload

		// when
		content := entities.EncodeRelayFile(uploads)

		// then
		assert.Empty(t, content)
	})
}

func TestParseRelayFile(t *testing.T) {
	t.Parallel()

	t.Run("should round-trip an encoded payload", func(t *testing.T) {
		t.Parallel()

		// given
		uploads := []entities.ChartUpload{
			{Symbol: "ETH", URL: "https://i.example.com/eth.png"},
			{Symbol: "XLM", URL: "https://i.example.com/xlm.png"},
		}
		content := entities.EncodeRelayFile(uploads)

		// when
		parsed := entities.ParseRelayFile(content)

		// then
		assert.Equal(t, uploads, parsed)
	})

	t.Run("should skip blank and malformed lines", func(t *testing.T) {
		t.Parallel()

		// given
		content := []byte("\nETH: https://i.example.com/eth.png\nnot-a-line\n  \n")

		// when
		parsed := entities.ParseRelayFile(content)

		// then
		require.Len(t, parsed, 1)
		assert.Equal(t, "ETH", parsed[0].Symbol)
	})
}

func TestRelayContentEqual(t *testing.T) {
	t.Parallel()

	t.Run("should report byte-identical payloads as equal", func(t *testing.T) {
		t.Parallel()

		// given
		a := []byte("ETH: https://i.example.com/eth.png\n")
		b := []byte("ETH: https://i.example.com/eth.png\n")

		// when
		equal := entities.RelayContentEqual(a, b)

		// then
		assert.True(t, equal)
	})

	t.Run("should report differing payloads as not equal", func(t *testing.T) {
		t.Parallel()

		// given
		a := []byte("ETH: https://i.example.com/eth.png\n")
		b := []byte("ETH: https://i.example.com/eth2.png\n")

		// when
		equal := entities.RelayContentEqual(a, b)

		// then
		assert.False(t, equal)
	})
}
