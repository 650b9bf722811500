//go:build integration || unit || test

// Package repositorydoubles provides test doubles (spies, stubs, dummies) for
// repository interfaces. These are hand-crafted implementations — no mock frameworks.
package repositorydoubles //nolint:revive,staticcheck // Test package naming follows established project structure

import (
	"context"
	"fmt"
	"os"

	"github.com/chartops/chartsync/internal/domain/entities"
)

// SpyMarketRepository implements repositories.MarketRepository as a
// configurable spy.
type SpyMarketRepository struct {
	// Series per coin id; a coin missing from the map yields FetchErr or an
	// empty series.
	Series   map[string]entities.PriceSeries
	FetchErr error

	// spy: coin ids that were requested
	FetchedCoins []string
	// spy: days requested on the last call
	LastDays int
}

func (s *SpyMarketRepository) FetchPriceHistory(
	_ context.Context,
	coinID string,
	days int,
) (entities.PriceSeries, error) {
	s.FetchedCoins = append(s.FetchedCoins, coinID)
	s.LastDays = days

	if series, ok := s.Series[coinID]; ok {
		return series, nil
	}
	if s.FetchErr != nil {
		return nil, s.FetchErr
	}
	return nil, fmt.Errorf("no series configured for %q", coinID)
}

// SpyRendererRepository implements repositories.RendererRepository as a spy
// that writes a placeholder file so downstream code sees a real artifact.
type SpyRendererRepository struct {
	RenderErr error

	// spy: charts received, in order
	Charts []entities.Chart
	// spy: output paths received, in order
	Paths []string
}

func (s *SpyRendererRepository) Render(chart entities.Chart, outputPath string) error {
	s.Charts = append(s.Charts, chart)
	s.Paths = append(s.Paths, outputPath)

	if s.RenderErr != nil {
		return s.RenderErr
	}
	return os.WriteFile(outputPath, []byte("png"), 0o644)
}

// SpyImageHostRepository implements repositories.ImageHostRepository as a
// configurable spy.
type SpyImageHostRepository struct {
	// URLs per uploaded file path; a path missing from the map yields
	// UploadErr or a generated URL.
	URLs      map[string]string
	UploadErr error

	// spy: the client id the factory was called with
	ClientID string
	// spy: image paths uploaded, in order
	Uploaded []string
}

func (s *SpyImageHostRepository) Upload(_ context.Context, imagePath string) (string, error) {
	s.Uploaded = append(s.Uploaded, imagePath)

	if s.UploadErr != nil {
		return "", s.UploadErr
	}
	if url, ok := s.URLs[imagePath]; ok {
		return url, nil
	}
	return fmt.Sprintf("https://i.example.com/%d.png", len(s.Uploaded)), nil
}

// SpyPublisherRepository implements repositories.PublisherRepository as a
// configurable spy.
type SpyPublisherRepository struct {
	Committed  bool
	PublishErr error

	// OnPublish, when set, runs at the start of every Publish call. Tests
	// use it to observe the state of the world at publication time.
	OnPublish func()

	// spy: configs received, in order
	Configs []entities.PublishConfig
	// spy: payloads received, in order
	Contents [][]byte
}

func (s *SpyPublisherRepository) Publish(
	_ context.Context,
	cfg entities.PublishConfig,
	content []byte,
) (bool, error) {
	if s.OnPublish != nil {
		s.OnPublish()
	}

	s.Configs = append(s.Configs, cfg)
	s.Contents = append(s.Contents, append([]byte(nil), content...))

	if s.PublishErr != nil {
		return false, s.PublishErr
	}
	return s.Committed, nil
}
