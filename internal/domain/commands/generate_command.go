package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	logger "github.com/sirupsen/logrus"

	"github.com/chartops/chartsync/internal/domain/entities"
	"github.com/chartops/chartsync/internal/domain/repositories"
)

// Generate is the interface for the generate command (chart generation stage).
type Generate interface {
	Execute(ctx context.Context, settings *entities.Settings, opts Options) ([]entities.ChartUpload, error)
}

// Options holds runtime options for a single pipeline run.
type Options struct {
	DryRun  bool
	Verbose bool
}

var errMissingImgurClientID = errors.New(
	"imgur client id is required (set imgur.client_id or IMGUR_CLIENT_ID)",
)

// GenerateCommand produces the chart artifacts: for every configured asset it
// fetches the price history, computes the EMA series, renders a PNG chart,
// uploads it to the image host, and collects the resulting URLs into the
// relay file. A failing asset is logged and skipped; the relay file is
// guaranteed to exist afterwards even when every asset failed.
type GenerateCommand struct {
	market    repositories.MarketRepository
	renderer  repositories.RendererRepository
	imageHost repositories.ImageHostFactory
}

// NewGenerateCommand creates a new GenerateCommand.
func NewGenerateCommand(
	market repositories.MarketRepository,
	renderer repositories.RendererRepository,
	imageHost repositories.ImageHostFactory,
) *GenerateCommand {
	return &GenerateCommand{
		market:    market,
		renderer:  renderer,
		imageHost: imageHost,
	}
}

// Execute runs the generation stage and returns the uploads collected.
func (it *GenerateCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts Options,
) ([]entities.ChartUpload, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	if settings.Imgur.ClientID == "" && !opts.DryRun {
		return nil, errMissingImgurClientID
	}

	if mkdirErr := os.MkdirAll(settings.WorkDir, 0o755); mkdirErr != nil {
		return nil, fmt.Errorf("failed to prepare work directory: %w", mkdirErr)
	}

	host := it.imageHost(settings.Imgur.ClientID)

	var uploads []entities.ChartUpload
	for _, asset := range settings.Assets {
		url, err := it.processAsset(ctx, settings, host, asset, opts)
		if err != nil {
			logger.Errorf("Failed to process %s (%s): %v", asset.Symbol, asset.CoinID, err)
			continue
		}
		if url != "" {
			uploads = append(uploads, entities.ChartUpload{Symbol: asset.Symbol, URL: url})
		}
	}

	if writeErr := writeRelayFile(settings.WorkDir, uploads); writeErr != nil {
		return uploads, writeErr
	}

	logger.Infof("Generation complete: %d of %d charts uploaded", len(uploads), len(settings.Assets))
	return uploads, nil
}

// processAsset runs the full per-asset cycle: fetch, render, upload.
// On dry runs the upload is skipped and an empty URL is returned.
func (it *GenerateCommand) processAsset(
	ctx context.Context,
	settings *entities.Settings,
	host repositories.ImageHostRepository,
	asset entities.AssetConfig,
	opts Options,
) (string, error) {
	logger.Infof("Fetching data for %s (%s)...", asset.Symbol, asset.CoinID)

	series, err := it.market.FetchPriceHistory(ctx, asset.CoinID, settings.Chart.Days)
	if err != nil {
		return "", fmt.Errorf("failed to fetch price history: %w", err)
	}
	if len(series) == 0 {
		return "", fmt.Errorf("no price data for %q", asset.CoinID)
	}

	chartPath := filepath.Join(
		settings.WorkDir,
		strings.ToLower(asset.Symbol)+"_chart.png",
	)

	logger.Infof("Generating chart for %s...", asset.Symbol)
	renderErr := it.renderer.Render(entities.Chart{
		Symbol:       asset.Symbol,
		Series:       series,
		EMASpans:     settings.Chart.EMASpans,
		WidthInches:  settings.Chart.WidthInches,
		HeightInches: settings.Chart.HeightInches,
		DPI:          settings.Chart.DPI,
	}, chartPath)
	if renderErr != nil {
		return "", fmt.Errorf("failed to render chart: %w", renderErr)
	}

	if opts.DryRun {
		logger.Infof("[DRY RUN] Would upload %s", chartPath)
		return "", nil
	}

	logger.Infof("Uploading chart for %s...", asset.Symbol)
	url, uploadErr := host.Upload(ctx, chartPath)
	if uploadErr != nil {
		return "", fmt.Errorf("failed to upload chart: %w", uploadErr)
	}

	logger.Debugf("Uploaded %s chart: %s", asset.Symbol, url)
	return url, nil
}

// writeRelayFile stores the collected URLs in the work directory. When there
// are no uploads an existing file is left alone and a missing one is created
// empty, so the relay stage always finds the file in place.
func writeRelayFile(workDir string, uploads []entities.ChartUpload) error {
	path := filepath.Join(workDir, entities.RelayFileName)

	if len(uploads) == 0 {
		if _, statErr := os.Stat(path); statErr == nil {
			return nil
		}
		if touchErr := os.WriteFile(path, nil, 0o644); touchErr != nil {
			return fmt.Errorf("failed to create relay file: %w", touchErr)
		}
		return nil
	}

	if err := os.WriteFile(path, entities.EncodeRelayFile(uploads), 0o644); err != nil {
		return fmt.Errorf("failed to write relay file: %w", err)
	}
	logger.Infof("Saved %d chart URLs to %s", len(uploads), path)
	return nil
}
