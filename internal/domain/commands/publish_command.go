package commands

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/chartops/chartsync/internal/domain/entities"
	"github.com/chartops/chartsync/internal/domain/repositories"
)

// Publish is the interface for the publish command (relay and publication stages).
type Publish interface {
	Execute(ctx context.Context, settings *entities.Settings, opts Options) (bool, error)
}

var (
	errMissingPublishRepo = errors.New(
		"publish repository URL is required (set publish.repo_url)",
	)
	errMissingPublishToken = errors.New(
		"publish token is required (set publish.token or PUBLISH_TOKEN)",
	)
)

// PublishCommand relays the URL file into the publish repository: it removes
// the transient chart images from the work directory, guarantees the relay
// file exists, and hands its content to the publisher, which commits only
// when the content changed.
type PublishCommand struct {
	publisher repositories.PublisherRepository
}

// NewPublishCommand creates a new PublishCommand.
func NewPublishCommand(publisher repositories.PublisherRepository) *PublishCommand {
	return &PublishCommand{publisher: publisher}
}

// Execute runs the relay and publication stages. It returns true when a new
// commit was pushed; an up-to-date repository is a successful no-op.
func (it *PublishCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts Options,
) (bool, error) {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	content, err := prepareRelay(settings.WorkDir)
	if err != nil {
		return false, err
	}

	if settings.Publish.RepoURL == "" {
		return false, errMissingPublishRepo
	}
	if settings.Publish.Token == "" && !opts.DryRun {
		return false, errMissingPublishToken
	}

	if opts.DryRun {
		logger.Infof(
			"[DRY RUN] Would publish %d chart URLs to %s",
			len(entities.ParseRelayFile(content)), settings.Publish.RepoURL,
		)
		return false, nil
	}

	committed, publishErr := it.publisher.Publish(ctx, settings.Publish, content)
	if publishErr != nil {
		return false, fmt.Errorf("failed to publish relay file: %w", publishErr)
	}

	if committed {
		logger.Infof("Published %s to %s", settings.Publish.RelayPath, settings.Publish.RepoURL)
	} else {
		logger.Info("No changes to commit")
	}
	return committed, nil
}

// prepareRelay guarantees the relay file exists (creating it empty when the
// generation stage produced nothing), removes every chart image from the work
// directory, and returns the relay content. The image purge runs before any
// contact with the publish repository.
func prepareRelay(workDir string) ([]byte, error) {
	path := filepath.Join(workDir, entities.RelayFileName)

	if _, statErr := os.Stat(path); os.IsNotExist(statErr) {
		if touchErr := os.WriteFile(path, nil, 0o644); touchErr != nil {
			return nil, fmt.Errorf("failed to create relay file: %w", touchErr)
		}
	}

	if purgeErr := purgeChartImages(workDir); purgeErr != nil {
		return nil, purgeErr
	}

	content, readErr := os.ReadFile(path)
	if readErr != nil {
		return nil, fmt.Errorf("failed to read relay file: %w", readErr)
	}
	return content, nil
}

// purgeChartImages deletes every PNG in the work directory, produced this run
// or not. This mirrors the blanket cleanup the pipeline has always done.
func purgeChartImages(workDir string) error {
	matches, err := filepath.Glob(filepath.Join(workDir, "*.png"))
	if err != nil {
		return fmt.Errorf("failed to list chart images: %w", err)
	}

	for _, match := range matches {
		if removeErr := os.Remove(match); removeErr != nil {
			return fmt.Errorf("failed to remove chart image %q: %w", match, removeErr)
		}
		logger.Debugf("Removed chart image %s", match)
	}
	return nil
}
