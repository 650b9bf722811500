package commands

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"

	"github.com/chartops/chartsync/internal/domain/entities"
)

// Run is the interface for the run command (full pipeline).
type Run interface {
	Execute(ctx context.Context, settings *entities.Settings, opts Options) error
}

// RunCommand executes the full pipeline in order: chart generation, then
// relay and publication. Manual and scheduled invocations go through this
// same path, so the stage sequence is identical for both. Any failing stage
// aborts the rest of the run; "nothing to commit" is the single absorbed
// condition, handled inside the publish stage.
type RunCommand struct {
	generate Generate
	publish  Publish
}

// NewRunCommand creates a new RunCommand with the given stage commands.
func NewRunCommand(generate Generate, publish Publish) *RunCommand {
	return &RunCommand{
		generate: generate,
		publish:  publish,
	}
}

// Execute runs the full pipeline once.
func (it *RunCommand) Execute(
	ctx context.Context,
	settings *entities.Settings,
	opts Options,
) error {
	if opts.Verbose {
		logger.SetLevel(logger.DebugLevel)
	}

	logger.Info("Starting chartsync run...")

	uploads, err := it.generate.Execute(ctx, settings, opts)
	if err != nil {
		return fmt.Errorf("generation stage failed: %w", err)
	}

	committed, publishErr := it.publish.Execute(ctx, settings, opts)
	if publishErr != nil {
		return fmt.Errorf("publication stage failed: %w", publishErr)
	}

	logger.Infof(
		"Run complete: %d charts uploaded, commit created: %t",
		len(uploads), committed,
	)
	return nil
}
