package controllers

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chartops/chartsync/internal/domain/commands"
	"github.com/chartops/chartsync/internal/domain/entities"
)

// RunController handles the "run" subcommand (full pipeline).
type RunController struct {
	command commands.Run
}

// NewRunController creates a new RunController.
func NewRunController(command commands.Run) *RunController {
	return &RunController{command: command}
}

// GetBind returns the Cobra command metadata for the run controller.
func (it *RunController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "run",
		Short: "Run the full chart pipeline",
		Long: `Generate EMA charts for every configured asset, upload them to the
image host, and publish the resulting URL list to the publish repository.

This is the main command intended to be used in a cronjob. A manual
invocation runs the exact same stage sequence as a scheduled one.`,
	}
}

// Execute runs the full pipeline. A failing stage fails the process so the
// cron host observes a non-zero exit.
func (it *RunController) Execute(cmd *cobra.Command, _ []string) error {
	settings, opts, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	if runErr := it.command.Execute(context.Background(), settings, opts); runErr != nil {
		return fmt.Errorf("run failed: %w", runErr)
	}
	return nil
}
