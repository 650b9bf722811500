package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chartops/chartsync/internal/domain/commands"
	"github.com/chartops/chartsync/internal/domain/entities"
)

// PublishController handles the "publish" subcommand (relay and publication
// stages only).
type PublishController struct {
	command commands.Publish
}

// NewPublishController creates a new PublishController.
func NewPublishController(command commands.Publish) *PublishController {
	return &PublishController{command: command}
}

// GetBind returns the Cobra command metadata for the publish controller.
func (it *PublishController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "publish",
		Short: "Publish the relay file to the publish repository",
		Long: `Take the relay file from the work directory, remove leftover chart
images, and commit the file to the publish repository when its content
changed. An unchanged file is a successful no-op.`,
	}
}

// Execute runs the relay and publication stages.
func (it *PublishController) Execute(cmd *cobra.Command, _ []string) error {
	settings, opts, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	committed, pubErr := it.command.Execute(context.Background(), settings, opts)
	if pubErr != nil {
		return fmt.Errorf("publication failed: %w", pubErr)
	}

	if committed {
		logger.Info("Relay file published")
	}
	return nil
}
