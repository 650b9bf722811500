package controllers

import (
	"context"
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chartops/chartsync/internal/domain/commands"
	"github.com/chartops/chartsync/internal/domain/entities"
)

// GenerateController handles the "generate" subcommand (generation stage only).
type GenerateController struct {
	command commands.Generate
}

// NewGenerateController creates a new GenerateController.
func NewGenerateController(command commands.Generate) *GenerateController {
	return &GenerateController{command: command}
}

// GetBind returns the Cobra command metadata for the generate controller.
func (it *GenerateController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "generate",
		Short: "Generate and upload charts without publishing",
		Long: `Generate EMA charts for every configured asset, upload them to the
image host, and write the URL list to the local relay file.

The publish repository is not touched, so no publish credentials are
needed. Useful for verifying chart output before wiring up publication.`,
	}
}

// Execute runs the generation stage.
func (it *GenerateController) Execute(cmd *cobra.Command, _ []string) error {
	settings, opts, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	uploads, genErr := it.command.Execute(context.Background(), settings, opts)
	if genErr != nil {
		return fmt.Errorf("generation failed: %w", genErr)
	}

	for _, upload := range uploads {
		logger.Infof("%s: %s", upload.Symbol, upload.URL)
	}
	return nil
}
