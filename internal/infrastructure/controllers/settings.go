package controllers

import (
	"fmt"

	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/chartops/chartsync/internal/domain/commands"
	"github.com/chartops/chartsync/internal/domain/entities"
)

// loadSettings resolves the settings file from the --config flag or the
// standard locations and parses it together with the shared run options.
// Errors propagate to the caller so a misconfigured run fails the process.
func loadSettings(cmd *cobra.Command) (*entities.Settings, commands.Options, error) {
	configPath, _ := cmd.Flags().GetString("config")
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")

	opts := commands.Options{DryRun: dryRun, Verbose: verbose}

	cfgPath := configPath
	if cfgPath == "" {
		var err error
		cfgPath, err = entities.FindSettingsFile()
		if err != nil {
			return nil, opts, fmt.Errorf(
				"no settings file found: %w\nSpecify one with --config or create chartsync.yaml",
				err,
			)
		}
	}

	logger.Infof("Using settings file: %s", cfgPath)

	settings, err := entities.NewSettings(cfgPath)
	if err != nil {
		return nil, opts, fmt.Errorf("failed to load settings: %w", err)
	}

	return settings, opts, nil
}
