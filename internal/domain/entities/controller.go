package entities

import (
	"github.com/spf13/cobra"
)

// ControllerBind holds the Cobra metadata a controller exposes for registration.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by every CLI controller. Execute returns the
// command error so the CLI layer can exit non-zero on a failed run.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, arguments []string) error
}
