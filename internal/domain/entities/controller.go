package entities

import "github.com/spf13/cobra"

// ControllerBind holds the CLI metadata a controller registers under.
type ControllerBind struct {
	Use   string
	Short string
	Long  string
}

// Controller is implemented by every CLI controller.
type Controller interface {
	GetBind() ControllerBind
	Execute(cmd *cobra.Command, args []string) error
}

// FlagBinder is implemented by controllers that register their own flags.
type FlagBinder interface {
	AddFlags(cmd *cobra.Command)
}
