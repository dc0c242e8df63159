package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pyforge/internal/domain/commands"
	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// TeardownController handles the "teardown" subcommand.
type TeardownController struct {
	command commands.Teardown
}

// NewTeardownController creates a new TeardownController.
func NewTeardownController(command commands.Teardown) *TeardownController {
	return &TeardownController{command: command}
}

// GetBind returns the Cobra command metadata for the teardown controller.
func (it *TeardownController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "teardown",
		Short: "Remove the managed environment",
		Long: `Remove the Python environment managed by this tool.

Removing an environment that does not exist is not an error. Directories
that do not look like a venv or conda environment are left alone.`,
	}
}

// Execute removes the environment.
func (it *TeardownController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	conda, _ := cmd.Flags().GetBool("conda")
	root, _ := cmd.Flags().GetString("root")

	return it.command.Execute(ctx, settings, commands.TeardownOptions{
		DryRun:  dryRun,
		Verbose: verbose,
		Conda:   conda,
		Root:    root,
	})
}

// AddFlags adds the teardown-specific flags to the given Cobra command.
func (it *TeardownController) AddFlags(cmd *cobra.Command) {
	addEnvironmentFlags(cmd)
}
