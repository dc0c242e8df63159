package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pyforge/internal/domain/commands"
	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// OutdatedController handles the "outdated" subcommand.
type OutdatedController struct {
	command commands.Outdated
}

// NewOutdatedController creates a new OutdatedController.
func NewOutdatedController(command commands.Outdated) *OutdatedController {
	return &OutdatedController{command: command}
}

// GetBind returns the Cobra command metadata for the outdated controller.
func (it *OutdatedController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "outdated",
		Short: "Refresh the outdated packages report",
		Long: `Check the existing environment for outdated packages and rewrite
the JSON report. The environment is not modified.

The report file only exists when at least one package is outdated;
an up-to-date environment removes any stale report.`,
	}
}

// Execute refreshes the outdated report.
func (it *OutdatedController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	conda, _ := cmd.Flags().GetBool("conda")
	root, _ := cmd.Flags().GetString("root")
	report, _ := cmd.Flags().GetString("report")

	return it.command.Execute(ctx, settings, commands.OutdatedOptions{
		Verbose: verbose,
		Conda:   conda,
		Root:    root,
		Report:  report,
	})
}

// AddFlags adds the outdated-specific flags to the given Cobra command.
func (it *OutdatedController) AddFlags(cmd *cobra.Command) {
	addEnvironmentFlags(cmd)
	cmd.Flags().String("report", "", "Path for the outdated packages report")
}
