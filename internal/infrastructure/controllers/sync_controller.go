package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pyforge/internal/domain/commands"
	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// SyncController handles the "sync" subcommand.
type SyncController struct {
	command commands.Sync
}

// NewSyncController creates a new SyncController.
func NewSyncController(command commands.Sync) *SyncController {
	return &SyncController{command: command}
}

// GetBind returns the Cobra command metadata for the sync controller.
func (it *SyncController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "sync",
		Short: "Create the environment and install the manifest",
		Long: `Recreate the Python environment from scratch and install every
dependency pinned in the manifest.

An existing environment at the same root is removed first, so the
command always produces the same result. After installing, outdated
packages are written to a JSON report; the report file only exists
when at least one package is outdated.`,
	}
}

// Execute runs the provisioning pipeline.
func (it *SyncController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	return it.command.Execute(ctx, settings, syncOptionsFromFlags(cmd))
}

// AddFlags adds the sync-specific flags to the given Cobra command.
func (it *SyncController) AddFlags(cmd *cobra.Command) {
	addSyncFlags(cmd)
}
