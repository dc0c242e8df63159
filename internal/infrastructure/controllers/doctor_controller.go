package controllers

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/rios0rios0/pyforge/internal/domain/commands"
	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// DoctorController handles the "doctor" subcommand.
type DoctorController struct {
	command commands.Doctor
}

// NewDoctorController creates a new DoctorController.
func NewDoctorController(command commands.Doctor) *DoctorController {
	return &DoctorController{command: command}
}

// GetBind returns the Cobra command metadata for the doctor controller.
func (it *DoctorController) GetBind() entities.ControllerBind {
	return entities.ControllerBind{
		Use:   "doctor",
		Short: "Check the host Python toolchain",
		Long: `Probe the python, pip and conda binaries a sync run would use and
report what was found, including whether the interpreter is behind
the latest upstream release.

Exits non-zero when a tool required by the configured mode is missing.`,
	}
}

// Execute runs the toolchain check.
func (it *DoctorController) Execute(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	settings, err := loadSettings(cmd)
	if err != nil {
		return err
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	conda, _ := cmd.Flags().GetBool("conda")
	root, _ := cmd.Flags().GetString("root")

	return it.command.Execute(ctx, settings, commands.DoctorOptions{
		Verbose: verbose,
		Conda:   conda,
		Root:    root,
	})
}

// AddFlags adds the doctor-specific flags to the given Cobra command.
func (it *DoctorController) AddFlags(cmd *cobra.Command) {
	addEnvironmentFlags(cmd)
}
