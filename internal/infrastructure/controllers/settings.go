package controllers

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/pyforge/internal/domain/commands"
	"github.com/rios0rios0/pyforge/internal/domain/entities"
)

// loadSettings resolves the settings for a command invocation: an explicit
// --config wins, then the standard file locations, then built-in defaults.
// Running without any settings file is a supported setup.
func loadSettings(cmd *cobra.Command) (*entities.Settings, error) {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		found, err := entities.FindSettingsFile()
		if err != nil {
			logger.Debugf("No settings file found, using defaults")
			return entities.DefaultSettings(), nil
		}
		configPath = found
	}

	logger.Infof("Using settings file: %s", configPath)
	return entities.NewSettings(configPath)
}

// syncOptionsFromFlags collects the options shared by sync and watch.
func syncOptionsFromFlags(cmd *cobra.Command) commands.SyncOptions {
	dryRun, _ := cmd.Flags().GetBool("dry-run")
	verbose, _ := cmd.Flags().GetBool("verbose")
	conda, _ := cmd.Flags().GetBool("conda")
	root, _ := cmd.Flags().GetString("root")
	manifest, _ := cmd.Flags().GetString("manifest")
	report, _ := cmd.Flags().GetString("report")
	summary, _ := cmd.Flags().GetString("summary")

	return commands.SyncOptions{
		DryRun:   dryRun,
		Verbose:  verbose,
		Conda:    conda,
		Root:     root,
		Manifest: manifest,
		Report:   report,
		Summary:  summary,
	}
}

// addEnvironmentFlags adds the flags every environment-touching subcommand
// shares.
func addEnvironmentFlags(cmd *cobra.Command) {
	cmd.Flags().String("root", "", "Environment root directory (default: .venv)")
	cmd.Flags().Bool("conda", false, "Use a conda environment instead of venv")
}

// addSyncFlags adds the full sync flag set (shared by sync and watch).
func addSyncFlags(cmd *cobra.Command) {
	addEnvironmentFlags(cmd)
	cmd.Flags().StringP("manifest", "m", "", "Path to the dependency manifest (default: requirements.txt)")
	cmd.Flags().String("report", "", "Path for the outdated packages report")
	cmd.Flags().String("summary", "", "Write a JSON run summary to this file")
}
